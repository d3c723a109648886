package auth

import (
	"context"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/drivecans/storefront-backend/internal/users"
	"github.com/drivecans/storefront-backend/pkg/config"
	"github.com/drivecans/storefront-backend/pkg/db/models"
	pkgerrors "github.com/drivecans/storefront-backend/pkg/errors"
)

func testPasswordConfig() config.PasswordConfig {
	return config.PasswordConfig{
		ArgonMemoryKB:    8192,
		ArgonTime:        1,
		ArgonParallelism: 1,
		ArgonSaltLen:     16,
		ArgonKeyLen:      32,
	}
}

func buildTestService(t *testing.T) (Service, *gorm.DB) {
	t.Helper()
	conn, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := conn.AutoMigrate(&models.User{}, &models.AuthSession{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	svc, err := NewService(ServiceParams{
		UserRepo:       users.NewRepository(conn),
		SessionRepo:    NewSessionRepository(conn),
		PasswordConfig: testPasswordConfig(),
		SessionTTL:     720 * time.Hour,
	})
	if err != nil {
		t.Fatalf("build service: %v", err)
	}
	return svc, conn
}

func TestRegisterThenLogin(t *testing.T) {
	svc, conn := buildTestService(t)
	ctx := context.Background()

	dto, err := svc.Register(ctx, RegisterRequest{Email: "Shopper@Example.com", Password: "hunter2!"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if dto.Email != "shopper@example.com" {
		t.Fatalf("expected lowercased email, got %q", dto.Email)
	}

	result, err := svc.Login(ctx, LoginRequest{Email: "shopper@example.com", Password: "hunter2!"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if result.Token == "" {
		t.Fatal("expected opaque token")
	}
	if !result.ExpiresAt.After(time.Now().Add(29 * 24 * time.Hour)) {
		t.Fatalf("expected ~30 day expiry, got %v", result.ExpiresAt)
	}

	var session models.AuthSession
	if err := conn.Where("token = ?", result.Token).First(&session).Error; err != nil {
		t.Fatalf("expected persisted session row: %v", err)
	}
	if session.UserID != dto.ID {
		t.Fatalf("session belongs to user %d, want %d", session.UserID, dto.ID)
	}
}

func TestRegisterDuplicateEmailIsConflict(t *testing.T) {
	svc, conn := buildTestService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegisterRequest{Email: "dup@example.com", Password: "pw"}); err != nil {
		t.Fatalf("first register: %v", err)
	}

	// Case-insensitive: the normalized email collides with the stored row.
	_, err := svc.Register(ctx, RegisterRequest{Email: "DUP@example.com", Password: "pw"})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeConflict {
		t.Fatalf("expected conflict, got %v", err)
	}

	var count int64
	if err := conn.Model(&models.User{}).Count(&count).Error; err != nil {
		t.Fatalf("count users: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected a single user row, got %d", count)
	}
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	svc, _ := buildTestService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegisterRequest{Email: "known@example.com", Password: "right"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, wrongPass := svc.Login(ctx, LoginRequest{Email: "known@example.com", Password: "wrong"})
	_, noUser := svc.Login(ctx, LoginRequest{Email: "ghost@example.com", Password: "whatever"})

	for _, err := range []error{wrongPass, noUser} {
		typed := pkgerrors.As(err)
		if typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
			t.Fatalf("expected unauthorized, got %v", err)
		}
		if typed.Message() != invalidCredentialsMessage {
			t.Fatalf("expected generic message, got %q", typed.Message())
		}
	}
}

func TestLogoutIsIdempotent(t *testing.T) {
	svc, conn := buildTestService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegisterRequest{Email: "out@example.com", Password: "pw"}); err != nil {
		t.Fatalf("register: %v", err)
	}
	result, err := svc.Login(ctx, LoginRequest{Email: "out@example.com", Password: "pw"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	if err := svc.Logout(ctx, result.Token); err != nil {
		t.Fatalf("logout: %v", err)
	}

	var count int64
	if err := conn.Model(&models.AuthSession{}).Count(&count).Error; err != nil {
		t.Fatalf("count sessions: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected revoked session, got %d rows", count)
	}

	// Logging out again, or with no token at all, is not an error.
	if err := svc.Logout(ctx, result.Token); err != nil {
		t.Fatalf("second logout: %v", err)
	}
	if err := svc.Logout(ctx, ""); err != nil {
		t.Fatalf("empty logout: %v", err)
	}
}

func TestFindActiveByTokenIgnoresExpiredRows(t *testing.T) {
	_, conn := buildTestService(t)
	ctx := context.Background()

	repo := NewSessionRepository(conn)
	if _, err := repo.Create(ctx, 1, "stale-token", time.Now().Add(-time.Hour)); err != nil {
		t.Fatalf("create session: %v", err)
	}

	if _, err := repo.FindActiveByToken(ctx, "stale-token", time.Now()); err == nil {
		t.Fatal("expected expired session to be treated as absent")
	}
}
