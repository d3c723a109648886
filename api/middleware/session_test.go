package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/drivecans/storefront-backend/internal/cart"
	"github.com/drivecans/storefront-backend/pkg/config"
	"github.com/drivecans/storefront-backend/pkg/db/models"
)

type stubCartService struct {
	resolved []string
}

func (s *stubCartService) ResolveSession(_ context.Context, sessionID string) (*models.Cart, error) {
	s.resolved = append(s.resolved, sessionID)
	return &models.Cart{ID: 42, SessionID: sessionID}, nil
}

func (s *stubCartService) Get(context.Context, uint) (*cart.Snapshot, error) {
	return &cart.Snapshot{}, nil
}

func (s *stubCartService) AddItem(context.Context, uint, uint, int) (*cart.Snapshot, error) {
	return &cart.Snapshot{}, nil
}

func (s *stubCartService) UpdateItem(context.Context, uint, uint, int) (*cart.Snapshot, error) {
	return &cart.Snapshot{}, nil
}

func (s *stubCartService) RemoveItem(context.Context, uint, uint) (*cart.Snapshot, error) {
	return &cart.Snapshot{}, nil
}

func (s *stubCartService) Checkout(context.Context, uint) error {
	return nil
}

func sessionTestConfig() config.SessionConfig {
	return config.SessionConfig{CartCookie: "drive_session", AuthCookie: "auth_token", TTL: 720 * time.Hour}
}

func TestCartSessionMintsCookieWhenAbsent(t *testing.T) {
	svc := &stubCartService{}
	var seenCart *models.Cart
	handler := CartSession(sessionTestConfig(), svc, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenCart = CartFromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/cart", nil))

	if seenCart == nil || seenCart.ID != 42 {
		t.Fatalf("expected cart in context, got %+v", seenCart)
	}

	cookies := rec.Result().Cookies()
	var minted *http.Cookie
	for _, cookie := range cookies {
		if cookie.Name == "drive_session" {
			minted = cookie
		}
	}
	if minted == nil || minted.Value == "" {
		t.Fatal("expected session cookie to be minted")
	}
	if !minted.HttpOnly {
		t.Fatal("expected httpOnly cookie")
	}
	if minted.SameSite != http.SameSiteLaxMode {
		t.Fatal("expected lax same-site cookie")
	}
	if minted.MaxAge != int((720 * time.Hour).Seconds()) {
		t.Fatalf("expected 30-day max-age, got %d", minted.MaxAge)
	}
	if len(svc.resolved) != 1 || svc.resolved[0] != minted.Value {
		t.Fatalf("expected resolve with minted token, got %v", svc.resolved)
	}
}

func TestCartSessionReusesExistingCookie(t *testing.T) {
	svc := &stubCartService{}
	handler := CartSession(sessionTestConfig(), svc, nil)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	req.AddCookie(&http.Cookie{Name: "drive_session", Value: "existing-token"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == "drive_session" {
			t.Fatal("expected no new cookie for an existing session")
		}
	}
	if len(svc.resolved) != 1 || svc.resolved[0] != "existing-token" {
		t.Fatalf("expected resolve with existing token, got %v", svc.resolved)
	}
}
