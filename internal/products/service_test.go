package products

import (
	"context"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/drivecans/storefront-backend/pkg/db/models"
	pkgerrors "github.com/drivecans/storefront-backend/pkg/errors"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	conn, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := conn.AutoMigrate(&models.Product{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return conn
}

func mustCreateProduct(t *testing.T, conn *gorm.DB, slug string, cents int) *models.Product {
	t.Helper()
	row := &models.Product{
		Slug:       slug,
		Name:       "Product " + slug,
		PriceCents: cents,
		Image:      "/Products/test.png",
		HoverImage: "/Products/test2.jpg",
	}
	if err := conn.Create(row).Error; err != nil {
		t.Fatalf("create product: %v", err)
	}
	return row
}

func TestServiceListOrdersByID(t *testing.T) {
	conn := openTestDB(t)
	first := mustCreateProduct(t, conn, "cans-mango", 59900)
	second := mustCreateProduct(t, conn, "cans-citrus", 59900)

	svc, err := NewService(NewRepository(conn))
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	rows, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 products, got %d", len(rows))
	}
	if rows[0].ID != first.ID || rows[1].ID != second.ID {
		t.Fatalf("expected stable id ordering, got %v then %v", rows[0].ID, rows[1].ID)
	}
	if rows[0].PriceCents != 59900 {
		t.Fatalf("unexpected price %d", rows[0].PriceCents)
	}
}

func TestServiceGetResolvesIDThenSlug(t *testing.T) {
	conn := openTestDB(t)
	row := mustCreateProduct(t, conn, "drive-starter-pack", 99900)

	svc, err := NewService(NewRepository(conn))
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	ctx := context.Background()

	byID, err := svc.Get(ctx, "1")
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	if byID.ID != row.ID {
		t.Fatalf("expected product %d, got %d", row.ID, byID.ID)
	}

	bySlug, err := svc.Get(ctx, "drive-starter-pack")
	if err != nil {
		t.Fatalf("get by slug: %v", err)
	}
	if bySlug.ID != row.ID {
		t.Fatalf("expected product %d, got %d", row.ID, bySlug.ID)
	}
}

func TestServiceGetMissingIsNotFound(t *testing.T) {
	conn := openTestDB(t)
	svc, err := NewService(NewRepository(conn))
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	for _, key := range []string{"999", "no-such-slug"} {
		_, err := svc.Get(context.Background(), key)
		typed := pkgerrors.As(err)
		if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
			t.Fatalf("key %q: expected not-found, got %v", key, err)
		}
	}
}
