package cartclient

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/drivecans/storefront-backend/internal/products"
)

type fakeCatalog map[uint]products.Summary

func (c fakeCatalog) Product(id uint) (products.Summary, bool) {
	summary, ok := c[id]
	return summary, ok
}

func testCatalog() fakeCatalog {
	return fakeCatalog{
		1: {ID: 1, Slug: "cans-mango", Name: "CANS Mango", PriceCents: 59900},
		2: {ID: 2, Slug: "voda", Name: "Voda", PriceCents: 1990},
	}
}

func newOffline(t *testing.T) *OfflineBackend {
	t.Helper()
	backend, err := NewOfflineBackend(filepath.Join(t.TempDir(), "cart.json"), testCatalog())
	if err != nil {
		t.Fatalf("build backend: %v", err)
	}
	return backend
}

func TestOfflineAddMergesDuplicates(t *testing.T) {
	backend := newOffline(t)
	ctx := context.Background()

	if _, err := backend.Add(ctx, 1, 1); err != nil {
		t.Fatalf("first add: %v", err)
	}
	snap, err := backend.Add(ctx, 1, 2)
	if err != nil {
		t.Fatalf("second add: %v", err)
	}

	if len(snap.Items) != 1 {
		t.Fatalf("expected one merged line, got %d", len(snap.Items))
	}
	if snap.Items[0].Quantity != 3 {
		t.Fatalf("expected quantity 3, got %d", snap.Items[0].Quantity)
	}
	if snap.TotalCents != 3*59900 {
		t.Fatalf("expected total %d, got %d", 3*59900, snap.TotalCents)
	}
}

func TestOfflineUnknownProduct(t *testing.T) {
	backend := newOffline(t)
	if _, err := backend.Add(context.Background(), 99, 1); err == nil {
		t.Fatal("expected error for unknown product")
	}
}

func TestOfflineUpdateAndRemove(t *testing.T) {
	backend := newOffline(t)
	ctx := context.Background()

	if _, err := backend.Add(ctx, 1, 1); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := backend.Add(ctx, 2, 1); err != nil {
		t.Fatalf("add: %v", err)
	}

	snap, err := backend.Update(ctx, 1, 4)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if snap.Items[0].Quantity != 4 {
		t.Fatalf("expected quantity 4, got %d", snap.Items[0].Quantity)
	}

	// Quantity zero drops the line.
	snap, err = backend.Update(ctx, 1, 0)
	if err != nil {
		t.Fatalf("update to zero: %v", err)
	}
	if len(snap.Items) != 1 || snap.Items[0].ProductID != 2 {
		t.Fatalf("expected only product 2 to remain, got %+v", snap.Items)
	}

	snap, err = backend.Remove(ctx, 2)
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if len(snap.Items) != 0 || snap.TotalCents != 0 {
		t.Fatalf("expected empty cart, got %+v", snap)
	}

	// Removing an absent line is a no-op.
	if _, err := backend.Remove(ctx, 2); err != nil {
		t.Fatalf("repeat remove: %v", err)
	}
}

func TestOfflinePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")
	ctx := context.Background()

	first, err := NewOfflineBackend(path, testCatalog())
	if err != nil {
		t.Fatalf("build backend: %v", err)
	}
	if _, err := first.Add(ctx, 1, 2); err != nil {
		t.Fatalf("add: %v", err)
	}

	second, err := NewOfflineBackend(path, testCatalog())
	if err != nil {
		t.Fatalf("reopen backend: %v", err)
	}
	snap, err := second.Get(ctx)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(snap.Items) != 1 || snap.Items[0].Quantity != 2 {
		t.Fatalf("expected persisted line, got %+v", snap.Items)
	}
}

func TestOfflineCheckoutClears(t *testing.T) {
	backend := newOffline(t)
	ctx := context.Background()

	if _, err := backend.Add(ctx, 1, 1); err != nil {
		t.Fatalf("add: %v", err)
	}
	snap, err := backend.Checkout(ctx)
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}
	if len(snap.Items) != 0 {
		t.Fatalf("expected cleared cart, got %d lines", len(snap.Items))
	}
}
