package cartclient

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/drivecans/storefront-backend/internal/cart"
	"github.com/drivecans/storefront-backend/internal/products"
)

// Catalog resolves product snapshots for offline adds, standing in for the
// product data already present on the page.
type Catalog interface {
	Product(id uint) (products.Summary, bool)
}

// OfflineBackend keeps the cart as a JSON document in local storage.
// Lines are keyed by product id, so adding a product already in the cart
// increments its quantity instead of appending a duplicate.
type OfflineBackend struct {
	mu      sync.Mutex
	path    string
	catalog Catalog
}

// NewOfflineBackend builds an offline backend persisting to the given file.
func NewOfflineBackend(path string, catalog Catalog) (*OfflineBackend, error) {
	if path == "" {
		return nil, fmt.Errorf("storage path required")
	}
	if catalog == nil {
		return nil, fmt.Errorf("catalog required")
	}
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating storage dir: %w", err)
		}
	}
	return &OfflineBackend{path: path, catalog: catalog}, nil
}

func (b *OfflineBackend) Get(_ context.Context) (*cart.Snapshot, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	lines, err := b.load()
	if err != nil {
		return nil, err
	}
	return snapshotOf(lines), nil
}

func (b *OfflineBackend) Add(_ context.Context, productID uint, quantity int) (*cart.Snapshot, error) {
	if quantity < 1 {
		return nil, fmt.Errorf("quantity must be at least 1")
	}
	summary, ok := b.catalog.Product(productID)
	if !ok {
		return nil, fmt.Errorf("unknown product %d", productID)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	lines, err := b.load()
	if err != nil {
		return nil, err
	}

	found := false
	for i := range lines {
		if lines[i].ProductID == productID {
			lines[i].Quantity += quantity
			found = true
			break
		}
	}
	if !found {
		lines = append(lines, cart.LineItem{
			ID:         summary.ID,
			Quantity:   quantity,
			ProductID:  summary.ID,
			Slug:       summary.Slug,
			Name:       summary.Name,
			PriceCents: summary.PriceCents,
			Image:      summary.Image,
			HoverImage: summary.HoverImage,
		})
	}
	return b.commit(lines)
}

func (b *OfflineBackend) Update(_ context.Context, itemID uint, quantity int) (*cart.Snapshot, error) {
	if quantity < 0 {
		return nil, fmt.Errorf("quantity must not be negative")
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	lines, err := b.load()
	if err != nil {
		return nil, err
	}

	next := lines[:0]
	for _, line := range lines {
		if line.ID == itemID {
			if quantity == 0 {
				continue
			}
			line.Quantity = quantity
		}
		next = append(next, line)
	}
	return b.commit(next)
}

func (b *OfflineBackend) Remove(_ context.Context, itemID uint) (*cart.Snapshot, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	lines, err := b.load()
	if err != nil {
		return nil, err
	}

	next := lines[:0]
	for _, line := range lines {
		if line.ID != itemID {
			next = append(next, line)
		}
	}
	return b.commit(next)
}

func (b *OfflineBackend) Checkout(_ context.Context) (*cart.Snapshot, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.commit(nil)
}

func (b *OfflineBackend) load() ([]cart.LineItem, error) {
	raw, err := os.ReadFile(b.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading cart storage: %w", err)
	}
	var lines []cart.LineItem
	if err := json.Unmarshal(raw, &lines); err != nil {
		return nil, fmt.Errorf("decoding cart storage: %w", err)
	}
	return lines, nil
}

func (b *OfflineBackend) commit(lines []cart.LineItem) (*cart.Snapshot, error) {
	raw, err := json.Marshal(lines)
	if err != nil {
		return nil, fmt.Errorf("encoding cart storage: %w", err)
	}
	if err := os.WriteFile(b.path, raw, 0o644); err != nil {
		return nil, fmt.Errorf("writing cart storage: %w", err)
	}
	return snapshotOf(lines), nil
}

func snapshotOf(lines []cart.LineItem) *cart.Snapshot {
	if lines == nil {
		lines = []cart.LineItem{}
	}
	total := 0
	for _, line := range lines {
		total += line.PriceCents * line.Quantity
	}
	return &cart.Snapshot{Items: lines, TotalCents: total}
}
