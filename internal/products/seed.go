package products

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"

	"github.com/drivecans/storefront-backend/pkg/db"
	"github.com/drivecans/storefront-backend/pkg/db/models"
)

// SeedResult reports what the startup seed did.
type SeedResult struct {
	Seeded bool
	Count  int64
}

type seedProduct struct {
	Slug        string
	Name        string
	PriceCents  int
	Image       string
	HoverImage  string
	Description string
	Features    []string
}

var catalog = []seedProduct{
	{
		Slug:        "cans-mango",
		Name:        "CANS Mango — 24 × 330ml",
		PriceCents:  59900,
		Image:       "/Products/test.png",
		HoverImage:  "/Products/test2.jpg",
		Description: "Osvěžující mango příchuť. Přírodní kofein z guarany, vitamíny B, bez přidaného cukru.",
		Features:    []string{"Přírodní kofein", "Bez cukru", "Vegan", "Recyklovatelná plechovka"},
	},
	{
		Slug:        "cans-citrus",
		Name:        "CANS Citrus — 24 × 330ml",
		PriceCents:  59900,
		Image:       "/Products/test.png",
		HoverImage:  "/Products/test2.jpg",
		Description: "Energizující citrusová příchuť. Přírodní kofein, vitamíny, bez cukru.",
		Features:    []string{"Citrus", "Bez cukru", "Vegan", "Recyklovatelná plechovka"},
	},
	{
		Slug:        "cans-berry",
		Name:        "CANS Berry — 24 × 330ml",
		PriceCents:  59900,
		Image:       "/Products/test.png",
		HoverImage:  "/Products/test2.jpg",
		Description: "Lahodná lesní směs. Přírodní kofein, vitamíny, bez cukru.",
		Features:    []string{"Lesní ovoce", "Bez cukru", "Vegan", "Recyklovatelná plechovka"},
	},
	{
		Slug:        "test-bottle",
		Name:        "Test Bottle",
		PriceCents:  2990,
		Image:       "/Products/test.png",
		HoverImage:  "/Products/test2.jpg",
		Description: "Stylová láhev na vodu pro každý den.",
		Features:    []string{"BPA-free", "0.75l", "Lehká a odolná"},
	},
	{
		Slug:        "voda",
		Name:        "Voda",
		PriceCents:  1990,
		Image:       "/Products/voda.png",
		HoverImage:  "/Products/test2.jpg",
		Description: "Osvěžující voda pro hydrataci.",
		Features:    []string{"Přírodní", "Bez cukru", "Recyklovatelný obal"},
	},
	{
		Slug:        "drive-starter-pack",
		Name:        "DRIVE Starter Pack",
		PriceCents:  99900,
		Image:       "/Products/test.png",
		HoverImage:  "/Products/test2.jpg",
		Description: "Startovní balíček DRIVE pro první objednávku.",
		Features:    []string{"Starter pack", "Limitovaná edice"},
	},
}

// Seed inserts any catalog products whose slug is not yet present. Inserts
// run in one transaction so a partial seed never persists.
func Seed(ctx context.Context, client *db.Client) (SeedResult, error) {
	repo := NewRepository(client.DB())

	slugs := make([]string, 0, len(catalog))
	for _, p := range catalog {
		slugs = append(slugs, p.Slug)
	}

	present, err := repo.ExistingSlugs(ctx, slugs)
	if err != nil {
		return SeedResult{}, fmt.Errorf("checking seeded slugs: %w", err)
	}

	var missing []models.Product
	for _, p := range catalog {
		if present[p.Slug] {
			continue
		}
		row, err := p.toModel()
		if err != nil {
			return SeedResult{}, err
		}
		missing = append(missing, row)
	}

	if len(missing) > 0 {
		if err := client.WithTx(ctx, func(tx *gorm.DB) error {
			return tx.Create(&missing).Error
		}); err != nil {
			return SeedResult{}, fmt.Errorf("inserting seed products: %w", err)
		}
	}

	count, err := repo.Count(ctx)
	if err != nil {
		return SeedResult{}, fmt.Errorf("counting products: %w", err)
	}

	return SeedResult{Seeded: len(missing) > 0, Count: count}, nil
}

func (p seedProduct) toModel() (models.Product, error) {
	features, err := json.Marshal(p.Features)
	if err != nil {
		return models.Product{}, fmt.Errorf("encoding features for %s: %w", p.Slug, err)
	}
	return models.Product{
		Slug:        p.Slug,
		Name:        p.Name,
		PriceCents:  p.PriceCents,
		Image:       p.Image,
		HoverImage:  p.HoverImage,
		Description: p.Description,
		Features:    string(features),
	}, nil
}
