package products

import "github.com/drivecans/storefront-backend/pkg/db/models"

// Summary is the listing shape: everything a product card needs, nothing more.
type Summary struct {
	ID         uint   `json:"id"`
	Slug       string `json:"slug"`
	Name       string `json:"name"`
	PriceCents int    `json:"price_cents"`
	Image      string `json:"image"`
	HoverImage string `json:"hover_image"`
}

func summaryFromModel(p models.Product) Summary {
	return Summary{
		ID:         p.ID,
		Slug:       p.Slug,
		Name:       p.Name,
		PriceCents: p.PriceCents,
		Image:      p.Image,
		HoverImage: p.HoverImage,
	}
}
