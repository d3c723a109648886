package models

import "time"

// Product is a catalog listing. Rows are seeded at startup and treated as
// immutable afterwards.
type Product struct {
	ID         uint    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Slug       string  `gorm:"column:slug;uniqueIndex;not null" json:"slug"`
	Name       string  `gorm:"column:name;not null" json:"name"`
	PriceCents int     `gorm:"column:price_cents;not null" json:"price_cents"`
	Image      string  `gorm:"column:image" json:"image"`
	HoverImage string  `gorm:"column:hover_image" json:"hover_image"`
	Description string `gorm:"column:description" json:"description"`
	// Features holds a JSON-encoded string array, mirroring the seed data.
	Features  string    `gorm:"column:features" json:"features"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}
