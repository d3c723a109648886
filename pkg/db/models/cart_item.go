package models

import "time"

// CartItem is one line item. The composite unique index guarantees a single
// row per (cart, product) pair so concurrent adds merge instead of
// duplicating.
type CartItem struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement"`
	CartID    uint      `gorm:"column:cart_id;not null;uniqueIndex:idx_cart_items_cart_product"`
	ProductID uint      `gorm:"column:product_id;not null;uniqueIndex:idx_cart_items_cart_product"`
	Quantity  int       `gorm:"column:quantity;not null;default:1"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
