package cart

// LineItem is one cart row joined with its product for display.
type LineItem struct {
	ID         uint   `json:"id" gorm:"column:id"`
	Quantity   int    `json:"quantity" gorm:"column:quantity"`
	ProductID  uint   `json:"product_id" gorm:"column:product_id"`
	Slug       string `json:"slug" gorm:"column:slug"`
	Name       string `json:"name" gorm:"column:name"`
	PriceCents int    `json:"price_cents" gorm:"column:price_cents"`
	Image      string `json:"image" gorm:"column:image"`
	HoverImage string `json:"hover_image" gorm:"column:hover_image"`
}

// Snapshot is the full cart state returned after every mutation.
type Snapshot struct {
	CartID     uint       `json:"cart_id"`
	Items      []LineItem `json:"items"`
	TotalCents int        `json:"total_cents"`
}

// AddItemRequest is the POST /api/cart payload.
type AddItemRequest struct {
	ProductID uint `json:"productId" validate:"required"`
	Quantity  int  `json:"quantity" validate:"required,min=1"`
}

// UpdateItemRequest is the PATCH /api/cart payload.
type UpdateItemRequest struct {
	ItemID   uint `json:"itemId" validate:"required"`
	Quantity *int `json:"quantity" validate:"required,min=0"`
}
