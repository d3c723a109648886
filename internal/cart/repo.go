package cart

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/drivecans/storefront-backend/pkg/db/models"
)

// Repository encapsulates cart persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a cart repository bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// UpsertBySession creates the cart row for a session on first sight and
// touches updated_at on every later request. The fetch after the upsert
// returns the row regardless of which branch the engine took.
func (r *Repository) UpsertBySession(ctx context.Context, sessionID string) (*models.Cart, error) {
	if sessionID == "" {
		return nil, gorm.ErrInvalidValue
	}

	now := time.Now().UTC()
	err := r.db.WithContext(ctx).Exec(`
		INSERT INTO carts (session_id, created_at, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT (session_id) DO UPDATE SET updated_at = excluded.updated_at`,
		sessionID, now, now,
	).Error
	if err != nil {
		return nil, err
	}
	return r.FindBySession(ctx, sessionID)
}

// FindBySession loads a cart row by its session identifier.
func (r *Repository) FindBySession(ctx context.Context, sessionID string) (*models.Cart, error) {
	var row models.Cart
	if err := r.db.WithContext(ctx).Where("session_id = ?", sessionID).First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// AddItem inserts a line or increments an existing line for the same
// product in a single statement, so concurrent adds never lose updates
// or produce duplicate rows.
func (r *Repository) AddItem(ctx context.Context, cartID, productID uint, quantity int) error {
	now := time.Now().UTC()
	return r.db.WithContext(ctx).Exec(`
		INSERT INTO cart_items (cart_id, product_id, quantity, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (cart_id, product_id)
		DO UPDATE SET quantity = quantity + excluded.quantity, updated_at = excluded.updated_at`,
		cartID, productID, quantity, now, now,
	).Error
}

// SetItemQuantity overwrites a line's quantity, scoped to the owning cart.
// Returns the number of rows touched so callers can distinguish a missing line.
func (r *Repository) SetItemQuantity(ctx context.Context, cartID, itemID uint, quantity int) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.CartItem{}).
		Where("id = ? AND cart_id = ?", itemID, cartID).
		Updates(map[string]any{"quantity": quantity, "updated_at": time.Now().UTC()})
	return result.RowsAffected, result.Error
}

// DeleteItem removes a line scoped to the owning cart. Deleting a line that
// is absent, or that belongs to another cart, is a no-op.
func (r *Repository) DeleteItem(ctx context.Context, cartID, itemID uint) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND cart_id = ?", itemID, cartID).
		Delete(&models.CartItem{}).
		Error
}

// DeleteAllItems empties a cart.
func (r *Repository) DeleteAllItems(ctx context.Context, cartID uint) error {
	return r.db.WithContext(ctx).
		Where("cart_id = ?", cartID).
		Delete(&models.CartItem{}).
		Error
}

// TouchCart bumps the cart's updated_at.
func (r *Repository) TouchCart(ctx context.Context, cartID uint) error {
	return r.db.WithContext(ctx).
		Model(&models.Cart{}).
		Where("id = ?", cartID).
		Update("updated_at", time.Now().UTC()).
		Error
}

// ListLines returns the cart's lines joined with product display fields,
// in stable insertion order.
func (r *Repository) ListLines(ctx context.Context, cartID uint) ([]LineItem, error) {
	lines := make([]LineItem, 0)
	err := r.db.WithContext(ctx).Raw(`
		SELECT ci.id, ci.quantity, p.id AS product_id, p.slug, p.name,
		       p.price_cents, p.image, p.hover_image
		FROM cart_items ci
		JOIN products p ON p.id = ci.product_id
		WHERE ci.cart_id = ?
		ORDER BY ci.id`,
		cartID,
	).Scan(&lines).Error
	if err != nil {
		return nil, err
	}
	return lines, nil
}
