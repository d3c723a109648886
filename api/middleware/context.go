package middleware

import (
	"context"

	"github.com/drivecans/storefront-backend/pkg/db/models"
)

type contextKey string

const ctxCart contextKey = "cart"

// CartFromContext returns the cart resolved by the session middleware, or
// nil when the request did not pass through it.
func CartFromContext(ctx context.Context) *models.Cart {
	if ctx == nil {
		return nil
	}
	if v, ok := ctx.Value(ctxCart).(*models.Cart); ok {
		return v
	}
	return nil
}

// WithCart injects the resolved cart into the context.
func WithCart(ctx context.Context, cart *models.Cart) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxCart, cart)
}
