// Package cartclient is the storefront-side cart controller. It drives a
// cart through one of two interchangeable backends: a server backend that
// delegates every mutation to the cart API, and an offline backend that
// keeps the cart in local persistent storage. The variant is chosen once
// at startup and never changes mid-session.
package cartclient

import (
	"context"

	"github.com/drivecans/storefront-backend/internal/cart"
)

// CartBackend is the capability a cart UI needs. Every mutation returns
// the refreshed snapshot so the caller can re-render without a second
// round trip.
type CartBackend interface {
	Get(ctx context.Context) (*cart.Snapshot, error)
	Add(ctx context.Context, productID uint, quantity int) (*cart.Snapshot, error)
	Update(ctx context.Context, itemID uint, quantity int) (*cart.Snapshot, error)
	Remove(ctx context.Context, itemID uint) (*cart.Snapshot, error)
	Checkout(ctx context.Context) (*cart.Snapshot, error)
}
