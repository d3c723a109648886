package cart

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/drivecans/storefront-backend/pkg/db"
	"github.com/drivecans/storefront-backend/pkg/db/models"
	pkgerrors "github.com/drivecans/storefront-backend/pkg/errors"
)

// Service exposes session-scoped cart operations. Every mutation returns
// the resulting snapshot so clients never need a follow-up read.
type Service interface {
	ResolveSession(ctx context.Context, sessionID string) (*models.Cart, error)
	Get(ctx context.Context, cartID uint) (*Snapshot, error)
	AddItem(ctx context.Context, cartID, productID uint, quantity int) (*Snapshot, error)
	UpdateItem(ctx context.Context, cartID, itemID uint, quantity int) (*Snapshot, error)
	RemoveItem(ctx context.Context, cartID, itemID uint) (*Snapshot, error)
	Checkout(ctx context.Context, cartID uint) error
}

type productFinder interface {
	FindByID(ctx context.Context, id uint) (*models.Product, error)
}

// ServiceParams carries the cart service dependencies.
type ServiceParams struct {
	Client   *db.Client
	Products productFinder
}

type service struct {
	client   *db.Client
	repo     *Repository
	products productFinder
}

// NewService builds the cart service over the shared DB client.
func NewService(params ServiceParams) (Service, error) {
	if params.Client == nil {
		return nil, fmt.Errorf("db client required")
	}
	if params.Products == nil {
		return nil, fmt.Errorf("product finder required")
	}
	return &service{
		client:   params.Client,
		repo:     NewRepository(params.Client.DB()),
		products: params.Products,
	}, nil
}

// ResolveSession maps a session identifier to its cart, creating the cart
// row on first contact.
func (s *service) ResolveSession(ctx context.Context, sessionID string) (*models.Cart, error) {
	if sessionID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "session id required")
	}
	row, err := s.repo.UpsertBySession(ctx, sessionID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "resolve cart session")
	}
	return row, nil
}

func (s *service) Get(ctx context.Context, cartID uint) (*Snapshot, error) {
	return s.snapshot(ctx, cartID)
}

func (s *service) AddItem(ctx context.Context, cartID, productID uint, quantity int) (*Snapshot, error) {
	if quantity < 1 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be at least 1")
	}

	if _, err := s.products.FindByID(ctx, productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load product")
	}

	if err := s.repo.AddItem(ctx, cartID, productID, quantity); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "add cart item")
	}
	return s.snapshot(ctx, cartID)
}

// UpdateItem overwrites a line's quantity. Zero removes the line, matching
// what a quantity stepper on the client expects.
func (s *service) UpdateItem(ctx context.Context, cartID, itemID uint, quantity int) (*Snapshot, error) {
	if quantity < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity must not be negative")
	}

	if quantity == 0 {
		if err := s.repo.DeleteItem(ctx, cartID, itemID); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "remove cart item")
		}
		return s.snapshot(ctx, cartID)
	}

	affected, err := s.repo.SetItemQuantity(ctx, cartID, itemID, quantity)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update cart item")
	}
	if affected == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "cart item not found")
	}
	return s.snapshot(ctx, cartID)
}

// RemoveItem deletes a line. Removing a line that is already gone, or that
// belongs to another session's cart, succeeds without changing anything.
func (s *service) RemoveItem(ctx context.Context, cartID, itemID uint) (*Snapshot, error) {
	if err := s.repo.DeleteItem(ctx, cartID, itemID); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "remove cart item")
	}
	return s.snapshot(ctx, cartID)
}

// Checkout empties the cart in a single transaction. Running it against an
// already-empty cart succeeds, so double-submits are harmless.
func (s *service) Checkout(ctx context.Context, cartID uint) error {
	err := s.client.WithTx(ctx, func(tx *gorm.DB) error {
		repo := NewRepository(tx)
		if err := repo.DeleteAllItems(ctx, cartID); err != nil {
			return err
		}
		return repo.TouchCart(ctx, cartID)
	})
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "checkout")
	}
	return nil
}

func (s *service) snapshot(ctx context.Context, cartID uint) (*Snapshot, error) {
	lines, err := s.repo.ListLines(ctx, cartID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load cart lines")
	}

	total := 0
	for _, line := range lines {
		total += line.PriceCents * line.Quantity
	}
	return &Snapshot{CartID: cartID, Items: lines, TotalCents: total}, nil
}
