package controllers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/drivecans/storefront-backend/api/middleware"
	"github.com/drivecans/storefront-backend/api/responses"
	"github.com/drivecans/storefront-backend/api/validators"
	cartsvc "github.com/drivecans/storefront-backend/internal/cart"
	pkgerrors "github.com/drivecans/storefront-backend/pkg/errors"
	"github.com/drivecans/storefront-backend/pkg/logger"
)

// GetCart returns the resolved session's cart snapshot.
func GetCart(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cartRow := middleware.CartFromContext(r.Context())
		if cartRow == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart context missing"))
			return
		}

		snap, err := svc.Get(r.Context(), cartRow.ID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, snap)
	}
}

// AddCartItem adds a product to the cart, merging into an existing line
// for the same product.
func AddCartItem(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cartRow := middleware.CartFromContext(r.Context())
		if cartRow == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart context missing"))
			return
		}

		var payload cartsvc.AddItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		snap, err := svc.AddItem(r.Context(), cartRow.ID, payload.ProductID, payload.Quantity)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, snap)
	}
}

// UpdateCartItem sets a line's quantity. Zero removes it.
func UpdateCartItem(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cartRow := middleware.CartFromContext(r.Context())
		if cartRow == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart context missing"))
			return
		}

		var payload cartsvc.UpdateItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		snap, err := svc.UpdateItem(r.Context(), cartRow.ID, payload.ItemID, *payload.Quantity)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, snap)
	}
}

// RemoveCartItem deletes a line by id; removing an absent line still
// succeeds with the current snapshot.
func RemoveCartItem(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cartRow := middleware.CartFromContext(r.Context())
		if cartRow == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart context missing"))
			return
		}

		itemID, err := strconv.ParseUint(chi.URLParam(r, "itemID"), 10, 64)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid item id"))
			return
		}

		snap, err := svc.RemoveItem(r.Context(), cartRow.ID, uint(itemID))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, snap)
	}
}
