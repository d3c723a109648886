package controllers

import (
	"net/http"

	"github.com/drivecans/storefront-backend/api/middleware"
	"github.com/drivecans/storefront-backend/api/responses"
	cartsvc "github.com/drivecans/storefront-backend/internal/cart"
	pkgerrors "github.com/drivecans/storefront-backend/pkg/errors"
	"github.com/drivecans/storefront-backend/pkg/logger"
)

type checkoutResponse struct {
	OK         bool               `json:"ok"`
	CartID     uint               `json:"cart_id"`
	Items      []cartsvc.LineItem `json:"items"`
	TotalCents int                `json:"total_cents"`
}

// Checkout empties the session's cart and confirms the now-empty state.
func Checkout(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cartRow := middleware.CartFromContext(r.Context())
		if cartRow == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart context missing"))
			return
		}

		if err := svc.Checkout(r.Context(), cartRow.ID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, checkoutResponse{
			OK:         true,
			CartID:     cartRow.ID,
			Items:      []cartsvc.LineItem{},
			TotalCents: 0,
		})
	}
}
