package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/drivecans/storefront-backend/api/responses"
	productsvc "github.com/drivecans/storefront-backend/internal/products"
	pkgerrors "github.com/drivecans/storefront-backend/pkg/errors"
	"github.com/drivecans/storefront-backend/pkg/logger"
)

// ListProducts returns the full catalog in stable order.
func ListProducts(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}

		summaries, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, summaries)
	}
}

// GetProduct resolves numeric identifiers by id and anything else by slug.
func GetProduct(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}

		row, err := svc.Get(r.Context(), chi.URLParam(r, "idOrSlug"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, row)
	}
}
