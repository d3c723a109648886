package middleware

import (
	"net/http"

	"github.com/drivecans/storefront-backend/api/responses"
	"github.com/drivecans/storefront-backend/internal/cart"
	"github.com/drivecans/storefront-backend/pkg/config"
	"github.com/drivecans/storefront-backend/pkg/logger"
	"github.com/drivecans/storefront-backend/pkg/token"
)

// CartSession resolves the request to a cart. A request without the
// session cookie gets a fresh opaque token minted and set on the
// response; either way the cart row is upserted and injected into the
// request context.
func CartSession(cfg config.SessionConfig, svc cart.Service, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID := ""
			if cookie, err := r.Cookie(cfg.CartCookie); err == nil {
				sessionID = cookie.Value
			}
			if sessionID == "" {
				sessionID = token.NewSessionID()
				http.SetCookie(w, NewSessionCookie(cfg.CartCookie, sessionID, cfg.TTL))
			}

			ctx := r.Context()
			cartRow, err := svc.ResolveSession(ctx, sessionID)
			if err != nil {
				responses.WriteError(ctx, logg, w, err)
				return
			}

			ctx = WithCart(ctx, cartRow)
			if logg != nil {
				ctx = logg.WithCartID(ctx, cartRow.ID)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
