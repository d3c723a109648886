package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/drivecans/storefront-backend/api/controllers"
	"github.com/drivecans/storefront-backend/api/middleware"
	"github.com/drivecans/storefront-backend/internal/auth"
	"github.com/drivecans/storefront-backend/internal/cart"
	"github.com/drivecans/storefront-backend/internal/products"
	"github.com/drivecans/storefront-backend/pkg/config"
	"github.com/drivecans/storefront-backend/pkg/db"
	"github.com/drivecans/storefront-backend/pkg/logger"
	"github.com/drivecans/storefront-backend/pkg/metrics"
)

// RouterParams carries everything the HTTP surface depends on.
type RouterParams struct {
	Config   *config.Config
	Logger   *logger.Logger
	Pinger   db.Pinger
	Products products.Service
	Cart     cart.Service
	Auth     auth.Service
	Metrics  *metrics.HTTPMetrics
	Registry *prometheus.Registry
}

func NewRouter(params RouterParams) http.Handler {
	cfg := params.Config
	logg := params.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(params.Metrics),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, params.Pinger, logg))
	})

	if params.Registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(params.Registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/products", controllers.ListProducts(params.Products, logg))
		r.Get("/products/{idOrSlug}", controllers.GetProduct(params.Products, logg))

		// Cart and checkout share the session middleware so every request
		// lands on the same session-keyed cart.
		r.Group(func(r chi.Router) {
			r.Use(middleware.CartSession(cfg.Session, params.Cart, logg))
			r.Get("/cart", controllers.GetCart(params.Cart, logg))
			r.Post("/cart", controllers.AddCartItem(params.Cart, logg))
			r.Patch("/cart", controllers.UpdateCartItem(params.Cart, logg))
			r.Delete("/cart/{itemID}", controllers.RemoveCartItem(params.Cart, logg))
			r.Post("/checkout", controllers.Checkout(params.Cart, logg))
		})

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", controllers.Register(params.Auth, logg))
			r.Post("/login", controllers.Login(cfg.Session, params.Auth, logg))
			r.Post("/logout", controllers.Logout(cfg.Session, params.Auth, logg))
		})
	})

	return r
}
