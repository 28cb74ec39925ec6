package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/printworks/printshop-backend/api/controllers"
	"github.com/printworks/printshop-backend/api/middleware"
	"github.com/printworks/printshop-backend/internal/auth"
	"github.com/printworks/printshop-backend/internal/catalog"
	checkoutsvc "github.com/printworks/printshop-backend/internal/checkout"
	"github.com/printworks/printshop-backend/internal/orders"
	"github.com/printworks/printshop-backend/internal/pricing"
	"github.com/printworks/printshop-backend/internal/shipping"
	"github.com/printworks/printshop-backend/pkg/auth/session"
	"github.com/printworks/printshop-backend/pkg/config"
	"github.com/printworks/printshop-backend/pkg/db"
	"github.com/printworks/printshop-backend/pkg/logger"
	pkgredis "github.com/printworks/printshop-backend/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	redisClient *pkgredis.Client,
	registry *prometheus.Registry,
	sessionManager session.AccessSessionChecker,
	authService auth.Service,
	catalogService catalog.Service,
	pricingService pricing.Service,
	shippingService shipping.Service,
	checkoutService checkoutsvc.Service,
	ordersService orders.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP, redisClient))
	})

	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.Post("/login", controllers.AuthLogin(authService, logg))
		r.With(middleware.Auth(cfg.JWT, sessionManager, logg)).
			Post("/logout", controllers.AuthLogout(authService, logg))
	})

	r.Route("/api/admin/v1/auth", func(r chi.Router) {
		r.Post("/login", controllers.OperatorAuthLogin(authService, logg))
	})

	// Browsing and quoting are open; quotes pick up broker discounts when the
	// caller presents a token.
	r.Group(func(r chi.Router) {
		r.Use(middleware.OptionalAuth(cfg.JWT, sessionManager, logg))
		r.Get("/api/v1/products/{productID}/catalog", controllers.ProductCatalog(catalogService, logg))
		r.Post("/api/v1/quote", controllers.Quote(pricingService, logg))
		r.Post("/api/v1/shipping/rates", controllers.ShippingRates(shippingService, logg))
	})

	// A typed nil *redis.Client would slip past the middleware's nil check
	// once boxed into the interface, so resolve it here.
	var idempotencyStore pkgredis.IdempotencyStore
	if redisClient != nil {
		idempotencyStore = redisClient
	}

	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, sessionManager, logg))
		r.Use(middleware.Idempotency(idempotencyStore, logg))

		r.Post("/api/v1/checkout", controllers.Checkout(checkoutService, logg))
		r.Route("/api/v1/orders", func(r chi.Router) {
			r.Get("/", controllers.OrderList(ordersService, logg))
			r.Get("/{orderID}", controllers.OrderDetail(ordersService, logg))
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireOperator(logg))
			r.Post("/api/admin/v1/orders/{orderID}/status", controllers.AdminOrderStatus(ordersService, logg))
		})
	})

	return r
}
