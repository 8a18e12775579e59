package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lowkeylegends/storefront-backend/api/controllers"
	"github.com/lowkeylegends/storefront-backend/api/middleware"
	"github.com/lowkeylegends/storefront-backend/internal/addresses"
	"github.com/lowkeylegends/storefront-backend/internal/carts"
	"github.com/lowkeylegends/storefront-backend/internal/catalog"
	"github.com/lowkeylegends/storefront-backend/internal/marketing"
	"github.com/lowkeylegends/storefront-backend/internal/orders"
	productsvc "github.com/lowkeylegends/storefront-backend/internal/products"
	"github.com/lowkeylegends/storefront-backend/internal/tax"
	"github.com/lowkeylegends/storefront-backend/pkg/config"
	"github.com/lowkeylegends/storefront-backend/pkg/logger"
	"github.com/lowkeylegends/storefront-backend/pkg/metrics"
	"github.com/lowkeylegends/storefront-backend/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	redisClient *redis.Client,
	httpMetrics *metrics.HTTPMetrics,
	catalogService catalog.Service,
	productService productsvc.Service,
	taxService tax.Service,
	addressService addresses.Service,
	orderService orders.Service,
	cartService carts.Service,
	marketingService marketing.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
		middleware.SecurityHeaders(),
		middleware.CORS(),
	)

	r.Get("/metrics", httpMetrics.Handler().ServeHTTP)

	r.Route("/api", func(r chi.Router) {
		// go-redis clients satisfy the limiter store; a nil client turns the
		// limiter into a pass-through.
		if redisClient != nil {
			r.Use(middleware.RateLimit(cfg.RateLimit, redisClient, logg))
		}

		r.Get("/health", controllers.Health())
		r.Get("/products", controllers.ListProducts(catalogService, logg))
		r.Get("/products/{id}", controllers.GetProduct(productService, logg))
		r.Get("/tax/{stateCode}", controllers.GetTaxRate(taxService, logg))

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth(cfg.JWT, logg))
			r.Get("/orders", controllers.ListOrders(orderService, logg))
			r.Route("/addresses", func(r chi.Router) {
				r.Get("/", controllers.ListAddresses(addressService, logg))
				r.Post("/", controllers.CreateAddress(addressService, logg))
				r.Delete("/{id}", controllers.DeleteAddress(addressService, logg))
			})
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.OptionalAuth(cfg.JWT, logg))
			r.Get("/orders/{orderNumber}", controllers.GetOrder(orderService, logg))

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", controllers.GetCart(cartService, logg))
				r.Post("/", controllers.AddCartItem(cartService, logg))
				r.Delete("/", controllers.ClearCart(cartService, logg))
				r.Patch("/items/{id}", controllers.UpdateCartItem(cartService, logg))
				r.Delete("/items/{id}", controllers.RemoveCartItem(cartService, logg))
			})

			r.Route("/marketing", func(r chi.Router) {
				r.Post("/subscribe", controllers.Subscribe(marketingService, logg))
				r.Post("/unsubscribe", controllers.Unsubscribe(marketingService, logg))
			})
		})
	})

	return r
}
