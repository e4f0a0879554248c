// Package storefront предоставляет маршруты для приложения витрины.
package storefront

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dataiq/storefront/internal/catalog"
	"github.com/dataiq/storefront/internal/http/handlers/assistant/ask"
	cartadd "github.com/dataiq/storefront/internal/http/handlers/cart/add"
	cartclear "github.com/dataiq/storefront/internal/http/handlers/cart/clear"
	cartremove "github.com/dataiq/storefront/internal/http/handlers/cart/remove"
	cartshow "github.com/dataiq/storefront/internal/http/handlers/cart/show"
	"github.com/dataiq/storefront/internal/http/handlers/catalog/categories"
	"github.com/dataiq/storefront/internal/http/handlers/catalog/dictionary"
	cataloglist "github.com/dataiq/storefront/internal/http/handlers/catalog/list"
	catalogread "github.com/dataiq/storefront/internal/http/handlers/catalog/read"
	"github.com/dataiq/storefront/internal/http/handlers/catalog/sample"
	"github.com/dataiq/storefront/internal/http/handlers/checkout/process"
	compareadd "github.com/dataiq/storefront/internal/http/handlers/compare/add"
	compareclear "github.com/dataiq/storefront/internal/http/handlers/compare/clear"
	compareremove "github.com/dataiq/storefront/internal/http/handlers/compare/remove"
	compareshow "github.com/dataiq/storefront/internal/http/handlers/compare/show"
	"github.com/dataiq/storefront/internal/http/handlers/health"
	prefssave "github.com/dataiq/storefront/internal/http/handlers/prefs/save"
	prefsshow "github.com/dataiq/storefront/internal/http/handlers/prefs/show"
	"github.com/dataiq/storefront/internal/http/handlers/search"
	sessionaccess "github.com/dataiq/storefront/internal/http/handlers/session/access"
	"github.com/dataiq/storefront/internal/http/handlers/session/login"
	"github.com/dataiq/storefront/internal/http/handlers/session/logout"
	sessionshow "github.com/dataiq/storefront/internal/http/handlers/session/show"
	usecaselist "github.com/dataiq/storefront/internal/http/handlers/usecase/list"
	"github.com/dataiq/storefront/internal/http/handlers/usecase/navigate"
	"github.com/dataiq/storefront/internal/http/middlewarectx"
	"github.com/dataiq/storefront/internal/lib/jwt"
	accessservice "github.com/dataiq/storefront/internal/services/access"
	assistantservice "github.com/dataiq/storefront/internal/services/assistant"
	cartservice "github.com/dataiq/storefront/internal/services/cart"
	checkoutservice "github.com/dataiq/storefront/internal/services/checkout"
	compareservice "github.com/dataiq/storefront/internal/services/compare"
	prefsservice "github.com/dataiq/storefront/internal/services/prefs"
	queryservice "github.com/dataiq/storefront/internal/services/query"
	recommendservice "github.com/dataiq/storefront/internal/services/recommend"
)

// Services зависимости маршрутов приложения.
type Services struct {
	Catalog   *catalog.Catalog
	Maker     jwt.Maker
	Access    *accessservice.AccessService
	Cart      *cartservice.CartService
	Compare   *compareservice.CompareService
	Query     *queryservice.QueryService
	Recommend *recommendservice.RecommendService
	Checkout  *checkoutservice.CheckoutService
	Assistant *assistantservice.AssistantService
	Prefs     *prefsservice.PrefsService
}

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, s *Services) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api/v1", func(r chi.Router) {
		// Открытые конечные точки: каталог доступен и без сессии
		r.Post("/session/login", login.New(logger, s.Access, s.Maker).ServeHTTP)
		r.Get("/products", cataloglist.New(logger, s.Query).ServeHTTP)
		r.Get("/products/{productID}", catalogread.New(logger, s.Query).ServeHTTP)
		r.Get("/categories", categories.New(logger, s.Query).ServeHTTP)
		r.Get("/search", search.New(logger, s.Query).ServeHTTP)
		r.Get("/usecases", usecaselist.New(logger, s.Recommend).ServeHTTP)
		r.Post("/usecases/navigate", navigate.New(logger, s.Recommend).ServeHTTP)
		r.Post("/assistant/ask", ask.New(logger, s.Assistant).ServeHTTP)

		// Группа с привязкой к сессии посетителя
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.SessionMiddleware(s.Maker, logger))
			r.Use(middlewarectx.RateLimitMiddleware(logger))

			r.Get("/session", sessionshow.New(logger, s.Access).ServeHTTP)
			r.Post("/session/logout", logout.New(logger, s.Access).ServeHTTP)
			r.Get("/session/access/{feature}", sessionaccess.New(logger, s.Access).ServeHTTP)

			r.Get("/products/{productID}/dictionary", dictionary.New(logger, s.Access, s.Query).ServeHTTP)
			r.Get("/products/{productID}/sample", sample.New(logger, s.Access, s.Query).ServeHTTP)

			r.Get("/cart", cartshow.New(logger, s.Cart).ServeHTTP)
			r.Post("/cart/items", cartadd.New(logger, s.Cart).ServeHTTP)
			r.Delete("/cart/items/{productID}", cartremove.New(logger, s.Cart).ServeHTTP)
			r.Delete("/cart", cartclear.New(logger, s.Cart).ServeHTTP)

			r.Get("/compare", compareshow.New(logger, s.Compare).ServeHTTP)
			r.Post("/compare/{productID}", compareadd.New(logger, s.Compare).ServeHTTP)
			r.Delete("/compare/{productID}", compareremove.New(logger, s.Compare).ServeHTTP)
			r.Delete("/compare", compareclear.New(logger, s.Compare).ServeHTTP)

			r.Post("/checkout", process.New(logger, s.Checkout).ServeHTTP)

			r.Get("/prefs", prefsshow.New(logger, s.Prefs).ServeHTTP)
			r.Put("/prefs", prefssave.New(logger, s.Prefs).ServeHTTP)
		})
	})

	r.Get("/health", health.New(s.Catalog.Size()).ServeHTTP)
	r.Handle("/metrics", promhttp.Handler())
}
