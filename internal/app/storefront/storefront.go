// Package storefront собирает приложение витрины данных: каталог, хранилище
// состояния посетителей, сервисы и HTTP-сервер.
package storefront

import (
	"context"
	"errors"
	"log/slog"
	"math/rand"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/dataiq/storefront/internal/catalog"
	"github.com/dataiq/storefront/internal/config"
	"github.com/dataiq/storefront/internal/lib/jwt"
	accessservice "github.com/dataiq/storefront/internal/services/access"
	assistantservice "github.com/dataiq/storefront/internal/services/assistant"
	cartservice "github.com/dataiq/storefront/internal/services/cart"
	checkoutservice "github.com/dataiq/storefront/internal/services/checkout"
	compareservice "github.com/dataiq/storefront/internal/services/compare"
	prefsservice "github.com/dataiq/storefront/internal/services/prefs"
	queryservice "github.com/dataiq/storefront/internal/services/query"
	recommendservice "github.com/dataiq/storefront/internal/services/recommend"
	"github.com/dataiq/storefront/internal/store"
)

type App struct {
	server *http.Server
	logger *slog.Logger
	states *store.Store
}

func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	cat, err := catalog.Load()
	if err != nil {
		return nil, err
	}
	logger.Info("catalog loaded", slog.Int("products", cat.Size()))

	states, err := store.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}

	maker := jwt.NewJWTMaker(cfg.JWTSecretKey, cfg.TokenTTL)
	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))

	accessService := accessservice.NewAccessService(states, logger, cfg.TrialDays, nil)
	cartService := cartservice.NewCartService(states, cat, logger)
	compareService := compareservice.NewCompareService(cat, logger)
	queryService := queryservice.NewQueryService(cat)
	recommendService := recommendservice.NewRecommendService(cat, rnd)
	checkoutService := checkoutservice.NewCheckoutService(cartService, logger, cfg.CheckoutDelay, nil)
	assistantService := assistantservice.NewAssistantService(cfg.AssistantBaseDelay, rnd)
	prefsService := prefsservice.NewPrefsService(states)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, &Services{
		Catalog:   cat,
		Maker:     maker,
		Access:    accessService,
		Cart:      cartService,
		Compare:   compareService,
		Query:     queryService,
		Recommend: recommendService,
		Checkout:  checkoutService,
		Assistant: assistantService,
		Prefs:     prefsService,
	})

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		states: states,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		if closeErr := a.states.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
		return err
	}
}
