// Package clear реализует HTTP-обработчик очистки корзины. Операция
// идемпотентна: повторная очистка пустой корзины проходит без ошибки.
package clear

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/dataiq/storefront/internal/http/middlewarectx"
	"github.com/dataiq/storefront/internal/http/response"
	"github.com/dataiq/storefront/internal/lib/sl"
)

// Handler управляет HTTP-запросами на очистку корзины.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики корзины.
type Service interface {
	Clear(ctx context.Context, visitorUID string) error
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.cart.clear"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	visitorUID, ok := r.Context().Value(middlewarectx.VisitorUID).(string)
	if !ok || visitorUID == "" {
		log.Error("visitor uid not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	if err := h.service.Clear(r.Context(), visitorUID); err != nil {
		log.Error("failed to clear cart", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not clear cart"))
		return
	}

	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"items":       []any{},
		"total_price": 0,
		"total_count": 0,
	}))
}
