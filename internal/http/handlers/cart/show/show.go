package show

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/dataiq/storefront/internal/http/middlewarectx"
	"github.com/dataiq/storefront/internal/http/response"
	"github.com/dataiq/storefront/internal/lib/sl"
	"github.com/dataiq/storefront/internal/models"
)

type Handler struct {
	log     *slog.Logger
	service Service
}

type Service interface {
	Cart(ctx context.Context, visitorUID string) (models.Cart, error)
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.cart.show"
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

	cart, err := h.service.Cart(r.Context(), visitorUID)
	if err != nil {
		log.Error("failed to read cart", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not read cart"))
		return
	}

	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"items":       cart,
		"total_price": cart.TotalPrice(),
		"total_count": cart.TotalCount(),
	}))
}
