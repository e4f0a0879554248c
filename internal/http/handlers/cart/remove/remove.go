// Package remove реализует HTTP-обработчик удаления позиций из корзины.
// Без параметра plan удаляются все плановые варианты продукта.
package remove

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/dataiq/storefront/internal/http/middlewarectx"
	"github.com/dataiq/storefront/internal/http/response"
	"github.com/dataiq/storefront/internal/lib/sl"
	"github.com/dataiq/storefront/internal/models"
)

// Handler управляет HTTP-запросами на удаление из корзины.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики корзины.
type Service interface {
	Remove(ctx context.Context, visitorUID, productID string, plan *models.Plan) (models.Cart, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.cart.remove"
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

	productID := chi.URLParam(r, "productID")
	if productID == "" {
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("product id is required"))
		return
	}

	var plan *models.Plan
	if planStr := r.URL.Query().Get("plan"); planStr != "" {
		if !models.IsValidPlan(planStr) {
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("unknown plan"))
			return
		}
		p := models.Plan(planStr)
		plan = &p
	}

	cart, err := h.service.Remove(r.Context(), visitorUID, productID, plan)
	if err != nil {
		log.Error("failed to remove item", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not remove item from cart"))
		return
	}

	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"items":       cart,
		"total_price": cart.TotalPrice(),
		"total_count": cart.TotalCount(),
	}))
}
