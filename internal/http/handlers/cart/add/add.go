// Package add реализует HTTP-обработчик добавления позиции в корзину.
//
// Handler принимает JSON-запрос с продуктом, планом и количеством, валидирует
// их, добавляет позицию через сервис корзины и возвращает обновленную корзину
// с итогами. Повторное добавление той же пары (продукт, план) увеличивает
// количество существующей позиции.
package add

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/dataiq/storefront/internal/http/middlewarectx"
	"github.com/dataiq/storefront/internal/http/response"
	"github.com/dataiq/storefront/internal/lib/sl"
	"github.com/dataiq/storefront/internal/models"
	cartservice "github.com/dataiq/storefront/internal/services/cart"
)

// Handler управляет HTTP-запросами на добавление в корзину.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики корзины.
type Service interface {
	Add(ctx context.Context, visitorUID, productID string, plan models.Plan, quantity int) (models.Cart, error)
}

// Request тело запроса добавления позиции.
type Request struct {
	ProductID string `json:"product_id" validate:"required"`
	Plan      string `json:"plan" validate:"required,oneof=basic premium enterprise"`
	Quantity  int    `json:"quantity,omitempty" validate:"omitempty,gte=1"`
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.cart.add"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	visitorUID, ok := r.Context().Value(middlewarectx.VisitorUID).(string)
	if !ok || visitorUID == "" {
		log.Error("visitor uid not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	cart, err := h.service.Add(r.Context(), visitorUID, req.ProductID, models.Plan(req.Plan), req.Quantity)
	if err != nil {
		if errors.Is(err, cartservice.ErrUnknownProduct) {
			log.Error("unknown product", slog.String("product_id", req.ProductID))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("product not found"))
			return
		}
		log.Error("failed to add item", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not add item to cart"))
		return
	}

	log.Info("item added to cart", slog.String("product_id", req.ProductID))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"items":       cart,
		"total_price": cart.TotalPrice(),
		"total_count": cart.TotalCount(),
	}))
}
