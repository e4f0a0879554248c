// Package add реализует HTTP-обработчик добавления продукта в список
// сравнения. Отказ сервиса (список полон, дубликат или неизвестный продукт)
// передается вызывающей стороне как ошибка 409 без изменения списка.
package add

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/dataiq/storefront/internal/http/middlewarectx"
	"github.com/dataiq/storefront/internal/http/response"
	"github.com/dataiq/storefront/internal/models"
)

// Handler управляет HTTP-запросами на добавление в сравнение.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики списка сравнения.
type Service interface {
	Add(visitorUID, productID string) bool
	List(visitorUID string) []models.DataProduct
	IsMaxed(visitorUID string) bool
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.compare.add"
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

	if !h.service.Add(visitorUID, productID) {
		log.Info("compare add rejected", slog.String("product_id", productID))
		w.WriteHeader(http.StatusConflict)
		render.JSON(w, r, response.Error("compare list is full or already contains this product"))
		return
	}

	list := h.service.List(visitorUID)
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"products": list,
		"count":    len(list),
		"is_maxed": h.service.IsMaxed(visitorUID),
	}))
}
