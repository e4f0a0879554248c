// Package read реализует HTTP-обработчик чтения карточки продукта.
package read

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/dataiq/storefront/internal/http/response"
	"github.com/dataiq/storefront/internal/models"
)

type Handler struct {
	log     *slog.Logger
	service Service
}

type Service interface {
	Product(id string) (models.DataProduct, bool)
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.catalog.read"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	productID := chi.URLParam(r, "productID")
	product, ok := h.service.Product(productID)
	if !ok {
		log.Info("product not found", slog.String("product_id", productID))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("product not found"))
		return
	}

	render.JSON(w, r, response.StatusOKWithData(product))
}
