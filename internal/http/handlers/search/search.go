// Package search реализует HTTP-обработчик свободного поиска по каталогу
// с необязательным набором категорий: GET /search?q=...&category=a&category=b.
package search

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/dataiq/storefront/internal/http/response"
	"github.com/dataiq/storefront/internal/models"
)

type Handler struct {
	log     *slog.Logger
	service Service
}

type Service interface {
	Search(text string, categories []string) []models.DataProduct
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	products := h.service.Search(query.Get("q"), query["category"])
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"products": products,
		"count":    len(products),
	}))
}
