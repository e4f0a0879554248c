// Package categories реализует HTTP-обработчик списка категорий каталога.
package categories

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
	Categories() []models.CategoryInfo
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, response.StatusOKWithData(h.service.Categories()))
}
