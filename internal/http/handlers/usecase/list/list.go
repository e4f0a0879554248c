// Package list реализует HTTP-обработчик списка сценариев использования.
package list

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
	UseCases() []models.UseCase
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, response.StatusOKWithData(h.service.UseCases()))
}
