// Package health реализует HTTP-обработчик проверки живости сервиса.
package health

import (
	"net/http"

	"github.com/go-chi/render"

	"github.com/dataiq/storefront/internal/http/response"
)

type Handler struct {
	catalogSize int
}

func New(catalogSize int) *Handler {
	return &Handler{catalogSize: catalogSize}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"status":       "ok",
		"catalog_size": h.catalogSize,
	}))
}
