// Package show реализует HTTP-обработчик чтения списка сравнения.
// Осмысленное сопоставление возможно от двух продуктов, поэтому ответ
// включает признак готовности списка к показу.
package show

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/dataiq/storefront/internal/http/middlewarectx"
	"github.com/dataiq/storefront/internal/http/response"
	"github.com/dataiq/storefront/internal/models"
)

type Handler struct {
	log     *slog.Logger
	service Service
}

type Service interface {
	List(visitorUID string) []models.DataProduct
	IsMaxed(visitorUID string) bool
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.compare.show"
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

	list := h.service.List(visitorUID)
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"products":   list,
		"count":      len(list),
		"is_maxed":   h.service.IsMaxed(visitorUID),
		"comparable": len(list) >= 2,
	}))
}
