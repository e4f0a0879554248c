// Package list реализует HTTP-обработчик выдачи каталога продуктов
// с фильтрацией по категории, текстовому запросу и сортировкой.
package list

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/dataiq/storefront/internal/http/response"
	"github.com/dataiq/storefront/internal/models"
	queryservice "github.com/dataiq/storefront/internal/services/query"
)

type Handler struct {
	log     *slog.Logger
	service Service
}

type Service interface {
	Run(q queryservice.Query) []models.DataProduct
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.catalog.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	q := queryservice.Query{
		Text:     r.URL.Query().Get("q"),
		Category: r.URL.Query().Get("category"),
	}
	switch sortParam := r.URL.Query().Get("sort"); sortParam {
	case "", string(queryservice.SortByConfidence):
		q.Sort = queryservice.SortByConfidence
	case string(queryservice.SortByName):
		q.Sort = queryservice.SortByName
	case string(queryservice.SortByVolume):
		q.Sort = queryservice.SortByVolume
	default:
		log.Info("unknown sort parameter", slog.String("sort", sortParam))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("unknown sort parameter"))
		return
	}

	products := h.service.Run(q)
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"products": products,
		"count":    len(products),
	}))
}
