// Package navigate реализует HTTP-обработчик подбора продуктов под требования
// посетителя: принимает фильтры и возвращает до шести рекомендаций с оценкой
// соответствия.
package navigate

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/dataiq/storefront/internal/http/response"
	"github.com/dataiq/storefront/internal/lib/sl"
	recommendservice "github.com/dataiq/storefront/internal/services/recommend"
)

type Handler struct {
	log     *slog.Logger
	service Service
}

type Service interface {
	Recommend(f recommendservice.Filters) []recommendservice.Recommendation
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.usecase.navigate"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var filters recommendservice.Filters
	if err := render.DecodeJSON(r.Body, &filters); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("failed to decode request"))
		return
	}

	recs := h.service.Recommend(filters)
	log.Info("recommendations built", slog.Int("count", len(recs)))
	render.JSON(w, r, response.StatusOKWithData(recs))
}
