// Package access реализует HTTP-обработчик проверки доступа к именованной
// возможности. Возможность вне таблицы ограничений открыта любой роли.
package access

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/dataiq/storefront/internal/http/middlewarectx"
	"github.com/dataiq/storefront/internal/http/response"
	"github.com/dataiq/storefront/internal/lib/sl"
	"github.com/dataiq/storefront/internal/models"
)

// Handler управляет HTTP-запросами на проверку доступа.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики доступа.
type Service interface {
	Session(ctx context.Context, visitorUID string) (models.Session, error)
	CanAccess(session models.Session, feature string) bool
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.session.access"
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

	feature := chi.URLParam(r, "feature")
	if feature == "" {
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("feature is required"))
		return
	}

	session, err := h.service.Session(r.Context(), visitorUID)
	if err != nil {
		log.Error("failed to read session", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not read session"))
		return
	}

	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"feature": feature,
		"allowed": h.service.CanAccess(session, feature),
	}))
}
