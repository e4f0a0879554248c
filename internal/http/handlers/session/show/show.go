// Package show реализует HTTP-обработчик чтения текущей сессии. Остаток
// пробного периода пересчитывается от текущего времени при каждом запросе.
package show

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/dataiq/storefront/internal/http/middlewarectx"
	"github.com/dataiq/storefront/internal/http/response"
	"github.com/dataiq/storefront/internal/lib/sl"
	"github.com/dataiq/storefront/internal/models"
)

// Handler управляет HTTP-запросами на чтение сессии.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики сессии.
type Service interface {
	Session(ctx context.Context, visitorUID string) (models.Session, error)
	TrialDaysLeft(session models.Session) int
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.session.show"
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

	session, err := h.service.Session(r.Context(), visitorUID)
	if err != nil {
		log.Error("failed to read session", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not read session"))
		return
	}

	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"session": map[string]any{
			"role":             session.Role,
			"user_name":        session.UserName,
			"is_logged_in":     session.IsLoggedIn(),
			"trial_start_date": session.TrialStartDate,
			"trial_days_left":  h.service.TrialDaysLeft(session),
		},
	}))
}
