// Package login реализует HTTP-обработчик входа посетителя.
//
// Handler принимает JSON-запрос с ролью и именем, валидирует их, сохраняет
// новую сессию через сервис доступа и возвращает снимок сессии вместе со
// свежим токеном. Проверки учетных данных нет: вход всегда успешен, роль
// выбирает сам посетитель.
//
// Если запрос пришел с действующим токеном, идентификатор посетителя
// переиспользуется и его корзина с настройками переживают вход.
package login

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"
	"github.com/google/uuid"

	"github.com/dataiq/storefront/internal/http/response"
	"github.com/dataiq/storefront/internal/lib/jwt"
	"github.com/dataiq/storefront/internal/lib/sl"
	"github.com/dataiq/storefront/internal/models"
)

// Handler управляет HTTP-запросами на вход.
type Handler struct {
	log      *slog.Logger
	service  Service
	maker    jwt.Maker
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики сессии.
type Service interface {
	Login(ctx context.Context, visitorUID string, role models.Role, name string) (models.Session, error)
	TrialDaysLeft(session models.Session) int
}

// Request тело запроса входа.
type Request struct {
	Role string `json:"role" validate:"required,oneof=guest trial paid"`
	Name string `json:"name,omitempty"`
}

// New создает новый Handler с переданными логгером, сервисом и эмитентом токенов.
func New(log *slog.Logger, service Service, maker jwt.Maker) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		maker:    maker,
		validate: validator.New(),
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.session.login"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	visitorUID := h.visitorFromToken(r)
	if visitorUID == "" {
		visitorUID = uuid.New().String()
	}

	session, err := h.service.Login(r.Context(), visitorUID, models.Role(req.Role), req.Name)
	if err != nil {
		log.Error("failed to login", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not login"))
		return
	}

	token, err := h.maker.GenerateToken(visitorUID, string(session.Role), session.UserName)
	if err != nil {
		log.Error("failed to generate token", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not issue session token"))
		return
	}

	log.Info("visitor logged in", slog.String("role", string(session.Role)))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"token": token,
		"session": map[string]any{
			"role":            session.Role,
			"user_name":       session.UserName,
			"is_logged_in":    session.IsLoggedIn(),
			"trial_days_left": h.service.TrialDaysLeft(session),
		},
	}))
}

// visitorFromToken извлекает идентификатор посетителя из заголовка
// Authorization, если там есть действующий токен. Пустая строка — токена нет.
func (h *Handler) visitorFromToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	claims, err := h.maker.ParseToken(strings.TrimPrefix(authHeader, "Bearer "))
	if err != nil {
		return ""
	}
	return claims.VisitorUID
}
