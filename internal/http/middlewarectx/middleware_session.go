// Package middlewarectx содержит HTTP middleware витрины.
//
// SessionMiddleware проверяет наличие и валидность токена сессии в заголовке
// Authorization и в случае успеха добавляет в контекст идентификатор
// посетителя, роль и имя для дальнейшего использования в обработчиках.
//
// В случае ошибки проверки возвращает HTTP 401 Unauthorized с сообщением об ошибке.
package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/dataiq/storefront/internal/http/response"
	"github.com/dataiq/storefront/internal/lib/jwt"
	"github.com/dataiq/storefront/internal/lib/sl"
)

// Key тип для ключей контекста HTTP-запроса.
type Key string

const (
	// VisitorUID — ключ для идентификатора посетителя в контексте
	VisitorUID Key = "visitor_uid"
	// Role — ключ для роли посетителя в контексте
	Role Key = "role"
	// UserName — ключ для имени пользователя в контексте
	UserName Key = "user_name"
)

// SessionMiddleware возвращает HTTP middleware, который проверяет токен
// сессии в заголовке Authorization.
//
// Если токен валиден, добавляет идентификатор посетителя, роль и имя в
// контекст запроса, иначе возвращает ошибку с HTTP статусом 401 Unauthorized.
func SessionMiddleware(maker jwt.Maker, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.SessionMiddleware"
			authHeader := r.Header.Get("Authorization")

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			if !strings.HasPrefix(authHeader, "Bearer ") {
				log.Error("missing or invalid authorization header")
				w.WriteHeader(http.StatusUnauthorized)
				render.JSON(w, r, response.Error("missing or invalid authorization header"))
				return
			}
			tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

			claims, err := maker.ParseToken(tokenStr)
			if err != nil {
				log.Error("invalid or expired token", sl.Err(err))
				w.WriteHeader(http.StatusUnauthorized)
				render.JSON(w, r, response.Error("invalid or expired token"))
				return
			}
			ctx := context.WithValue(r.Context(), VisitorUID, claims.VisitorUID)
			ctx = context.WithValue(ctx, Role, claims.Role)
			ctx = context.WithValue(ctx, UserName, claims.UserName)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
