package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/habitkeeper/habitkeeper/internal/server/handlers"
	"github.com/habitkeeper/habitkeeper/internal/server/storage"
	"github.com/habitkeeper/habitkeeper/internal/server/token"
)

// Auth создает middleware для проверки JWT токена
// Извлекает bearer токен, валидирует его и резолвит пользователя в БД;
// любой сбой на этом пути — 401 без деталей
func Auth(logger *slog.Logger, tokens *token.Service, users storage.UserStorage) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Извлекаем токен из заголовка Authorization
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.Warn("Missing Authorization header")
				unauthorized(w, "missing token")
				return
			}

			// Ожидаем формат: "Bearer <token>"
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				logger.Warn("Invalid Authorization header format")
				unauthorized(w, "invalid token format")
				return
			}

			// Валидируем токен
			claims, err := tokens.Verify(parts[1])
			if err != nil {
				logger.Warn("Invalid access token", "error", err)
				unauthorized(w, "invalid or expired token")
				return
			}

			// Резолвим пользователя по id из claims: токен мог пережить удаление аккаунта
			user, err := users.GetUserByID(r.Context(), claims.UserID)
			if err != nil {
				if errors.Is(err, storage.ErrUserNotFound) {
					logger.Warn("Token references unknown user", "user_id", claims.UserID)
					unauthorized(w, "invalid token")
					return
				}
				logger.Error("Failed to resolve user", "error", err)
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				return
			}

			// Добавляем пользователя в контекст
			ctx := handlers.WithUser(r.Context(), user)

			logger.Debug("User authenticated", "user_id", user.ID, "username", user.Username)

			// Передаем запрос дальше с обновленным контекстом
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter, reason string) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	http.Error(w, "Unauthorized: "+reason, http.StatusUnauthorized)
}
