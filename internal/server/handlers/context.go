package handlers

import (
	"context"

	"github.com/habitkeeper/habitkeeper/internal/models"
)

// contextKey тип для ключей контекста
type contextKey string

// userKey ключ для хранения аутентифицированного пользователя в контексте
const userKey contextKey = "user"

// WithUser возвращает контекст с прикрепленным пользователем
// Используется auth middleware после успешной проверки токена
func WithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// GetUser извлекает аутентифицированного пользователя из контекста запроса
func GetUser(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(userKey).(*models.User)
	return user, ok
}
