package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type contextKey string

// requestIDKey ключ для хранения request id в контексте
const requestIDKey contextKey = "request_id"

// requestIDHeader заголовок, в котором id отдается клиенту
const requestIDHeader = "X-Request-Id"

// RequestID создает middleware, присваивающее каждому запросу уникальный id
// Id кладется в контекст и в заголовок ответа, логирование его подхватывает
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Уважаем id, присланный вышестоящим прокси
			id := r.Header.Get(requestIDHeader)
			if id == "" {
				id = uuid.New().String()
			}

			w.Header().Set(requestIDHeader, id)

			ctx := context.WithValue(r.Context(), requestIDKey, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetRequestID извлекает request id из контекста
// Возвращает пустую строку, если middleware не отработал
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
