package session

import (
	"context"
	"errors"
	"time"
)

// ErrSessionNotFound возвращается, когда сохраненной сессии нет (logout или
// первый запуск)
var ErrSessionNotFound = errors.New("session not found")

// Session представляет сохраненную сессию клиента
type Session struct {
	Username    string `json:"username"`     // username пользователя
	AccessToken string `json:"access_token"` // bearer токен
	ExpiresAt   int64  `json:"expires_at"`   // unix время истечения токена
}

// Expired сообщает, истек ли токен к текущему моменту
func (s *Session) Expired() bool {
	return time.Now().Unix() >= s.ExpiresAt
}

// Store defines interface for client session persistence
type Store interface {
	// Save persists the session, replacing any previous one
	Save(ctx context.Context, sess *Session) error

	// Get retrieves the stored session
	// Returns ErrSessionNotFound if none exists
	Get(ctx context.Context) (*Session, error)

	// Delete removes the stored session (logout)
	// Returns ErrSessionNotFound if none exists
	Delete(ctx context.Context) error
}
