package middleware

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/habitkeeper/habitkeeper/internal/models"
	"github.com/habitkeeper/habitkeeper/internal/server/handlers"
	"github.com/habitkeeper/habitkeeper/internal/server/storage"
	"github.com/habitkeeper/habitkeeper/internal/server/token"
)

func setupTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type mockUserStorage struct {
	users map[string]*models.User
}

func (m *mockUserStorage) CreateUser(ctx context.Context, user *models.User) error {
	return nil
}

func (m *mockUserStorage) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	user, ok := m.users[username]
	if !ok {
		return nil, storage.ErrUserNotFound
	}
	return user, nil
}

func (m *mockUserStorage) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	for _, user := range m.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, storage.ErrUserNotFound
}

func setupAuthTest(t *testing.T, ttl time.Duration) (http.Handler, *token.Service, *models.User) {
	t.Helper()

	user := &models.User{ID: 1, Username: "alice"}
	users := &mockUserStorage{users: map[string]*models.User{"alice": user}}
	tokens := token.NewService("test-secret", ttl)

	// Конечный handler фиксирует, что пользователь дошел через контекст
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, ok := handlers.GetUser(r.Context())
		require.True(t, ok)
		assert.Equal(t, user.ID, got.ID)
		w.WriteHeader(http.StatusOK)
	})

	return Auth(setupTestLogger(), tokens, users)(next), tokens, user
}

func TestAuth_Success(t *testing.T) {
	handler, tokens, user := setupAuthTest(t, time.Minute)

	accessToken, _, err := tokens.Issue(user.ID, user.Username)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/habits/", nil)
	req.Header.Set("Authorization", "Bearer "+accessToken)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuth_MissingHeader(t *testing.T) {
	handler, _, _ := setupAuthTest(t, time.Minute)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/habits/", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
}

func TestAuth_BadFormat(t *testing.T) {
	handler, tokens, user := setupAuthTest(t, time.Minute)

	accessToken, _, err := tokens.Issue(user.ID, user.Username)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
	}{
		{"no scheme", accessToken},
		{"wrong scheme", "Basic " + accessToken},
		{"empty", " "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/habits/", nil)
			req.Header.Set("Authorization", tt.header)

			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestAuth_InvalidToken(t *testing.T) {
	handler, _, _ := setupAuthTest(t, time.Minute)

	req := httptest.NewRequest(http.MethodGet, "/habits/", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_ExpiredToken(t *testing.T) {
	// Отрицательный TTL дает уже истекший токен
	handler, tokens, user := setupAuthTest(t, -time.Minute)

	accessToken, _, err := tokens.Issue(user.ID, user.Username)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/habits/", nil)
	req.Header.Set("Authorization", "Bearer "+accessToken)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_UnknownUser(t *testing.T) {
	handler, tokens, _ := setupAuthTest(t, time.Minute)

	// Токен валиден, но пользователя уже нет в хранилище
	accessToken, _, err := tokens.Issue(99, "ghost")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/habits/", nil)
	req.Header.Set("Authorization", "Bearer "+accessToken)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
