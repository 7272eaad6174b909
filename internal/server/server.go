package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/habitkeeper/habitkeeper/internal/server/config"
	"github.com/habitkeeper/habitkeeper/internal/server/handlers"
	"github.com/habitkeeper/habitkeeper/internal/server/middleware"
	"github.com/habitkeeper/habitkeeper/internal/server/storage"
	"github.com/habitkeeper/habitkeeper/internal/server/token"
)

// Storages объединяет хранилища, нужные серверу
type Storages struct {
	Users  storage.UserStorage
	Habits storage.HabitStorage
	Pinger handlers.Pinger
}

// Server оборачивает http.Server с собранным роутером
type Server struct {
	srv    *http.Server
	logger *slog.Logger
}

// New собирает роутер и настраивает http.Server
// Habit-маршруты защищены auth middleware, регистрация и выдача токена — нет
func New(logger *slog.Logger, cfg *config.Config, stores Storages, version string) *Server {
	tokens := token.NewService(cfg.JWTSecret, cfg.AccessTokenTTL)

	authHandler := handlers.NewAuthHandler(logger, stores.Users, tokens)
	habitsHandler := handlers.NewHabitsHandler(logger, stores.Habits)
	healthHandler := handlers.NewHealthHandler(logger, stores.Pinger, version)

	requireAuth := middleware.Auth(logger, tokens, stores.Users)

	mux := http.NewServeMux()

	// Публичные маршруты
	mux.HandleFunc("POST /users/register", authHandler.Register)
	mux.HandleFunc("POST /token", authHandler.Token)
	mux.HandleFunc("GET /api/health", healthHandler.Health)

	// Текущий пользователь, под auth guard
	mux.Handle("GET /users/me/", requireAuth(http.HandlerFunc(authHandler.Me)))

	// Маршруты привычек, все под auth guard
	mux.Handle("GET /habits/", requireAuth(http.HandlerFunc(habitsHandler.List)))
	mux.Handle("POST /habits/", requireAuth(http.HandlerFunc(habitsHandler.Create)))
	mux.Handle("PUT /habits/{id}", requireAuth(http.HandlerFunc(habitsHandler.Update)))
	mux.Handle("PUT /habits/{id}/toggle", requireAuth(http.HandlerFunc(habitsHandler.Toggle)))
	mux.Handle("DELETE /habits/{id}", requireAuth(http.HandlerFunc(habitsHandler.Delete)))

	// Цепочка middleware снаружи внутрь: recovery -> request id -> logging -> CORS
	var handler http.Handler = mux
	handler = middleware.CORS(cfg.CORSOrigins)(handler)
	handler = middleware.Logging(logger)(handler)
	handler = middleware.RequestID()(handler)
	handler = middleware.Recovery(logger)(handler)

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	return &Server{
		srv:    srv,
		logger: logger,
	}
}

// Handler возвращает собранный корневой handler (для httptest)
func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}

// ListenAndServe запускает HTTP сервер
func (s *Server) ListenAndServe() error {
	s.logger.Info("server listening", "addr", s.srv.Addr)
	return s.srv.ListenAndServe()
}

// Shutdown аккуратно останавливает сервер, дожидаясь активных запросов
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
