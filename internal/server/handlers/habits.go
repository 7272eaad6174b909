package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/habitkeeper/habitkeeper/internal/models"
	"github.com/habitkeeper/habitkeeper/internal/server/storage"
	"github.com/habitkeeper/habitkeeper/internal/validation"
	"github.com/habitkeeper/habitkeeper/pkg/api"
)

// HabitsHandler обрабатывает CRUD операции над привычками
// Все операции ограничены владельцем: пользователь видит и меняет только свое
type HabitsHandler struct {
	logger       *slog.Logger
	habitStorage storage.HabitStorage
}

// NewHabitsHandler создает новый handler для привычек
func NewHabitsHandler(logger *slog.Logger, habitStorage storage.HabitStorage) *HabitsHandler {
	return &HabitsHandler{
		logger:       logger,
		habitStorage: habitStorage,
	}
}

// List обрабатывает GET /habits/
// Возвращает привычки текущего пользователя в порядке создания,
// query параметры skip и limit управляют пагинацией
func (h *HabitsHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, ok := GetUser(ctx)
	if !ok {
		h.sendError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	skip, err := queryInt(r, "skip", 0)
	if err != nil {
		h.sendError(w, "invalid skip parameter", http.StatusBadRequest)
		return
	}
	limit, err := queryInt(r, "limit", defaultListLimit)
	if err != nil {
		h.sendError(w, "invalid limit parameter", http.StatusBadRequest)
		return
	}

	habits, err := h.habitStorage.ListHabits(ctx, user.ID, skip, limit)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list habits", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	// Всегда отдаем массив, даже пустой
	resp := make([]api.HabitResponse, 0, len(habits))
	for _, habit := range habits {
		resp = append(resp, habitResponse(habit))
	}

	h.sendJSON(w, resp, http.StatusOK)
}

// Create обрабатывает POST /habits/
// Создает новую привычку для текущего пользователя
func (h *HabitsHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, ok := GetUser(ctx)
	if !ok {
		h.sendError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req api.CreateHabitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode create habit request", slog.Any("error", err))
		h.sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := validation.ValidateHabitName(req.Name); err != nil {
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	habit := &models.Habit{
		OwnerID:     user.ID,
		Name:        req.Name,
		Description: req.Description,
		CreatedAt:   time.Now(),
	}

	if err := h.habitStorage.CreateHabit(ctx, habit); err != nil {
		h.logger.ErrorContext(ctx, "failed to create habit", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "habit created",
		slog.Int64("habit_id", habit.ID),
		slog.Int64("user_id", user.ID))

	h.sendJSON(w, habitResponse(habit), http.StatusCreated)
}

// Update обрабатывает PUT /habits/{id}
// Частичное обновление: отсутствующие поля не меняются
func (h *HabitsHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, ok := GetUser(ctx)
	if !ok {
		h.sendError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	habitID, err := parseHabitID(r)
	if err != nil {
		h.sendError(w, "invalid habit id", http.StatusBadRequest)
		return
	}

	var req api.UpdateHabitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode update habit request", slog.Any("error", err))
		h.sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	// Пустое имя не проходит даже при частичном обновлении
	if req.Name != nil {
		if err := validation.ValidateHabitName(*req.Name); err != nil {
			h.sendError(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	habit, err := h.habitStorage.UpdateHabit(ctx, user.ID, habitID, storage.HabitUpdate{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		h.sendStorageError(ctx, w, err)
		return
	}

	h.sendJSON(w, habitResponse(habit), http.StatusOK)
}

// Toggle обрабатывает PUT /habits/{id}/toggle
// Переключает флаг выполнения привычки
func (h *HabitsHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, ok := GetUser(ctx)
	if !ok {
		h.sendError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	habitID, err := parseHabitID(r)
	if err != nil {
		h.sendError(w, "invalid habit id", http.StatusBadRequest)
		return
	}

	habit, err := h.habitStorage.ToggleHabit(ctx, user.ID, habitID)
	if err != nil {
		h.sendStorageError(ctx, w, err)
		return
	}

	h.logger.InfoContext(ctx, "habit toggled",
		slog.Int64("habit_id", habit.ID),
		slog.Bool("completed", habit.Completed))

	h.sendJSON(w, habitResponse(habit), http.StatusOK)
}

// Delete обрабатывает DELETE /habits/{id}
// Удаляет привычку текущего пользователя
func (h *HabitsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, ok := GetUser(ctx)
	if !ok {
		h.sendError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	habitID, err := parseHabitID(r)
	if err != nil {
		h.sendError(w, "invalid habit id", http.StatusBadRequest)
		return
	}

	if err := h.habitStorage.DeleteHabit(ctx, user.ID, habitID); err != nil {
		h.sendStorageError(ctx, w, err)
		return
	}

	h.logger.InfoContext(ctx, "habit deleted",
		slog.Int64("habit_id", habitID),
		slog.Int64("user_id", user.ID))

	w.WriteHeader(http.StatusNoContent)
}

// parseHabitID извлекает числовой id привычки из path parameter (Go 1.22+)
func parseHabitID(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}

// defaultListLimit размер страницы списка, если limit не задан
const defaultListLimit = 100

// queryInt читает неотрицательный целый query параметр с значением по умолчанию
func queryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}
	if value < 0 {
		return 0, fmt.Errorf("%s must not be negative", name)
	}
	return value, nil
}

// sendStorageError переводит ошибки хранилища в HTTP статусы
// Порядок проверок важен: несуществующая привычка — 404 даже для чужих id
func (h *HabitsHandler) sendStorageError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, storage.ErrHabitNotFound):
		h.sendError(w, "habit not found", http.StatusNotFound)
	case errors.Is(err, storage.ErrNotOwner):
		h.sendError(w, "not authorized to modify this habit", http.StatusForbidden)
	default:
		h.logger.ErrorContext(ctx, "storage error", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
	}
}

func habitResponse(habit *models.Habit) api.HabitResponse {
	return api.HabitResponse{
		ID:          habit.ID,
		Name:        habit.Name,
		Description: habit.Description,
		Completed:   habit.Completed,
		CreatedAt:   habit.CreatedAt,
	}
}

func (h *HabitsHandler) sendJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	sendJSON(h.logger, w, data, statusCode)
}

func (h *HabitsHandler) sendError(w http.ResponseWriter, message string, statusCode int) {
	sendError(h.logger, w, message, statusCode)
}
