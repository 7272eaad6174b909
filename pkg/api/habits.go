package api

import "time"

// HabitResponse представляет привычку в ответах API
type HabitResponse struct {
	ID          int64     `json:"id"`          // идентификатор привычки
	Name        string    `json:"name"`        // название
	Description string    `json:"description"` // описание
	Completed   bool      `json:"completed"`   // флаг выполнения
	CreatedAt   time.Time `json:"created_at"`  // время создания
}

// CreateHabitRequest представляет запрос на создание привычки
type CreateHabitRequest struct {
	Name        string `json:"name"`        // название, обязательное
	Description string `json:"description"` // описание, опциональное
}

// UpdateHabitRequest представляет частичное обновление привычки.
// nil-поля оставляют текущие значения без изменений.
type UpdateHabitRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}
