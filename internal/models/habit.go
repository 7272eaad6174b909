package models

import "time"

// Habit представляет привычку пользователя
type Habit struct {
	ID          int64     `json:"id"`          // внутренний идентификатор
	OwnerID     int64     `json:"owner_id"`    // владелец (FK на users), неизменяем после создания
	Name        string    `json:"name"`        // название, не может быть пустым
	Description string    `json:"description"` // опциональное описание
	Completed   bool      `json:"completed"`   // флаг выполнения
	CreatedAt   time.Time `json:"created_at"`  // время создания
}
