package models

import "time"

// User представляет пользователя в системе
type User struct {
	ID           int64     `json:"id"`         // внутренний числовой идентификатор
	Username     string    `json:"username"`   // уникальный username
	PasswordHash string    `json:"-"`          // bcrypt хеш пароля, никогда не отдается клиенту
	CreatedAt    time.Time `json:"created_at"` // время создания
}
