package storage

import "errors"

// Common storage errors
var (
	// ErrUserNotFound indicates that user was not found in storage
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists indicates that user with this username already exists
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrHabitNotFound indicates that habit was not found in storage
	ErrHabitNotFound = errors.New("habit not found")

	// ErrNotOwner indicates that the habit exists but belongs to another user
	ErrNotOwner = errors.New("habit belongs to another user")
)
