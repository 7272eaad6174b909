package storage

import (
	"context"

	"github.com/habitkeeper/habitkeeper/internal/models"
)

// HabitUpdate describes a partial habit update.
// Nil fields keep the stored values unchanged.
type HabitUpdate struct {
	Name        *string
	Description *string
}

// HabitStorage defines interface for habit persistence.
// All mutating operations are owner-scoped: a habit that exists but belongs
// to another user yields ErrNotOwner and has no effect.
type HabitStorage interface {
	// CreateHabit persists a new habit and fills in the generated ID
	CreateHabit(ctx context.Context, habit *models.Habit) error

	// ListHabits returns a page of the owner's habits in creation order,
	// skipping the first skip rows and returning at most limit rows
	ListHabits(ctx context.Context, ownerID int64, skip, limit int) ([]*models.Habit, error)

	// GetHabit retrieves a habit by ID regardless of owner
	// Returns ErrHabitNotFound if it doesn't exist
	GetHabit(ctx context.Context, habitID int64) (*models.Habit, error)

	// UpdateHabit applies a partial update to the owner's habit
	// Returns ErrHabitNotFound or ErrNotOwner
	UpdateHabit(ctx context.Context, ownerID, habitID int64, upd HabitUpdate) (*models.Habit, error)

	// ToggleHabit flips the completion flag of the owner's habit
	// Returns ErrHabitNotFound or ErrNotOwner
	ToggleHabit(ctx context.Context, ownerID, habitID int64) (*models.Habit, error)

	// DeleteHabit removes the owner's habit
	// Returns ErrHabitNotFound or ErrNotOwner
	DeleteHabit(ctx context.Context, ownerID, habitID int64) error
}
