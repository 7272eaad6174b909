package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/habitkeeper/habitkeeper/internal/models"
	"github.com/habitkeeper/habitkeeper/internal/server/storage"
)

// CreateHabit persists a new habit and fills in the generated ID
func (s *Storage) CreateHabit(ctx context.Context, habit *models.Habit) error {
	query := `
		INSERT INTO habits (owner_id, name, description, completed, created_at)
		VALUES (?, ?, ?, ?, ?)
	`

	result, err := s.db.ExecContext(ctx, query,
		habit.OwnerID,
		habit.Name,
		habit.Description,
		habit.Completed,
		habit.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert habit: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get inserted habit id: %w", err)
	}
	habit.ID = id

	return nil
}

// ListHabits returns a page of the owner's habits in creation order
func (s *Storage) ListHabits(ctx context.Context, ownerID int64, skip, limit int) ([]*models.Habit, error) {
	query := `
		SELECT id, owner_id, name, description, completed, created_at
		FROM habits
		WHERE owner_id = ?
		ORDER BY id ASC
		LIMIT ? OFFSET ?
	`

	rows, err := s.db.QueryContext(ctx, query, ownerID, limit, skip)
	if err != nil {
		return nil, fmt.Errorf("failed to query habits: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var habits []*models.Habit
	for rows.Next() {
		habit := &models.Habit{}
		if err := rows.Scan(
			&habit.ID,
			&habit.OwnerID,
			&habit.Name,
			&habit.Description,
			&habit.Completed,
			&habit.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan habit: %w", err)
		}
		habits = append(habits, habit)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate habits: %w", err)
	}

	return habits, nil
}

// GetHabit retrieves a habit by ID regardless of owner
func (s *Storage) GetHabit(ctx context.Context, habitID int64) (*models.Habit, error) {
	query := `
		SELECT id, owner_id, name, description, completed, created_at
		FROM habits
		WHERE id = ?
	`

	habit := &models.Habit{}

	err := s.db.QueryRowContext(ctx, query, habitID).Scan(
		&habit.ID,
		&habit.OwnerID,
		&habit.Name,
		&habit.Description,
		&habit.Completed,
		&habit.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrHabitNotFound
		}
		return nil, fmt.Errorf("failed to get habit: %w", err)
	}

	return habit, nil
}

// UpdateHabit applies a partial update to the owner's habit
// Nil-поля в upd оставляют сохраненные значения без изменений
func (s *Storage) UpdateHabit(ctx context.Context, ownerID, habitID int64, upd storage.HabitUpdate) (*models.Habit, error) {
	habit, err := s.getOwnedHabit(ctx, ownerID, habitID)
	if err != nil {
		return nil, err
	}

	if upd.Name != nil {
		habit.Name = *upd.Name
	}
	if upd.Description != nil {
		habit.Description = *upd.Description
	}

	query := `UPDATE habits SET name = ?, description = ? WHERE id = ? AND owner_id = ?`

	if _, err := s.db.ExecContext(ctx, query, habit.Name, habit.Description, habitID, ownerID); err != nil {
		return nil, fmt.Errorf("failed to update habit: %w", err)
	}

	return habit, nil
}

// ToggleHabit flips the completion flag of the owner's habit
func (s *Storage) ToggleHabit(ctx context.Context, ownerID, habitID int64) (*models.Habit, error) {
	habit, err := s.getOwnedHabit(ctx, ownerID, habitID)
	if err != nil {
		return nil, err
	}

	habit.Completed = !habit.Completed

	query := `UPDATE habits SET completed = ? WHERE id = ? AND owner_id = ?`

	if _, err := s.db.ExecContext(ctx, query, habit.Completed, habitID, ownerID); err != nil {
		return nil, fmt.Errorf("failed to toggle habit: %w", err)
	}

	return habit, nil
}

// DeleteHabit removes the owner's habit
func (s *Storage) DeleteHabit(ctx context.Context, ownerID, habitID int64) error {
	// Сначала проверяем существование и владельца, чтобы различать 404 и 403
	if _, err := s.getOwnedHabit(ctx, ownerID, habitID); err != nil {
		return err
	}

	query := `DELETE FROM habits WHERE id = ? AND owner_id = ?`

	if _, err := s.db.ExecContext(ctx, query, habitID, ownerID); err != nil {
		return fmt.Errorf("failed to delete habit: %w", err)
	}

	return nil
}

// getOwnedHabit загружает привычку и проверяет владельца
// Возвращает ErrHabitNotFound либо ErrNotOwner
func (s *Storage) getOwnedHabit(ctx context.Context, ownerID, habitID int64) (*models.Habit, error) {
	habit, err := s.GetHabit(ctx, habitID)
	if err != nil {
		return nil, err
	}

	if habit.OwnerID != ownerID {
		return nil, storage.ErrNotOwner
	}

	return habit, nil
}
