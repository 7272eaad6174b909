package handlers

import (
	"context"
	"io"
	"log/slog"

	"github.com/habitkeeper/habitkeeper/internal/models"
	"github.com/habitkeeper/habitkeeper/internal/server/storage"
)

func setupTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// mockUserStorage is a mock implementation of UserStorage for testing
type mockUserStorage struct {
	users       map[string]*models.User // username -> User
	nextID      int64
	createError error
	getError    error
}

func newMockUserStorage() *mockUserStorage {
	return &mockUserStorage{users: make(map[string]*models.User)}
}

func (m *mockUserStorage) CreateUser(ctx context.Context, user *models.User) error {
	if m.createError != nil {
		return m.createError
	}
	if _, exists := m.users[user.Username]; exists {
		return storage.ErrUserAlreadyExists
	}
	m.nextID++
	user.ID = m.nextID
	m.users[user.Username] = user
	return nil
}

func (m *mockUserStorage) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	if m.getError != nil {
		return nil, m.getError
	}
	user, ok := m.users[username]
	if !ok {
		return nil, storage.ErrUserNotFound
	}
	return user, nil
}

func (m *mockUserStorage) GetUserByID(ctx context.Context, userID int64) (*models.User, error) {
	if m.getError != nil {
		return nil, m.getError
	}
	for _, user := range m.users {
		if user.ID == userID {
			return user, nil
		}
	}
	return nil, storage.ErrUserNotFound
}

// mockHabitStorage is an in-memory implementation of HabitStorage for testing
type mockHabitStorage struct {
	habits      map[int64]*models.Habit
	nextID      int64
	createError error
	listError   error
}

func newMockHabitStorage() *mockHabitStorage {
	return &mockHabitStorage{habits: make(map[int64]*models.Habit)}
}

func (m *mockHabitStorage) CreateHabit(ctx context.Context, habit *models.Habit) error {
	if m.createError != nil {
		return m.createError
	}
	m.nextID++
	habit.ID = m.nextID
	copied := *habit
	m.habits[habit.ID] = &copied
	return nil
}

func (m *mockHabitStorage) ListHabits(ctx context.Context, ownerID int64, skip, limit int) ([]*models.Habit, error) {
	if m.listError != nil {
		return nil, m.listError
	}
	var owned []*models.Habit
	for id := int64(1); id <= m.nextID; id++ {
		if habit, ok := m.habits[id]; ok && habit.OwnerID == ownerID {
			copied := *habit
			owned = append(owned, &copied)
		}
	}
	if skip >= len(owned) {
		return nil, nil
	}
	owned = owned[skip:]
	if limit < len(owned) {
		owned = owned[:limit]
	}
	return owned, nil
}

func (m *mockHabitStorage) GetHabit(ctx context.Context, habitID int64) (*models.Habit, error) {
	habit, ok := m.habits[habitID]
	if !ok {
		return nil, storage.ErrHabitNotFound
	}
	copied := *habit
	return &copied, nil
}

func (m *mockHabitStorage) getOwned(ownerID, habitID int64) (*models.Habit, error) {
	habit, ok := m.habits[habitID]
	if !ok {
		return nil, storage.ErrHabitNotFound
	}
	if habit.OwnerID != ownerID {
		return nil, storage.ErrNotOwner
	}
	return habit, nil
}

func (m *mockHabitStorage) UpdateHabit(ctx context.Context, ownerID, habitID int64, upd storage.HabitUpdate) (*models.Habit, error) {
	habit, err := m.getOwned(ownerID, habitID)
	if err != nil {
		return nil, err
	}
	if upd.Name != nil {
		habit.Name = *upd.Name
	}
	if upd.Description != nil {
		habit.Description = *upd.Description
	}
	copied := *habit
	return &copied, nil
}

func (m *mockHabitStorage) ToggleHabit(ctx context.Context, ownerID, habitID int64) (*models.Habit, error) {
	habit, err := m.getOwned(ownerID, habitID)
	if err != nil {
		return nil, err
	}
	habit.Completed = !habit.Completed
	copied := *habit
	return &copied, nil
}

func (m *mockHabitStorage) DeleteHabit(ctx context.Context, ownerID, habitID int64) error {
	if _, err := m.getOwned(ownerID, habitID); err != nil {
		return err
	}
	delete(m.habits, habitID)
	return nil
}
