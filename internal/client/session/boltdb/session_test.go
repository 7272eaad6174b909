package boltdb

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/habitkeeper/habitkeeper/internal/client/session"
)

func setupTestStorage(t *testing.T) *Storage {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "client.db")
	s, err := New(context.Background(), dbPath)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = s.Close()
	})

	return s
}

func TestStorage_SaveAndGet(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)

	sess := &session.Session{
		Username:    "alice",
		AccessToken: "token-123",
		ExpiresAt:   time.Now().Add(time.Hour).Unix(),
	}

	require.NoError(t, s.Save(ctx, sess))

	got, err := s.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)
	assert.Equal(t, "token-123", got.AccessToken)
	assert.Equal(t, sess.ExpiresAt, got.ExpiresAt)
}

func TestStorage_Save_Replaces(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)

	require.NoError(t, s.Save(ctx, &session.Session{Username: "alice", AccessToken: "old"}))
	require.NoError(t, s.Save(ctx, &session.Session{Username: "alice", AccessToken: "new"}))

	got, err := s.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "new", got.AccessToken)
}

func TestStorage_Get_NotFound(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)

	_, err := s.Get(ctx)
	assert.ErrorIs(t, err, session.ErrSessionNotFound)
}

func TestStorage_Delete(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)

	require.NoError(t, s.Save(ctx, &session.Session{Username: "alice", AccessToken: "token"}))
	require.NoError(t, s.Delete(ctx))

	_, err := s.Get(ctx)
	assert.ErrorIs(t, err, session.ErrSessionNotFound)

	// Повторное удаление — not found
	assert.ErrorIs(t, s.Delete(ctx), session.ErrSessionNotFound)
}

func TestSession_Expired(t *testing.T) {
	fresh := &session.Session{ExpiresAt: time.Now().Add(time.Hour).Unix()}
	assert.False(t, fresh.Expired())

	stale := &session.Session{ExpiresAt: time.Now().Add(-time.Hour).Unix()}
	assert.True(t, stale.Expired())
}
