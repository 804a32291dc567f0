package session

import (
	"context"
	"testing"
	"time"

	"rivalradar_backend/internal/feature/auth/domain/entity"
	"rivalradar_backend/internal/feature/auth/usecase"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestRedis creates a miniredis instance for testing.
func setupTestRedis(t *testing.T) (*SessionRedis, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewSessionRedis(client, "session"), mr
}

// newSession creates a session entity created at now+offset.
func newSession(id string, userID uint, offset, expiresIn time.Duration) *entity.Session {
	created := time.Now().Add(offset)
	return &entity.Session{
		ID:        id,
		UserID:    userID,
		UserAgent: "test-agent",
		IPAddress: "127.0.0.1",
		CreatedAt: created,
		ExpiresAt: created.Add(expiresIn),
	}
}

const week = 7 * 24 * time.Hour

func TestNewSessionRedis_DefaultPrefix(t *testing.T) {
	repo := NewSessionRedis(nil, "")
	assert.Equal(t, "session", repo.prefix)
	assert.Equal(t, "session:abc", repo.sessionKey("abc"))
	assert.Equal(t, "session:user:7", repo.userSessionsKey(7))
}

func TestSessionRedis_CreateAndFind(t *testing.T) {
	t.Parallel()

	repo, mr := setupTestRedis(t)
	ctx := context.Background()

	s := newSession("session-001", 1, 0, week)
	require.NoError(t, repo.Create(ctx, s))

	assert.True(t, mr.Exists("session:session-001"))
	ttl := mr.TTL("session:session-001")
	assert.InDelta(t, week.Seconds(), ttl.Seconds(), 5)

	found, err := repo.FindByID(ctx, "session-001")
	require.NoError(t, err)
	assert.Equal(t, uint(1), found.UserID)
	assert.Equal(t, "test-agent", found.UserAgent)

	_, err = repo.FindByID(ctx, "missing")
	assert.ErrorIs(t, err, usecase.ErrSessionNotFound)

	assert.Error(t, repo.Create(ctx, newSession("expired", 1, 0, -time.Hour)))
}

func TestSessionRedis_FindByUserID_OrderAndPrune(t *testing.T) {
	t.Parallel()

	repo, mr := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newSession("newer", 1, -time.Minute, week)))
	require.NoError(t, repo.Create(ctx, newSession("older", 1, -time.Hour, week)))
	require.NoError(t, repo.Create(ctx, newSession("gone", 1, -2*time.Hour, week)))
	mr.Del("session:gone")

	sessions, err := repo.FindByUserID(ctx, 1)
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, "older", sessions[0].ID)
	assert.Equal(t, "newer", sessions[1].ID)

	members, err := mr.ZMembers("session:user:1")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"older", "newer"}, members)
}

func TestSessionRedis_Revoke(t *testing.T) {
	t.Parallel()

	repo, mr := setupTestRedis(t)
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, newSession("s1", 1, 0, week)))

	require.NoError(t, repo.Revoke(ctx, "s1"))

	found, err := repo.FindByID(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, found.IsRevoked())
	assert.LessOrEqual(t, mr.TTL("session:s1"), revokedRetention)

	count, err := repo.CountByUserID(ctx, 1)
	require.NoError(t, err)
	assert.Zero(t, count)

	assert.ErrorIs(t, repo.Revoke(ctx, "missing"), usecase.ErrSessionNotFound)
}

func TestSessionRedis_Rotate(t *testing.T) {
	t.Parallel()

	repo, _ := setupTestRedis(t)
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, newSession("old", 1, -time.Minute, week)))

	require.NoError(t, repo.Rotate(ctx, "old", newSession("new", 1, 0, week)))

	old, err := repo.FindByID(ctx, "old")
	require.NoError(t, err)
	assert.True(t, old.IsRevoked())

	sessions, err := repo.FindByUserID(ctx, 1)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, "new", sessions[0].ID)

	// a revoked session cannot be rotated again
	err = repo.Rotate(ctx, "old", newSession("newer", 1, 0, week))
	assert.ErrorIs(t, err, usecase.ErrSessionNotFound)
	_, err = repo.FindByID(ctx, "newer")
	assert.ErrorIs(t, err, usecase.ErrSessionNotFound)

	assert.ErrorIs(t, repo.Rotate(ctx, "missing", newSession("x", 1, 0, week)), usecase.ErrSessionNotFound)
}

func TestSessionRedis_RevokeAllByUserID(t *testing.T) {
	t.Parallel()

	repo, mr := setupTestRedis(t)
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, newSession("a", 1, 0, week)))
	require.NoError(t, repo.Create(ctx, newSession("b", 1, 0, week)))
	require.NoError(t, repo.Create(ctx, newSession("c", 2, 0, week)))

	require.NoError(t, repo.RevokeAllByUserID(ctx, 1))

	assert.False(t, mr.Exists("session:user:1"))
	for _, id := range []string{"a", "b"} {
		s, err := repo.FindByID(ctx, id)
		require.NoError(t, err)
		assert.True(t, s.IsRevoked(), id)
	}
	count, _ := repo.CountByUserID(ctx, 2)
	assert.Equal(t, int64(1), count)
}

func TestSessionRedis_DeleteOldestByUserID(t *testing.T) {
	t.Parallel()

	repo, mr := setupTestRedis(t)
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, newSession("first", 1, -3*time.Hour, week)))
	require.NoError(t, repo.Create(ctx, newSession("second", 1, -2*time.Hour, week)))
	require.NoError(t, repo.Create(ctx, newSession("third", 1, -time.Hour, week)))

	require.NoError(t, repo.DeleteOldestByUserID(ctx, 1))

	assert.False(t, mr.Exists("session:first"))
	count, err := repo.CountByUserID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	assert.NoError(t, repo.DeleteOldestByUserID(ctx, 42))
}

func TestSessionRedis_DeleteExpired(t *testing.T) {
	repo, _ := setupTestRedis(t)
	n, err := repo.DeleteExpired(context.Background())
	assert.NoError(t, err)
	assert.Zero(t, n)
}
