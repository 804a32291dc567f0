// Package session stores refresh-token sessions in Redis.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"rivalradar_backend/internal/feature/auth/domain/entity"
	"rivalradar_backend/internal/feature/auth/usecase"

	"github.com/redis/go-redis/v9"
)

// revokedRetention is how long a revoked session is kept so token reuse can be detected.
const revokedRetention = 24 * time.Hour

// SessionRedis implements usecase.SessionRepository using Redis.
//
// Keys:
//   - <prefix>:<id>           JSON-encoded session, expiring with the session
//   - <prefix>:user:<userID>  sorted set of session IDs scored by creation time
type SessionRedis struct {
	client *redis.Client
	prefix string
}

var _ usecase.SessionRepository = (*SessionRedis)(nil)

// NewSessionRedis creates a new SessionRedis instance.
func NewSessionRedis(client *redis.Client, prefix string) *SessionRedis {
	if prefix == "" {
		prefix = "session"
	}
	return &SessionRedis{
		client: client,
		prefix: prefix,
	}
}

func (r *SessionRedis) sessionKey(id string) string {
	return fmt.Sprintf("%s:%s", r.prefix, id)
}

func (r *SessionRedis) userSessionsKey(userID uint) string {
	return fmt.Sprintf("%s:user:%d", r.prefix, userID)
}

// queueCreate adds the commands that store s to pipe.
func (r *SessionRedis) queueCreate(ctx context.Context, pipe redis.Pipeliner, s *entity.Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	ttl := time.Until(s.ExpiresAt)
	if ttl <= 0 {
		return errors.New("session already expired")
	}
	pipe.Set(ctx, r.sessionKey(s.ID), data, ttl)
	pipe.ZAdd(ctx, r.userSessionsKey(s.UserID), redis.Z{Score: float64(s.CreatedAt.UnixNano()), Member: s.ID})
	return nil
}

// Create persists a new session and indexes it under its user.
func (r *SessionRedis) Create(ctx context.Context, s *entity.Session) error {
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		return r.queueCreate(ctx, pipe, s)
	})
	return err
}

// FindByID retrieves a session by its ID.
func (r *SessionRedis) FindByID(ctx context.Context, id string) (*entity.Session, error) {
	data, err := r.client.Get(ctx, r.sessionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, usecase.ErrSessionNotFound
		}
		return nil, err
	}

	var s entity.Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &s, nil
}

// FindByUserID returns the user's valid sessions, oldest first.
// Index entries whose session has expired are pruned as a side effect.
func (r *SessionRedis) FindByUserID(ctx context.Context, userID uint) ([]*entity.Session, error) {
	ids, err := r.client.ZRange(ctx, r.userSessionsKey(userID), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	sessions := make([]*entity.Session, 0, len(ids))
	for _, id := range ids {
		s, err := r.FindByID(ctx, id)
		if errors.Is(err, usecase.ErrSessionNotFound) {
			r.client.ZRem(ctx, r.userSessionsKey(userID), id)
			continue
		}
		if err != nil {
			return nil, err
		}
		if s.Active(time.Now()) {
			sessions = append(sessions, s)
		}
	}
	return sessions, nil
}

// revokedCopy returns the JSON of s marked revoked now.
func revokedCopy(s *entity.Session) ([]byte, error) {
	now := time.Now()
	s.RevokedAt = &now
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal session: %w", err)
	}
	return data, nil
}

// Rotate marks oldID revoked and stores next in one MULTI/EXEC.
func (r *SessionRedis) Rotate(ctx context.Context, oldID string, next *entity.Session) error {
	old, err := r.FindByID(ctx, oldID)
	if err != nil {
		return err
	}
	if old.IsRevoked() {
		return usecase.ErrSessionNotFound
	}
	data, err := revokedCopy(old)
	if err != nil {
		return err
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, r.sessionKey(oldID), data, revokedRetention)
		pipe.ZRem(ctx, r.userSessionsKey(old.UserID), oldID)
		return r.queueCreate(ctx, pipe, next)
	})
	return err
}

// Revoke marks a session as revoked and keeps it briefly for reuse detection.
func (r *SessionRedis) Revoke(ctx context.Context, id string) error {
	s, err := r.FindByID(ctx, id)
	if err != nil {
		return err
	}
	data, err := revokedCopy(s)
	if err != nil {
		return err
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, r.sessionKey(id), data, revokedRetention)
		pipe.ZRem(ctx, r.userSessionsKey(s.UserID), id)
		return nil
	})
	return err
}

// RevokeAllByUserID revokes all sessions for a user.
func (r *SessionRedis) RevokeAllByUserID(ctx context.Context, userID uint) error {
	ids, err := r.client.ZRange(ctx, r.userSessionsKey(userID), 0, -1).Result()
	if err != nil {
		return err
	}
	for _, id := range ids {
		if err := r.Revoke(ctx, id); err != nil && !errors.Is(err, usecase.ErrSessionNotFound) {
			return err
		}
	}
	return r.client.Del(ctx, r.userSessionsKey(userID)).Err()
}

// DeleteExpired is a no-op; Redis expires session keys on its own.
func (r *SessionRedis) DeleteExpired(context.Context) (int64, error) {
	return 0, nil
}

// CountByUserID returns the number of active sessions for a user.
func (r *SessionRedis) CountByUserID(ctx context.Context, userID uint) (int64, error) {
	sessions, err := r.FindByUserID(ctx, userID)
	if err != nil {
		return 0, err
	}
	return int64(len(sessions)), nil
}

// DeleteOldestByUserID deletes the user's oldest active session.
func (r *SessionRedis) DeleteOldestByUserID(ctx context.Context, userID uint) error {
	sessions, err := r.FindByUserID(ctx, userID)
	if err != nil {
		return err
	}
	if len(sessions) == 0 {
		return nil
	}
	oldest := sessions[0]

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, r.sessionKey(oldest.ID))
		pipe.ZRem(ctx, r.userSessionsKey(userID), oldest.ID)
		return nil
	})
	return err
}
