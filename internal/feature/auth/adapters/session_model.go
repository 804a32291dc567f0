package adapters

import (
	"time"

	"rivalradar_backend/internal/feature/auth/domain/entity"
)

// SessionModel is the sessions table, used when Redis is unavailable.
// The (user_id, created_at) index serves the per-user count and oldest-first eviction.
type SessionModel struct {
	ID        string     `gorm:"primaryKey;size:64"`
	UserID    uint       `gorm:"not null;index:idx_sessions_user_created,priority:1"`
	UserAgent string     `gorm:"size:512"`
	IPAddress string     `gorm:"size:45"`
	CreatedAt time.Time  `gorm:"not null;index:idx_sessions_user_created,priority:2"`
	ExpiresAt time.Time  `gorm:"not null;index"`
	RevokedAt *time.Time `gorm:"index"`
}

func (SessionModel) TableName() string {
	return "sessions"
}

func (m *SessionModel) toEntity() *entity.Session {
	s := entity.Session(*m)
	return &s
}

func sessionModelFromEntity(s *entity.Session) *SessionModel {
	m := SessionModel(*s)
	return &m
}
