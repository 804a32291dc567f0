package entity

import "time"

// Session is one refresh-token login of a user.
// ID is the refresh token itself (64 hex characters).
type Session struct {
	ID        string
	UserID    uint
	UserAgent string
	IPAddress string
	CreatedAt time.Time
	ExpiresAt time.Time
	RevokedAt *time.Time // nil while the session is usable
}

// Expired reports whether the session's lifetime ended at or before now.
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// IsRevoked reports whether the session was revoked by logout, rotation or reuse detection.
func (s *Session) IsRevoked() bool {
	return s.RevokedAt != nil
}

// Active reports whether the session can still be refreshed at now.
func (s *Session) Active(now time.Time) bool {
	return !s.IsRevoked() && !s.Expired(now)
}
