package usecase

import (
	"os"
	"strconv"
	"time"
)

const (
	defaultAccessTTL   = 15 * time.Minute
	defaultSessionTTL  = 7 * 24 * time.Hour
	defaultMaxSessions = 5
)

// Config holds token lifetimes and the per-user session limit.
type Config struct {
	AccessTTL   time.Duration
	SessionTTL  time.Duration
	MaxSessions int
}

// LoadConfig は環境変数から認証設定を読み込みます。
// 未設定または不正な値はデフォルト値になります。
func LoadConfig() Config {
	return Config{
		AccessTTL:   durationEnv("JWT_ACCESS_TTL", defaultAccessTTL),
		SessionTTL:  durationEnv("SESSION_TTL", defaultSessionTTL),
		MaxSessions: intEnv("MAX_SESSIONS_PER_USER", defaultMaxSessions),
	}
}

func (c Config) withDefaults() Config {
	if c.AccessTTL <= 0 {
		c.AccessTTL = defaultAccessTTL
	}
	if c.SessionTTL <= 0 {
		c.SessionTTL = defaultSessionTTL
	}
	if c.MaxSessions <= 0 {
		c.MaxSessions = defaultMaxSessions
	}
	return c
}

func durationEnv(key string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(os.Getenv(key))
	if err != nil || d <= 0 {
		return def
	}
	return d
}

func intEnv(key string, def int) int {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil || n <= 0 {
		return def
	}
	return n
}
