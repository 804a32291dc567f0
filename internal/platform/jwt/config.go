// Package jwtmw issues access tokens and guards routes with a bearer-token middleware.
package jwtmw

import (
	"os"
	"time"
)

const (
	// EnvKeyJWTSecret is the environment variable holding the HMAC signing secret.
	EnvKeyJWTSecret = "JWT_SECRET"
	// EnvKeyAccessTTL is the environment variable holding the access token lifetime.
	EnvKeyAccessTTL = "JWT_ACCESS_TTL"

	defaultAccessTTL = 15 * time.Minute
)

// Config holds token signing settings.
type Config struct {
	Secret    string
	AccessTTL time.Duration
}

// LoadConfig reads JWT settings from the environment.
// An unparsable or non-positive JWT_ACCESS_TTL falls back to 15 minutes.
func LoadConfig() Config {
	ttl, err := time.ParseDuration(os.Getenv(EnvKeyAccessTTL))
	if err != nil || ttl <= 0 {
		ttl = defaultAccessTTL
	}
	return Config{
		Secret:    os.Getenv(EnvKeyJWTSecret),
		AccessTTL: ttl,
	}
}
