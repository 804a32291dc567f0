package jwtmw

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func parseAccess(t *testing.T, tokenStr, secret string) *AccessClaims {
	t.Helper()
	claims := &AccessClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(*jwt.Token) (any, error) {
		return []byte(secret), nil
	}, parserOptions()...)
	if err != nil {
		t.Fatalf("failed to parse token: %v", err)
	}
	if !token.Valid {
		t.Fatal("expected token to be valid")
	}
	return claims
}

// TestGenerator_GenerateToken は発行したトークンがAccessClaimsとして検証できることを検証します。
func TestGenerator_GenerateToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		userID     uint
		email      string
		expiration time.Duration
	}{
		{"basic user", 1, "user@example.com", time.Hour},
		{"user with special email", 42, "user+tag@example.com", time.Hour},
		{"large user id", 999999, "test@test.com", 24 * time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tokenStr, err := NewGenerator("test-secret", tt.expiration).GenerateToken(tt.userID, tt.email)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			claims := parseAccess(t, tokenStr, "test-secret")
			if id, ok := claims.UserID(); !ok || id != tt.userID {
				t.Errorf("expected user id %d, got %d (ok=%v)", tt.userID, id, ok)
			}
			if claims.Email != tt.email {
				t.Errorf("expected email %q, got %q", tt.email, claims.Email)
			}
			if claims.Issuer != Issuer {
				t.Errorf("expected issuer %q, got %q", Issuer, claims.Issuer)
			}
			if claims.ID == "" {
				t.Error("expected jti to be set")
			}
		})
	}
}

// TestGenerator_GenerateToken_Expiration はexp・iatが発行時刻から計算されることを検証します。
func TestGenerator_GenerateToken_Expiration(t *testing.T) {
	t.Parallel()

	now := time.Now().Truncate(time.Second)
	gen := NewGenerator("test-secret", 2*time.Hour)
	gen.now = func() time.Time { return now }

	tokenStr, err := gen.GenerateToken(1, "test@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims := parseAccess(t, tokenStr, "test-secret")
	if !claims.IssuedAt.Time.Equal(now) {
		t.Errorf("expected iat %v, got %v", now, claims.IssuedAt.Time)
	}
	if !claims.ExpiresAt.Time.Equal(now.Add(2 * time.Hour)) {
		t.Errorf("expected exp %v, got %v", now.Add(2*time.Hour), claims.ExpiresAt.Time)
	}
}

// TestGenerator_GenerateToken_Expired は期限切れのトークンが検証で拒否されることを検証します。
func TestGenerator_GenerateToken_Expired(t *testing.T) {
	t.Parallel()

	gen := NewGenerator("test-secret", time.Minute)
	gen.now = func() time.Time { return time.Now().Add(-time.Hour) }

	tokenStr, err := gen.GenerateToken(1, "test@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err = jwt.ParseWithClaims(tokenStr, &AccessClaims{}, func(*jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	}, parserOptions()...)
	if err == nil {
		t.Error("expected expired token to be rejected")
	}
}

// TestGenerator_GenerateToken_SameUserDistinctTokens は同一ユーザーでも連続発行したトークンが異なることを検証します。
func TestGenerator_GenerateToken_SameUserDistinctTokens(t *testing.T) {
	t.Parallel()

	gen := NewGenerator("test-secret", time.Hour)

	token1, _ := gen.GenerateToken(1, "user@example.com")
	token2, _ := gen.GenerateToken(1, "user@example.com")

	if token1 == token2 {
		t.Error("expected distinct tokens for consecutive issues")
	}
}

// TestAccessClaims_UserID はsubjectからユーザーIDを取り出せることを検証します。
func TestAccessClaims_UserID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		subject string
		wantID  uint
		wantOK  bool
	}{
		{"7", 7, true},
		{"0", 0, false},
		{"", 0, false},
		{"-1", 0, false},
		{"abc", 0, false},
	}
	for _, tt := range tests {
		c := &AccessClaims{RegisteredClaims: jwt.RegisteredClaims{Subject: tt.subject}}
		id, ok := c.UserID()
		if id != tt.wantID || ok != tt.wantOK {
			t.Errorf("UserID(%q) = (%d, %v), want (%d, %v)", tt.subject, id, ok, tt.wantID, tt.wantOK)
		}
	}
}
