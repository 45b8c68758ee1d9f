// Package jwtmw はベアラートークンの発行・検証と、それを使う認証ミドルウェアを提供します。
package jwtmw

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"wealth_backend/internal/platform/env"
)

const (
	// EnvKeyJWTSecret is the environment variable holding the HMAC secret.
	EnvKeyJWTSecret = "JWT_SECRET"
	// DefaultTTL is how long an issued token stays valid.
	DefaultTTL = 7 * 24 * time.Hour
)

// Config holds token settings.
type Config struct {
	Secret string
	TTL    time.Duration
}

// LoadConfigFromEnv reads JWT_SECRET and JWT_TTL.
func LoadConfigFromEnv() Config {
	return Config{
		Secret: env.String(EnvKeyJWTSecret, ""),
		TTL:    env.Duration("JWT_TTL", DefaultTTL),
	}
}

// Manager mints and verifies HS256 tokens binding a user id.
// It holds no per-token state; a token is only invalidated by its expiry.
type Manager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewManager creates a Manager. A non-positive ttl falls back to DefaultTTL.
func NewManager(secret string, ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Manager{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// WithClock returns a copy of m that reads time from now.
func (m *Manager) WithClock(now func() time.Time) *Manager {
	cp := *m
	cp.now = now
	return &cp
}

// Issue creates a signed token with sub = userID and exp = now + ttl.
func (m *Manager) Issue(userID string) (string, error) {
	if userID == "" {
		return "", errors.New("empty subject")
	}
	now := m.now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify returns the subject of a valid token.
// Malformed input, a bad signature, a non-HMAC algorithm, a missing subject and
// expiry all yield ok == false without telling the caller which one happened.
func (m *Manager) Verify(token string) (userID string, ok bool) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims,
		func(*jwt.Token) (interface{}, error) { return m.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil || !parsed.Valid || claims.Subject == "" {
		return "", false
	}
	return claims.Subject, true
}
