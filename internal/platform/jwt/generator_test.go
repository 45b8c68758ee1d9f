package jwtmw

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedClock は可変の現在時刻を返すテスト用クロックです。
type fixedClock struct{ t time.Time }

func (c *fixedClock) Now() time.Time { return c.t }

func TestNewManager_DefaultTTL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ttl  time.Duration
		want time.Duration
	}{
		{"zero uses default", 0, DefaultTTL},
		{"negative uses default", -time.Hour, DefaultTTL},
		{"custom preserved", time.Hour, time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewManager("secret", tt.ttl)
			assert.Equal(t, tt.want, m.ttl)
		})
	}
}

// TestManager_RoundTrip は発行直後のトークンが同じユーザーIDで検証されることを検証します。
func TestManager_RoundTrip(t *testing.T) {
	t.Parallel()

	m := NewManager("round-trip-secret", DefaultTTL)

	for _, id := range []string{"5f0c7a62-3a1e-4d0c-9f0e-2b2f5d1b8c11", "user-42"} {
		token, err := m.Issue(id)
		require.NoError(t, err)

		got, ok := m.Verify(token)
		assert.True(t, ok)
		assert.Equal(t, id, got)
	}
}

// TestManager_IssueClaims はsub/exp/iatクレームが7日間の有効期限で設定されることを検証します。
func TestManager_IssueClaims(t *testing.T) {
	t.Parallel()

	issuedAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	clock := &fixedClock{t: issuedAt}
	m := NewManager("claims-secret", 0).WithClock(clock.Now)

	token, err := m.Issue("user-1")
	require.NoError(t, err)

	claims := &jwt.RegisteredClaims{}
	_, _, err = jwt.NewParser().ParseUnverified(token, claims)
	require.NoError(t, err)

	assert.Equal(t, "user-1", claims.Subject)
	assert.True(t, claims.IssuedAt.Time.Equal(issuedAt))
	assert.True(t, claims.ExpiresAt.Time.Equal(issuedAt.Add(7*24*time.Hour)))
}

// TestManager_VerifyExpiry は有効期限を過ぎたトークンが拒否されることを検証します。
func TestManager_VerifyExpiry(t *testing.T) {
	t.Parallel()

	clock := &fixedClock{t: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)}
	m := NewManager("expiry-secret", DefaultTTL).WithClock(clock.Now)

	token, err := m.Issue("user-1")
	require.NoError(t, err)

	clock.t = clock.t.Add(DefaultTTL - time.Second)
	_, ok := m.Verify(token)
	assert.True(t, ok, "token should still be valid just before expiry")

	clock.t = clock.t.Add(time.Second)
	_, ok = m.Verify(token)
	assert.False(t, ok, "token must be rejected once expiresAt is no longer after now")

	clock.t = clock.t.Add(time.Hour)
	_, ok = m.Verify(token)
	assert.False(t, ok)
}

func TestManager_VerifyRejects(t *testing.T) {
	t.Parallel()

	const secret = "reject-secret"
	m := NewManager(secret, time.Hour)
	other := NewManager("some-other-secret", time.Hour)

	foreign, err := other.Issue("user-1")
	require.NoError(t, err)

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   "user-1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.RegisteredClaims{
		Subject:   "user-1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte(secret))
	require.NoError(t, err)

	noSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte(secret))
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject: "user-1",
	}).SignedString([]byte(secret))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"malformed", "not.a.valid.token"},
		{"random string", "randomstring"},
		{"wrong secret", foreign},
		{"none algorithm", noneToken},
		{"unexpected hmac variant", hs512},
		{"missing subject", noSubject},
		{"missing expiry", noExpiry},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := m.Verify(tt.token)
			assert.False(t, ok)
			assert.Empty(t, id)
		})
	}
}

func TestManager_IssueEmptySubject(t *testing.T) {
	t.Parallel()

	_, err := NewManager("s", time.Hour).Issue("")
	assert.Error(t, err)
}
