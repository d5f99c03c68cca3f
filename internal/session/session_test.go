package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/lshigami/quizmaster/config"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T) *TokenManager {
	t.Helper()
	cfg := &config.Config{Auth: config.Auth{JWTSecret: "test-secret", TokenTTL: time.Hour}}
	m, err := NewTokenManager(cfg)
	require.NoError(t, err)
	return m
}

func TestTokenRoundTrip(t *testing.T) {
	m := newTestManager(t)

	token, issued, err := m.Issue(42)
	require.NoError(t, err)

	claims, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, issued.ID, claims.ID)

	id, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	m := newTestManager(t)
	token, _, err := m.Issue(1)
	require.NoError(t, err)

	m.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	_, err = m.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsForeignSignature(t *testing.T) {
	m := newTestManager(t)
	other := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{RegisteredClaims: jwt.RegisteredClaims{
		Subject:   "1",
		ID:        "abc",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}})
	signed, err := other.SignedString([]byte("another-secret"))
	require.NoError(t, err)

	_, err = m.Parse(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestNewTokenManagerRequiresSecret(t *testing.T) {
	_, err := NewTokenManager(&config.Config{})
	assert.Error(t, err)
}

func TestNewTokenManagerRejectsPlaceholderOutsideDebug(t *testing.T) {
	for _, mode := range []string{"release", "test", ""} {
		cfg := &config.Config{Server: config.Server{GinMode: mode}, Auth: config.Auth{JWTSecret: "change-me"}}
		_, err := NewTokenManager(cfg)
		assert.Error(t, err, "mode %q", mode)
	}

	cfg := &config.Config{Server: config.Server{GinMode: "debug"}, Auth: config.Auth{JWTSecret: "change-me"}}
	_, err := NewTokenManager(cfg)
	assert.NoError(t, err)

	cfg = &config.Config{Server: config.Server{GinMode: "release"}, Auth: config.Auth{JWTSecret: "a-real-secret"}}
	_, err = NewTokenManager(cfg)
	assert.NoError(t, err)
}

func TestMemoryStoreRevocation(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	require.NoError(t, s.Revoke(ctx, "jti-1", time.Now().Add(time.Minute)))
	revoked, err := s.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	require.NoError(t, s.Revoke(ctx, "jti-2", time.Now().Add(-time.Minute)))
	revoked, err = s.IsRevoked(ctx, "jti-2")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestRedisStoreRevocation(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	s := NewStore(client)
	require.NoError(t, s.Revoke(ctx, "jti-1", time.Now().Add(time.Minute)))

	revoked, err := s.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	mr.FastForward(2 * time.Minute)
	revoked, err = s.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)
}
