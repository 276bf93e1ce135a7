package app

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenManager_GenerateAndParse(t *testing.T) {
	tm := NewTokenManager(TokenConfig{SecretKey: "user-secret"})

	token, err := tm.Generate(1001, "alice", "USER")
	require.NoError(t, err)

	claims, err := tm.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, int64(1001), claims.UID)
	assert.Equal(t, "alice", claims.Subject)
	assert.Equal(t, "USER", claims.Role)
	assert.NotEmpty(t, claims.ID)
	assert.Equal(t, DefaultTokenIssuer, claims.Issuer)

	// 默认 24 小时过期，允许 1 秒误差
	expected := time.Now().Add(24 * time.Hour).Unix()
	assert.InDelta(t, expected, claims.ExpiresAt.Unix(), 1)
}

func TestTokenManager_UniqueID(t *testing.T) {
	tm := NewTokenManager(TokenConfig{SecretKey: "k"})
	a, err := tm.Generate(1, "bob", "USER")
	require.NoError(t, err)
	b, err := tm.Generate(1, "bob", "USER")
	require.NoError(t, err)

	ca, _ := tm.Parse(a)
	cb, _ := tm.Parse(b)
	assert.NotEqual(t, ca.ID, cb.ID)
}

func TestTokenManager_Rejects(t *testing.T) {
	tm := NewTokenManager(TokenConfig{SecretKey: "right"})
	token, err := tm.Generate(1, "carol", "ADMIN")
	require.NoError(t, err)

	t.Run("wrong key", func(t *testing.T) {
		_, err := NewTokenManager(TokenConfig{SecretKey: "wrong"}).Parse(token)
		assert.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		expired := NewTokenManager(TokenConfig{SecretKey: "right", Expiry: time.Nanosecond})
		tok, err := expired.Generate(1, "carol", "ADMIN")
		require.NoError(t, err)
		time.Sleep(1100 * time.Millisecond)
		_, err = expired.Parse(tok)
		assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := tm.Parse("not-a-token")
		assert.Error(t, err)
	})

	t.Run("empty secret", func(t *testing.T) {
		_, err := NewTokenManager(TokenConfig{}).Generate(1, "x", "USER")
		assert.Error(t, err)
	})
}
