package utils

import (
	"regexp"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTManager_AccessToken(t *testing.T) {
	m := NewJWTManager("secret", time.Hour, 24*time.Hour)
	id := uuid.New()

	token, err := m.GenerateAccessToken(id, "ops@example.com", []string{"admin"})
	require.NoError(t, err)

	claims, err := m.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, id, claims.UserID)
	assert.Equal(t, "ops@example.com", claims.Email)
	assert.Equal(t, []string{"admin"}, claims.Roles)
	assert.Equal(t, "vendor-ledger-api", claims.Issuer)
}

func TestJWTManager_Rejects(t *testing.T) {
	m := NewJWTManager("secret", time.Hour, 24*time.Hour)
	id := uuid.New()

	t.Run("wrong secret", func(t *testing.T) {
		token, err := NewJWTManager("other", time.Hour, time.Hour).GenerateAccessToken(id, "a@b.c", nil)
		require.NoError(t, err)
		_, err = m.ValidateAccessToken(token)
		assert.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		token, err := NewJWTManager("secret", -time.Minute, time.Hour).GenerateAccessToken(id, "a@b.c", nil)
		require.NoError(t, err)
		_, err = m.ValidateAccessToken(token)
		assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	})

	t.Run("refresh token is not an access token", func(t *testing.T) {
		refresh, err := m.GenerateRefreshToken(id)
		require.NoError(t, err)
		_, err = m.ValidateAccessToken(refresh)
		assert.Error(t, err)

		got, err := m.ValidateRefreshToken(refresh)
		require.NoError(t, err)
		assert.Equal(t, id, got)
	})

	t.Run("access token is not a refresh token", func(t *testing.T) {
		access, err := m.GenerateAccessToken(id, "a@b.c", nil)
		require.NoError(t, err)
		_, err = m.ValidateRefreshToken(access)
		assert.Error(t, err)
	})
}

func TestPassword(t *testing.T) {
	hash, err := HashPassword("s3cret!")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret!", hash)
	assert.True(t, CheckPasswordHash("s3cret!", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}

func TestGenerateVoucherNo(t *testing.T) {
	pattern := regexp.MustCompile(`^PV-[0-9A-F]{8}$`)
	a, b := GenerateVoucherNo(), GenerateVoucherNo()
	assert.Regexp(t, pattern, a)
	assert.NotEqual(t, a, b)
}
