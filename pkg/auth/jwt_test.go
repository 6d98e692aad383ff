package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTValidator(t *testing.T) {
	const secret = "local-secret"
	v, err := NewJWTValidator(JWTConfig{SigningMethod: "HS256", SecretKey: secret, Issuer: "gigbusters-local"})
	require.NoError(t, err)

	t.Run("ValidToken", func(t *testing.T) {
		token, err := GenerateDevToken(secret, "gigbusters-local", "user-1", "a@b.co", time.Hour)
		require.NoError(t, err)

		claims, err := v.ValidateToken("Bearer " + token)
		require.NoError(t, err)
		assert.Equal(t, "user-1", claims.UserID)
		assert.Equal(t, "a@b.co", claims.Email)
	})

	t.Run("MissingToken", func(t *testing.T) {
		_, err := v.ValidateToken("Bearer ")
		assert.ErrorIs(t, err, ErrMissingToken)
	})

	t.Run("ExpiredToken", func(t *testing.T) {
		token, err := GenerateDevToken(secret, "gigbusters-local", "user-1", "", -time.Minute)
		require.NoError(t, err)
		_, err = v.ValidateToken(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("WrongSecret", func(t *testing.T) {
		token, err := GenerateDevToken("other", "gigbusters-local", "user-1", "", time.Hour)
		require.NoError(t, err)
		_, err = v.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidSignature)
	})

	t.Run("WrongIssuer", func(t *testing.T) {
		token, err := GenerateDevToken(secret, "someone-else", "user-1", "", time.Hour)
		require.NoError(t, err)
		_, err = v.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidClaims)
	})
}

func TestNewJWTValidatorRejectsBadConfig(t *testing.T) {
	_, err := NewJWTValidator(JWTConfig{SigningMethod: "HS256"})
	assert.Error(t, err)

	_, err = NewJWTValidator(JWTConfig{SigningMethod: "ES512", SecretKey: "x"})
	assert.Error(t, err)
}
