package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/vicinato-api/internal/auth"
)

const testSecret = "a-test-secret-that-is-long-enough-for-hs256"

func TestNewJWTVerifier(t *testing.T) {
	_, err := auth.NewJWTVerifier("short")
	assert.Error(t, err)

	_, err = auth.NewJWTVerifier(testSecret)
	assert.NoError(t, err)
}

func TestGenerateAndVerify(t *testing.T) {
	v, err := auth.NewJWTVerifier(testSecret)
	require.NoError(t, err)
	userID := uuid.New()

	t.Run("ValidToken", func(t *testing.T) {
		token, err := v.GenerateJWT(userID, "me@example.com", "session-1", 5*time.Minute)
		require.NoError(t, err)

		id, err := v.Verify(context.Background(), token)
		require.NoError(t, err)
		assert.Equal(t, userID, id.ID)
		assert.Equal(t, "me@example.com", id.Email)
		assert.Equal(t, "session-1", id.DedupKey())
		assert.Equal(t, token, id.Token)
	})

	t.Run("ExpiredToken", func(t *testing.T) {
		token, err := v.GenerateJWT(userID, "me@example.com", "", -time.Minute)
		require.NoError(t, err)

		_, err = v.Verify(context.Background(), token)
		require.Error(t, err)
		assert.True(t, errors.Is(err, jwt.ErrTokenExpired))
	})

	t.Run("InvalidSignature", func(t *testing.T) {
		other, err := auth.NewJWTVerifier("another-secret-that-is-long-enough-too!!")
		require.NoError(t, err)
		token, err := other.GenerateJWT(userID, "me@example.com", "", time.Minute)
		require.NoError(t, err)

		_, err = v.Verify(context.Background(), token)
		assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
	})

	t.Run("NonUUIDSubject", func(t *testing.T) {
		claims := auth.Claims{RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-123",
			Audience:  jwt.ClaimStrings{"authenticated"},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		}}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
		require.NoError(t, err)

		_, err = v.Verify(context.Background(), token)
		assert.ErrorIs(t, err, auth.ErrInvalidClaims)
	})

	t.Run("SessionFallsBackToUser", func(t *testing.T) {
		token, err := v.GenerateJWT(userID, "me@example.com", "", time.Minute)
		require.NoError(t, err)

		id, err := v.Verify(context.Background(), token)
		require.NoError(t, err)
		assert.Equal(t, userID.String(), id.DedupKey())
	})
}
