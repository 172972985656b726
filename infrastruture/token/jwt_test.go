package token

import (
	"crypto/rand"
	"encoding/base64"
	"log"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJwtService(t *testing.T) {
	// Setup
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		log.Fatalf("Error generating random bytes: %v", err)
	}
	secretKey := base64.URLEncoding.EncodeToString(bytes)
	issuer := "vinom-solver"

	svc := NewJwtService(secretKey, issuer)

	t.Run("Generate and Decode valid token", func(t *testing.T) {
		claims := map[string]interface{}{
			"userID":   "6f1c2a7e-9b3d-4f1a-8c55-0d2e4b6a8c10",
			"username": "maze_runner",
		}

		token, err := svc.Generate(claims, 5*time.Minute)
		require.NoError(t, err)
		assert.NotEmpty(t, token)

		decoded, err := svc.Decode(token)
		require.NoError(t, err)
		assert.Equal(t, claims["userID"], decoded["userID"])
		assert.Equal(t, claims["username"], decoded["username"])
		assert.Equal(t, issuer, decoded["iss"])
	})

	t.Run("Decode invalid token", func(t *testing.T) {
		_, err := svc.Decode("invalidTokenString")
		assert.Error(t, err)
	})

	t.Run("Decode expired token", func(t *testing.T) {
		token, err := svc.Generate(map[string]interface{}{"userID": "x"}, -time.Minute)
		require.NoError(t, err)

		_, err = svc.Decode(token)
		assert.Error(t, err)
	})

	t.Run("Decode token signed with another secret", func(t *testing.T) {
		other := NewJwtService("another-secret", issuer)
		token, err := other.Generate(map[string]interface{}{}, time.Minute)
		require.NoError(t, err)

		_, err = svc.Decode(token)
		assert.Error(t, err)
	})

	t.Run("Decode token from another issuer", func(t *testing.T) {
		other := NewJwtService(secretKey, "someone-else")
		token, err := other.Generate(map[string]interface{}{}, time.Minute)
		require.NoError(t, err)

		_, err = svc.Decode(token)
		assert.ErrorIs(t, err, ErrInvalidIssuer)
	})

	t.Run("Generate token with empty claims", func(t *testing.T) {
		token, err := svc.Generate(map[string]interface{}{}, 5*time.Minute)
		require.NoError(t, err)

		decodedClaims, err := svc.Decode(token)
		require.NoError(t, err)
		assert.Empty(t, decodedClaims["userID"])
	})
}
