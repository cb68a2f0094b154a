package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	manager := NewManager("test-secret", 15*time.Minute, 72*time.Hour)

	t.Run("access token carries user id and email", func(t *testing.T) {
		token, err := manager.GenerateAccessToken("user-1", "a@example.com")
		require.NoError(t, err)

		claims, err := manager.ValidateAccessToken(token)
		require.NoError(t, err)
		assert.Equal(t, "user-1", claims.UserID)
		assert.Equal(t, "a@example.com", claims.Email)
		assert.Equal(t, "access", claims.Type)
	})

	t.Run("refresh token omits the email", func(t *testing.T) {
		token, err := manager.GenerateRefreshToken("user-1")
		require.NoError(t, err)

		claims, err := manager.ValidateRefreshToken(token)
		require.NoError(t, err)
		assert.Equal(t, "user-1", claims.UserID)
		assert.Empty(t, claims.Email)
	})

	t.Run("token types are not interchangeable", func(t *testing.T) {
		access, err := manager.GenerateAccessToken("user-1", "a@example.com")
		require.NoError(t, err)
		refresh, err := manager.GenerateRefreshToken("user-1")
		require.NoError(t, err)

		_, err = manager.ValidateRefreshToken(access)
		assert.Error(t, err)
		_, err = manager.ValidateAccessToken(refresh)
		assert.Error(t, err)
	})

	t.Run("wrong secret is rejected", func(t *testing.T) {
		token, err := manager.GenerateAccessToken("user-1", "a@example.com")
		require.NoError(t, err)

		other := NewManager("different-secret", 15*time.Minute, 72*time.Hour)
		_, err = other.ValidateToken(token)
		assert.Error(t, err)
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		expired := NewManager("test-secret", -time.Minute, 72*time.Hour)
		token, err := expired.GenerateAccessToken("user-1", "a@example.com")
		require.NoError(t, err)

		_, err = manager.ValidateToken(token)
		assert.Error(t, err)
	})
}
