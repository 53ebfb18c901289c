package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	manager := NewManager("secret", time.Hour, 24*time.Hour)

	token, err := manager.GenerateAccessToken("u1", "u1@example.com", "User One", "ADMIN")
	require.NoError(t, err)

	claims, err := manager.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "u1@example.com", claims.Email)
	assert.Equal(t, "User One", claims.Name)
	assert.Equal(t, "ADMIN", claims.Role)
	assert.Equal(t, "access", claims.Type)
}

func TestTokenTypeEnforced(t *testing.T) {
	manager := NewManager("secret", time.Hour, 24*time.Hour)

	access, err := manager.GenerateAccessToken("u1", "u1@example.com", "User One", "READER")
	require.NoError(t, err)
	refresh, err := manager.GenerateRefreshToken("u1")
	require.NoError(t, err)

	_, err = manager.ValidateAccessToken(refresh)
	assert.Error(t, err)

	_, err = manager.ValidateRefreshToken(access)
	assert.Error(t, err)

	claims, err := manager.ValidateRefreshToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
}

func TestExpiredTokenRejected(t *testing.T) {
	manager := NewManager("secret", -time.Minute, 24*time.Hour)

	token, err := manager.GenerateAccessToken("u1", "u1@example.com", "User One", "READER")
	require.NoError(t, err)

	_, err = manager.ValidateToken(token)
	assert.Error(t, err)
}

func TestWrongSecretRejected(t *testing.T) {
	manager := NewManager("secret", time.Hour, 24*time.Hour)
	other := NewManager("different", time.Hour, 24*time.Hour)

	token, err := manager.GenerateAccessToken("u1", "u1@example.com", "User One", "READER")
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}
