package auth

import (
	"testing"
	"time"

	"blog-backend/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolverResolve(t *testing.T) {
	manager := jwt.NewManager("test-secret", time.Hour, 24*time.Hour)
	resolver := NewResolver(manager)

	t.Run("valid token yields actor", func(t *testing.T) {
		token, err := manager.GenerateAccessToken("u1", "u1@example.com", "User One", "AUTHOR")
		require.NoError(t, err)

		actor := resolver.Resolve(token)
		require.NotNil(t, actor)
		assert.Equal(t, "u1", actor.ID)
		assert.Equal(t, "u1@example.com", actor.Email)
		assert.Equal(t, RoleAuthor, actor.Role)
	})

	t.Run("empty credential is anonymous", func(t *testing.T) {
		assert.Nil(t, resolver.Resolve(""))
	})

	t.Run("garbage credential is anonymous", func(t *testing.T) {
		assert.Nil(t, resolver.Resolve("not-a-token"))
	})

	t.Run("expired token is anonymous", func(t *testing.T) {
		expired := jwt.NewManager("test-secret", -time.Minute, 24*time.Hour)
		token, err := expired.GenerateAccessToken("u1", "u1@example.com", "User One", "AUTHOR")
		require.NoError(t, err)

		assert.Nil(t, resolver.Resolve(token))
	})

	t.Run("token signed with another key is anonymous", func(t *testing.T) {
		other := jwt.NewManager("other-secret", time.Hour, 24*time.Hour)
		token, err := other.GenerateAccessToken("u1", "u1@example.com", "User One", "AUTHOR")
		require.NoError(t, err)

		assert.Nil(t, resolver.Resolve(token))
	})

	t.Run("token with unknown role is anonymous", func(t *testing.T) {
		token, err := manager.GenerateAccessToken("u1", "u1@example.com", "User One", "SUPERUSER")
		require.NoError(t, err)

		assert.Nil(t, resolver.Resolve(token))
	})

	t.Run("refresh token is not a session credential", func(t *testing.T) {
		token, err := manager.GenerateRefreshToken("u1")
		require.NoError(t, err)

		assert.Nil(t, resolver.Resolve(token))
	})
}

func TestResolverRequireActor(t *testing.T) {
	manager := jwt.NewManager("test-secret", time.Hour, 24*time.Hour)
	resolver := NewResolver(manager)

	_, err := resolver.RequireActor("")
	assert.ErrorIs(t, err, ErrUnauthenticated)

	token, err := manager.GenerateAccessToken("u1", "u1@example.com", "User One", "READER")
	require.NoError(t, err)

	actor, err := resolver.RequireActor(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", actor.ID)
}
