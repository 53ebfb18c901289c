package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func actorWith(id string, role Role) *Actor {
	return &Actor{ID: id, Email: id + "@example.com", Name: "Test", Role: role}
}

func TestCanCreatePost(t *testing.T) {
	tests := []struct {
		name  string
		actor *Actor
		want  bool
	}{
		{"anonymous cannot create", nil, false},
		{"reader cannot create", actorWith("u1", RoleReader), false},
		{"author can create", actorWith("u1", RoleAuthor), true},
		{"admin can create", actorWith("u1", RoleAdmin), true},
		{"unknown role cannot create", actorWith("u1", Role("GHOST")), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanCreatePost(tt.actor))
		})
	}
}

func TestCanMutatePost(t *testing.T) {
	owner := actorWith("owner", RoleAuthor)

	tests := []struct {
		name    string
		actor   *Actor
		ownerID string
		want    bool
	}{
		{"anonymous cannot mutate", nil, "owner", false},
		{"author mutates own post", owner, "owner", true},
		{"author cannot mutate others", owner, "someone-else", false},
		{"admin mutates any post", actorWith("admin", RoleAdmin), "owner", true},
		{"reader cannot mutate own-id match", actorWith("owner", RoleReader), "owner", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanMutatePost(tt.actor, tt.ownerID))
		})
	}
}

func TestCanViewDraftMatchesMutation(t *testing.T) {
	actors := []*Actor{
		nil,
		actorWith("owner", RoleReader),
		actorWith("owner", RoleAuthor),
		actorWith("other", RoleAuthor),
		actorWith("admin", RoleAdmin),
	}

	for _, actor := range actors {
		assert.Equal(t, CanMutatePost(actor, "owner"), CanViewDraft(actor, "owner"))
	}
}
