package auth

// Authorization policy: pure boolean decisions over an actor and
// resource facts. No side effects, so every rule is table-testable.

// CanCreatePost reports whether the actor may create posts.
// Anonymous actors can never create.
func CanCreatePost(actor *Actor) bool {
	if actor == nil {
		return false
	}
	return actor.Role.AtLeast(RoleAuthor)
}

// CanMutatePost reports whether the actor may edit or delete a post
// owned by ownerID. Admins may mutate anything; authors only their own.
func CanMutatePost(actor *Actor, ownerID string) bool {
	if actor == nil {
		return false
	}
	if actor.Role == RoleAdmin {
		return true
	}
	return actor.Role == RoleAuthor && actor.ID == ownerID
}

// CanViewDraft reports whether the actor may see an unpublished post
// owned by ownerID. Published posts bypass this check entirely.
func CanViewDraft(actor *Actor, ownerID string) bool {
	return CanMutatePost(actor, ownerID)
}
