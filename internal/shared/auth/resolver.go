package auth

import (
	"errors"

	"blog-backend/pkg/jwt"
)

// ErrUnauthenticated is returned when an operation requires an actor
// but the credential resolves to anonymous.
var ErrUnauthenticated = errors.New("authentication required")

// Resolver turns a signed session credential into an Actor.
type Resolver struct {
	jwtManager *jwt.Manager
}

func NewResolver(jwtManager *jwt.Manager) *Resolver {
	return &Resolver{jwtManager: jwtManager}
}

// Resolve verifies the credential and decodes the embedded identity.
// Any failure (absent, malformed, bad signature, expired) yields
// anonymous, never an error; callers decide whether anonymous is
// acceptable. The embedded role is trusted for the whole request.
func (r *Resolver) Resolve(credential string) *Actor {
	if credential == "" {
		return nil
	}

	claims, err := r.jwtManager.ValidateAccessToken(credential)
	if err != nil {
		return nil
	}

	// A token carrying a role outside the closed set is as good as no
	// token; it could never pass a policy check anyway.
	role := Role(claims.Role)
	if !role.IsValid() {
		return nil
	}

	return &Actor{
		ID:    claims.UserID,
		Email: claims.Email,
		Name:  claims.Name,
		Role:  role,
	}
}

// RequireActor resolves the credential and fails with ErrUnauthenticated
// when it yields anonymous.
func (r *Resolver) RequireActor(credential string) (*Actor, error) {
	actor := r.Resolve(credential)
	if actor == nil {
		return nil, ErrUnauthenticated
	}
	return actor, nil
}
