package auth

// Role is the closed set of actor roles. Adding a role is a code
// change, not configuration.
type Role string

const (
	RoleAdmin  Role = "ADMIN"
	RoleAuthor Role = "AUTHOR"
	RoleReader Role = "READER"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleAuthor, RoleReader:
		return true
	}
	return false
}

func (r Role) String() string {
	return string(r)
}

// Level maps the role onto the fixed total order ADMIN > AUTHOR > READER.
// Unknown roles rank below everything.
func (r Role) Level() int {
	switch r {
	case RoleAdmin:
		return 3
	case RoleAuthor:
		return 2
	case RoleReader:
		return 1
	}
	return 0
}

// AtLeast reports whether r is at least as privileged as required.
func (r Role) AtLeast(required Role) bool {
	return r.Level() >= required.Level()
}

// Actor is the identity a request acts as, reconstructed from the
// session credential on every request. A nil *Actor means anonymous.
type Actor struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  Role   `json:"role"`
}
