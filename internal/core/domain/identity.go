package domain

// Role governs which operations an identity may perform.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// Identity is the authenticated actor derived from a request credential.
// It lives for a single request and is never persisted.
type Identity struct {
	UserID string
	Role   Role
}

// Authorize allows the identity when its role is in allowed. An empty allowed
// set admits any authenticated identity.
func Authorize(id Identity, allowed ...Role) error {
	if id.UserID == "" || !id.Role.Valid() {
		return ErrInvalidCredential
	}
	if len(allowed) == 0 {
		return nil
	}
	for _, r := range allowed {
		if id.Role == r {
			return nil
		}
	}
	return ErrForbidden
}
