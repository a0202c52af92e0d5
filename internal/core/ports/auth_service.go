package ports

import (
	"context"

	"github.com/workcity/project-tracker/internal/core/domain"
)

// SignupInput carries sanitized signup fields.
type SignupInput struct {
	Name     string
	Email    string
	Password string
	Role     domain.Role
}

type AuthService interface {
	Signup(ctx context.Context, input SignupInput) (string, *domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}

// TokenIssuer mints a signed credential for an identity.
type TokenIssuer interface {
	Issue(id domain.Identity) (string, error)
}

// CredentialResolver decodes a raw Authorization header value into an
// identity. It returns domain.ErrNoCredential, domain.ErrMalformedCredential
// or domain.ErrInvalidCredential on failure.
type CredentialResolver interface {
	Resolve(header string) (domain.Identity, error)
}
