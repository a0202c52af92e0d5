package domain

import "errors"

// Authentication failures. All of them surface as 401.
var (
	ErrNoCredential        = errors.New("no credential")
	ErrMalformedCredential = errors.New("malformed credential")
	ErrInvalidCredential   = errors.New("credential expired or invalid")
)

var ErrForbidden = errors.New("access forbidden")

var (
	ErrClientNotFound  = errors.New("client not found")
	ErrProjectNotFound = errors.New("project not found")
	ErrUserNotFound    = errors.New("user not found")
)

var (
	ErrDuplicateClientEmail = errors.New("a client with this email already exists")
	ErrUserExists           = errors.New("user already exists")
	ErrInvalidCredentials   = errors.New("invalid credentials")
)

// ErrInvalidClientReference means a project payload names a client that does
// not exist. It is a fault in the payload, not in the addressed resource.
var ErrInvalidClientReference = errors.New("invalid client id")

// IsUnauthenticated reports whether err is one of the credential failures.
func IsUnauthenticated(err error) bool {
	return errors.Is(err, ErrNoCredential) ||
		errors.Is(err, ErrMalformedCredential) ||
		errors.Is(err, ErrInvalidCredential)
}
