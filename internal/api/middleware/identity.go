package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/workcity/project-tracker/internal/core/domain"
)

const identityKey = "auth.identity"

// SetIdentity stores the authenticated identity on the request context.
func SetIdentity(c echo.Context, id domain.Identity) {
	c.Set(identityKey, id)
}

// IdentityFrom returns the identity stored by Auth, if any.
func IdentityFrom(c echo.Context) (domain.Identity, bool) {
	id, ok := c.Get(identityKey).(domain.Identity)
	return id, ok
}
