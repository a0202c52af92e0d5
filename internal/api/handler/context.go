package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/workcity/project-tracker/internal/api/middleware"
	"github.com/workcity/project-tracker/internal/core/domain"
)

// actor returns the identity injected by the Auth middleware. Its absence
// means the route was mounted without Auth and is treated as unauthenticated.
func actor(c echo.Context) (domain.Identity, error) {
	id, ok := middleware.IdentityFrom(c)
	if !ok || id.UserID == "" {
		return domain.Identity{}, domain.ErrNoCredential
	}
	return id, nil
}
