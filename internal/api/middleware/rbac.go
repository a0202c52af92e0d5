package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/workcity/project-tracker/internal/api/metrics"
	"github.com/workcity/project-tracker/internal/core/domain"
)

// RBAC enforces role-based access control. It must run after Auth; a request
// without an identity is treated as unauthenticated.
func RBAC(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id, ok := IdentityFrom(c)
			if !ok {
				return domain.ErrNoCredential
			}
			if err := domain.Authorize(id, allowedRoles...); err != nil {
				metrics.AuthFailuresTotal.WithLabelValues("forbidden").Inc()
				return err
			}
			return next(c)
		}
	}
}
