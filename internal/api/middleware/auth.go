package middleware

import (
	"errors"
	"fmt"

	"github.com/labstack/echo/v4"

	"github.com/workcity/project-tracker/internal/api/metrics"
	"github.com/workcity/project-tracker/internal/core/domain"
	"github.com/workcity/project-tracker/internal/core/ports"
)

// Auth resolves the bearer credential and injects the identity into context.
// Failures are returned as domain errors for the HTTP error handler to render;
// any resolver error outside the credential taxonomy counts as invalid.
func Auth(resolver ports.CredentialResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id, err := resolver.Resolve(c.Request().Header.Get(echo.HeaderAuthorization))
			if err != nil {
				if !domain.IsUnauthenticated(err) {
					err = fmt.Errorf("%w: %v", domain.ErrInvalidCredential, err)
				}
				metrics.AuthFailuresTotal.WithLabelValues(authFailureReason(err)).Inc()
				return err
			}

			SetIdentity(c, id)
			return next(c)
		}
	}
}

func authFailureReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrNoCredential):
		return "no_credential"
	case errors.Is(err, domain.ErrMalformedCredential):
		return "malformed"
	default:
		return "invalid"
	}
}
