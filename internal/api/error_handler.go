package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/workcity/project-tracker/internal/api/handler"
	"github.com/workcity/project-tracker/internal/api/middleware"
	"github.com/workcity/project-tracker/internal/core/domain"
)

const serverErrorMessage = "Server Error"

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their HTTP status codes.
//   - Logs unexpected errors internally and answers "Server Error".
//   - Renders the {success: false, message, errors?, error?} envelope.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, body := resolveError(err, log, c)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, body)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, handler.ErrorResponse) {
	fail := func(msg string) handler.ErrorResponse {
		return handler.ErrorResponse{Success: false, Message: msg}
	}

	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		body := fail("Validation failed")
		body.Errors = ve.Fields
		return http.StatusBadRequest, body
	}

	// Echo's own errors (router 404/405, bind failures, 429) and handler
	// overrides that already carry their message.
	var he *echo.HTTPError
	if errors.As(err, &he) {
		if he.Code >= http.StatusInternalServerError {
			logUnexpected(log, c, err)
			return he.Code, fail(serverErrorMessage)
		}
		return he.Code, fail(fmt.Sprintf("%v", he.Message))
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrNoCredential):
		return http.StatusUnauthorized, fail("Not authorized, no token")
	case errors.Is(err, domain.ErrMalformedCredential):
		return http.StatusUnauthorized, fail("Not authorized, malformed token")
	case errors.Is(err, domain.ErrInvalidCredential):
		return http.StatusUnauthorized, fail("Not authorized, token failed")
	case errors.Is(err, domain.ErrForbidden):
		role := "unknown"
		if id, ok := middleware.IdentityFrom(c); ok {
			role = string(id.Role)
		}
		return http.StatusForbidden, fail(fmt.Sprintf("User role '%s' is not authorized to access this route", role))
	case errors.Is(err, domain.ErrClientNotFound):
		return http.StatusNotFound, fail("Client not found")
	case errors.Is(err, domain.ErrProjectNotFound):
		return http.StatusNotFound, fail("Project not found")
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, fail("User not found")
	case errors.Is(err, domain.ErrInvalidClientReference):
		return http.StatusBadRequest, fail("Invalid client ID")
	case errors.Is(err, domain.ErrDuplicateClientEmail):
		return http.StatusBadRequest, fail("A client with this email already exists.")
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusBadRequest, fail("User already exists")
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, fail("Invalid credentials")
	}

	// Unexpected error: log the real cause, return a generic message. Create
	// paths mark their failures as exposed and also get the cause.
	logUnexpected(log, c, err)

	body := fail(serverErrorMessage)
	var exposed *handler.ExposedError
	if errors.As(err, &exposed) {
		body.Error = exposed.Err.Error()
	}
	return http.StatusInternalServerError, body
}

func logUnexpected(log zerolog.Logger, c echo.Context, err error) {
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
		Msg("unhandled error")
}
