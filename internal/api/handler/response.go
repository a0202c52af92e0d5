package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/workcity/project-tracker/internal/api/metrics"
	"github.com/workcity/project-tracker/internal/core/domain"
)

// dataResponse is the success envelope for a single record.
type dataResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

// listResponse is the success envelope for collections.
type listResponse struct {
	Success bool `json:"success"`
	Count   int  `json:"count"`
	Data    any  `json:"data"`
}

// ErrorResponse is the failure envelope. Errors lists field violations and
// Error carries the cause of an unexpected failure on create paths.
type ErrorResponse struct {
	Success bool                `json:"success"`
	Message string              `json:"message,omitempty"`
	Errors  []domain.FieldError `json:"errors,omitempty"`
	Error   string              `json:"error,omitempty"`
}

// ExposedError marks a failure whose cause is echoed to the caller in the
// `error` field of a 500 response. Domain errors wrapped in it still map to
// their own status.
type ExposedError struct {
	Err error
}

func (e *ExposedError) Error() string { return e.Err.Error() }
func (e *ExposedError) Unwrap() error { return e.Err }

func exposeCause(err error) error {
	return &ExposedError{Err: err}
}

type sanitizer[T any] interface {
	sanitized() T
}

// bindRequest decodes the JSON body, sanitizes it and runs the field rules.
// Type mismatches reported by the decoder and rule violations are merged into
// one *domain.ValidationError; a body that is not JSON at all yields 400.
func bindRequest[T sanitizer[T]](c echo.Context, resource string) (T, error) {
	var raw T
	typeErrs := &domain.ValidationError{}
	if err := c.Bind(&raw); err != nil {
		fe, ok := typeFieldError(err)
		if !ok {
			return raw, echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
		}
		typeErrs.Fields = append(typeErrs.Fields, fe)
	}

	req := raw.sanitized()
	if err := c.Validate(&req); err != nil {
		var ve *domain.ValidationError
		if !errors.As(err, &ve) {
			return req, err
		}
		for _, fe := range ve.Fields {
			if !hasField(typeErrs, fe.Field) {
				typeErrs.Fields = append(typeErrs.Fields, fe)
			}
		}
	}

	if err := typeErrs.ErrOrNil(); err != nil {
		metrics.ValidationFailuresTotal.WithLabelValues(resource).Inc()
		return req, err
	}
	return req, nil
}

func typeFieldError(err error) (domain.FieldError, bool) {
	var te *json.UnmarshalTypeError
	if !errors.As(err, &te) || te.Field == "" {
		return domain.FieldError{}, false
	}
	return domain.FieldError{
		Field:   te.Field,
		Rule:    "type",
		Param:   te.Type.String(),
		Message: te.Field + " must be of type " + te.Type.String(),
	}, true
}

func hasField(ve *domain.ValidationError, field string) bool {
	for _, fe := range ve.Fields {
		if fe.Field == field {
			return true
		}
	}
	return false
}
