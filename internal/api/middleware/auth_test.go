package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/workcity/project-tracker/internal/core/domain"
)

type stubResolver struct {
	id  domain.Identity
	err error
	got string
}

func (s *stubResolver) Resolve(header string) (domain.Identity, error) {
	s.got = header
	return s.id, s.err
}

func TestAuthMiddleware_ValidCredential(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer abc")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	resolver := &stubResolver{id: domain.Identity{UserID: "u1", Role: domain.RoleAdmin}}
	called := false
	handler := Auth(resolver)(func(c echo.Context) error {
		called = true
		id, ok := IdentityFrom(c)
		if !ok {
			t.Fatalf("identity not set")
		}
		if id.UserID != "u1" || id.Role != domain.RoleAdmin {
			t.Fatalf("unexpected identity: %+v", id)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if resolver.got != "Bearer abc" {
		t.Fatalf("resolver got %q", resolver.got)
	}
}

func TestAuthMiddleware_Failures(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{"missing", domain.ErrNoCredential},
		{"malformed", domain.ErrMalformedCredential},
		{"invalid", domain.ErrInvalidCredential},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			c := e.NewContext(req, httptest.NewRecorder())

			handler := Auth(&stubResolver{err: tc.err})(func(c echo.Context) error {
				t.Fatalf("should not reach next")
				return nil
			})

			err := handler(c)
			if !errors.Is(err, tc.err) {
				t.Fatalf("expected %v, got %v", tc.err, err)
			}
			if _, ok := IdentityFrom(c); ok {
				t.Fatalf("identity must not be set on failure")
			}
		})
	}
}

func TestAuthMiddleware_UnknownResolverErrorIsInvalid(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	handler := Auth(&stubResolver{err: errors.New("boom")})(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrInvalidCredential) {
		t.Fatalf("expected ErrInvalidCredential, got %v", err)
	}
}
