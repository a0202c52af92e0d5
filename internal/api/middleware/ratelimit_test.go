package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubLimiter struct {
	allow bool
	retry time.Duration
	err   error
	keys  []string
}

func (s *stubLimiter) Allow(_ context.Context, key string) (bool, time.Duration, error) {
	s.keys = append(s.keys, key)
	return s.allow, s.retry, s.err
}

func runRateLimit(t *testing.T, l Limiter) (*httptest.ResponseRecorder, bool, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
	req.RemoteAddr = "203.0.113.9:4711"
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	err := RateLimit(l, "auth", zerolog.Nop())(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})(c)
	return rec, called, err
}

func TestRateLimit_Allows(t *testing.T) {
	l := &stubLimiter{allow: true}
	_, called, err := runRateLimit(t, l)

	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, []string{"203.0.113.9"}, l.keys)
}

func TestRateLimit_Rejects(t *testing.T) {
	rec, called, err := runRateLimit(t, &stubLimiter{retry: 1500 * time.Millisecond})

	assert.False(t, called)
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusTooManyRequests, he.Code)
	assert.Equal(t, "2", rec.Header().Get("Retry-After"))
}

func TestRateLimit_FailsOpen(t *testing.T) {
	_, called, err := runRateLimit(t, &stubLimiter{err: errors.New("redis down")})

	require.NoError(t, err)
	assert.True(t, called)
}
