// Package auth issues and resolves the bearer credentials carried in the
// Authorization header.
package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/workcity/project-tracker/internal/core/domain"
)

const defaultTTL = 30 * 24 * time.Hour

// Claims is the signed payload of an access token.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// TokenManager signs and verifies HS256 tokens.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &TokenManager{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue mints a token for id.
func (m *TokenManager) Issue(id domain.Identity) (string, error) {
	now := m.now().UTC()
	claims := Claims{
		Role: string(id.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.UserID,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// Resolve turns an Authorization header value into an identity.
//
//	""                     -> domain.ErrNoCredential
//	"Token x", "Bearer "   -> domain.ErrMalformedCredential
//	"Bearer <garbage>"     -> domain.ErrMalformedCredential
//	bad signature, expired -> domain.ErrInvalidCredential
func (m *TokenManager) Resolve(header string) (domain.Identity, error) {
	header = strings.TrimSpace(header)
	if header == "" {
		return domain.Identity{}, domain.ErrNoCredential
	}

	scheme, raw, ok := strings.Cut(header, " ")
	raw = strings.TrimSpace(raw)
	if !ok || !strings.EqualFold(scheme, "bearer") || raw == "" {
		return domain.Identity{}, domain.ErrMalformedCredential
	}

	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(m.now), jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenMalformed) {
			return domain.Identity{}, domain.ErrMalformedCredential
		}
		return domain.Identity{}, domain.ErrInvalidCredential
	}
	if !tkn.Valid {
		return domain.Identity{}, domain.ErrInvalidCredential
	}

	id := domain.Identity{UserID: claims.Subject, Role: domain.Role(claims.Role)}
	if id.UserID == "" || !id.Role.Valid() {
		return domain.Identity{}, domain.ErrInvalidCredential
	}
	return id, nil
}
