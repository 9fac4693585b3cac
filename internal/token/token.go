// Package token issues and verifies the bearer credentials the API
// accepts. Verification yields the stable user id; everything downstream
// treats that id as opaque.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned when a token is malformed, expired or
// signed with the wrong key.
var ErrInvalidToken = errors.New("invalid token")

// Provider issues and validates JWT access tokens signed with HS256.
type Provider struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// NewProvider returns a Provider signing with the given secret.
func NewProvider(secret []byte, issuer string, ttl time.Duration) *Provider {
	return &Provider{
		secret: secret,
		issuer: issuer,
		ttl:    ttl,
	}
}

// Issue creates a signed access token for the given user.
func (p *Provider) Issue(userID string) (string, error) {
	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		Issuer:    p.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(p.ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.secret)
}

// Verify parses and validates an access token and returns the user id it
// was issued for.
func (p *Provider) Verify(tokenString string) (string, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return p.secret, nil
	}, jwt.WithIssuer(p.issuer), jwt.WithExpirationRequired())
	if err != nil || !parsed.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
