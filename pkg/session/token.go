// Package session issues and verifies the signed, time-limited token carried
// in the auth cookie. The only identity claim is the group (tenant) name.
package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TTL is the validity window of every issued token.
const TTL = 7 * 24 * time.Hour

var (
	ErrMissingSecret = errors.New("session signing secret is not configured")
	ErrMissingToken  = errors.New("session token required")
	ErrInvalidToken  = errors.New("invalid or expired session token")
)

// Claims represents the session claim set.
type Claims struct {
	GroupName string `json:"groupName"`
	jwt.RegisteredClaims
}

// Codec handles token generation and validation.
type Codec struct {
	secretKey []byte
	ttl       time.Duration
	now       func() time.Time
}

// NewCodec creates a codec signing with secretKey.
// An empty key is a configuration error and must stop startup.
func NewCodec(secretKey string) (*Codec, error) {
	if secretKey == "" {
		return nil, ErrMissingSecret
	}
	return &Codec{
		secretKey: []byte(secretKey),
		ttl:       TTL,
		now:       time.Now,
	}, nil
}

// WithClock returns a copy of the codec that reads time from now.
func (c *Codec) WithClock(now func() time.Time) *Codec {
	cp := *c
	cp.now = now
	return &cp
}

// Issue creates a token for groupName expiring exactly TTL from now.
func (c *Codec) Issue(groupName string) (string, error) {
	issued := c.now()
	claims := &Claims{
		GroupName: groupName,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(issued.Add(c.ttl)),
			IssuedAt:  jwt.NewNumericDate(issued),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(c.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// Verify checks signature and expiry and returns the group name claim.
// Every failure is reported as ErrMissingToken or ErrInvalidToken.
func (c *Codec) Verify(tokenString string) (string, error) {
	if tokenString == "" {
		return "", ErrMissingToken
	}

	token, err := jwt.ParseWithClaims(
		tokenString,
		&Claims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return c.secretKey, nil
		},
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.GroupName == "" {
		return "", ErrInvalidToken
	}

	return claims.GroupName, nil
}
