// Package token signs and verifies the two JWT kinds the API issues:
// short-lived stateless access tokens and long-lived refresh tokens.
// Refresh-token revocation lives elsewhere; this package only handles
// the cryptographic envelope.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/vendio/api/internal/core/domain"
)

const (
	TypeAccess  = "access"
	TypeRefresh = "refresh"
)

type Claims struct {
	UserID int64  `json:"id"`
	Email  string `json:"email"`
	Type   string `json:"type"`
	jwt.RegisteredClaims
}

// Codec signs HS256 tokens. The refresh secret may equal the access
// secret; that is an operational choice made in config, not here.
type Codec struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
	now           func() time.Time
}

func NewCodec(accessSecret, refreshSecret []byte, accessTTL, refreshTTL time.Duration) *Codec {
	return &Codec{
		accessSecret:  accessSecret,
		refreshSecret: refreshSecret,
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
		now:           time.Now,
	}
}

func (c *Codec) AccessTTL() time.Duration {
	return c.accessTTL
}

func (c *Codec) RefreshTTL() time.Duration {
	return c.refreshTTL
}

func (c *Codec) SignAccess(identity domain.Identity) (string, error) {
	return c.sign(identity, TypeAccess, c.accessSecret, c.accessTTL, "")
}

// SignRefresh returns the signed token and its expiry, which the
// caller registers in the refresh registry. Every refresh token gets a
// uuid jti so two tokens minted for the same identity within the same
// second are still distinct registry keys.
func (c *Codec) SignRefresh(identity domain.Identity) (string, time.Time, error) {
	expiresAt := c.now().Add(c.refreshTTL)
	raw, err := c.sign(identity, TypeRefresh, c.refreshSecret, c.refreshTTL, uuid.NewString())
	return raw, expiresAt, err
}

func (c *Codec) sign(identity domain.Identity, tokenType string, secret []byte, ttl time.Duration, jti string) (string, error) {
	now := c.now()
	claims := Claims{
		UserID: identity.ID,
		Email:  identity.Email,
		Type:   tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

func (c *Codec) ParseAccess(raw string) (domain.Identity, error) {
	return c.parse(raw, TypeAccess, c.accessSecret)
}

func (c *Codec) ParseRefresh(raw string) (domain.Identity, error) {
	return c.parse(raw, TypeRefresh, c.refreshSecret)
}

func (c *Codec) parse(raw, wantType string, secret []byte) (domain.Identity, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return domain.Identity{}, domain.ErrTokenExpired
		}
		return domain.Identity{}, domain.ErrTokenInvalid
	}

	if claims.Type != wantType {
		return domain.Identity{}, domain.ErrTokenInvalid
	}

	return domain.Identity{ID: claims.UserID, Email: claims.Email}, nil
}
