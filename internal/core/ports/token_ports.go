package ports

import (
	"context"
	"time"

	"github.com/vendio/api/internal/core/domain"
)

// RefreshRegistry is the revocation list for refresh tokens. A refresh
// token is usable only while its entry is present, regardless of its
// signature expiry. Consume must be atomic: under concurrent replay of
// the same token exactly one caller may observe found=true.
type RefreshRegistry interface {
	Put(ctx context.Context, token string, identity domain.Identity, expiresAt time.Time) error
	Get(ctx context.Context, token string) (domain.Identity, bool, error)
	Consume(ctx context.Context, token string) (domain.Identity, bool, error)
	Delete(ctx context.Context, token string) error
}

type TokenPair struct {
	User         domain.Identity
	AccessToken  string
	RefreshToken string
	ExpiresIn    time.Duration
}

type TokenService interface {
	IssueAccessToken(identity domain.Identity) (token string, expiresIn time.Duration, err error)
	IssueRefreshToken(ctx context.Context, identity domain.Identity) (string, error)
	VerifyAccessToken(token string) (domain.Identity, error)
	VerifyRefreshToken(ctx context.Context, token string, consume bool) (domain.Identity, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
	Revoke(ctx context.Context, refreshToken string) error
	AccessTTL() time.Duration
	RefreshTTL() time.Duration
}
