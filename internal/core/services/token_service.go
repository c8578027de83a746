package services

import (
	"context"
	"fmt"
	"time"

	"github.com/vendio/api/internal/core/domain"
	"github.com/vendio/api/internal/core/ports"
	"github.com/vendio/api/internal/token"
)

// TokenService owns the token lifecycle: issuing the access/refresh
// pair, verifying presented tokens and rotating refresh tokens. The
// refresh registry is the source of truth for refresh-token validity;
// a registry miss rejects a token even when its signature still
// verifies.
type TokenService struct {
	codec    *token.Codec
	registry ports.RefreshRegistry
}

func NewTokenService(codec *token.Codec, registry ports.RefreshRegistry) ports.TokenService {
	return &TokenService{
		codec:    codec,
		registry: registry,
	}
}

func (s *TokenService) AccessTTL() time.Duration {
	return s.codec.AccessTTL()
}

func (s *TokenService) RefreshTTL() time.Duration {
	return s.codec.RefreshTTL()
}

func (s *TokenService) IssueAccessToken(identity domain.Identity) (string, time.Duration, error) {
	raw, err := s.codec.SignAccess(identity)
	if err != nil {
		return "", 0, fmt.Errorf("failed to sign access token: %w", err)
	}
	return raw, s.codec.AccessTTL(), nil
}

func (s *TokenService) IssueRefreshToken(ctx context.Context, identity domain.Identity) (string, error) {
	raw, expiresAt, err := s.codec.SignRefresh(identity)
	if err != nil {
		return "", fmt.Errorf("failed to sign refresh token: %w", err)
	}

	if err := s.registry.Put(ctx, raw, identity, expiresAt); err != nil {
		return "", fmt.Errorf("failed to register refresh token: %w", err)
	}

	return raw, nil
}

func (s *TokenService) VerifyAccessToken(raw string) (domain.Identity, error) {
	return s.codec.ParseAccess(raw)
}

// VerifyRefreshToken checks signature, expiry and type, then requires
// a live registry entry. With consume set the entry is removed, making
// the token one-time-use.
func (s *TokenService) VerifyRefreshToken(ctx context.Context, raw string, consume bool) (domain.Identity, error) {
	identity, err := s.codec.ParseRefresh(raw)
	if err != nil {
		return domain.Identity{}, err
	}

	var found bool
	if consume {
		_, found, err = s.registry.Consume(ctx, raw)
	} else {
		_, found, err = s.registry.Get(ctx, raw)
	}
	if err != nil {
		return domain.Identity{}, fmt.Errorf("refresh registry lookup failed: %w", err)
	}
	if !found {
		return domain.Identity{}, domain.ErrRefreshNotFound
	}

	return identity, nil
}

// Refresh redeems a refresh token exactly once, issuing a brand-new
// access/refresh pair for the same identity. Replays of an
// already-rotated token fail with domain.ErrRefreshNotFound.
func (s *TokenService) Refresh(ctx context.Context, refreshToken string) (*ports.TokenPair, error) {
	identity, err := s.VerifyRefreshToken(ctx, refreshToken, true)
	if err != nil {
		return nil, err
	}

	accessToken, expiresIn, err := s.IssueAccessToken(identity)
	if err != nil {
		return nil, err
	}

	newRefreshToken, err := s.IssueRefreshToken(ctx, identity)
	if err != nil {
		return nil, err
	}

	return &ports.TokenPair{
		User:         identity,
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
		ExpiresIn:    expiresIn,
	}, nil
}

// Revoke removes the registry entry for a refresh token, if any. Used
// by logout so a captured refresh token dies with the session.
func (s *TokenService) Revoke(ctx context.Context, refreshToken string) error {
	if err := s.registry.Delete(ctx, refreshToken); err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	return nil
}
