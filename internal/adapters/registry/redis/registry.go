// Package redis backs the refresh registry with Redis for
// multi-instance deployments. Tokens are keyed by hash, never stored
// in plaintext, and expire with the signature TTL via native key TTL.
package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vendio/api/internal/core/domain"
)

const defaultPrefix = "refresh:"

type Registry struct {
	client *redis.Client
	prefix string
}

func NewRegistry(client *redis.Client) *Registry {
	return &Registry{client: client, prefix: defaultPrefix}
}

func (r *Registry) Put(ctx context.Context, token string, identity domain.Identity, expiresAt time.Time) error {
	payload, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("failed to marshal identity: %w", err)
	}

	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}

	if err := r.client.Set(ctx, r.key(token), payload, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store refresh token: %w", err)
	}
	return nil
}

func (r *Registry) Get(ctx context.Context, token string) (domain.Identity, bool, error) {
	payload, err := r.client.Get(ctx, r.key(token)).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Identity{}, false, nil
	}
	if err != nil {
		return domain.Identity{}, false, fmt.Errorf("failed to get refresh token: %w", err)
	}
	return r.unmarshal(payload)
}

// Consume uses GETDEL so check-and-delete is a single server-side
// operation; concurrent replays of one token yield exactly one winner.
func (r *Registry) Consume(ctx context.Context, token string) (domain.Identity, bool, error) {
	payload, err := r.client.GetDel(ctx, r.key(token)).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Identity{}, false, nil
	}
	if err != nil {
		return domain.Identity{}, false, fmt.Errorf("failed to consume refresh token: %w", err)
	}
	return r.unmarshal(payload)
}

func (r *Registry) Delete(ctx context.Context, token string) error {
	if err := r.client.Del(ctx, r.key(token)).Err(); err != nil {
		return fmt.Errorf("failed to delete refresh token: %w", err)
	}
	return nil
}

func (r *Registry) key(token string) string {
	sum := sha256.Sum256([]byte(token))
	return r.prefix + hex.EncodeToString(sum[:])
}

func (r *Registry) unmarshal(payload []byte) (domain.Identity, bool, error) {
	var identity domain.Identity
	if err := json.Unmarshal(payload, &identity); err != nil {
		return domain.Identity{}, false, fmt.Errorf("corrupt refresh token entry: %w", err)
	}
	return identity, true, nil
}
