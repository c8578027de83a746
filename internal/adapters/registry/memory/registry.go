// Package memory provides an in-process refresh registry for
// single-instance deployments. Entries do not survive restarts.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/vendio/api/internal/core/domain"
)

type entry struct {
	identity  domain.Identity
	expiresAt time.Time
}

type Registry struct {
	mu      sync.Mutex
	entries map[string]entry
	now     func() time.Time
}

func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

func (r *Registry) Put(_ context.Context, token string, identity domain.Identity, expiresAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Entries whose signature expiry has passed can never verify
	// again; drop them here so the map does not grow unbounded.
	now := r.now()
	for key, e := range r.entries {
		if e.expiresAt.Before(now) {
			delete(r.entries, key)
		}
	}

	r.entries[token] = entry{identity: identity, expiresAt: expiresAt}
	return nil
}

func (r *Registry) Get(_ context.Context, token string) (domain.Identity, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[token]
	if !ok || e.expiresAt.Before(r.now()) {
		return domain.Identity{}, false, nil
	}
	return e.identity, true, nil
}

// Consume removes the entry and reports whether it was present. The
// check-and-delete happens under the lock, so concurrent replays of
// one token yield exactly one winner.
func (r *Registry) Consume(_ context.Context, token string) (domain.Identity, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[token]
	if !ok {
		return domain.Identity{}, false, nil
	}
	delete(r.entries, token)
	if e.expiresAt.Before(r.now()) {
		return domain.Identity{}, false, nil
	}
	return e.identity, true, nil
}

func (r *Registry) Delete(_ context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.entries, token)
	return nil
}
