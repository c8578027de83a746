package memory

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vendio/api/internal/core/domain"
)

var identity = domain.Identity{ID: 1, Email: "a@b.com"}

func TestPutGetConsume(t *testing.T) {
	ctx := context.Background()
	reg := NewRegistry()

	require.NoError(t, reg.Put(ctx, "tok", identity, time.Now().Add(time.Hour)))

	got, ok, err := reg.Get(ctx, "tok")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, identity, got)

	// Get does not consume.
	_, ok, err = reg.Get(ctx, "tok")
	require.NoError(t, err)
	assert.True(t, ok)

	got, ok, err = reg.Consume(ctx, "tok")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, identity, got)

	_, ok, err = reg.Consume(ctx, "tok")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	reg := NewRegistry()

	require.NoError(t, reg.Put(ctx, "tok", identity, time.Now().Add(time.Hour)))
	require.NoError(t, reg.Delete(ctx, "tok"))

	_, ok, err := reg.Get(ctx, "tok")
	require.NoError(t, err)
	assert.False(t, ok)

	// Deleting an absent token is a no-op.
	require.NoError(t, reg.Delete(ctx, "missing"))
}

func TestExpiredEntryNotReturned(t *testing.T) {
	ctx := context.Background()
	reg := NewRegistry()

	require.NoError(t, reg.Put(ctx, "stale", identity, time.Now().Add(-time.Minute)))

	_, ok, err := reg.Get(ctx, "stale")
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = reg.Consume(ctx, "stale")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPutPurgesExpiredEntries(t *testing.T) {
	ctx := context.Background()
	reg := NewRegistry()

	require.NoError(t, reg.Put(ctx, "stale", identity, time.Now().Add(-time.Minute)))
	require.NoError(t, reg.Put(ctx, "fresh", identity, time.Now().Add(time.Hour)))

	reg.mu.Lock()
	_, staleKept := reg.entries["stale"]
	reg.mu.Unlock()
	assert.False(t, staleKept)
}

func TestConcurrentConsumeSingleWinner(t *testing.T) {
	ctx := context.Background()
	reg := NewRegistry()

	require.NoError(t, reg.Put(ctx, "tok", identity, time.Now().Add(time.Hour)))

	const racers = 32
	var winners atomic.Int64
	var wg sync.WaitGroup
	start := make(chan struct{})

	for range racers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			if _, ok, _ := reg.Consume(ctx, "tok"); ok {
				winners.Add(1)
			}
		}()
	}

	close(start)
	wg.Wait()

	assert.Equal(t, int64(1), winners.Load())
}
