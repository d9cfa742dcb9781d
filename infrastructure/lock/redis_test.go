package lock

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryStore struct {
	mu     sync.Mutex
	values   map[string]string
	releases int
	err      error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{values: make(map[string]string)}
}

func (s *memoryStore) SetNX(_ context.Context, key string, value any, _ time.Duration) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return false, s.err
	}
	if _, exists := s.values[key]; exists {
		return false, nil
	}
	s.values[key] = value.(string)
	return true, nil
}

func (s *memoryStore) Get(_ context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	value, ok := s.values[key]
	if !ok {
		return "", redis.Nil
	}
	return value, nil
}

func (s *memoryStore) DelIfValue(_ context.Context, key string, value string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.releases++
	if s.err != nil {
		return false, s.err
	}
	if current, ok := s.values[key]; !ok || current != value {
		return false, nil
	}
	delete(s.values, key)
	return true, nil
}

func TestRedisLock(t *testing.T) {
	ctx := context.Background()
	store := newMemoryStore()

	first, err := NewRedisLock(store, "highlight-expiration", time.Minute)
	require.NoError(t, err)
	second, err := NewRedisLock(store, "highlight-expiration", time.Minute)
	require.NoError(t, err)

	assert.Equal(t, "guia-local:lock:highlight-expiration", first.Key())

	ok, err := first.Acquire(ctx)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = second.Acquire(ctx)
	require.NoError(t, err)
	assert.False(t, ok, "lock já pertence à primeira instância")

	// liberar sem ser dono não apaga a chave
	require.NoError(t, second.Release(ctx))
	_, err = store.Get(ctx, first.Key())
	assert.NoError(t, err)

	require.NoError(t, first.Release(ctx))
	ok, err = second.Acquire(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRedisLock_ReleaseAfterTakeover(t *testing.T) {
	ctx := context.Background()
	store := newMemoryStore()

	l, err := NewRedisLock(store, "job", time.Minute)
	require.NoError(t, err)

	ok, err := l.Acquire(ctx)
	require.NoError(t, err)
	require.True(t, ok)

	// simula TTL vencido e outro dono
	store.values[l.Key()] = "outra-instancia"

	require.NoError(t, l.Release(ctx))
	assert.Equal(t, "outra-instancia", store.values[l.Key()])
	assert.Equal(t, 1, store.releases, "liberação em uma única operação")
}

func TestRedisLock_ReleaseSingleOperation(t *testing.T) {
	ctx := context.Background()
	store := newMemoryStore()

	l, err := NewRedisLock(store, "job", time.Minute)
	require.NoError(t, err)

	ok, err := l.Acquire(ctx)
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, l.Release(ctx))
	assert.Equal(t, 1, store.releases)
	_, err = store.Get(ctx, l.Key())
	assert.ErrorIs(t, err, redis.Nil)

	// segunda liberação não toca no Redis
	require.NoError(t, l.Release(ctx))
	assert.Equal(t, 1, store.releases)
}

func TestRedisLock_ReleaseError(t *testing.T) {
	ctx := context.Background()
	store := newMemoryStore()

	l, err := NewRedisLock(store, "job", time.Minute)
	require.NoError(t, err)
	ok, err := l.Acquire(ctx)
	require.NoError(t, err)
	require.True(t, ok)

	store.err = errors.New("connection reset")
	assert.ErrorContains(t, l.Release(ctx), "connection reset")
}

func TestRedisLock_Errors(t *testing.T) {
	_, err := NewRedisLock(nil, "job", time.Minute)
	assert.Error(t, err)

	_, err = NewRedisLock(newMemoryStore(), "", time.Minute)
	assert.Error(t, err)

	store := newMemoryStore()
	store.err = errors.New("connection refused")
	l, err := NewRedisLock(store, "job", 0)
	require.NoError(t, err)
	assert.Equal(t, defaultTTL, l.ttl)

	ok, err := l.Acquire(context.Background())
	assert.False(t, ok)
	assert.ErrorContains(t, err, "connection refused")
}
