//go:build unit

package lock_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"hotel-booking/internal/infra/lock"
	"hotel-booking/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRedis keeps keys in a map; only the commands the lock sends are implemented.
type fakeRedis struct {
	redis.Cmdable
	mu     sync.Mutex
	keys   map[string]string
	setErr error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{keys: make(map[string]string)}
}

func (f *fakeRedis) SetNX(_ context.Context, key string, value interface{}, _ time.Duration) *redis.BoolCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.setErr != nil {
		return redis.NewBoolResult(false, f.setErr)
	}
	if _, ok := f.keys[key]; ok {
		return redis.NewBoolResult(false, nil)
	}
	f.keys[key] = value.(string)
	return redis.NewBoolResult(true, nil)
}

func (f *fakeRedis) EvalSha(_ context.Context, _ string, keys []string, args ...interface{}) *redis.Cmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.keys[keys[0]] == args[0].(string) {
		delete(f.keys, keys[0])
		return redis.NewCmdResult(int64(1), nil)
	}
	return redis.NewCmdResult(int64(0), nil)
}

func TestRedisLock_Acquire(t *testing.T) {
	ctx := context.Background()
	categoryID := uuid.New()

	t.Run("acquire and release", func(t *testing.T) {
		client := newFakeRedis()
		l := lock.NewRedisLock(client, time.Second)

		release, err := l.Acquire(ctx, categoryID)
		require.NoError(t, err)
		assert.Contains(t, client.keys, "booking:assign:"+categoryID.String())

		require.NoError(t, release(ctx))
		assert.Empty(t, client.keys)
	})

	t.Run("release leaves a key taken over by another holder", func(t *testing.T) {
		client := newFakeRedis()
		l := lock.NewRedisLock(client, time.Second)

		release, err := l.Acquire(ctx, categoryID)
		require.NoError(t, err)
		client.keys["booking:assign:"+categoryID.String()] = "someone-else"

		require.NoError(t, release(ctx))
		assert.Equal(t, "someone-else", client.keys["booking:assign:"+categoryID.String()])
	})

	t.Run("held lock times out", func(t *testing.T) {
		client := newFakeRedis()
		client.keys["booking:assign:"+categoryID.String()] = "other"
		l := lock.NewRedisLock(client, 10*time.Millisecond)

		_, err := l.Acquire(ctx, categoryID)

		require.Error(t, err)
		assert.True(t, errs.Is(err, lock.ErrLockTimeout))
		assert.True(t, errs.Is(err, errs.ErrConcurrencyConflict))
	})

	t.Run("cancelled while waiting", func(t *testing.T) {
		client := newFakeRedis()
		client.keys["booking:assign:"+categoryID.String()] = "other"
		l := lock.NewRedisLock(client, time.Minute)
		cctx, cancel := context.WithTimeout(ctx, 50*time.Millisecond)
		defer cancel()

		_, err := l.Acquire(cctx, categoryID)

		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("redis error", func(t *testing.T) {
		client := newFakeRedis()
		client.setErr = errors.New("connection refused")
		l := lock.NewRedisLock(client, time.Second)

		_, err := l.Acquire(ctx, categoryID)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "connection refused")
	})
}
