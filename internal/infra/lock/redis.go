package lock

import (
	"context"
	"crypto/tls"
	"time"

	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var ErrLockTimeout = errs.Mark(errs.New("timed out waiting for assignment lock"), errs.ErrConcurrencyConflict)

// Deletes the key only while it still holds our token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

func NewRedisClient(cfg config.RedisConfig, useTLS bool) (*redis.Client, error) {
	opts := &redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	}
	if useTLS {
		opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errs.Wrap(err, "redis: ping failed")
	}
	return client, nil
}

// RedisLock serializes room assignment per category across service instances.
type RedisLock struct {
	client redis.Cmdable
	ttl    time.Duration
	wait   time.Duration
	retry  time.Duration
	prefix string
}

var _ shared.AssignmentLock = (*RedisLock)(nil)

func NewRedisLock(client redis.Cmdable, ttl time.Duration) *RedisLock {
	if ttl <= 0 {
		ttl = 5 * time.Second
	}
	return &RedisLock{
		client: client,
		ttl:    ttl,
		wait:   2 * ttl,
		retry:  25 * time.Millisecond,
		prefix: "booking:assign:",
	}
}

func (l *RedisLock) Acquire(ctx context.Context, categoryID uuid.UUID) (func(context.Context) error, error) {
	key := l.prefix + categoryID.String()
	token := uuid.NewString()
	deadline := time.Now().Add(l.wait)

	for {
		ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
		if err != nil {
			return nil, errs.Wrap(err, "redis: acquire lock failed")
		}
		if ok {
			return func(ctx context.Context) error {
				if err := releaseScript.Run(ctx, l.client, []string{key}, token).Err(); err != nil && !errs.Is(err, redis.Nil) {
					return errs.Wrap(err, "redis: release lock failed")
				}
				return nil
			}, nil
		}
		if time.Now().After(deadline) {
			return nil, ErrLockTimeout
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(l.retry):
		}
	}
}
