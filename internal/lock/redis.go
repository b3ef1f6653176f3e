package lock

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Снимаем блокировку, только если она всё ещё наша
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// Redis - блокировки через SET NX с TTL, общие для всех реплик.
// TTL страхует от блокировки, брошенной упавшим процессом
type Redis struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewRedis(client *redis.Client, ttl time.Duration, logger *zap.Logger) *Redis {
	return &Redis{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func (r *Redis) TryLock(ctx context.Context, key string) (func(), error) {
	owner := uuid.NewString()

	ok, err := r.client.SetNX(ctx, key, owner, r.ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to setnx key %s: %w", key, err)
	}
	if !ok {
		return nil, ErrLocked
	}

	return func() {
		// Контекст запроса может быть уже отменён, снимаем блокировку в своём
		releaseCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()

		if err := releaseScript.Run(releaseCtx, r.client, []string{key}, owner).Err(); err != nil {
			r.logger.Warn("release spin lock", zap.String("key", key), zap.Error(err))
		}
	}, nil
}
