package revocation

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"heroapp/internal/core/port"
)

const keyPrefix = "revoked:"

// RedisRevoker shares the revocation set across processes. Keys carry the
// refresh-token lifetime as TTL, so redis garbage-collects them exactly when
// the last outstanding token would have expired anyway.
type RedisRevoker struct {
	client *redis.Client
}

func NewRedisRevoker(addr string) port.TokenRevoker {
	return &RedisRevoker{
		client: redis.NewClient(&redis.Options{Addr: addr}),
	}
}

func (r *RedisRevoker) Revoke(ctx context.Context, userUUID string, ttl time.Duration) error {
	return r.client.Set(ctx, keyPrefix+userUUID, 1, ttl).Err()
}

func (r *RedisRevoker) IsRevoked(ctx context.Context, userUUID string) (bool, error) {
	err := r.client.Get(ctx, keyPrefix+userUUID).Err()

	if errors.Is(err, redis.Nil) {
		return false, nil
	}

	if err != nil {
		return false, err
	}

	return true, nil
}
