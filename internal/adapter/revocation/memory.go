package revocation

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"

	"heroapp/internal/core/port"
)

// MemoryRevoker keeps the revocation set in process memory. Entries expire on
// their own once the refresh-token lifetime has passed. Suitable for a single
// process; multi-process deployments use the redis-backed revoker.
type MemoryRevoker struct {
	cache *cache.Cache
}

func NewMemoryRevoker() port.TokenRevoker {
	return &MemoryRevoker{
		cache: cache.New(cache.NoExpiration, 10*time.Minute),
	}
}

func (r *MemoryRevoker) Revoke(_ context.Context, userUUID string, ttl time.Duration) error {
	r.cache.Set(userUUID, struct{}{}, ttl)
	return nil
}

func (r *MemoryRevoker) IsRevoked(_ context.Context, userUUID string) (bool, error) {
	_, found := r.cache.Get(userUUID)
	return found, nil
}
