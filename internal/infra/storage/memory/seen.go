// Package memory implements the listener's state in process memory.
package memory

import (
	"context"
	"time"

	"github.com/gabapcia/txlisten/internal/txlisten"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jellydator/ttlcache/v3"
)

// seenGuard remembers notified transactions for a fixed TTL.
type seenGuard struct {
	cache *ttlcache.Cache[common.Hash, struct{}]
}

var _ txlisten.SeenGuard = (*seenGuard)(nil)

// NewSeenGuard returns a txlisten.SeenGuard keeping each hash for ttl. Expired
// entries are evicted in the background until Close is called.
func NewSeenGuard(ttl time.Duration) *seenGuard {
	cache := ttlcache.New(
		ttlcache.WithTTL[common.Hash, struct{}](ttl),
		ttlcache.WithDisableTouchOnHit[common.Hash, struct{}](),
	)
	go cache.Start()

	return &seenGuard{
		cache: cache,
	}
}

// MarkSeen implements txlisten.SeenGuard.
func (g *seenGuard) MarkSeen(_ context.Context, hash common.Hash) (bool, error) {
	_, found := g.cache.GetOrSet(hash, struct{}{})
	return !found, nil
}

// Close stops the background eviction.
func (g *seenGuard) Close() {
	g.cache.Stop()
}
