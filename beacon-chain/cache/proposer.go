package cache

import (
	"strconv"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// proposerCacheExpiration mirrors prysm's own epoch-scoped caches: an
// entry is only ever valid for the epoch it was computed for, so there
// is no reason to keep it once the next epoch is well underway.
const proposerCacheExpiration = 2 * time.Minute

// ProposerCache memoizes BeaconProposerIndex results keyed by slot and
// the epoch seed that determined them, since the computation reseeds
// per slot but only the active set and epoch seed actually vary it.
type ProposerCache struct {
	cache *gocache.Cache
}

// NewProposerCache constructs an empty proposer index cache.
func NewProposerCache() *ProposerCache {
	return &ProposerCache{cache: gocache.New(proposerCacheExpiration, proposerCacheExpiration/2)}
}

func proposerCacheKey(slot uint64, seed [32]byte) string {
	return strconv.FormatUint(slot, 10) + string(seed[:])
}

// Get returns the cached proposer index for slot/seed and whether it
// was present.
func (c *ProposerCache) Get(slot uint64, seed [32]byte) (uint64, bool) {
	v, ok := c.cache.Get(proposerCacheKey(slot, seed))
	if !ok {
		return 0, false
	}
	return v.(uint64), true
}

// Put stores index as the proposer for slot/seed.
func (c *ProposerCache) Put(slot uint64, seed [32]byte, index uint64) {
	c.cache.Set(proposerCacheKey(slot, seed), index, gocache.DefaultExpiration)
}
