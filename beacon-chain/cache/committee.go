// Package cache memoizes the transition core's most repeated, purely
// derived lookups: the committee shuffle for a given seed and the
// beacon proposer for a given epoch. Neither cache is load-bearing for
// correctness — every entry is reproducible from state alone — they
// only save recomputing the swap-or-not shuffle and churn-limited
// committee walk once per seed. Grounded on prysm's own
// beacon-chain/cache package shape (an LRU in front of an expensive
// derived value, keyed by the inputs that determine it).
package cache

import (
	"strconv"

	lru "github.com/hashicorp/golang-lru"
	"github.com/pkg/errors"
)

// maxShuffledListSize bounds the committee cache the same way prysm's
// shuffledIndicesCache bounds its own: enough entries to span a handful
// of epochs' worth of distinct seeds without unbounded growth across a
// long-running process.
const maxShuffledListSize = 1000

// ErrNotFound is returned when a cache lookup misses.
var ErrNotFound = errors.New("cache: not found")

// CommitteeCache memoizes ShuffledIndices results keyed by the seed and
// epoch that produced them.
type CommitteeCache struct {
	lru *lru.Cache
}

// NewCommitteeCache constructs an empty committee cache.
func NewCommitteeCache() *CommitteeCache {
	c, err := lru.New(maxShuffledListSize)
	if err != nil {
		panic(err)
	}
	return &CommitteeCache{lru: c}
}

func committeeCacheKey(seed [32]byte, epoch uint64) string {
	return string(seed[:]) + strconv.FormatUint(epoch, 10)
}

// Get returns the cached shuffled index list for seed/epoch, or
// ErrNotFound on a miss.
func (c *CommitteeCache) Get(seed [32]byte, epoch uint64) ([]uint64, error) {
	v, ok := c.lru.Get(committeeCacheKey(seed, epoch))
	if !ok {
		return nil, ErrNotFound
	}
	return v.([]uint64), nil
}

// Put stores indices as the shuffled index list for seed/epoch.
func (c *CommitteeCache) Put(seed [32]byte, epoch uint64, indices []uint64) {
	c.lru.Add(committeeCacheKey(seed, epoch), indices)
}
