package probability

import (
	"math/big"
	"sync"

	"lattice-commit/field"
)

type cdtKey struct {
	card  string
	theta uint32
}

// CDTCache shares immutable Gaussian tables between samplers. Lookups run
// concurrently under a read lock; a miss builds the table outside the lock
// and inserts it under the write lock. Racing misses may build the same
// table twice; the last insert wins, which is benign because the tables are
// numerically identical.
type CDTCache struct {
	mu     sync.RWMutex
	tables map[cdtKey]*GaussianCDT
}

func NewCDTCache() *CDTCache {
	return &CDTCache{tables: make(map[cdtKey]*GaussianCDT)}
}

// GetOrBuild returns the table for (card, theta), constructing it on first
// use. Theta is keyed at five decimal digits of precision.
func (c *CDTCache) GetOrBuild(card *big.Int, theta float64) *GaussianCDT {
	key := cdtKey{card: card.String(), theta: thetaKey(theta)}
	c.mu.RLock()
	t, ok := c.tables[key]
	c.mu.RUnlock()
	if ok {
		return t
	}
	t = buildCDT(card, theta)
	c.mu.Lock()
	c.tables[key] = t
	c.mu.Unlock()
	return t
}

// defaultCache is constructed on first use and lives for the process
// lifetime.
var defaultCache = NewCDTCache()

// NewGaussianCDT returns the shared table for E's cardinality and theta
// from the process-wide cache.
func NewGaussianCDT[E field.Element[E]](theta float64) *GaussianCDT {
	var z E
	return defaultCache.GetOrBuild(z.Cardinality(), theta)
}
