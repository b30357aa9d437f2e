package probability

import (
	"math/big"
	"sync"
	"testing"

	"lattice-commit/field"
)

// TestCacheReturnsSharedTable checks that repeated lookups for the same
// (cardinality, theta) pair hit the same table instance.
func TestCacheReturnsSharedTable(t *testing.T) {
	first := NewGaussianCDT[field.Goldilocks](3.25)
	second := NewGaussianCDT[field.Goldilocks](3.25)
	if first != second {
		t.Fatalf("process cache built two tables for the same parameters")
	}
}

func TestCacheDistinguishesParameters(t *testing.T) {
	cache := NewCDTCache()
	card := big.NewInt(101)
	a := cache.GetOrBuild(card, 2.0)
	if b := cache.GetOrBuild(card, 2.5); a == b {
		t.Fatalf("tables for different theta coincide")
	}
	if c := cache.GetOrBuild(big.NewInt(103), 2.0); a == c {
		t.Fatalf("tables for different cardinalities coincide")
	}
	if d := cache.GetOrBuild(card, 2.0); a != d {
		t.Fatalf("second lookup missed the cached table")
	}
}

// TestCacheConcurrentLookups hammers one cache entry from many goroutines;
// the race detector turns any locking mistake into a failure.
func TestCacheConcurrentLookups(t *testing.T) {
	cache := NewCDTCache()
	card := big.NewInt(101)
	var wg sync.WaitGroup
	tables := make([]*GaussianCDT, 32)
	for i := range tables {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tables[i] = cache.GetOrBuild(card, 1.5)
		}(i)
	}
	wg.Wait()
	for i, tab := range tables {
		if tab == nil {
			t.Fatalf("goroutine %d got a nil table", i)
		}
		if tab.Theta != 1.5 {
			t.Fatalf("goroutine %d got a table with theta %v", i, tab.Theta)
		}
	}
}
