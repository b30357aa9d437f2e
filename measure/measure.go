// Package measure accumulates byte-size accounting for commitments,
// lattices and sampler tables. Enabled through the MEASURE_SIZES
// environment variable; disabled it costs a single branch per call.
package measure

import (
	"fmt"
	"math/big"
	"os"
	"sync"
)

var Enabled bool
var Global Counter

func init() {
	Enabled = os.Getenv("MEASURE_SIZES") == "1"
	Global = Counter{m: make(map[string]int64)}
}

// BytesElement is the byte size of one field element representative,
// ceil(bitlen(card)/8).
func BytesElement(card *big.Int) int {
	if card == nil {
		return 0
	}
	return (card.BitLen() + 7) / 8
}

// BytesVector is the byte size of an n-entry vector over the field.
func BytesVector(n int, card *big.Int) int {
	return n * BytesElement(card)
}

// BytesMatrix is the byte size of a width-by-height matrix over the field.
func BytesMatrix(width, height int, card *big.Int) int {
	return width * height * BytesElement(card)
}

// Human renders n as B/KiB/MiB.
func Human(n int64) string {
	const (
		KiB = 1024
		MiB = 1024 * KiB
	)
	switch {
	case n >= MiB:
		return fmt.Sprintf("%.1f MiB", float64(n)/float64(MiB))
	case n >= KiB:
		return fmt.Sprintf("%.1f KiB", float64(n)/float64(KiB))
	default:
		return fmt.Sprintf("%d B", n)
	}
}

// Counter is a mutex-guarded map of named byte totals.
type Counter struct {
	mu sync.Mutex
	m  map[string]int64
}

func (c *Counter) Add(key string, n int64) {
	if !Enabled {
		return
	}
	c.mu.Lock()
	c.m[key] += n
	c.mu.Unlock()
}

// Snapshot returns a copy of the current totals.
func (c *Counter) Snapshot() map[string]int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[string]int64, len(c.m))
	for k, v := range c.m {
		out[k] = v
	}
	return out
}

func (c *Counter) Dump() {
	if !Enabled {
		return
	}
	fmt.Println("[measure] Size report:")
	for k, v := range c.Snapshot() {
		fmt.Printf("[measure] %s = %s\n", k, Human(v))
	}
}
