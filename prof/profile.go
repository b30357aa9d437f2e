// Package prof collects coarse wall-clock timings for expensive steps such
// as lattice generation and CDT construction.
package prof

import (
	"log"
	"sync"
	"time"
)

// Entry is a single timing measurement.
type Entry struct {
	Label string
	Dur   time.Duration
}

var (
	mu     sync.Mutex
	record []Entry
)

// Track logs and records the duration since start under the given name.
// Use with defer: defer prof.Track(time.Now(), "BuildLattice").
func Track(start time.Time, name string) {
	elapsed := time.Since(start)
	log.Printf("%s took %s", name, elapsed)
	mu.Lock()
	record = append(record, Entry{Label: name, Dur: elapsed})
	mu.Unlock()
}

// SnapshotAndReset returns the collected timing entries and clears them.
func SnapshotAndReset() []Entry {
	mu.Lock()
	defer mu.Unlock()
	out := record
	record = nil
	return out
}
