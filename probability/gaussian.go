// Package probability implements a discretized, truncated Gaussian sampler
// backed by a cumulative distribution table (CDT), shared process-wide
// through a cache keyed on (field cardinality, theta).
//
// Table entries are addressed by displacement: the signed distance of a
// field element from the zero element. In the field with 101 elements, the
// element 100 sits at displacement -1 and the element 1 at displacement +1.
// Displacement measures distance and direction over the representatives; it
// is not a field quantity, because fields are not ordered.
package probability

import (
	"fmt"
	"log"
	"math"
	"math/big"

	"lattice-commit/field"
)

// GaussianCDT holds the cumulative thresholds of a Gaussian with standard
// deviation Theta, truncated to displacements in [-D, D] where
// D = ceil(13*Theta), leaving roughly 2^-125 of the mass outside the table.
// Immutable once built.
type GaussianCDT struct {
	Cardinality *big.Int
	Theta       float64
	// TotalMass is the unnormalized probability mass summed over the table.
	TotalMass float64

	entries []cdtEntry
}

type cdtEntry struct {
	// cum is the normalized mass strictly below this displacement, so the
	// entry owns the span [cum, next.cum).
	cum  float64
	disp int32
}

// thetaKey scales theta to five decimal digits for use as a cache key.
// Panics when theta carries more precision than the key can hold or would
// overflow it; this is independent of the floating point accuracy inside
// the table.
func thetaKey(theta float64) uint32 {
	scaled := theta * 1e5
	if math.Abs(scaled-math.Round(scaled)) > 1e-3 {
		panic(fmt.Sprintf("probability: theta %v needs more than 5 decimal digits", theta))
	}
	if scaled > math.MaxUint32 {
		panic(fmt.Sprintf("probability: theta %v is too large", theta))
	}
	return uint32(math.Round(scaled))
}

func buildCDT(card *big.Int, theta float64) *GaussianCDT {
	dist := int32(math.Ceil(13 * theta))
	if dist < 1 {
		panic(fmt.Sprintf("probability: theta %v is too small", theta))
	}
	log.Printf("probability: building CDT with %d displacements", 2*dist+1)
	if dist > 50 {
		log.Printf("probability: CDT has more than 100 entries, consider adjusting tail bounds")
	}

	entries := make([]cdtEntry, 0, 2*dist+1)
	total := 0.0
	for d := -dist; d <= dist; d++ {
		p := math.Exp(-float64(d) * float64(d) / (2 * theta * theta))
		entries = append(entries, cdtEntry{cum: p, disp: d})
		total += p
	}
	// Normalize and convert to ascending cumulative thresholds.
	cum := 0.0
	for i := range entries {
		p := entries[i].cum / total
		entries[i].cum = cum
		cum += p
	}

	return &GaussianCDT{
		Cardinality: new(big.Int).Set(card),
		Theta:       theta,
		TotalMass:   total,
		entries:     entries,
	}
}

// SampleDisp draws a displacement by inversion: a uniform r in [0,1) is
// located in the bucket whose cumulative span contains it. A miss means the
// table violates its own normalization invariant and is a hard failure,
// never a clamp.
func (t *GaussianCDT) SampleDisp(rng *field.RNG) int32 {
	r := rng.Float64()
	for i := range t.entries {
		upper := 1.0
		if i+1 < len(t.entries) {
			upper = t.entries[i+1].cum
		}
		if r >= t.entries[i].cum && r < upper {
			return t.entries[i].disp
		}
	}
	panic(fmt.Sprintf("probability: sampled value %v lies outside every CDT bucket", r))
}

// Sample draws a displacement and embeds it into the field: d itself when
// d >= 0, Cardinality + d otherwise.
func Sample[E field.Element[E]](t *GaussianCDT, rng *field.RNG) E {
	return field.AtDisplacement[E](int64(t.SampleDisp(rng)))
}

// TailDist is the largest displacement D the table can produce; buckets
// cover [-D, D].
func (t *GaussianCDT) TailDist() int32 {
	return t.entries[len(t.entries)-1].disp
}

// Prob recovers the non-cumulative width of the bucket at disp, or 0 when
// the displacement lies outside the table. Used for statistical validation
// only.
func (t *GaussianCDT) Prob(disp int32) float64 {
	for i := range t.entries {
		if t.entries[i].disp == disp {
			upper := 1.0
			if i+1 < len(t.entries) {
				upper = t.entries[i+1].cum
			}
			return upper - t.entries[i].cum
		}
	}
	return 0
}
