// Package linalg provides dense vectors and row-major matrices over any
// field.Element, with the exact modular semantics the commitment schemes
// rely on. Binary operations on operands of different lengths are
// programmer-contract violations and panic rather than returning errors.
package linalg

import (
	"fmt"
	"strings"

	"lattice-commit/field"
)

// Vector is a fixed-length ordered sequence of field elements. The length is
// immutable; entries are settable in place.
type Vector[E field.Element[E]] struct {
	entries []E
}

// New returns a zero vector of length n.
func New[E field.Element[E]](n int) Vector[E] {
	return Vector[E]{entries: make([]E, n)}
}

// Random returns a vector of n elements drawn via SampleRand.
func Random[E field.Element[E]](n int, rng *field.RNG) Vector[E] {
	entries := make([]E, n)
	var z E
	for i := range entries {
		entries[i] = z.SampleRand(rng)
	}
	return Vector[E]{entries: entries}
}

// FromSlice wraps the given entries. The slice is owned by the vector
// afterwards.
func FromSlice[E field.Element[E]](entries []E) Vector[E] {
	return Vector[E]{entries: entries}
}

func (v Vector[E]) Len() int { return len(v.entries) }

// At returns entry i, panicking when i is out of range.
func (v Vector[E]) At(i int) E {
	if i < 0 || i >= len(v.entries) {
		panic(fmt.Sprintf("linalg: index %d outside of vector of length %d", i, len(v.entries)))
	}
	return v.entries[i]
}

// Set stores e at entry i, panicking when i is out of range.
func (v Vector[E]) Set(i int, e E) {
	if i < 0 || i >= len(v.entries) {
		panic(fmt.Sprintf("linalg: index %d outside of vector of length %d", i, len(v.entries)))
	}
	v.entries[i] = e
}

func (v Vector[E]) assertSameLen(rhs Vector[E], op string) {
	if len(v.entries) != len(rhs.entries) {
		panic(fmt.Sprintf("linalg: cannot %s vectors of length %d and %d", op, len(v.entries), len(rhs.entries)))
	}
}

// Add returns the componentwise sum v + rhs.
func (v Vector[E]) Add(rhs Vector[E]) Vector[E] {
	v.assertSameLen(rhs, "add")
	out := make([]E, len(v.entries))
	for i := range out {
		out[i] = v.entries[i].Add(rhs.entries[i])
	}
	return Vector[E]{entries: out}
}

// Sub returns the componentwise difference v - rhs.
func (v Vector[E]) Sub(rhs Vector[E]) Vector[E] {
	v.assertSameLen(rhs, "subtract")
	out := make([]E, len(v.entries))
	for i := range out {
		out[i] = v.entries[i].Sub(rhs.entries[i])
	}
	return Vector[E]{entries: out}
}

// Hadamard returns the componentwise product v ∘ rhs.
func (v Vector[E]) Hadamard(rhs Vector[E]) Vector[E] {
	v.assertSameLen(rhs, "multiply")
	out := make([]E, len(v.entries))
	for i := range out {
		out[i] = v.entries[i].Mul(rhs.entries[i])
	}
	return Vector[E]{entries: out}
}

// ScalarMul returns v with every entry scaled by e.
func (v Vector[E]) ScalarMul(e E) Vector[E] {
	out := make([]E, len(v.entries))
	for i := range out {
		out[i] = v.entries[i].Mul(e)
	}
	return Vector[E]{entries: out}
}

// AddScalar returns v with e added to every entry.
func (v Vector[E]) AddScalar(e E) Vector[E] {
	out := make([]E, len(v.entries))
	for i := range out {
		out[i] = v.entries[i].Add(e)
	}
	return Vector[E]{entries: out}
}

// Sum folds the entries by field addition.
func (v Vector[E]) Sum() E {
	var out E
	for _, e := range v.entries {
		out = out.Add(e)
	}
	return out
}

// IsZero reports whether every entry is the additive identity.
func (v Vector[E]) IsZero() bool {
	for _, e := range v.entries {
		if !e.IsZero() {
			return false
		}
	}
	return true
}

func (v Vector[E]) Equal(rhs Vector[E]) bool {
	if len(v.entries) != len(rhs.entries) {
		return false
	}
	for i := range v.entries {
		if !v.entries[i].Equal(rhs.entries[i]) {
			return false
		}
	}
	return true
}

func (v Vector[E]) Clone() Vector[E] {
	out := make([]E, len(v.entries))
	copy(out, v.entries)
	return Vector[E]{entries: out}
}

// String renders the entries comma-joined. Diagnostics only, not a wire
// format.
func (v Vector[E]) String() string {
	parts := make([]string, len(v.entries))
	for i, e := range v.entries {
		parts[i] = e.String()
	}
	return strings.Join(parts, ",")
}
