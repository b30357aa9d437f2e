// Package commitments implements three lattice commitment schemes over a
// generic scalar field: SIS (binding only), LWE (additively homomorphic,
// openable by bounding the recovered noise) and BDLOP (hiding and binding,
// composed from two SIS-like bases).
//
// Homomorphic combination is only meaningful between commitments built over
// the same lattice. Every commitment records a digest of its lattice and
// combination across different digests fails with ErrMismatchedLattice.
package commitments

import (
	"errors"
	"fmt"
	"math/big"
)

// ErrOpenFailed reports that a claimed secret does not reproduce the stored
// commitment. Callers are expected to branch on it.
var ErrOpenFailed = errors.New("commitments: secret does not open the commitment")

// ErrMismatchedLattice reports an attempt to homomorphically combine
// commitments built over different lattices.
var ErrMismatchedLattice = errors.New("commitments: commitments were built over different lattices")

// ErrZKOpeningUnimplemented is returned by the zero-knowledge opening stub.
var ErrZKOpeningUnimplemented = errors.New("commitments: zero-knowledge opening is not implemented")

// BoundError reports an LWE opening whose recovered noise entry lies
// further from zero than the caller-supplied bound.
type BoundError struct {
	Dist  *big.Int
	Bound uint64
}

func (e *BoundError) Error() string {
	return fmt.Sprintf("commitments: recovered error distance %v exceeds bound %d", e.Dist, e.Bound)
}
