// Package r1cs evaluates rank-1 constraint systems over the linalg API.
package r1cs

import (
	"fmt"

	"lattice-commit/field"
	"lattice-commit/linalg"
)

// R1CS is a rank-1 constraint system: three matrices of identical shape. A
// witness w satisfies the system when (A*w) ∘ (B*w) - C*w is the zero
// vector.
type R1CS[E field.Element[E]] struct {
	A linalg.Matrix[E]
	B linalg.Matrix[E]
	C linalg.Matrix[E]
}

// New bundles the three constraint matrices. Shape consistency is checked
// at evaluation time.
func New[E field.Element[E]](a, b, c linalg.Matrix[E]) R1CS[E] {
	return R1CS[E]{A: a, B: b, C: c}
}

// Dimension returns the (height, width) of the constraint matrices.
func (r R1CS[E]) Dimension() (int, int) { return r.A.Dimension() }

// Eval computes (A*w) ∘ (B*w) - C*w for the given witness. The result is
// the zero vector exactly when the witness satisfies every constraint.
func (r R1CS[E]) Eval(witness linalg.Vector[E]) (linalg.Vector[E], error) {
	if err := r.checkShapes(); err != nil {
		return linalg.Vector[E]{}, err
	}
	ab := r.A.MulVec(witness).Hadamard(r.B.MulVec(witness))
	return ab.Sub(r.C.MulVec(witness)), nil
}

func (r R1CS[E]) checkShapes() error {
	ah, aw := r.A.Dimension()
	if bh, bw := r.B.Dimension(); bh != ah || bw != aw {
		return fmt.Errorf("r1cs: A and B dimension mismatch, expected (%d,%d), got (%d,%d)", ah, aw, bh, bw)
	}
	if ch, cw := r.C.Dimension(); ch != ah || cw != aw {
		return fmt.Errorf("r1cs: A and C dimension mismatch, expected (%d,%d), got (%d,%d)", ah, aw, ch, cw)
	}
	return nil
}
