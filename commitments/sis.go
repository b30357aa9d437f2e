package commitments

import (
	"lattice-commit/field"
	"lattice-commit/linalg"
)

// SIS is a commitment based on the short integer solution problem over a
// scalar field. Committed values should be short: callers decompose them
// into digits first, typically with field.AsLeBits.
type SIS[E field.Element[E]] struct {
	Lattice linalg.Matrix[E]
	// Secret is the committed digit vector, retained for re-derivation and
	// debugging. Homomorphic operations keep it in step with the
	// commitment where they can (Add, ScalarMul); MulVec cannot and leaves
	// it untouched.
	Secret     linalg.Vector[E]
	Commitment linalg.Vector[E]

	digest [32]byte
}

// CommitSIS commits to val under the given lattice; a nil lattice draws a
// fresh uniform matrix with height len(val)*BitWidth, enough linear
// constraints relative to the message length to make the SIS instance hard.
// Homomorphic combination later requires the same lattice for every
// operand.
func CommitSIS[E field.Element[E]](val linalg.Vector[E], lattice *linalg.Matrix[E], rng *field.RNG) *SIS[E] {
	var lat linalg.Matrix[E]
	if lattice != nil {
		lat = *lattice
	} else {
		var z E
		lat = linalg.RandomMatrix[E](val.Len(), val.Len()*z.BitWidth(), rng)
	}
	return &SIS[E]{
		Lattice:    lat,
		Secret:     val.Clone(),
		Commitment: lat.MulVec(val),
		digest:     lat.Digest(),
	}
}

// Verify recomputes lattice times the claimed secret and compares. Binding
// rests on SIS hardness, not on an explicit proof.
func (s *SIS[E]) Verify(secret linalg.Vector[E]) error {
	if !s.Lattice.MulVec(secret).Equal(s.Commitment) {
		return ErrOpenFailed
	}
	return nil
}

// Add combines two commitments over the same lattice into a commitment to
// the sum of their decomposed messages. The stored secret becomes the
// entrywise sum of both secrets.
func (s *SIS[E]) Add(rhs *SIS[E]) (*SIS[E], error) {
	if s.digest != rhs.digest {
		return nil, ErrMismatchedLattice
	}
	return &SIS[E]{
		Lattice:    s.Lattice,
		Secret:     s.Secret.Add(rhs.Secret),
		Commitment: s.Commitment.Add(rhs.Commitment),
		digest:     s.digest,
	}, nil
}

// ScalarMul scales the commitment by e, committing to the scaled message.
func (s *SIS[E]) ScalarMul(e E) *SIS[E] {
	return &SIS[E]{
		Lattice:    s.Lattice,
		Secret:     s.Secret.ScalarMul(e),
		Commitment: s.Commitment.ScalarMul(e),
		digest:     s.digest,
	}
}

// MulVec scales the commitment vector componentwise by v. The stored secret
// has no componentwise counterpart under this operation and stays as it
// was; Verify against it is no longer meaningful afterwards.
func (s *SIS[E]) MulVec(v linalg.Vector[E]) *SIS[E] {
	return &SIS[E]{
		Lattice:    s.Lattice,
		Secret:     s.Secret,
		Commitment: s.Commitment.Hadamard(v),
		digest:     s.digest,
	}
}
