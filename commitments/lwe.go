package commitments

import (
	"math/big"

	"lattice-commit/field"
	"lattice-commit/linalg"
	"lattice-commit/probability"
)

// NoiseSampler draws one bounded-magnitude noise element per call.
type NoiseSampler[E field.Element[E]] func(rng *field.RNG) E

// TritNoise draws uniformly from {-1, 0, 1}, mapped into the field's
// centered representation. It is the default LWE noise policy.
func TritNoise[E field.Element[E]]() NoiseSampler[E] {
	var zero E
	one := field.One[E]()
	negOne := field.NegOne[E]()
	return func(rng *field.RNG) E {
		switch rng.Intn(3) {
		case 0:
			return negOne
		case 1:
			return zero
		default:
			return one
		}
	}
}

// GaussianNoise draws displacements from the given CDT, a stronger-security
// alternative to TritNoise. Callers must widen opening bounds to match the
// sampler's tail.
func GaussianNoise[E field.Element[E]](cdt *probability.GaussianCDT) NoiseSampler[E] {
	return func(rng *field.RNG) E {
		return probability.Sample[E](cdt, rng)
	}
}

// LWE is a lattice commitment perturbed by small injected noise. It is
// additively and scalar homomorphic; every combination also combines the
// hidden noise, so the bound a caller supplies to TryOpen must grow
// linearly with the number of combined terms and with scalar magnitudes.
type LWE[E field.Element[E]] struct {
	Lattice    linalg.Matrix[E]
	Commitment linalg.Vector[E]

	digest [32]byte
}

// CommitLWE commits to val as lattice*val + err, with one noise element per
// lattice row. A nil lattice draws a fresh uniform matrix as in CommitSIS;
// a nil noise sampler falls back to TritNoise.
func CommitLWE[E field.Element[E]](val linalg.Vector[E], lattice *linalg.Matrix[E], noise NoiseSampler[E], rng *field.RNG) *LWE[E] {
	var lat linalg.Matrix[E]
	if lattice != nil {
		lat = *lattice
	} else {
		var z E
		lat = linalg.RandomMatrix[E](val.Len(), val.Len()*z.BitWidth(), rng)
	}
	if noise == nil {
		noise = TritNoise[E]()
	}
	errVec := linalg.New[E](lat.Height())
	for i := 0; i < lat.Height(); i++ {
		errVec.Set(i, noise(rng))
	}
	return &LWE[E]{
		Lattice:    lat,
		Commitment: lat.MulVec(val).Add(errVec),
		digest:     lat.Digest(),
	}
}

// TryOpen opens the commitment to val by recovering the implied noise
// vector and checking that every entry lies within maxErr of zero. On
// success it returns the recovered noise; otherwise a *BoundError carrying
// the offending distance and the bound.
func (c *LWE[E]) TryOpen(val linalg.Vector[E], maxErr uint64) (linalg.Vector[E], error) {
	recovered := c.Commitment.Sub(c.Lattice.MulVec(val))
	bound := new(big.Int).SetUint64(maxErr)
	for i := 0; i < recovered.Len(); i++ {
		if dist := field.ZeroDist(recovered.At(i)); dist.Cmp(bound) > 0 {
			return linalg.Vector[E]{}, &BoundError{Dist: dist, Bound: maxErr}
		}
	}
	return recovered, nil
}

// Add combines two commitments over the same lattice; message and noise
// both add.
func (c *LWE[E]) Add(rhs *LWE[E]) (*LWE[E], error) {
	if c.digest != rhs.digest {
		return nil, ErrMismatchedLattice
	}
	return &LWE[E]{Lattice: c.Lattice, Commitment: c.Commitment.Add(rhs.Commitment), digest: c.digest}, nil
}

// Sub combines two commitments over the same lattice; message and noise
// both subtract.
func (c *LWE[E]) Sub(rhs *LWE[E]) (*LWE[E], error) {
	if c.digest != rhs.digest {
		return nil, ErrMismatchedLattice
	}
	return &LWE[E]{Lattice: c.Lattice, Commitment: c.Commitment.Sub(rhs.Commitment), digest: c.digest}, nil
}

// ScalarMul scales message and noise by e.
func (c *LWE[E]) ScalarMul(e E) *LWE[E] {
	return &LWE[E]{Lattice: c.Lattice, Commitment: c.Commitment.ScalarMul(e), digest: c.digest}
}

// MulVec scales the commitment vector componentwise by v.
func (c *LWE[E]) MulVec(v linalg.Vector[E]) *LWE[E] {
	return &LWE[E]{Lattice: c.Lattice, Commitment: c.Commitment.Hadamard(v), digest: c.digest}
}
