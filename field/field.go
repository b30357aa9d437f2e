package field

import "math/big"

// Element is the capability interface satisfied by every scalar field type.
// The type parameter is the concrete field itself, so arithmetic stays
// monomorphized and free of boxing.
//
// Cardinality, BitWidth, FromBig, Big and SampleRand behave like associated
// functions: they may be called on the zero value of E. FromBig reduces its
// argument modulo the cardinality, so every element round-trips through
// Big/FromBig.
type Element[E any] interface {
	Add(E) E
	Sub(E) E
	Mul(E) E
	Equal(E) bool
	// IsZero reports whether the element is the additive identity.
	IsZero() bool
	String() string

	// Cardinality returns the number of field elements. Moduli up to
	// 128-bit cardinalities are supported.
	Cardinality() *big.Int
	// BitWidth is ceil(log2(Cardinality)).
	BitWidth() int
	FromBig(*big.Int) E
	Big() *big.Int
	// SampleRand draws uniformly over [0, Cardinality).
	SampleRand(*RNG) E
}

// Zero returns the additive identity of E.
func Zero[E Element[E]]() E {
	var z E
	return z
}

// One returns the multiplicative identity of E.
func One[E Element[E]]() E {
	var z E
	return z.FromBig(big.NewInt(1))
}

// NegOne returns the additive inverse of one, derived by field subtraction.
func NegOne[E Element[E]]() E {
	return Zero[E]().Sub(One[E]())
}

// ZeroDist measures how far x sits from the zero element: the minimum of its
// representative and the representative of its additive inverse. This is a
// measurement over the representative integers, not a field operation; it is
// the metric used everywhere noise magnitude must be bounded.
func ZeroDist[E Element[E]](x E) *big.Int {
	v := x.Big()
	if v.Sign() == 0 {
		return v
	}
	inv := new(big.Int).Sub(x.Cardinality(), v)
	if inv.Cmp(v) < 0 {
		return inv
	}
	return v
}

// Displacement returns the signed distance of x from zero: positive when the
// forward representative is shorter, negative otherwise. The result must fit
// in an int64; callers use it on elements known to sit near zero, such as
// Gaussian noise samples.
func Displacement[E Element[E]](x E) int64 {
	v := x.Big()
	card := x.Cardinality()
	inv := new(big.Int).Sub(card, v)
	if v.Sign() != 0 && inv.Cmp(v) < 0 {
		return -inv.Int64()
	}
	return v.Int64()
}

// AtDisplacement embeds a signed displacement into the field: d itself when
// d >= 0, and Cardinality + d (the wraparound centered representative)
// otherwise.
func AtDisplacement[E Element[E]](d int64) E {
	var z E
	v := big.NewInt(d)
	if d < 0 {
		v.Add(z.Cardinality(), v)
	}
	return z.FromBig(v)
}
