package field

import (
	"fmt"
	"math/big"
)

// AsLeBits decomposes x into ceil(BitWidth/bits) little-endian digits, each
// in [0, 2^bits). Digits beyond the highest set bit stay at the additive
// identity. Panics if bits < 1.
func AsLeBits[E Element[E]](x E, bits int) []E {
	if bits < 1 {
		panic(fmt.Sprintf("field: digit width must be at least 1, got %d", bits))
	}
	var z E
	partsLen := (z.BitWidth() + bits - 1) / bits
	out := make([]E, partsLen)
	v := x.Big()
	mask := new(big.Int).Lsh(big.NewInt(1), uint(bits))
	mask.Sub(mask, big.NewInt(1))
	for i := 0; i < partsLen; i++ {
		if v.Sign() == 0 {
			break
		}
		digit := new(big.Int).And(v, mask)
		out[i] = z.FromBig(digit)
		v = new(big.Int).Rsh(v, uint(bits))
	}
	return out
}

// FromLeBits recomposes little-endian digits produced by AsLeBits. Digit i
// carries the positional place value (2^bits)^i, so
// FromLeBits(AsLeBits(x, b), b) == x for every representable x and b >= 1.
func FromLeBits[E Element[E]](digits []E, bits int) E {
	if bits < 1 {
		panic(fmt.Sprintf("field: digit width must be at least 1, got %d", bits))
	}
	var z E
	acc := new(big.Int)
	weight := big.NewInt(1)
	for _, d := range digits {
		term := new(big.Int).Mul(d.Big(), weight)
		acc.Add(acc, term)
		weight = new(big.Int).Lsh(weight, uint(bits))
	}
	return z.FromBig(acc)
}
