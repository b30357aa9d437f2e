package field

import (
	"math/big"
	"math/bits"
	"strconv"
)

// goldilocksQ is the Goldilocks prime 2^64 - 2^32 + 1.
const goldilocksQ uint64 = 0xFFFFFFFF00000001

// Goldilocks is an element of the prime field of order 2^64 - 2^32 + 1.
// Values are kept canonical, strictly below the modulus, so the zero value
// is the additive identity.
type Goldilocks uint64

func (a Goldilocks) Add(b Goldilocks) Goldilocks {
	s, carry := bits.Add64(uint64(a), uint64(b), 0)
	if carry == 1 {
		// 2^64 ≡ 2^32 - 1 (mod q)
		s += 0xFFFFFFFF
	}
	if s >= goldilocksQ {
		s -= goldilocksQ
	}
	return Goldilocks(s)
}

func (a Goldilocks) Sub(b Goldilocks) Goldilocks {
	d, borrow := bits.Sub64(uint64(a), uint64(b), 0)
	if borrow == 1 {
		d -= 0xFFFFFFFF
	}
	return Goldilocks(d)
}

func (a Goldilocks) Mul(b Goldilocks) Goldilocks {
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	return Goldilocks(goldilocksReduce(hi, lo))
}

// goldilocksReduce folds a 128-bit product into canonical form using
// 2^64 ≡ 2^32 - 1 and 2^96 ≡ -1 (mod q).
func goldilocksReduce(hi, lo uint64) uint64 {
	hh := hi >> 32
	hl := hi & 0xFFFFFFFF
	t, borrow := bits.Sub64(lo, hh, 0)
	if borrow == 1 {
		t -= 0xFFFFFFFF
	}
	t2 := hl * 0xFFFFFFFF
	s, carry := bits.Add64(t, t2, 0)
	if carry == 1 {
		s += 0xFFFFFFFF
	}
	if s >= goldilocksQ {
		s -= goldilocksQ
	}
	return s
}

func (a Goldilocks) Equal(b Goldilocks) bool { return a == b }

func (a Goldilocks) IsZero() bool { return a == 0 }

func (a Goldilocks) String() string { return strconv.FormatUint(uint64(a), 10) }

func (Goldilocks) Cardinality() *big.Int { return new(big.Int).SetUint64(goldilocksQ) }

func (Goldilocks) BitWidth() int { return 64 }

func (Goldilocks) FromBig(v *big.Int) Goldilocks {
	var z Goldilocks
	return Goldilocks(new(big.Int).Mod(v, z.Cardinality()).Uint64())
}

func (a Goldilocks) Big() *big.Int { return new(big.Int).SetUint64(uint64(a)) }

// SampleRand draws uniformly over [0, q) by rejection; the gap to 2^64 is
// only 2^32 - 1 wide, so retries are vanishingly rare.
func (Goldilocks) SampleRand(rng *RNG) Goldilocks {
	for {
		if v := rng.Uint64(); v < goldilocksQ {
			return Goldilocks(v)
		}
	}
}
