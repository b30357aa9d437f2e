package field

import (
	"math/big"
	"testing"
)

// refOp computes the expected result of a field operation with big.Int
// arithmetic modulo the Goldilocks prime.
func refOp(a, b uint64, op func(x, y, q *big.Int) *big.Int) uint64 {
	q := new(big.Int).SetUint64(goldilocksQ)
	x := new(big.Int).SetUint64(a)
	y := new(big.Int).SetUint64(b)
	return op(x, y, q).Uint64()
}

func refAdd(x, y, q *big.Int) *big.Int { return new(big.Int).Mod(new(big.Int).Add(x, y), q) }
func refSub(x, y, q *big.Int) *big.Int { return new(big.Int).Mod(new(big.Int).Sub(x, y), q) }
func refMul(x, y, q *big.Int) *big.Int { return new(big.Int).Mod(new(big.Int).Mul(x, y), q) }

// TestGoldilocksEdgeCases pins the branchy reduction paths against a big.Int
// reference on the values that exercise every carry and borrow fixup.
func TestGoldilocksEdgeCases(t *testing.T) {
	edge := []uint64{
		0, 1, 2,
		0xFFFFFFFF,           // 2^32 - 1
		0x100000000,          // 2^32
		0x1FFFFFFFF,          // 2^33 - 1
		goldilocksQ - 1,      // -1
		goldilocksQ - 2,      // -2
		goldilocksQ >> 1,     // (q-1)/2
		goldilocksQ >> 1 | 1, // (q+1)/2
	}
	for _, a := range edge {
		for _, b := range edge {
			if got, want := uint64(Goldilocks(a).Add(Goldilocks(b))), refOp(a, b, refAdd); got != want {
				t.Fatalf("%d + %d = %d, want %d", a, b, got, want)
			}
			if got, want := uint64(Goldilocks(a).Sub(Goldilocks(b))), refOp(a, b, refSub); got != want {
				t.Fatalf("%d - %d = %d, want %d", a, b, got, want)
			}
			if got, want := uint64(Goldilocks(a).Mul(Goldilocks(b))), refOp(a, b, refMul); got != want {
				t.Fatalf("%d * %d = %d, want %d", a, b, got, want)
			}
		}
	}
}

// TestGoldilocksRandomAgainstReference draws random pairs and cross-checks
// all three operations against the big.Int reference.
func TestGoldilocksRandomAgainstReference(t *testing.T) {
	rng := NewRNG(42)
	var z Goldilocks
	for i := 0; i < 2000; i++ {
		a := z.SampleRand(rng)
		b := z.SampleRand(rng)
		if got, want := uint64(a.Add(b)), refOp(uint64(a), uint64(b), refAdd); got != want {
			t.Fatalf("%d + %d = %d, want %d", a, b, got, want)
		}
		if got, want := uint64(a.Sub(b)), refOp(uint64(a), uint64(b), refSub); got != want {
			t.Fatalf("%d - %d = %d, want %d", a, b, got, want)
		}
		if got, want := uint64(a.Mul(b)), refOp(uint64(a), uint64(b), refMul); got != want {
			t.Fatalf("%d * %d = %d, want %d", a, b, got, want)
		}
	}
}

func TestGoldilocksIdentities(t *testing.T) {
	rng := NewRNG(7)
	var z Goldilocks
	one := One[Goldilocks]()
	for i := 0; i < 200; i++ {
		a := z.SampleRand(rng)
		if !a.Add(Zero[Goldilocks]()).Equal(a) {
			t.Fatalf("a + 0 != a for a=%v", a)
		}
		if !a.Mul(one).Equal(a) {
			t.Fatalf("a * 1 != a for a=%v", a)
		}
		if !a.Sub(a).IsZero() {
			t.Fatalf("a - a != 0 for a=%v", a)
		}
		if !a.Add(Zero[Goldilocks]().Sub(a)).IsZero() {
			t.Fatalf("a + (-a) != 0 for a=%v", a)
		}
	}
}

func TestGoldilocksSampleRandCanonical(t *testing.T) {
	rng := NewRNG(1)
	var z Goldilocks
	for i := 0; i < 5000; i++ {
		if v := z.SampleRand(rng); uint64(v) >= goldilocksQ {
			t.Fatalf("sampled non-canonical value %d", v)
		}
	}
}

func TestGoldilocksFromBigReduces(t *testing.T) {
	var z Goldilocks
	big2to64 := new(big.Int).Lsh(big.NewInt(1), 64)
	// 2^64 mod q = 2^32 - 1.
	if got := z.FromBig(big2to64); uint64(got) != 0xFFFFFFFF {
		t.Fatalf("FromBig(2^64) = %d, want %d", got, uint64(0xFFFFFFFF))
	}
	neg := big.NewInt(-1)
	if got := z.FromBig(neg); uint64(got) != goldilocksQ-1 {
		t.Fatalf("FromBig(-1) = %d, want %d", got, goldilocksQ-1)
	}
	rng := NewRNG(3)
	for i := 0; i < 200; i++ {
		a := z.SampleRand(rng)
		if got := z.FromBig(a.Big()); !got.Equal(a) {
			t.Fatalf("Big/FromBig round trip failed for %v", a)
		}
	}
}
