package linalg

import (
	"testing"

	"lattice-commit/field"
)

func TestIdentityMulVec(t *testing.T) {
	rng := field.NewRNG(1)
	v := Random[field.Goldilocks](8, rng)
	if got := Identity[field.Goldilocks](8).MulVec(v); !got.Equal(v) {
		t.Fatalf("I*v = %s, want %s", got, v)
	}
}

func TestMulVecAgainstManualDotProducts(t *testing.T) {
	// 2x3 matrix over F_7:
	//   1 2 3
	//   4 5 6
	m := NewMatrix[field.Seven](3, 2)
	for j := 0; j < 3; j++ {
		m.Row(0).Set(j, field.Seven(j+1))
		m.Row(1).Set(j, field.Seven(j+4))
	}
	v := FromSlice([]field.Seven{1, 1, 2})
	// Row 0: 1+2+6 = 9 = 2 mod 7. Row 1: 4+5+12 = 21 = 0 mod 7.
	want := FromSlice([]field.Seven{2, 0})
	if got := m.MulVec(v); !got.Equal(want) {
		t.Fatalf("MulVec = %s, want %s", got, want)
	}
}

func TestMulVecIsLinear(t *testing.T) {
	rng := field.NewRNG(4)
	m := RandomMatrix[field.Goldilocks](6, 9, rng)
	u := Random[field.Goldilocks](6, rng)
	v := Random[field.Goldilocks](6, rng)
	if got, want := m.MulVec(u.Add(v)), m.MulVec(u).Add(m.MulVec(v)); !got.Equal(want) {
		t.Fatalf("M(u+v) = %s, want %s", got, want)
	}
}

func TestComposeHorizontal(t *testing.T) {
	rng := field.NewRNG(5)
	left := RandomMatrix[field.Seven](2, 3, rng)
	right := RandomMatrix[field.Seven](4, 3, rng)
	m := left.ComposeHorizontal(right)
	if h, w := m.Dimension(); h != 3 || w != 6 {
		t.Fatalf("composed dimension = (%d,%d), want (3,6)", h, w)
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 2; j++ {
			if !m.Row(i).At(j).Equal(left.Row(i).At(j)) {
				t.Fatalf("left block mismatch at (%d,%d)", i, j)
			}
		}
		for j := 0; j < 4; j++ {
			if !m.Row(i).At(2 + j).Equal(right.Row(i).At(j)) {
				t.Fatalf("right block mismatch at (%d,%d)", i, j)
			}
		}
	}
}

func TestComposeHeightMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("composing matrices of different heights did not panic")
		}
	}()
	NewMatrix[field.Seven](2, 3).ComposeHorizontal(NewMatrix[field.Seven](2, 4))
}

func TestMulVecWidthMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("multiplying by a vector of the wrong length did not panic")
		}
	}()
	NewMatrix[field.Seven](3, 2).MulVec(New[field.Seven](4))
}

func TestMatrixAddHadamard(t *testing.T) {
	rng := field.NewRNG(6)
	a := RandomMatrix[field.Seven](4, 4, rng)
	z := NewMatrix[field.Seven](4, 4)
	if got := a.Add(z); !got.Equal(a) {
		t.Fatalf("A + 0 != A")
	}
	if got := a.Hadamard(z); !got.Equal(z) {
		t.Fatalf("A ∘ 0 != 0")
	}
}

func TestDigestDetectsDifferentLattices(t *testing.T) {
	rng := field.NewRNG(7)
	a := RandomMatrix[field.Goldilocks](5, 5, rng)
	b := a.Clone()
	if a.Digest() != b.Digest() {
		t.Fatalf("digest of identical matrices differs")
	}
	b.Row(0).Set(0, b.Row(0).At(0).Add(field.One[field.Goldilocks]()))
	if a.Digest() == b.Digest() {
		t.Fatalf("digest did not change after mutating an entry")
	}
	// Same entries in a different shape must hash differently.
	c := RandomMatrix[field.Seven](6, 2, rng)
	d := NewMatrix[field.Seven](2, 6)
	for i := 0; i < 2; i++ {
		for j := 0; j < 6; j++ {
			d.Row(3*i + j/2).Set(j%2, c.Row(i).At(j))
		}
	}
	if c.Digest() == d.Digest() {
		t.Fatalf("digest ignores matrix shape")
	}
}
