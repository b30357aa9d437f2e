package linalg

import (
	"testing"

	"lattice-commit/field"
)

func TestVectorAddSubRoundTrip(t *testing.T) {
	rng := field.NewRNG(1)
	u := Random[field.Goldilocks](16, rng)
	v := Random[field.Goldilocks](16, rng)
	if got := u.Add(v).Sub(v); !got.Equal(u) {
		t.Fatalf("(u+v)-v = %s, want %s", got, u)
	}
	if !u.Sub(u).IsZero() {
		t.Fatalf("u-u is not zero: %s", u.Sub(u))
	}
}

func TestVectorScalarOps(t *testing.T) {
	rng := field.NewRNG(2)
	u := Random[field.Seven](10, rng)
	if got := u.ScalarMul(field.One[field.Seven]()); !got.Equal(u) {
		t.Fatalf("u*1 = %s, want %s", got, u)
	}
	if got := u.ScalarMul(field.Zero[field.Seven]()); !got.IsZero() {
		t.Fatalf("u*0 = %s, want zero", got)
	}
	two := field.Seven(2)
	if got, want := u.AddScalar(two), u.Add(New[field.Seven](10).AddScalar(two)); !got.Equal(want) {
		t.Fatalf("AddScalar = %s, want %s", got, want)
	}
}

func TestVectorSum(t *testing.T) {
	v := FromSlice([]field.Seven{1, 2, 3, 4})
	if got := v.Sum(); int(got) != 3 { // 10 mod 7
		t.Fatalf("Sum = %d, want 3", got)
	}
}

func TestVectorHadamard(t *testing.T) {
	u := FromSlice([]field.Seven{2, 3, 4})
	v := FromSlice([]field.Seven{5, 6, 0})
	want := FromSlice([]field.Seven{3, 4, 0})
	if got := u.Hadamard(v); !got.Equal(want) {
		t.Fatalf("Hadamard = %s, want %s", got, want)
	}
}

func TestVectorLengthMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("adding vectors of different length did not panic")
		}
	}()
	New[field.Seven](3).Add(New[field.Seven](4))
}

func TestVectorAtOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("out of range At did not panic")
		}
	}()
	New[field.Seven](3).At(3)
}

func TestVectorCloneIsIndependent(t *testing.T) {
	v := FromSlice([]field.Seven{1, 2, 3})
	c := v.Clone()
	c.Set(0, 6)
	if int(v.At(0)) != 1 {
		t.Fatalf("mutating the clone changed the original: %s", v)
	}
}
