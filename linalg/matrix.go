package linalg

import (
	"encoding/binary"
	"fmt"

	"golang.org/x/crypto/sha3"

	"lattice-commit/field"
)

// Matrix is a dense row-major grid: height rows, each a Vector of length
// width. The dimension pair is immutable after construction.
type Matrix[E field.Element[E]] struct {
	width  int
	height int
	rows   []Vector[E]
}

// NewMatrix returns the zero matrix of the given width and height.
func NewMatrix[E field.Element[E]](width, height int) Matrix[E] {
	rows := make([]Vector[E], height)
	for i := range rows {
		rows[i] = New[E](width)
	}
	return Matrix[E]{width: width, height: height, rows: rows}
}

// Identity returns the n by n matrix with ones on the diagonal.
func Identity[E field.Element[E]](n int) Matrix[E] {
	m := NewMatrix[E](n, n)
	one := field.One[E]()
	for i := 0; i < n; i++ {
		m.rows[i].Set(i, one)
	}
	return m
}

// RandomMatrix returns a matrix with every entry drawn via SampleRand.
func RandomMatrix[E field.Element[E]](width, height int, rng *field.RNG) Matrix[E] {
	rows := make([]Vector[E], height)
	for i := range rows {
		rows[i] = Random[E](width, rng)
	}
	return Matrix[E]{width: width, height: height, rows: rows}
}

// Dimension returns the (height, width) of the matrix, also known as
// (rows, columns).
func (m Matrix[E]) Dimension() (int, int) { return m.height, m.width }

func (m Matrix[E]) Height() int { return m.height }

func (m Matrix[E]) Width() int { return m.width }

// Row returns row i, panicking when i is out of range.
func (m Matrix[E]) Row(i int) Vector[E] {
	if i < 0 || i >= m.height {
		panic(fmt.Sprintf("linalg: row %d outside of matrix of height %d", i, m.height))
	}
	return m.rows[i]
}

func (m Matrix[E]) assertSameShape(rhs Matrix[E], op string) {
	if m.width != rhs.width || m.height != rhs.height {
		panic(fmt.Sprintf("linalg: cannot %s matrices of dimension (%d,%d) and (%d,%d)",
			op, m.height, m.width, rhs.height, rhs.width))
	}
}

// Add returns the entrywise sum of two matrices of identical shape.
func (m Matrix[E]) Add(rhs Matrix[E]) Matrix[E] {
	m.assertSameShape(rhs, "add")
	rows := make([]Vector[E], m.height)
	for i := range rows {
		rows[i] = m.rows[i].Add(rhs.rows[i])
	}
	return Matrix[E]{width: m.width, height: m.height, rows: rows}
}

// Hadamard returns the entrywise product of two matrices of identical shape.
func (m Matrix[E]) Hadamard(rhs Matrix[E]) Matrix[E] {
	m.assertSameShape(rhs, "multiply")
	rows := make([]Vector[E], m.height)
	for i := range rows {
		rows[i] = m.rows[i].Hadamard(rhs.rows[i])
	}
	return Matrix[E]{width: m.width, height: m.height, rows: rows}
}

// ComposeHorizontal concatenates rhs to the right of m. Both matrices must
// have the same height.
func (m Matrix[E]) ComposeHorizontal(rhs Matrix[E]) Matrix[E] {
	if m.height != rhs.height {
		panic(fmt.Sprintf("linalg: cannot compose matrices of height %d and %d", m.height, rhs.height))
	}
	rows := make([]Vector[E], m.height)
	for i := range rows {
		entries := make([]E, 0, m.width+rhs.width)
		entries = append(entries, m.rows[i].entries...)
		entries = append(entries, rhs.rows[i].entries...)
		rows[i] = FromSlice(entries)
	}
	return Matrix[E]{width: m.width + rhs.width, height: m.height, rows: rows}
}

// MulVec computes the matrix-vector product. The vector length must equal
// the matrix width; the result has one entry per row. Field arithmetic is
// exact, so the dot products carry no accumulation error.
func (m Matrix[E]) MulVec(v Vector[E]) Vector[E] {
	if v.Len() != m.width {
		panic(fmt.Sprintf("linalg: cannot multiply matrix of width %d by vector of length %d", m.width, v.Len()))
	}
	out := make([]E, m.height)
	for i, row := range m.rows {
		var sum E
		for j, e := range row.entries {
			sum = sum.Add(e.Mul(v.entries[j]))
		}
		out[i] = sum
	}
	return Vector[E]{entries: out}
}

func (m Matrix[E]) Equal(rhs Matrix[E]) bool {
	if m.width != rhs.width || m.height != rhs.height {
		return false
	}
	for i := range m.rows {
		if !m.rows[i].Equal(rhs.rows[i]) {
			return false
		}
	}
	return true
}

func (m Matrix[E]) Clone() Matrix[E] {
	rows := make([]Vector[E], m.height)
	for i := range rows {
		rows[i] = m.rows[i].Clone()
	}
	return Matrix[E]{width: m.width, height: m.height, rows: rows}
}

// Digest hashes the dimensions and every entry representative with
// SHA3-256. Commitments record the digest of their lattice so that
// homomorphic combination across different lattices fails fast instead of
// silently producing garbage.
func (m Matrix[E]) Digest() [32]byte {
	h := sha3.New256()
	var dims [16]byte
	binary.LittleEndian.PutUint64(dims[:8], uint64(m.height))
	binary.LittleEndian.PutUint64(dims[8:], uint64(m.width))
	h.Write(dims[:])
	var lenBuf [2]byte
	for _, row := range m.rows {
		for _, e := range row.entries {
			b := e.Big().Bytes()
			binary.LittleEndian.PutUint16(lenBuf[:], uint16(len(b)))
			h.Write(lenBuf[:])
			h.Write(b)
		}
	}
	var out [32]byte
	h.Sum(out[:0])
	return out
}
