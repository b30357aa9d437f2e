package field

import (
	"encoding/binary"
	"fmt"
	"io"
	"math/big"
	"math/rand"

	"github.com/tuneinsight/lattigo/v4/utils"
)

// RNG is the randomness source injected into every sampling operation in the
// library. It wraps a math/rand stream so tests can pin seeds; the secure
// constructors feed the same API from a keyed blake2b PRNG instead.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG with the given seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewSource(seed))}
}

// NewSecureRNG creates an RNG backed by a freshly keyed PRNG.
func NewSecureRNG() (*RNG, error) {
	prng, err := utils.NewPRNG()
	if err != nil {
		return nil, fmt.Errorf("field: new prng: %w", err)
	}
	return &RNG{r: rand.New(&prngSource{prng: prng})}, nil
}

// NewSeededSecureRNG creates an RNG whose crypto-grade stream is derived
// deterministically from key.
func NewSeededSecureRNG(key []byte) (*RNG, error) {
	prng, err := utils.NewKeyedPRNG(key)
	if err != nil {
		return nil, fmt.Errorf("field: new keyed prng: %w", err)
	}
	return &RNG{r: rand.New(&prngSource{prng: prng})}, nil
}

// Intn returns a random int in [0, n).
func (g *RNG) Intn(n int) int { return g.r.Intn(n) }

// Uint64 returns a uniform 64-bit word.
func (g *RNG) Uint64() uint64 { return g.r.Uint64() }

// Float64 returns a uniform float in [0, 1).
func (g *RNG) Float64() float64 { return g.r.Float64() }

// RandBigInt returns a random big.Int uniformly in [0, mod).
func (g *RNG) RandBigInt(mod *big.Int) *big.Int {
	return new(big.Int).Rand(g.r, mod)
}

// prngSource adapts a lattigo PRNG to the math/rand Source64 interface.
type prngSource struct {
	prng utils.PRNG
	buf  [8]byte
}

func (s *prngSource) Uint64() uint64 {
	if _, err := io.ReadFull(s.prng, s.buf[:]); err != nil {
		panic(fmt.Sprintf("field: prng read: %v", err))
	}
	return binary.LittleEndian.Uint64(s.buf[:])
}

func (s *prngSource) Int63() int64 { return int64(s.Uint64() >> 1) }

// Seed is a no-op; the underlying PRNG is keyed at construction.
func (s *prngSource) Seed(int64) {}
