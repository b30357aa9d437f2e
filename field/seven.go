package field

import (
	"math/big"
	"strconv"
)

const sevenQ = 7

// Seven is an element of F_7. The field is small enough to check every
// algebraic property exhaustively, which makes it the workhorse of the test
// suite.
type Seven uint8

func (a Seven) Add(b Seven) Seven { return (a + b) % sevenQ }

func (a Seven) Sub(b Seven) Seven { return (a + sevenQ - b) % sevenQ }

func (a Seven) Mul(b Seven) Seven { return (a * b) % sevenQ }

func (a Seven) Equal(b Seven) bool { return a == b }

func (a Seven) IsZero() bool { return a == 0 }

func (a Seven) String() string { return strconv.Itoa(int(a)) }

func (Seven) Cardinality() *big.Int { return big.NewInt(sevenQ) }

func (Seven) BitWidth() int { return 3 }

func (Seven) FromBig(v *big.Int) Seven {
	return Seven(new(big.Int).Mod(v, big.NewInt(sevenQ)).Uint64())
}

func (a Seven) Big() *big.Int { return big.NewInt(int64(a)) }

func (Seven) SampleRand(rng *RNG) Seven { return Seven(rng.Intn(sevenQ)) }
