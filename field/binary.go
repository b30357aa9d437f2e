package field

import (
	"math/big"
	"strconv"
)

// Binary is an element of F_2. It exists as the base case of digit
// decomposition contexts, not as a first-class scheme parameter.
type Binary uint8

func (a Binary) Add(b Binary) Binary { return (a + b) % 2 }

func (a Binary) Sub(b Binary) Binary { return (a + 2 - b) % 2 }

func (a Binary) Mul(b Binary) Binary { return a & b }

func (a Binary) Equal(b Binary) bool { return a == b }

func (a Binary) IsZero() bool { return a == 0 }

func (a Binary) String() string { return strconv.Itoa(int(a)) }

func (Binary) Cardinality() *big.Int { return big.NewInt(2) }

func (Binary) BitWidth() int { return 1 }

func (Binary) FromBig(v *big.Int) Binary { return Binary(v.Bit(0)) }

func (a Binary) Big() *big.Int { return big.NewInt(int64(a)) }

func (Binary) SampleRand(rng *RNG) Binary { return Binary(rng.Intn(2)) }
