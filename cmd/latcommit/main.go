package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"lattice-commit/commitments"
	"lattice-commit/field"
	"lattice-commit/linalg"
	"lattice-commit/measure"
	"lattice-commit/probability"
	"lattice-commit/prof"
)

func main() {
	msgLen := flag.Int("msglen", 4, "committed message length in field elements")
	theta := flag.Float64("theta", 2.0, "Gaussian width for LWE noise")
	seed := flag.String("seed", "", "optional PRNG seed string; empty means fresh randomness")
	flag.Parse()

	var rng *field.RNG
	var err error
	if *seed != "" {
		rng, err = field.NewSeededSecureRNG([]byte(*seed))
	} else {
		rng, err = field.NewSecureRNG()
	}
	if err != nil {
		log.Fatalf("rng: %v", err)
	}

	card := field.Zero[field.Goldilocks]().Cardinality()

	fmt.Println("== SIS commitment ==")
	runSIS(rng)

	fmt.Println("== LWE commitment ==")
	runLWE(rng, *theta)

	fmt.Println("== BDLOP commitment ==")
	runBDLOP(rng, *msgLen)

	measure.Global.Add("element", int64(measure.BytesElement(card)))
	measure.Global.Dump()
	for _, e := range prof.SnapshotAndReset() {
		fmt.Printf("timing: %s = %s\n", e.Label, e.Dur)
	}
}

func runSIS(rng *field.RNG) {
	defer prof.Track(time.Now(), "SIS")

	a := field.Goldilocks(0).SampleRand(rng)
	b := field.Goldilocks(0).SampleRand(rng)

	const digitBits = 8
	commA := commitments.CommitSIS(linalg.FromSlice(field.AsLeBits(a, digitBits)), nil, rng)
	commB := commitments.CommitSIS(linalg.FromSlice(field.AsLeBits(b, digitBits)), &commA.Lattice, rng)

	sum, err := commA.Add(commB)
	if err != nil {
		log.Fatalf("sis add: %v", err)
	}
	if err := sum.Verify(sum.Secret); err != nil {
		log.Fatalf("sis verify: %v", err)
	}
	h, w := commA.Lattice.Dimension()
	card := field.Zero[field.Goldilocks]().Cardinality()
	measure.Global.Add("sis/lattice", int64(measure.BytesMatrix(w, h, card)))
	measure.Global.Add("sis/commitment", int64(measure.BytesVector(sum.Commitment.Len(), card)))
	fmt.Printf("committed %s and %s; homomorphic sum verified over a %dx%d lattice\n", a, b, h, w)
}

func runLWE(rng *field.RNG, theta float64) {
	defer prof.Track(time.Now(), "LWE")

	val := linalg.Random[field.Goldilocks](4, rng)
	cdt := probability.NewGaussianCDT[field.Goldilocks](theta)
	comm := commitments.CommitLWE(val, nil, commitments.GaussianNoise[field.Goldilocks](cdt), rng)

	maxErr := uint64(13*theta) + 1
	noise, err := comm.TryOpen(val, maxErr)
	if err != nil {
		log.Fatalf("lwe open: %v", err)
	}
	fmt.Printf("opened with Gaussian noise (theta=%v, bound=%d): %s\n", theta, maxErr, noise)
}

func runBDLOP(rng *field.RNG, msgLen int) {
	defer prof.Track(time.Now(), "BDLOP")

	a1, a2 := commitments.BDLOPLatticeFor[field.Goldilocks](msgLen, rng)
	val := linalg.Random[field.Goldilocks](msgLen, rng)
	opening, comm := commitments.CommitBDLOP(val, a1, a2, rng)

	got, err := comm.TryOpen(opening)
	if err != nil {
		log.Fatalf("bdlop open: %v", err)
	}
	if !got.Equal(val) {
		log.Fatalf("bdlop opened to %s, want %s", got, val)
	}
	h1, w1 := a1.Dimension()
	card := field.Zero[field.Goldilocks]().Cardinality()
	measure.Global.Add("bdlop/a1", int64(measure.BytesMatrix(w1, h1, card)))
	fmt.Printf("committed and reopened %d elements through a width-%d basis\n", msgLen, w1)
}
