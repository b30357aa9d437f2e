package probability

import (
	"fmt"
	"math"
)

// ChiSquared95 returns the 95th-percentile critical value of the
// chi-squared distribution with df degrees of freedom, using the
// Wilson-Hilferty cube approximation. It exists to validate the sampler's
// empirical fit in tests and tooling; the sampling path never consults it.
func ChiSquared95(df int) float64 {
	if df < 1 {
		panic(fmt.Sprintf("probability: chi-squared needs at least 1 degree of freedom, got %d", df))
	}
	const z95 = 1.6448536269514722
	f := float64(df)
	t := 1 - 2/(9*f) + z95*math.Sqrt(2/(9*f))
	return f * t * t * t
}
