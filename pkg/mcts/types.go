package mcts

import "math"

// Other types, which didn't fit to Node or Tree files

type MoveLike comparable
type BestChildPolicy int
type SeedGeneratorFnType func() int64

// Source of uniform random numbers in [0, 1), used by the noise sampling override.
// Both *rand.Rand and *frand.RNG satisfy it.
type UniformSource interface {
	Float64() float64
}

// Sentinel for a value or moves-left estimate that was never computed
var Undefined = math.NaN()

// Wheter x is the 'not yet estimated' sentinel
func IsUndefined(x float64) bool {
	return math.IsNaN(x)
}

func clamp(x, lo, hi float64) float64 {
	return min(max(x, lo), hi)
}
