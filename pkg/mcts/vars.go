package mcts

import "time"

// Root visit count from which the tree is considered 'large' by the minimum visit fraction policy
const LargeTreeVisits int32 = 50_000

// Weight of the value in the 'by count' ranking score: N - CountValueWeight * Q
const CountValueWeight = 0.1

// Root values within (-MLHRootValueMargin, MLHRootValueMargin) are treated as balanced,
// the moves-left heuristic does nothing there
const MLHRootValueMargin = 0.03

const (
	// Moves-left differences are clamped to [-MLHMaxDelta, MLHMaxDelta]
	MLHMaxDelta = 30.0
	// |root value| is clamped to [0, MLHMaxRootValue]
	MLHMaxRootValue = 0.5
)

const (
	// When choosing the best child, choose the one with most visits,
	// this is the go-to method for MCTS
	BestChildMostVisits BestChildPolicy = iota

	// Choose the child with the best value, but only if it gathered enough visits
	// compared to the most visited one, see MinVisitFraction
	BestChildValueSufficientVisits
)

var SeedGeneratorFn SeedGeneratorFnType = func() int64 {
	return time.Now().UnixNano()
}

// Set custom seed generator function for random number generators in the decision,
// by default uses current time in nanoseconds
func SetSeedGeneratorFn(f SeedGeneratorFnType) {
	if f != nil {
		SeedGeneratorFn = f
	}
}
