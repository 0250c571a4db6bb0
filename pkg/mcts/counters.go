package mcts

import "sync/atomic"

// Process-wide decision counters, they only grow and are never reset
type decisionCounters struct {
	mlhConsidered  atomic.Uint64
	mlhChanged     atomic.Uint64
	noiseOverrides atomic.Uint64
}

var counters decisionCounters

// Read-only snapshot of the process-wide decision counters
type DecisionCounters struct {
	// Decisions in which the moves-left heuristic was active
	MLHConsidered uint64
	// Decisions whose outcome differs from the one without the moves-left heuristic
	MLHChanged uint64
	// Decisions changed by the noise sampling override
	NoiseOverrides uint64
}

func Counters() DecisionCounters {
	return DecisionCounters{
		MLHConsidered:  counters.mlhConsidered.Load(),
		MLHChanged:     counters.mlhChanged.Load(),
		NoiseOverrides: counters.noiseOverrides.Load(),
	}
}

// Fraction of MLH-considered decisions in which the heuristic changed the chosen move
func (c DecisionCounters) MLHChangeRatio() float64 {
	if c.MLHConsidered == 0 {
		return 0
	}
	return float64(c.MLHChanged) / float64(c.MLHConsidered)
}

func MLHChangeRatio() float64 {
	return Counters().MLHChangeRatio()
}
