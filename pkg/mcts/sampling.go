package mcts

import "math"

// Draws an index from 'weights' raised to 1/temperature, using the inverse CDF
// against a single uniform sample u in [0, 1).
// temperature <= 0 picks the first maximum, all-zero weights are treated as uniform.
func SampleIndex(weights []float64, temperature, u float64) int {
	if len(weights) == 0 {
		return -1
	}

	if temperature <= 0 {
		best := 0
		for i, w := range weights {
			if w > weights[best] {
				best = i
			}
		}
		return best
	}

	// Normalize by the maximum first, so w^(1/T) doesn't overflow for small T
	maxWeight := 0.0
	for _, w := range weights {
		maxWeight = max(maxWeight, w)
	}
	if maxWeight == 0 {
		return min(int(u*float64(len(weights))), len(weights)-1)
	}

	cdf := make([]float64, len(weights))
	total := 0.0
	for i, w := range weights {
		total += math.Pow(max(w, 0)/maxWeight, 1/temperature)
		cdf[i] = total
	}

	target := u * total
	for i, c := range cdf {
		if target < c {
			return i
		}
	}
	return len(weights) - 1
}
