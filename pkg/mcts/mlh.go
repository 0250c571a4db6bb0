package mcts

// Moves-left heuristic (MLH): when the root is winning prefer the children finishing
// the game sooner, when it's losing prefer the ones that prolong it.
//
// Returns the bonus added to the candidate's value, for a candidate with moves-left
// average 'movesLeft', compared to the 'reference' estimate (of the best child by value).
// rootValue is the value of the node under decision.
func MLHBoost(movesLeft, reference, rootValue, weight float64) float64 {
	delta := movesLeft - reference
	if IsUndefined(delta) || IsUndefined(rootValue) {
		return 0
	}

	raw := clamp(delta, -MLHMaxDelta, MLHMaxDelta) *
		clamp(abs(rootValue), 0, MLHMaxRootValue) * weight

	switch {
	case rootValue > MLHRootValueMargin:
		return -raw
	case rootValue < -MLHRootValueMargin:
		return raw
	}
	return 0
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
