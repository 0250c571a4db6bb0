package mcts

type visitFractionStep struct {
	gap      float64
	fraction float64
}

// Value gap thresholds, checked from the top, for the small and the large trees
var (
	smallTreeFractions = []visitFractionStep{
		{0.06, 0.40},
		{0.04, 0.55},
		{0.02, 0.75},
	}
	largeTreeFractions = []visitFractionStep{
		{0.05, 0.30},
		{0.02, 0.55},
		{0.01, 0.75},
	}
)

// Fraction used when the value gap is below every threshold
const DefaultVisitFraction = 0.90

// Minimum fraction of the most visited child's visits a child with a better value
// needs, to be chosen instead of it. 'gap' is the absolute value difference between
// the two, 'rootVisits' the visit count of the node under decision.
// Bigger gaps and bigger trees lower the bar.
func MinVisitFraction(gap float64, rootVisits int32) float64 {
	steps := smallTreeFractions
	if rootVisits >= LargeTreeVisits {
		steps = largeTreeFractions
	}

	for _, step := range steps {
		if gap >= step.gap {
			return step.fraction
		}
	}
	return DefaultVisitFraction
}
