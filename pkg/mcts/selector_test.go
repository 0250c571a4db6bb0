package mcts

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMLHBoostSignLaw(t *testing.T) {
	const weight = 0.02
	faster, slower := 20.0, 35.0
	reference := 25.0

	// Winning: prolonging the game is penalized
	assert.LessOrEqual(t, MLHBoost(slower, reference, 0.4, weight), 0.0)
	assert.GreaterOrEqual(t, MLHBoost(faster, reference, 0.4, weight), 0.0)

	// Losing: the reverse
	assert.GreaterOrEqual(t, MLHBoost(slower, reference, -0.4, weight), 0.0)
	assert.LessOrEqual(t, MLHBoost(faster, reference, -0.4, weight), 0.0)

	// Balanced: nothing
	for _, rootValue := range []float64{0.03, -0.03, 0, 0.01} {
		assert.Zero(t, MLHBoost(slower, reference, rootValue, weight), "root value %v", rootValue)
		assert.Zero(t, MLHBoost(faster, reference, rootValue, weight), "root value %v", rootValue)
	}
}

func TestMLHBoostClamps(t *testing.T) {
	tests := []struct {
		name      string
		movesLeft float64
		reference float64
		rootValue float64
		weight    float64
		want      float64
	}{
		{"plain", 30, 20, 0.2, 0.1, -10 * 0.2 * 0.1},
		{"delta clamped", 120, 20, 0.2, 0.1, -30 * 0.2 * 0.1},
		{"negative delta clamped", 0, 80, 0.2, 0.1, 30 * 0.2 * 0.1},
		{"root value clamped", 30, 20, 0.9, 0.1, -10 * 0.5 * 0.1},
		{"losing root value clamped", 30, 20, -0.9, 0.1, 10 * 0.5 * 0.1},
		{"zero weight", 30, 20, 0.9, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, MLHBoost(tt.movesLeft, tt.reference, tt.rootValue, tt.weight), 1e-12)
		})
	}
}

func TestMLHBoostUndefined(t *testing.T) {
	assert.Zero(t, MLHBoost(Undefined, 20, 0.5, 1))
	assert.Zero(t, MLHBoost(20, Undefined, 0.5, 1))
	assert.Zero(t, MLHBoost(40, 20, Undefined, 1))
}

func TestMinVisitFraction(t *testing.T) {
	tests := []struct {
		gap        float64
		rootVisits int32
		want       float64
	}{
		{0.15, 1000, 0.40},
		{0.06, 1000, 0.40},
		{0.05, 1000, 0.55},
		{0.04, 1000, 0.55},
		{0.03, 1000, 0.75},
		{0.02, 1000, 0.75},
		{0.019, 1000, 0.90},
		{0, 1000, 0.90},
		{0.05, LargeTreeVisits - 1, 0.55},
		{0.05, LargeTreeVisits, 0.30},
		{0.03, LargeTreeVisits, 0.55},
		{0.02, 100_000, 0.55},
		{0.015, 100_000, 0.75},
		{0.01, 100_000, 0.75},
		{0.005, 100_000, 0.90},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, MinVisitFraction(tt.gap, tt.rootVisits), "gap=%v visits=%d", tt.gap, tt.rootVisits)
	}
}

func TestSampleIndex(t *testing.T) {
	weights := []float64{3, 1}

	assert.Equal(t, 0, SampleIndex(weights, 1, 0))
	assert.Equal(t, 0, SampleIndex(weights, 1, 0.74))
	assert.Equal(t, 1, SampleIndex(weights, 1, 0.76))
	assert.Equal(t, 1, SampleIndex(weights, 1, 0.9999))

	// T < 1 sharpens: 9:1
	assert.Equal(t, 0, SampleIndex(weights, 0.5, 0.85))
	assert.Equal(t, 1, SampleIndex(weights, 0.5, 0.95))

	// T > 1 flattens towards uniform
	assert.Equal(t, 1, SampleIndex(weights, 1e9, 0.51))

	// T <= 0 is argmax
	assert.Equal(t, 2, SampleIndex([]float64{1, 5, 7, 7}, 0, 0.99))

	// Tiny temperatures don't overflow
	assert.Equal(t, 1, SampleIndex([]float64{900, 1000}, 1e-3, 0.5))

	assert.Equal(t, 0, SampleIndex([]float64{8}, 2, 0.99))
	assert.Equal(t, 2, SampleIndex([]float64{0, 0, 0}, 1, 0.7))
	assert.Equal(t, -1, SampleIndex(nil, 1, 0.5))
}

func TestSampleIndexDistribution(t *testing.T) {
	weights := []float64{600, 300, 100}
	hits := make([]int, len(weights))
	const steps = 10_000
	for i := range steps {
		hits[SampleIndex(weights, 1, (float64(i)+0.5)/steps)]++
	}

	for i, w := range weights {
		assert.InDelta(t, w/1000, float64(hits[i])/steps, 1e-3)
	}
}

func noiseTree(t *testing.T, noise *NoiseSampling) *Tree[Move] {
	cfg := DefaultConfig().SetNoise(noise)
	return newTestTree(t, cfg, stat{1700, 0, Undefined},
		stat{1000, 0.1, Undefined},
		stat{600, 0.2, Undefined},
		stat{100, 0.3, Undefined},
	)
}

func TestNoiseOverride(t *testing.T) {
	tree := noiseTree(t, &NoiseSampling{MoveWindow: 10, MaxModifications: 1, VisitFraction: 0.5, Temperature: 1})
	// Band is [500, 1000], weights 1000:600, so u=0.9 draws the second one
	tree.SetRand(fixedSource(0.9))

	before := Counters()
	decision := tree.Decide()
	assert.Equal(t, Move(1), decision.Move())
	assert.Equal(t, 0.1, decision.Value)
	assert.Equal(t, int32(1000), decision.Visits)
	assert.Zero(t, decision.Bonus)
	assert.Equal(t, int32(1), tree.NoiseModifications())
	assert.Equal(t, before.NoiseOverrides+1, Counters().NoiseOverrides)

	// Budget exhausted
	assert.Equal(t, Move(0), tree.Decide().Move())
	assert.Equal(t, int32(1), tree.NoiseModifications())
}

func TestNoiseOverrideKeepsTop(t *testing.T) {
	tree := noiseTree(t, &NoiseSampling{MoveWindow: 10, MaxModifications: 5, VisitFraction: 0.5, Temperature: 1})
	tree.SetRand(fixedSource(0.1))

	assert.Equal(t, Move(0), tree.Decide().Move())
	assert.Equal(t, int32(0), tree.NoiseModifications())
}

func TestNoiseOverrideSingleCandidate(t *testing.T) {
	tree := noiseTree(t, &NoiseSampling{MoveWindow: 10, MaxModifications: 5, VisitFraction: 0.1, Temperature: 1})

	for _, u := range []float64{0, 0.5, 0.999} {
		tree.SetRand(fixedSource(u))
		assert.Equal(t, Move(0), tree.Decide().Move())
	}
	assert.Equal(t, int32(0), tree.NoiseModifications())
}

func TestNoiseOverrideMoveWindow(t *testing.T) {
	tree := noiseTree(t, &NoiseSampling{MoveWindow: 10, MaxModifications: 5, VisitFraction: 0.5, Temperature: 1})
	tree.SetRand(fixedSource(0.9))

	// Move number 10 is outside of the window
	tree.SetPly(20)
	assert.Equal(t, Move(0), tree.Decide().Move())

	// Move number 9 is inside
	tree.SetPly(19)
	assert.Equal(t, Move(1), tree.Decide().Move())
}

func TestNoiseOverrideSkippedWhenInspecting(t *testing.T) {
	tree := noiseTree(t, &NoiseSampling{MoveWindow: 10, MaxModifications: 5, VisitFraction: 0.5, Temperature: 1})
	tree.SetRand(fixedSource(0.9))

	// Inspecting decisions never sample
	assert.Equal(t, []Move{0}, tree.Pv(tree.Root, false))
	assert.Equal(t, 0.1, tree.RootScore())
	assert.Equal(t, int32(0), tree.NoiseModifications())
}

func TestNoiseOverrideBelowRoot(t *testing.T) {
	tree := noiseTree(t, &NoiseSampling{MoveWindow: 10, MaxModifications: 5, VisitFraction: 0.5, Temperature: 1})
	tree.SetRand(fixedSource(0.9))

	node := tree.Root.Child(0)
	node.SetPolicyMoves([]Move{10, 11})
	node.CreateChild(0).SetStats(600, 0.1, Undefined)
	node.CreateChild(1).SetStats(400, 0.2, Undefined)

	decision := NewSelector(node, true).Select()
	assert.Equal(t, Move(11), decision.Move())
	assert.Equal(t, int32(600), decision.Visits)
	assert.Equal(t, int32(1), tree.NoiseModifications())
}

func TestNoiseOverrideReportsMLHBonus(t *testing.T) {
	cfg := DefaultConfig().
		SetMLHWeight(0.01).
		SetNoise(&NoiseSampling{MoveWindow: 10, MaxModifications: 5, VisitFraction: 0.5, Temperature: 1})
	tree := newTestTree(t, cfg, stat{1700, 0.5, 40},
		stat{1000, 0.30, 20},
		stat{600, 0.25, 60},
	)
	tree.SetRand(fixedSource(0.9))

	decision := tree.Decide()
	assert.Equal(t, Move(1), decision.Move())
	assert.Equal(t, 0.30, decision.Value)
	assert.Equal(t, int32(1000), decision.Visits)
	assert.Equal(t, MLHBoost(60, 20, 0.5, 0.01), decision.Bonus)
	assert.InDelta(t, -0.15, decision.Bonus, 1e-9)
	assert.Equal(t, int32(1), tree.NoiseModifications())
}

func TestNoiseOverrideSeededDraw(t *testing.T) {
	noise := &NoiseSampling{MoveWindow: 10, MaxModifications: math.MaxInt32, VisitFraction: 0.5, Temperature: 1}

	decide := func() []Move {
		tree := noiseTree(t, noise)
		moves := make([]Move, 20)
		for i := range moves {
			moves[i] = tree.Decide().Move()
		}
		return moves
	}

	// Seed generator is pinned in TestMain
	first := decide()
	require.Equal(t, first, decide())
	for _, move := range first {
		assert.Contains(t, []Move{0, 1}, move)
	}
}
