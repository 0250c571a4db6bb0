package bench

import (
	"fmt"

	"lukechampine.com/frand"

	"github.com/IlikeChooros/go-mcts-root/pkg/mcts"
)

const (
	maxSnapshotMoves  = 12
	maxSnapshotVisits = 60_000
)

// Generate a plausible searched root: visits decreasing along the policy order,
// values and moves-left estimates scattered around the root's ones
func RandomSnapshot(rng *frand.RNG) *mcts.Snapshot {
	nMoves := rng.Intn(maxSnapshotMoves + 1)
	snap := &mcts.Snapshot{
		Ply:   rng.Intn(80),
		Moves: make([]string, nMoves),
	}
	for i := range snap.Moves {
		snap.Moves[i] = fmt.Sprintf("m%d", i)
	}
	if nMoves == 0 {
		return snap
	}

	rootValue := rng.Float64()*2 - 1
	rootMovesLeft := 10 + rng.Float64()*90
	budget := 1 + rng.Intn(maxSnapshotVisits)
	expanded := 1 + rng.Intn(nMoves)

	snap.Children = make([]mcts.NodeSnapshot, expanded)
	total := 0
	for i := range snap.Children {
		visits := 0
		if budget > 0 {
			visits = rng.Intn(budget + 1)
			budget -= visits
		}
		total += visits

		child := mcts.NodeSnapshot{Move: snap.Moves[i], Visits: int32(visits)}
		if visits > 0 {
			child.Value = mcts.Float(clampValue(rootValue + (rng.Float64()-0.5)*0.4))
			child.MovesLeft = mcts.Float(max(0, rootMovesLeft+(rng.Float64()-0.5)*40))
		}
		snap.Children[i] = child
	}

	snap.Root = mcts.NodeSnapshot{
		Visits:    int32(total + 1),
		Value:     mcts.Float(rootValue),
		MovesLeft: mcts.Float(rootMovesLeft),
	}
	return snap
}

func clampValue(v float64) float64 {
	return min(max(v, -1), 1)
}
