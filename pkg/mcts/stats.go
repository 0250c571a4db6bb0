package mcts

import (
	"fmt"
	"math"
	"sync/atomic"
)

// visits, mean value and moves-left average of the node.
// All fields are accessed atomically, since the (external) search may update them from many threads,
// but the decision only reads them once the search for the root is paused.
type NodeStats struct {
	// This is visit counter, use N() to properly read this value
	n int32

	// float64 bits of the mean value, NaN when the node was never visited
	q uint64

	// float64 bits of the moves-left average, NaN when the moves-left model is disabled
	m uint64
}

func newNodeStats() NodeStats {
	stats := NodeStats{}
	atomic.StoreUint64(&stats.q, math.Float64bits(Undefined))
	atomic.StoreUint64(&stats.m, math.Float64bits(Undefined))
	return stats
}

// Get number of visits to this node
func (stats *NodeStats) N() int32 {
	return atomic.LoadInt32(&stats.n)
}

// Mean value of this node, from the perspective of the side choosing at its parent
func (stats *NodeStats) Value() float64 {
	return math.Float64frombits(atomic.LoadUint64(&stats.q))
}

// Running average of the remaining moves until the game ends
func (stats *NodeStats) MovesLeft() float64 {
	return math.Float64frombits(atomic.LoadUint64(&stats.m))
}

// Overwrite the statistics, used to load snapshots of an already searched tree
func (stats *NodeStats) SetStats(visits int32, value, movesLeft float64) {
	if visits < 0 {
		panic(fmt.Sprintf("Visit count (%d) cannot be negative", visits))
	}
	atomic.StoreUint64(&stats.q, math.Float64bits(value))
	atomic.StoreUint64(&stats.m, math.Float64bits(movesLeft))
	atomic.StoreInt32(&stats.n, visits)
}

// Add a single evaluation to the running averages. Pass Undefined as movesLeft
// when the moves-left model is disabled. Not safe for concurrent writers.
func (stats *NodeStats) Observe(value, movesLeft float64) {
	n := atomic.AddInt32(&stats.n, 1)
	w := 1.0 / float64(n)

	q := stats.Value()
	if n == 1 || IsUndefined(q) {
		q = value
	} else {
		q += (value - q) * w
	}
	atomic.StoreUint64(&stats.q, math.Float64bits(q))

	m := stats.MovesLeft()
	if n == 1 || IsUndefined(m) || IsUndefined(movesLeft) {
		m = movesLeft
	} else {
		m += (movesLeft - m) * w
	}
	atomic.StoreUint64(&stats.m, math.Float64bits(m))
}
