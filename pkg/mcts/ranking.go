package mcts

import (
	"cmp"
	"math"
	"slices"
)

type rankedChild[T MoveLike] struct {
	node  *Node[T]
	score float64
}

// Order expanded children of the node by the score, highest first.
// Equal scores keep the expansion (policy) order.
func rankChildren[T MoveLike](node *Node[T], score func(*Node[T]) float64) []rankedChild[T] {
	ranked := make([]rankedChild[T], len(node.Children))
	for i, child := range node.Children {
		ranked[i] = rankedChild[T]{node: child, score: score(child)}
	}
	resort(ranked)
	return ranked
}

func resort[T MoveLike](ranked []rankedChild[T]) {
	slices.SortStableFunc(ranked, func(a, b rankedChild[T]) int {
		return cmp.Compare(b.score, a.score)
	})
}

// N - 0.1 * Q, equal visit counts are broken towards the lower value
func countScore[T MoveLike](node *Node[T]) float64 {
	q := node.Value()
	if IsUndefined(q) {
		q = 0
	}
	return float64(node.N()) - CountValueWeight*q
}

// Raw value, unvisited children sort last
func valueScore[T MoveLike](node *Node[T]) float64 {
	if q := node.Value(); !IsUndefined(q) {
		return q
	}
	return math.Inf(-1)
}
