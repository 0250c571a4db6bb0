package mcts

import (
	"github.com/rs/zerolog/log"
)

// Root move decision
type Decision[T MoveLike] struct {
	// Chosen child, nil if the node has no legal moves
	Node *Node[T]
	// Reported value and visit count, not always the ones of the chosen child
	Value  float64
	Visits int32
	// Applied moves-left heuristic bonus
	Bonus float64
}

// Whether there was nothing to choose from
func (d Decision[T]) Empty() bool {
	return d.Node == nil
}

// Move of the chosen child, zero value for an empty decision
func (d Decision[T]) Move() T {
	var move T
	if d.Node != nil {
		move = d.Node.Move
	}
	return move
}

// Decides which child of the node to commit to. Create one per decision and discard it afterwards.
// The caller must make sure the search isn't modifying the node's children during the call.
type Selector[T MoveLike] struct {
	node        *Node[T]
	tree        *Tree[T]
	updateStats bool
	skipNoise   bool
	mlhWeight   float64
}

// 'updateStats' controls wheter the moves-left heuristic counters are updated by this decision
func NewSelector[T MoveLike](node *Node[T], updateStats bool) *Selector[T] {
	return &Selector[T]{
		node:        node,
		tree:        node.tree,
		updateStats: updateStats,
		mlhWeight:   node.tree.config.MLHWeight,
	}
}

func (s *Selector[T]) Select() Decision[T] {
	node := s.node

	switch {
	case node.NumPolicyMoves() == 0:
		return Decision[T]{Value: Undefined}
	case node.NumPolicyMoves() == 1:
		child := node.CreateChild(0)
		return Decision[T]{Node: child, Value: child.Value(), Visits: child.N()}
	case node.NumExpanded() == 0:
		// No statistics yet, go with the highest prior
		return Decision[T]{Node: node.CreateChild(0), Value: Undefined}
	case node.NumExpanded() == 1:
		child := node.Child(0)
		return Decision[T]{Node: child, Value: child.Value(), Visits: child.N()}
	}

	return s.compute(true)
}

func (s *Selector[T]) mlhActive(allowed bool) bool {
	return allowed && s.mlhWeight > 0 && !IsUndefined(s.tree.Root.MovesLeft())
}

func (s *Selector[T]) boost(active bool, candidate *Node[T], reference float64) float64 {
	if !active {
		return 0
	}
	return MLHBoost(candidate.MovesLeft(), reference, s.node.Value(), s.mlhWeight)
}

func (s *Selector[T]) compute(mlhAllowed bool) Decision[T] {
	cfg := s.tree.config
	mlh := s.mlhActive(mlhAllowed)
	if mlh && s.updateStats {
		counters.mlhConsidered.Add(1)
	}

	byCount := rankChildren(s.node, countScore[T])
	byValue := rankChildren(s.node, valueScore[T])

	reference := byValue[0].node.MovesLeft()
	priorBest := byValue[0].node

	if mlh {
		for i := range byValue {
			byValue[i].score -= s.boost(true, byValue[i].node, reference)
		}
		resort(byValue)
		if byValue[0].node != priorBest {
			log.Debug().
				Str("before", fmtMove(priorBest)).
				Str("after", fmtMove(byValue[0].node)).
				Msg("moves-left heuristic re-ranked the best value child")
		}
	}

	topCount := byCount[0].node
	topValue := byValue[0].node

	if len(byValue) == 1 || cfg.IsForcedLoss(topValue.Value()) {
		return Decision[T]{Node: topValue, Value: topValue.Value(), Visits: topCount.N()}
	}

	if s.noiseApplicable() {
		chosen := s.noiseOverride(byCount)
		return Decision[T]{
			Node:   chosen,
			Value:  topCount.Value(),
			Visits: topCount.N(),
			Bonus:  s.boost(mlh, chosen, reference),
		}
	}

	switch cfg.TieBreak {
	case BestChildMostVisits:
		return Decision[T]{Node: topCount, Value: topCount.Value(), Visits: topCount.N()}

	case BestChildValueSufficientVisits:
		qBest, nBest := topCount.Value(), topCount.N()
		rootVisits := s.node.N()

		for _, ranked := range byValue {
			candidate := ranked.node
			q := candidate.Value()
			if valueScore(candidate) > valueScore(topCount) {
				// Never trade a better value than the most visited one's for visits
				break
			}

			gap := 0.0
			if !IsUndefined(q) && !IsUndefined(qBest) {
				gap = abs(q - qBest)
			}

			if float64(candidate.N()) >= float64(nBest)*MinVisitFraction(gap, rootVisits) {
				decision := Decision[T]{
					Node:   candidate,
					Value:  qBest,
					Visits: nBest,
					Bonus:  s.boost(mlh, candidate, reference),
				}
				if mlh && s.updateStats {
					s.recordMLHChange(decision)
				}
				return decision
			}
		}

		return Decision[T]{Node: topCount, Value: qBest, Visits: nBest}
	}

	panic(&ConfigError{Field: "tie_break", Err: ErrUnknownTieBreak})
}

// Compares the decision against the one made without the moves-left heuristic
func (s *Selector[T]) recordMLHChange(decision Decision[T]) {
	plain := Selector[T]{node: s.node, tree: s.tree, skipNoise: s.skipNoise, mlhWeight: s.mlhWeight}
	without := plain.compute(false)
	if without.Node != decision.Node {
		counters.mlhChanged.Add(1)
		log.Debug().
			Str("with", fmtMove(decision.Node)).
			Str("without", fmtMove(without.Node)).
			Float64("bonus", decision.Bonus).
			Msg("moves-left heuristic changed the decision")
	}
}
