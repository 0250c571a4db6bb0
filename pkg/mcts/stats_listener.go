package mcts

type DecisionStats[T MoveLike] struct {
	BestMove           T
	Empty              bool
	Value              float64
	Visits             int32
	Bonus              float64
	Ply                int
	NoiseModifications int32
	Counters           DecisionCounters
}

// Convert the decision to 'DecisionStats' struct
func toDecisionStats[T MoveLike](tree *Tree[T], decision Decision[T]) DecisionStats[T] {
	return DecisionStats[T]{
		BestMove:           decision.Move(),
		Empty:              decision.Empty(),
		Value:              decision.Value,
		Visits:             decision.Visits,
		Bonus:              decision.Bonus,
		Ply:                tree.Ply(),
		NoiseModifications: tree.NoiseModifications(),
		Counters:           Counters(),
	}
}

// Listener function callback, will recieve the root decision
type ListenerFunc[T MoveLike] func(DecisionStats[T])

type DecisionListener[T MoveLike] struct {
	// called after every root decision made with Tree.Decide
	onDecision ListenerFunc[T]
}

func NewDecisionListener[T MoveLike]() DecisionListener[T] {
	return DecisionListener[T]{}
}

// Attach new on decision callback, called synchronously by the deciding goroutine
func (listener *DecisionListener[T]) OnDecision(onDecision ListenerFunc[T]) *DecisionListener[T] {
	listener.onDecision = onDecision
	return listener
}

func (listener *DecisionListener[T]) invoke(tree *Tree[T], decision Decision[T]) {
	if listener.onDecision != nil {
		listener.onDecision(toDecisionStats(tree, decision))
	}
}
