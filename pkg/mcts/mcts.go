package mcts

import (
	"fmt"
	"math/rand"
	"sync/atomic"
)

// Shared search context: configuration, the root, the game ply,
// and the noise sampling budget of the current game.
// The tree itself is grown by an external search, decisions only read it.
type Tree[T MoveLike] struct {
	Root               *Node[T]
	config             *Config
	listener           *DecisionListener[T]
	ply                atomic.Int32
	noiseModifications atomic.Int32
	rand               UniformSource
}

// Create new tree, with the root's legal moves in policy order.
// Returns an error if the configuration is invalid.
func NewTree[T MoveLike](moves []T, config *Config) (*Tree[T], error) {
	if config == nil {
		config = DefaultConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	tree := &Tree[T]{
		config:   config,
		listener: &DecisionListener[T]{},
		rand:     rand.New(rand.NewSource(SeedGeneratorFn())),
	}
	tree.Root = tree.newRoot(moves)
	return tree, nil
}

func (tree *Tree[T]) newRoot(moves []T) *Node[T] {
	var move T
	root := newNode(tree, nil, move)
	root.SetPolicyMoves(moves)
	return root
}

func (tree *Tree[T]) Config() *Config {
	return tree.config
}

// Plies played since the last Reset
func (tree *Tree[T]) Ply() int {
	return int(tree.ply.Load())
}

func (tree *Tree[T]) SetPly(ply int) {
	tree.ply.Store(int32(ply))
}

// Number of decisions changed by the noise sampling in the current game
func (tree *Tree[T]) NoiseModifications() int32 {
	return tree.noiseModifications.Load()
}

// Set the source of the uniform samples used by the noise sampling override
func (tree *Tree[T]) SetRand(source UniformSource) {
	if source != nil {
		tree.rand = source
	}
}

func (tree *Tree[T]) uniform() float64 {
	return tree.rand.Float64()
}

func (tree *Tree[T]) DecisionListener() *DecisionListener[T] {
	return tree.listener
}

func (tree *Tree[T]) SetListener(listener DecisionListener[T]) {
	*tree.listener = listener
}

// Get the size of the tree (by counting)
func (tree *Tree[T]) Count() int {
	return countTreeNodes(tree.Root)
}

func (tree *Tree[T]) String() string {
	return fmt.Sprintf("Tree={Size=%d, Ply=%d, NoiseModifications=%d, Root=%v}",
		tree.Count(), tree.Ply(), tree.NoiseModifications(), tree.Root)
}

// Tries to make given 'move' a new root, if the child wasn't expanded, does nothing and returns false
func (tree *Tree[T]) MakeMove(move T) bool {
	newRoot := tree.Root.FindChild(move)
	if newRoot == nil {
		return false
	}

	oldRoot := tree.Root
	tree.Root = newRoot
	tree.ply.Add(1)

	// Detach the new root from its parent
	newRoot.Parent = nil

	// Clear the children of the old root, to make them available for GC
	oldRoot.Children = nil
	return true
}

// Start a new game from a root with given moves, clears the ply and the noise budget
func (tree *Tree[T]) Reset(moves []T) {
	tree.Root = tree.newRoot(moves)
	tree.ply.Store(0)
	tree.noiseModifications.Store(0)
}

// Decide the root move, updating the counters and notifying the listener
func (tree *Tree[T]) Decide() Decision[T] {
	decision := NewSelector(tree.Root, true).Select()
	tree.listener.invoke(tree, decision)
	return decision
}

// 'the best move' in the position, zero value if there are no legal moves
func (tree *Tree[T]) BestMove() T {
	return tree.Decide().Move()
}

// Value reported by the root decision, without touching the counters
func (tree *Tree[T]) RootScore() float64 {
	return tree.inspect(tree.Root).Value
}

// Decision without side effects on counters and the noise budget
func (tree *Tree[T]) inspect(node *Node[T]) Decision[T] {
	s := NewSelector(node, false)
	s.skipNoise = true
	return s.Select()
}

// Get the principal variation nodes (ie. the best sequence of moves)
// from given starting 'root' node, following the decisions down the expanded children
func (tree *Tree[T]) PvNodes(root *Node[T], includeRoot bool) []*Node[T] {
	if root == nil {
		return nil
	}

	pv := make([]*Node[T], 0, 8)
	if includeRoot {
		pv = append(pv, root)
	}

	node := root
	for node.NumExpanded() > 0 {
		node = tree.inspect(node).Node
		if node == nil {
			break
		}
		pv = append(pv, node)
	}

	return pv
}

// Get the principal variation, but only the moves
func (tree *Tree[T]) Pv(root *Node[T], includeRoot bool) []T {
	nodes := tree.PvNodes(root, includeRoot)
	pv := make([]T, len(nodes))
	for i, node := range nodes {
		pv[i] = node.Move
	}
	return pv
}
