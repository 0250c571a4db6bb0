package mcts

import "fmt"

// Tree node, owned by the Tree. Policy moves are ordered by the prior,
// the highest first, and children are expanded lazily as a prefix of them.
type Node[T MoveLike] struct {
	NodeStats
	Move     T
	Parent   *Node[T]
	Children []*Node[T]
	moves    []T
	tree     *Tree[T]
}

func newNode[T MoveLike](tree *Tree[T], parent *Node[T], move T) *Node[T] {
	return &Node[T]{
		NodeStats: newNodeStats(),
		Move:      move,
		Parent:    parent,
		tree:      tree,
	}
}

// Shared search context of this node
func (node *Node[T]) Tree() *Tree[T] {
	return node.tree
}

// Number of legal moves declared for this node
func (node *Node[T]) NumPolicyMoves() int {
	return len(node.moves)
}

// Number of children created so far
func (node *Node[T]) NumExpanded() int {
	return len(node.Children)
}

// Legal moves of this node, in policy order
func (node *Node[T]) PolicyMoves() []T {
	return node.moves
}

// Declare the legal moves of this node, highest prior first.
// Children already created are kept, so the new moves must start with their moves.
func (node *Node[T]) SetPolicyMoves(moves []T) {
	if len(moves) < len(node.Children) {
		panic(fmt.Sprintf("Cannot declare %d moves, %d children are already expanded", len(moves), len(node.Children)))
	}
	for i, child := range node.Children {
		if child.Move != moves[i] {
			panic(fmt.Sprintf("Move %v at index %d does not match expanded child %v", moves[i], i, child.Move))
		}
	}
	node.moves = moves
}

// Get expanded child at index i
func (node *Node[T]) Child(i int) *Node[T] {
	return node.Children[i]
}

// Returns the child at policy index i, creating it (and every unexpanded child before it) if needed
func (node *Node[T]) CreateChild(i int) *Node[T] {
	if i < 0 || i >= len(node.moves) {
		panic(fmt.Sprintf("Child index %d out of range, node has %d policy moves", i, len(node.moves)))
	}

	for len(node.Children) <= i {
		node.Children = append(node.Children, newNode(node.tree, node, node.moves[len(node.Children)]))
	}
	return node.Children[i]
}

// Find expanded child with given move, nil if there is none
func (node *Node[T]) FindChild(move T) *Node[T] {
	for _, child := range node.Children {
		if child.Move == move {
			return child
		}
	}
	return nil
}

func (node *Node[T]) String() string {
	return fmt.Sprintf("{Move=%v, N=%d, Q=%.3f, M=%.1f, Expanded=%d/%d}",
		node.Move, node.N(), node.Value(), node.MovesLeft(), node.NumExpanded(), node.NumPolicyMoves())
}

// Helper function to count tree nodes
func countTreeNodes[T MoveLike](node *Node[T]) int {
	nodes := 1
	for _, child := range node.Children {
		nodes += countTreeNodes(child)
	}
	return nodes
}
