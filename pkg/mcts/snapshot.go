package mcts

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Statistics of a single node, missing value or moves_left mean 'not yet estimated'
type NodeSnapshot struct {
	Move      string   `yaml:"move,omitempty"`
	Visits    int32    `yaml:"visits"`
	Value     *float64 `yaml:"value,omitempty"`
	MovesLeft *float64 `yaml:"moves_left,omitempty"`
}

// Root of an already searched tree, as written by an external search
type Snapshot struct {
	Ply  int          `yaml:"ply"`
	Root NodeSnapshot `yaml:"root"`
	// All legal moves, highest prior first
	Moves []string `yaml:"moves"`
	// Expanded children, in the same order as Moves
	Children []NodeSnapshot `yaml:"children"`
}

func Float(v float64) *float64 {
	if IsUndefined(v) {
		return nil
	}
	return &v
}

func (n NodeSnapshot) stats() (int32, float64, float64) {
	value, movesLeft := Undefined, Undefined
	if n.Value != nil {
		value = *n.Value
	}
	if n.MovesLeft != nil {
		movesLeft = *n.MovesLeft
	}
	return n.Visits, value, movesLeft
}

func ParseSnapshot(data []byte) (*Snapshot, error) {
	snap := &Snapshot{}
	if err := yaml.Unmarshal(data, snap); err != nil {
		return nil, fmt.Errorf("mcts: parse snapshot: %w", err)
	}
	return snap, nil
}

func LoadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("mcts: load snapshot: %w", err)
	}
	return ParseSnapshot(data)
}

// Build a tree holding the snapshot's root and its expanded children
func (snap *Snapshot) Tree(config *Config) (*Tree[string], error) {
	if len(snap.Children) > len(snap.Moves) {
		return nil, fmt.Errorf("mcts: snapshot has %d children but only %d moves", len(snap.Children), len(snap.Moves))
	}
	for i, child := range snap.Children {
		if child.Move != "" && child.Move != snap.Moves[i] {
			return nil, fmt.Errorf("mcts: snapshot child %d has move %q, expected %q", i, child.Move, snap.Moves[i])
		}
		if child.Visits < 0 {
			return nil, fmt.Errorf("mcts: snapshot child %q has negative visits", snap.Moves[i])
		}
	}
	if snap.Root.Visits < 0 {
		return nil, fmt.Errorf("mcts: snapshot root has negative visits")
	}

	tree, err := NewTree(snap.Moves, config)
	if err != nil {
		return nil, err
	}

	tree.SetPly(snap.Ply)
	tree.Root.SetStats(snap.Root.stats())
	for i, child := range snap.Children {
		tree.Root.CreateChild(i).SetStats(child.stats())
	}
	return tree, nil
}
