package mcts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scenarioSnapshot = `
ply: 6
root: {visits: 1900, value: 0.1, moves_left: 50}
moves: [a, b, c]
children:
  - {move: a, visits: 1000, value: 0.10, moves_left: 40}
  - {move: b, visits: 900, value: 0.25, moves_left: 70}
`

func TestSnapshotTree(t *testing.T) {
	snap, err := ParseSnapshot([]byte(scenarioSnapshot))
	require.NoError(t, err)

	tree, err := snap.Tree(DefaultConfig().SetTieBreak(BestChildValueSufficientVisits))
	require.NoError(t, err)

	assert.Equal(t, 6, tree.Ply())
	assert.Equal(t, 3, tree.Root.NumPolicyMoves())
	assert.Equal(t, 2, tree.Root.NumExpanded())
	assert.Equal(t, 70.0, tree.Root.Child(1).MovesLeft())

	decision := tree.Decide()
	assert.Equal(t, "a", decision.Move())
	assert.Equal(t, 0.10, decision.Value)
	assert.Equal(t, int32(1000), decision.Visits)
}

func TestSnapshotUndefinedStats(t *testing.T) {
	snap, err := ParseSnapshot([]byte("moves: [x, y]\nchildren: [{visits: 0}]\n"))
	require.NoError(t, err)

	tree, err := snap.Tree(nil)
	require.NoError(t, err)
	assert.True(t, IsUndefined(tree.Root.Value()))
	assert.True(t, IsUndefined(tree.Root.Child(0).Value()))
	assert.True(t, IsUndefined(tree.Root.Child(0).MovesLeft()))
}

func TestSnapshotErrors(t *testing.T) {
	docs := []string{
		"moves: [x]\nchildren: [{visits: 1}, {visits: 2}]\n",
		"moves: [x, y]\nchildren: [{move: y, visits: 1}]\n",
		"moves: [x]\nchildren: [{visits: -1}]\n",
	}
	for _, doc := range docs {
		snap, err := ParseSnapshot([]byte(doc))
		require.NoError(t, err)
		_, err = snap.Tree(nil)
		assert.Error(t, err, doc)
	}

	_, err := ParseSnapshot([]byte("moves: {"))
	assert.Error(t, err)
}

func TestFloat(t *testing.T) {
	assert.Nil(t, Float(Undefined))
	require.NotNil(t, Float(0.5))
	assert.Equal(t, 0.5, *Float(0.5))
}
