package graphmodel

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGraph_AddNodeAndEdge(t *testing.T) {
	g := NewGraph()
	_, err := g.AddNode(0)
	require.NoError(t, err)
	_, err = g.AddNode(1)
	require.NoError(t, err)

	require.NoError(t, g.AddEdge(0, 1))
	assert.Equal(t, 2, g.VertexCount())
	assert.Equal(t, 1, g.EdgeCount())
	assert.ElementsMatch(t, []uint32{1}, g.Neighbors(0))
	assert.ElementsMatch(t, []uint32{0}, g.Neighbors(1))
}

func TestGraph_DuplicateEdgeIsNoop(t *testing.T) {
	g := NewGraph()
	g.AddNode(0)
	g.AddNode(1)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 0)) // reversed orientation, same canonical edge
	assert.Equal(t, 1, g.EdgeCount())
}

func TestGraph_AddEdgeUnknownNode(t *testing.T) {
	g := NewGraph()
	g.AddNode(0)
	err := g.AddEdge(0, 99)
	assert.ErrorIs(t, err, ErrUnknownNode)
}

func TestGraph_AddEdgeSelfLoop(t *testing.T) {
	g := NewGraph()
	g.AddNode(0)
	err := g.AddEdge(0, 0)
	assert.ErrorIs(t, err, ErrSelfLoop)
	assert.Equal(t, 0, g.EdgeCount())
}

func TestGraph_NodeByID(t *testing.T) {
	g := NewGraph()
	n, _ := g.AddNode(5)
	got, err := g.NodeByID(5)
	require.NoError(t, err)
	assert.Same(t, n, got)

	_, err = g.NodeByID(6)
	assert.True(t, errors.Is(err, ErrUnknownNode))
}

func TestEdge_Canonicalization(t *testing.T) {
	a := NewEdge(3, 1)
	b := NewEdge(1, 3)
	assert.Equal(t, a, b)
	assert.Equal(t, Edge{Source: 1, Target: 3}, a.Canonical())
}

func TestErdosRenyi_InvalidProbability(t *testing.T) {
	_, err := ErdosRenyi(10, 1.5, 42)
	assert.ErrorIs(t, err, ErrInvalidProbability)

	_, err = ErdosRenyi(10, -0.1, 42)
	assert.ErrorIs(t, err, ErrInvalidProbability)
}

func TestErdosRenyi_Deterministic(t *testing.T) {
	g1, err := ErdosRenyi(50, 0.15, 42)
	require.NoError(t, err)
	g2, err := ErdosRenyi(50, 0.15, 42)
	require.NoError(t, err)

	assert.Equal(t, g1.VertexCount(), g2.VertexCount())
	assert.ElementsMatch(t, g1.Edges(), g2.Edges())
}

func TestErdosRenyi_ZeroAndOneProbability(t *testing.T) {
	g0, err := ErdosRenyi(20, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, g0.EdgeCount())

	g1, err := ErdosRenyi(10, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 10*9/2, g1.EdgeCount())
}
