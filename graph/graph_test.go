// Package graph_test exercises the oracle invariants: symmetric storage,
// loop rejection, deterministic neighbor order, and the list-restricted
// degree semantics the GRASP ranking depends on.
package graph_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vinisilvag/gcp-heuristics/graph"
)

func TestNewRejectsNegativeOrder(t *testing.T) {
	_, err := graph.New(-1)
	require.ErrorIs(t, err, graph.ErrOrder)
}

func TestNewZeroVerticesIsValid(t *testing.T) {
	g, err := graph.New(0)
	require.NoError(t, err)
	require.Equal(t, 0, g.NumVertices())
	require.Equal(t, 0, g.NumEdges())
}

func TestAddEdgeStoresSymmetrically(t *testing.T) {
	g, err := graph.New(4)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(2, 0))

	require.True(t, g.Adjacent(0, 2))
	require.True(t, g.Adjacent(2, 0))
	require.False(t, g.Adjacent(0, 1))
	require.Equal(t, 1, g.NumEdges())
}

func TestAddEdgeValidation(t *testing.T) {
	g, err := graph.New(3)
	require.NoError(t, err)

	require.ErrorIs(t, g.AddEdge(1, 1), graph.ErrSelfLoop)
	require.ErrorIs(t, g.AddEdge(0, 3), graph.ErrVertexRange)
	require.ErrorIs(t, g.AddEdge(-1, 0), graph.ErrVertexRange)
}

func TestAddEdgeDuplicateIsNoOp(t *testing.T) {
	g, err := graph.New(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 0))

	require.Equal(t, 1, g.NumEdges())
	require.Equal(t, []int{1}, g.Neighbors(0))
}

func TestNeighborsSortedAndCopied(t *testing.T) {
	g, err := graph.New(5)
	require.NoError(t, err)
	// Insert out of order; Neighbors must come back ascending.
	require.NoError(t, g.AddEdge(2, 4))
	require.NoError(t, g.AddEdge(2, 0))
	require.NoError(t, g.AddEdge(2, 3))

	nbs := g.Neighbors(2)
	require.Equal(t, []int{0, 3, 4}, nbs)

	// Mutating the returned slice must not corrupt the oracle.
	nbs[0] = 99
	require.Equal(t, []int{0, 3, 4}, g.Neighbors(2))
}

func TestDegreeInListCountsDuplicates(t *testing.T) {
	g, err := graph.New(4)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(0, 2))

	require.Equal(t, 2, g.DegreeInList(0, []int{1, 2, 3}))
	// Duplicate entries weigh twice: multiset semantics.
	require.Equal(t, 3, g.DegreeInList(0, []int{1, 1, 2}))
	require.Equal(t, 0, g.DegreeInList(3, []int{0, 1, 2}))
}

func TestAddEdgesFromMatrix(t *testing.T) {
	g, err := graph.New(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdgesFromMatrix([][]bool{
		{false, true, false},
		{true, false, true},
		{false, true, false},
	}))

	require.Equal(t, 2, g.NumEdges())
	require.True(t, g.Adjacent(0, 1))
	require.True(t, g.Adjacent(1, 2))
	require.False(t, g.Adjacent(0, 2))
}

func TestAddEdgesFromMatrixValidation(t *testing.T) {
	g, err := graph.New(2)
	require.NoError(t, err)

	require.ErrorIs(t, g.AddEdgesFromMatrix([][]bool{{false}}), graph.ErrMatrixShape)
	require.ErrorIs(t, g.AddEdgesFromMatrix([][]bool{
		{false, true},
		{true},
	}), graph.ErrMatrixShape)
	require.ErrorIs(t, g.AddEdgesFromMatrix([][]bool{
		{true, false},
		{false, false},
	}), graph.ErrSelfLoop)
	require.ErrorIs(t, g.AddEdgesFromMatrix([][]bool{
		{false, true},
		{false, false},
	}), graph.ErrAsymmetry)
}

func TestAdjacencyMatrixIsDeepCopy(t *testing.T) {
	g, err := graph.New(2)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1))

	m := g.AdjacencyMatrix()
	require.True(t, m[0][1])
	m[0][1] = false
	require.True(t, g.Adjacent(0, 1))
}

func TestComplete(t *testing.T) {
	g, err := graph.Complete(5)
	require.NoError(t, err)
	require.Equal(t, 5, g.NumVertices())
	require.Equal(t, 10, g.NumEdges())

	var v int
	for v = 0; v < 5; v++ {
		require.Equal(t, 4, g.Degree(v))
	}
}

func TestPathAndCycle(t *testing.T) {
	p, err := graph.Path(4)
	require.NoError(t, err)
	require.Equal(t, 3, p.NumEdges())
	require.Equal(t, []int{1}, p.Neighbors(0))
	require.Equal(t, []int{0, 2}, p.Neighbors(1))

	c, err := graph.Cycle(5)
	require.NoError(t, err)
	require.Equal(t, 5, c.NumEdges())
	require.True(t, c.Adjacent(4, 0))

	_, err = graph.Cycle(2)
	require.ErrorIs(t, err, graph.ErrOrder)
}

func TestRandomSparse(t *testing.T) {
	_, err := graph.RandomSparse(4, 1.5, rand.New(rand.NewSource(1)))
	require.ErrorIs(t, err, graph.ErrProbability)

	full, err := graph.RandomSparse(6, 1.0, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	require.Equal(t, 15, full.NumEdges())

	empty, err := graph.RandomSparse(6, 0.0, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	require.Equal(t, 0, empty.NumEdges())

	// Same seed, same graph.
	a, err := graph.RandomSparse(12, 0.4, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	b, err := graph.RandomSparse(12, 0.4, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	require.Equal(t, a.AdjacencyMatrix(), b.AdjacencyMatrix())
}

func TestMycielski(t *testing.T) {
	// M(K_2) is the 5-cycle: 5 vertices, 5 edges, triangle-free.
	k2, err := graph.Complete(2)
	require.NoError(t, err)

	c5, err := graph.Mycielski(k2)
	require.NoError(t, err)
	require.Equal(t, 5, c5.NumVertices())
	require.Equal(t, 5, c5.NumEdges())

	// Iterating once more gives an 11-vertex, 20-edge graph (the
	// myciel3 shape: |V|→2|V|+1, |E|→3|E|+|V|).
	m3, err := graph.Mycielski(c5)
	require.NoError(t, err)
	require.Equal(t, 11, m3.NumVertices())
	require.Equal(t, 20, m3.NumEdges())

	var v int
	for v = 0; v < 5; v++ {
		require.True(t, m3.Adjacent(5+v, 10), "shadow %d must touch the apex", 5+v)
	}
}
