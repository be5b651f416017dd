// Package graph: Graph construction and oracle methods.
//
// Contract:
//   - AddEdge stores both directions and keeps neighbor lists sorted,
//     so every query below is deterministic for a fixed build sequence.
//   - Mutating methods validate before touching state; a failed call
//     leaves the graph unchanged.
//   - Query methods never panic: out-of-range indices read as absent.
package graph

import (
	"fmt"
	"sort"
)

// New returns an edgeless graph on n vertices (indices 0..n-1).
// n must be non-negative; New(0) is a valid empty graph.
//
// Complexity: O(n²) time and space (matrix allocation).
func New(n int) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("New: n=%d: %w", n, ErrOrder)
	}

	g := &Graph{
		n:   n,
		adj: make([][]bool, n),
		nbr: make([][]int, n),
	}
	var i int
	for i = 0; i < n; i++ {
		g.adj[i] = make([]bool, n)
	}

	return g, nil
}

// NumVertices reports the number of vertices n.
func (g *Graph) NumVertices() int { return g.n }

// NumEdges reports the number of undirected edges.
func (g *Graph) NumEdges() int { return g.m }

// AddEdge inserts the undirected edge {u,v}.
// Out-of-range endpoints yield ErrVertexRange, u==v yields ErrSelfLoop,
// and re-adding an existing edge is a no-op.
//
// Complexity: O(deg) per endpoint (sorted insertion).
func (g *Graph) AddEdge(u, v int) error {
	if u < 0 || u >= g.n || v < 0 || v >= g.n {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrVertexRange)
	}
	if u == v {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrSelfLoop)
	}
	if g.adj[u][v] {
		return nil // duplicate edge in a simple graph: ignore
	}

	g.adj[u][v] = true
	g.adj[v][u] = true
	g.nbr[u] = insertSorted(g.nbr[u], v)
	g.nbr[v] = insertSorted(g.nbr[v], u)
	g.m++

	return nil
}

// AddEdgesFromMatrix ingests every edge of a symmetric boolean adjacency
// matrix. The matrix must be n×n with a zero diagonal; asymmetry and
// shape violations are rejected before any edge is added.
//
// Complexity: O(n²).
func (g *Graph) AddEdgesFromMatrix(matrix [][]bool) error {
	if len(matrix) != g.n {
		return fmt.Errorf("AddEdgesFromMatrix: %d rows, want %d: %w", len(matrix), g.n, ErrMatrixShape)
	}

	var i, j int
	for i = 0; i < g.n; i++ {
		if len(matrix[i]) != g.n {
			return fmt.Errorf("AddEdgesFromMatrix: row %d has %d columns, want %d: %w",
				i, len(matrix[i]), g.n, ErrMatrixShape)
		}
		if matrix[i][i] {
			return fmt.Errorf("AddEdgesFromMatrix: diagonal entry (%d,%d): %w", i, i, ErrSelfLoop)
		}
		for j = i + 1; j < g.n; j++ {
			if matrix[i][j] != matrix[j][i] {
				return fmt.Errorf("AddEdgesFromMatrix: entry (%d,%d): %w", i, j, ErrAsymmetry)
			}
		}
	}

	for i = 0; i < g.n; i++ {
		for j = i + 1; j < g.n; j++ {
			if matrix[i][j] {
				if err := g.AddEdge(i, j); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

// Adjacent reports whether {u,v} is an edge.
// Out-of-range indices are simply not adjacent to anything.
//
// Complexity: O(1).
func (g *Graph) Adjacent(u, v int) bool {
	if u < 0 || u >= g.n || v < 0 || v >= g.n {
		return false
	}

	return g.adj[u][v]
}

// AdjacencyMatrix returns a deep copy of the n×n adjacency matrix.
// The copy keeps callers from invalidating the oracle invariants; use
// Adjacent for hot-path lookups.
//
// Complexity: O(n²) time and space.
func (g *Graph) AdjacencyMatrix() [][]bool {
	out := make([][]bool, g.n)
	var i int
	for i = 0; i < g.n; i++ {
		out[i] = make([]bool, g.n)
		copy(out[i], g.adj[i])
	}

	return out
}

// Neighbors returns the neighbors of v in ascending index order.
// The slice is a copy; out-of-range v yields nil.
//
// Complexity: O(deg(v)).
func (g *Graph) Neighbors(v int) []int {
	if v < 0 || v >= g.n {
		return nil
	}
	out := make([]int, len(g.nbr[v]))
	copy(out, g.nbr[v])

	return out
}

// Degree reports deg(v); out-of-range v has degree 0.
func (g *Graph) Degree(v int) int {
	if v < 0 || v >= g.n {
		return 0
	}

	return len(g.nbr[v])
}

// DegreeInList counts the entries of list adjacent to v. Duplicate
// entries are counted as given: callers that accumulate multisets (the
// GRASP inadmissible pool does) rely on the repeated weight.
//
// Complexity: O(len(list)).
func (g *Graph) DegreeInList(v int, list []int) int {
	var (
		count int
		u     int
	)
	for _, u = range list {
		if g.Adjacent(v, u) {
			count++
		}
	}

	return count
}

// insertSorted inserts x into ascending slice s, preserving order.
func insertSorted(s []int, x int) []int {
	i := sort.SearchInts(s, x)
	s = append(s, 0)
	copy(s[i+1:], s[i:])
	s[i] = x

	return s
}
