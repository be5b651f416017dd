// Package graph: domain type and sentinel error set.
// This file holds ONLY the Graph type definition and the package-level
// sentinels; methods live in graph.go, constructors in build.go, and the
// DIMACS reader in dimacs.go.
package graph

import "errors"

// Sentinel errors for graph construction and ingestion.
// All public entry points return these (possibly wrapped with context via
// fmt.Errorf("...: %w", ErrX)); none of them panic on user input.
var (
	// ErrOrder indicates a negative vertex count was requested.
	ErrOrder = errors.New("graph: vertex count must be non-negative")

	// ErrVertexRange indicates a vertex index outside 0..n-1.
	ErrVertexRange = errors.New("graph: vertex index out of range")

	// ErrSelfLoop indicates an edge (v,v); simple graphs admit none.
	ErrSelfLoop = errors.New("graph: self-loops are not allowed")

	// ErrMatrixShape indicates a non-square or wrongly sized boolean matrix.
	ErrMatrixShape = errors.New("graph: adjacency matrix has invalid shape")

	// ErrAsymmetry indicates m[i][j] != m[j][i] in a supplied matrix.
	ErrAsymmetry = errors.New("graph: adjacency matrix is not symmetric")

	// ErrDIMACSHeader indicates a missing or malformed "p edge V E" line.
	ErrDIMACSHeader = errors.New("graph: missing or malformed DIMACS problem line")

	// ErrDIMACSEdge indicates a malformed or out-of-range "e u v" line.
	ErrDIMACSEdge = errors.New("graph: malformed DIMACS edge line")

	// ErrProbability indicates an edge probability outside [0,1].
	ErrProbability = errors.New("graph: edge probability must lie in [0,1]")
)

// Graph is an undirected simple graph over vertices 0..n-1.
//
// The zero value is an empty graph with no vertices. Build it with New
// and AddEdge (or one of the constructors), then treat it as read-only:
// the solver borrows it for the duration of a solve and assumes the
// invariants listed in doc.go.
type Graph struct {
	n   int      // number of vertices
	m   int      // number of (undirected) edges
	adj [][]bool // adj[u][v] == adj[v][u]; diagonal always false
	nbr [][]int  // nbr[u]: neighbors of u in ascending order
}
