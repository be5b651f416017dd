// Package coloring: implementation of the shared coloring helpers.
package coloring

import (
	"errors"
	"fmt"

	"github.com/vinisilvag/gcp-heuristics/graph"
)

// Sentinel errors returned by Verify.
var (
	// ErrUncoloredVertex indicates a vertex absent from every class.
	ErrUncoloredVertex = errors.New("coloring: vertex is uncolored")

	// ErrForbiddenEdge indicates an edge whose endpoints share a color.
	ErrForbiddenEdge = errors.New("coloring: endpoints share a color")
)

// FromClassList projects a class list onto its coloring view: a vector
// of length n where position v holds the 1-based color of vertex v, or 0
// if v appears in no class. Trailing empty classes (or a tightly packed
// list) are both fine; only membership matters.
//
// Out-of-range members are ignored rather than tracked: the solvers
// never produce them, and the projection is defined for any n.
//
// Complexity: O(n + Σ|class|).
func FromClassList(n int, classes [][]int) []int {
	colors := make([]int, n)

	var (
		i int // class index; color is i+1
		v int // member vertex
	)
	for i = range classes {
		for _, v = range classes[i] {
			if v >= 0 && v < n {
				colors[v] = i + 1
			}
		}
	}

	return colors
}

// CountForbidden counts the neighbors of v carrying the same color as v
// under colors. Uncolored vertices (color 0) count against uncolored
// neighbors like any other color value; callers decide whether 0 is
// meaningful.
//
// Complexity: O(deg(v)).
func CountForbidden(g *graph.Graph, colors []int, v int) int {
	var (
		count int
		u     int
	)
	for _, u = range g.Neighbors(v) {
		if colors[u] == colors[v] {
			count++
		}
	}

	return count
}

// NumForbiddenEdges counts the edges of g whose endpoints share a color,
// each edge once.
//
// Complexity: O(V + E).
func NumForbiddenEdges(g *graph.Graph, colors []int) int {
	var (
		count int
		v, u  int
	)
	for v = 0; v < g.NumVertices(); v++ {
		for _, u = range g.Neighbors(v) {
			if u > v && colors[u] == colors[v] {
				count++
			}
		}
	}

	return count
}

// Verify checks that colors is a legal coloring of g: every vertex has a
// non-zero color and no edge is monochromatic. The first violation is
// reported with its vertex (or edge) wrapped around a sentinel.
//
// Complexity: O(V + E).
func Verify(g *graph.Graph, colors []int) error {
	n := g.NumVertices()
	if len(colors) != n {
		return fmt.Errorf("Verify: %d colors for %d vertices: %w", len(colors), n, ErrUncoloredVertex)
	}

	var v, u int
	for v = 0; v < n; v++ {
		if colors[v] == 0 {
			return fmt.Errorf("Verify: vertex %d: %w", v, ErrUncoloredVertex)
		}
	}
	for v = 0; v < n; v++ {
		for _, u = range g.Neighbors(v) {
			if u > v && colors[u] == colors[v] {
				return fmt.Errorf("Verify: edge {%d,%d} color %d: %w", v, u, colors[v], ErrForbiddenEdge)
			}
		}
	}

	return nil
}
