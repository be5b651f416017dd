// Package graph: deterministic family constructors.
//
// Each constructor validates its parameters first (fail fast, zero
// side-effects on invalid input), adds vertices in ascending index
// order, and emits each unordered pair {i,j} with i<j exactly once, so a
// fixed parameter set (and RNG seed, where one applies) always yields
// the identical graph.
package graph

import (
	"fmt"
	"math/rand"
)

// Complete returns the complete simple graph K_n.
//
// Complexity: O(n²).
func Complete(n int) (*Graph, error) {
	g, err := New(n)
	if err != nil {
		return nil, err
	}

	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if err = g.AddEdge(i, j); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

// Edgeless returns the empty graph on n vertices.
func Edgeless(n int) (*Graph, error) { return New(n) }

// Path returns the path 0—1—…—(n-1).
//
// Complexity: O(n²) (matrix allocation dominates).
func Path(n int) (*Graph, error) {
	g, err := New(n)
	if err != nil {
		return nil, err
	}

	var i int
	for i = 0; i+1 < n; i++ {
		if err = g.AddEdge(i, i+1); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Cycle returns the cycle C_n (n ≥ 3; smaller n would need a multi-edge
// or a loop, which simple graphs exclude).
func Cycle(n int) (*Graph, error) {
	const minCycle = 3
	if n < minCycle {
		return nil, fmt.Errorf("Cycle: n=%d < min=%d: %w", n, minCycle, ErrOrder)
	}

	g, err := Path(n)
	if err != nil {
		return nil, err
	}
	if err = g.AddEdge(n-1, 0); err != nil {
		return nil, err
	}

	return g, nil
}

// RandomSparse samples an Erdős–Rényi graph G(n,p): each unordered pair
// {i,j}, i<j, becomes an edge independently with probability p. Trials
// run in stable (i asc, j asc) order, so a fixed rng seed reproduces the
// graph exactly. rng must be non-nil.
//
// Complexity: O(n²) Bernoulli trials.
func RandomSparse(n int, p float64, rng *rand.Rand) (*Graph, error) {
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("RandomSparse: p=%v: %w", p, ErrProbability)
	}
	g, err := New(n)
	if err != nil {
		return nil, err
	}

	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if rng.Float64() < p {
				if err = g.AddEdge(i, j); err != nil {
					return nil, err
				}
			}
		}
	}

	return g, nil
}

// Mycielski returns the Mycielskian M(g): for g on vertices 0..n-1 it
// has vertices 0..2n (originals, shadows n..2n-1, apex 2n), the original
// edges, an edge {u, n+v} for every original edge {u,v} (both ways), and
// an edge from every shadow to the apex.
//
// The construction preserves triangle-freeness while raising the
// chromatic number by one; iterating it from K_2 yields the DIMACS
// mycielN benchmark family (myciel3 = M(C_5), myciel4 = M(myciel3), …)
// with the standard vertex numbering.
//
// Complexity: O(n² + nm).
func Mycielski(g *Graph) (*Graph, error) {
	var (
		n   = g.NumVertices()
		out *Graph
		err error
	)
	out, err = New(2*n + 1)
	if err != nil {
		return nil, err
	}

	var u, v int
	for u = 0; u < n; u++ {
		for _, v = range g.Neighbors(u) {
			if v < u {
				continue // each original edge once
			}
			if err = out.AddEdge(u, v); err != nil {
				return nil, err
			}
			if err = out.AddEdge(u, n+v); err != nil {
				return nil, err
			}
			if err = out.AddEdge(v, n+u); err != nil {
				return nil, err
			}
		}
		if err = out.AddEdge(n+u, 2*n); err != nil {
			return nil, err
		}
	}

	return out, nil
}
