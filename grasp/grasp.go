// Package grasp - driver and greedy randomized construction phase.
//
// Solve validates once up front and then runs restart after restart; all
// interior phases assume validated inputs and cannot fail. The
// construction keeps two disjoint pools over the uncolored set:
//
//	admissible   - vertices still independent of the class under
//	               construction (initially the whole uncolored set),
//	inadmissible - vertices excluded because they neighbor a chosen
//	               member (a multiset: repeated exclusions weigh a
//	               vertex repeatedly in the RCL ranking).
//
// While inadmissible is empty the RCL ranks by degree inside the
// admissible subgraph; afterwards it ranks by degree into inadmissible,
// preferring candidates whose inclusion consumes many already-excluded
// conflicts.
package grasp

import (
	"math"
	"sort"

	"github.com/vinisilvag/gcp-heuristics/graph"
)

// Solve runs the GRASP search on g and returns the best coloring found.
//
// Contracts:
//   - g non-nil (ErrGraphNil); option bounds per types.go sentinels.
//   - On success the result is a proper coloring: classes are
//     independent sets, pairwise disjoint, covering every vertex, and
//     NumColors == len(Classes) ≤ n.
//   - Randomized: two calls differ unless Options.Seed matches.
//
// Complexity: O(GraspIterations · n · ColorIterations · n²) worst case.
func Solve(g *graph.Graph, opts Options) (Result, error) {
	if g == nil {
		return Result{}, ErrGraphNil
	}
	if err := validateOptions(opts); err != nil {
		return Result{}, err
	}

	n := g.NumVertices()
	if n == 0 {
		return Result{NumColors: 0, Classes: nil}, nil
	}

	var (
		base       = rngFromSeed(opts.Seed)
		best       [][]int // incumbent class list (packed)
		bestColors = n
		trial      int
	)
	for trial = 0; trial < opts.GraspIterations; trial++ {
		var (
			rng     = deriveRNG(base, uint64(trial))
			classes = construct(g, opts, rng)
			k       int
		)
		classes, k = improvePhase(g, classes, rng)

		// First restart always seeds the incumbent; afterwards strict
		// improvement only, so ties keep the earlier restart.
		if best == nil || k < bestColors {
			best = classes
			bestColors = k
		}
	}

	return Result{NumColors: bestColors, Classes: best}, nil
}

// validateOptions enforces the Options contract with sentinels only.
//
// Complexity: O(1).
func validateOptions(opts Options) error {
	if opts.GraspIterations < 1 {
		return ErrGraspIterations
	}
	if opts.ColorIterations < 1 {
		return ErrColorIterations
	}
	if opts.ColorListSize < 1 {
		return ErrColorListSize
	}

	return nil
}

// construct performs one full greedy randomized construction: it consumes
// every vertex into a sequence of independent classes and returns the
// class list, tightly packed (every class non-empty).
//
// Per class, assignColor runs opts.ColorIterations times against a
// best-so-far remaining-edge score that resets for each new class; the
// winning attempt's members leave the uncolored pool.
//
// Complexity: O(n · ColorIterations · n²).
func construct(g *graph.Graph, opts Options, rng randSource) [][]int {
	var (
		n         = g.NumVertices()
		uncolored = make([]int, n)
		classes   = make([][]int, 0, n)
		v         int
	)
	for v = 0; v < n; v++ {
		uncolored[v] = v
	}

	var (
		minRemaining int
		attempt      int
		current      []int
	)
	for len(uncolored) > 0 {
		// Best-so-far resets per class: carrying the previous class's
		// minimum across would reject every attempt for this one.
		minRemaining = math.MaxInt
		current = nil
		for attempt = 0; attempt < opts.ColorIterations; attempt++ {
			current = assignColor(g, uncolored, opts.ColorListSize, &minRemaining, current, rng)
		}
		classes = append(classes, current)
		uncolored = exclude(uncolored, current)
	}

	return classes
}

// randSource is the narrow slice of *rand.Rand the phases consume; it
// keeps the helpers trivially testable with scripted picks.
type randSource interface {
	Intn(n int) int
}

// assignColor makes one randomized attempt at the next color class and
// returns the better of (incumbent, attempt).
//
// The attempt grows an independent set C ⊆ uncolored by repeatedly
// drawing uniformly from the restricted candidate list of the cSize
// highest-ranked admissible vertices, then scores C by the number of
// edges left in the subgraph induced by uncolored \ C. A strictly
// smaller score than *minRemaining commits the attempt.
//
// Complexity: O(|C| · n · |uncolored|) ranking + O(|uncolored|²) scoring.
func assignColor(g *graph.Graph, uncolored []int, cSize int, minRemaining *int, incumbent []int, rng randSource) []int {
	var (
		admissible   = append([]int(nil), uncolored...)
		inadmissible []int
		current      []int
		candidates   []int
		v            int
	)

	for len(admissible) > 0 {
		if len(inadmissible) == 0 {
			candidates = nLargestDegree(g, cSize, admissible, nil)
		} else {
			candidates = nLargestDegree(g, cSize, admissible, inadmissible)
		}
		// candidates is non-empty: admissible is non-empty and cSize ≥ 1.
		v = candidates[rng.Intn(len(candidates))]

		current = append(current, v)
		neighbors := g.Neighbors(v)
		admissible = exclude(admissible, append(neighbors, v))
		// Multiset append: duplicates weigh repeated exclusions in the
		// degree-into-inadmissible ranking.
		inadmissible = append(inadmissible, neighbors...)
	}

	remaining := exclude(uncolored, current)
	score := countRemainingEdges(g, remaining)
	if score < *minRemaining {
		*minRemaining = score

		return current
	}

	return incumbent
}

// nLargestDegree returns up to n vertices of subset with the greatest
// degree measured against list; list == nil measures inside the subgraph
// induced by subset. The result is sorted by descending degree; equal
// degrees keep ascending vertex order (stable), so the output is fully
// deterministic. If |subset| < n the result under-fills to |subset|.
//
// Complexity: O(|subset| · len(list)) for ranking + O(|subset| log) sort.
func nLargestDegree(g *graph.Graph, n int, subset []int, list []int) []int {
	if list == nil {
		list = subset
	}

	type vertexDegree struct {
		vertex int
		degree int
	}
	var (
		degrees = make([]vertexDegree, 0, len(subset))
		member  = membership(g.NumVertices(), subset)
		v       int
	)
	// Ascending vertex order here + stable sort below pins the
	// equal-degree ordering to ascending index.
	for v = 0; v < g.NumVertices(); v++ {
		if member[v] {
			degrees = append(degrees, vertexDegree{vertex: v, degree: g.DegreeInList(v, list)})
		}
	}

	sort.SliceStable(degrees, func(i, j int) bool {
		return degrees[i].degree > degrees[j].degree
	})

	if n > len(degrees) {
		n = len(degrees)
	}
	out := make([]int, n)
	for v = 0; v < n; v++ {
		out[v] = degrees[v].vertex
	}

	return out
}

// countRemainingEdges counts the edges of the subgraph induced by list.
//
// Complexity: O(len(list)²).
func countRemainingEdges(g *graph.Graph, list []int) int {
	var (
		count int
		i, j  int
	)
	for i = 0; i < len(list); i++ {
		for j = i + 1; j < len(list); j++ {
			if g.Adjacent(list[i], list[j]) {
				count++
			}
		}
	}

	return count
}

// exclude returns the members of list not present in remove, preserving
// order. Allocates fresh backing so callers can keep the input intact.
//
// Complexity: O(len(list) + len(remove)).
func exclude(list []int, remove []int) []int {
	var (
		removed = membership(maxVertex(list, remove)+1, remove)
		out     = make([]int, 0, len(list))
		v       int
	)
	for _, v = range list {
		if !removed[v] {
			out = append(out, v)
		}
	}

	return out
}

// membership renders a vertex list as a bool table of size n.
func membership(n int, list []int) []bool {
	out := make([]bool, n)
	var v int
	for _, v = range list {
		if v >= 0 && v < n {
			out[v] = true
		}
	}

	return out
}

// maxVertex returns the largest index among both lists (-1 when empty).
func maxVertex(lists ...[]int) int {
	maxV := -1
	var v int
	for _, list := range lists {
		for _, v = range list {
			if v > maxV {
				maxV = v
			}
		}
	}

	return maxV
}
