// Package grasp - improvement phase and local search.
//
// The improvement phase works on a proper, tightly packed class list:
// it merges the two smallest classes into one (placed first), asks the
// local search to repair the conflicts, adopts the merged list when the
// repair drives the forbidden-edge count to zero, and stops at the first
// merge that cannot be repaired.
//
// Tie-break rule (documented, reproducible): class sizes are sorted
// descending with a stable sort over ascending class index and the last
// two entries are taken, so among equal-size classes the LARGEST index
// counts as smaller. The combined class concatenates smallest first,
// second-smallest second.
package grasp

import (
	"sort"

	"github.com/vinisilvag/gcp-heuristics/coloring"
	"github.com/vinisilvag/gcp-heuristics/graph"
)

// improvePhase repeatedly attempts to reduce the class count by one and
// returns the final packed class list and its length.
//
// Contracts:
//   - classes is a proper coloring with every class non-empty.
//   - On return the list is again proper; its length never grew.
//
// Complexity: at most k-1 merge attempts, each O(n/2 · n²) local search.
func improvePhase(g *graph.Graph, classes [][]int, rng randSource) ([][]int, int) {
	// A single class cannot merge; zero-edge graphs land here directly.
	for len(classes) >= 2 {
		smallest, second := twoSmallest(classes)

		combined := make([]int, 0, len(classes[smallest])+len(classes[second]))
		combined = append(combined, classes[smallest]...)
		combined = append(combined, classes[second]...)

		next := make([][]int, 0, len(classes)-1)
		next = append(next, combined)
		var i int
		for i = 0; i < len(classes); i++ {
			if i == smallest || i == second || len(classes[i]) == 0 {
				continue
			}
			next = append(next, append([]int(nil), classes[i]...))
		}

		if localSearch(g, next, rng) != 0 {
			break // merge could not be repaired; keep the current list
		}
		classes = next
	}

	return classes, len(classes)
}

// twoSmallest returns the indices of the two smallest classes,
// (smallest, secondSmallest), under the stable-descending tie-break
// described in the package comment.
//
// Complexity: O(k log k).
func twoSmallest(classes [][]int) (int, int) {
	order := make([]int, len(classes))
	var i int
	for i = range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return len(classes[order[a]]) > len(classes[order[b]])
	})

	return order[len(order)-1], order[len(order)-2]
}

// localSearch mutates classes in place trying to drive the number of
// forbidden edges to zero and returns the residual count.
//
// Each step draws a uniformly random vertex from the forbidden set and
// scans every color 1..len(classes) for the placement minimizing that
// vertex's same-color neighbor count. The scan seeds its best with the
// vertex's current color, so ties keep the earliest color index and the
// strict acceptance below can never produce a no-op move. A move is
// accepted only when strictly better; ⌊n/2⌋ consecutive rejections end
// the search.
//
// The forbidden set is recomputed from scratch after every accepted
// move. An incremental update (only the moved vertex's neighborhood
// changes) would preserve the contract; the full recomputation keeps the
// step auditable against the acceptance rule.
//
// Complexity: O(n²) per step; at most n/2 consecutive non-improving steps.
func localSearch(g *graph.Graph, classes [][]int, rng randSource) int {
	var (
		n             = g.NumVertices()
		ceiling       = n / 2
		count, forbid = forbiddenVertices(g, classes)
		noImprovement = 0
	)

	var (
		v          int
		colors     []int
		bestCount  int
		origCount  int
		bestColor  int
		origColor  int
		trialCount int
		i          int
	)
	for count > 0 && noImprovement < ceiling {
		v = forbid[rng.Intn(len(forbid))]

		colors = coloring.FromClassList(n, classes)
		bestCount = coloring.CountForbidden(g, colors, v)
		origCount = bestCount
		bestColor = colors[v]
		origColor = bestColor

		// Try every color slot, the current one included; empty classes
		// are valid targets (the improvement phase never hands us any,
		// but a mid-search emptied class may reopen).
		for i = 1; i <= len(classes); i++ {
			colors[v] = i
			trialCount = coloring.CountForbidden(g, colors, v)
			if trialCount < bestCount {
				bestCount = trialCount
				bestColor = i
			}
		}

		if bestCount < origCount {
			noImprovement = 0
			classes[origColor-1] = removeVertex(classes[origColor-1], v)
			classes[bestColor-1] = append(classes[bestColor-1], v)
			count, forbid = forbiddenVertices(g, classes)
		} else {
			noImprovement++
		}
	}

	return count
}

// forbiddenVertices computes the forbidden-edge count (each edge once)
// and the forbidden vertex set — every vertex incident to at least one
// same-color edge — in ascending order for deterministic sampling.
//
// Complexity: O(V + E).
func forbiddenVertices(g *graph.Graph, classes [][]int) (int, []int) {
	var (
		n      = g.NumVertices()
		colors = coloring.FromClassList(n, classes)
		marked = make([]bool, n)
		count  int
		v, u   int
	)
	for v = 0; v < n; v++ {
		for _, u = range g.Neighbors(v) {
			if u > v && colors[u] == colors[v] {
				count++
				marked[v] = true
				marked[u] = true
			}
		}
	}

	forbid := make([]int, 0, n)
	for v = 0; v < n; v++ {
		if marked[v] {
			forbid = append(forbid, v)
		}
	}

	return count, forbid
}

// removeVertex deletes the first occurrence of v from class, preserving
// the order of the remaining members.
func removeVertex(class []int, v int) []int {
	var i int
	for i = range class {
		if class[i] == v {
			return append(class[:i], class[i+1:]...)
		}
	}

	return class
}
