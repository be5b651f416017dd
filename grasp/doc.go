// Package grasp approximates minimum graph vertex coloring with a
// GRASP metaheuristic (Greedy Randomized Adaptive Search Procedure)
// followed by a merge-and-repair improvement phase.
//
// What:
//
//   - Solve(g, opts): run opts.GraspIterations independent restarts.
//     Each restart builds a proper coloring greedily, one color class at
//     a time: the next class member is drawn uniformly from a restricted
//     candidate list (RCL) of the opts.ColorListSize highest-degree
//     admissible vertices, each class is attempted opts.ColorIterations
//     times, and the attempt leaving the fewest edges in the uncolored
//     remainder wins. The improvement phase then repeatedly merges the
//     two smallest classes and lets a local search repair the conflicts;
//     a merge that cannot be repaired ends the restart. The restart with
//     the fewest classes wins overall (earlier restart wins ties).
//
// Why:
//   - Deciding k-colorability is NP-hard; GRASP trades optimality for
//     consistently good colorings in polynomial time. The RCL ranking
//     prefers vertices whose inclusion consumes many already-excluded
//     conflicts, steering each class toward a large independent set.
//
// Key types:
//
//   - Options: GraspIterations, ColorIterations, ColorListSize, Seed.
//   - Result: NumColors and the winning class list (tightly packed;
//     class i holds the vertices of color i+1).
//
// Determinism:
//   - All randomness flows through an explicit *rand.Rand seeded from
//     Options.Seed (seed 0 selects a fixed default stream). Each restart
//     draws an independent derived stream, so a fixed seed reproduces
//     the full search exactly.
//
// Complexity:
//   - One construction: O(ColorIterations · n³) worst case (RCL ranking
//     dominates). Improvement: O(n²) per local-search step with at most
//     ⌊n/2⌋ consecutive non-improving steps. Memory: O(n²) borrowed from
//     the graph oracle plus O(n) per restart.
//
// Errors: ErrGraphNil, ErrGraspIterations, ErrColorIterations and
// ErrColorListSize from up-front validation in Solve; a validated call
// cannot fail. No panics, no logging, no I/O.
package grasp
