// Package graph provides the read-only graph oracle consumed by the
// coloring heuristics in this module: a finite undirected simple graph
// over dense integer vertex indices 0..n-1 backed by a symmetric boolean
// adjacency matrix.
//
// What:
//
//   - Graph: immutable-after-build adjacency oracle with O(1) edge lookup,
//     sorted neighbor lists, and list-restricted degree queries.
//   - Construction: New + AddEdge / AddEdgesFromMatrix, a DIMACS .col
//     reader (ParseDIMACS / ReadDIMACSFile), and deterministic family
//     constructors (Complete, Path, Cycle, Edgeless, RandomSparse,
//     Mycielski).
//
// Why:
//   - The GRASP engine (package grasp) needs a stable, symmetric,
//     loop-free adjacency relation with deterministic iteration order;
//     everything else (parsing, generation) exists to feed it instances.
//   - Mycielski builds the triangle-free mycielN benchmark family with
//     growing chromatic number, the canonical stress test for coloring
//     heuristics.
//
// Invariants (enforced at build time, relied upon by every consumer):
//   - No self-loops.
//   - Adjacency is symmetric.
//   - Vertex indices are stable for the lifetime of the value.
//
// Complexity:
//   - Adjacent:      O(1)
//   - Neighbors:     O(1) (returns a copy: O(deg))
//   - DegreeInList:  O(len(list))
//   - Memory:        O(n²) for the matrix plus O(n+m) neighbor lists.
//
// Errors: sentinel values only (ErrOrder, ErrVertexRange, ErrSelfLoop,
// ErrMatrixShape, ErrAsymmetry, ErrDIMACSHeader, ErrDIMACSEdge), matched
// with errors.Is; parse errors wrap a sentinel with line context.
package graph
