// Package gcpheuristics approximates the graph vertex coloring problem
// (GCP): color the vertices of an undirected simple graph so that no
// edge is monochromatic, using as few colors as possible.
//
// Deciding k-colorability is NP-hard, so the module solves the problem
// heuristically with GRASP — greedy randomized construction of color
// classes followed by a merge-and-repair local search.
//
// Everything is organized under three library packages plus a CLI:
//
//	graph/    — the graph oracle: dense adjacency matrix, DIMACS .col
//	            reader, deterministic family constructors (Complete,
//	            Path, Cycle, RandomSparse, Mycielski)
//	coloring/ — class-list ⇄ coloring projections, forbidden-edge
//	            accounting, viability checks
//	grasp/    — the solver: restricted-candidate-list construction,
//	            class-merge improvement phase, seeded deterministic RNG
//	cmd/gcp/  — command-line front-end for DIMACS instances
//
// Quick start:
//
//	g, _ := graph.ReadDIMACSFile("myciel4.col")
//	res, _ := grasp.Solve(g, grasp.DefaultOptions())
//	fmt.Println(res.NumColors) // colors found; res.Classes holds the classes
//
//	go get github.com/vinisilvag/gcp-heuristics
package gcpheuristics
