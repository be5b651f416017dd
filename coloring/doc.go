// Package coloring provides the class-list / coloring-view utilities
// shared by the solvers in this module.
//
// Terminology (used throughout the module):
//
//   - Class list: an ordered sequence of color classes, each a set of
//     vertex indices rendered as a slice (insertion order matters only
//     for deterministic iteration). Class index i holds color i+1.
//   - Coloring view: the derived vertex→color vector; color 0 means
//     "uncolored" and never appears in a finished solution.
//   - Forbidden edge: an edge whose endpoints share a color.
//
// What:
//
//   - FromClassList: project a class list to its coloring view.
//   - CountForbidden: same-color neighbors of one vertex.
//   - NumForbiddenEdges: same-color edges of a whole coloring.
//   - Verify: viability check — every vertex colored, no forbidden edge.
//
// Complexity: FromClassList O(Σ|class|), CountForbidden O(deg(v)),
// NumForbiddenEdges O(V+E), Verify O(V+E). All helpers are side-effect
// free and deterministic.
//
// Errors: ErrUncoloredVertex and ErrForbiddenEdge from Verify, matched
// with errors.Is; the projection helpers cannot fail.
package coloring
