// Package grasp: options, result type, and sentinel error set.
package grasp

import "errors"

// Default search parameters; see DefaultOptions.
const (
	// DefaultGraspIterations is the default number of independent restarts.
	DefaultGraspIterations = 50

	// DefaultColorIterations is the default number of construction
	// attempts per color class.
	DefaultColorIterations = 10

	// DefaultColorListSize is the default restricted-candidate-list size
	// (CSize). Size 1 degenerates to fully greedy, degree-ordered
	// construction; larger values diversify the search.
	DefaultColorListSize = 5
)

// Sentinel errors returned by Solve's validation stage.
// Tests match them via errors.Is; none are returned after validation.
var (
	// ErrGraphNil is returned when a nil *graph.Graph is passed to Solve.
	ErrGraphNil = errors.New("grasp: graph is nil")

	// ErrGraspIterations is returned when Options.GraspIterations < 1.
	ErrGraspIterations = errors.New("grasp: GraspIterations must be at least 1")

	// ErrColorIterations is returned when Options.ColorIterations < 1.
	ErrColorIterations = errors.New("grasp: ColorIterations must be at least 1")

	// ErrColorListSize is returned when Options.ColorListSize < 1.
	ErrColorListSize = errors.New("grasp: ColorListSize must be at least 1")
)

// Options holds the tunable parameters of the GRASP search.
type Options struct {
	// GraspIterations is the number of independent restarts; the restart
	// with the fewest color classes wins. Must be ≥ 1.
	GraspIterations int

	// ColorIterations is the number of randomized attempts per color
	// class during construction; the attempt minimizing the remaining
	// conflict potential is kept. Must be ≥ 1.
	ColorIterations int

	// ColorListSize (CSize) bounds the restricted candidate list from
	// which the next class member is drawn uniformly. Must be ≥ 1.
	ColorListSize int

	// Seed selects the deterministic random stream. Seed 0 selects a
	// fixed default stream (same policy everywhere in this module);
	// any other value is used verbatim.
	Seed int64
}

// DefaultOptions returns the recommended parameter set: 50 restarts,
// 10 construction attempts per class, RCL of size 5, deterministic
// default seed.
func DefaultOptions() Options {
	return Options{
		GraspIterations: DefaultGraspIterations,
		ColorIterations: DefaultColorIterations,
		ColorListSize:   DefaultColorListSize,
		Seed:            0,
	}
}

// Result is the outcome of a solve.
type Result struct {
	// NumColors is the number of distinct colors used; equals
	// len(Classes) and never exceeds the vertex count.
	NumColors int

	// Classes is the winning class list, tightly packed: exactly
	// NumColors non-empty classes, class i holding the vertices colored
	// i+1. Every vertex appears in exactly one class.
	Classes [][]int
}
