// Package grasp_test exercises Solve through the public API: contract
// validation, the §-level boundary instances (edgeless, complete,
// CSize=1), seed determinism, and a proper coloring of myciel4.
package grasp_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/vinisilvag/gcp-heuristics/coloring"
	"github.com/vinisilvag/gcp-heuristics/graph"
	"github.com/vinisilvag/gcp-heuristics/grasp"
)

// SolveSuite exercises the GRASP driver under the documented scenarios.
type SolveSuite struct {
	suite.Suite
}

// requireProper asserts the full §Result contract: NumColors matches the
// packed class list, every vertex is covered exactly once, and the
// projected coloring is legal.
func (s *SolveSuite) requireProper(g *graph.Graph, res grasp.Result) {
	require.Equal(s.T(), res.NumColors, len(res.Classes))
	require.LessOrEqual(s.T(), res.NumColors, g.NumVertices())

	total := 0
	for i, class := range res.Classes {
		require.NotEmpty(s.T(), class, "class %d must be non-empty", i)
		total += len(class)
	}
	require.Equal(s.T(), g.NumVertices(), total)

	colors := coloring.FromClassList(g.NumVertices(), res.Classes)
	require.NoError(s.T(), coloring.Verify(g, colors))
}

func (s *SolveSuite) TestNilGraph() {
	_, err := grasp.Solve(nil, grasp.DefaultOptions())
	require.ErrorIs(s.T(), err, grasp.ErrGraphNil)
}

func (s *SolveSuite) TestOptionValidation() {
	g, err := graph.Complete(3)
	require.NoError(s.T(), err)

	opts := grasp.DefaultOptions()
	opts.GraspIterations = 0
	_, err = grasp.Solve(g, opts)
	require.ErrorIs(s.T(), err, grasp.ErrGraspIterations)

	opts = grasp.DefaultOptions()
	opts.ColorIterations = 0
	_, err = grasp.Solve(g, opts)
	require.ErrorIs(s.T(), err, grasp.ErrColorIterations)

	opts = grasp.DefaultOptions()
	opts.ColorListSize = 0
	_, err = grasp.Solve(g, opts)
	require.ErrorIs(s.T(), err, grasp.ErrColorListSize)
}

func (s *SolveSuite) TestEmptyGraph() {
	g, err := graph.New(0)
	require.NoError(s.T(), err)

	res, err := grasp.Solve(g, grasp.DefaultOptions())
	require.NoError(s.T(), err)
	require.Equal(s.T(), 0, res.NumColors)
	require.Empty(s.T(), res.Classes)
}

func (s *SolveSuite) TestEdgelessGraphUsesOneColor() {
	g, err := graph.Edgeless(7)
	require.NoError(s.T(), err)

	res, err := grasp.Solve(g, grasp.DefaultOptions())
	require.NoError(s.T(), err)
	require.Equal(s.T(), 1, res.NumColors)
	s.requireProper(g, res)
}

func (s *SolveSuite) TestCompleteGraphNeedsAllColors() {
	// K_n admits only singleton classes: every run must use n colors
	// and still return a full covering class list.
	for _, n := range []int{3, 6} {
		g, err := graph.Complete(n)
		require.NoError(s.T(), err)

		res, err := grasp.Solve(g, grasp.DefaultOptions())
		require.NoError(s.T(), err)
		require.Equal(s.T(), n, res.NumColors)
		s.requireProper(g, res)
		for _, class := range res.Classes {
			require.Len(s.T(), class, 1)
		}
	}
}

func (s *SolveSuite) TestBipartitePath() {
	g, err := graph.Path(8)
	require.NoError(s.T(), err)

	res, err := grasp.Solve(g, grasp.DefaultOptions())
	require.NoError(s.T(), err)
	s.requireProper(g, res)
	// A path is 2-chromatic; greedy construction on P_8 yields at most
	// three classes and the merge phase can only shrink that.
	require.GreaterOrEqual(s.T(), res.NumColors, 2)
	require.LessOrEqual(s.T(), res.NumColors, 3)
}

func (s *SolveSuite) TestOddCycleNeedsThree() {
	g, err := graph.Cycle(9)
	require.NoError(s.T(), err)

	res, err := grasp.Solve(g, grasp.DefaultOptions())
	require.NoError(s.T(), err)
	s.requireProper(g, res)
	require.GreaterOrEqual(s.T(), res.NumColors, 3)
}

func (s *SolveSuite) TestMyciel4ProperColoring() {
	m3, err := graph.ReadDIMACSFile("testdata/myciel3.col")
	require.NoError(s.T(), err)
	m4, err := graph.Mycielski(m3)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 23, m4.NumVertices())
	require.Equal(s.T(), 71, m4.NumEdges())

	res, err := grasp.Solve(m4, grasp.Options{
		GraspIterations: 10,
		ColorIterations: 5,
		ColorListSize:   5,
		Seed:            7,
	})
	require.NoError(s.T(), err)
	s.requireProper(m4, res)
	// myciel4 is triangle-free with chromatic number 5.
	require.GreaterOrEqual(s.T(), res.NumColors, 5)
}

func (s *SolveSuite) TestGreedyDegenerateRCL() {
	// ColorListSize 1 removes the randomness from construction but must
	// still produce a proper covering coloring.
	m3, err := graph.ReadDIMACSFile("testdata/myciel3.col")
	require.NoError(s.T(), err)

	res, err := grasp.Solve(m3, grasp.Options{
		GraspIterations: 3,
		ColorIterations: 2,
		ColorListSize:   1,
		Seed:            1,
	})
	require.NoError(s.T(), err)
	s.requireProper(m3, res)
	require.GreaterOrEqual(s.T(), res.NumColors, 4) // χ(myciel3) = 4
}

func (s *SolveSuite) TestSeedDeterminism() {
	m3, err := graph.ReadDIMACSFile("testdata/myciel3.col")
	require.NoError(s.T(), err)

	opts := grasp.DefaultOptions()
	opts.Seed = 1234

	a, err := grasp.Solve(m3, opts)
	require.NoError(s.T(), err)
	b, err := grasp.Solve(m3, opts)
	require.NoError(s.T(), err)

	require.Equal(s.T(), a.NumColors, b.NumColors)
	require.Equal(s.T(), a.Classes, b.Classes)
}

func (s *SolveSuite) TestMoreRestartsNeverWorse() {
	// The incumbent only ever improves, so a prefix of the same seeded
	// restart sequence cannot beat the full run.
	m3, err := graph.ReadDIMACSFile("testdata/myciel3.col")
	require.NoError(s.T(), err)

	short := grasp.DefaultOptions()
	short.Seed = 99
	short.GraspIterations = 2

	long := short
	long.GraspIterations = 30

	a, err := grasp.Solve(m3, short)
	require.NoError(s.T(), err)
	b, err := grasp.Solve(m3, long)
	require.NoError(s.T(), err)
	require.LessOrEqual(s.T(), b.NumColors, a.NumColors)
}

func TestSolveSuite(t *testing.T) {
	suite.Run(t, new(SolveSuite))
}
