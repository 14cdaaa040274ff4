package search_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/maze"
	"github.com/katalvlaran/gridpath/search"
)

// SearchSuite exercises both engines under the same scenarios.
type SearchSuite struct {
	suite.Suite
}

// mustGrid parses a layout or fails the test.
func (s *SearchSuite) mustGrid(layout ...string) *grid.Grid {
	g, err := grid.FromRows(layout)
	s.Require().NoError(err)
	return g
}

// run drains a fresh search and returns its events and result.
func (s *SearchSuite) run(g *grid.Grid, alg search.Algorithm) ([]grid.Event, search.Result) {
	sr, err := search.New(g, alg)
	s.Require().NoError(err)
	var events []grid.Event
	for e := range sr.Steps() {
		events = append(events, e)
	}
	res, ok := sr.Result()
	s.Require().True(ok, "%s did not complete", alg)
	return events, res
}

// requireValidPath checks endpoints, adjacency and passability.
func (s *SearchSuite) requireValidPath(g *grid.Grid, p grid.Path) {
	s.Require().NotEmpty(p)
	s.Require().Equal(g.Start(), p[0])
	s.Require().Equal(g.Goal(), p[len(p)-1])
	for i := 1; i < len(p); i++ {
		s.Require().Equal(1, grid.Manhattan(p[i-1], p[i]), "non-adjacent step %v→%v", p[i-1], p[i])
		s.Require().True(g.Passable(p[i]), "path crosses wall at %v", p[i])
	}
}

// floodDistance is an independent hop-distance oracle: repeated relaxation
// until nothing changes.
func floodDistance(g *grid.Grid) (int, bool) {
	const inf = 1 << 30
	dist := make([]int, g.Len())
	for i := range dist {
		dist[i] = inf
	}
	dist[g.Index(g.Start())] = 0
	for changed := true; changed; {
		changed = false
		for i := range dist {
			at := g.Coordinate(i)
			if !g.Passable(at) || dist[i] == inf {
				continue
			}
			for _, n := range g.NeighborsOf(at) {
				j := g.Index(n)
				if g.Passable(n) && dist[i]+1 < dist[j] {
					dist[j] = dist[i] + 1
					changed = true
				}
			}
		}
	}
	d := dist[g.Index(g.Goal())]
	return d, d != inf
}

// TestConstructionErrors covers nil grids, bad algorithms and bad options.
func (s *SearchSuite) TestConstructionErrors() {
	_, err := search.NewBFS(nil)
	s.Require().ErrorIs(err, search.ErrNilGrid)

	g := s.mustGrid("S..", "...", "..G")
	_, err = search.New(g, search.Algorithm(9))
	s.Require().ErrorIs(err, search.ErrUnknownAlgorithm)

	_, err = search.NewAStar(g, search.WithHeuristic(nil))
	s.Require().ErrorIs(err, search.ErrOptionViolation)

	_, err = search.ParseAlgorithm("dijkstra")
	s.Require().ErrorIs(err, search.ErrUnknownAlgorithm)
	alg, err := search.ParseAlgorithm("a*")
	s.Require().NoError(err)
	s.Require().Equal(search.AStar, alg)
	s.Require().Equal("astar", alg.String())
}

// TestOpenGrid is the 5×5 no-wall scenario from (0,0) to (4,4).
func (s *SearchSuite) TestOpenGrid() {
	for _, alg := range []search.Algorithm{search.BFS, search.AStar} {
		g, err := grid.New(5, 5, grid.Coord{Row: 0, Col: 0}, grid.Coord{Row: 4, Col: 4})
		s.Require().NoError(err)

		_, res := s.run(g, alg)
		s.Require().True(res.Found, alg.String())
		s.Require().Equal(8, res.Path.Len(), alg.String())
		s.Require().Equal(8, res.Stats().PathLength)
		s.requireValidPath(g, res.Path)
		s.Require().LessOrEqual(res.Visited, 25)
		if alg == search.BFS {
			// every cell but the goal is expanded
			s.Require().Equal(24, res.Visited)
		}
	}
}

// TestForcedDetour is the walled row with a single gap at (2,2).
func (s *SearchSuite) TestForcedDetour() {
	layout := []string{
		"S....",
		".....",
		"##.##",
		".....",
		"G....",
	}
	_, bfs := s.run(s.mustGrid(layout...), search.BFS)
	_, astar := s.run(s.mustGrid(layout...), search.AStar)

	for _, res := range []search.Result{bfs, astar} {
		s.Require().True(res.Found)
		s.Require().Equal(8, res.Path.Len())
		s.Require().True(res.Path.Contains(grid.Coord{Row: 2, Col: 2}), "%s path %v", res.Algorithm, res.Path)
	}
}

// TestNoPath encloses the goal completely.
func (s *SearchSuite) TestNoPath() {
	layout := []string{
		"S....",
		".....",
		"...##",
		"...#G",
	}
	for _, alg := range []search.Algorithm{search.BFS, search.AStar} {
		g := s.mustGrid(layout...)
		events, res := s.run(g, alg)
		s.Require().False(res.Found)
		s.Require().Nil(res.Path)
		s.Require().Equal(0, res.Stats().PathLength)
		s.Require().Equal(16, res.Visited, alg.String())
		for _, e := range events {
			s.Require().NotEqual(grid.StatePath, e.State)
		}
	}
}

// TestEventShape checks which states each engine emits.
func (s *SearchSuite) TestEventShape() {
	layout := []string{
		"S..#.",
		".#...",
		"...#G",
	}
	for _, alg := range []search.Algorithm{search.BFS, search.AStar} {
		g := s.mustGrid(layout...)
		events, res := s.run(g, alg)

		counts := map[grid.State]int{}
		for _, e := range events {
			counts[e.State]++
			s.Require().True(g.Passable(e.At), "event on wall %v", e)
		}
		s.Require().Equal(res.Visited, counts[grid.StateVisited])
		s.Require().Equal(len(res.Path), counts[grid.StatePath])
		if alg == search.BFS {
			s.Require().Zero(counts[grid.StateFrontier])
		} else {
			s.Require().NotZero(counts[grid.StateFrontier])
		}

		// path events come last, in order
		tail := events[len(events)-len(res.Path):]
		for i, e := range tail {
			s.Require().Equal(grid.Event{At: res.Path[i], State: grid.StatePath}, e)
		}
	}
}

// TestKindsUntouched verifies searches never change the wall layout.
func (s *SearchSuite) TestKindsUntouched() {
	g := s.mustGrid(
		"S.#..",
		"..#..",
		"....G",
	)
	before := g.String()
	for _, alg := range []search.Algorithm{search.BFS, search.AStar} {
		s.run(g, alg)
		s.Require().Equal(before, g.String())
		s.Require().False(g.Cell(grid.Coord{Row: 0, Col: 2}).Visited, "wall annotated")
	}
}

// TestDeterministicReplay re-runs the same Search and a fresh one.
func (s *SearchSuite) TestDeterministicReplay() {
	g, err := maze.New(15, 21, maze.WithSeed(4))
	s.Require().NoError(err)
	for _, alg := range []search.Algorithm{search.BFS, search.AStar} {
		sr, err := search.New(g, alg)
		s.Require().NoError(err)

		var first, second []grid.Event
		for e := range sr.Steps() {
			first = append(first, e)
		}
		r1, _ := sr.Result()
		g.ResetSearchState()
		for e := range sr.Steps() {
			second = append(second, e)
		}
		r2, _ := sr.Result()

		s.Require().Equal(first, second)
		s.Require().Equal(r1, r2)

		third, r3 := s.run(g, alg)
		s.Require().Equal(first, third)
		s.Require().Equal(r1, r3)
	}
}

// TestWallEditBetweenRuns reuses one Search across a layout change.
func (s *SearchSuite) TestWallEditBetweenRuns() {
	g := s.mustGrid(
		"S.#.G",
		"..#..",
		".....",
	)
	sr, err := search.NewBFS(g)
	s.Require().NoError(err)
	res, err := sr.Run(context.Background())
	s.Require().NoError(err)
	s.Require().Equal(8, res.Path.Len())

	s.Require().NoError(g.ToggleWall(grid.Coord{Row: 2, Col: 2}))
	res, err = sr.Run(context.Background())
	s.Require().NoError(err)
	s.Require().False(res.Found)

	s.Require().NoError(g.ToggleWall(grid.Coord{Row: 0, Col: 2}))
	res, err = sr.Run(context.Background())
	s.Require().NoError(err)
	s.Require().Equal(4, res.Path.Len())
}

// TestEarlyBreak abandons a run mid-way, then completes one.
func (s *SearchSuite) TestEarlyBreak() {
	g, err := grid.New(9, 9, grid.Coord{}, grid.Coord{Row: 8, Col: 8})
	s.Require().NoError(err)
	for _, alg := range []search.Algorithm{search.BFS, search.AStar} {
		sr, err := search.New(g, alg)
		s.Require().NoError(err)

		n := 0
		for range sr.Steps() {
			if n++; n == 5 {
				break
			}
		}
		_, ok := sr.Result()
		s.Require().False(ok)

		res, err := sr.Run(context.Background())
		s.Require().NoError(err)
		s.Require().Equal(16, res.Path.Len())
		_, ok = sr.Result()
		s.Require().True(ok)
	}
}

// TestCancellation stops Run through the context.
func (s *SearchSuite) TestCancellation() {
	g, err := grid.New(30, 30, grid.Coord{}, grid.Coord{Row: 29, Col: 29})
	s.Require().NoError(err)
	sr, err := search.NewBFS(g)
	s.Require().NoError(err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = sr.Run(ctx)
	s.Require().True(errors.Is(err, context.Canceled))

	_, _, err = search.Compare(ctx, g)
	s.Require().ErrorIs(err, context.Canceled)
}

// TestAStarFocus shows A* expanding fewer cells than BFS when the
// heuristic is informative.
func (s *SearchSuite) TestAStarFocus() {
	g, err := grid.New(10, 10, grid.Coord{Row: 0, Col: 0}, grid.Coord{Row: 0, Col: 9})
	s.Require().NoError(err)

	bfs, astar, err := search.Compare(context.Background(), g)
	s.Require().NoError(err)
	s.Require().Equal(9, bfs.Path.Len())
	s.Require().Equal(9, astar.Path.Len())
	s.Require().Equal(9, astar.Visited, "only the top row is expanded")
	s.Require().Less(astar.Visited, bfs.Visited)
	s.Require().Equal(search.BFS, bfs.Algorithm)
	s.Require().Equal(search.AStar, astar.Algorithm)
}

// TestCustomHeuristic runs A* with a zero heuristic, which degrades to a
// uniform-cost search but stays optimal.
func (s *SearchSuite) TestCustomHeuristic() {
	g := s.mustGrid(
		"S...#....",
		".##.#.##.",
		".#..#..#.",
		".#.###.#.",
		"...#...#G",
	)
	zero := func(_, _ grid.Coord) int { return 0 }
	sr, err := search.NewAStar(g, search.WithHeuristic(zero))
	s.Require().NoError(err)
	res, err := sr.Run(context.Background())
	s.Require().NoError(err)

	want, ok := floodDistance(g)
	s.Require().Equal(ok, res.Found)
	if ok {
		s.Require().Equal(want, res.Path.Len())
	}
}

// TestOptimalityOnRandomGrids cross-checks both engines against an
// exhaustive flood fill on scattered obstacle fields.
func (s *SearchSuite) TestOptimalityOnRandomGrids() {
	sizes := [][2]int{{5, 5}, {6, 8}, {10, 10}}
	for _, sz := range sizes {
		for seed := int64(1); seed <= 40; seed++ {
			name := fmt.Sprintf("%dx%d/seed=%d", sz[0], sz[1], seed)
			g, err := grid.New(sz[0], sz[1], grid.Coord{}, grid.Coord{Row: sz[0] - 1, Col: sz[1] - 1})
			s.Require().NoError(err)
			s.Require().NoError(maze.Scatter(g, 0.3, maze.WithSeed(seed)))

			want, reachable := floodDistance(g)
			bfs, astar, err := search.Compare(context.Background(), g)
			s.Require().NoError(err, name)

			s.Require().Equal(reachable, bfs.Found, name)
			s.Require().Equal(reachable, astar.Found, name)
			s.Require().Equal(g.Connected(), reachable, name)
			if !reachable {
				continue
			}
			s.Require().Equal(want, bfs.Path.Len(), name)
			s.Require().Equal(want, astar.Path.Len(), name)
			s.requireValidPath(g, bfs.Path)
			s.requireValidPath(g, astar.Path)
		}
	}
}

// TestMazeSolve solves generated perfect mazes, where the path is unique.
func (s *SearchSuite) TestMazeSolve() {
	for seed := int64(1); seed <= 5; seed++ {
		g, err := maze.New(21, 31, maze.WithSeed(seed))
		s.Require().NoError(err)

		bfs, astar, err := search.Compare(context.Background(), g)
		s.Require().NoError(err)
		s.Require().True(bfs.Found)
		s.Require().Equal(bfs.Path, astar.Path, "perfect mazes have one simple path")
	}
}

// Entry point for running the suite.
func TestSearchSuite(t *testing.T) {
	suite.Run(t, new(SearchSuite))
}

// TestResultBeforeRun reports no result on a fresh Search.
func TestResultBeforeRun(t *testing.T) {
	g, err := grid.New(3, 3, grid.Coord{}, grid.Coord{Row: 2, Col: 2})
	require.NoError(t, err)
	sr, err := search.NewBFS(g)
	require.NoError(t, err)

	_, ok := sr.Result()
	require.False(t, ok)
	require.Equal(t, search.BFS, sr.Algorithm())
	require.Same(t, g, sr.Grid())
}
