// Package search runs breadth-first search and A* over a grid.Grid and
// exposes each run as a lazy stream of cell-state events followed by a
// terminal Result.
package search

import (
	"context"
	"iter"

	"github.com/katalvlaran/gridpath/grid"
)

// Search binds one algorithm to one grid. It searches from g.Start() to
// g.Goal() and only ever writes search annotations, never cell kinds, so
// walls may be edited between runs.
//
// A Search is not safe for concurrent use, and two Searches over the same
// grid must not run at once; use Compare or grid.Clone for that.
type Search struct {
	g    *grid.Grid
	alg  Algorithm
	opts Options

	last Result
	done bool
}

// New validates the arguments and returns a Search for alg.
// Returns ErrNilGrid, ErrUnknownAlgorithm or ErrOptionViolation.
func New(g *grid.Grid, alg Algorithm, opts ...Option) (*Search, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if alg != BFS && alg != AStar {
		return nil, ErrUnknownAlgorithm
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	return &Search{g: g, alg: alg, opts: o}, nil
}

// NewBFS is New(g, BFS, opts...).
func NewBFS(g *grid.Grid, opts ...Option) (*Search, error) {
	return New(g, BFS, opts...)
}

// NewAStar is New(g, AStar, opts...).
func NewAStar(g *grid.Grid, opts ...Option) (*Search, error) {
	return New(g, AStar, opts...)
}

// Algorithm returns the strategy this Search runs.
func (s *Search) Algorithm() Algorithm { return s.alg }

// Grid returns the searched grid.
func (s *Search) Grid() *grid.Grid { return s.g }

// Steps returns the event stream of a fresh run. Every range over it
// resets the grid's search state first, so the stream is restartable and
// replays identically while the layout is unchanged.
//
// Events: StateVisited when a cell is expanded, StateFrontier when A*
// discovers or improves a cell, then StatePath for each path cell from
// Start to Goal. The consumer may stop at any point; nothing needs
// cleaning up, and Result reports the outcome once the search itself
// (not necessarily the path events) has finished.
func (s *Search) Steps() iter.Seq[grid.Event] {
	return func(yield func(grid.Event) bool) {
		s.done = false
		s.g.ResetSearchState()

		var (
			res Result
			ok  bool
		)
		switch s.alg {
		case AStar:
			res, ok = s.astar(yield)
		default:
			res, ok = s.bfs(yield)
		}
		if !ok {
			return
		}
		s.last, s.done = res, true

		for _, at := range res.Path {
			if !yield(grid.Event{At: at, State: grid.StatePath}) {
				return
			}
		}
	}
}

// Result returns the outcome of the latest run whose search phase
// completed. ok is false before any such run or after an abandoned one.
func (s *Search) Result() (res Result, ok bool) {
	return s.last, s.done
}

// Run drains Steps, checking ctx between events, and returns the Result.
// Returns ctx.Err() if the context ends first.
func (s *Search) Run(ctx context.Context) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	for range s.Steps() {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
	}
	return s.last, nil
}
