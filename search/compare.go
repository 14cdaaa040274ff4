package search

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gridpath/grid"
)

// Compare runs BFS and A* side by side on independent clones of g and
// returns both results. g itself is not modified. The first error, such
// as a cancelled ctx, cancels the other run and is returned.
func Compare(ctx context.Context, g *grid.Grid, opts ...Option) (bfs, astar Result, err error) {
	if g == nil {
		return Result{}, Result{}, ErrNilGrid
	}
	algs := [2]Algorithm{BFS, AStar}
	var runs [2]*Search
	for i, alg := range algs {
		if runs[i], err = New(g.Clone(), alg, opts...); err != nil {
			return Result{}, Result{}, err
		}
	}

	var out [2]Result
	eg, ctx := errgroup.WithContext(ctx)
	for i, s := range runs {
		eg.Go(func() error {
			res, err := s.Run(ctx)
			out[i] = res
			return err
		})
	}
	if err = eg.Wait(); err != nil {
		return Result{}, Result{}, err
	}
	return out[0], out[1], nil
}
