package maze

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// Scatter re-rolls every non-endpoint cell: it becomes a Wall with
// probability density and Empty otherwise. Unlike Generate it works on any
// grid size and gives no connectivity guarantee; pair it with
// grid.Connected or a search to learn whether Goal is still reachable.
//
// Returns ErrInvalidDensity when density is outside [0,1].
// Complexity: O(W×H).
func Scatter(g *grid.Grid, density float64, opts ...Option) error {
	if g == nil {
		return ErrNilGrid
	}
	if density < 0 || density > 1 {
		return fmt.Errorf("%w: %g", ErrInvalidDensity, density)
	}
	o, err := buildOptions(opts)
	if err != nil {
		return err
	}
	rng := o.source()
	for i := 0; i < g.Len(); i++ {
		at := g.Coordinate(i)
		if k := g.Kind(at); k == grid.Start || k == grid.Goal {
			continue
		}
		_ = g.SetWall(at, rng.Float64() < density)
	}
	return nil
}
