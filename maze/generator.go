package maze

import (
	"fmt"
	"iter"
	"math/rand"

	"github.com/katalvlaran/gridpath/grid"
)

// jumps reaches lattice neighbors two cells away: up, down, left, right.
var jumps = [4]grid.Coord{{Row: -2}, {Row: 2}, {Col: -2}, {Col: 2}}

// Generate validates g and from, fills every non-endpoint cell with Wall
// and returns the carve sequence. Nothing is carved until the sequence is
// ranged over; each iteration refills the board and carves from scratch.
// Breaking out early leaves a partially carved grid and is always safe.
//
// Requirements: odd Rows and Cols, from on the odd interior lattice, and
// Start and Goal on that lattice too so they end up connected.
func Generate(g *grid.Grid, from grid.Coord, opts ...Option) (iter.Seq[grid.Event], error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if err = validate(g, from); err != nil {
		return nil, err
	}
	fill(g)

	return func(yield func(grid.Event) bool) {
		c := &carver{
			g:      g,
			rng:    o.source(),
			head:   o.HeadTracking,
			carved: make([]bool, g.Len()),
			yield:  yield,
		}
		c.run(from)
	}, nil
}

// Carve runs Generate to completion and returns the number of events.
func Carve(g *grid.Grid, from grid.Coord, opts ...Option) (int, error) {
	seq, err := Generate(g, from, opts...)
	if err != nil {
		return 0, err
	}
	n := 0
	for range seq {
		n++
	}
	return n, nil
}

// New builds a rows×cols grid with Start at (1,1) and Goal at
// (rows-2, cols-2), and carves a maze from Start.
func New(rows, cols int, opts ...Option) (*grid.Grid, error) {
	g, err := grid.New(rows, cols, grid.Coord{Row: 1, Col: 1}, grid.Coord{Row: rows - 2, Col: cols - 2})
	if err != nil {
		return nil, err
	}
	if _, err = Carve(g, g.Start(), opts...); err != nil {
		return nil, err
	}
	return g, nil
}

func validate(g *grid.Grid, from grid.Coord) error {
	if g.Rows()%2 == 0 || g.Cols()%2 == 0 {
		return fmt.Errorf("%w: maze needs odd dimensions, got %dx%d", grid.ErrInvalidDimension, g.Rows(), g.Cols())
	}
	if !onLattice(g, from) {
		return fmt.Errorf("%w: %v", ErrInvalidOrigin, from)
	}
	if !onLattice(g, g.Start()) {
		return fmt.Errorf("%w: start %v is not on odd interior coordinates", grid.ErrInvalidEndpoint, g.Start())
	}
	if !onLattice(g, g.Goal()) {
		return fmt.Errorf("%w: goal %v is not on odd interior coordinates", grid.ErrInvalidEndpoint, g.Goal())
	}
	return nil
}

// onLattice reports whether c is an odd interior coordinate.
func onLattice(g *grid.Grid, c grid.Coord) bool {
	return c.Row > 0 && c.Row < g.Rows()-1 && c.Col > 0 && c.Col < g.Cols()-1 &&
		c.Row%2 == 1 && c.Col%2 == 1
}

// fill walls every cell except Start and Goal.
func fill(g *grid.Grid) {
	for i := 0; i < g.Len(); i++ {
		at := g.Coordinate(i)
		if k := g.Kind(at); k == grid.Empty {
			_ = g.SetWall(at, true)
		}
	}
}

// carver holds the mutable state of one carve run.
type carver struct {
	g      *grid.Grid
	rng    *rand.Rand
	head   bool
	carved []bool
	yield  func(grid.Event) bool
}

// run is the recursive backtracker expressed as a loop over an explicit
// stack. It returns early when the consumer stops pulling events.
func (c *carver) run(from grid.Coord) {
	fill(c.g)
	if !c.carve(from) {
		return
	}
	stack := []grid.Coord{from}
	cands := make([]grid.Coord, 0, 4)

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		if c.head && !c.emit(cur, grid.StateCurrent) {
			return
		}

		cands = cands[:0]
		for _, d := range jumps {
			n := grid.Coord{Row: cur.Row + d.Row, Col: cur.Col + d.Col}
			if onLattice(c.g, n) && !c.carved[c.g.Index(n)] {
				cands = append(cands, n)
			}
		}

		if c.head && !c.emit(cur, grid.StateEmpty) {
			return
		}
		if len(cands) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		next := cands[c.rng.Intn(len(cands))]
		mid := grid.Coord{Row: (cur.Row + next.Row) / 2, Col: (cur.Col + next.Col) / 2}
		if !c.carve(mid) || !c.carve(next) {
			return
		}
		stack = append(stack, next)
	}
}

// carve opens at and reports whether the consumer wants more events.
// Endpoints are marked carved but keep their kind and emit nothing.
func (c *carver) carve(at grid.Coord) bool {
	c.carved[c.g.Index(at)] = true
	if k := c.g.Kind(at); k == grid.Start || k == grid.Goal {
		return true
	}
	_ = c.g.SetWall(at, false)
	return c.yield(grid.Event{At: at, State: grid.StateEmpty})
}

// emit yields a head-tracking event, skipping endpoints.
func (c *carver) emit(at grid.Coord, s grid.State) bool {
	if k := c.g.Kind(at); k == grid.Start || k == grid.Goal {
		return true
	}
	return c.yield(grid.Event{At: at, State: s})
}
