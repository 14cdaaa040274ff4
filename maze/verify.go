package maze

import (
	"fmt"

	"github.com/spakin/disjoint"

	"github.com/katalvlaran/gridpath/grid"
)

// Verify reports whether the passable cells of g form a perfect maze: one
// connected component with no cycles. Each orthogonal pair of passable
// cells is one edge; joining two cells that already share a set closes a
// loop (ErrCycle), and more than one set at the end means unreachable
// pockets (ErrDisconnected).
//
// Time:   O(W×H·α(W×H)).
// Memory: O(W×H) for the disjoint-set forest.
func Verify(g *grid.Grid) error {
	if g == nil {
		return ErrNilGrid
	}
	elems := make([]*disjoint.Element, g.Len())
	sets := 0
	for i := range elems {
		if g.Passable(g.Coordinate(i)) {
			elems[i] = disjoint.NewElement()
			sets++
		}
	}

	// Only look right and down so each edge is seen once.
	for i, e := range elems {
		if e == nil {
			continue
		}
		at := g.Coordinate(i)
		for _, n := range [2]grid.Coord{{Row: at.Row, Col: at.Col + 1}, {Row: at.Row + 1, Col: at.Col}} {
			if !g.Passable(n) {
				continue
			}
			f := elems[g.Index(n)]
			if e.Find() == f.Find() {
				return fmt.Errorf("%w: closed by edge %v-%v", ErrCycle, at, n)
			}
			disjoint.Union(e, f)
			sets--
		}
	}

	if sets > 1 {
		return fmt.Errorf("%w: %d components", ErrDisconnected, sets)
	}
	return nil
}

// IsPerfect reports whether Verify(g) succeeds.
func IsPerfect(g *grid.Grid) bool {
	return Verify(g) == nil
}
