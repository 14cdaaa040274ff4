package grid

import "github.com/zyedidia/generic/mapset"

// Reachable returns every passable cell connected to from by orthogonal
// steps, from included. An impassable or out-of-bounds origin yields an
// empty set. Search annotations are left untouched.
//
// Time:   O(rows×cols).
// Memory: O(rows×cols) for the set and queue.
func (g *Grid) Reachable(from Coord) mapset.Set[Coord] {
	seen := mapset.New[Coord]()
	if !g.Passable(from) {
		return seen
	}
	seen.Put(from)
	queue := []Coord{from}
	nbrs := make([]Coord, 0, 4)
	for qi := 0; qi < len(queue); qi++ {
		nbrs = g.AppendNeighbors(nbrs[:0], queue[qi])
		for _, n := range nbrs {
			if !g.Passable(n) || seen.Has(n) {
				continue
			}
			seen.Put(n)
			queue = append(queue, n)
		}
	}
	return seen
}

// Connected reports whether Goal is reachable from Start.
func (g *Grid) Connected() bool {
	return g.Reachable(g.start).Has(g.goal)
}

// CountKind returns how many cells have kind k.
func (g *Grid) CountKind(k Kind) int {
	n := 0
	for i := range g.cells {
		if g.cells[i].kind == k {
			n++
		}
	}
	return n
}
