package search

import (
	"container/heap"

	"github.com/katalvlaran/gridpath/grid"
)

// astar expands cells in ascending TotalCost (Distance + Heuristic), ties
// going to the cell inserted first.
//
// Behavior:
//  1. Seed the open set with Start (Distance 0).
//  2. Pop the cheapest cell; stop if it is Goal.
//  3. Close it and emit StateVisited.
//  4. For every non-wall, non-closed neighbor whose tentative distance
//     beats the recorded one (or that is undiscovered), update its
//     annotations, push or re-prioritise it, and emit StateFrontier.
//
// Closed cells are never reopened. With a consistent heuristic such as
// Manhattan distance on a unit-cost grid, a closed cell's distance is
// already optimal.
//
// Complexity: O(W×H·log(W×H)) time, O(W×H) memory.
func (s *Search) astar(yield func(grid.Event) bool) (Result, bool) {
	g := s.g
	h := s.opts.Heuristic
	res := Result{Algorithm: AStar}
	start, goal := g.Start(), g.Goal()

	items := make([]*openItem, g.Len()) // nil until discovered
	pq := make(openQueue, 0, 16)
	seq := 0
	push := func(at grid.Coord, cost int) {
		it := &openItem{at: at, cost: cost, seq: seq}
		seq++
		items[g.Index(at)] = it
		heap.Push(&pq, it)
	}

	sc := g.Cell(start)
	sc.Visited = true
	sc.Distance = 0
	sc.Heuristic = h(start, goal)
	push(start, sc.TotalCost())

	nbrs := make([]grid.Coord, 0, 4)
	for pq.Len() > 0 {
		it := heap.Pop(&pq).(*openItem)
		cur := it.at
		if cur == goal {
			res.Found = true
			res.Path = g.PathTo(goal)
			return res, true
		}

		it.closed = true
		res.Visited++
		if !yield(grid.Event{At: cur, State: grid.StateVisited}) {
			return res, false
		}

		cc := g.Cell(cur)
		nbrs = g.AppendNeighbors(nbrs[:0], cur)
		for _, n := range nbrs {
			nc := g.Cell(n)
			if nc.Kind() == grid.Wall {
				continue
			}
			nit := items[g.Index(n)]
			if nit != nil && nit.closed {
				continue
			}
			tentative := cc.Distance + 1
			if nit != nil && tentative >= nc.Distance {
				continue
			}

			nc.Visited = true
			nc.Distance = tentative
			nc.Heuristic = h(n, goal)
			nc.Predecessor = cur
			if nit == nil {
				push(n, nc.TotalCost())
			} else {
				nit.cost = nc.TotalCost()
				heap.Fix(&pq, nit.index)
			}
			if !yield(grid.Event{At: n, State: grid.StateFrontier}) {
				return res, false
			}
		}
	}

	// open set exhausted: no path
	return res, true
}
