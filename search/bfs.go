package search

import "github.com/katalvlaran/gridpath/grid"

// bfs explores cells in non-decreasing hop distance from Start.
//
// Cells are marked Visited when enqueued, so none is queued twice, while
// the StateVisited event fires when a cell is dequeued and expanded.
// Neighbors are enqueued in grid order (up, down, left, right), which
// makes the visitation sequence reproducible.
//
// The bool result is false when the consumer stopped pulling events.
// Complexity: O(W×H) time and memory.
func (s *Search) bfs(yield func(grid.Event) bool) (Result, bool) {
	g := s.g
	res := Result{Algorithm: BFS}
	start, goal := g.Start(), g.Goal()

	sc := g.Cell(start)
	sc.Visited = true
	sc.Distance = 0

	queue := make([]grid.Coord, 1, g.Len())
	queue[0] = start
	nbrs := make([]grid.Coord, 0, 4)

	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		if cur == goal {
			res.Found = true
			res.Path = g.PathTo(goal)
			return res, true
		}

		res.Visited++
		if !yield(grid.Event{At: cur, State: grid.StateVisited}) {
			return res, false
		}

		cc := g.Cell(cur)
		nbrs = g.AppendNeighbors(nbrs[:0], cur)
		for _, n := range nbrs {
			nc := g.Cell(n)
			if nc.Visited || nc.Kind() == grid.Wall {
				continue
			}
			nc.Visited = true
			nc.Distance = cc.Distance + 1
			nc.Predecessor = cur
			queue = append(queue, n)
		}
	}

	// frontier exhausted: no path
	return res, true
}
