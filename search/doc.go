// Package search finds shortest Start→Goal paths on a grid.Grid with two
// interchangeable strategies and streams their progress as events.
//
// What
//
//   - BFS: unweighted breadth-first search. Returns a path with the minimum
//     number of steps.
//   - AStar: A* ordered by Distance + Heuristic with stable tie-breaking
//     by insertion order. The default Manhattan heuristic is admissible and
//     consistent for 4-directional unit steps, so A* returns paths as short
//     as BFS's while usually expanding fewer cells.
//   - Search.Steps yields grid.Event values lazily: StateVisited on
//     expansion, StateFrontier on A* discovery, StatePath for the final
//     route. A renderer drains it at its own pace; pacing is never done here.
//   - Search.Run drains a run under a context; Compare runs both strategies
//     concurrently on clones.
//
// Determinism
//
//	Neighbors are expanded in grid order (up, down, left, right) and A*
//	breaks cost ties by insertion order, so re-running on an unchanged
//	layout reproduces the same events and path.
//
// No path
//
//	An unreachable goal is a normal outcome: Result.Found is false and
//	Result.Path is nil. It is never reported as an error.
//
// Complexity (N = Rows×Cols)
//
//   - BFS:   O(N) time and memory.
//   - AStar: O(N log N) time, O(N) memory.
//
// Usage
//
//	s, err := search.NewAStar(g)
//	if err != nil {
//		// ErrNilGrid or ErrOptionViolation
//	}
//	for e := range s.Steps() {
//		render(e) // caller decides the frame delay
//	}
//	res, _ := s.Result()
//	fmt.Println(res.Found, res.Stats().PathLength)
package search
