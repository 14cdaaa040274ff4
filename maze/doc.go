// Package maze carves perfect mazes into a grid.Grid with a randomized
// recursive backtracker and seeds random obstacle fields.
//
// What:
//
//   - Generate fills every non-endpoint cell with Wall, then returns a lazy
//     iter.Seq of carve events. Carving runs depth-first over the odd
//     interior lattice with an explicit stack: peek the head, pick a random
//     uncarved lattice cell two steps away, open it and the wall between,
//     push; with no candidates, pop.
//   - Carve drains the sequence eagerly; New builds and carves a grid with
//     Start at (1,1) and Goal at (rows-2, cols-2).
//   - Scatter turns each non-endpoint cell into a Wall with a given
//     probability.
//   - Verify checks that passable cells form a single tree using a
//     disjoint-set forest.
//
// Why:
//
//   - Every lattice cell is pushed exactly once, so the result is a perfect
//     maze: connected, acyclic, one simple path between any two cells.
//   - The explicit stack bounds memory on large grids and lets a renderer
//     step through the carve order.
//
// Determinism:
//
//	Neighbor choice is the only random step. WithSeed gives a fresh source
//	per iteration, so ranging over the same sequence twice replays the same
//	maze. WithRand shares the caller's source across iterations.
//
// Complexity:
//
//   - Generate/Carve: O(W×H) time, O(W×H) memory for the carved set and stack.
//   - Verify:         O(W×H·α(W×H)).
//
// Errors:
//
//   - grid.ErrInvalidDimension: even row or column count.
//   - grid.ErrInvalidEndpoint: Start or Goal off the odd lattice.
//   - ErrInvalidOrigin, ErrInvalidDensity, ErrOptionViolation, ErrNilGrid.
//   - ErrCycle, ErrDisconnected: returned by Verify.
package maze
