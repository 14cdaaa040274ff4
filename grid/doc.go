// Package grid models a rectangular board of cells as the shared substrate
// for maze generation and path search.
//
// What:
//
//   - Grid holds Rows×Cols cells in a dense row-major slice.
//   - Each Cell has an immutable Coord, a Kind (Empty, Wall, Start, Goal)
//     and transient search annotations (Visited, Distance, Heuristic,
//     Predecessor).
//   - Exactly one Start and one Goal exist and neither can become a Wall.
//   - Event and State describe the cell-state changes that generators and
//     searches stream to a renderer.
//
// Why:
//
//   - Kind is a closed enum and only Grid methods change it, so illegal
//     combinations such as a walled Start cannot be expressed.
//   - Search engines write annotations only; wall layouts survive between
//     runs and ResetSearchState prepares the next one.
//
// Complexity:
//
//   - New, FromRows, ResetSearchState, Clone: O(W×H) time and memory.
//   - NeighborsOf, ToggleWall, SetWall, Cell: O(1).
//   - PathTo: O(L) for a path of L cells.
//   - Reachable: O(W×H).
//
// Errors:
//
//   - ErrInvalidDimension: fewer than MinDimension rows or columns, ragged layout.
//   - ErrInvalidEndpoint: start/goal out of bounds, coincident, missing or repeated.
//   - ErrIllegalMutation: wall edit on Start or Goal.
//   - ErrOutOfBounds: wall edit outside the grid.
//   - ErrInvalidLayout: unknown glyph passed to FromRows.
package grid
