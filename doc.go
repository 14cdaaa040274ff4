// Package gridpath is an in-process engine for grid pathfinding and maze
// generation: build a board, carve or scatter walls, then watch BFS and A*
// solve it one cell-state event at a time.
//
// 🚀 What is gridpath?
//
//	A small, deterministic library that brings together:
//		• Grid model: rectangular boards, walls, a Start and a Goal cell
//		• Maze generation: seeded recursive backtracker, random obstacle fields
//		• Search: breadth-first search and A* with a Manhattan heuristic
//		• Lazy event streams: range over each run and stop whenever you like
//
// ✨ Why gridpath?
//
//   - Reproducible – every random choice flows from an explicit seed
//   - Visualiser-friendly – engines emit events; pacing and drawing stay with you
//   - Restartable – ranging over a stream again replays the run from scratch
//
// Packages:
//
//	grid/         — Grid, Coord, Kind, State, Event, reachability, ASCII rendering
//	maze/         — Generate/Carve/New (perfect mazes), Scatter, Verify
//	search/       — BFS and A* engines, Search runner, Compare
//	config/       — GRIDPATH_* environment and .env settings for the CLI
//	cmd/gridpath/ — command-line demo
//
// Quick ASCII example (S start, G goal, # wall, * path):
//
//	S#***
//	*#*#*
//	***#G
//
//	go run github.com/katalvlaran/gridpath/cmd/gridpath -algorithm both -delay 20ms
package gridpath
