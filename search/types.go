package search

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors for search construction.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("search: grid is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrUnknownAlgorithm is returned by New for an unsupported Algorithm.
	ErrUnknownAlgorithm = errors.New("search: unknown algorithm")
)

// Algorithm selects a search strategy.
type Algorithm uint8

const (
	// BFS is unweighted breadth-first search.
	BFS Algorithm = iota
	// AStar is A* with a pluggable heuristic (Manhattan by default).
	AStar
)

// String returns "bfs" or "astar".
func (a Algorithm) String() string {
	switch a {
	case BFS:
		return "bfs"
	case AStar:
		return "astar"
	default:
		return fmt.Sprintf("algorithm(%d)", uint8(a))
	}
}

// ParseAlgorithm maps "bfs" and "astar" (or "a*") to an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch name {
	case "bfs", "BFS":
		return BFS, nil
	case "astar", "a*", "AStar", "A*":
		return AStar, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
}

// Heuristic estimates the remaining cost from a to b. A* only returns
// shortest paths when it never overestimates and is consistent.
type Heuristic func(a, b grid.Coord) int

// Option configures a Search via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation by New.
type Option func(*Options)

// Options holds search parameters.
type Options struct {
	// Heuristic is used by A*; ignored by BFS.
	Heuristic Heuristic

	err error
}

// DefaultOptions returns Options using grid.Manhattan.
func DefaultOptions() Options {
	return Options{Heuristic: grid.Manhattan}
}

// WithHeuristic replaces the A* heuristic. nil is an option violation.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h == nil {
			o.err = fmt.Errorf("%w: nil heuristic", ErrOptionViolation)
			return
		}
		o.Heuristic = h
	}
}

// Result is the outcome of one completed search run.
//
//   - Found: whether Goal was reached. false is the "no path" outcome,
//     not an error.
//   - Path: Start..Goal inclusive, nil when !Found.
//   - Visited: number of cells expanded (each produced one StateVisited
//     event). Goal itself is never expanded.
type Result struct {
	Algorithm Algorithm
	Found     bool
	Path      grid.Path
	Visited   int
}

// Stats is the summary shown next to a finished run.
type Stats struct {
	NodesVisited int
	PathLength   int // steps from Start to Goal, 0 when no path
}

// Stats summarises r.
func (r Result) Stats() Stats {
	return Stats{NodesVisited: r.Visited, PathLength: r.Path.Len()}
}
