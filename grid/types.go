package grid

import (
	"fmt"
	"math"
)

// Unreached is the Distance of a cell no search has reached yet.
const Unreached = math.MaxInt

// Coord addresses a cell by row and column.
type Coord struct {
	Row, Col int
}

// NoCoord is the predecessor of cells with no predecessor.
var NoCoord = Coord{Row: -1, Col: -1}

// String formats the coordinate as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Manhattan returns |a.Row-b.Row| + |a.Col-b.Col|.
// Admissible and consistent for 4-directional unit-cost movement.
func Manhattan(a, b Coord) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Kind is the structural classification of a cell.
type Kind uint8

const (
	// Empty cells are passable.
	Empty Kind = iota
	// Wall cells are impassable.
	Wall
	// Start is the unique search origin; always passable.
	Start
	// Goal is the unique search target; always passable.
	Goal
)

// String returns the lower-case kind name.
func (k Kind) String() string {
	switch k {
	case Empty:
		return "empty"
	case Wall:
		return "wall"
	case Start:
		return "start"
	case Goal:
		return "goal"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// State is the visual state carried by an Event. It overlays Kind for
// renderers and is never stored on the grid.
type State uint8

const (
	StateEmpty State = iota
	StateWall
	StateVisited
	StateFrontier
	StatePath
	// StateCurrent marks the head of the maze carving stack.
	StateCurrent
)

// String returns the lower-case state name.
func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateWall:
		return "wall"
	case StateVisited:
		return "visited"
	case StateFrontier:
		return "frontier"
	case StatePath:
		return "path"
	case StateCurrent:
		return "current"
	default:
		return fmt.Sprintf("state(%d)", uint8(s))
	}
}

// Event reports that the cell At took on State.
// Maze generation and searches emit ordered streams of events that a
// renderer drains at its own pace.
type Event struct {
	At    Coord
	State State
}

// String formats the event as "(row,col)=state".
func (e Event) String() string {
	return e.At.String() + "=" + e.State.String()
}

// Cell is a single grid cell. Its coordinates and kind are owned by the
// Grid; the exported fields are transient search annotations which the
// search engines rewrite on every run.
type Cell struct {
	coord Coord
	kind  Kind

	Visited     bool  // discovered during the current run
	Distance    int   // hop count from start, Unreached if never reached
	Heuristic   int   // estimated remaining cost (A* only)
	Predecessor Coord // cell this one was reached from, NoCoord if none
}

// Coord returns the cell position.
func (c *Cell) Coord() Coord { return c.coord }

// Kind returns the cell classification.
func (c *Cell) Kind() Kind { return c.kind }

// TotalCost returns Distance + Heuristic, saturating at Unreached.
func (c *Cell) TotalCost() int {
	if c.Distance == Unreached {
		return Unreached
	}
	return c.Distance + c.Heuristic
}

// reset restores the search annotations to their initial values.
func (c *Cell) reset() {
	c.Visited = false
	c.Distance = Unreached
	c.Heuristic = 0
	c.Predecessor = NoCoord
}

// Path is an ordered sequence of coordinates from Start to Goal inclusive.
// A nil Path means no path exists.
type Path []Coord

// Len returns the number of steps (edges) along the path.
func (p Path) Len() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

// Contains reports whether c lies on the path.
func (p Path) Contains(c Coord) bool {
	for _, q := range p {
		if q == c {
			return true
		}
	}
	return false
}
