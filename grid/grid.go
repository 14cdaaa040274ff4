// Package grid provides a dense 2D cell matrix with typed cells and
// transient search annotations. It supports:
//
//   - Construction from dimensions and endpoints, or from a textual layout
//   - Deterministic 4-neighbor enumeration (up, down, left, right)
//   - Wall editing that can never touch Start or Goal
//   - Resetting search annotations between runs
//   - Predecessor-chain path reconstruction
//
// Cells are addressed by Coord and stored row-major.
package grid

import (
	"fmt"
	"strings"
)

// MinDimension is the smallest accepted number of rows or columns.
const MinDimension = 3

// neighborOffsets fixes the neighbor order: up, down, left, right.
var neighborOffsets = [4]Coord{{Row: -1}, {Row: 1}, {Col: -1}, {Col: 1}}

// Grid is a Rows×Cols matrix of cells with exactly one Start and one Goal.
// Dimensions are fixed for its lifetime. A Grid is not safe for concurrent
// use; Clone it to run searches side by side.
type Grid struct {
	rows, cols  int
	cells       []Cell
	start, goal Coord
}

// New builds an all-empty rows×cols grid with the given endpoints.
// Returns ErrInvalidDimension if rows or cols < MinDimension, and
// ErrInvalidEndpoint if an endpoint is out of bounds or both coincide.
// Complexity: O(rows×cols).
func New(rows, cols int, start, goal Coord) (*Grid, error) {
	if rows < MinDimension || cols < MinDimension {
		return nil, fmt.Errorf("%w: %dx%d, need at least %dx%d", ErrInvalidDimension, rows, cols, MinDimension, MinDimension)
	}
	g := alloc(rows, cols)
	if !g.InBounds(start) {
		return nil, fmt.Errorf("%w: start %v outside %dx%d", ErrInvalidEndpoint, start, rows, cols)
	}
	if !g.InBounds(goal) {
		return nil, fmt.Errorf("%w: goal %v outside %dx%d", ErrInvalidEndpoint, goal, rows, cols)
	}
	if start == goal {
		return nil, fmt.Errorf("%w: start and goal coincide at %v", ErrInvalidEndpoint, start)
	}
	g.place(start, Start)
	g.place(goal, Goal)

	return g, nil
}

// FromRows builds a grid from a textual layout, one string per row:
//
//	'#' wall   '.' empty   'S' start   'G' goal
//
// Returns ErrInvalidDimension for short or ragged layouts,
// ErrInvalidLayout for unknown glyphs and ErrInvalidEndpoint when Start or
// Goal is missing or repeated.
func FromRows(layout []string) (*Grid, error) {
	if len(layout) < MinDimension || len(layout[0]) < MinDimension {
		return nil, fmt.Errorf("%w: layout smaller than %dx%d", ErrInvalidDimension, MinDimension, MinDimension)
	}
	rows, cols := len(layout), len(layout[0])
	g := alloc(rows, cols)
	starts, goals := 0, 0
	for r, line := range layout {
		if len(line) != cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrInvalidDimension, r, len(line), cols)
		}
		for c := 0; c < cols; c++ {
			at := Coord{Row: r, Col: c}
			switch line[c] {
			case '.':
			case '#':
				g.cells[g.Index(at)].kind = Wall
			case 'S':
				g.place(at, Start)
				starts++
			case 'G':
				g.place(at, Goal)
				goals++
			default:
				return nil, fmt.Errorf("%w: %q at %v", ErrInvalidLayout, line[c], at)
			}
		}
	}
	if starts != 1 || goals != 1 {
		return nil, fmt.Errorf("%w: layout has %d start and %d goal cells, want one of each", ErrInvalidEndpoint, starts, goals)
	}

	return g, nil
}

// alloc returns an all-empty grid with fresh annotations.
func alloc(rows, cols int) *Grid {
	g := &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]Cell, rows*cols),
		start: NoCoord,
		goal:  NoCoord,
	}
	for i := range g.cells {
		g.cells[i].coord = g.Coordinate(i)
		g.cells[i].reset()
	}
	return g
}

func (g *Grid) place(at Coord, k Kind) {
	g.cells[g.Index(at)].kind = k
	if k == Start {
		g.start = at
	} else {
		g.goal = at
	}
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Start returns the start coordinate.
func (g *Grid) Start() Coord { return g.start }

// Goal returns the goal coordinate.
func (g *Grid) Goal() Coord { return g.goal }

// Len returns Rows×Cols.
func (g *Grid) Len() int { return len(g.cells) }

// InBounds reports whether c lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// Index maps c to its row-major index: Row*Cols + Col.
// The caller must ensure c is in bounds.
func (g *Grid) Index(c Coord) int {
	return c.Row*g.cols + c.Col
}

// Coordinate converts a row-major index back to a Coord.
func (g *Grid) Coordinate(idx int) Coord {
	return Coord{Row: idx / g.cols, Col: idx % g.cols}
}

// Cell returns the cell at c, or nil when c is out of bounds.
func (g *Grid) Cell(c Coord) *Cell {
	if !g.InBounds(c) {
		return nil
	}
	return &g.cells[g.Index(c)]
}

// Kind returns the kind of the cell at c. Out-of-bounds coordinates
// report Wall.
func (g *Grid) Kind(c Coord) Kind {
	if !g.InBounds(c) {
		return Wall
	}
	return g.cells[g.Index(c)].kind
}

// Passable reports whether c is in bounds and not a wall.
func (g *Grid) Passable(c Coord) bool {
	return g.Kind(c) != Wall
}

// NeighborsOf returns the in-bounds orthogonal neighbors of c in the
// order up, down, left, right. Walls are included.
func (g *Grid) NeighborsOf(c Coord) []Coord {
	return g.AppendNeighbors(make([]Coord, 0, 4), c)
}

// AppendNeighbors appends the neighbors of c to dst in NeighborsOf order.
// Search loops reuse dst to avoid an allocation per expansion.
func (g *Grid) AppendNeighbors(dst []Coord, c Coord) []Coord {
	for _, d := range neighborOffsets {
		n := Coord{Row: c.Row + d.Row, Col: c.Col + d.Col}
		if g.InBounds(n) {
			dst = append(dst, n)
		}
	}
	return dst
}

// ToggleWall flips the cell at c between Empty and Wall.
// Returns ErrOutOfBounds or ErrIllegalMutation for Start and Goal.
func (g *Grid) ToggleWall(c Coord) error {
	if err := g.checkMutable(c); err != nil {
		return err
	}
	cell := &g.cells[g.Index(c)]
	if cell.kind == Wall {
		cell.kind = Empty
	} else {
		cell.kind = Wall
	}
	return nil
}

// SetWall makes the cell at c a wall (wall=true) or empty (wall=false).
// It is idempotent and shares ToggleWall's guards.
func (g *Grid) SetWall(c Coord, wall bool) error {
	if err := g.checkMutable(c); err != nil {
		return err
	}
	if wall {
		g.cells[g.Index(c)].kind = Wall
	} else {
		g.cells[g.Index(c)].kind = Empty
	}
	return nil
}

func (g *Grid) checkMutable(c Coord) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %v in %dx%d", ErrOutOfBounds, c, g.rows, g.cols)
	}
	if k := g.cells[g.Index(c)].kind; k == Start || k == Goal {
		return fmt.Errorf("%w: %v is %s", ErrIllegalMutation, c, k)
	}
	return nil
}

// ResetSearchState clears Visited, Distance, Heuristic and Predecessor on
// every cell without altering any kind. Searches call it before each run.
// Complexity: O(rows×cols).
func (g *Grid) ResetSearchState() {
	for i := range g.cells {
		g.cells[i].reset()
	}
}

// Clone returns an independent deep copy, annotations included.
func (g *Grid) Clone() *Grid {
	cp := *g
	cp.cells = make([]Cell, len(g.cells))
	copy(cp.cells, g.cells)
	return &cp
}

// PathTo walks Predecessor links backward from target and returns the path
// from the chain's origin to target. Returns nil if target was never
// reached. The walk is bounded by the number of cells, so a corrupted chain
// cannot loop forever.
func (g *Grid) PathTo(target Coord) Path {
	cell := g.Cell(target)
	if cell == nil || cell.Distance == Unreached {
		return nil
	}
	path := make(Path, 0, cell.Distance+1)
	for at, steps := target, 0; at != NoCoord && steps <= len(g.cells); steps++ {
		path = append(path, at)
		at = g.cells[g.Index(at)].Predecessor
	}
	// reverse to get origin → target
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// Overlay maps coordinates to the latest State a renderer has seen.
type Overlay map[Coord]State

// Apply records e, replacing any earlier state for the same cell.
func (o Overlay) Apply(e Event) {
	o[e.At] = e.State
}

// String renders the grid layout in FromRows notation.
func (g *Grid) String() string {
	return g.Render(nil)
}

// Render draws the grid one line per row. Overlay states take precedence
// over Empty and Wall cells; Start and Goal are always drawn as S and G.
//
//	'#' wall  '.' empty  'o' visited  '+' frontier  '*' path  '@' current
func (g *Grid) Render(overlay Overlay) string {
	var sb strings.Builder
	sb.Grow(g.rows * (g.cols + 1))
	for r := 0; r < g.rows; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < g.cols; c++ {
			at := Coord{Row: r, Col: c}
			sb.WriteByte(g.glyph(at, overlay))
		}
	}
	return sb.String()
}

func (g *Grid) glyph(at Coord, overlay Overlay) byte {
	switch g.Kind(at) {
	case Start:
		return 'S'
	case Goal:
		return 'G'
	}
	if s, ok := overlay[at]; ok {
		switch s {
		case StateWall:
			return '#'
		case StateEmpty:
			return '.'
		case StateVisited:
			return 'o'
		case StateFrontier:
			return '+'
		case StatePath:
			return '*'
		case StateCurrent:
			return '@'
		}
	}
	if g.Kind(at) == Wall {
		return '#'
	}
	return '.'
}
