package grid

import "fmt"

// Cell is the state of a single grid square.
type Cell uint8

const (
	// Passable cells can be entered.
	Passable Cell = iota
	// Blocked cells are walls.
	Blocked
)

// Valid reports whether c is Passable or Blocked.
func (c Cell) Valid() bool { return c == Passable || c == Blocked }

// String returns "." for Passable and "#" for Blocked.
func (c Cell) String() string {
	if c == Blocked {
		return "#"
	}

	return "."
}

// Position addresses a cell by 0-indexed row and column.
type Position struct {
	Row, Col int
}

// Pos is shorthand for Position{Row: r, Col: c}.
func Pos(r, c int) Position {
	return Position{Row: r, Col: c}
}

// String renders the position as "(r,c)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Add returns p shifted by d.
func (p Position) Add(d Position) Position {
	return Position{Row: p.Row + d.Row, Col: p.Col + d.Col}
}

// Adjacent reports whether p and q differ by exactly one orthogonal step.
func (p Position) Adjacent(q Position) bool {
	dr, dc := p.Row-q.Row, p.Col-q.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}

	return dr+dc == 1
}

// Directions lists the 4-connected offsets in neighbor priority order:
// up, right, down, left.
var Directions = [4]Position{
	{Row: -1, Col: 0},
	{Row: 0, Col: 1},
	{Row: 1, Col: 0},
	{Row: 0, Col: -1},
}

// Grid is an immutable rectangular snapshot of cells.
// Rows and columns are fixed at construction; cells are stored row-major.
type Grid struct {
	rows, cols int
	cells      []Cell
}
