package grid

import (
	"fmt"
	"strings"
)

// New constructs a Grid from a non-empty, rectangular 2D slice.
// It deep-copies the input so later mutation of cells does not leak in.
// Returns ErrEmptyGrid if there are no rows or no columns,
// ErrMalformedGrid if any row length differs and ErrBadCell for a cell
// that is neither Passable nor Blocked.
// Complexity: O(R×C) time and memory.
func New(cells [][]Cell) (*Grid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(cells), len(cells[0])
	for r, row := range cells {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrMalformedGrid, r, len(row), cols)
		}
		for c, cell := range row {
			if !cell.Valid() {
				return nil, fmt.Errorf("%w: %d at %s", ErrBadCell, cell, Pos(r, c))
			}
		}
	}
	g := &Grid{rows: rows, cols: cols, cells: make([]Cell, rows*cols)}
	for r := 0; r < rows; r++ {
		copy(g.cells[r*cols:(r+1)*cols], cells[r])
	}

	return g, nil
}

// FromBools builds a Grid where true marks a passable cell.
func FromBools(passable [][]bool) (*Grid, error) {
	cells := make([][]Cell, len(passable))
	for r, row := range passable {
		cells[r] = make([]Cell, len(row))
		for c, ok := range row {
			if !ok {
				cells[r][c] = Blocked
			}
		}
	}

	return New(cells)
}

// Open returns a rows×cols grid with every cell passable.
func Open(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrEmptyGrid
	}

	return &Grid{rows: rows, cols: cols, cells: make([]Cell, rows*cols)}, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Size returns the total number of cells.
func (g *Grid) Size() int { return g.rows * g.cols }

// InBounds reports whether p lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// At returns the cell at p. Out-of-bounds positions read as Blocked.
func (g *Grid) At(p Position) Cell {
	if !g.InBounds(p) {
		return Blocked
	}

	return g.cells[g.Index(p)]
}

// Passable reports whether p is in bounds and not blocked.
func (g *Grid) Passable(p Position) bool {
	return g.InBounds(p) && g.cells[g.Index(p)] == Passable
}

// Index maps p to its row-major index: Row*Cols + Col.
// The caller must ensure p is in bounds.
func (g *Grid) Index(p Position) int {
	return p.Row*g.cols + p.Col
}

// Position converts a row-major index back to a Position.
func (g *Grid) Position(idx int) Position {
	return Position{Row: idx / g.cols, Col: idx % g.cols}
}

// Neighbors returns the passable 4-connected neighbors of p in the order
// up, right, down, left.
func (g *Grid) Neighbors(p Position) []Position {
	return g.AppendNeighbors(make([]Position, 0, len(Directions)), p)
}

// AppendNeighbors appends the passable neighbors of p to dst in Directions
// order and returns the extended slice. Search loops reuse dst to avoid
// allocating per expansion.
func (g *Grid) AppendNeighbors(dst []Position, p Position) []Position {
	for _, d := range Directions {
		n := p.Add(d)
		if g.Passable(n) {
			dst = append(dst, n)
		}
	}

	return dst
}

// PassableCount returns how many cells are passable.
func (g *Grid) PassableCount() int {
	n := 0
	for _, c := range g.cells {
		if c == Passable {
			n++
		}
	}

	return n
}

// Cells returns a deep copy of the grid as a 2D slice.
func (g *Grid) Cells() [][]Cell {
	out := make([][]Cell, g.rows)
	for r := range out {
		out[r] = make([]Cell, g.cols)
		copy(out[r], g.cells[r*g.cols:(r+1)*g.cols])
	}

	return out
}

// WithCell returns a copy of g with the cell at p set to c.
// The receiver is left untouched.
func (g *Grid) WithCell(p Position, c Cell) (*Grid, error) {
	if !g.InBounds(p) {
		return nil, fmt.Errorf("%w: %s in %dx%d grid", ErrOutOfBounds, p, g.rows, g.cols)
	}
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %d at %s", ErrBadCell, c, p)
	}
	out := g.clone()
	out.cells[out.Index(p)] = c

	return out, nil
}

// WithBlocked returns a copy of g with every listed position blocked.
func (g *Grid) WithBlocked(ps ...Position) (*Grid, error) {
	out := g.clone()
	for _, p := range ps {
		if !out.InBounds(p) {
			return nil, fmt.Errorf("%w: %s in %dx%d grid", ErrOutOfBounds, p, g.rows, g.cols)
		}
		out.cells[out.Index(p)] = Blocked
	}

	return out, nil
}

// ValidateRequest checks that start and end are in bounds and passable.
// Any violation is reported as ErrInvalidRequest with the offending endpoint.
func (g *Grid) ValidateRequest(start, end Position) error {
	if err := g.validateEndpoint("start", start); err != nil {
		return err
	}

	return g.validateEndpoint("end", end)
}

func (g *Grid) validateEndpoint(name string, p Position) error {
	if !g.InBounds(p) {
		return fmt.Errorf("%w: %s %s out of bounds for %dx%d grid", ErrInvalidRequest, name, p, g.rows, g.cols)
	}
	if !g.Passable(p) {
		return fmt.Errorf("%w: %s %s is blocked", ErrInvalidRequest, name, p)
	}

	return nil
}

// String renders the grid one row per line using '.' and '#'.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.rows * (g.cols + 1))
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			sb.WriteString(g.cells[r*g.cols+c].String())
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

func (g *Grid) clone() *Grid {
	out := &Grid{rows: g.rows, cols: g.cols, cells: make([]Cell, len(g.cells))}
	copy(out.cells, g.cells)

	return out
}
