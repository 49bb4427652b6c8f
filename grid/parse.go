package grid

import "fmt"

// Layout characters understood by Parse.
const (
	CharPassable = '.'
	CharBlocked  = '#'
	CharStart    = 'S'
	CharEnd      = 'E'
)

// Markers carries the optional start/end markers found in a textual layout.
type Markers struct {
	Start, End       Position
	HasStart, HasEnd bool
}

// Parse builds a Grid from text rows. '.' and ' ' are passable, '#' is
// blocked, 'S' and 'E' are passable cells that also set the start and end
// markers. The last marker of each kind wins.
func Parse(lines []string) (*Grid, Markers, error) {
	var m Markers
	cells := make([][]Cell, len(lines))
	for r, line := range lines {
		row := make([]Cell, 0, len(line))
		for _, ch := range line {
			c := len(row)
			switch ch {
			case CharPassable, ' ':
				row = append(row, Passable)
			case CharBlocked:
				row = append(row, Blocked)
			case CharStart:
				m.Start, m.HasStart = Pos(r, c), true
				row = append(row, Passable)
			case CharEnd:
				m.End, m.HasEnd = Pos(r, c), true
				row = append(row, Passable)
			default:
				return nil, Markers{}, fmt.Errorf("%w: %q at row %d col %d", ErrBadLayout, ch, r, c)
			}
		}
		cells[r] = row
	}
	g, err := New(cells)
	if err != nil {
		return nil, Markers{}, err
	}

	return g, m, nil
}

// MustParse is like Parse but panics on error. Intended for tests and
// package-level fixtures built from literals.
func MustParse(lines ...string) *Grid {
	g, _, err := Parse(lines)
	if err != nil {
		panic(err)
	}

	return g
}
