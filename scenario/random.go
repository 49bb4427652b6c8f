package scenario

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/pathlab/grid"
)

// defaultSeed is used when callers pass seed == 0.
const defaultSeed int64 = 1

func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// Random returns a rows x cols grid in which each cell is blocked with
// probability density. The same seed always yields the same grid.
func Random(rows, cols int, density float64, seed int64) (*grid.Grid, error) {
	if density < 0 || density > 1 {
		return nil, fmt.Errorf("%w: density %v outside [0, 1]", ErrBadScenario, density)
	}
	if rows <= 0 || cols <= 0 {
		return nil, grid.ErrEmptyGrid
	}

	rng := rngFromSeed(seed)
	cells := make([][]grid.Cell, rows)
	for r := range cells {
		cells[r] = make([]grid.Cell, cols)
		for c := range cells[r] {
			if rng.Float64() < density {
				cells[r][c] = grid.Blocked
			}
		}
	}

	return grid.New(cells)
}

// RandomRequest returns a random grid together with start and end cells in
// opposite corners, both forced passable.
func RandomRequest(rows, cols int, density float64, seed int64) (*grid.Grid, grid.Position, grid.Position, error) {
	g, err := Random(rows, cols, density, seed)
	if err != nil {
		return nil, grid.Position{}, grid.Position{}, err
	}
	start, end := grid.Pos(0, 0), grid.Pos(rows-1, cols-1)
	if g, err = g.WithCell(start, grid.Passable); err != nil {
		return nil, start, end, err
	}
	if g, err = g.WithCell(end, grid.Passable); err != nil {
		return nil, start, end, err
	}

	return g, start, end, nil
}
