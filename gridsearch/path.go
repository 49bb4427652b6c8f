package gridsearch

import (
	"fmt"

	"github.com/katalvlaran/pathlab/grid"
)

// ValidatePath checks that path starts at start, ends at end, stays on
// passable cells and moves one orthogonal step at a time. An empty path is
// valid only as "no path" and is reported as such by returning nil.
func ValidatePath(g *grid.Grid, start, end grid.Position, path []grid.Position) error {
	if g == nil {
		return ErrGridNil
	}
	if len(path) == 0 {
		return nil
	}
	if path[0] != start {
		return fmt.Errorf("%w: begins at %s, want %s", ErrInvalidPath, path[0], start)
	}
	if last := path[len(path)-1]; last != end {
		return fmt.Errorf("%w: ends at %s, want %s", ErrInvalidPath, last, end)
	}
	seen := make(map[grid.Position]bool, len(path))
	for i, p := range path {
		if !g.Passable(p) {
			return fmt.Errorf("%w: step %d at %s is not passable", ErrInvalidPath, i, p)
		}
		if seen[p] {
			return fmt.Errorf("%w: step %d revisits %s", ErrInvalidPath, i, p)
		}
		seen[p] = true
		if i > 0 && !path[i-1].Adjacent(p) {
			return fmt.Errorf("%w: %s → %s is not a single orthogonal move", ErrInvalidPath, path[i-1], p)
		}
	}

	return nil
}
