package scenario

import (
	"fmt"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"

	"github.com/katalvlaran/pathlab/grid"
)

// WallBound returns the plane rectangle covered by the inclusive cell
// rectangle with corners a and b. X runs along columns and Y along rows;
// cell (r, c) occupies [c, c+1] x [r, r+1].
func WallBound(a, b grid.Position) orb.Bound {
	minR, maxR := a.Row, b.Row
	if minR > maxR {
		minR, maxR = maxR, minR
	}
	minC, maxC := a.Col, b.Col
	if minC > maxC {
		minC, maxC = maxC, minC
	}

	return orb.Bound{
		Min: orb.Point{float64(minC), float64(minR)},
		Max: orb.Point{float64(maxC + 1), float64(maxR + 1)},
	}
}

// wallEntry wraps a wall for R-tree storage.
type wallEntry struct {
	bound orb.Bound
	rect  rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (w *wallEntry) Bounds() rtreego.Rect { return w.rect }

func boundRect(b orb.Bound) (rtreego.Rect, error) {
	return rtreego.NewRect(
		rtreego.Point{b.Min[0], b.Min[1]},
		[]float64{b.Max[0] - b.Min[0], b.Max[1] - b.Min[1]},
	)
}

// Rasterize returns a copy of g with every cell whose centre lies inside one
// of walls blocked. Walls may extend past the grid; the excess is ignored.
func Rasterize(g *grid.Grid, walls []orb.Bound) (*grid.Grid, error) {
	if len(walls) == 0 {
		return g, nil
	}

	tree := rtreego.NewTree(2, 25, 50)
	for i, b := range walls {
		rect, err := boundRect(b)
		if err != nil {
			return nil, fmt.Errorf("%w: wall %d: %w", ErrBadScenario, i, err)
		}
		tree.Insert(&wallEntry{bound: b, rect: rect})
	}

	var blocked []grid.Position
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			centre := orb.Point{float64(c) + 0.5, float64(r) + 0.5}
			query, err := rtreego.NewRect(rtreego.Point{centre[0] - 0.25, centre[1] - 0.25}, []float64{0.5, 0.5})
			if err != nil {
				return nil, err
			}
			for _, hit := range tree.SearchIntersect(query) {
				if hit.(*wallEntry).bound.Contains(centre) {
					blocked = append(blocked, grid.Pos(r, c))

					break
				}
			}
		}
	}
	if len(blocked) == 0 {
		return g, nil
	}

	return g.WithBlocked(blocked...)
}
