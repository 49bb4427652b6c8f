package gridsearch

import "github.com/katalvlaran/pathlab/grid"

// Manhattan returns |a.Row-b.Row| + |a.Col-b.Col|, the A* heuristic.
// It is admissible and consistent on 4-connected unit-cost grids.
func Manhattan(a, b grid.Position) int {
	dr, dc := a.Row-b.Row, a.Col-b.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}

	return dr + dc
}

// AStar runs A* from start to end, ordering the frontier by g + Manhattan
// distance to end and breaking ties by insertion order. g-scores exist only
// for discovered cells. A cheaper g for a cell still on the frontier pushes
// a fresh entry, and cells that were already expanded are skipped when an
// older entry surfaces.
func AStar(g *grid.Grid, start, end grid.Position, opts ...Option) (*Result, error) {
	w, err := newWalker(AlgAStar, g, start, end, opts)
	if err != nil {
		return nil, err
	}

	return w.res, w.astar()
}

func (w *walker) astar() error {
	gScore := map[int]int{w.g.Index(w.start): 0}
	closed := make(map[int]bool)

	pq := &frontier{items: make([]frontierItem, 0, 64)}
	pq.push(w.start, 0, Manhattan(w.start, w.end))

	for pq.Len() > 0 {
		if err := w.cancelled(); err != nil {
			return err
		}
		item := pq.pop()
		ci := w.g.Index(item.pos)
		if closed[ci] {
			continue
		}
		closed[ci] = true
		if err := w.visit(item.pos); err != nil {
			return err
		}
		if item.pos == w.end {
			w.reconstruct()

			return nil
		}
		w.nbrs = w.g.AppendNeighbors(w.nbrs[:0], item.pos)
		for _, nb := range w.nbrs {
			ni := w.g.Index(nb)
			if closed[ni] {
				continue
			}
			tentative := item.g + 1
			if cur, ok := gScore[ni]; ok && tentative >= cur {
				continue
			}
			gScore[ni] = tentative
			w.link(nb, item.pos)
			pq.push(nb, tentative, tentative+Manhattan(nb, w.end))
		}
	}

	return nil
}
