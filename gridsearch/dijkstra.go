package gridsearch

import (
	"math"

	"github.com/katalvlaran/pathlab/grid"
)

// Dijkstra runs Dijkstra's algorithm from start to end on the unit-cost grid.
// Each round expands the frontier entry with the smallest tentative
// distance; ties go to the entry inserted first. Neighbors are relaxed when
// dist[current]+1 < dist[neighbor]. The search ends when end is expanded or
// the frontier empties.
func Dijkstra(g *grid.Grid, start, end grid.Position, opts ...Option) (*Result, error) {
	w, err := newWalker(AlgDijkstra, g, start, end, opts)
	if err != nil {
		return nil, err
	}

	return w.res, w.dijkstra()
}

func (w *walker) dijkstra() error {
	n := w.g.Size()
	dist := make([]int, n)
	for i := range dist {
		dist[i] = math.MaxInt
	}
	done := make([]bool, n)
	dist[w.g.Index(w.start)] = 0

	pq := &frontier{items: make([]frontierItem, 0, 64)}
	pq.push(w.start, 0, 0)

	for pq.Len() > 0 {
		if err := w.cancelled(); err != nil {
			return err
		}
		item := pq.pop()
		ci := w.g.Index(item.pos)
		// stale entry for an already-settled cell
		if done[ci] {
			continue
		}
		done[ci] = true
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
			nd := item.g + 1
			if nd < dist[ni] {
				dist[ni] = nd
				w.link(nb, item.pos)
				pq.push(nb, nd, nd)
			}
		}
	}

	return nil
}
