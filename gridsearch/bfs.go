package gridsearch

import "github.com/katalvlaran/pathlab/grid"

// BFS runs breadth-first search from start to end.
// Cells are marked when enqueued, so none is queued twice, and recorded in
// Visited when dequeued. The returned path is shortest in edge count.
func BFS(g *grid.Grid, start, end grid.Position, opts ...Option) (*Result, error) {
	w, err := newWalker(AlgBFS, g, start, end, opts)
	if err != nil {
		return nil, err
	}

	return w.res, w.bfs()
}

func (w *walker) bfs() error {
	seen := make([]bool, w.g.Size())
	seen[w.g.Index(w.start)] = true
	queue := make([]grid.Position, 1, 64)
	queue[0] = w.start

	for qi := 0; qi < len(queue); qi++ {
		if err := w.cancelled(); err != nil {
			return err
		}
		cur := queue[qi]
		if err := w.visit(cur); err != nil {
			return err
		}
		if cur == w.end {
			w.reconstruct()

			return nil
		}
		w.nbrs = w.g.AppendNeighbors(w.nbrs[:0], cur)
		for _, n := range w.nbrs {
			ni := w.g.Index(n)
			if seen[ni] {
				continue
			}
			seen[ni] = true
			w.link(n, cur)
			queue = append(queue, n)
		}
	}

	return nil
}
