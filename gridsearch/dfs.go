package gridsearch

import "github.com/katalvlaran/pathlab/grid"

// dfsFrame is one level of the explicit DFS stack: the cell and the index
// of the next direction to try from it.
type dfsFrame struct {
	pos  grid.Position
	next int
}

// DFS runs depth-first search from start to end with neighbor priority
// up, right, down, left. A cell is recorded in Visited the moment it is
// pushed; the search stops as soon as end is pushed.
//
// The path is the first one depth-first exploration reaches and is in
// general longer than the shortest path.
//
// The stack is explicit, so depth is bounded by rows×cols frames on the
// heap rather than by goroutine stack growth.
func DFS(g *grid.Grid, start, end grid.Position, opts ...Option) (*Result, error) {
	w, err := newWalker(AlgDFS, g, start, end, opts)
	if err != nil {
		return nil, err
	}

	return w.res, w.dfs()
}

func (w *walker) dfs() error {
	seen := make([]bool, w.g.Size())
	seen[w.g.Index(w.start)] = true
	if err := w.visit(w.start); err != nil {
		return err
	}
	if w.start == w.end {
		w.reconstruct()

		return nil
	}

	stack := make([]dfsFrame, 1, 64)
	stack[0] = dfsFrame{pos: w.start}
	for len(stack) > 0 {
		if err := w.cancelled(); err != nil {
			return err
		}
		top := &stack[len(stack)-1]
		if top.next == len(grid.Directions) {
			// dead end: backtrack
			stack = stack[:len(stack)-1]
			continue
		}
		from := top.pos
		n := from.Add(grid.Directions[top.next])
		top.next++
		if !w.g.Passable(n) || seen[w.g.Index(n)] {
			continue
		}
		seen[w.g.Index(n)] = true
		w.link(n, from)
		if err := w.visit(n); err != nil {
			return err
		}
		if n == w.end {
			w.reconstruct()

			return nil
		}
		stack = append(stack, dfsFrame{pos: n})
	}

	return nil
}
