package gridsearch

import (
	"fmt"

	"github.com/katalvlaran/pathlab/grid"
)

// walker holds the mutable state of a single search call. Nothing in it
// outlives the call.
type walker struct {
	g          *grid.Grid
	opts       Options
	start, end grid.Position
	parent     map[int]int
	nbrs       []grid.Position
	res        *Result
}

// newWalker validates the grid, options and endpoints, in that order.
func newWalker(alg Algorithm, g *grid.Grid, start, end grid.Position, opts []Option) (*walker, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if err := g.ValidateRequest(start, end); err != nil {
		return nil, fmt.Errorf("gridsearch: %s: %w", alg, err)
	}

	return &walker{
		g:      g,
		opts:   o,
		start:  start,
		end:    end,
		parent: make(map[int]int),
		nbrs:   make([]grid.Position, 0, len(grid.Directions)),
		res:    &Result{Algorithm: alg, Visited: make([]grid.Position, 0, 16)},
	}, nil
}

// cancelled returns the context error once the context is done.
func (w *walker) cancelled() error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	return nil
}

// visit appends p to Visited, enforcing the expansion cap and running the hook.
func (w *walker) visit(p grid.Position) error {
	idx := len(w.res.Visited)
	if w.opts.MaxExpansions > 0 && idx >= w.opts.MaxExpansions {
		return fmt.Errorf("%w: %d positions", ErrExpansionLimit, w.opts.MaxExpansions)
	}
	w.res.Visited = append(w.res.Visited, p)
	if err := w.opts.OnVisit(p, idx); err != nil {
		return fmt.Errorf("gridsearch: OnVisit error at %s: %w", p, err)
	}

	return nil
}

// link records from as the predecessor of to.
func (w *walker) link(to, from grid.Position) {
	w.parent[w.g.Index(to)] = w.g.Index(from)
}

// reconstruct fills Result.Path by walking parent links back from end.
func (w *walker) reconstruct() {
	startIdx := w.g.Index(w.start)
	cur := w.g.Index(w.end)
	path := []grid.Position{w.end}
	for cur != startIdx {
		cur = w.parent[cur]
		path = append(path, w.g.Position(cur))
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	w.res.Path = path
}
