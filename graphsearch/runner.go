package graphsearch

import (
	"fmt"

	"github.com/katalvlaran/pathlab/graph"
	"github.com/katalvlaran/pathlab/gridsearch"
)

// runner holds the mutable state of one graph search.
type runner struct {
	g    *graph.Graph
	opts Options
	res  *Result
}

// newRunner validates graph, options and source, then allocates Parent and
// Cost with every node unreached and the source at cost 0.
func newRunner(alg gridsearch.Algorithm, g *graph.Graph, source int, opts []Option) (*runner, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	n := g.NodeCount()
	if source < 0 || source >= n {
		return nil, fmt.Errorf("%w: %d (node count %d)", ErrSourceOutOfRange, source, n)
	}
	if o.Target != NoTarget && (o.Target < 0 || o.Target >= n) {
		return nil, fmt.Errorf("%w: %d (node count %d)", ErrTargetOutOfRange, o.Target, n)
	}

	res := &Result{
		Algorithm: alg,
		Source:    source,
		Target:    o.Target,
		Parent:    make([]int, n),
		Cost:      make([]float64, n),
		Order:     make([]int, 0, n),
	}
	for i := 0; i < n; i++ {
		res.Parent[i] = NoParent
		res.Cost[i] = graph.Inf
	}
	res.Cost[source] = 0

	return &runner{g: g, opts: o, res: res}, nil
}

func (r *runner) cancelled() error {
	select {
	case <-r.opts.Ctx.Done():
		return r.opts.Ctx.Err()
	default:
	}

	return nil
}

// visit appends u to Order and runs the hook.
func (r *runner) visit(u int) error {
	idx := len(r.res.Order)
	r.res.Order = append(r.res.Order, u)
	if err := r.opts.OnVisit(u, idx); err != nil {
		return fmt.Errorf("graphsearch: OnVisit error at node %d: %w", u, err)
	}

	return nil
}

// isTarget reports whether u is the requested target.
func (r *runner) isTarget(u int) bool {
	return r.opts.Target != NoTarget && u == r.opts.Target
}

// Run dispatches to the graph variant of alg. AlgAStar has no graph variant
// because graph nodes carry no coordinates for a heuristic.
func Run(alg gridsearch.Algorithm, g *graph.Graph, source int, opts ...Option) (*Result, error) {
	switch alg {
	case gridsearch.AlgBFS:
		return BFS(g, source, opts...)
	case gridsearch.AlgDFS:
		return DFS(g, source, opts...)
	case gridsearch.AlgDijkstra:
		return Dijkstra(g, source, opts...)
	}

	return nil, fmt.Errorf("%w: %s", ErrUnsupportedAlgorithm, alg)
}
