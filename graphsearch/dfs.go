package graphsearch

import (
	"github.com/katalvlaran/pathlab/graph"
	"github.com/katalvlaran/pathlab/gridsearch"
)

// dfsFrame is one level of the explicit stack: the node, the tentative
// cost it was entered with, and the next neighbor ID to try.
type dfsFrame struct {
	node int
	cost float64
	next int
}

// DFS explores g depth-first from source, neighbors in ascending ID order.
// A node is appended to Order when entered. Before descending into an
// unvisited neighbor the tentative cost through the current node is
// compared with Cost[neighbor] and kept when strictly cheaper, together
// with the parent link. With a target the whole search stops once the
// target is entered.
//
// The recorded costs follow whatever branch DFS happened to take; they are
// not shortest-path costs. Use Dijkstra for optimal costs.
func DFS(g *graph.Graph, source int, opts ...Option) (*Result, error) {
	r, err := newRunner(gridsearch.AlgDFS, g, source, opts)
	if err != nil {
		return nil, err
	}

	return r.res, r.dfs()
}

func (r *runner) dfs() error {
	n := r.g.NodeCount()
	seen := make([]bool, n)
	src := r.res.Source

	seen[src] = true
	if err := r.visit(src); err != nil {
		return err
	}
	if r.isTarget(src) {
		return nil
	}

	stack := make([]dfsFrame, 1, n)
	stack[0] = dfsFrame{node: src}
	for len(stack) > 0 {
		if err := r.cancelled(); err != nil {
			return err
		}
		top := &stack[len(stack)-1]
		if top.next >= n {
			stack = stack[:len(stack)-1]
			continue
		}
		u, v := top.node, top.next
		top.next++
		if seen[v] || !r.g.HasEdge(u, v) {
			continue
		}
		tentative := top.cost + r.g.Cost(u, v)
		if tentative < r.res.Cost[v] {
			r.res.Cost[v] = tentative
			r.res.Parent[v] = u
		}
		seen[v] = true
		if err := r.visit(v); err != nil {
			return err
		}
		if r.isTarget(v) {
			return nil
		}
		stack = append(stack, dfsFrame{node: v, cost: tentative})
	}

	return nil
}
