package graphsearch

import (
	"github.com/katalvlaran/pathlab/graph"
	"github.com/katalvlaran/pathlab/gridsearch"
)

// BFS explores g breadth-first from source, neighbors in ascending ID order.
// Nodes are marked when enqueued and appended to Order when dequeued; with
// a target the search stops once the target is dequeued.
//
// Cost[i] is filled for every discovered node by summing edge costs along
// its BFS-tree parent chain. This is the fewest-hops route, not
// necessarily the cheapest.
func BFS(g *graph.Graph, source int, opts ...Option) (*Result, error) {
	r, err := newRunner(gridsearch.AlgBFS, g, source, opts)
	if err != nil {
		return nil, err
	}
	err = r.bfs()
	r.treeCosts()

	return r.res, err
}

func (r *runner) bfs() error {
	n := r.g.NodeCount()
	seen := make([]bool, n)
	seen[r.res.Source] = true
	queue := make([]int, 1, n)
	queue[0] = r.res.Source

	for qi := 0; qi < len(queue); qi++ {
		if err := r.cancelled(); err != nil {
			return err
		}
		u := queue[qi]
		if err := r.visit(u); err != nil {
			return err
		}
		if r.isTarget(u) {
			return nil
		}
		for _, v := range r.g.Neighbors(u) {
			if seen[v] {
				continue
			}
			seen[v] = true
			r.res.Parent[v] = u
			queue = append(queue, v)
		}
	}

	return nil
}

// treeCosts derives Cost from the parent links. Each chain is walked up to
// the first resolved ancestor and then filled in on the way back down, so
// every node is resolved once.
func (r *runner) treeCosts() {
	done := make([]bool, len(r.res.Cost))
	done[r.res.Source] = true
	var chain []int
	for v := range r.res.Cost {
		chain = chain[:0]
		for cur := v; !done[cur] && r.res.Parent[cur] != NoParent; cur = r.res.Parent[cur] {
			chain = append(chain, cur)
		}
		for i := len(chain) - 1; i >= 0; i-- {
			c := chain[i]
			p := r.res.Parent[c]
			r.res.Cost[c] = r.res.Cost[p] + r.g.Cost(p, c)
			done[c] = true
		}
	}
}
