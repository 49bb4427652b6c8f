package graphsearch

import (
	"container/heap"

	"github.com/katalvlaran/pathlab/graph"
	"github.com/katalvlaran/pathlab/gridsearch"
)

// Dijkstra computes minimum costs from source. The node with the smallest
// tentative cost is settled next; equal costs settle the lowest node ID
// first. With a target the search stops once the target is settled.
//
// Complexity: O(V² log V) on the dense matrix (neighbor scans dominate).
func Dijkstra(g *graph.Graph, source int, opts ...Option) (*Result, error) {
	r, err := newRunner(gridsearch.AlgDijkstra, g, source, opts)
	if err != nil {
		return nil, err
	}

	return r.res, r.dijkstra()
}

func (r *runner) dijkstra() error {
	done := make([]bool, r.g.NodeCount())
	pq := make(nodePQ, 0, r.g.NodeCount())
	heap.Push(&pq, nodeItem{id: r.res.Source, cost: 0})

	for pq.Len() > 0 {
		if err := r.cancelled(); err != nil {
			return err
		}
		item := heap.Pop(&pq).(nodeItem)
		u := item.id
		if done[u] {
			continue
		}
		done[u] = true
		if err := r.visit(u); err != nil {
			return err
		}
		if r.isTarget(u) {
			return nil
		}
		for _, v := range r.g.Neighbors(u) {
			if done[v] {
				continue
			}
			nc := r.res.Cost[u] + r.g.Cost(u, v)
			if nc < r.res.Cost[v] {
				r.res.Cost[v] = nc
				r.res.Parent[v] = u
				heap.Push(&pq, nodeItem{id: v, cost: nc})
			}
		}
	}

	return nil
}

// nodeItem is a node and its tentative cost at push time.
type nodeItem struct {
	id   int
	cost float64
}

// nodePQ is a min-heap ordered by cost, then node ID. Outdated entries stay
// in the heap and are skipped once their node is settled.
type nodePQ []nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by cost, breaking ties on the lower node ID.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}

	return pq[i].id < pq[j].id
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element; called by heap.Push.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(nodeItem)) }

// Pop removes the last element; called by heap.Pop.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
