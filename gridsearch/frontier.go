package gridsearch

import (
	"container/heap"

	"github.com/katalvlaran/pathlab/grid"
)

// frontierItem is one heap entry. g is the path cost at push time, which
// equals the settled cost the first time a cell is popped; priority is g
// for Dijkstra and g+h for A*. seq is the insertion counter used to
// break priority ties in favour of the earliest inserted entry.
type frontierItem struct {
	pos      grid.Position
	g        int
	priority int
	seq      uint64
}

// frontier is a min-heap of frontierItem ordered by (priority, seq).
// Entries are never updated in place: a better cost pushes a new entry and
// the outdated one is skipped when popped.
type frontier struct {
	items []frontierItem
	seq   uint64
}

// Len returns the number of entries in the heap.
func (f *frontier) Len() int { return len(f.items) }

// Less orders by priority, then by insertion sequence.
func (f *frontier) Less(i, j int) bool {
	a, b := f.items[i], f.items[j]
	if a.priority != b.priority {
		return a.priority < b.priority
	}

	return a.seq < b.seq
}

// Swap swaps two entries.
func (f *frontier) Swap(i, j int) { f.items[i], f.items[j] = f.items[j], f.items[i] }

// Push is called by heap.Push; x must be a frontierItem.
func (f *frontier) Push(x interface{}) { f.items = append(f.items, x.(frontierItem)) }

// Pop is called by heap.Pop.
func (f *frontier) Pop() interface{} {
	n := len(f.items)
	item := f.items[n-1]
	f.items = f.items[:n-1]

	return item
}

// push stamps the next sequence number and inserts the entry.
func (f *frontier) push(p grid.Position, g, priority int) {
	heap.Push(f, frontierItem{pos: p, g: g, priority: priority, seq: f.seq})
	f.seq++
}

// pop removes the minimum entry.
func (f *frontier) pop() frontierItem {
	return heap.Pop(f).(frontierItem)
}
