// Package gridsearch runs breadth-first search, depth-first search,
// Dijkstra and A* over a grid.Grid under one shared contract.
//
// What
//
//   - Every algorithm has the signature
//     func(g *grid.Grid, start, end grid.Position, opts ...Option) (*Result, error)
//     and Run dispatches by Algorithm.
//   - Result.Visited lists the positions each algorithm committed to
//     examining, in order. The order is part of the contract.
//   - Result.Path runs from start to end inclusive, or is empty when end is
//     unreachable. No path is not an error.
//   - Movement is 4-connected with unit cost; neighbors are tried in the
//     order up, right, down, left.
//
// Per-algorithm visit semantics
//
//   - BFS: FIFO queue, cells are marked when enqueued and recorded in
//     Visited when dequeued. Shortest path in edges.
//   - DFS: explicit frame stack that reproduces recursive depth-first order.
//     A cell is recorded the moment it is pushed, and the search stops as
//     soon as end is pushed. The path is whatever depth-first exploration
//     reaches first and is generally NOT the shortest.
//   - Dijkstra: binary heap ordered by (distance, insertion sequence), so
//     equal distances resolve to the earliest inserted entry. Cells are
//     recorded when popped for expansion; stale heap entries are skipped.
//   - A*: like Dijkstra but ordered by (g + Manhattan(h), insertion
//     sequence). g-scores are created lazily for discovered cells only. A
//     cheaper g for an open cell pushes a fresh entry; already-expanded
//     entries are skipped when popped again.
//
// Determinism
//
//	Given identical input every algorithm returns identical Visited and
//	Path sequences. Calls share no state.
//
// Streaming
//
//	Steps / StepsErr expose a search as an iter.Seq of visitation events,
//	independent of any wall-clock pacing. Breaking out of the range loop
//	stops the search.
//
// Options
//
//   - WithContext(ctx):        cooperative cancellation, checked once per expansion.
//   - WithOnVisit(fn):         hook per Visited entry; returning an error aborts.
//   - WithMaxExpansions(n):    cap on Visited length (n > 0), 0 means no cap.
//
// Errors
//
//   - ErrGridNil          the grid pointer is nil.
//   - ErrInvalidRequest   start or end out of bounds or blocked (no search is run).
//   - ErrOptionViolation  an invalid Option (e.g. negative MaxExpansions).
//   - ErrExpansionLimit   the MaxExpansions cap was reached.
//   - ErrUnknownAlgorithm Run or ParseAlgorithm got an unknown algorithm.
//   - context errors and wrapped OnVisit errors.
//
// On cancellation or hook errors the returned Result holds the positions
// visited so far and an empty Path.
//
// Complexity (N = rows×cols)
//
//   - BFS, DFS:       O(N) time and memory.
//   - Dijkstra, A*:   O(N log N) time, O(N) memory.
package gridsearch
