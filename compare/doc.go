// Package compare runs every grid search algorithm against one grid
// snapshot and summarises the outcome side by side.
//
// Run executes BFS, DFS, Dijkstra and A* sequentially on the same
// immutable grid. Each run owns its own working state, so nothing leaks
// from one algorithm into the next. For each algorithm the report records
// wall-clock time, the number of visited cells and the path length, and
// it names:
//
//   - Fastest:       smallest elapsed time.
//   - MostEfficient: fewest visited cells.
//   - Shortest:      shortest path among the algorithms that found one
//     (absent when none did).
//
// Ties keep the algorithm that comes first in canonical order
// (BFS, DFS, Dijkstra, A*).
package compare
