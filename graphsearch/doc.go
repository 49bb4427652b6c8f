// Package graphsearch runs BFS, DFS and Dijkstra over a node-link
// graph.Graph and reports parent and cost arrays.
//
// Contract
//
//	BFS / DFS / Dijkstra(g, source, opts...) (*Result, error)
//
// WithTarget(t) lets a search stop once t is reached; the Parent and Cost
// arrays still cover every node discovered up to that point. Without a
// target the search covers every node reachable from source.
//
// Cost semantics differ on purpose:
//
//   - BFS explores by hop count. Cost[i] is the sum of edge costs along the
//     BFS tree, which is not necessarily the cheapest route.
//   - DFS descends depth-first (ascending node IDs) and relaxes Cost[nb]
//     whenever a strictly cheaper tentative cost shows up while descending.
//     It records costs, but it is NOT cost-optimal.
//   - Dijkstra is the only cost-optimal variant. Equal tentative costs are
//     settled lowest node ID first.
//
// Order lists nodes in the order they were expanded (BFS, Dijkstra) or
// entered (DFS).
//
// Errors
//
//   - ErrGraphNil            the graph pointer is nil.
//   - ErrSourceOutOfRange    source is not a node of g.
//   - ErrTargetOutOfRange    WithTarget named a node outside g.
//   - ErrNoPath              PathTo on an unreached node.
//   - context errors and wrapped OnVisit errors.
package graphsearch
