// Package graph is the node-link model used by the graph editor: a square
// cost matrix over integer node IDs 0..NodeCount()-1.
//
// A missing edge is represented by the sentinel Inf (+∞). Edges are directed;
// AddUndirectedEdge mirrors the symmetric insertion the editor performs.
// The diagonal is ignored by every query. The node counter lives inside the
// Graph value, so independent graphs never share IDs or state.
//
// Errors (sentinel, match with errors.Is):
//
//   - ErrNegativeNodeCount  New called with n < 0.
//   - ErrNonSquare          FromMatrix given a ragged or non-square matrix.
//   - ErrNodeOutOfRange     an edge endpoint outside 0..n-1.
//   - ErrNegativeCost       a cost below zero (negative weights are unsupported).
//   - ErrNaNCost            a NaN cost.
package graph
