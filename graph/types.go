package graph

import (
	"errors"
	"math"
)

// Inf marks the absence of an edge and an unreachable cost.
var Inf = math.Inf(1)

// Sentinel errors for graph construction.
var (
	// ErrNegativeNodeCount is returned when a graph is sized below zero.
	ErrNegativeNodeCount = errors.New("graph: node count must be non-negative")

	// ErrNonSquare is returned when a cost matrix is not n×n.
	ErrNonSquare = errors.New("graph: cost matrix is not square")

	// ErrNodeOutOfRange is returned when an edge references an unknown node.
	ErrNodeOutOfRange = errors.New("graph: node id out of range")

	// ErrNegativeCost is returned for edge costs below zero.
	ErrNegativeCost = errors.New("graph: negative edge cost")

	// ErrNaNCost is returned for NaN edge costs.
	ErrNaNCost = errors.New("graph: NaN edge cost")
)

// Graph is a dense directed cost matrix. cost[i][j] == Inf means no edge
// from i to j.
type Graph struct {
	nodeCount int
	cost      [][]float64
}

// Edge is one directed connection, as returned by Edges.
type Edge struct {
	From, To int
	Cost     float64
}
