package scenario

import "errors"

var (
	// ErrBadScenario indicates a document that cannot be turned into a grid or graph.
	ErrBadScenario = errors.New("scenario: invalid scenario")
	// ErrNoGrid is returned by Scenario.Grid when the document has no grid section.
	ErrNoGrid = errors.New("scenario: no grid section")
	// ErrNoGraph is returned by Scenario.Graph when the document has no graph section.
	ErrNoGraph = errors.New("scenario: no graph section")
)

// Scenario is the decoded form of a scenario document.
type Scenario struct {
	Name      string        `yaml:"name,omitempty"`
	GridSpec  *GridSection  `yaml:"grid,omitempty"`
	Start     []int         `yaml:"start,omitempty,flow"`
	End       []int         `yaml:"end,omitempty,flow"`
	GraphSpec *GraphSection `yaml:"graph,omitempty"`
}

// GridSection describes an obstacle grid.
type GridSection struct {
	// Rows is a textual layout; it takes precedence over Size.
	Rows  []string `yaml:"rows,omitempty"`
	Size  *Size    `yaml:"size,omitempty"`
	Walls []Wall   `yaml:"walls,omitempty"`
}

// Size of an open grid.
type Size struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// Wall blocks every cell in the inclusive rectangle spanned by From and To,
// both given as [row, col].
type Wall struct {
	From []int `yaml:"from,flow"`
	To   []int `yaml:"to,flow"`
}

// GraphSection describes a node-link graph.
type GraphSection struct {
	// Nodes is the node count. It may be omitted when Points is given.
	Nodes int `yaml:"nodes,omitempty"`
	// Points are optional [x, y] coordinates, one per node.
	Points [][]float64 `yaml:"points,omitempty,flow"`
	Edges  []EdgeSpec  `yaml:"edges,omitempty"`
	Source int         `yaml:"source"`
	// Target is optional; nil searches towards every node.
	Target *int `yaml:"target,omitempty"`
}

// EdgeSpec is one edge. Edges are undirected unless Directed is set.
type EdgeSpec struct {
	From     int      `yaml:"from"`
	To       int      `yaml:"to"`
	Cost     *float64 `yaml:"cost,omitempty"`
	Directed bool     `yaml:"directed,omitempty"`
}
