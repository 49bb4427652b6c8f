// Package scenario loads search inputs from outside the process.
//
// A scenario is a small YAML document holding an obstacle grid with start
// and end cells, a node-link graph with a source and optional target, or
// both:
//
//	name: corridor
//	grid:
//	  rows: ["S..#", ".#..", "...E"]
//	  walls:
//	    - {from: [0, 1], to: [0, 2]}
//	graph:
//	  points: [[0, 0], [3, 4], [6, 0]]
//	  edges:
//	    - {from: 0, to: 1}
//	    - {from: 1, to: 2, cost: 2.5, directed: true}
//	  source: 0
//	  target: 2
//
// Grid rows use the grid.Parse alphabet. Instead of rows a scenario may
// give an open grid size. Walls are inclusive cell rectangles blocked on
// top of the layout. Graph edges without a cost take the planar distance
// between their nodes' points, rounded to two decimals.
//
// Besides YAML files the package derives grids from images (FromImage,
// dark pixels become walls) and from a seeded random generator (Random).
package scenario
