// Package pathlab is a playground for path search on obstacle grids and
// node-link graphs.
//
// What is inside:
//
//	grid/        immutable obstacle grid, text layouts, components, grid → graph
//	gridsearch/  BFS, DFS, Dijkstra and A* over 4-connected unit-cost grids
//	graph/       dense cost-matrix graph with integer node IDs
//	graphsearch/ BFS, cost-tracking DFS and Dijkstra over graph.Graph
//	compare/     runs every grid algorithm on one grid and ranks them
//	scenario/    YAML scenario files, image-traced and random grids
//	render/      ASCII and PNG overlays, path reports, comparison tables
//	cmd/pathlab  command-line front end
//
// Every search returns the cells (or nodes) in the order it examined them
// together with the path it found, so the same result drives tests,
// animations and reports. Library packages never log and never panic on
// user input; failures are sentinel errors matched with errors.Is.
package pathlab
