// Package grid models the rectangular obstacle grid that the search
// algorithms walk over.
//
// What:
//
//   - Grid is an immutable row-major matrix of Passable / Blocked cells.
//   - Position is a 0-indexed (Row, Col) pair.
//   - Neighbors enumerates 4-connected moves in the fixed order up, right,
//     down, left. That order is observable: it drives DFS discovery order and
//     the tie-breaking of every other search.
//   - Components finds passable "islands"; ToGraph turns the grid into a
//     unit-cost node-link graph for the graphsearch package.
//
// Errors:
//
//   - ErrEmptyGrid:      input has no rows or no columns.
//   - ErrMalformedGrid:  rows have differing lengths.
//   - ErrBadCell:        cell value other than Passable or Blocked.
//   - ErrInvalidRequest: start/end out of bounds or on a blocked cell.
//   - ErrBadLayout:      unknown character in a textual layout.
//
// Complexity:
//
//   - New / Parse:  O(R×C) time and memory (deep copy).
//   - Neighbors:    O(1).
//   - Components:   O(R×C).
//   - ToGraph:      O((R×C)²) memory, the cost matrix is dense.
package grid
