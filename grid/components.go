package grid

// Components finds all contiguous regions of passable cells under
// 4-connectivity. Components are ordered by their first cell in row-major
// order; cells within a component appear in BFS discovery order.
//
// Time:   O(R×C).
// Memory: O(R×C) for seen flags and output.
func (g *Grid) Components() [][]Position {
	seen := make([]bool, len(g.cells))
	var comps [][]Position
	var nbrs []Position

	for i0, cell := range g.cells {
		if cell == Blocked || seen[i0] {
			continue
		}
		queue := []int{i0}
		seen[i0] = true
		var comp []Position

		for qi := 0; qi < len(queue); qi++ {
			u := g.Position(queue[qi])
			comp = append(comp, u)
			nbrs = g.AppendNeighbors(nbrs[:0], u)
			for _, v := range nbrs {
				vi := g.Index(v)
				if !seen[vi] {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		comps = append(comps, comp)
	}

	return comps
}

// Connected reports whether a and b are both passable and lie in the same
// component.
func (g *Grid) Connected(a, b Position) bool {
	if !g.Passable(a) || !g.Passable(b) {
		return false
	}
	if a == b {
		return true
	}
	seen := make([]bool, len(g.cells))
	seen[g.Index(a)] = true
	queue := []Position{a}
	var nbrs []Position
	for qi := 0; qi < len(queue); qi++ {
		nbrs = g.AppendNeighbors(nbrs[:0], queue[qi])
		for _, v := range nbrs {
			if v == b {
				return true
			}
			vi := g.Index(v)
			if !seen[vi] {
				seen[vi] = true
				queue = append(queue, v)
			}
		}
	}

	return false
}
