package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/katalvlaran/pathlab/compare"
	"github.com/katalvlaran/pathlab/graphsearch"
)

// FormatCost renders a path cost without trailing zeros.
func FormatCost(c float64) string {
	return strconv.FormatFloat(c, 'f', -1, 64)
}

func joinPath(path []int) string {
	parts := make([]string, len(path))
	for i, n := range path {
		parts[i] = strconv.Itoa(n)
	}

	return strings.Join(parts, " → ")
}

// GraphReport writes the paths found by a graph search. With a target it
// writes a single line:
//
//	Path from Node 0 to 3: 0 → 1 → 3 (Cost = 7)
//
// Without one it writes a line per node:
//
//	Node 0 to 2 --> 0 → 2 (Cost = 4)
//	Node 0 to 3 --> No path exists
func GraphReport(w io.Writer, res *graphsearch.Result) error {
	if res.Target != graphsearch.NoTarget {
		_, err := fmt.Fprintf(w, "Path from Node %d to %d: %s\n", res.Source, res.Target, describe(res, res.Target))

		return err
	}
	for i := range res.Cost {
		if _, err := fmt.Fprintf(w, "Node %d to %d --> %s\n", res.Source, i, describe(res, i)); err != nil {
			return err
		}
	}

	return nil
}

func describe(res *graphsearch.Result, dest int) string {
	path, err := res.PathTo(dest)
	if err != nil {
		return "No path exists"
	}

	return fmt.Sprintf("%s (Cost = %s)", joinPath(path), FormatCost(res.Cost[dest]))
}

// ComparisonTable writes the per-algorithm metrics as an aligned table
// followed by the recommendations.
func ComparisonTable(w io.Writer, rep *compare.Report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Algorithm\tExecution Time (s)\tCells Visited\tPath Length")
	for _, e := range rep.Entries {
		path := "No path found"
		if e.Found {
			path = strconv.Itoa(e.PathLength)
		}
		fmt.Fprintf(tw, "%s\t%.4f\t%d\t%s\n", e.Algorithm.Title(), e.Elapsed.Seconds(), e.Visited, path)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if len(rep.Entries) == 0 {
		return nil
	}

	fastest, _ := rep.Get(rep.Fastest)
	efficient, _ := rep.Get(rep.MostEfficient)
	fmt.Fprintln(w, "\nRecommendations:")
	fmt.Fprintf(w, "  Fastest algorithm: %s (%.4fs)\n", fastest.Algorithm.Title(), fastest.Elapsed.Seconds())
	fmt.Fprintf(w, "  Most efficient algorithm: %s (visited %d cells)\n", efficient.Algorithm.Title(), efficient.Visited)
	if rep.HasShortest {
		shortest, _ := rep.Get(rep.Shortest)
		_, err := fmt.Fprintf(w, "  Shortest path: %s (%d cells)\n", shortest.Algorithm.Title(), shortest.PathLength)

		return err
	}

	return nil
}
