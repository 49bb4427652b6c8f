package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathlab/compare"
	"github.com/katalvlaran/pathlab/grid"
	"github.com/katalvlaran/pathlab/gridsearch"
	"github.com/katalvlaran/pathlab/render"
)

func newSearchCmd(a *app) *cobra.Command {
	var (
		algName string
		format  string
		out     string
		cellPx  int
		maxExp  int
		check   bool
	)
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Run one grid search and draw the result",
		Example: `  pathlab search -f maze.yaml --alg astar
  pathlab search -f maze.yaml --alg bfs --format png --out bfs.png`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			alg, err := gridsearch.ParseAlgorithm(algName)
			if err != nil {
				return err
			}
			s, err := a.loadScenario()
			if err != nil {
				return err
			}
			g, start, end, err := s.Grid()
			if err != nil {
				return err
			}

			res, err := gridsearch.Run(alg, g, start, end,
				gridsearch.WithContext(cmd.Context()),
				gridsearch.WithMaxExpansions(maxExp))
			if err != nil {
				return err
			}
			a.log.Info("search finished", "algorithm", alg, "visited", len(res.Visited), "path", res.PathLength())
			if check {
				if err := checkResult(g, start, end, res); err != nil {
					return err
				}
				a.log.Debug("path checked", "algorithm", alg)
			}

			w, closeOut, err := openOutput(cmd, out)
			if err != nil {
				return err
			}
			switch format {
			case "ascii":
				err = render.ASCII(w, g, res, start, end)
				if err == nil {
					if res.Found() {
						_, err = fmt.Fprintf(w, "%s: visited %d cells, path %d cells\n", alg.Title(), len(res.Visited), res.PathLength())
					} else {
						_, err = fmt.Fprintf(w, "%s: visited %d cells, no path found\n", alg.Title(), len(res.Visited))
					}
				}
			case "png":
				err = render.PNG(w, g, res, start, end, cellPx)
			default:
				err = fmt.Errorf("unknown format %q (want ascii or png)", format)
			}
			if cerr := closeOut(); err == nil {
				err = cerr
			}
			if err == nil {
				a.log.Debug("output written", "format", format, "out", out)
			}

			return err
		},
	}
	cmd.Flags().StringVarP(&algName, "alg", "a", "bfs", "Algorithm: bfs, dfs, dijkstra or astar")
	cmd.Flags().StringVar(&format, "format", "ascii", "Output format: ascii or png")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default stdout)")
	cmd.Flags().IntVar(&cellPx, "cell", 16, "PNG pixels per cell")
	cmd.Flags().IntVar(&maxExp, "max-expansions", 0, "Abort after visiting this many cells (0 = no limit)")
	cmd.Flags().BoolVar(&check, "check", false, "Verify the path and cross-check a no-path result against connectivity")

	return cmd
}

// checkResult verifies a search result: a found path must be a valid walk
// from start to end, and an empty one must agree with connectivity.
func checkResult(g *grid.Grid, start, end grid.Position, res *gridsearch.Result) error {
	if err := gridsearch.ValidatePath(g, start, end, res.Path); err != nil {
		return fmt.Errorf("check %s: %w", res.Algorithm, err)
	}
	if !res.Found() && g.Connected(start, end) {
		return fmt.Errorf("check %s: no path reported but %s and %s are connected", res.Algorithm, start, end)
	}

	return nil
}

func newCompareCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "compare",
		Short: "Run every grid algorithm and compare them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.loadScenario()
			if err != nil {
				return err
			}
			g, start, end, err := s.Grid()
			if err != nil {
				return err
			}
			rep, err := compare.Run(cmd.Context(), g, start, end)
			if err != nil {
				return err
			}
			for _, e := range rep.Entries {
				a.log.Info("algorithm timed", "algorithm", e.Algorithm, "elapsed", e.Elapsed, "visited", e.Visited)
			}

			return render.ComparisonTable(cmd.OutOrStdout(), rep)
		},
	}
}
