package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathlab/grid"
	"github.com/katalvlaran/pathlab/scenario"
)

// scenarioEnv names the variable holding the default scenario path.
const scenarioEnv = "PATHLAB_SCENARIO"

// Version is the current pathlab CLI version.
var Version = "0.1.0"

// app holds state shared by all subcommands of one root command.
type app struct {
	verbose      bool
	scenarioPath string
	log          *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{log: slog.New(slog.NewTextHandler(io.Discard, nil))}

	root := &cobra.Command{
		Use:   "pathlab",
		Short: "pathlab - grid and graph path search playground",
		Long: `pathlab runs BFS, DFS, Dijkstra and A* over obstacle grids and
node-link graphs loaded from scenario files, images or a random generator.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if a.verbose {
				level = slog.LevelDebug
			}
			a.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Log progress to stderr")
	root.PersistentFlags().StringVarP(&a.scenarioPath, "scenario", "f", "",
		"Scenario file (default $"+scenarioEnv+")")

	root.AddCommand(
		newSearchCmd(a),
		newCompareCmd(a),
		newGraphCmd(a),
		newRandomCmd(a),
		newImageCmd(a),
	)

	return root
}

// loadScenario reads the scenario named by --scenario or $PATHLAB_SCENARIO.
func (a *app) loadScenario() (*scenario.Scenario, error) {
	path := a.scenarioPath
	if path == "" {
		path = os.Getenv(scenarioEnv)
	}
	if path == "" {
		return nil, fmt.Errorf("no scenario: pass --scenario or set %s", scenarioEnv)
	}
	a.log.Debug("loading scenario", "path", path)
	s, err := scenario.Load(path)
	if err != nil {
		return nil, err
	}
	a.log.Info("scenario loaded", "path", path, "name", s.Name,
		"grid", s.GridSpec != nil, "graph", s.GraphSpec != nil)

	return s, nil
}

// parsePosition parses "row,col".
func parsePosition(s string) (grid.Position, error) {
	r, c, ok := strings.Cut(s, ",")
	if !ok {
		return grid.Position{}, fmt.Errorf("position %q: want row,col", s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(r))
	if err != nil {
		return grid.Position{}, fmt.Errorf("position %q: %w", s, err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(c))
	if err != nil {
		return grid.Position{}, fmt.Errorf("position %q: %w", s, err)
	}

	return grid.Pos(row, col), nil
}

// openOutput returns stdout for "" or "-", otherwise creates path.
func openOutput(cmd *cobra.Command, path string) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}

	return f, f.Close, nil
}
