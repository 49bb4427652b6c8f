package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathlab/graphsearch"
	"github.com/katalvlaran/pathlab/gridsearch"
	"github.com/katalvlaran/pathlab/render"
)

func newGraphCmd(a *app) *cobra.Command {
	var (
		algName string
		target  int
	)
	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Search the node-link graph of a scenario",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			alg, err := gridsearch.ParseAlgorithm(algName)
			if err != nil {
				return err
			}
			s, err := a.loadScenario()
			if err != nil {
				return err
			}
			g, source, fileTarget, err := s.Graph()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("target") {
				fileTarget = target
			}

			res, err := graphsearch.Run(alg, g, source,
				graphsearch.WithContext(cmd.Context()),
				graphsearch.WithTarget(fileTarget))
			if err != nil {
				return err
			}
			a.log.Info("graph search finished", "algorithm", alg, "source", source, "expanded", len(res.Order))

			return render.GraphReport(cmd.OutOrStdout(), res)
		},
	}
	cmd.Flags().StringVarP(&algName, "alg", "a", "dijkstra", "Algorithm: bfs, dfs or dijkstra")
	cmd.Flags().IntVarP(&target, "target", "t", graphsearch.NoTarget, "Target node (default: scenario target, else all nodes)")

	return cmd
}
