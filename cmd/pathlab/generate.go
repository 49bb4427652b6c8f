package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathlab/scenario"
)

func newRandomCmd(a *app) *cobra.Command {
	var (
		rows, cols int
		density    float64
		seed       int64
		out        string
	)
	cmd := &cobra.Command{
		Use:   "random",
		Short: "Write a scenario with a seeded random obstacle grid",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, start, end, err := scenario.RandomRequest(rows, cols, density, seed)
			if err != nil {
				return err
			}
			a.log.Info("random grid", "rows", rows, "cols", cols, "density", density, "seed", seed,
				"passable", g.PassableCount())

			return writeScenario(cmd, out, scenario.FromGrid("random", g, start, end))
		},
	}
	cmd.Flags().IntVar(&rows, "rows", 20, "Grid rows")
	cmd.Flags().IntVar(&cols, "cols", 40, "Grid columns")
	cmd.Flags().Float64Var(&density, "density", 0.3, "Probability that a cell is blocked")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Random seed (0 = fixed default)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default stdout)")

	return cmd
}

func newImageCmd(a *app) *cobra.Command {
	var (
		in           string
		rows, cols   int
		threshold    uint8
		startS, endS string
		out          string
	)
	cmd := &cobra.Command{
		Use:   "image",
		Short: "Write a scenario whose grid is traced from a PNG or JPEG image",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := parsePosition(startS)
			if err != nil {
				return err
			}
			g, err := scenario.LoadImage(in, scenario.WithSize(rows, cols), scenario.WithThreshold(threshold))
			if err != nil {
				return err
			}
			end := endS
			if end == "" {
				end = fmt.Sprintf("%d,%d", g.Rows()-1, g.Cols()-1)
			}
			endPos, err := parsePosition(end)
			if err != nil {
				return err
			}
			if err := g.ValidateRequest(start, endPos); err != nil {
				return err
			}
			a.log.Info("image traced", "path", in, "rows", g.Rows(), "cols", g.Cols())

			return writeScenario(cmd, out, scenario.FromGrid(in, g, start, endPos))
		},
	}
	cmd.Flags().StringVarP(&in, "in", "i", "", "Input image")
	cmd.Flags().IntVar(&rows, "rows", 0, "Resample to this many rows (0 = image height)")
	cmd.Flags().IntVar(&cols, "cols", 0, "Resample to this many columns (0 = image width)")
	cmd.Flags().Uint8Var(&threshold, "threshold", scenario.DefaultThreshold, "Luma below which a pixel is a wall")
	cmd.Flags().StringVar(&startS, "start", "0,0", "Start cell as row,col")
	cmd.Flags().StringVar(&endS, "end", "", "End cell as row,col (default bottom-right)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default stdout)")
	_ = cmd.MarkFlagRequired("in")

	return cmd
}

func writeScenario(cmd *cobra.Command, out string, s *scenario.Scenario) error {
	w, closeOut, err := openOutput(cmd, out)
	if err != nil {
		return err
	}
	if err := scenario.Encode(w, s); err != nil {
		closeOut()

		return err
	}

	return closeOut()
}
