package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/rectfill/rectfill/internal/config"
	"github.com/rectfill/rectfill/internal/ui"
	"github.com/rectfill/rectfill/pkg/polygon"
	"github.com/rectfill/rectfill/pkg/report"
	"github.com/rectfill/rectfill/pkg/solver"
)

var (
	reportPath   string
	solveVerbose bool
)

// solveCmd represents the solve command.
var solveCmd = &cobra.Command{
	Use:   "solve [points-file]",
	Short: "Print the largest rectangle area enclosed by the polygon",
	Long:  `Reads the polygon from the given file (or stdin when omitted or "-") and prints the area of the largest enclosed rectangle anchored on two vertices.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSolve(cmd.Context(), cfg, inputPath(args), cmd.OutOrStdout())
	},
}

func init() {
	solveCmd.Flags().StringVar(&reportPath, "report", "", "Write a binary report of the run to this file")
	solveCmd.Flags().BoolVarP(&solveVerbose, "verbose", "v", false, "Print corners and grid statistics")
	rootCmd.AddCommand(solveCmd)
}

// loadAndSolve parses the points at path and runs the solver behind a spinner.
func loadAndSolve(ctx context.Context, c *config.Config, path string) ([]polygon.Point, *solver.Solution, error) {
	points, err := polygon.ParseFile(path)
	if err != nil {
		return nil, nil, err
	}

	var sol *solver.Solution
	err = ui.RunSpinner("Solving...", func() error {
		var err error
		sol, err = solver.Solve(ctx, points, solverOptions(c))
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	return points, sol, nil
}

// runSolve prints the maximum enclosed area to w, optionally followed by
// details, and stores a report when requested.
func runSolve(ctx context.Context, c *config.Config, path string, w io.Writer) error {
	points, sol, err := loadAndSolve(ctx, c, path)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, sol.Area())

	if solveVerbose {
		ui.PrintSuccess("corners", fmt.Sprintf("%v %v", sol.Best.A, sol.Best.B))
		ui.PrintSuccess("grid", fmt.Sprintf("%dx%d", sol.Stats.GridRows, sol.Stats.GridCols))
		ui.PrintSuccess("elapsed", sol.Stats.Elapsed.String())
		ui.PrintSuccess("run", sol.RunID.String())
	}

	if reportPath != "" {
		summary := report.FromSolution(sol, solver.Bound(points).Area)
		if err := report.WriteFile(reportPath, summary); err != nil {
			return err
		}
		ui.PrintSuccess("report", reportPath)
	}
	return nil
}
