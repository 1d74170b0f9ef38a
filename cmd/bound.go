package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/rectfill/rectfill/internal/ui"
	"github.com/rectfill/rectfill/pkg/polygon"
	"github.com/rectfill/rectfill/pkg/solver"
)

var boundVerbose bool

// boundCmd represents the bound command.
var boundCmd = &cobra.Command{
	Use:   "bound [points-file]",
	Short: "Print the largest rectangle between any two vertices, ignoring the interior",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBound(inputPath(args), cmd.OutOrStdout())
	},
}

func init() {
	boundCmd.Flags().BoolVarP(&boundVerbose, "verbose", "v", false, "Print the corners")
	rootCmd.AddCommand(boundCmd)
}

func runBound(path string, w io.Writer) error {
	points, err := polygon.ParseFile(path)
	if err != nil {
		return err
	}
	best := solver.Bound(points)
	fmt.Fprintln(w, best.Area)
	if boundVerbose {
		ui.PrintSuccess("corners", fmt.Sprintf("%v %v", best.A, best.B))
	}
	return nil
}
