package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/rectfill/rectfill/internal/config"
	"github.com/rectfill/rectfill/internal/ui"
	"github.com/rectfill/rectfill/pkg/algo"
	"github.com/rectfill/rectfill/pkg/polygon"
	"github.com/rectfill/rectfill/pkg/render"
)

var inspectASCII bool

// inspectCmd represents the inspect command.
var inspectCmd = &cobra.Command{
	Use:   "inspect [points-file]",
	Short: "Show statistics about the compressed grid and its interior",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInspect(cmd.Context(), cfg, inputPath(args), cmd.OutOrStdout())
	},
}

func init() {
	inspectCmd.Flags().BoolVar(&inspectASCII, "ascii", false, "Dump the filled mask as text")
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(ctx context.Context, c *config.Config, path string, w io.Writer) error {
	points, sol, err := loadAndSolve(ctx, c, path)
	if err != nil {
		return err
	}

	g := sol.Geometry
	blocks := sol.Index.Blocks()
	bound := polygon.Bound(points)

	ui.PrintHeader("Polygon")
	ui.PrintSuccess("vertices", fmt.Sprint(len(points)))
	ui.PrintSuccess("extent", fmt.Sprintf("rows %.0f..%.0f, cols %.0f..%.0f", bound.Min[1], bound.Max[1], bound.Min[0], bound.Max[0]))
	ui.PrintSuccess("area", fmt.Sprintf("%.0f", sol.Stats.PolygonArea))

	ui.PrintHeader("Grid")
	ui.PrintSuccess("distinct", fmt.Sprintf("%d rows, %d cols", g.RowMap.Len(), g.ColMap.Len()))
	ui.PrintSuccess("size", fmt.Sprintf("%dx%d", g.Rows, g.Cols))
	ui.PrintSuccess("boundary", fmt.Sprint(sol.Boundary.Count()))
	ui.PrintSuccess("filled", fmt.Sprint(sol.Stats.FilledCells))
	ui.PrintSuccess("full blocks", fmt.Sprintf("%d/%d (block %d)", sol.Stats.FullBlocks, blocks.Rows()*blocks.Cols(), sol.Index.BlockSize()))
	ui.PrintSuccess("interior mesh", fmt.Sprintf("%d rectangles", len(algo.GreedyMesh(sol.Filled))))

	ui.PrintHeader("Result")
	ui.PrintSuccess("best", fmt.Sprintf("%d at %v %v", sol.Area(), sol.Best.A, sol.Best.B))
	if sol.Area() == 0 {
		ui.PrintWarning("best", "no enclosed rectangle")
	}

	if inspectASCII {
		fmt.Fprintln(w)
		return render.ASCII(w, sol.Filled)
	}
	return nil
}
