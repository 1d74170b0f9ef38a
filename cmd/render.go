package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rectfill/rectfill/internal/config"
	"github.com/rectfill/rectfill/internal/ui"
	"github.com/rectfill/rectfill/pkg/render"
)

var (
	renderOutput string
	renderScale  int
)

// renderCmd represents the render command.
var renderCmd = &cobra.Command{
	Use:   "render [points-file]",
	Short: "Draw the compressed grid and the best rectangle as a PNG",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRender(cmd.Context(), cfg, inputPath(args), renderOutput, renderScale)
	},
}

func init() {
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "rectfill.png", "PNG file to write")
	renderCmd.Flags().IntVar(&renderScale, "scale", 0, "Pixels per grid cell (default from config)")
	rootCmd.AddCommand(renderCmd)
}

func runRender(ctx context.Context, c *config.Config, path, output string, scale int) error {
	if scale <= 0 {
		scale = c.Render.Scale
	}

	_, sol, err := loadAndSolve(ctx, c, path)
	if err != nil {
		return err
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", output, err)
	}
	if err := render.PNG(f, sol, scale); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	ui.PrintSuccess("render", fmt.Sprintf("%s (%dx%d cells, area %d)", output, sol.Stats.GridCols, sol.Stats.GridRows, sol.Area()))
	return nil
}
