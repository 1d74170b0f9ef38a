package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rectfill/rectfill/internal/ui"
	"github.com/rectfill/rectfill/pkg/report"
)

// reportCmd represents the report command.
var reportCmd = &cobra.Command{
	Use:   "report <report-file>",
	Short: "Print a report written by solve --report",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReport(args[0])
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
}

func runReport(path string) error {
	s, err := report.ReadFile(path)
	if err != nil {
		return err
	}

	ui.PrintHeader("Run " + s.RunID)
	ui.PrintSuccess("area", fmt.Sprint(s.Area))
	ui.PrintSuccess("corners", fmt.Sprintf("%v %v", s.A, s.B))
	ui.PrintSuccess("unconstrained", fmt.Sprint(s.BoundArea))
	ui.PrintSuccess("points", fmt.Sprint(s.Points))
	ui.PrintSuccess("grid", fmt.Sprintf("%dx%d (block %d)", s.GridRows, s.GridCols, s.BlockSize))
	ui.PrintSuccess("elapsed", s.Elapsed.String())
	return nil
}
