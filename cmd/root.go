package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/rectfill/rectfill/internal/config"
	rlog "github.com/rectfill/rectfill/pkg/log"
	"github.com/rectfill/rectfill/pkg/solver"
)

var (
	configPath string
	logLevel   string

	// cfg is loaded before any subcommand runs.
	cfg *config.Config
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "rectfill",
	Short: "Find the largest rectangle inside a rectilinear polygon",
	Long: `rectfill reads a closed rectilinear polygon, one "row,col" vertex per line,
and finds the largest axis-aligned rectangle with two polygon vertices as
opposite corners that lies entirely inside or on the polygon.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if logLevel != "" {
			loaded.Logging.Level = logLevel
			if err := config.Validate(loaded); err != nil {
				return err
			}
		}
		cfg = loaded
		return rlog.Init(rlog.Options{
			Path:   cfg.Logging.Path,
			Level:  cfg.Logging.Level,
			Format: cfg.Logging.Format,
		})
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := execute(ctx, os.Args[1:])
	stop()
	if err != nil {
		os.Exit(1)
	}
}

// execute runs the command line in args. The log file, if any, is closed
// before it returns, whether or not the command failed.
func execute(ctx context.Context, args []string) error {
	defer rlog.Close()

	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(ctx)
	// cobra already printed the error on stderr; record it in the log file too.
	if err != nil && rlog.Path() != "" {
		slog.Error("command failed", "err", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath, "Path to the configuration file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Override the configured log level (debug, info, warn, error)")
}

// inputPath returns the points file named on the command line, or stdin.
func inputPath(args []string) string {
	if len(args) == 0 {
		return "-"
	}
	return args[0]
}

func solverOptions(c *config.Config) solver.Options {
	return solver.Options{
		BlockSize: c.Search.BlockSize,
		Workers:   c.Search.Workers,
		Strict:    c.Input.Strict,
	}
}
