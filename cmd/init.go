package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rectfill/rectfill/internal/config"
	"github.com/rectfill/rectfill/internal/templates"
	"github.com/rectfill/rectfill/pkg/algo"
)

// initCmd represents the init command.
var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Create a rectfill.yaml, a .env and a sample points file",
	Args:  cobra.MaximumNArgs(1),
	// init writes the configuration; it must not require one.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}
		if err := runInit(dir); err != nil {
			return fmt.Errorf("initializing project: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}

// runInit scaffolds dir with a configuration file, an environment file and
// the example polygon. It refuses to overwrite an existing configuration.
func runInit(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	cfgPath := filepath.Join(dir, config.DefaultPath)
	if _, err := os.Stat(cfgPath); !os.IsNotExist(err) {
		return fmt.Errorf("%s already exists", cfgPath)
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return err
	}
	data := templates.Scaffold{Name: filepath.Base(abs), BlockSize: algo.DefaultBlockSize}

	files := []struct{ tmpl, dest string }{
		{"rectfill.yaml.tmpl", config.DefaultPath},
		{"env.tmpl", ".env"},
		{"points.txt.tmpl", "points.txt"},
	}
	for _, f := range files {
		dest := filepath.Join(dir, f.dest)
		if f.dest != config.DefaultPath {
			if _, err := os.Stat(dest); err == nil {
				fmt.Printf("Skipping %s (exists)\n", dest)
				continue
			}
		}
		if err := templates.WriteFile(f.tmpl, dest, data); err != nil {
			return err
		}
	}

	fmt.Printf("Initialized rectfill in %s\n", dir)
	fmt.Println("Next steps:")
	fmt.Printf("  rectfill solve %s\n", filepath.Join(dir, "points.txt"))
	fmt.Printf("  rectfill render %s -o grid.png\n", filepath.Join(dir, "points.txt"))
	return nil
}
