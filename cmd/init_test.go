package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rectfill/rectfill/internal/config"
)

// TestRunInit verifies that the init command scaffolds a project with the
// expected files and that the written configuration loads.
func TestRunInit(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "my-test-project")

	if err := runInit(dir); err != nil {
		t.Fatalf("runInit failed: %v", err)
	}

	expectedFiles := []string{
		"rectfill.yaml",
		".env",
		"points.txt",
	}
	for _, f := range expectedFiles {
		path := filepath.Join(dir, f)
		if _, err := os.Stat(path); os.IsNotExist(err) {
			t.Errorf("Expected file %s not created", path)
		}
	}

	cfg, err := config.Load(filepath.Join(dir, "rectfill.yaml"))
	if err != nil {
		t.Fatalf("generated config does not load: %v", err)
	}
	if cfg.Search.BlockSize != 8 {
		t.Errorf("block_size = %d, want 8", cfg.Search.BlockSize)
	}
}

func TestRunInitRefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	if err := runInit(dir); err != nil {
		t.Fatalf("first runInit failed: %v", err)
	}
	if err := runInit(dir); err == nil {
		t.Fatal("expected error when rectfill.yaml exists")
	}
}
