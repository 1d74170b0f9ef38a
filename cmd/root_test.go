package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	rlog "github.com/rectfill/rectfill/pkg/log"
)

// captureStdout runs fn with os.Stdout redirected and returns what it wrote.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	orig := os.Stdout
	os.Stdout = w

	done := make(chan string)
	go func() {
		data, _ := io.ReadAll(r)
		done <- string(data)
	}()

	defer func() {
		os.Stdout = orig
	}()
	fn()
	w.Close()
	return <-done
}

// TestExecuteSolveStdout runs the whole command line with the scaffolded
// configuration and checks that stdout carries only the area.
func TestExecuteSolveStdout(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	dir := t.TempDir()
	if err := runInit(dir); err != nil {
		t.Fatalf("runInit failed: %v", err)
	}
	args := []string{
		"solve",
		"--config", filepath.Join(dir, "rectfill.yaml"),
		filepath.Join(dir, "points.txt"),
	}

	var err error
	out := captureStdout(t, func() {
		err = execute(context.Background(), args)
	})
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if out != "24\n" {
		t.Errorf("stdout = %q, want %q", out, "24\n")
	}
}

func TestExecuteClosesLogOnError(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	dir := t.TempDir()
	logPath := filepath.Join(dir, "logs", "rectfill.log")
	cfgPath := filepath.Join(dir, "rectfill.yaml")
	cfgData := "logging:\n  level: info\n  path: " + logPath + "\n"
	if err := os.WriteFile(cfgPath, []byte(cfgData), 0644); err != nil {
		t.Fatal(err)
	}

	args := []string{"solve", "--config", cfgPath, filepath.Join(dir, "missing.txt")}
	if err := execute(context.Background(), args); err == nil {
		t.Fatal("expected error for a missing points file")
	}

	if p := rlog.Path(); p != "" {
		t.Errorf("log file %s still open after a failed command", p)
	}
	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "command failed") || !strings.Contains(string(data), "missing.txt") {
		t.Errorf("log file = %q, want the failure recorded", data)
	}
}
