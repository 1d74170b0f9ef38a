// Package log configures the process-wide slog logger for rectfill.
//
// Stdout belongs to command results, so records never go there: they are
// written to stderr, or appended to a file when one is configured.
package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Options selects where records go and how they look.
type Options struct {
	// Path is the log file. Empty means stderr.
	Path string
	// Level is one of debug, info, warn or error. Anything else means info.
	Level string
	// Format is "json" for one object per line; anything else is text.
	Format string
}

var (
	mu      sync.Mutex
	file    *os.File
	current Options
)

// Init installs the default logger described by opts. A previously opened
// log file is closed once the new sink is ready.
func Init(opts Options) error {
	mu.Lock()
	defer mu.Unlock()

	var w io.Writer = os.Stderr
	var f *os.File
	if opts.Path != "" {
		var err error
		if f, err = openAppend(opts.Path); err != nil {
			return err
		}
		w = f
	}

	slog.SetDefault(slog.New(newHandler(w, opts.Level, opts.Format)))
	closeFile()
	file, current = f, opts
	return nil
}

// Path returns the file records are appended to, or "" when they go to
// stderr or no file is open.
func Path() string {
	mu.Lock()
	defer mu.Unlock()
	if file == nil {
		return ""
	}
	return current.Path
}

// Close closes the log file opened by Init, if any, and points the default
// logger back at stderr so late records are not lost.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if file == nil {
		return nil
	}
	slog.SetDefault(slog.New(newHandler(os.Stderr, current.Level, current.Format)))
	return closeFile()
}

func openAppend(p string) (*os.File, error) {
	if dir := filepath.Dir(p); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
	}
	f, err := os.OpenFile(p, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return f, nil
}

func closeFile() error {
	if file == nil {
		return nil
	}
	err := file.Close()
	file = nil
	return err
}

func newHandler(w io.Writer, level, format string) slog.Handler {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}
	if strings.EqualFold(format, "json") {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
