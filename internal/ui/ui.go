package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/muesli/termenv"
)

var (
	out    = termenv.NewOutput(os.Stdout)
	errOut = termenv.NewOutput(os.Stderr)
)

// SetOutput redirects printed lines to w. Colors are dropped unless w is a
// terminal.
func SetOutput(w io.Writer) {
	out = termenv.NewOutput(w)
}

func PrintHeader(msg string) {
	fmt.Fprintf(out, "\n%s\n", out.String(msg).Bold())
}

func PrintSuccess(label, detail string) {
	printLine("✔", termenv.ANSIGreen, label, detail)
}

func PrintError(label, detail string) {
	printLine("✘", termenv.ANSIRed, label, detail)
}

func PrintWarning(label, detail string) {
	printLine("!", termenv.ANSIYellow, label, detail)
}

func printLine(mark string, c termenv.ANSIColor, label, detail string) {
	fmt.Fprintf(out, "  %s %-15s %s\n", out.String(mark).Foreground(c), label, out.String(detail).Foreground(c))
}

// Spinner represents a loading indicator drawn on stderr.
type Spinner struct {
	msg      string
	stopChan chan struct{}
	doneChan chan struct{}
	stopOnce sync.Once
}

// StartSpinner starts a new spinner with the given message. Nothing is drawn
// when stderr is not a terminal.
func StartSpinner(msg string) *Spinner {
	s := &Spinner{
		msg:      msg,
		stopChan: make(chan struct{}),
		doneChan: make(chan struct{}),
	}
	if errOut.Profile == termenv.Ascii {
		close(s.doneChan)
		return s
	}
	go s.run()
	return s
}

func (s *Spinner) run() {
	defer close(s.doneChan)
	chars := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()
	i := 0
	for {
		fmt.Fprintf(errOut, "\r%s %s", errOut.String(chars[i]).Foreground(termenv.ANSICyan), s.msg)
		select {
		case <-s.stopChan:
			fmt.Fprintf(errOut, "\r%s\r", strings.Repeat(" ", len(s.msg)+10))
			return
		case <-ticker.C:
			i = (i + 1) % len(chars)
		}
	}
}

// Stop stops the spinner and clears the line. Safe to call multiple times.
func (s *Spinner) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopChan)
	})
	<-s.doneChan
}

// RunSpinner executes the given action while showing a spinner.
func RunSpinner(msg string, action func() error) error {
	s := StartSpinner(msg)
	defer s.Stop()
	return action()
}
