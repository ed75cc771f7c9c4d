package logging

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// New creates the CLI logger. It writes to stderr so stdout stays clean
// for redirection.
func New(verbose bool) *log.Logger {
	return NewWithWriter(os.Stderr, verbose)
}

// NewWithWriter creates a logger writing to w.
func NewWithWriter(w io.Writer, verbose bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: false,
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}
