// Package logging provides structured logging for handcheck.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// Options configures the logger.
type Options struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string
	// Output is the writer for log output (default: os.Stderr).
	Output io.Writer
	// Prefix is the component name prefix.
	Prefix string
	// ReportCaller adds file:line to log entries.
	ReportCaller bool
}

// DefaultOptions logs at info level to stderr so prompts on stdout stay clean.
func DefaultOptions() Options {
	return Options{
		Level:  "info",
		Output: os.Stderr,
	}
}

// ParseLevel converts a string level to log.Level.
func ParseLevel(level string) log.Level {
	switch strings.ToLower(level) {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// New creates a logger with the given options.
func New(opts Options) *log.Logger {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	return log.NewWithOptions(out, log.Options{
		Level:           ParseLevel(opts.Level),
		Prefix:          opts.Prefix,
		TimeFormat:      time.Kitchen,
		ReportCaller:    opts.ReportCaller,
		ReportTimestamp: true,
	})
}

// Discard returns a logger that drops everything. Used by tests.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
}

// Component returns a child of parent prefixed with the component name,
// nested under the parent's prefix ("handcheck/runner").
func Component(parent *log.Logger, name string) *log.Logger {
	if prefix := parent.GetPrefix(); prefix != "" {
		return parent.WithPrefix(prefix + "/" + name)
	}

	return parent.WithPrefix(name)
}
