package errors

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// CLIErrorAdapter handles error presentation and exit code determination for the CLI.
type CLIErrorAdapter struct {
	verbose bool
	logger  *slog.Logger
	out     io.Writer
}

// NewCLIErrorAdapter creates a new CLI error adapter writing user-facing messages to stderr.
func NewCLIErrorAdapter(verbose bool, logger *slog.Logger) *CLIErrorAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CLIErrorAdapter{
		verbose: verbose,
		logger:  logger,
		out:     os.Stderr,
	}
}

// ExitCodeFor determines the appropriate exit code for an error.
func (a *CLIErrorAdapter) ExitCodeFor(err error) int {
	if err == nil {
		return 0
	}

	ne, ok := As(err)
	if !ok {
		return 1
	}
	switch ne.Category {
	case CategoryValidation:
		return 2 // Invalid navigation records
	case CategoryInput:
		return 3 // Unreadable input
	case CategoryConfig:
		return 7 // Configuration error
	case CategoryFileSystem:
		return 11 // Output error
	case CategoryInternal:
		return 10 // Internal error
	default:
		return 1 // General error
	}
}

// FormatError formats an error for user-friendly display.
func (a *CLIErrorAdapter) FormatError(err error) string {
	if err == nil {
		return ""
	}

	ne, ok := As(err)
	if !ok || a.verbose {
		return fmt.Sprintf("Error: %v", err)
	}

	// Without the category prefix; the context carries id/line for diagnosis.
	prefix := fmt.Sprintf("%s (%s): ", ne.Category, ne.Severity)
	return "Error: " + strings.TrimPrefix(ne.Error(), prefix)
}

// Handle logs and prints err and returns the process exit code.
func (a *CLIErrorAdapter) Handle(err error) int {
	if err == nil {
		return 0
	}
	a.logError(err)
	_, _ = fmt.Fprintln(a.out, a.FormatError(err))
	return a.ExitCodeFor(err)
}

// logError logs an error with appropriate level and context.
func (a *CLIErrorAdapter) logError(err error) {
	ne, ok := As(err)
	if !ok {
		a.logger.Error("Unclassified error", "error", err)
		return
	}

	attrs := []slog.Attr{
		slog.String("category", string(ne.Category)),
	}
	for k, v := range ne.Context {
		attrs = append(attrs, slog.Any(k, v))
	}
	if ne.Cause != nil {
		attrs = append(attrs, slog.String("cause", ne.Cause.Error()))
	}
	a.logger.LogAttrs(context.Background(), slogLevelFromSeverity(ne.Severity), ne.Message, attrs...)
}

func slogLevelFromSeverity(severity ErrorSeverity) slog.Level {
	switch severity {
	case SeverityInfo:
		return slog.LevelInfo
	case SeverityWarning:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}
