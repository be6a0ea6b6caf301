package slog

import (
	"log/slog"
	"time"

	"github.com/gurugrv/dashpage"
)

// Ensure LoggingLinter implements dashpage.Linter.
var _ dashpage.Linter = (*LoggingLinter)(nil)

// LoggingLinter wraps a Linter with debug logging.
type LoggingLinter struct {
	next   dashpage.Linter
	logger *slog.Logger
}

// NewLoggingLinter creates a new LoggingLinter.
func NewLoggingLinter(next dashpage.Linter, logger *slog.Logger) *LoggingLinter {
	return &LoggingLinter{next: next, logger: logger}
}

// Lint delegates to the wrapped linter and logs the operation.
func (l *LoggingLinter) Lint(path, content string) (issues []dashpage.LintIssue, err error) {
	defer func(begin time.Time) {
		l.logger.Info("lint",
			"path", path,
			"issues", len(issues),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return l.next.Lint(path, content)
}
