// Package slog provides logging decorators for dashpage services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/gurugrv/dashpage"
)

// Ensure LoggingFileService implements dashpage.FileService.
var _ dashpage.FileService = (*LoggingFileService)(nil)

// LoggingFileService wraps a FileService with debug logging.
type LoggingFileService struct {
	next   dashpage.FileService
	logger *slog.Logger
}

// NewLoggingFileService creates a new LoggingFileService.
func NewLoggingFileService(next dashpage.FileService, logger *slog.Logger) *LoggingFileService {
	return &LoggingFileService{next: next, logger: logger}
}

// SaveFiles delegates to the wrapped service and logs the operation.
func (s *LoggingFileService) SaveFiles(ctx context.Context, siteID string, files dashpage.FileSet) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("save files",
			"site", siteID,
			"count", len(files),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.SaveFiles(ctx, siteID, files)
}

// LoadFiles delegates to the wrapped service and logs the operation.
func (s *LoggingFileService) LoadFiles(ctx context.Context, siteID string) (files dashpage.FileSet, err error) {
	defer func(begin time.Time) {
		s.logger.Info("load files",
			"site", siteID,
			"count", len(files),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.LoadFiles(ctx, siteID)
}

// DeleteFiles delegates to the wrapped service and logs the operation.
func (s *LoggingFileService) DeleteFiles(ctx context.Context, siteID string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("delete files",
			"site", siteID,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteFiles(ctx, siteID)
}
