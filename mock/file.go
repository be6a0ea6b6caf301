package mock

import (
	"context"

	"github.com/gurugrv/dashpage"
)

var _ dashpage.FileService = (*FileService)(nil)

// FileService is a mock implementation of dashpage.FileService.
type FileService struct {
	SaveFilesFn   func(ctx context.Context, siteID string, files dashpage.FileSet) error
	LoadFilesFn   func(ctx context.Context, siteID string) (dashpage.FileSet, error)
	DeleteFilesFn func(ctx context.Context, siteID string) error
}

func (s *FileService) SaveFiles(ctx context.Context, siteID string, files dashpage.FileSet) error {
	return s.SaveFilesFn(ctx, siteID, files)
}

func (s *FileService) LoadFiles(ctx context.Context, siteID string) (dashpage.FileSet, error) {
	return s.LoadFilesFn(ctx, siteID)
}

func (s *FileService) DeleteFiles(ctx context.Context, siteID string) error {
	return s.DeleteFilesFn(ctx, siteID)
}

var _ dashpage.FileExporter = (*FileExporter)(nil)

// FileExporter is a mock implementation of dashpage.FileExporter.
type FileExporter struct {
	SaveFn   func(ctx context.Context, files dashpage.FileSet) error
	CommitFn func() error
	AbortFn  func() error
}

func (e *FileExporter) Save(ctx context.Context, files dashpage.FileSet) error {
	return e.SaveFn(ctx, files)
}

func (e *FileExporter) Commit() error {
	return e.CommitFn()
}

func (e *FileExporter) Abort() error {
	return e.AbortFn()
}
