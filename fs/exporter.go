// Package fs provides filesystem export for generated sites.
package fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/gurugrv/dashpage"
)

// Ensure Exporter implements dashpage.FileExporter at compile time.
var _ dashpage.FileExporter = (*Exporter)(nil)

// Exporter implements dashpage.FileExporter with atomic update semantics.
// Files are saved to a temporary directory, then moved atomically on Commit.
type Exporter struct {
	baseDir string
	name    string
}

// NewExporter creates a new Exporter.
// baseDir is the parent directory, name is the output directory name.
// Files are saved to baseDir/name.tmp and moved to baseDir/name on Commit.
func NewExporter(baseDir, name string) *Exporter {
	return &Exporter{
		baseDir: baseDir,
		name:    name,
	}
}

func (e *Exporter) tempDir() string {
	return filepath.Join(e.baseDir, e.name+".tmp")
}

func (e *Exporter) finalDir() string {
	return filepath.Join(e.baseDir, e.name)
}

// Save stages the file set under the temporary directory.
func (e *Exporter) Save(ctx context.Context, files dashpage.FileSet) error {
	for _, path := range files.Paths() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := validatePath(path); err != nil {
			return err
		}

		fullPath := filepath.Join(e.tempDir(), filepath.FromSlash(path))

		// Create parent directories
		dir := filepath.Dir(fullPath)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}

		if err := os.WriteFile(fullPath, []byte(files[path]), 0644); err != nil {
			return err
		}
	}
	return nil
}

// validatePath rejects paths that would escape the export directory.
func validatePath(path string) error {
	if path == "" {
		return dashpage.Errorf(dashpage.EINVALID, "file path required")
	}
	if strings.HasPrefix(path, "/") || filepath.IsAbs(path) {
		return dashpage.Errorf(dashpage.EINVALID, "file path %q must be relative", path)
	}
	clean := filepath.ToSlash(filepath.Clean(filepath.FromSlash(path)))
	if clean == ".." || strings.HasPrefix(clean, "../") {
		return dashpage.Errorf(dashpage.EINVALID, "file path %q escapes the export directory", path)
	}
	return nil
}

func (e *Exporter) Commit() error {
	// Remove existing final directory if present
	if err := os.RemoveAll(e.finalDir()); err != nil {
		return err
	}

	// Atomically rename temp to final
	if err := os.Rename(e.tempDir(), e.finalDir()); err != nil {
		return err
	}

	return nil
}

func (e *Exporter) Abort() error {
	return os.RemoveAll(e.tempDir())
}
