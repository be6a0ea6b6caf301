package sqlite

import (
	"context"
	"time"

	"github.com/gurugrv/dashpage"
)

// Compile-time interface verification.
var _ dashpage.FileService = (*FileService)(nil)

// FileService implements dashpage.FileService using SQLite.
type FileService struct {
	db *DB
}

// NewFileService creates a new FileService.
func NewFileService(db *DB) *FileService {
	return &FileService{db: db}
}

// SaveFiles upserts every file in the set for the given site. Rows whose
// content hash is unchanged are left untouched so updated_at stays honest.
func (s *FileService) SaveFiles(ctx context.Context, siteID string, files dashpage.FileSet) error {
	if siteID == "" {
		return dashpage.Errorf(dashpage.EINVALID, "site ID required")
	}

	now := time.Now().UTC().Format(time.RFC3339)
	for _, path := range files.Paths() {
		content := files[path]
		hash := dashpage.ContentHash(content)

		_, err := s.db.ExecContext(ctx, `
			INSERT INTO files (site_id, path, content, content_hash, updated_at)
			VALUES (?, ?, ?, ?, ?)
			ON CONFLICT (site_id, path) DO UPDATE SET
				content = excluded.content,
				content_hash = excluded.content_hash,
				updated_at = excluded.updated_at
			WHERE files.content_hash != excluded.content_hash
		`, siteID, path, content, hash, now)
		if err != nil {
			return err
		}
	}
	return nil
}

// LoadFiles returns the complete file set for the given site.
func (s *FileService) LoadFiles(ctx context.Context, siteID string) (dashpage.FileSet, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT path, content FROM files WHERE site_id = ?
	`, siteID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	files := dashpage.FileSet{}
	for rows.Next() {
		var path, content string
		if err := rows.Scan(&path, &content); err != nil {
			return nil, err
		}
		files.Write(path, content)
	}
	return files, rows.Err()
}

// DeleteFiles removes all files for the given site.
func (s *FileService) DeleteFiles(ctx context.Context, siteID string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM files WHERE site_id = ?`, siteID)
	return err
}
