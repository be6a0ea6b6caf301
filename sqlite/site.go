package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gurugrv/dashpage"
)

// Compile-time interface verification.
var _ dashpage.SiteService = (*SiteService)(nil)

// SiteService implements dashpage.SiteService using SQLite.
type SiteService struct {
	db *DB
}

// NewSiteService creates a new SiteService.
func NewSiteService(db *DB) *SiteService {
	return &SiteService{db: db}
}

// CreateSite creates a new site.
func (s *SiteService) CreateSite(ctx context.Context, site *dashpage.Site) error {
	if err := site.Validate(); err != nil {
		return err
	}

	site.ID = uuid.New().String()
	now := time.Now().UTC()
	site.CreatedAt = now
	site.UpdatedAt = now

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO sites (id, name, created_at, updated_at)
		VALUES (?, ?, ?, ?)
	`, site.ID, site.Name,
		site.CreatedAt.Format(time.RFC3339), site.UpdatedAt.Format(time.RFC3339))

	if err != nil && strings.Contains(err.Error(), "UNIQUE") {
		return dashpage.Errorf(dashpage.ECONFLICT, "site name %q already exists", site.Name)
	}
	return err
}

// FindSiteByID retrieves a site by ID.
func (s *SiteService) FindSiteByID(ctx context.Context, id string) (*dashpage.Site, error) {
	return s.findSite(ctx, "id = ?", id)
}

// FindSiteByName retrieves a site by its unique name.
func (s *SiteService) FindSiteByName(ctx context.Context, name string) (*dashpage.Site, error) {
	return s.findSite(ctx, "name = ?", name)
}

func (s *SiteService) findSite(ctx context.Context, where string, arg any) (*dashpage.Site, error) {
	var site dashpage.Site
	var createdAt, updatedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, created_at, updated_at
		FROM sites
		WHERE `+where, arg).Scan(&site.ID, &site.Name, &createdAt, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, dashpage.Errorf(dashpage.ENOTFOUND, "site not found")
	}
	if err != nil {
		return nil, err
	}

	if err := parseTimes(&site, createdAt, updatedAt); err != nil {
		return nil, err
	}
	return &site, nil
}

// FindSites retrieves sites matching the filter.
func (s *SiteService) FindSites(ctx context.Context, filter dashpage.SiteFilter) ([]*dashpage.Site, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, name, created_at, updated_at FROM sites WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Name != nil {
		query.WriteString(" AND name = ?")
		args = append(args, *filter.Name)
	}

	query.WriteString(" ORDER BY created_at DESC")

	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		query.WriteString(" OFFSET ?")
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sites []*dashpage.Site
	for rows.Next() {
		var site dashpage.Site
		var createdAt, updatedAt string

		if err := rows.Scan(&site.ID, &site.Name, &createdAt, &updatedAt); err != nil {
			return nil, err
		}
		if err := parseTimes(&site, createdAt, updatedAt); err != nil {
			return nil, err
		}
		sites = append(sites, &site)
	}
	return sites, rows.Err()
}

// DeleteSite permanently removes a site and all associated files.
func (s *SiteService) DeleteSite(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM sites WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return dashpage.Errorf(dashpage.ENOTFOUND, "site not found")
	}
	return nil
}

func parseTimes(site *dashpage.Site, createdAt, updatedAt string) error {
	var err error
	site.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return fmt.Errorf("failed to parse created_at: %w", err)
	}
	site.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt)
	if err != nil {
		return fmt.Errorf("failed to parse updated_at: %w", err)
	}
	return nil
}
