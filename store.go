package dashpage

import (
	"context"
	"time"
)

// Site represents one generated website owned by a conversation.
type Site struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Validate returns an error if the site contains invalid fields.
func (s *Site) Validate() error {
	if s.Name == "" {
		return Errorf(EINVALID, "site name required")
	}
	return nil
}

// SiteFilter represents a filter for FindSites.
type SiteFilter struct {
	ID   *string `json:"id"`
	Name *string `json:"name"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// SiteService represents a service for managing sites.
type SiteService interface {
	// CreateSite creates a new site.
	CreateSite(ctx context.Context, site *Site) error

	// FindSiteByID retrieves a site by ID.
	// Returns ENOTFOUND if site does not exist.
	FindSiteByID(ctx context.Context, id string) (*Site, error)

	// FindSiteByName retrieves a site by its unique name.
	// Returns ENOTFOUND if site does not exist.
	FindSiteByName(ctx context.Context, name string) (*Site, error)

	// FindSites retrieves sites matching the filter.
	FindSites(ctx context.Context, filter SiteFilter) ([]*Site, error)

	// DeleteSite permanently removes a site and all associated files.
	// Returns ENOTFOUND if site does not exist.
	DeleteSite(ctx context.Context, id string) error
}

// FileService persists the file set of a site. Implementations are opaque
// beyond this interface; the engine never reads or writes storage directly.
type FileService interface {
	// SaveFiles upserts every file in the set for the given site.
	SaveFiles(ctx context.Context, siteID string, files FileSet) error

	// LoadFiles returns the complete file set for the given site.
	LoadFiles(ctx context.Context, siteID string) (FileSet, error)

	// DeleteFiles removes all files for the given site.
	DeleteFiles(ctx context.Context, siteID string) error
}

// FileExporter writes a file set to a destination with atomic semantics.
// Save stages files in a temporary location; Commit makes them permanent;
// Abort discards pending changes.
type FileExporter interface {
	Save(ctx context.Context, files FileSet) error
	Commit() error
	Abort() error
}
