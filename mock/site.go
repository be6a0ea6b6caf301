// Package mock provides mock implementations of dashpage interfaces for testing.
package mock

import (
	"context"

	"github.com/gurugrv/dashpage"
)

var _ dashpage.SiteService = (*SiteService)(nil)

// SiteService is a mock implementation of dashpage.SiteService.
type SiteService struct {
	CreateSiteFn     func(ctx context.Context, site *dashpage.Site) error
	FindSiteByIDFn   func(ctx context.Context, id string) (*dashpage.Site, error)
	FindSiteByNameFn func(ctx context.Context, name string) (*dashpage.Site, error)
	FindSitesFn      func(ctx context.Context, filter dashpage.SiteFilter) ([]*dashpage.Site, error)
	DeleteSiteFn     func(ctx context.Context, id string) error
}

func (s *SiteService) CreateSite(ctx context.Context, site *dashpage.Site) error {
	return s.CreateSiteFn(ctx, site)
}

func (s *SiteService) FindSiteByID(ctx context.Context, id string) (*dashpage.Site, error) {
	return s.FindSiteByIDFn(ctx, id)
}

func (s *SiteService) FindSiteByName(ctx context.Context, name string) (*dashpage.Site, error) {
	return s.FindSiteByNameFn(ctx, name)
}

func (s *SiteService) FindSites(ctx context.Context, filter dashpage.SiteFilter) ([]*dashpage.Site, error) {
	return s.FindSitesFn(ctx, filter)
}

func (s *SiteService) DeleteSite(ctx context.Context, id string) error {
	return s.DeleteSiteFn(ctx, id)
}
