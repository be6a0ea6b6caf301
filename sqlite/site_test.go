package sqlite_test

import (
	"context"
	"testing"

	"github.com/gurugrv/dashpage"
	"github.com/gurugrv/dashpage/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSiteService_CreateSite(t *testing.T) {
	t.Parallel()

	t.Run("assigns an ID and timestamps", func(t *testing.T) {
		t.Parallel()

		db := openTestDB(t)
		svc := sqlite.NewSiteService(db)

		site := &dashpage.Site{Name: "portfolio"}
		err := svc.CreateSite(context.Background(), site)

		require.NoError(t, err)
		assert.NotEmpty(t, site.ID)
		assert.False(t, site.CreatedAt.IsZero())
	})

	t.Run("rejects a site without a name", func(t *testing.T) {
		t.Parallel()

		db := openTestDB(t)
		svc := sqlite.NewSiteService(db)

		err := svc.CreateSite(context.Background(), &dashpage.Site{})
		assert.Equal(t, dashpage.EINVALID, dashpage.ErrorCode(err))
	})

	t.Run("rejects a duplicate name", func(t *testing.T) {
		t.Parallel()

		db := openTestDB(t)
		svc := sqlite.NewSiteService(db)
		ctx := context.Background()

		require.NoError(t, svc.CreateSite(ctx, &dashpage.Site{Name: "shop"}))
		err := svc.CreateSite(ctx, &dashpage.Site{Name: "shop"})
		assert.Equal(t, dashpage.ECONFLICT, dashpage.ErrorCode(err))
	})
}

func TestSiteService_Find(t *testing.T) {
	t.Parallel()

	t.Run("finds by ID and by name", func(t *testing.T) {
		t.Parallel()

		db := openTestDB(t)
		svc := sqlite.NewSiteService(db)
		ctx := context.Background()

		site := &dashpage.Site{Name: "blog"}
		require.NoError(t, svc.CreateSite(ctx, site))

		byID, err := svc.FindSiteByID(ctx, site.ID)
		require.NoError(t, err)
		assert.Equal(t, "blog", byID.Name)

		byName, err := svc.FindSiteByName(ctx, "blog")
		require.NoError(t, err)
		assert.Equal(t, site.ID, byName.ID)
	})

	t.Run("returns ENOTFOUND for a missing site", func(t *testing.T) {
		t.Parallel()

		db := openTestDB(t)
		svc := sqlite.NewSiteService(db)

		_, err := svc.FindSiteByID(context.Background(), "missing")
		assert.Equal(t, dashpage.ENOTFOUND, dashpage.ErrorCode(err))
	})

	t.Run("lists sites with a name filter", func(t *testing.T) {
		t.Parallel()

		db := openTestDB(t)
		svc := sqlite.NewSiteService(db)
		ctx := context.Background()

		require.NoError(t, svc.CreateSite(ctx, &dashpage.Site{Name: "one"}))
		require.NoError(t, svc.CreateSite(ctx, &dashpage.Site{Name: "two"}))

		name := "two"
		sites, err := svc.FindSites(ctx, dashpage.SiteFilter{Name: &name})
		require.NoError(t, err)
		require.Len(t, sites, 1)
		assert.Equal(t, "two", sites[0].Name)
	})
}

func TestSiteService_DeleteSite(t *testing.T) {
	t.Parallel()

	t.Run("deletes the site and cascades to files", func(t *testing.T) {
		t.Parallel()

		db := openTestDB(t)
		sites := sqlite.NewSiteService(db)
		files := sqlite.NewFileService(db)
		ctx := context.Background()

		site := &dashpage.Site{Name: "temp"}
		require.NoError(t, sites.CreateSite(ctx, site))
		require.NoError(t, files.SaveFiles(ctx, site.ID, dashpage.FileSet{"index.html": "<p>x</p>"}))

		require.NoError(t, sites.DeleteSite(ctx, site.ID))

		_, err := sites.FindSiteByID(ctx, site.ID)
		assert.Equal(t, dashpage.ENOTFOUND, dashpage.ErrorCode(err))

		loaded, err := files.LoadFiles(ctx, site.ID)
		require.NoError(t, err)
		assert.Empty(t, loaded)
	})

	t.Run("returns ENOTFOUND for a missing site", func(t *testing.T) {
		t.Parallel()

		db := openTestDB(t)
		svc := sqlite.NewSiteService(db)

		err := svc.DeleteSite(context.Background(), "missing")
		assert.Equal(t, dashpage.ENOTFOUND, dashpage.ErrorCode(err))
	})
}
