package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/gurugrv/dashpage"
	"github.com/gurugrv/dashpage/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Story: Atomic Site Export
// The exporter stages files in a temp directory and swaps it in on Commit.

func TestExporter_SaveWritesToTempDirectory(t *testing.T) {
	t.Parallel()

	// Given an exporter targeting a directory
	base := t.TempDir()
	exp := fs.NewExporter(base, "site")

	// When I save a file set
	err := exp.Save(context.Background(), dashpage.FileSet{
		"index.html":       "<h1>Home</h1>",
		"css/styles.css":   "body { margin: 0; }",
		"pages/about.html": "<h1>About</h1>",
	})

	// Then no error occurs
	require.NoError(t, err)

	// And files exist in the temp directory (not final)
	tempPath := filepath.Join(base, "site.tmp", "pages", "about.html")
	_, err = os.Stat(tempPath)
	require.NoError(t, err, "file should exist in temp directory")

	finalPath := filepath.Join(base, "site", "index.html")
	_, err = os.Stat(finalPath)
	assert.True(t, os.IsNotExist(err), "final directory should not exist until commit")
}

func TestExporter_CommitMovesFromTempToFinal(t *testing.T) {
	t.Parallel()

	// Given an exporter with staged files
	base := t.TempDir()
	exp := fs.NewExporter(base, "site")
	err := exp.Save(context.Background(), dashpage.FileSet{"index.html": "<h1>Home</h1>"})
	require.NoError(t, err)

	// When I commit
	err = exp.Commit()
	require.NoError(t, err)

	// Then the final directory exists with content
	content, err := os.ReadFile(filepath.Join(base, "site", "index.html"))
	require.NoError(t, err)
	assert.Equal(t, "<h1>Home</h1>", string(content))

	// And the temp directory is gone
	_, err = os.Stat(filepath.Join(base, "site.tmp"))
	assert.True(t, os.IsNotExist(err), "temp directory should be removed after commit")
}

func TestExporter_CommitReplacesExistingExport(t *testing.T) {
	t.Parallel()

	// Given a previously committed export
	base := t.TempDir()
	first := fs.NewExporter(base, "site")
	require.NoError(t, first.Save(context.Background(), dashpage.FileSet{
		"index.html": "<h1>v1</h1>",
		"stale.html": "<h1>old</h1>",
	}))
	require.NoError(t, first.Commit())

	// When I commit a new export without the stale file
	second := fs.NewExporter(base, "site")
	require.NoError(t, second.Save(context.Background(), dashpage.FileSet{"index.html": "<h1>v2</h1>"}))
	require.NoError(t, second.Commit())

	// Then the new content replaces the old
	content, err := os.ReadFile(filepath.Join(base, "site", "index.html"))
	require.NoError(t, err)
	assert.Equal(t, "<h1>v2</h1>", string(content))

	// And the stale file is gone
	_, err = os.Stat(filepath.Join(base, "site", "stale.html"))
	assert.True(t, os.IsNotExist(err), "stale files should not survive a new commit")
}

func TestExporter_AbortCleansUpTempDirectory(t *testing.T) {
	t.Parallel()

	// Given an exporter with staged files
	base := t.TempDir()
	exp := fs.NewExporter(base, "site")
	err := exp.Save(context.Background(), dashpage.FileSet{"index.html": "<h1>Home</h1>"})
	require.NoError(t, err)

	// When I abort
	err = exp.Abort()
	require.NoError(t, err)

	// Then both directories are absent
	_, err = os.Stat(filepath.Join(base, "site.tmp"))
	assert.True(t, os.IsNotExist(err), "temp directory should be removed after abort")

	_, err = os.Stat(filepath.Join(base, "site"))
	assert.True(t, os.IsNotExist(err), "final directory should not exist after abort")
}

func TestExporter_RejectsPathTraversal(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	exp := fs.NewExporter(base, "site")

	err := exp.Save(context.Background(), dashpage.FileSet{
		"../../etc/passwd": "bad content",
	})

	require.Error(t, err, "path traversal should be rejected")
	assert.Equal(t, dashpage.EINVALID, dashpage.ErrorCode(err))
}

func TestExporter_RejectsAbsolutePaths(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	exp := fs.NewExporter(base, "site")

	err := exp.Save(context.Background(), dashpage.FileSet{
		"/etc/passwd": "bad content",
	})

	require.Error(t, err)
	assert.Equal(t, dashpage.EINVALID, dashpage.ErrorCode(err))
}
