package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gurugrv/dashpage"
	"github.com/gurugrv/dashpage/fs"
	"github.com/gurugrv/dashpage/goquery"
	"github.com/gurugrv/dashpage/stream"
)

// streamChunkSize is the read size used when feeding a stream to an
// extractor. Small enough to exercise incremental parsing, large enough to
// keep re-scans cheap.
const streamChunkSize = 4096

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	input, cleanup, err := openInput(deps, c.Input)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", dashpage.ErrorMessage(err))
		return err
	}
	defer cleanup()

	// Feed the stream chunk by chunk; the last result wins.
	ex := stream.NewArtifactExtractor()
	var res stream.ArtifactResult
	buf := make([]byte, streamChunkSize)
	for {
		n, err := input.Read(buf)
		if n > 0 {
			res = ex.Parse(string(buf[:n]))
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error reading stream: %v\n", err)
			return err
		}
	}

	if !res.Complete {
		err := dashpage.Errorf(dashpage.EINVALID, "stream ended before the artifact closed")
		fmt.Fprintf(deps.Stderr, "error: %s\n", dashpage.ErrorMessage(err))
		return err
	}
	if len(res.Files) == 0 {
		err := dashpage.Errorf(dashpage.EINVALID, "stream contained no files")
		fmt.Fprintf(deps.Stderr, "error: %s\n", dashpage.ErrorMessage(err))
		return err
	}

	files := res.Files

	// Assign stable block identities to every HTML page.
	for _, path := range files.Paths() {
		if !strings.HasSuffix(path, ".html") {
			continue
		}
		withIDs, err := goquery.EnsureBlockIDs(files[path])
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s: %s\n", path, dashpage.ErrorMessage(err))
			return err
		}
		files.Write(path, withIDs)
	}

	if c.Dedupe {
		deduped, components, err := goquery.ExtractComponents(files)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", dashpage.ErrorMessage(err))
			return err
		}
		files = deduped
		for _, comp := range components {
			fmt.Fprintf(deps.Stdout, "  extracted component %s\n", comp.ID)
		}
	}

	site, err := findOrCreateSite(deps, c.Name)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", dashpage.ErrorMessage(err))
		return err
	}

	if c.Force {
		if err := deps.Files.DeleteFiles(deps.Ctx, site.ID); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", dashpage.ErrorMessage(err))
			return err
		}
	}

	if err := deps.Files.SaveFiles(deps.Ctx, site.ID, files); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", dashpage.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Saved %d files to site %q\n", len(files), site.Name)

	if c.Out != "" {
		if err := exportSite(deps, files, c.Out); err != nil {
			fmt.Fprintf(deps.Stderr, "error exporting: %v\n", err)
			return err
		}
		fmt.Fprintf(deps.Stdout, "Exported to %s\n", c.Out)
	}

	return nil
}

// openInput returns the stream source: a file when path is set, stdin
// otherwise.
func openInput(deps *Dependencies, path string) (io.Reader, func(), error) {
	if path == "" {
		return deps.Stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, dashpage.Errorf(dashpage.EINVALID, "cannot open input %q: %v", path, err)
	}
	return f, func() { f.Close() }, nil
}

// findOrCreateSite resolves a site by name, creating it when missing.
func findOrCreateSite(deps *Dependencies, name string) (*dashpage.Site, error) {
	site, err := deps.Sites.FindSiteByName(deps.Ctx, name)
	if err == nil {
		return site, nil
	}
	if dashpage.ErrorCode(err) != dashpage.ENOTFOUND {
		return nil, err
	}

	site = &dashpage.Site{Name: name}
	if err := deps.Sites.CreateSite(deps.Ctx, site); err != nil {
		return nil, err
	}
	return site, nil
}

// exportSite writes the file set to disk atomically under the given directory.
func exportSite(deps *Dependencies, files dashpage.FileSet, out string) error {
	exporter := fs.NewExporter(filepath.Dir(out), filepath.Base(out))
	if err := exporter.Save(deps.Ctx, files); err != nil {
		_ = exporter.Abort()
		return err
	}
	return exporter.Commit()
}
