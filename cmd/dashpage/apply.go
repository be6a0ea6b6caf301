package main

import (
	"fmt"
	"io"

	"github.com/gurugrv/dashpage"
	"github.com/gurugrv/dashpage/goquery"
	"github.com/gurugrv/dashpage/patch"
	"github.com/gurugrv/dashpage/stream"
)

// Run executes the apply command.
func (c *ApplyCmd) Run(deps *Dependencies) error {
	input, cleanup, err := openInput(deps, c.Input)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", dashpage.ErrorMessage(err))
		return err
	}
	defer cleanup()

	ex := stream.NewEditExtractor()
	var res stream.EditResult
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
		err := dashpage.Errorf(dashpage.EINVALID, "stream ended before the edit artifact closed")
		fmt.Fprintf(deps.Stderr, "error: %s\n", dashpage.ErrorMessage(err))
		return err
	}
	if len(res.Edits) == 0 && len(res.DomOps) == 0 {
		fmt.Fprintln(deps.Stdout, "No operations to apply.")
		return nil
	}

	site, err := deps.Sites.FindSiteByName(deps.Ctx, c.Name)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", dashpage.ErrorMessage(err))
		return err
	}

	files, err := deps.Files.LoadFiles(deps.Ctx, site.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", dashpage.ErrorMessage(err))
		return err
	}
	content, ok := files.Read(c.File)
	if !ok {
		err := dashpage.Errorf(dashpage.ENOTFOUND, "file %q not found in site %q", c.File, c.Name)
		fmt.Fprintf(deps.Stderr, "error: %s\n", dashpage.ErrorMessage(err))
		return err
	}

	failed := 0

	// Text edits first, then DOM operations against the patched text.
	result := patch.Apply(content, res.Edits)
	content = result.Text
	for i := range res.Edits {
		if i < result.Applied {
			fmt.Fprintf(deps.Stdout, "  edit %d: ok\n", i+1)
		} else if i == result.FailedIndex {
			fmt.Fprintf(deps.Stdout, "  edit %d: failed: %s\n", i+1, result.Err)
			failed++
		} else {
			fmt.Fprintf(deps.Stdout, "  edit %d: skipped\n", i+1)
			failed++
		}
	}

	if len(res.DomOps) > 0 {
		domRes, err := goquery.ApplyDomOperations(content, res.DomOps)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", dashpage.ErrorMessage(err))
			return err
		}
		content = domRes.HTML
		for _, r := range domRes.Results {
			if r.Success {
				fmt.Fprintf(deps.Stdout, "  dom %d: ok\n", r.Index+1)
			} else {
				fmt.Fprintf(deps.Stdout, "  dom %d: failed: %s\n", r.Index+1, r.Error)
				failed++
			}
		}
	}

	// Successful mutations are kept even when later operations failed.
	if err := deps.Files.SaveFiles(deps.Ctx, site.ID, dashpage.FileSet{c.File: content}); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", dashpage.ErrorMessage(err))
		return err
	}

	if failed > 0 {
		return dashpage.Errorf(dashpage.EINVALID, "%d operations failed", failed)
	}

	fmt.Fprintf(deps.Stdout, "Updated %s\n", c.File)
	return nil
}
