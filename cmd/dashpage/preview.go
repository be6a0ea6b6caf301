package main

import (
	"fmt"

	"github.com/gurugrv/dashpage"
)

// Run executes the preview command.
func (c *PreviewCmd) Run(deps *Dependencies) error {
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

	if c.Raw {
		fmt.Fprintln(deps.Stdout, dashpage.FormatFiles(files))
		return nil
	}

	content, ok := files.Read(c.File)
	if !ok {
		err := dashpage.Errorf(dashpage.ENOTFOUND, "file %q not found in site %q", c.File, c.Name)
		fmt.Fprintf(deps.Stderr, "error: %s\n", dashpage.ErrorMessage(err))
		return err
	}

	md, err := deps.Converter.Convert(content)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", dashpage.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, md)
	return nil
}
