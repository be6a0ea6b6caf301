package main

import (
	"fmt"

	"github.com/gurugrv/dashpage"
	"github.com/gurugrv/dashpage/goquery"
)

// Run executes the dedupe command.
func (c *DedupeCmd) Run(deps *Dependencies) error {
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
	if len(files) == 0 {
		fmt.Fprintf(deps.Stdout, "Site %q has no files.\n", c.Name)
		return nil
	}

	deduped, components, err := goquery.ExtractComponents(files)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", dashpage.ErrorMessage(err))
		return err
	}

	if len(components) == 0 {
		fmt.Fprintln(deps.Stdout, "No shared components found.")
		return nil
	}

	if err := deps.Files.SaveFiles(deps.Ctx, site.ID, deduped); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", dashpage.ErrorMessage(err))
		return err
	}

	for _, comp := range components {
		fmt.Fprintf(deps.Stdout, "  %s -> %s\n", comp.ID, comp.Filename)
	}
	fmt.Fprintf(deps.Stdout, "Extracted %d components\n", len(components))
	return nil
}
