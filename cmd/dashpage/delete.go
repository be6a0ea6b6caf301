package main

import (
	"fmt"

	"github.com/gurugrv/dashpage"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return dashpage.Errorf(dashpage.EINVALID, "use --force to confirm deletion")
	}

	site, err := deps.Sites.FindSiteByName(deps.Ctx, c.Name)
	if err != nil {
		if dashpage.ErrorCode(err) == dashpage.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: site %q not found. Use 'dashpage list' to see available sites.\n", c.Name)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", dashpage.ErrorMessage(err))
		}
		return err
	}

	if err := deps.Sites.DeleteSite(deps.Ctx, site.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", dashpage.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted site %q\n", site.Name)
	return nil
}
