package main

import (
	"fmt"

	"github.com/gurugrv/dashpage"
	"github.com/gurugrv/dashpage/lint"
)

// Run executes the lint command.
func (c *LintCmd) Run(deps *Dependencies) error {
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

	issuesByPath, err := lint.RunAll(deps.Ctx, deps.Linter, files)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", dashpage.ErrorMessage(err))
		return err
	}

	errors := 0
	total := 0
	for _, path := range files.Paths() {
		for _, issue := range issuesByPath[path] {
			total++
			if issue.Severity == dashpage.SeverityError {
				errors++
			}
			fmt.Fprintf(deps.Stdout, "%s:%d:%d: %s: %s\n",
				path, issue.Line, issue.Column, issue.Severity, issue.Message)
		}
	}

	if total == 0 {
		fmt.Fprintln(deps.Stdout, "No issues found.")
		return nil
	}
	if errors > 0 {
		return dashpage.Errorf(dashpage.EINVALID, "%d errors found", errors)
	}
	return nil
}
