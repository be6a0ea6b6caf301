// Package lint checks generated HTML files for structural problems using a
// streaming tokenizer. It implements the dashpage.Linter collaborator; the
// engine itself only forwards issues for reporting.
package lint

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"github.com/gurugrv/dashpage"
	"golang.org/x/net/html"
	"golang.org/x/sync/errgroup"
)

// Ensure Linter implements dashpage.Linter at compile time.
var _ dashpage.Linter = (*Linter)(nil)

// voidElements never take a closing tag.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"source": true, "track": true, "wbr": true,
}

// Linter tokenizes HTML and reports mismatched or unclosed tags and
// duplicate element ids.
type Linter struct{}

// New creates a new Linter.
func New() *Linter {
	return &Linter{}
}

// openTag records where an element was opened, for unclosed-tag reporting.
type openTag struct {
	name   string
	line   int
	column int
}

// Lint checks one file's content. HTML is forgiving, so every finding is an
// issue, never an error; the error return is reserved for misuse.
func (l *Linter) Lint(path, content string) ([]dashpage.LintIssue, error) {
	var issues []dashpage.LintIssue
	var stack []openTag
	seenIDs := make(map[string]int)

	z := html.NewTokenizer(strings.NewReader(content))
	line, column := 1, 1
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			break
		}
		tokLine, tokColumn := line, column
		line, column = advance(line, column, string(z.Raw()))

		switch tt {
		case html.StartTagToken, html.SelfClosingTagToken:
			tok := z.Token()
			for _, attr := range tok.Attr {
				if attr.Key != "id" || attr.Val == "" {
					continue
				}
				if first, ok := seenIDs[attr.Val]; ok {
					issues = append(issues, dashpage.LintIssue{
						Severity: dashpage.SeverityWarning,
						Message:  "duplicate id \"" + attr.Val + "\", first seen on line " + strconv.Itoa(first),
						Line:     tokLine,
						Column:   tokColumn,
					})
					continue
				}
				seenIDs[attr.Val] = tokLine
			}
			if tt == html.StartTagToken && !voidElements[tok.Data] {
				stack = append(stack, openTag{name: tok.Data, line: tokLine, column: tokColumn})
			}

		case html.EndTagToken:
			tok := z.Token()
			matched := -1
			for i := len(stack) - 1; i >= 0; i-- {
				if stack[i].name == tok.Data {
					matched = i
					break
				}
			}
			if matched < 0 {
				issues = append(issues, dashpage.LintIssue{
					Severity: dashpage.SeverityError,
					Message:  "closing tag </" + tok.Data + "> has no matching opening tag",
					Line:     tokLine,
					Column:   tokColumn,
				})
				continue
			}
			for _, open := range stack[matched+1:] {
				issues = append(issues, dashpage.LintIssue{
					Severity: dashpage.SeverityError,
					Message:  "element <" + open.name + "> closed implicitly by </" + tok.Data + ">",
					Line:     open.line,
					Column:   open.column,
				})
			}
			stack = stack[:matched]
		}
	}

	for _, open := range stack {
		issues = append(issues, dashpage.LintIssue{
			Severity: dashpage.SeverityError,
			Message:  "element <" + open.name + "> is never closed",
			Line:     open.line,
			Column:   open.column,
		})
	}
	return issues, nil
}

// RunAll lints every file in the set concurrently. Each file's content is
// read-only, so files may be shared across goroutines safely.
func RunAll(ctx context.Context, linter dashpage.Linter, files dashpage.FileSet) (map[string][]dashpage.LintIssue, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var g errgroup.Group
	g.SetLimit(4)

	var mu sync.Mutex
	all := make(map[string][]dashpage.LintIssue)
	for _, path := range files.Paths() {
		content := files[path]
		g.Go(func() error {
			issues, err := linter.Lint(path, content)
			if err != nil {
				return err
			}
			if len(issues) == 0 {
				return nil
			}
			mu.Lock()
			all[path] = issues
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return all, nil
}

// advance moves a line/column cursor across raw token text.
func advance(line, column int, raw string) (int, int) {
	for _, r := range raw {
		if r == '\n' {
			line++
			column = 1
			continue
		}
		column++
	}
	return line, column
}
