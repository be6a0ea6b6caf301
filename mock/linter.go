package mock

import "github.com/gurugrv/dashpage"

var _ dashpage.Linter = (*Linter)(nil)

// Linter is a mock implementation of dashpage.Linter.
type Linter struct {
	LintFn func(path, content string) ([]dashpage.LintIssue, error)
}

func (l *Linter) Lint(path, content string) ([]dashpage.LintIssue, error) {
	return l.LintFn(path, content)
}
