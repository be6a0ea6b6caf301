package dashpage

// Lint issue severities.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// LintIssue describes one problem found in a generated file. The engine does
// not define validation rules; it only forwards issues for reporting.
type LintIssue struct {
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
}

// Linter checks one file's content and reports issues. A nil issue slice
// means the file is clean.
type Linter interface {
	Lint(path, content string) ([]LintIssue, error)
}
