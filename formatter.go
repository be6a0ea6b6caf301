package dashpage

import "strings"

// FormatFiles formats a file set for display or LLM context.
// Files are ordered index.html first and separated by blank lines.
func FormatFiles(files FileSet) string {
	if len(files) == 0 {
		return ""
	}

	parts := make([]string, 0, len(files))
	for _, path := range files.Paths() {
		parts = append(parts, "## File: "+path+"\n"+files[path])
	}

	return strings.Join(parts, "\n\n")
}
