package dashpage

import (
	"fmt"
	"sort"

	"github.com/cespare/xxhash/v2"
)

// FileSet maps relative file paths to full text content. Paths are unique
// keys; writes overwrite in place and never duplicate keys. A FileSet has no
// inherent ordering; any "index first" ordering is a display-time
// derivation, not a stored property.
type FileSet map[string]string

// Write stores content under path, overwriting any previous content.
func (fs FileSet) Write(path, content string) {
	fs[path] = content
}

// Read returns the content stored under path.
func (fs FileSet) Read(path string) (string, bool) {
	content, ok := fs[path]
	return content, ok
}

// Clone returns an independent copy of the file set. Callers that hand a
// FileSet to a concurrent consumer must clone first; a FileSet instance is
// owned by exactly one caller at a time.
func (fs FileSet) Clone() FileSet {
	out := make(FileSet, len(fs))
	for path, content := range fs {
		out[path] = content
	}
	return out
}

// Paths returns all file paths sorted for display: index.html first, then
// lexicographic order.
func (fs FileSet) Paths() []string {
	paths := make([]string, 0, len(fs))
	for path := range fs {
		paths = append(paths, path)
	}
	sort.Slice(paths, func(i, j int) bool {
		if paths[i] == "index.html" {
			return true
		}
		if paths[j] == "index.html" {
			return false
		}
		return paths[i] < paths[j]
	})
	return paths
}

// ContentHash returns a stable hash of file content, used to detect
// unchanged files across saves.
func ContentHash(content string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(content))
}
