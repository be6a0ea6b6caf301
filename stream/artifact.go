package stream

import (
	"github.com/gurugrv/dashpage"
)

// Outer and inner tag names of the multi-file artifact grammar.
const (
	artifactTag = "fileArtifact"
	fileTag     = "file"
)

// ArtifactResult is the best-effort structured view of a file artifact
// stream after a chunk has been consumed.
type ArtifactResult struct {
	// Files maps relative paths to content. A file whose sub-block has not
	// closed yet appears with its in-progress content so callers can render
	// partial previews.
	Files dashpage.FileSet

	// Preamble is the narration text seen before the opening delimiter.
	Preamble string

	// HasOpenTag reports whether the opening delimiter has been seen.
	HasOpenTag bool

	// Complete reports whether the closing delimiter has been seen. Closed
	// sub-blocks are reported identically on every subsequent call.
	Complete bool
}

// ArtifactExtractor incrementally parses a <fileArtifact> stream into a file
// map. One extractor belongs to exactly one in-flight stream.
type ArtifactExtractor struct {
	s scanner
}

// NewArtifactExtractor returns an extractor ready to consume a new stream.
func NewArtifactExtractor() *ArtifactExtractor {
	return &ArtifactExtractor{s: scanner{outerTag: artifactTag, subTags: []string{fileTag}}}
}

// Parse consumes the next chunk and returns the current best-effort result.
func (e *ArtifactExtractor) Parse(chunk string) ArtifactResult {
	st := e.s.parse(chunk)
	files := dashpage.FileSet{}
	for _, b := range st.blocks {
		path := b.attrs["path"]
		if path == "" {
			continue
		}
		files.Write(path, cleanBody(b.body, b.closed))
	}
	return ArtifactResult{
		Files:      files,
		Preamble:   st.preamble,
		HasOpenTag: st.inside,
		Complete:   st.complete,
	}
}

// Reset clears all state so the extractor can consume a new stream. Reuse
// without Reset is undefined behavior.
func (e *ArtifactExtractor) Reset() {
	e.s.reset()
}
