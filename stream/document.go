package stream

// Outer tag name of the single-document grammar.
const documentTag = "htmlDocument"

// DocumentResult is the best-effort view of a single raw HTML document
// stream after a chunk has been consumed.
type DocumentResult struct {
	// HTML is the document content streamed so far; once Complete it is the
	// final content with any fence wrapper stripped.
	HTML string

	Preamble   string
	HasOpenTag bool
	Complete   bool
}

// DocumentExtractor incrementally parses an <htmlDocument> stream into a
// single HTML string.
type DocumentExtractor struct {
	s scanner
}

// NewDocumentExtractor returns an extractor ready to consume a new stream.
func NewDocumentExtractor() *DocumentExtractor {
	return &DocumentExtractor{s: scanner{outerTag: documentTag}}
}

// Parse consumes the next chunk and returns the current best-effort result.
func (e *DocumentExtractor) Parse(chunk string) DocumentResult {
	st := e.s.parse(chunk)
	return DocumentResult{
		HTML:       cleanBody(st.region, st.complete),
		Preamble:   st.preamble,
		HasOpenTag: st.inside,
		Complete:   st.complete,
	}
}

// Reset clears all state so the extractor can consume a new stream. Reuse
// without Reset is undefined behavior.
func (e *DocumentExtractor) Reset() {
	e.s.reset()
}
