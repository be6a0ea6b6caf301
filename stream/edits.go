package stream

import (
	"strconv"
	"strings"

	"github.com/gurugrv/dashpage"
)

// Tag names of the edit-operation grammar.
const (
	editArtifactTag = "editArtifact"
	editTag         = "edit"
	domEditTag      = "domEdit"
	searchTag       = "search"
	replaceTag      = "replace"
)

// EditResult is the best-effort structured view of an edit stream after a
// chunk has been consumed. Only fully closed sub-blocks become operations;
// a half-streamed edit has no applicable meaning.
type EditResult struct {
	Edits      []dashpage.EditOperation
	DomOps     []dashpage.DomOperation
	Preamble   string
	HasOpenTag bool
	Complete   bool
}

// EditExtractor incrementally parses an <editArtifact> stream into
// search/replace and DOM operations.
type EditExtractor struct {
	s scanner
}

// NewEditExtractor returns an extractor ready to consume a new stream.
func NewEditExtractor() *EditExtractor {
	return &EditExtractor{s: scanner{outerTag: editArtifactTag, subTags: []string{editTag, domEditTag}}}
}

// Parse consumes the next chunk and returns the current best-effort result.
func (e *EditExtractor) Parse(chunk string) EditResult {
	st := e.s.parse(chunk)
	res := EditResult{
		Preamble:   st.preamble,
		HasOpenTag: st.inside,
		Complete:   st.complete,
	}
	for _, b := range st.blocks {
		if !b.closed {
			continue
		}
		switch b.tag {
		case editTag:
			if op, ok := parseEditBlock(b); ok {
				res.Edits = append(res.Edits, op)
			}
		case domEditTag:
			res.DomOps = append(res.DomOps, parseDomEditBlock(b))
		}
	}
	return res
}

// Reset clears all state so the extractor can consume a new stream. Reuse
// without Reset is undefined behavior.
func (e *EditExtractor) Reset() {
	e.s.reset()
}

func parseEditBlock(b rawBlock) (dashpage.EditOperation, bool) {
	search, ok := innerTag(b.body, searchTag)
	if !ok {
		return dashpage.EditOperation{}, false
	}
	replace, ok := innerTag(b.body, replaceTag)
	if !ok {
		return dashpage.EditOperation{}, false
	}
	op := dashpage.EditOperation{
		Search:  cleanBody(search, true),
		Replace: cleanBody(replace, true),
	}
	if v := b.attrs["expectedReplacements"]; v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			op.ExpectedReplacements = n
		}
	}
	return op, true
}

func parseDomEditBlock(b rawBlock) dashpage.DomOperation {
	return dashpage.DomOperation{
		Selector:  b.attrs["selector"],
		Action:    dashpage.DomAction(b.attrs["action"]),
		Attribute: b.attrs["attribute"],
		Value:     strings.TrimSpace(b.body),
		OldClass:  b.attrs["oldClass"],
		NewClass:  b.attrs["newClass"],
		Position:  dashpage.InsertPosition(b.attrs["position"]),
	}
}

// innerTag returns the content of the first <tag>...</tag> pair in body.
func innerTag(body, tag string) (string, bool) {
	open := "<" + tag + ">"
	start := strings.Index(body, open)
	if start < 0 {
		return "", false
	}
	rest := body[start+len(open):]
	end := strings.Index(rest, "</"+tag+">")
	if end < 0 {
		return "", false
	}
	return rest[:end], true
}
