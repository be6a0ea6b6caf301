package dashpage

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// CollapseWhitespace returns s with every internal run of whitespace
// collapsed to a single space. No trimming is performed, so each whitespace
// run in s corresponds to exactly one space in the result and every other
// byte is copied verbatim.
func CollapseWhitespace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inRun := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			if !inRun {
				b.WriteByte(' ')
				inRun = true
			}
			continue
		}
		inRun = false
		b.WriteRune(r)
	}
	return b.String()
}

// MapCollapsedIndex maps a byte offset in CollapseWhitespace(original) back
// to the corresponding byte offset in original. It advances through the
// original counting each whitespace run as exactly one collapsed byte and
// each non-whitespace byte as one, returning the original index at which the
// collapsed count reaches the target. Returns -1 if the text ends first or
// the offset falls inside a multi-byte rune.
//
// Known limitation: the run-collapses-to-one-space assumption is adequate
// for HTML/CSS/JS source but misbehaves where whitespace is semantically
// significant, e.g. inside <pre>.
func MapCollapsedIndex(original string, collapsed int) int {
	if collapsed < 0 {
		return -1
	}
	count := 0
	i := 0
	for i < len(original) {
		if count == collapsed {
			return i
		}
		r, size := utf8.DecodeRuneInString(original[i:])
		if unicode.IsSpace(r) {
			count++
			i += size
			for i < len(original) {
				r2, s2 := utf8.DecodeRuneInString(original[i:])
				if !unicode.IsSpace(r2) {
					break
				}
				i += s2
			}
			continue
		}
		count += size
		i += size
		if count > collapsed {
			return -1
		}
	}
	if count == collapsed {
		return len(original)
	}
	return -1
}
