// Package patch applies ordered search/replace operations to a text body
// using successively looser matching tiers: exact substring, whitespace-
// tolerant, and token-window similarity. Failures are partial-success
// semantics, never thrown: operations applied before a failure stay applied.
package patch

import (
	"fmt"
	"strings"

	"github.com/gurugrv/dashpage"
)

// Status summarizes an apply call across all operations.
type Status string

// Status values.
const (
	StatusFull    Status = "full"
	StatusPartial Status = "partial"
	StatusFailed  Status = "failed"
)

// Minimum token-window similarity accepted by the fuzzy tier.
const similarityThreshold = 0.85

// Result reports the outcome of applying a list of edit operations.
type Result struct {
	// Status is full when every operation applied, partial when at least
	// one applied before a failure, failed otherwise.
	Status Status

	// Text is the body as mutated by every successful operation, including
	// those before a failure.
	Text string

	// Applied is the number of operations that fully applied.
	Applied int

	// FailedIndex is the input position of the operation that failed, or -1.
	FailedIndex int

	// Err is a human-readable description of the failure, or empty.
	Err string
}

// Apply runs operations strictly in input order against the evolving text.
// Each operation sees the result of prior ones and is atomic: fully applied
// or not applied at all. Processing stops at the first failed operation.
func Apply(text string, ops []dashpage.EditOperation) Result {
	out := text
	for i, op := range ops {
		next, err := applyOne(out, op)
		if err != nil {
			status := StatusFailed
			if i > 0 {
				status = StatusPartial
			}
			return Result{
				Status:      status,
				Text:        out,
				Applied:     i,
				FailedIndex: i,
				Err:         dashpage.ErrorMessage(err),
			}
		}
		out = next
	}
	return Result{Status: StatusFull, Text: out, Applied: len(ops), FailedIndex: -1}
}

// span is a half-open byte range in the original text.
type span struct {
	start, end int
}

func applyOne(text string, op dashpage.EditOperation) (string, error) {
	if err := op.Validate(); err != nil {
		return "", err
	}

	tiers := []func(string, string) []span{findExact, findCollapsed, findFuzzy}
	var lastErr error
	for _, tier := range tiers {
		matches := tier(text, op.Search)
		if len(matches) == 0 {
			continue
		}
		if op.ExpectedReplacements > 0 {
			if len(matches) != op.ExpectedReplacements {
				lastErr = dashpage.Errorf(dashpage.EINVALID,
					"expected %d occurrences of search text, found %d",
					op.ExpectedReplacements, len(matches))
				continue
			}
		} else {
			matches = matches[:1]
		}
		return splice(text, matches, op.Replace), nil
	}
	if lastErr != nil {
		return "", lastErr
	}
	return "", dashpage.Errorf(dashpage.ENOTFOUND,
		"search text not found, even after whitespace-tolerant and similarity matching: %s",
		truncate(op.Search, 80))
}

// splice replaces every matched span, working back to front so earlier
// offsets stay valid.
func splice(text string, matches []span, replacement string) string {
	out := text
	for i := len(matches) - 1; i >= 0; i-- {
		m := matches[i]
		out = out[:m.start] + replacement + out[m.end:]
	}
	return out
}

// findExact locates non-overlapping exact occurrences of search.
func findExact(text, search string) []span {
	var matches []span
	from := 0
	for {
		idx := strings.Index(text[from:], search)
		if idx < 0 {
			return matches
		}
		start := from + idx
		matches = append(matches, span{start, start + len(search)})
		from = start + len(search)
	}
}

// findCollapsed locates occurrences after collapsing whitespace runs on both
// sides and then ignoring the collapsed spaces entirely, so a search text
// whose spacing differs from the live text still matches. Matched spans are
// mapped back to original offsets through the position mapper.
func findCollapsed(text, search string) []span {
	cText := dashpage.CollapseWhitespace(text)
	cSearch := dashpage.CollapseWhitespace(search)

	sText, toCollapsed := stripSpaces(cText)
	sSearch, _ := stripSpaces(cSearch)
	if sSearch == "" {
		return nil
	}

	var matches []span
	from := 0
	for {
		idx := strings.Index(sText[from:], sSearch)
		if idx < 0 {
			return matches
		}
		p := from + idx
		last := p + len(sSearch) - 1
		cStart := toCollapsed[p]
		cEnd := toCollapsed[last] + 1

		start := dashpage.MapCollapsedIndex(text, cStart)
		end := dashpage.MapCollapsedIndex(text, cEnd)
		if start >= 0 && end >= 0 {
			matches = append(matches, span{start, end})
		}
		from = p + len(sSearch)
	}
}

// findFuzzy slides a window the size of the collapsed search text across
// token starts in the collapsed live text and accepts the best
// position-by-position match at or above the similarity threshold.
// At most one match is returned.
func findFuzzy(text, search string) []span {
	cText := dashpage.CollapseWhitespace(text)
	cSearch := strings.TrimSpace(dashpage.CollapseWhitespace(search))
	n := len(cSearch)
	if n == 0 || n > len(cText) {
		return nil
	}

	best := -1.0
	bestStart := -1
	for i := 0; i+n <= len(cText); i++ {
		if i > 0 && cText[i-1] != ' ' {
			continue
		}
		score := matchRatio(cText[i:i+n], cSearch)
		if score > best {
			best = score
			bestStart = i
		}
	}
	if best < similarityThreshold {
		return nil
	}

	start := dashpage.MapCollapsedIndex(text, bestStart)
	end := dashpage.MapCollapsedIndex(text, bestStart+n)
	if start < 0 || end < 0 {
		return nil
	}
	return []span{{start, end}}
}

// matchRatio is the fraction of byte positions at which two equal-length
// strings agree.
func matchRatio(a, b string) float64 {
	if len(a) == 0 {
		return 0
	}
	same := 0
	for i := 0; i < len(a); i++ {
		if a[i] == b[i] {
			same++
		}
	}
	return float64(same) / float64(len(a))
}

// stripSpaces removes the single spaces left by whitespace collapsing and
// returns a byte-index map from the stripped string back to the collapsed
// string.
func stripSpaces(collapsed string) (string, []int) {
	var b strings.Builder
	b.Grow(len(collapsed))
	idx := make([]int, 0, len(collapsed))
	for i := 0; i < len(collapsed); i++ {
		if collapsed[i] == ' ' {
			continue
		}
		b.WriteByte(collapsed[i])
		idx = append(idx, i)
	}
	return b.String(), idx
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return fmt.Sprintf("%s... (%d bytes)", s[:max], len(s))
}
