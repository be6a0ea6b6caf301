// Package stream incrementally parses arbitrarily-chunked model output into
// structured artifacts before the stream has finished. A scanner accumulates
// chunks and re-scans its buffer on every call, so results are idempotent
// with respect to already-closed sub-blocks and a stream abandoned mid-flight
// still yields a consistent, inspectable partial result.
package stream

import (
	"regexp"
	"strings"
)

// rawBlock is one sub-block scanned out of the outer tagged region.
type rawBlock struct {
	tag    string
	attrs  map[string]string
	body   string
	closed bool
}

// scanState is the result of one scan pass over the accumulated buffer.
type scanState struct {
	preamble string
	inside   bool
	complete bool
	region   string
	blocks   []rawBlock
}

// scanner is the generic incremental parser under all extractor flavors.
// One scanner instance belongs to exactly one in-flight stream; reuse for a
// new stream requires reset first.
type scanner struct {
	outerTag string
	subTags  []string

	buf        string
	inside     bool
	complete   bool
	preamble   string
	innerStart int
	innerEnd   int
}

// parse appends chunk to the buffer and re-scans from the start of the
// tagged region. Malformed input (open delimiter with no close) is not an
// error; it simply never reports complete.
func (s *scanner) parse(chunk string) scanState {
	s.buf += chunk

	if !s.inside {
		idx, end := findOpenTag(s.buf, s.outerTag)
		if idx < 0 {
			// Everything so far is explanatory narration.
			return scanState{preamble: strings.TrimSpace(s.buf)}
		}
		if end < 0 {
			// Opening delimiter still streaming in.
			return scanState{preamble: strings.TrimSpace(s.buf[:idx])}
		}
		s.preamble = strings.TrimSpace(s.buf[:idx])
		s.inside = true
		s.innerStart = end + 1
	}

	region := s.buf[s.innerStart:]
	if !s.complete {
		if end := strings.Index(region, "</"+s.outerTag+">"); end >= 0 {
			s.complete = true
			s.innerEnd = s.innerStart + end
		}
	}
	if s.complete {
		region = s.buf[s.innerStart:s.innerEnd]
	}

	st := scanState{
		preamble: s.preamble,
		inside:   true,
		complete: s.complete,
		region:   region,
	}
	if len(s.subTags) > 0 {
		st.blocks = scanBlocks(region, s.subTags)
	}
	return st
}

// reset clears all state so the scanner can consume a new stream.
func (s *scanner) reset() {
	*s = scanner{outerTag: s.outerTag, subTags: s.subTags}
}

// scanBlocks extracts every sub-block that has fully closed, plus at most
// one trailing partial block that has opened but not yet closed.
func scanBlocks(region string, tags []string) []rawBlock {
	var blocks []rawBlock
	pos := 0
	for {
		tag, start := nextOpen(region, pos, tags)
		if start < 0 {
			break
		}
		headStart := start + len(tag) + 1
		headEnd := findTagEnd(region, headStart)
		if headEnd < 0 {
			// Opening tag still streaming in; no attributes known yet.
			blocks = append(blocks, rawBlock{tag: tag})
			break
		}
		attrs := parseAttrs(region[headStart:headEnd])
		bodyStart := headEnd + 1
		closeTag := "</" + tag + ">"
		if end := strings.Index(region[bodyStart:], closeTag); end >= 0 {
			blocks = append(blocks, rawBlock{
				tag:    tag,
				attrs:  attrs,
				body:   region[bodyStart : bodyStart+end],
				closed: true,
			})
			pos = bodyStart + end + len(closeTag)
			continue
		}
		blocks = append(blocks, rawBlock{
			tag:   tag,
			attrs: attrs,
			body:  region[bodyStart:],
		})
		break
	}
	return blocks
}

// findOpenTag locates the outer opening delimiter, which may carry
// attributes. It returns the tag's start index and the index of its closing
// '>'; the start is -1 when no delimiter has appeared, and the end is -1
// when the delimiter itself has not fully arrived.
func findOpenTag(buf, tag string) (int, int) {
	marker := "<" + tag
	from := 0
	for {
		idx := strings.Index(buf[from:], marker)
		if idx < 0 {
			return -1, -1
		}
		abs := from + idx
		after := abs + len(marker)
		if after >= len(buf) {
			return abs, -1
		}
		if isTagBoundary(buf[after]) {
			return abs, findTagEnd(buf, after)
		}
		from = abs + 1
	}
}

// nextOpen returns the earliest occurrence at or after pos of "<tag"
// followed by whitespace, '>', or end of buffer, for any of the given tags.
func nextOpen(region string, pos int, tags []string) (string, int) {
	bestTag := ""
	best := -1
	for _, tag := range tags {
		marker := "<" + tag
		from := pos
		for {
			idx := strings.Index(region[from:], marker)
			if idx < 0 {
				break
			}
			abs := from + idx
			after := abs + len(marker)
			if after >= len(region) || isTagBoundary(region[after]) {
				if best < 0 || abs < best {
					bestTag, best = tag, abs
				}
				break
			}
			from = abs + 1
		}
	}
	return bestTag, best
}

func isTagBoundary(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '>'
}

// findTagEnd returns the index of the '>' closing an opening tag, skipping
// any '>' inside a quoted attribute value. Returns -1 if the tag header has
// not fully arrived.
func findTagEnd(s string, from int) int {
	inQuote := false
	for i := from; i < len(s); i++ {
		switch s[i] {
		case '"':
			inQuote = !inQuote
		case '>':
			if !inQuote {
				return i
			}
		}
	}
	return -1
}

var attrRe = regexp.MustCompile(`([a-zA-Z][\w-]*)\s*=\s*"([^"]*)"`)

// parseAttrs parses key="value" pairs from an opening tag header.
func parseAttrs(header string) map[string]string {
	matches := attrRe.FindAllStringSubmatch(header, -1)
	if len(matches) == 0 {
		return nil
	}
	attrs := make(map[string]string, len(matches))
	for _, m := range matches {
		attrs[m[1]] = m[2]
	}
	return attrs
}

// cleanBody strips a markdown code-fence wrapper from sub-block content if
// present: a leading fence line (with optional language tag) and, once the
// block has closed, a trailing fence line. Surrounding blank space is
// trimmed; interior content is never altered.
func cleanBody(body string, closed bool) string {
	trimmed := strings.TrimLeft(body, " \t\r\n")
	if strings.HasPrefix(trimmed, "```") {
		if nl := strings.Index(trimmed, "\n"); nl >= 0 {
			body = trimmed[nl+1:]
		} else if closed {
			return ""
		} else {
			// Fence line still streaming in.
			return ""
		}
	}
	if !closed {
		return strings.TrimLeft(body, "\r\n")
	}
	body = strings.TrimSpace(body)
	if strings.HasSuffix(body, "```") {
		cut := strings.LastIndex(body, "\n")
		if cut < 0 {
			return ""
		}
		if strings.TrimSpace(body[cut+1:]) == "```" {
			body = strings.TrimRight(body[:cut], " \t\r\n")
		}
	}
	return body
}
