package goquery

import (
	"strings"

	"github.com/gurugrv/dashpage"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Attributes kept in a structural skeleton, in output order.
var skeletonAttrs = []string{"id", "class", BlockAttr}

// Skeleton reduces an HTML fragment to its tag-and-structural-attribute
// outline: comments and inter-tag text are stripped, and only id, class and
// block-id attributes survive on each tag. Two fragments with the same
// skeleton are structurally interchangeable for deduplication purposes.
func Skeleton(fragment string) (string, error) {
	ctx := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(fragment), ctx)
	if err != nil {
		return "", dashpage.Errorf(dashpage.EINVALID, "failed to parse fragment: %v", err)
	}

	var b strings.Builder
	for _, n := range nodes {
		writeSkeleton(&b, n)
	}
	return b.String(), nil
}

func writeSkeleton(b *strings.Builder, n *html.Node) {
	if n.Type != html.ElementNode {
		return
	}
	b.WriteString("<")
	b.WriteString(n.Data)
	for _, key := range skeletonAttrs {
		for _, attr := range n.Attr {
			if attr.Key != key {
				continue
			}
			b.WriteString(" ")
			b.WriteString(key)
			b.WriteString("=\"")
			b.WriteString(strings.TrimSpace(dashpage.CollapseWhitespace(attr.Val)))
			b.WriteString("\"")
		}
	}
	b.WriteString(">")
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeSkeleton(b, c)
	}
	b.WriteString("</")
	b.WriteString(n.Data)
	b.WriteString(">")
}

// Similarity scores two skeletons for near-duplication. Identical skeletons
// score 1.0; otherwise the score is the fraction of byte positions (up to
// the shorter skeleton's length, over the longer skeleton's length) that
// match at the same index. Position-sensitive by intent: a length difference
// biases the score down, which avoids false-positive merges.
func Similarity(a, b string) float64 {
	if a == b {
		return 1.0
	}
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	shorter, longer := a, b
	if len(shorter) > len(longer) {
		shorter, longer = longer, shorter
	}
	same := 0
	for i := 0; i < len(shorter); i++ {
		if shorter[i] == longer[i] {
			same++
		}
	}
	return float64(same) / float64(len(longer))
}
