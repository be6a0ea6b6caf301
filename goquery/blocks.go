package goquery

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/gurugrv/dashpage"
)

// BlockAttr is the attribute carrying a block's stable identifier.
const BlockAttr = "data-block"

// blockTags are the semantically significant region tags that carry stable
// identifiers.
var blockTags = []string{"nav", "header", "main", "section", "footer", "aside"}

// EnsureBlockIDs guarantees every semantically significant region in the
// page carries a stable identifier. Regions that already have one are never
// reassigned; missing ids are assigned deterministically (tag name, then
// tag-2, tag-3, ...) in document order, avoiding pre-existing ids.
func EnsureBlockIDs(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", dashpage.Errorf(dashpage.EINVALID, "failed to parse HTML: %v", err)
	}

	used := make(map[string]bool)
	doc.Find("[" + BlockAttr + "]").Each(func(_ int, sel *goquery.Selection) {
		if id, ok := sel.Attr(BlockAttr); ok && id != "" {
			used[id] = true
		}
	})

	for _, tag := range blockTags {
		doc.Find(tag).Each(func(_ int, sel *goquery.Selection) {
			if id, ok := sel.Attr(BlockAttr); ok && id != "" {
				return
			}
			id := tag
			for n := 2; used[id]; n++ {
				id = tag + "-" + strconv.Itoa(n)
			}
			used[id] = true
			sel.SetAttr(BlockAttr, id)
		})
	}

	return doc.Html()
}
