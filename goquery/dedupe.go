package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/gurugrv/dashpage"
)

// ComponentDir is the directory shared component files live under.
const ComponentDir = "_components"

// Minimum structural similarity for a block to join a shared component.
const componentSimilarityFloor = 0.9

// dedupeTags is the fixed extraction priority, outer-to-inner, so an inner
// tag's placeholder is never left stranded inside an already-extracted outer
// block.
var dedupeTags = []string{"header", "footer", "nav"}

// Component is a shared block extracted from multiple pages.
type Component struct {
	ID       string
	Filename string
	Content  string
}

// PlaceholderFor returns the in-page comment marker that stands in for a
// block extracted into a shared component file.
func PlaceholderFor(id string) string {
	return "<!-- component:" + id + " -->"
}

// ExtractComponents detects repeated header/footer/nav blocks across pages,
// extracts one canonical copy per tag into a shared file, and replaces
// in-page occurrences with a placeholder marker. The input file set is left
// untouched; the returned set carries the mutations.
func ExtractComponents(files dashpage.FileSet) (dashpage.FileSet, []Component, error) {
	out := files.Clone()
	pages := pagePaths(out)
	if len(pages) < 2 {
		return out, nil, nil
	}

	var components []Component
	for _, tag := range dedupeTags {
		comp, err := extractTag(out, pages, tag)
		if err != nil {
			return nil, nil, err
		}
		if comp != nil {
			components = append(components, *comp)
		}
	}
	return out, components, nil
}

// pageBlock is the first top-level block of a given tag found in one page.
type pageBlock struct {
	path     string
	id       string
	content  string
	skeleton string
}

func extractTag(out dashpage.FileSet, pages []string, tag string) (*Component, error) {
	var blocks []pageBlock
	for _, path := range pages {
		block, err := firstBlock(out, path, tag)
		if err != nil {
			return nil, err
		}
		if block != nil {
			blocks = append(blocks, *block)
		}
	}
	if len(blocks) == 0 {
		return nil, nil
	}

	id := blocks[0].id
	sharedPath := ComponentDir + "/" + id + ".html"

	// Shared file already exists: adopt near-duplicate blocks into it
	// instead of re-extracting.
	if canonical, ok := out.Read(sharedPath); ok {
		canonSkel, err := Skeleton(canonical)
		if err != nil {
			return nil, err
		}
		for _, b := range blocks {
			if strings.Contains(out[b.path], PlaceholderFor(id)) {
				continue
			}
			if Similarity(b.skeleton, canonSkel) < componentSimilarityFloor {
				continue
			}
			if err := replaceBlock(out, b.path, tag, id); err != nil {
				return nil, err
			}
		}
		return nil, nil
	}

	if len(blocks) < 2 {
		return nil, nil
	}

	// First-time extraction: every block must be structurally near the
	// reference page's block (pairwise against the reference).
	reference := blocks[0]
	qualified := []pageBlock{reference}
	for _, b := range blocks[1:] {
		if Similarity(reference.skeleton, b.skeleton) >= componentSimilarityFloor {
			qualified = append(qualified, b)
		}
	}
	if len(qualified) < 2 {
		return nil, nil
	}

	out.Write(sharedPath, reference.content)
	for _, b := range qualified {
		if err := replaceBlock(out, b.path, tag, id); err != nil {
			return nil, err
		}
	}
	return &Component{ID: id, Filename: sharedPath, Content: reference.content}, nil
}

// firstBlock returns the first top-level element of tag in the page, running
// the block identity assigner first so the block carries a stable id.
func firstBlock(out dashpage.FileSet, path, tag string) (*pageBlock, error) {
	content := out[path]
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return nil, dashpage.Errorf(dashpage.EINVALID, "failed to parse %s: %v", path, err)
	}
	sel := doc.Find(tag).First()
	if sel.Length() == 0 {
		return nil, nil
	}

	if _, ok := sel.Attr(BlockAttr); !ok {
		withIDs, err := EnsureBlockIDs(content)
		if err != nil {
			return nil, err
		}
		out.Write(path, withIDs)
		return firstBlock(out, path, tag)
	}

	id, _ := sel.Attr(BlockAttr)
	outer, err := goquery.OuterHtml(sel)
	if err != nil {
		return nil, dashpage.Errorf(dashpage.EINTERNAL, "failed to serialize %s block in %s: %v", tag, path, err)
	}
	skeleton, err := Skeleton(outer)
	if err != nil {
		return nil, err
	}
	return &pageBlock{path: path, id: id, content: outer, skeleton: skeleton}, nil
}

// replaceBlock swaps the first top-level element of tag in the page for the
// component placeholder marker.
func replaceBlock(out dashpage.FileSet, path, tag, id string) error {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(out[path]))
	if err != nil {
		return dashpage.Errorf(dashpage.EINVALID, "failed to parse %s: %v", path, err)
	}
	doc.Find(tag).First().ReplaceWithHtml(PlaceholderFor(id))
	html, err := doc.Html()
	if err != nil {
		return dashpage.Errorf(dashpage.EINTERNAL, "failed to serialize %s: %v", path, err)
	}
	out.Write(path, html)
	return nil
}

// pagePaths returns the page files eligible for deduplication, in display
// order.
func pagePaths(files dashpage.FileSet) []string {
	var pages []string
	for _, path := range files.Paths() {
		if !strings.HasSuffix(path, ".html") {
			continue
		}
		if strings.HasPrefix(path, ComponentDir+"/") {
			continue
		}
		pages = append(pages, path)
	}
	return pages
}
