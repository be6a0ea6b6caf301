// Package goquery implements the DOM-facing parts of the artifact engine on
// top of github.com/PuerkitoBio/goquery: selector-addressed document
// mutation, stable block identity, structural similarity scoring, and
// shared-component deduplication.
package goquery

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/gurugrv/dashpage"
)

// DomResult is the outcome of applying a list of DOM operations.
type DomResult struct {
	// HTML is the document re-rendered after every successful operation,
	// regardless of later failures. First-time parsing may normalize minor
	// formatting (attribute quoting, self-closing style); the normalized
	// form is stable thereafter.
	HTML string

	// Results holds one entry per input operation, in input order.
	Results []dashpage.OperationResult
}

// ApplyDomOperations parses html once and applies every operation to the
// same tree; a later operation sees the effects of earlier ones. A failed
// operation never aborts the rest and never throws.
func ApplyDomOperations(html string, ops []dashpage.DomOperation) (DomResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return DomResult{}, dashpage.Errorf(dashpage.EINVALID, "failed to parse HTML: %v", err)
	}

	results := make([]dashpage.OperationResult, 0, len(ops))
	for i, op := range ops {
		if err := applyDomOperation(doc, op); err != nil {
			results = append(results, dashpage.OperationResult{Index: i, Error: dashpage.ErrorMessage(err)})
			continue
		}
		results = append(results, dashpage.OperationResult{Index: i, Success: true})
	}

	out, err := doc.Html()
	if err != nil {
		return DomResult{}, dashpage.Errorf(dashpage.EINTERNAL, "failed to serialize document: %v", err)
	}
	return DomResult{HTML: out, Results: results}, nil
}

func applyDomOperation(doc *goquery.Document, op dashpage.DomOperation) error {
	if op.Selector == "" {
		return dashpage.Errorf(dashpage.EINVALID, "operation is missing a selector")
	}
	matcher, err := cascadia.Compile(op.Selector)
	if err != nil {
		return dashpage.Errorf(dashpage.EINVALID, "invalid selector %q: %v", op.Selector, err)
	}

	sel := doc.FindMatcher(matcher)
	n := sel.Length()
	if n == 0 {
		return dashpage.Errorf(dashpage.ENOTFOUND, "no elements match selector %q%s",
			op.Selector, suggestSimilar(doc, op.Selector))
	}
	if n > 1 && !isClassAction(op.Action) {
		return dashpage.Errorf(dashpage.EINVALID,
			"selector %q matched %d elements; use a more specific selector", op.Selector, n)
	}

	switch op.Action {
	case dashpage.ActionSetAttribute:
		if op.Attribute == "" || op.Value == "" {
			return dashpage.Errorf(dashpage.EINVALID, "setAttribute requires an attribute name and value")
		}
		sel.SetAttr(op.Attribute, op.Value)

	case dashpage.ActionSetText:
		if op.Value == "" {
			return dashpage.Errorf(dashpage.EINVALID, "setText requires a value")
		}
		// SetText escapes markup rather than interpreting it.
		sel.SetText(op.Value)

	case dashpage.ActionSetHTML:
		if op.Value == "" {
			return dashpage.Errorf(dashpage.EINVALID, "setHtml requires a value")
		}
		sel.SetHtml(op.Value)

	case dashpage.ActionAddClass:
		if op.NewClass == "" {
			return dashpage.Errorf(dashpage.EINVALID, "addClass requires a class name")
		}
		sel.AddClass(op.NewClass)

	case dashpage.ActionRemoveClass:
		if op.OldClass == "" {
			return dashpage.Errorf(dashpage.EINVALID, "removeClass requires a class name")
		}
		sel.RemoveClass(op.OldClass)

	case dashpage.ActionReplaceClass:
		if op.OldClass == "" || op.NewClass == "" {
			return dashpage.Errorf(dashpage.EINVALID, "replaceClass requires old and new class names")
		}
		if !sel.HasClass(op.OldClass) {
			return dashpage.Errorf(dashpage.ENOTFOUND,
				"class %q not present on elements matching %q", op.OldClass, op.Selector)
		}
		sel.RemoveClass(op.OldClass)
		sel.AddClass(op.NewClass)

	case dashpage.ActionRemove:
		sel.Remove()

	case dashpage.ActionInsertAdjacent:
		if op.Value == "" {
			return dashpage.Errorf(dashpage.EINVALID, "insertAdjacent requires markup to insert")
		}
		switch op.Position {
		case dashpage.InsertBefore:
			sel.BeforeHtml(op.Value)
		case dashpage.InsertPrepend:
			sel.PrependHtml(op.Value)
		case dashpage.InsertAppend:
			sel.AppendHtml(op.Value)
		case dashpage.InsertAfter:
			sel.AfterHtml(op.Value)
		default:
			return dashpage.Errorf(dashpage.EINVALID,
				"insertAdjacent requires a position of before, prepend, append or after")
		}

	default:
		return dashpage.Errorf(dashpage.EINVALID, "unknown action %q", string(op.Action))
	}

	return nil
}

func isClassAction(action dashpage.DomAction) bool {
	switch action {
	case dashpage.ActionAddClass, dashpage.ActionRemoveClass, dashpage.ActionReplaceClass:
		return true
	}
	return false
}

var leadingTagRe = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9-]*`)

// suggestSimilar builds a short hint listing elements that share the
// selector's leading tag name, so an automated retry can target one of them.
func suggestSimilar(doc *goquery.Document, selector string) string {
	tag := leadingTagRe.FindString(selector)
	if tag == "" {
		return ""
	}

	var similar []string
	doc.Find(tag).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		similar = append(similar, describeElement(tag, sel))
		return len(similar) < 5
	})
	if len(similar) == 0 {
		return ""
	}
	return fmt.Sprintf("; similar elements: %s", strings.Join(similar, ", "))
}

// describeElement renders tag + id + first two classes, e.g. "div#hero.card.wide".
func describeElement(tag string, sel *goquery.Selection) string {
	var b strings.Builder
	b.WriteString(tag)
	if id, ok := sel.Attr("id"); ok && id != "" {
		b.WriteString("#")
		b.WriteString(id)
	}
	if class, ok := sel.Attr("class"); ok {
		classes := strings.Fields(class)
		if len(classes) > 2 {
			classes = classes[:2]
		}
		for _, c := range classes {
			b.WriteString(".")
			b.WriteString(c)
		}
	}
	return b.String()
}
