// Package dom is the document layer the menu is mounted into. Documents are
// goquery documents over golang.org/x/net/html trees; this package adds the
// structural preconditions and the few operations goquery does not cover.
package dom

import (
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// PreconditionError reports that a document lacks structure an operation requires.
type PreconditionError struct {
	Op      string // Operation that failed
	Element string // Element that was missing
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("%s: document has no <%s> element", e.Op, e.Element)
}

// Parse parses an HTML document.
func Parse(r io.Reader) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("Parse: %w", err)
	}
	return doc, nil
}

// Render writes the whole document as HTML.
func Render(w io.Writer, doc *goquery.Document) error {
	if err := goquery.Render(w, doc.Selection); err != nil {
		return fmt.Errorf("Render: %w", err)
	}
	return nil
}

// ByID returns the element with the given id. The selection is empty when
// there is none.
func ByID(doc *goquery.Document, id string) *goquery.Selection {
	return doc.Find("#" + id)
}

// Require returns the first element matching selector, or a
// *PreconditionError naming op when the document has none.
func Require(doc *goquery.Document, op, selector string) (*goquery.Selection, error) {
	s := doc.Find(selector).First()
	if s.Length() == 0 {
		return nil, &PreconditionError{Op: op, Element: selector}
	}
	return s, nil
}

// Mount inserts the fragment as the first children of <body>, keeping the
// fragment's order. A document without a body yields a *PreconditionError
// and is left untouched.
func Mount(doc *goquery.Document, markup template.HTML) error {
	body, err := Require(doc, "Mount", "body")
	if err != nil {
		return err
	}
	body.PrependHtml(string(markup))
	return nil
}

// SetStyleProperty sets a single declaration in the inline style of each
// element in s, replacing an earlier declaration of the same property.
func SetStyleProperty(s *goquery.Selection, prop, val string) {
	s.Each(func(_ int, el *goquery.Selection) {
		var decls []string
		for _, d := range strings.Split(el.AttrOr("style", ""), ";") {
			d = strings.TrimSpace(d)
			if d == "" {
				continue
			}
			if k, _, ok := strings.Cut(d, ":"); ok && strings.TrimSpace(k) == prop {
				continue
			}
			decls = append(decls, d)
		}
		decls = append(decls, prop+": "+val)
		el.SetAttr("style", strings.Join(decls, "; "))
	})
}
