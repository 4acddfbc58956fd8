package seo

import (
	"fmt"
	"io"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const (
	structuredDataType     = "application/ld+json"
	structuredDataSelector = `script[type="application/ld+json"]`
)

// Head owns the metadata elements of one parsed HTML document. A Head is not
// safe for concurrent use; each document belongs to a single render.
type Head struct {
	doc *goquery.Document
}

// NewHead wraps a parsed document.
func NewHead(doc *goquery.Document) *Head {
	return &Head{doc: doc}
}

// ParseHead parses an HTML document from r.
func ParseHead(r io.Reader) (*Head, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("seo: parse document: %w", err)
	}
	return NewHead(doc), nil
}

// Document exposes the underlying document.
func (h *Head) Document() *goquery.Document {
	return h.doc
}

// Render writes the whole document as HTML.
func (h *Head) Render(w io.Writer) error {
	for _, n := range h.doc.Nodes {
		if err := html.Render(w, n); err != nil {
			return err
		}
	}
	return nil
}

// Title returns the current document title.
func (h *Head) Title() string {
	return h.head().Find("title").First().Text()
}

// SetTitle replaces the document title, creating the element if needed.
func (h *Head) SetTitle(title string) {
	sel := h.single("title", func() *html.Node {
		return newElement(atom.Title)
	})
	sel.SetText(title)
}

// SetMeta sets the content of the meta element identified by attr=key.
func (h *Head) SetMeta(attr, key, content string) {
	sel := h.single(fmt.Sprintf(`meta[%s="%s"]`, attr, key), func() *html.Node {
		return newElement(atom.Meta, html.Attribute{Key: attr, Val: key})
	})
	sel.SetAttr("content", content)
}

// SetLink sets the href of the link element identified by attr=key.
func (h *Head) SetLink(attr, key, href string) {
	sel := h.single(fmt.Sprintf(`link[%s="%s"]`, attr, key), func() *html.Node {
		return newElement(atom.Link, html.Attribute{Key: attr, Val: key})
	})
	sel.SetAttr("href", href)
}

// ReplaceStructuredData removes every structured-data script in <head> and
// appends a fresh one carrying payload.
func (h *Head) ReplaceStructuredData(payload string) {
	h.head().Find(structuredDataSelector).Remove()
	script := newElement(atom.Script, html.Attribute{Key: "type", Val: structuredDataType})
	script.AppendChild(&html.Node{Type: html.TextNode, Data: payload})
	h.head().AppendNodes(script)
}

// StructuredData returns the payload of the structured-data script, if any.
func (h *Head) StructuredData() (string, bool) {
	sel := h.head().Find(structuredDataSelector)
	if sel.Length() == 0 {
		return "", false
	}
	return sel.First().Text(), true
}

// Apply performs writes in order.
func (h *Head) Apply(writes []Write) {
	for _, w := range writes {
		switch w.Kind {
		case KindTitle:
			h.SetTitle(w.Value)
		case KindMeta:
			h.SetMeta(w.Attr, w.Key, w.Value)
		case KindLink:
			h.SetLink(w.Attr, w.Key, w.Value)
		case KindStructuredData:
			h.ReplaceStructuredData(w.Value)
		}
	}
}

// single returns exactly one element in <head> matching selector: extra
// matches are removed and a missing element is created. The body is never
// touched, so an SVG <title> in page content survives.
func (h *Head) single(selector string, create func() *html.Node) *goquery.Selection {
	head := h.head()
	sel := head.Find(selector)
	if sel.Length() == 0 {
		head.AppendNodes(create())
		return head.Find(selector).First()
	}
	if sel.Length() > 1 {
		sel.Slice(1, sel.Length()).Remove()
	}
	return sel.First()
}

func (h *Head) head() *goquery.Selection {
	return h.doc.Find("head").First()
}

func newElement(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr:     attrs,
	}
}
