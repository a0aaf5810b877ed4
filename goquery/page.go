// Package goquery implements idscrape.Parser and idscrape.Page on top of
// github.com/PuerkitoBio/goquery.
package goquery

import (
	"iter"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/idscrape"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Compile-time interface verification.
var (
	_ idscrape.Parser = (*Parser)(nil)
	_ idscrape.Page   = (*Page)(nil)
)

// Parser parses HTML into goquery-backed pages.
type Parser struct {
	nulls idscrape.NullValues
}

// Option configures a Parser.
type Option func(*Parser)

// WithNullValues sets the values dropped from lookup results.
// Defaults to idscrape.DefaultNullValues.
func WithNullValues(nulls ...string) Option {
	return func(p *Parser) {
		p.nulls = idscrape.NullValues(nulls)
	}
}

// NewParser creates a new Parser.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		nulls: idscrape.DefaultNullValues,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse builds a Page from raw HTML.
func (p *Parser) Parse(rawHTML string) (idscrape.Page, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, idscrape.Errorf(idscrape.EINVALID, "failed to parse HTML: %v", err)
	}
	return NewPage(doc, p.nulls), nil
}

// Page is a parsed document indexed by element id.
type Page struct {
	doc   *goquery.Document
	byID  map[string]*goquery.Selection
	nulls idscrape.NullValues
}

// NewPage wraps an already parsed document. Only the first element
// carrying a given id, in document order, is reachable through Lookup.
func NewPage(doc *goquery.Document, nulls idscrape.NullValues) *Page {
	p := &Page{
		doc:   doc,
		byID:  make(map[string]*goquery.Selection),
		nulls: nulls,
	}
	doc.Find("[id]").Each(func(_ int, sel *goquery.Selection) {
		id, _ := sel.Attr("id")
		if _, ok := p.byID[id]; !ok {
			p.byID[id] = sel
		}
	})
	return p
}

// Lookup returns the text content of the first element matching each id.
// Text nested in script, style and template descendants is left out.
func (p *Page) Lookup(ids []string) *idscrape.Result {
	r := idscrape.NewResult()
	for _, id := range ids {
		sel, ok := p.byID[id]
		if !ok {
			r.Missing = append(r.Missing, id)
			continue
		}
		r.Set(id, elementText(sel.Nodes[0]))
	}
	return idscrape.FilterNull(r, p.nulls)
}

// Strings yields the stripped, non-empty text nodes of the document.
// Comments and the contents of script, style and template elements are skipped.
func (p *Page) Strings() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, n := range p.doc.Nodes {
			if !walkStrings(n, yield) {
				return
			}
		}
	}
}

// walkStrings visits n depth-first. It returns false once yield asks to stop.
func walkStrings(n *html.Node, yield func(string) bool) bool {
	switch n.Type {
	case html.TextNode:
		if s := strings.TrimSpace(n.Data); s != "" {
			return yield(s)
		}
		return true
	case html.CommentNode:
		return true
	case html.ElementNode:
		if skipElement(n) {
			return true
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if !walkStrings(c, yield) {
			return false
		}
	}
	return true
}

// elementText concatenates the unstripped text below n, skipping the same
// nodes as walkStrings. The element itself is never skipped.
func elementText(n *html.Node) string {
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeText(c, &b)
	}
	return b.String()
}

func writeText(n *html.Node, b *strings.Builder) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(n.Data)
		return
	case html.CommentNode:
		return
	case html.ElementNode:
		if skipElement(n) {
			return
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeText(c, b)
	}
}

func skipElement(n *html.Node) bool {
	switch n.DataAtom {
	case atom.Script, atom.Style, atom.Template:
		return true
	}
	return false
}
