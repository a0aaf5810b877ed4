package mock

import (
	"context"
	"iter"

	"github.com/fwojciec/idscrape"
)

// Compile-time interface verification.
var (
	_ idscrape.Parser = (*Parser)(nil)
	_ idscrape.Page   = (*Page)(nil)
	_ idscrape.Source = (*Source)(nil)
)

// Parser is a mock implementation of idscrape.Parser.
type Parser struct {
	ParseFn func(html string) (idscrape.Page, error)
}

func (p *Parser) Parse(html string) (idscrape.Page, error) {
	return p.ParseFn(html)
}

// Page is a mock implementation of idscrape.Page.
type Page struct {
	LookupFn  func(ids []string) *idscrape.Result
	StringsFn func() iter.Seq[string]
}

func (p *Page) Lookup(ids []string) *idscrape.Result {
	return p.LookupFn(ids)
}

func (p *Page) Strings() iter.Seq[string] {
	return p.StringsFn()
}

// Source is a mock implementation of idscrape.Source.
type Source struct {
	PageFn func(ctx context.Context) (idscrape.Page, error)
}

func (s *Source) Page(ctx context.Context) (idscrape.Page, error) {
	return s.PageFn(ctx)
}
