package idscrape

import (
	"context"
	"iter"
)

// Page is a parsed HTML document that can be queried repeatedly.
type Page interface {
	// Lookup finds, for each id, the first element whose id attribute
	// matches and records its full text content. Null-like values are
	// dropped and unmatched ids are reported in Result.Missing.
	// An empty ids slice yields an empty result.
	Lookup(ids []string) *Result

	// Strings yields every non-empty text string of the document,
	// with surrounding whitespace stripped, in document order.
	Strings() iter.Seq[string]
}

// Parser turns raw HTML into a Page.
type Parser interface {
	// Parse builds a traversable tree from html. Malformed markup is
	// handled as permissively as the underlying parser allows.
	Parse(html string) (Page, error)
}

// Source produces the page to scrape. Remote sources fetch and parse on
// every call; file sources parse once and return the same page.
type Source interface {
	Page(ctx context.Context) (Page, error)
}
