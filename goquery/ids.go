package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/idscrape"
)

// ExtractByIDs parses rawHTML and returns the text of the elements with the
// given ids, with default null values removed.
func ExtractByIDs(rawHTML string, ids ...string) (*idscrape.Result, error) {
	page, err := NewParser().Parse(rawHTML)
	if err != nil {
		return nil, err
	}
	return page.Lookup(ids), nil
}

// ExtractFromDocument is like ExtractByIDs for a document that is already parsed.
func ExtractFromDocument(doc *goquery.Document, ids ...string) *idscrape.Result {
	return NewPage(doc, idscrape.DefaultNullValues).Lookup(ids)
}

// Timestamp returns the first "YYYY-MM-DD HH:MM:SS" timestamp in the text of page.
func Timestamp(page idscrape.Page) (string, bool) {
	return idscrape.FindTimestamp(page.Strings())
}
