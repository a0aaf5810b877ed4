package scrape

import (
	"context"
	"net/url"

	"github.com/fwojciec/idscrape"
	"github.com/fwojciec/idscrape/fs"
)

// Ensure RemoteSource implements idscrape.Source at compile time.
var _ idscrape.Source = (*RemoteSource)(nil)

// RemoteSource fetches and parses URL on every call to Page.
type RemoteSource struct {
	URL     string
	Fetcher idscrape.Fetcher
	Parser  idscrape.Parser
}

// Page fetches the document and parses it. A failed fetch is returned
// as is; nothing is parsed in that case.
func (s *RemoteSource) Page(ctx context.Context) (idscrape.Page, error) {
	html, err := s.Fetcher.Fetch(ctx, s.URL)
	if err != nil {
		return nil, err
	}
	return s.Parser.Parse(html)
}

// IsURL reports whether location is an http or https URL rather than a file path.
func IsURL(location string) bool {
	u, err := url.Parse(location)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// NewSource returns a RemoteSource for http(s) URLs and a file source,
// parsed immediately, for anything else.
func NewSource(location string, fetcher idscrape.Fetcher, parser idscrape.Parser) (idscrape.Source, error) {
	if location == "" {
		return nil, idscrape.Errorf(idscrape.EINVALID, "source location required")
	}
	if IsURL(location) {
		return &RemoteSource{URL: location, Fetcher: fetcher, Parser: parser}, nil
	}
	return fs.NewSource(location, parser)
}
