// Package fs provides file-based HTML sources.
package fs

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/fwojciec/idscrape"
)

// Ensure Source implements idscrape.Source at compile time.
var _ idscrape.Source = (*Source)(nil)

// Source serves a page read from a local HTML file. The file is read and
// parsed once, at construction; every call to Page returns the same page.
type Source struct {
	path string
	page idscrape.Page
}

// NewSource reads the HTML file at path and parses it with parser.
// Returns ENOTFOUND if the file does not exist and EINVALID if it cannot
// be read, for example because path is a directory.
func NewSource(path string, parser idscrape.Parser) (*Source, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, idscrape.Errorf(idscrape.ENOTFOUND, "HTML file %q not found", path)
	} else if err != nil {
		return nil, idscrape.Errorf(idscrape.EINVALID, "cannot open HTML file %q: %v", path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, idscrape.Errorf(idscrape.EINVALID, "cannot read HTML file %q: %v", path, err)
	}

	page, err := parser.Parse(string(data))
	if err != nil {
		return nil, err
	}

	return &Source{path: path, page: page}, nil
}

// Path returns the file the page was read from.
func (s *Source) Path() string {
	return s.path
}

// Page returns the parsed page.
func (s *Source) Page(ctx context.Context) (idscrape.Page, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.page, nil
}
