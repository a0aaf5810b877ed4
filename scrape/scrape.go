// Package scrape reads element text from HTML sources by id.
// Scraper is the single entry point for both remote pages and local files.
package scrape

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/idscrape"
)

// Scraper extracts element text from the pages produced by Source.
type Scraper struct {
	Source idscrape.Source

	// Logger receives warnings about failed fetches and missing timestamps.
	// A nil Logger discards them.
	Logger *slog.Logger

	// Recorder, if set, receives every result produced by Sample.
	Recorder *idscrape.Recorder

	// Now stamps samples when no Recorder is set. Defaults to time.Now.
	Now func() time.Time
}

// New returns a Scraper for source.
func New(source idscrape.Source, logger *slog.Logger) *Scraper {
	return &Scraper{Source: source, Logger: logger}
}

// Scrape returns the text of the elements with the given ids.
func (s *Scraper) Scrape(ctx context.Context, ids []string) (*idscrape.Result, error) {
	page, err := s.page(ctx)
	if err != nil {
		return nil, err
	}
	return page.Lookup(ids), nil
}

// ScrapeWithTimeIDs is like Scrape, but also reads a second set of ids,
// typically the elements that carry the page's update time, from the same page.
func (s *Scraper) ScrapeWithTimeIDs(ctx context.Context, ids, timeIDs []string) (values, times *idscrape.Result, err error) {
	page, err := s.page(ctx)
	if err != nil {
		return nil, nil, err
	}
	return page.Lookup(ids), page.Lookup(timeIDs), nil
}

// ScrapeWithTimestamp is like Scrape, but also returns the first
// "YYYY-MM-DD HH:MM:SS" timestamp in the page text. The timestamp is
// empty, and a warning is logged, when the page carries none.
func (s *Scraper) ScrapeWithTimestamp(ctx context.Context, ids []string) (*idscrape.Result, string, error) {
	page, err := s.page(ctx)
	if err != nil {
		return nil, "", err
	}

	ts, ok := idscrape.FindTimestamp(page.Strings())
	if !ok {
		s.logger().Warn("timestamp not found")
	}
	return page.Lookup(ids), ts, nil
}

// Sample scrapes ids and stamps the result with the current time.
// When a Recorder is configured the result is appended to it.
func (s *Scraper) Sample(ctx context.Context, ids []string) (*idscrape.Result, time.Time, error) {
	r, err := s.Scrape(ctx, ids)
	if err != nil {
		return nil, time.Time{}, err
	}
	return r, s.stamp(r), nil
}

// SampleWithTimestamp is like Sample, but also returns the page timestamp
// as ScrapeWithTimestamp does.
func (s *Scraper) SampleWithTimestamp(ctx context.Context, ids []string) (*idscrape.Result, string, time.Time, error) {
	r, ts, err := s.ScrapeWithTimestamp(ctx, ids)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return r, ts, s.stamp(r), nil
}

func (s *Scraper) stamp(r *idscrape.Result) time.Time {
	if s.Recorder != nil {
		return s.Recorder.Add(r)
	}
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *Scraper) page(ctx context.Context) (idscrape.Page, error) {
	page, err := s.Source.Page(ctx)
	if err != nil {
		s.logger().Warn("page unavailable", "err", err)
		return nil, err
	}
	return page, nil
}

func (s *Scraper) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return s.Logger
}
