package scrape

import (
	"context"
	"time"

	"github.com/fwojciec/idscrape"
	"golang.org/x/time/rate"
)

// Watcher samples a Scraper repeatedly at a fixed pace.
type Watcher struct {
	Scraper *Scraper
	IDs     []string

	// Interval between samples. The first sample is taken immediately.
	// A zero Interval samples back to back.
	Interval time.Duration

	// Count limits the number of attempts. Zero watches until ctx is done.
	Count int

	// Timestamp searches every sample's page for its update timestamp,
	// which is reported in SampleEvent.PageTime and stored with snapshots.
	Timestamp bool

	// Snapshots, if set, stores every successful sample as a snapshot of
	// SourceName labeled with Categories.
	Snapshots  idscrape.SnapshotService
	SourceName string
	Categories *idscrape.CategoryTable
}

// WatchResult holds the outcome of a watch.
type WatchResult struct {
	Sampled int
	Failed  int
	Saved   int
}

// SampleEvent reports a single sample taken during a watch.
type SampleEvent struct {
	Type     SampleType
	Attempt  int
	At       time.Time
	PageTime string
	Result   *idscrape.Result
	Snapshot *idscrape.Snapshot
	Error    error
}

// SampleType indicates the type of sample event.
type SampleType int

const (
	SampleTaken SampleType = iota
	SampleFailed
)

// SampleFunc is a callback for reporting samples as they are taken.
type SampleFunc func(event SampleEvent)

// Watch samples until Count attempts were made or ctx is done. A failed
// sample is reported and skipped; a failure to store a snapshot stops the
// watch and is returned. Cancellation is not an error.
func (w *Watcher) Watch(ctx context.Context, progress SampleFunc) (*WatchResult, error) {
	result := &WatchResult{}
	limiter := rate.NewLimiter(rate.Every(w.Interval), 1)

	for n := 1; w.Count == 0 || n <= w.Count; n++ {
		if err := limiter.Wait(ctx); err != nil {
			break
		}

		r, pageTime, at, err := w.sample(ctx)
		if err != nil {
			if ctx.Err() != nil {
				break
			}
			result.Failed++
			if progress != nil {
				progress(SampleEvent{Type: SampleFailed, Attempt: n, Error: err})
			}
			continue
		}
		result.Sampled++

		var snap *idscrape.Snapshot
		if w.Snapshots != nil {
			snap = idscrape.NewSnapshot(w.SourceName, r, at, w.Categories)
			snap.PageTime = pageTime
			if err := w.Snapshots.CreateSnapshot(ctx, snap); err != nil {
				return result, err
			}
			result.Saved++
		}

		if progress != nil {
			progress(SampleEvent{Type: SampleTaken, Attempt: n, At: at, PageTime: pageTime, Result: r, Snapshot: snap})
		}
	}

	return result, nil
}

func (w *Watcher) sample(ctx context.Context) (*idscrape.Result, string, time.Time, error) {
	if w.Timestamp {
		return w.Scraper.SampleWithTimestamp(ctx, w.IDs)
	}
	r, at, err := w.Scraper.Sample(ctx, w.IDs)
	return r, "", at, err
}
