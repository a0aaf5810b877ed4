package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/idscrape"
	"github.com/fwojciec/idscrape/scrape"
	idslog "github.com/fwojciec/idscrape/slog"
)

// Run executes the watch command.
func (c *WatchCmd) Run(deps *Dependencies) error {
	ids, table, err := resolveIDs(deps, c.IDs, c.Categories)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", idscrape.ErrorMessage(err))
		return err
	}

	if c.Save && deps.Snapshots == nil {
		err := idscrape.Errorf(idscrape.ECONFIG, "no snapshot storage configured")
		fmt.Fprintf(deps.Stderr, "error: %s\n", idscrape.ErrorMessage(err))
		return err
	}

	src, err := deps.OpenSource(c.Source)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", idscrape.ErrorMessage(err))
		return err
	}

	rec := idscrape.NewRecorder()
	w := &scrape.Watcher{
		Scraper:    &scrape.Scraper{Source: src, Logger: deps.Logger, Recorder: rec},
		IDs:        ids,
		Interval:   c.Interval,
		Count:      c.Count,
		Timestamp:  c.Timestamp,
		SourceName: c.Source,
		Categories: table,
	}
	if c.Save {
		w.Snapshots = deps.Snapshots
	}

	result, err := w.Watch(deps.Ctx, func(e scrape.SampleEvent) {
		switch e.Type {
		case scrape.SampleTaken:
			if deps.Logger != nil {
				idslog.LogResult(deps.Logger, e.Result)
			}
			if e.PageTime != "" {
				fmt.Fprintf(deps.Stdout, "%s\t%d values\tpage time %s\n", e.At.Format(time.RFC3339), e.Result.Len(), e.PageTime)
			} else {
				fmt.Fprintf(deps.Stdout, "%s\t%d values\n", e.At.Format(time.RFC3339), e.Result.Len())
			}
		case scrape.SampleFailed:
			fmt.Fprintf(deps.Stderr, "warning: sample %d failed: %s\n", e.Attempt, idscrape.ErrorMessage(e.Error))
		}
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", idscrape.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Recorded %d samples (%d failed)\n", rec.Len(), result.Failed)

	if result.Sampled == 0 && result.Failed > 0 {
		return idscrape.Errorf(idscrape.EFETCH, "all %d samples failed", result.Failed)
	}
	return nil
}
