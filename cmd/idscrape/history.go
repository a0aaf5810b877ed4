package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/idscrape"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	filter := idscrape.SnapshotFilter{Limit: c.Limit}
	if c.Source != "" {
		filter.Source = &c.Source
	}

	snaps, err := deps.Snapshots.FindSnapshots(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", idscrape.ErrorMessage(err))
		return err
	}

	if len(snaps) == 0 {
		fmt.Fprintln(deps.Stdout, "No snapshots found. Use 'idscrape watch --save' to record some.")
		return nil
	}

	for _, s := range snaps {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  (%d values)\n",
			s.CapturedAt.Local().Format(time.DateTime), s.Source, s.ContentHash, len(s.Values))
		if s.PageTime != "" {
			fmt.Fprintf(deps.Stdout, "    page time: %s\n", s.PageTime)
		}
		for _, v := range s.Values {
			if v.Category != "" {
				fmt.Fprintf(deps.Stdout, "    [%s] %s = %s\n", v.Category, v.ID, v.Text)
			} else {
				fmt.Fprintf(deps.Stdout, "    %s = %s\n", v.ID, v.Text)
			}
		}
	}

	return nil
}
