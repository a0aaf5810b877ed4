package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/idscrape"
	"github.com/fwojciec/idscrape/scrape"
)

// scrapeOutput is the JSON shape printed by "scrape --json".
type scrapeOutput struct {
	Values    *idscrape.Result        `json:"values"`
	Labeled   []idscrape.LabeledValue `json:"labeled,omitempty"`
	Times     *idscrape.Result        `json:"times,omitempty"`
	Timestamp string                  `json:"timestamp,omitempty"`
	Missing   []string                `json:"missing,omitempty"`
}

// Run executes the scrape command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	if len(c.TimeIDs) > 0 && c.Timestamp {
		err := idscrape.Errorf(idscrape.EINVALID, "--time-id and --timestamp cannot be used together")
		fmt.Fprintf(deps.Stderr, "error: %s\n", idscrape.ErrorMessage(err))
		return err
	}

	ids, table, err := resolveIDs(deps, c.IDs, c.Categories)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", idscrape.ErrorMessage(err))
		return err
	}

	src, err := deps.OpenSource(c.Source)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", idscrape.ErrorMessage(err))
		return err
	}

	scraper := scrape.New(src, deps.Logger)

	out := scrapeOutput{}
	switch {
	case len(c.TimeIDs) > 0:
		out.Values, out.Times, err = scraper.ScrapeWithTimeIDs(deps.Ctx, ids, c.TimeIDs)
	case c.Timestamp:
		out.Values, out.Timestamp, err = scraper.ScrapeWithTimestamp(deps.Ctx, ids)
	default:
		out.Values, err = scraper.Scrape(deps.Ctx, ids)
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", idscrape.ErrorMessage(err))
		return err
	}

	out.Missing = out.Values.Missing
	if table != nil {
		out.Labeled = table.Label(out.Values)
	}

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	printValues(deps.Stdout, out)
	if len(out.Missing) > 0 {
		fmt.Fprintf(deps.Stderr, "warning: ids not found: %s\n", strings.Join(out.Missing, ", "))
	}
	return nil
}

func printValues(w io.Writer, out scrapeOutput) {
	if out.Labeled != nil {
		for _, v := range out.Labeled {
			fmt.Fprintf(w, "%s\t%s\t%s\n", v.Category, v.ID, v.Text)
		}
	} else {
		for id, text := range out.Values.All() {
			fmt.Fprintf(w, "%s\t%s\n", id, text)
		}
	}

	for id, text := range out.Times.All() {
		fmt.Fprintf(w, "time\t%s\t%s\n", id, text)
	}
	if out.Timestamp != "" {
		fmt.Fprintf(w, "timestamp\t%s\n", out.Timestamp)
	}
}
