package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/idscrape"
	"github.com/fwojciec/idscrape/scrape"
	idslog "github.com/fwojciec/idscrape/slog"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdout     io.Writer
	Stderr     io.Writer
	Logger     *slog.Logger
	Fetcher    idscrape.Fetcher
	Parser     idscrape.Parser
	Categories idscrape.CategoryLoader
	Snapshots  idscrape.SnapshotService
}

// OpenSource returns a logged source for location, which is either an
// http(s) URL or the path of a local HTML file.
func (d *Dependencies) OpenSource(location string) (idscrape.Source, error) {
	src, err := scrape.NewSource(location, d.Fetcher, d.Parser)
	if err != nil {
		return nil, err
	}
	if d.Logger == nil {
		return src, nil
	}
	return idslog.NewLoggingSource(src, location, d.Logger), nil
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DB      string        `name:"db" help:"SQLite database path (default: $IDSCRAPE_DB or ~/.idscrape/idscrape.db)"`
	Timeout time.Duration `default:"30s" help:"HTTP request timeout"`
	Verbose bool          `short:"v" help:"Enable debug logging"`

	Scrape     ScrapeCmd     `cmd:"" help:"Extract element text by id from a URL or HTML file"`
	Watch      WatchCmd      `cmd:"" help:"Sample a source repeatedly"`
	History    HistoryCmd    `cmd:"" help:"List stored snapshots"`
	Categories CategoriesCmd `cmd:"" help:"Print the id to category table of a YAML file"`
}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct {
	Source     string   `arg:"" help:"URL or HTML file path"`
	IDs        []string `short:"i" name:"id" help:"Element id to extract (repeatable)"`
	Categories string   `short:"c" help:"YAML file mapping categories to element ids"`
	TimeIDs    []string `short:"t" name:"time-id" xor:"time" help:"Element id holding the update time (repeatable)"`
	Timestamp  bool     `short:"T" xor:"time" help:"Find the first YYYY-MM-DD HH:MM:SS timestamp in the page"`
	JSON       bool     `help:"Print results as JSON"`
}

// WatchCmd is the "watch" subcommand.
type WatchCmd struct {
	Source     string        `arg:"" help:"URL or HTML file path"`
	IDs        []string      `short:"i" name:"id" help:"Element id to extract (repeatable)"`
	Categories string        `short:"c" help:"YAML file mapping categories to element ids"`
	Interval   time.Duration `default:"10s" help:"Time between samples"`
	Count      int           `short:"n" help:"Number of samples to take (0 runs until interrupted)"`
	Timestamp  bool          `short:"T" help:"Record the page's YYYY-MM-DD HH:MM:SS timestamp with each sample"`
	Save       bool          `short:"s" help:"Store each sample in the database"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	Source string `arg:"" optional:"" help:"Only show snapshots of this source"`
	Limit  int    `short:"l" default:"10" help:"Maximum number of snapshots"`
}

// CategoriesCmd is the "categories" subcommand.
type CategoriesCmd struct {
	File string `arg:"" help:"YAML category file"`
}

// resolveIDs merges explicit ids with the ids of the category file at path.
// The returned table is nil when no category file was given.
func resolveIDs(deps *Dependencies, ids []string, path string) ([]string, *idscrape.CategoryTable, error) {
	if len(ids) == 0 && path == "" {
		return nil, nil, idscrape.Errorf(idscrape.EINVALID, "no ids given: use --id or --categories")
	}
	if path == "" {
		return ids, nil, nil
	}

	table, err := deps.Categories.LoadCategories(path)
	if err != nil {
		return nil, nil, err
	}

	all := append(table.IDs(), ids...)
	return all, table, nil
}
