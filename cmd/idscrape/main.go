package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/idscrape"
	"github.com/fwojciec/idscrape/goquery"
	idhttp "github.com/fwojciec/idscrape/http"
	idslog "github.com/fwojciec/idscrape/slog"
	"github.com/fwojciec/idscrape/sqlite"
	"github.com/fwojciec/idscrape/yaml"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run(); the --db flag overrides it.
	DBPath string

	// SQLite database, opened only by commands that need storage.
	DB *sqlite.DB

	// Services for end-to-end testing.
	SnapshotService idscrape.SnapshotService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("idscrape"),
		kong.Description("Extract the text of HTML elements by id."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'idscrape --help' to see available commands")
	}

	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	deps.Logger = logger
	deps.Fetcher = idslog.NewLoggingFetcher(idhttp.NewFetcher(idhttp.WithTimeout(cli.Timeout)), logger)
	deps.Parser = goquery.NewParser()
	deps.Categories = idslog.NewLoggingCategoryLoader(yaml.NewCategoryLoader(), logger)

	cmd := kongCtx.Selected().Name
	if cmd == "history" || (cmd == "watch" && cli.Watch.Save) {
		if cli.DB != "" {
			m.DBPath = cli.DB
		}

		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set IDSCRAPE_DB or --db to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		defer m.Close()

		m.SnapshotService = sqlite.NewSnapshotService(m.DB)
		deps.Snapshots = m.SnapshotService
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("IDSCRAPE_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "idscrape.db"
	}
	dir := filepath.Join(home, ".idscrape")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "idscrape.db")
}
