package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/apatil/ratewatch"
	"github.com/apatil/ratewatch/fs"
	"github.com/apatil/ratewatch/goquery"
	"github.com/apatil/ratewatch/htmltomarkdown"
	rwhttp "github.com/apatil/ratewatch/http"
	"github.com/apatil/ratewatch/ocr"
	"github.com/apatil/ratewatch/pdf"
	"github.com/apatil/ratewatch/rod"
	"github.com/apatil/ratewatch/scrape"
	rwslog "github.com/apatil/ratewatch/slog"
	"github.com/apatil/ratewatch/sqlite"
	"github.com/apatil/ratewatch/trafilatura"
)

func main() {
	ctx := context.Background()

	m := NewMain()
	defer m.Close()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// SQLite database, open only when a command needs persistence.
	DB *sqlite.DB

	// Fetcher owning transport resources for the scan command.
	Fetcher ratewatch.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.Fetcher != nil {
		if err := m.Fetcher.Close(); err != nil {
			return err
		}
	}
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:      ctx,
		Stdout:   stdout,
		Stderr:   stderr,
		Registry: ratewatch.DefaultRegistry(),
		Taxonomy: ratewatch.DefaultTaxonomy(),
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("ratewatch"),
		kong.Description("Extract and classify loan interest rates from bank rate pages."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	switch kongCtx.Command() {
	case "scan", "scan <query>":
		if err := m.wireScan(deps, cli); err != nil {
			return err
		}
	case "runs":
		if err := m.openDB(deps, cli.Runs.DB); err != nil {
			return err
		}
	case "records":
		if err := m.openDB(deps, cli.Records.DB); err != nil {
			return err
		}
	}

	return kongCtx.Run(deps)
}

// wireScan assembles the scan pipeline from the parsed flags.
func (m *Main) wireScan(deps *Dependencies, cli *CLI) error {
	var fetcher ratewatch.Fetcher
	if cli.Scan.Render {
		f, err := rod.NewFetcher()
		if err != nil {
			fmt.Fprintln(deps.Stderr, "Hint: Chrome or Chromium must be installed for --render")
			return fmt.Errorf("failed to start browser: %w", err)
		}
		fetcher = f
	} else {
		fetcher = rwhttp.NewFetcher(rwhttp.WithTimeout(cli.Scan.Timeout))
	}
	m.Fetcher = fetcher

	scraper := &scrape.Scraper{
		Fetcher: rwslog.NewLoggingFetcher(fetcher, deps.Logger),
		Extractors: map[ratewatch.Kind]ratewatch.Extractor{
			ratewatch.KindHTML: rwslog.NewLoggingExtractor(
				goquery.NewExtractor(deps.Registry, deps.Taxonomy, trafilatura.NewExtractor()),
				ratewatch.KindHTML, deps.Logger),
			ratewatch.KindPDF: rwslog.NewLoggingExtractor(
				pdf.NewExtractor(deps.Registry, deps.Taxonomy),
				ratewatch.KindPDF, deps.Logger),
			ratewatch.KindImage: rwslog.NewLoggingExtractor(
				ocr.NewExtractor(deps.Registry, deps.Taxonomy),
				ratewatch.KindImage, deps.Logger),
		},
		Limiter:     scrape.NewHostLimiter(cli.Scan.RPS),
		Concurrency: cli.Scan.Concurrency,
		Logger:      deps.Logger,
	}

	if cli.Scan.DB != "" {
		if err := m.openDB(deps, cli.Scan.DB); err != nil {
			return err
		}
		scraper.Snapshots = sqlite.NewSnapshotService(m.DB)
		scraper.Converter = htmltomarkdown.NewConverter()
	}

	deps.Scraper = scraper
	deps.Source = fs.NewSource(cli.Scan.URLs, rwhttp.NewSitemapExpander(nil))
	return nil
}

// openDB opens the SQLite database and wires the run service.
func (m *Main) openDB(deps *Dependencies, path string) error {
	m.DB = sqlite.NewDB(path)
	if err := m.DB.Open(); err != nil {
		return fmt.Errorf("failed to open database at %q: %w", path, err)
	}
	deps.Runs = sqlite.NewRunService(m.DB)
	return nil
}
