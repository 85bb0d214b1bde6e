package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/apatil/ratewatch"
	"github.com/apatil/ratewatch/scrape"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Registry *ratewatch.Registry
	Taxonomy *ratewatch.Taxonomy

	// Scan pipeline. Wired only for the scan command.
	Source  ratewatch.URLSource
	Scraper *scrape.Scraper

	// Persistence. Wired when a database is in play.
	Runs ratewatch.RunService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Scan    ScanCmd    `cmd:"" default:"withargs" help:"Scan rate pages and emit extracted records"`
	Runs    RunsCmd    `cmd:"" help:"List persisted scan runs"`
	Records RecordsCmd `cmd:"" help:"Query persisted records"`

	Verbose bool `short:"v" help:"Enable debug logging"`
}

// ScanCmd is the "scan" subcommand.
type ScanCmd struct {
	Query []string `arg:"" optional:"" help:"Query words; known loan categories filter the URL list, the rest filter results"`

	URLs        string        `short:"u" default:"urls.txt" help:"Categorized URL list file"`
	Output      string        `short:"o" default:"rates.json" help:"Result file for batch runs (queries print to stdout instead)"`
	DB          string        `help:"SQLite database to persist the run into"`
	Concurrency int           `short:"c" default:"1" help:"Concurrent fetch limit"`
	RPS         float64       `default:"1" help:"Max requests per second per host"`
	Timeout     time.Duration `default:"15s" help:"Per-request timeout"`
	Render      bool          `help:"Fetch pages with a headless browser (JavaScript-rendered sites)"`
}

// RunsCmd is the "runs" subcommand.
type RunsCmd struct {
	DB string `default:"ratewatch.db" help:"SQLite database to read"`
}

// RecordsCmd is the "records" subcommand.
type RecordsCmd struct {
	DB       string `default:"ratewatch.db" help:"SQLite database to read"`
	Run      string `help:"Filter by run ID"`
	Category string `help:"Filter by loan category"`
	Bank     string `help:"Filter by bank"`
	Limit    int    `help:"Limit the number of records"`
}
