package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/apatil/ratewatch"
	"github.com/apatil/ratewatch/fs"
	"github.com/apatil/ratewatch/scrape"
)

// Run executes the scan command.
func (c *ScanCmd) Run(deps *Dependencies) error {
	// Query words naming a known loan category filter the URL list;
	// everything else filters the extracted records.
	var categories, terms []string
	for _, word := range c.Query {
		word = strings.ToLower(word)
		if deps.Taxonomy.HasCategory(word) {
			categories = append(categories, word)
		} else {
			terms = append(terms, word)
		}
	}

	entries, err := deps.Source.ReadEntries(deps.Ctx, categories)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ratewatch.ErrorMessage(err))
		return err
	}
	deps.Logger.Info("scanning", "entries", len(entries), "categories", categories, "terms", terms)

	outcomes := deps.Scraper.Run(deps.Ctx, entries)

	var failed int
	for _, o := range outcomes {
		if o.Status == scrape.StatusFailed {
			failed++
		}
	}

	results := ratewatch.Aggregate(scrape.Records(outcomes), terms)
	deps.Logger.Info("scan complete", "records", len(results), "failed_entries", failed)

	if deps.Runs != nil {
		run := &ratewatch.Run{
			Query:      strings.Join(c.Query, " "),
			EntryCount: len(entries),
		}
		if err := deps.Runs.CreateRun(deps.Ctx, run, results); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", ratewatch.ErrorMessage(err))
			return err
		}
		deps.Logger.Info("run persisted", "run_id", run.ID)
	}

	// Interactive queries print to stdout; batch runs write the result
	// file.
	if len(c.Query) > 0 {
		if results == nil {
			results = []ratewatch.Record{}
		}
		data, err := json.Marshal(results)
		if err != nil {
			return err
		}
		fmt.Fprintln(deps.Stdout, string(data))
		return nil
	}

	writer := fs.NewWriter(c.Output)
	if err := writer.WriteRecords(deps.Ctx, results); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ratewatch.ErrorMessage(err))
		return err
	}
	fmt.Fprintf(deps.Stdout, "Wrote %d records to %s\n", len(results), c.Output)
	return nil
}
