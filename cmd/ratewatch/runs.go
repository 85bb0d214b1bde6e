package main

import (
	"fmt"
	"time"

	"github.com/apatil/ratewatch"
)

// Run executes the runs command.
func (c *RunsCmd) Run(deps *Dependencies) error {
	runs, err := deps.Runs.FindRuns(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ratewatch.ErrorMessage(err))
		return err
	}

	if len(runs) == 0 {
		fmt.Fprintln(deps.Stdout, "No runs found. Use 'ratewatch scan --db' to persist one.")
		return nil
	}

	for _, r := range runs {
		query := r.Query
		if query == "" {
			query = "(all)"
		}
		fmt.Fprintf(deps.Stdout, "%s  %s  entries=%d records=%d  %s\n",
			r.ID, r.CreatedAt.Format(time.RFC3339), r.EntryCount, r.RecordCount, query)
	}

	return nil
}
