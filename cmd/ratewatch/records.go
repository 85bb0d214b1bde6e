package main

import (
	"fmt"

	"github.com/apatil/ratewatch"
)

// Run executes the records command.
func (c *RecordsCmd) Run(deps *Dependencies) error {
	filter := ratewatch.RecordFilter{Limit: c.Limit}
	if c.Run != "" {
		filter.RunID = &c.Run
	}
	if c.Category != "" {
		filter.LoanCategory = &c.Category
	}
	if c.Bank != "" {
		filter.Bank = &c.Bank
	}

	records, err := deps.Runs.FindRecords(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ratewatch.ErrorMessage(err))
		return err
	}

	if len(records) == 0 {
		fmt.Fprintln(deps.Stdout, "No records found.")
		return nil
	}

	for _, r := range records {
		fmt.Fprintf(deps.Stdout, "%s | %s | %s | %s | %s | %s\n",
			r.LoanCategory, r.SubCategory, r.Bank, r.BankType, r.InterestRate, r.Source)
	}

	return nil
}
