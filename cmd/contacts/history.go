package main

import (
	"fmt"

	"github.com/fwojciec/contacts"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	filter := contacts.RunFilter{Limit: c.Limit}
	if c.URL != "" {
		filter.SourceURL = &c.URL
	}

	runs, err := deps.Runs.FindRuns(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", contacts.ErrorMessage(err))
		return err
	}

	if len(runs) == 0 {
		fmt.Fprintln(deps.Stdout, "No runs recorded yet.")
		return nil
	}

	for _, r := range runs {
		fmt.Fprintf(deps.Stdout, "%s  %s  found=%d new=%d  %s\n",
			r.ID, r.FetchedAt.Local().Format("2006-01-02 15:04:05"), r.Found, r.Inserted, r.SourceURL)
	}

	return nil
}
