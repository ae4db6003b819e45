package main

import (
	"fmt"

	"github.com/fwojciec/retitle/batch"
)

// Run executes the fix command.
func (c *FixCmd) Run(deps *Dependencies) error {
	verb := "Fixed"
	if deps.Fixer.DryRun {
		verb = "Would fix"
	}

	summary, err := deps.Fixer.Run(deps.Ctx, func(e batch.ProgressEvent) {
		switch e.Type {
		case batch.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Processing %d posts...\n", e.Total)
		case batch.ProgressFixed:
			fmt.Fprintf(deps.Stdout, "  %s: '%s' -> '%s'\n", verb, e.OldTitle, e.NewTitle)
		}
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "\nDone! %s %d titles.\n", verb, summary.Fixed)
	return nil
}
