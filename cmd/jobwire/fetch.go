package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jobupdate/jobwire/internal/observability"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Run one ingestion cycle",
	Long:  `Fetch candidates from a subset of configured sources, normalize and deduplicate them, and persist new records.`,
	RunE:  runFetch,
}

func init() {
	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	a, cfg, cleanup, err := buildApp(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	summary, err := a.Pipeline.Fetch(ctx)
	if err != nil {
		return err
	}

	if cfg.Verbose {
		observability.NewPrinter(os.Stdout).PrintFetchSummary(summary)
		return nil
	}

	fmt.Printf("fetched=%d added=%d duplicates=%d skipped=%d errors=%d in %v\n",
		summary.Fetched, summary.Added, summary.Duplicates, summary.Skipped, summary.Errors, summary.Duration)
	for name, result := range summary.Sources {
		status := "ok"
		if !result.Success {
			status = "failed: " + result.Error
		}
		fmt.Printf("  %s: %d candidates (%s)\n", name, result.Count, status)
	}
	return nil
}
