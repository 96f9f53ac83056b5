package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jobupdate/jobwire/internal/observability"
)

var postCmd = &cobra.Command{
	Use:   "post",
	Short: "Run one Telegram posting cycle",
	Long:  `Announce unposted published records on the configured Telegram channel, then send closing-soon reminders.`,
	RunE:  runPost,
}

func init() {
	rootCmd.AddCommand(postCmd)
}

func runPost(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	a, cfg, cleanup, err := buildApp(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	if a.Poster == nil {
		return fmt.Errorf("TELEGRAM_BOT_TOKEN is not configured")
	}

	summary, err := a.Poster.PostCycle(ctx)
	if err != nil {
		return err
	}

	if cfg.Verbose {
		observability.NewPrinter(os.Stdout).PrintPostSummary(summary)
		return nil
	}

	fmt.Printf("jobs=%d results=%d admitCards=%d reminders=%d errors=%d in %v\n",
		summary.JobsPosted, summary.ResultsPosted, summary.AdmitCardsPosted,
		summary.Reminded, summary.Errors, summary.Duration)
	return nil
}
