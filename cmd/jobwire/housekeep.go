package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var housekeepDedupe bool

var housekeepCmd = &cobra.Command{
	Use:   "housekeep",
	Short: "Run the maintenance pass",
	Long:  `Expire overdue records, archive stale ones and decay the recent flag. With --dedupe, also remove duplicate groups, keeping the newest record of each.`,
	RunE:  runHousekeep,
}

func init() {
	housekeepCmd.Flags().BoolVar(&housekeepDedupe, "dedupe", false, "Also remove duplicate record groups")
	rootCmd.AddCommand(housekeepCmd)
}

func runHousekeep(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	a, _, cleanup, err := buildApp(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	summary, err := a.RunHousekeep(ctx, housekeepDedupe)
	if err != nil {
		return err
	}

	fmt.Printf("expired=%d archived=%d recentDecay=%d deduplicated=%d in %v\n",
		summary.Expired, summary.Archived, summary.RecentDecay, summary.Deduplicated, summary.Duration)
	return nil
}
