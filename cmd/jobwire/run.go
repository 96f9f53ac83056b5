package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a full automation cycle",
	Long:  `Run one ingestion cycle followed by one Telegram posting cycle, the same work the cron trigger endpoint performs.`,
	RunE:  runFull,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runFull(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	a, _, cleanup, err := buildApp(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	summary, err := a.RunFull(ctx)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
