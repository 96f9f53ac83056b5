// Package main provides the entry point for the jobwire ingestion service.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "jobwire",
	Short: "Job posting ingestion and notification service",
	Long:  "jobwire pulls job postings from feeds, APIs and job boards, normalizes and deduplicates them into PostgreSQL, and announces published records on a Telegram channel.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
