package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/jobupdate/jobwire/internal/scheduler"
	"github.com/jobupdate/jobwire/internal/server"
)

var (
	servePort     int
	serveSchedule bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the automation trigger server",
	Long:  `Start an HTTP server exposing the cron trigger endpoints. With --schedule, an internal cron also drives the cycles directly.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides PORT)")
	serveCmd.Flags().BoolVar(&serveSchedule, "schedule", false, "Run the internal scheduler alongside the server")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	a, cfg, cleanup, err := buildApp(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	port := cfg.Port
	if servePort != 0 {
		port = servePort
	}

	if serveSchedule {
		sched := scheduler.New(a)
		if err := sched.Start(); err != nil {
			return err
		}
		defer sched.Stop()
	}

	srv := server.New(server.Config{Port: port, Secret: cfg.CronSecret}, a)
	return srv.Start()
}
