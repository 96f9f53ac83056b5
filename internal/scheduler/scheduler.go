// Package scheduler drives the automation cycles on an internal cron when
// no external trigger service is used.
package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/jobupdate/jobwire/internal/app"
)

// Cycle cadences. The full cycle keeps the channel fresh; housekeeping runs
// off-peak and the duplicate sweep once a week.
const (
	fullSpec      = "@every 30m"
	housekeepSpec = "0 2 * * *"
	dedupeSpec    = "0 3 * * 0"
)

// cycleTimeout bounds a single scheduled run.
const cycleTimeout = 10 * time.Minute

// Scheduler owns the cron instance.
type Scheduler struct {
	app  *app.App
	cron *cron.Cron
}

// New builds a scheduler around the app runner.
func New(a *app.App) *Scheduler {
	return &Scheduler{
		app:  a,
		cron: cron.New(),
	}
}

// Start registers the jobs, kicks off an immediate first cycle and starts
// the cron loop. Non-blocking; call Stop to drain.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(fullSpec, func() { s.runFull() }); err != nil {
		return err
	}
	if _, err := s.cron.AddFunc(housekeepSpec, func() { s.runHousekeep(false) }); err != nil {
		return err
	}
	if _, err := s.cron.AddFunc(dedupeSpec, func() { s.runHousekeep(true) }); err != nil {
		return err
	}

	go s.runFull()

	s.cron.Start()
	log.Printf("[SCHEDULER] started: full %q, housekeep %q, dedupe %q", fullSpec, housekeepSpec, dedupeSpec)
	return nil
}

// Stop halts the cron loop and waits for running jobs.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Println("[SCHEDULER] stopped")
}

func (s *Scheduler) runFull() {
	ctx, cancel := context.WithTimeout(context.Background(), cycleTimeout)
	defer cancel()

	summary, err := s.app.RunFull(ctx)
	if err != nil {
		log.Printf("[SCHEDULER] full cycle failed: %v", err)
		return
	}
	if summary.Fetch != nil {
		log.Printf("[SCHEDULER] fetch: added=%d duplicates=%d skipped=%d errors=%d",
			summary.Fetch.Added, summary.Fetch.Duplicates, summary.Fetch.Skipped, summary.Fetch.Errors)
	}
	if summary.Telegram != nil {
		log.Printf("[SCHEDULER] telegram: jobs=%d results=%d admitCards=%d reminders=%d errors=%d",
			summary.Telegram.JobsPosted, summary.Telegram.ResultsPosted,
			summary.Telegram.AdmitCardsPosted, summary.Telegram.Reminded, summary.Telegram.Errors)
	}
}

func (s *Scheduler) runHousekeep(dedupeGroups bool) {
	ctx, cancel := context.WithTimeout(context.Background(), cycleTimeout)
	defer cancel()

	summary, err := s.app.RunHousekeep(ctx, dedupeGroups)
	if err != nil {
		log.Printf("[SCHEDULER] housekeeping failed: %v", err)
		return
	}
	log.Printf("[SCHEDULER] housekeep: expired=%d archived=%d recentDecay=%d deduplicated=%d",
		summary.Expired, summary.Archived, summary.RecentDecay, summary.Deduplicated)
}
