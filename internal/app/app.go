// Package app wires the pipeline, poster and store into the automation
// runner the server and scheduler drive.
package app

import (
	"context"
	"log"
	"time"

	"github.com/jobupdate/jobwire/internal/notify"
	"github.com/jobupdate/jobwire/internal/pipeline"
	"github.com/jobupdate/jobwire/internal/store"
	"github.com/jobupdate/jobwire/internal/types"
)

// App executes automation cycles and records them in the run log.
type App struct {
	Store    *store.Store
	Pipeline *pipeline.Pipeline
	// Poster is nil when Telegram is not configured; posting is skipped.
	Poster *notify.Poster
}

// RunFull runs one fetch cycle followed by one posting cycle. The run is
// logged even when a stage fails; the stage error is carried in the log
// entry, not returned, so the other stage still runs.
func (a *App) RunFull(ctx context.Context) (*types.RunSummary, error) {
	started := time.Now()
	summary := &types.RunSummary{}

	fetchSummary, fetchErr := a.Pipeline.Fetch(ctx)
	summary.Fetch = fetchSummary
	if fetchErr != nil {
		log.Printf("[APP] fetch cycle aborted: %v", fetchErr)
	}

	if a.Poster != nil && ctx.Err() == nil {
		postSummary, postErr := a.Poster.PostCycle(ctx)
		summary.Telegram = postSummary
		if postErr != nil {
			log.Printf("[APP] post cycle aborted: %v", postErr)
		}
	}

	if err := a.Store.RecordRun(ctx, store.RunFull, started, summary, firstErr(fetchErr, ctx.Err())); err != nil {
		log.Printf("[APP] recording run failed: %v", err)
	}
	return summary, ctx.Err()
}

// RunPost runs a posting cycle without fetching, for post-only triggers.
// The fetch summary in the result stays nil.
func (a *App) RunPost(ctx context.Context) (*types.RunSummary, error) {
	started := time.Now()
	summary := &types.RunSummary{}

	var postErr error
	if a.Poster != nil {
		summary.Telegram, postErr = a.Poster.PostCycle(ctx)
		if postErr != nil {
			log.Printf("[APP] post cycle aborted: %v", postErr)
		}
	}

	if err := a.Store.RecordRun(ctx, store.RunPost, started, summary, postErr); err != nil {
		log.Printf("[APP] recording run failed: %v", err)
	}
	return summary, ctx.Err()
}

// RunHousekeep runs the maintenance pass and logs it.
func (a *App) RunHousekeep(ctx context.Context, dedupeGroups bool) (*types.HousekeepSummary, error) {
	started := time.Now()

	summary, err := pipeline.Housekeep(ctx, a.Store, dedupeGroups)
	if recErr := a.Store.RecordRun(ctx, store.RunHousekeep, started, summary, err); recErr != nil {
		log.Printf("[APP] recording housekeeping run failed: %v", recErr)
	}
	return summary, err
}

// RecentRuns returns the latest run log entries.
func (a *App) RecentRuns(ctx context.Context, limit int) ([]store.Run, error) {
	return a.Store.RecentRuns(ctx, limit)
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
