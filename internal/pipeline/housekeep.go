package pipeline

import (
	"context"
	"log"
	"time"

	"github.com/jobupdate/jobwire/internal/types"
)

// Housekeeper is the store surface the maintenance pass needs.
type Housekeeper interface {
	ExpireOverdue(ctx context.Context, now time.Time) (int64, error)
	ArchiveStale(ctx context.Context, now time.Time) (int64, error)
	DecayRecent(ctx context.Context, now time.Time) (int64, error)
	DeactivateDuplicateGroups(ctx context.Context) (int64, error)
}

// Housekeep runs the maintenance pass: expire, archive, decay and, when
// dedupeGroups is set, the weekly duplicate-group cleanup. Individual step
// failures are logged and the rest still run.
func Housekeep(ctx context.Context, hk Housekeeper, dedupeGroups bool) (*types.HousekeepSummary, error) {
	started := time.Now()
	now := started.UTC()
	summary := &types.HousekeepSummary{}

	expired, err := hk.ExpireOverdue(ctx, now)
	if err != nil {
		log.Printf("[HOUSEKEEP] expire pass failed: %v", err)
	}
	summary.Expired = int(expired)

	archived, err := hk.ArchiveStale(ctx, now)
	if err != nil {
		log.Printf("[HOUSEKEEP] archive pass failed: %v", err)
	}
	summary.Archived = int(archived)

	decayed, err := hk.DecayRecent(ctx, now)
	if err != nil {
		log.Printf("[HOUSEKEEP] recent decay pass failed: %v", err)
	}
	summary.RecentDecay = int(decayed)

	if dedupeGroups {
		deactivated, err := hk.DeactivateDuplicateGroups(ctx)
		if err != nil {
			log.Printf("[HOUSEKEEP] duplicate cleanup failed: %v", err)
		}
		summary.Deduplicated = int(deactivated)
	}

	summary.Duration = time.Since(started)
	return summary, ctx.Err()
}
