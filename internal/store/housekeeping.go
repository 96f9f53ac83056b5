package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jobupdate/jobwire/internal/types"
)

// StaleAfter is how long a record without an expiry date stays active.
const StaleAfter = 60 * 24 * time.Hour

// RecentFor is how long a record keeps its recent flag.
const RecentFor = 7 * 24 * time.Hour

// ExpireOverdue marks records past their expiry or last date as expired and
// returns the number affected.
func (s *Store) ExpireOverdue(ctx context.Context, now time.Time) (int64, error) {
	tag, err := s.pool.Exec(ctx, `
		UPDATE jobs
		SET status = $1, is_active = FALSE, updated_at = now()
		WHERE is_active = TRUE
		  AND (
			(expires_at IS NOT NULL AND expires_at < $2)
			OR (last_date IS NOT NULL AND last_date < $2)
		  )`,
		types.StatusExpired, now)
	if err != nil {
		return 0, fmt.Errorf("expire overdue: %w", err)
	}
	return tag.RowsAffected(), nil
}

// ArchiveStale deactivates records with no expiry that have sat around
// longer than StaleAfter.
func (s *Store) ArchiveStale(ctx context.Context, now time.Time) (int64, error) {
	tag, err := s.pool.Exec(ctx, `
		UPDATE jobs
		SET is_active = FALSE, updated_at = now()
		WHERE is_active = TRUE
		  AND expires_at IS NULL
		  AND last_date IS NULL
		  AND posted_date < $1`,
		now.Add(-StaleAfter))
	if err != nil {
		return 0, fmt.Errorf("archive stale: %w", err)
	}
	return tag.RowsAffected(), nil
}

// DecayRecent clears the recent flag on records older than RecentFor.
func (s *Store) DecayRecent(ctx context.Context, now time.Time) (int64, error) {
	tag, err := s.pool.Exec(ctx, `
		UPDATE jobs
		SET is_recent = FALSE, updated_at = now()
		WHERE is_recent = TRUE AND posted_date < $1`,
		now.Add(-RecentFor))
	if err != nil {
		return 0, fmt.Errorf("decay recent: %w", err)
	}
	return tag.RowsAffected(), nil
}

// DeactivateDuplicateGroups deactivates all but the newest active record in
// every group sharing organization, title and first location. Runs weekly;
// catches what the ingest-time checks missed. Rows are never deleted, so
// already-inactive history is left untouched.
func (s *Store) DeactivateDuplicateGroups(ctx context.Context) (int64, error) {
	tag, err := s.pool.Exec(ctx, `
		UPDATE jobs
		SET is_active = FALSE, updated_at = now()
		WHERE id IN (
			SELECT id FROM (
				SELECT id, row_number() OVER (
					PARTITION BY lower(organization), lower(title), lower(coalesce(locations[1], ''))
					ORDER BY created_at DESC
				) AS rn
				FROM jobs
				WHERE is_active = TRUE
			) ranked
			WHERE ranked.rn > 1
		)`)
	if err != nil {
		return 0, fmt.Errorf("deactivate duplicate groups: %w", err)
	}
	return tag.RowsAffected(), nil
}
