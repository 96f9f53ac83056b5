package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// RunKind labels an automation run log entry.
type RunKind string

const (
	RunFetch     RunKind = "fetch"
	RunPost      RunKind = "post"
	RunHousekeep RunKind = "housekeep"
	RunFull      RunKind = "full"
)

// RecordRun appends one row to the automation run log. The summary is
// stored as JSON so each run kind keeps its own shape.
func (s *Store) RecordRun(ctx context.Context, kind RunKind, startedAt time.Time, summary any, runErr error) error {
	payload, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("marshal run summary: %w", err)
	}

	var errText *string
	if runErr != nil {
		msg := runErr.Error()
		errText = &msg
	}

	_, err = s.pool.Exec(ctx, `
		INSERT INTO automation_runs (id, kind, started_at, finished_at, summary, error)
		VALUES ($1, $2, $3, now(), $4, $5)`,
		uuid.New(), kind, startedAt, payload, errText)
	if err != nil {
		return fmt.Errorf("record run: %w", err)
	}
	return nil
}

// RecentRuns returns the latest run log entries, newest first.
func (s *Store) RecentRuns(ctx context.Context, limit int) ([]Run, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, kind, started_at, finished_at, summary, error
		FROM automation_runs
		ORDER BY started_at DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("recent runs: %w", err)
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.ID, &r.Kind, &r.StartedAt, &r.FinishedAt, &r.Summary, &r.Error); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return out, nil
}

// Run is one automation run log entry.
type Run struct {
	ID         uuid.UUID       `json:"id"`
	Kind       RunKind         `json:"kind"`
	StartedAt  time.Time       `json:"started_at"`
	FinishedAt time.Time       `json:"finished_at"`
	Summary    json.RawMessage `json:"summary"`
	Error      *string         `json:"error,omitempty"`
}
