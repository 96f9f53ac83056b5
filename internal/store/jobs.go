package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jobupdate/jobwire/internal/types"
)

// ErrDuplicate is returned by Insert when the source URL is already stored.
var ErrDuplicate = errors.New("record already exists")

const recordColumns = `slug, source_url, apply_link, title, organization, post_name,
	category, it_role, qualification, exp_min, exp_max, exp_label, salary,
	locations, skills, vacancies, description,
	last_date, exam_date, posted_date, expires_at,
	status, is_official, is_active, is_recent, validation_errors,
	views, clicks, telegram_posted, telegram_message_id, last_reposted_at`

// Insert stores a new record. A source URL conflict returns ErrDuplicate; a
// slug conflict is the caller's cue to disambiguate and retry.
func (s *Store) Insert(ctx context.Context, rec *types.Record) error {
	tag, err := s.pool.Exec(ctx, `
		INSERT INTO jobs (`+recordColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
			$14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25,
			$26, $27, $28, $29, $30, $31)
		ON CONFLICT (source_url) DO NOTHING`,
		rec.Slug, rec.SourceURL, rec.ApplyLink, rec.Title, rec.Organization, rec.PostName,
		rec.Category, rec.ITRole, rec.Qualification,
		rec.Experience.Min, rec.Experience.Max, rec.Experience.Label, rec.Salary,
		rec.Locations, rec.Skills, rec.Vacancies, rec.Description,
		rec.LastDate, rec.ExamDate, rec.PostedDate, rec.ExpiresAt,
		rec.Status, rec.IsOfficial, rec.IsActive, rec.IsRecent, rec.ValidationErrors,
		rec.Views, rec.Clicks, rec.TelegramPosted, rec.TelegramMessageID, rec.LastRepostedAt,
	)
	if err != nil {
		return fmt.Errorf("insert record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrDuplicate
	}
	return nil
}

// SlugExists reports whether a slug is taken.
func (s *Store) SlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := s.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM jobs WHERE slug = $1)`, slug).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("slug lookup: %w", err)
	}
	return exists, nil
}

// FindBySourceURL returns the record with the exact source URL, or nil.
func (s *Store) FindBySourceURL(ctx context.Context, sourceURL string) (*types.Record, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+recordColumns+` FROM jobs WHERE source_url = $1`, sourceURL)
	return scanRecord(row)
}

// FindBySlug returns the record with the given slug, or nil.
func (s *Store) FindBySlug(ctx context.Context, slug string) (*types.Record, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+recordColumns+` FROM jobs WHERE slug = $1`, slug)
	return scanRecord(row)
}

// FindSimilarSince returns a record matching organization, title and first
// location created on or after since, or nil. Inputs are expected
// lowercased.
func (s *Store) FindSimilarSince(ctx context.Context, organization, title, location string, since time.Time) (*types.Record, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT `+recordColumns+` FROM jobs
		WHERE lower(organization) = $1
		  AND lower(title) = $2
		  AND (cardinality(locations) = 0 OR lower(locations[1]) = $3)
		  AND created_at >= $4
		LIMIT 1`,
		organization, title, location, since)
	return scanRecord(row)
}

// ListPostable returns active published records in a category that have not
// yet been announced, oldest first.
func (s *Store) ListPostable(ctx context.Context, categories []types.Category, limit int) ([]*types.Record, error) {
	cats := make([]string, len(categories))
	for i, c := range categories {
		cats[i] = string(c)
	}

	rows, err := s.pool.Query(ctx, `
		SELECT `+recordColumns+` FROM jobs
		WHERE is_active = TRUE
		  AND status = $1
		  AND telegram_posted = FALSE
		  AND category = ANY($2)
		ORDER BY created_at ASC
		LIMIT $3`,
		types.StatusPublished, cats, limit)
	if err != nil {
		return nil, fmt.Errorf("list postable: %w", err)
	}
	defer rows.Close()
	return collectRecords(rows)
}

// ListClosingSoon returns posted records whose last date falls inside the
// reminder horizon and that have not been reminded within the cooldown.
func (s *Store) ListClosingSoon(ctx context.Context, now time.Time, horizon, cooldown time.Duration, limit int) ([]*types.Record, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT `+recordColumns+` FROM jobs
		WHERE is_active = TRUE
		  AND status = $1
		  AND telegram_posted = TRUE
		  AND last_date IS NOT NULL
		  AND last_date BETWEEN $2 AND $3
		  AND (last_reposted_at IS NULL OR last_reposted_at < $4)
		ORDER BY last_date ASC
		LIMIT $5`,
		types.StatusPublished, now, now.Add(horizon), now.Add(-cooldown), limit)
	if err != nil {
		return nil, fmt.Errorf("list closing soon: %w", err)
	}
	defer rows.Close()
	return collectRecords(rows)
}

// MarkTelegramPosted records a successful channel post.
func (s *Store) MarkTelegramPosted(ctx context.Context, slug string, messageID int) error {
	_, err := s.pool.Exec(ctx, `
		UPDATE jobs
		SET telegram_posted = TRUE, telegram_message_id = $2, updated_at = now()
		WHERE slug = $1`, slug, messageID)
	if err != nil {
		return fmt.Errorf("mark posted: %w", err)
	}
	return nil
}

// MarkReminded stamps the reminder cooldown.
func (s *Store) MarkReminded(ctx context.Context, slug string, at time.Time) error {
	_, err := s.pool.Exec(ctx, `
		UPDATE jobs SET last_reposted_at = $2, updated_at = now() WHERE slug = $1`,
		slug, at)
	if err != nil {
		return fmt.Errorf("mark reminded: %w", err)
	}
	return nil
}

// IncrementViews bumps the view counter.
func (s *Store) IncrementViews(ctx context.Context, slug string) error {
	_, err := s.pool.Exec(ctx,
		`UPDATE jobs SET views = views + 1 WHERE slug = $1`, slug)
	if err != nil {
		return fmt.Errorf("increment views: %w", err)
	}
	return nil
}

// IncrementClicks bumps the click counter.
func (s *Store) IncrementClicks(ctx context.Context, slug string) error {
	_, err := s.pool.Exec(ctx,
		`UPDATE jobs SET clicks = clicks + 1 WHERE slug = $1`, slug)
	if err != nil {
		return fmt.Errorf("increment clicks: %w", err)
	}
	return nil
}

func scanRecord(row pgx.Row) (*types.Record, error) {
	var rec types.Record
	err := row.Scan(
		&rec.Slug, &rec.SourceURL, &rec.ApplyLink, &rec.Title, &rec.Organization, &rec.PostName,
		&rec.Category, &rec.ITRole, &rec.Qualification,
		&rec.Experience.Min, &rec.Experience.Max, &rec.Experience.Label, &rec.Salary,
		&rec.Locations, &rec.Skills, &rec.Vacancies, &rec.Description,
		&rec.LastDate, &rec.ExamDate, &rec.PostedDate, &rec.ExpiresAt,
		&rec.Status, &rec.IsOfficial, &rec.IsActive, &rec.IsRecent, &rec.ValidationErrors,
		&rec.Views, &rec.Clicks, &rec.TelegramPosted, &rec.TelegramMessageID, &rec.LastRepostedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan record: %w", err)
	}
	return &rec, nil
}

func collectRecords(rows pgx.Rows) ([]*types.Record, error) {
	var out []*types.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate records: %w", err)
	}
	return out, nil
}
