// Package dedupe decides whether an incoming record duplicates one already
// persisted. Two checks run in order: exact source URL match, then a fuzzy
// match on organization, title and first location within a sliding window.
package dedupe

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jobupdate/jobwire/internal/types"
)

// Window is how far back the fuzzy duplicate check looks. An identical
// posting older than this is treated as a fresh announcement.
const Window = 7 * 24 * time.Hour

// Lookup is the subset of the store the checker needs.
type Lookup interface {
	FindBySourceURL(ctx context.Context, sourceURL string) (*types.Record, error)
	FindSimilarSince(ctx context.Context, organization, title, location string, since time.Time) (*types.Record, error)
}

// Checker runs the duplicate checks against a store.
type Checker struct {
	lookup Lookup
	seen   SeenCache
	window time.Duration
	now    func() time.Time
}

// NewChecker builds a Checker. seen may be nil when no cache is configured.
func NewChecker(lookup Lookup, seen SeenCache) *Checker {
	return &Checker{
		lookup: lookup,
		seen:   seen,
		window: Window,
		now:    time.Now,
	}
}

// WithWindow overrides the fuzzy window, for tests.
func (c *Checker) WithWindow(w time.Duration) *Checker {
	c.window = w
	return c
}

// WithClock overrides the time source, for tests.
func (c *Checker) WithClock(now func() time.Time) *Checker {
	c.now = now
	return c
}

// IsDuplicate reports whether rec duplicates a stored record. The seen
// cache, when present, short-circuits the store lookups; a cache error is
// ignored and the store decides.
func (c *Checker) IsDuplicate(ctx context.Context, rec *types.Record) (bool, error) {
	if c.seen != nil {
		hit, err := c.seen.Seen(ctx, rec.SourceURL)
		if err == nil && hit {
			return true, nil
		}
	}

	existing, err := c.lookup.FindBySourceURL(ctx, rec.SourceURL)
	if err != nil {
		return false, fmt.Errorf("dedupe url lookup: %w", err)
	}
	if existing != nil {
		return true, nil
	}

	since := c.now().Add(-c.window)
	similar, err := c.lookup.FindSimilarSince(ctx,
		normalizeKey(rec.Organization), normalizeKey(rec.Title), normalizeKey(rec.FirstLocation()), since)
	if err != nil {
		return false, fmt.Errorf("dedupe similarity lookup: %w", err)
	}
	return similar != nil, nil
}

// MarkSeen records the URL in the seen cache after a successful insert.
// Missing cache is a no-op.
func (c *Checker) MarkSeen(ctx context.Context, sourceURL string) {
	if c.seen == nil {
		return
	}
	_ = c.seen.Mark(ctx, sourceURL)
}

// normalizeKey lowers and squeezes a fuzzy-key component so case and
// whitespace differences do not defeat the match.
func normalizeKey(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
