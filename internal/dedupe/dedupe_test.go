package dedupe

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobupdate/jobwire/internal/types"
)

type fakeLookup struct {
	byURL     map[string]*types.Record
	similar   *types.Record
	similarAt time.Time

	urlErr     error
	similarErr error

	lastSince time.Time
	lastOrg   string
	lastTitle string
}

func (f *fakeLookup) FindBySourceURL(_ context.Context, sourceURL string) (*types.Record, error) {
	if f.urlErr != nil {
		return nil, f.urlErr
	}
	return f.byURL[sourceURL], nil
}

func (f *fakeLookup) FindSimilarSince(_ context.Context, org, title, _ string, since time.Time) (*types.Record, error) {
	f.lastSince = since
	f.lastOrg = org
	f.lastTitle = title
	if f.similarErr != nil {
		return nil, f.similarErr
	}
	if f.similar != nil && f.similarAt.After(since) {
		return f.similar, nil
	}
	return nil, nil
}

type fakeSeen struct {
	seen   map[string]bool
	marked []string
	err    error
}

func (f *fakeSeen) Seen(_ context.Context, url string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.seen[url], nil
}

func (f *fakeSeen) Mark(_ context.Context, url string) error {
	f.marked = append(f.marked, url)
	return f.err
}

func sampleRecord() *types.Record {
	return &types.Record{
		SourceURL:    "https://example.com/sbi-po-2026",
		Title:        "SBI PO Recruitment 2026 Notification",
		Organization: "SBI PO",
		Locations:    []string{"Mumbai"},
	}
}

func TestIsDuplicate_ExactSourceURL(t *testing.T) {
	rec := sampleRecord()
	lookup := &fakeLookup{byURL: map[string]*types.Record{rec.SourceURL: rec}}
	c := NewChecker(lookup, nil)

	dup, err := c.IsDuplicate(context.Background(), rec)
	require.NoError(t, err)
	assert.True(t, dup)
}

func TestIsDuplicate_SimilarWithinWindow(t *testing.T) {
	now := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	lookup := &fakeLookup{
		similar:   sampleRecord(),
		similarAt: now.Add(-2 * 24 * time.Hour),
	}
	c := NewChecker(lookup, nil).WithClock(func() time.Time { return now })

	dup, err := c.IsDuplicate(context.Background(), sampleRecord())
	require.NoError(t, err)
	assert.True(t, dup)
	assert.Equal(t, "sbi po", lookup.lastOrg)
	assert.Equal(t, "sbi po recruitment 2026 notification", lookup.lastTitle)
	assert.Equal(t, now.Add(-Window), lookup.lastSince)
}

func TestIsDuplicate_SimilarOutsideWindow(t *testing.T) {
	now := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	lookup := &fakeLookup{
		similar:   sampleRecord(),
		similarAt: now.Add(-10 * 24 * time.Hour),
	}
	c := NewChecker(lookup, nil).WithClock(func() time.Time { return now })

	dup, err := c.IsDuplicate(context.Background(), sampleRecord())
	require.NoError(t, err)
	assert.False(t, dup)
}

func TestIsDuplicate_SeenCacheShortCircuits(t *testing.T) {
	rec := sampleRecord()
	seen := &fakeSeen{seen: map[string]bool{rec.SourceURL: true}}
	lookup := &fakeLookup{urlErr: errors.New("store should not be reached")}
	c := NewChecker(lookup, seen)

	dup, err := c.IsDuplicate(context.Background(), rec)
	require.NoError(t, err)
	assert.True(t, dup)
}

func TestIsDuplicate_CacheErrorFallsThroughToStore(t *testing.T) {
	rec := sampleRecord()
	seen := &fakeSeen{err: errors.New("redis down")}
	lookup := &fakeLookup{byURL: map[string]*types.Record{rec.SourceURL: rec}}
	c := NewChecker(lookup, seen)

	dup, err := c.IsDuplicate(context.Background(), rec)
	require.NoError(t, err)
	assert.True(t, dup)
}

func TestIsDuplicate_StoreErrorPropagates(t *testing.T) {
	lookup := &fakeLookup{urlErr: errors.New("connection refused")}
	c := NewChecker(lookup, nil)

	_, err := c.IsDuplicate(context.Background(), sampleRecord())
	assert.Error(t, err)
}

func TestMarkSeen_NilCacheIsNoop(t *testing.T) {
	c := NewChecker(&fakeLookup{}, nil)
	c.MarkSeen(context.Background(), "https://example.com/x")
}

func TestMarkSeen_RecordsURL(t *testing.T) {
	seen := &fakeSeen{}
	c := NewChecker(&fakeLookup{}, seen)

	c.MarkSeen(context.Background(), "https://example.com/x")
	assert.Equal(t, []string{"https://example.com/x"}, seen.marked)
}
