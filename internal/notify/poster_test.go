package notify

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobupdate/jobwire/internal/types"
)

type fakeSender struct {
	sent    []string
	nextID  int
	failFor map[int]bool // fail the nth send (0-based)
	calls   int
}

func (f *fakeSender) SendMessage(_ context.Context, text string) (int, error) {
	call := f.calls
	f.calls++
	if f.failFor[call] {
		return 0, errors.New("flood control")
	}
	f.sent = append(f.sent, text)
	f.nextID++
	return f.nextID, nil
}

type fakePosterStore struct {
	postable    map[types.Category][]*types.Record
	closingSoon []*types.Record

	posted   []string
	reminded []string
	markErr  error
}

func (f *fakePosterStore) ListPostable(_ context.Context, categories []types.Category, limit int) ([]*types.Record, error) {
	var out []*types.Record
	for _, cat := range categories {
		out = append(out, f.postable[cat]...)
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakePosterStore) ListClosingSoon(_ context.Context, _ time.Time, _, _ time.Duration, limit int) ([]*types.Record, error) {
	out := f.closingSoon
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakePosterStore) MarkTelegramPosted(_ context.Context, slug string, _ int) error {
	if f.markErr != nil {
		return f.markErr
	}
	f.posted = append(f.posted, slug)
	return nil
}

func (f *fakePosterStore) MarkReminded(_ context.Context, slug string, _ time.Time) error {
	f.reminded = append(f.reminded, slug)
	return nil
}

func postableRecord(slug string, cat types.Category) *types.Record {
	return &types.Record{
		Slug:         slug,
		Title:        "Posting for " + slug,
		Organization: "Org",
		PostName:     "Various Posts",
		Category:     cat,
		Locations:    []string{"All India"},
		ApplyLink:    "https://example.com/" + slug,
	}
}

func TestPostCycle_PostsAllBatches(t *testing.T) {
	store := &fakePosterStore{
		postable: map[types.Category][]*types.Record{
			types.CategoryGovt:      {postableRecord("job-1", types.CategoryGovt)},
			types.CategoryResult:    {postableRecord("result-1", types.CategoryResult)},
			types.CategoryAdmitCard: {postableRecord("admit-1", types.CategoryAdmitCard)},
		},
	}
	sender := &fakeSender{}

	p := NewPoster(sender, store).WithDelay(0)
	summary, err := p.PostCycle(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, summary.JobsPosted)
	assert.Equal(t, 1, summary.ResultsPosted)
	assert.Equal(t, 1, summary.AdmitCardsPosted)
	assert.Equal(t, 0, summary.Errors)
	assert.Equal(t, []string{"job-1", "result-1", "admit-1"}, store.posted)
}

func TestPostCycle_RespectsJobCap(t *testing.T) {
	var recs []*types.Record
	for _, slug := range []string{"j1", "j2", "j3", "j4", "j5", "j6", "j7"} {
		recs = append(recs, postableRecord(slug, types.CategoryGovt))
	}
	store := &fakePosterStore{postable: map[types.Category][]*types.Record{types.CategoryGovt: recs}}
	sender := &fakeSender{}

	p := NewPoster(sender, store).WithDelay(0)
	summary, err := p.PostCycle(context.Background())
	require.NoError(t, err)
	assert.Equal(t, MaxJobsPerCycle, summary.JobsPosted)
}

func TestPostCycle_SendFailureCountedAndSkipped(t *testing.T) {
	store := &fakePosterStore{
		postable: map[types.Category][]*types.Record{
			types.CategoryGovt: {
				postableRecord("ok-1", types.CategoryGovt),
				postableRecord("bad", types.CategoryGovt),
				postableRecord("ok-2", types.CategoryGovt),
			},
		},
	}
	sender := &fakeSender{failFor: map[int]bool{1: true}}

	p := NewPoster(sender, store).WithDelay(0)
	summary, err := p.PostCycle(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, summary.JobsPosted)
	assert.Equal(t, 1, summary.Errors)
	assert.Equal(t, []string{"ok-1", "ok-2"}, store.posted)
}

func TestPostCycle_MarkFailureCounted(t *testing.T) {
	store := &fakePosterStore{
		postable: map[types.Category][]*types.Record{
			types.CategoryGovt: {postableRecord("job-1", types.CategoryGovt)},
		},
		markErr: errors.New("db down"),
	}
	sender := &fakeSender{}

	p := NewPoster(sender, store).WithDelay(0)
	summary, err := p.PostCycle(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, summary.JobsPosted)
	assert.Equal(t, 1, summary.Errors)
}

func TestPostCycle_SendsReminders(t *testing.T) {
	last := time.Now().Add(30 * time.Hour)
	rec := postableRecord("closing-1", types.CategoryGovt)
	rec.LastDate = &last
	store := &fakePosterStore{closingSoon: []*types.Record{rec}}
	sender := &fakeSender{}

	p := NewPoster(sender, store).WithDelay(0)
	summary, err := p.PostCycle(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Reminded)
	assert.Equal(t, []string{"closing-1"}, store.reminded)
	require.Len(t, sender.sent, 1)
	assert.Contains(t, sender.sent[0], "Closing Soon")
}

func TestPostCycle_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := NewPoster(&fakeSender{}, &fakePosterStore{}).WithDelay(0)
	_, err := p.PostCycle(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
