package notify

import (
	"context"
	"log"
	"time"

	"github.com/jobupdate/jobwire/internal/types"
)

// Per-cycle posting caps keep the channel readable. Jobs, results and admit
// cards have separate budgets so a result burst cannot starve job alerts.
const (
	MaxJobsPerCycle       = 5
	MaxResultsPerCycle    = 3
	MaxAdmitCardsPerCycle = 3
)

// postDelay spaces messages to stay under the Bot API rate limit.
const postDelay = 2 * time.Second

// ReminderHorizon is how close a last date must be for a closing-soon
// repost.
const ReminderHorizon = 2 * 24 * time.Hour

// ReminderCooldown prevents re-reminding the same record within a day.
const ReminderCooldown = 24 * time.Hour

// jobCategories are the categories announced under the jobs budget.
var jobCategories = []types.Category{
	types.CategoryGovt, types.CategoryPrivate, types.CategoryIT,
	types.CategoryBanking, types.CategoryRailway, types.CategoryPolice,
	types.CategoryDefence, types.CategoryTeaching, types.CategoryPSU,
}

// Sender abstracts the Telegram client for tests.
type Sender interface {
	SendMessage(ctx context.Context, text string) (int, error)
}

// PosterStore is the store surface the poster needs.
type PosterStore interface {
	ListPostable(ctx context.Context, categories []types.Category, limit int) ([]*types.Record, error)
	ListClosingSoon(ctx context.Context, now time.Time, horizon, cooldown time.Duration, limit int) ([]*types.Record, error)
	MarkTelegramPosted(ctx context.Context, slug string, messageID int) error
	MarkReminded(ctx context.Context, slug string, at time.Time) error
}

// Poster drains the postable backlog into the channel, category budget by
// category budget.
type Poster struct {
	sender Sender
	store  PosterStore
	delay  time.Duration
	now    func() time.Time
}

// NewPoster builds a Poster.
func NewPoster(sender Sender, store PosterStore) *Poster {
	return &Poster{
		sender: sender,
		store:  store,
		delay:  postDelay,
		now:    time.Now,
	}
}

// WithDelay overrides the inter-message delay, for tests.
func (p *Poster) WithDelay(d time.Duration) *Poster {
	p.delay = d
	return p
}

// WithClock overrides the time source, for tests.
func (p *Poster) WithClock(now func() time.Time) *Poster {
	p.now = now
	return p
}

// PostCycle runs one posting pass: new jobs, results, admit cards, then
// closing-soon reminders. A failed send is counted and skipped; the record
// stays unposted for the next cycle.
func (p *Poster) PostCycle(ctx context.Context) (*types.PostSummary, error) {
	started := p.now()
	summary := &types.PostSummary{}

	summary.JobsPosted = p.postBatch(ctx, jobCategories, MaxJobsPerCycle, summary)
	summary.ResultsPosted = p.postBatch(ctx, []types.Category{types.CategoryResult}, MaxResultsPerCycle, summary)
	summary.AdmitCardsPosted = p.postBatch(ctx, []types.Category{types.CategoryAdmitCard}, MaxAdmitCardsPerCycle, summary)
	summary.Reminded = p.remind(ctx, summary)

	summary.Duration = p.now().Sub(started)
	return summary, ctx.Err()
}

func (p *Poster) postBatch(ctx context.Context, categories []types.Category, limit int, summary *types.PostSummary) int {
	records, err := p.store.ListPostable(ctx, categories, limit)
	if err != nil {
		log.Printf("[POSTER] listing postable records failed: %v", err)
		summary.Errors++
		return 0
	}

	posted := 0
	for _, rec := range records {
		if err := ctx.Err(); err != nil {
			return posted
		}
		if posted > 0 {
			p.sleep(ctx)
		}

		messageID, err := p.sender.SendMessage(ctx, FormatMessage(rec))
		if err != nil {
			log.Printf("[POSTER] send failed for %s: %v", rec.Slug, err)
			summary.Errors++
			continue
		}
		if err := p.store.MarkTelegramPosted(ctx, rec.Slug, messageID); err != nil {
			log.Printf("[POSTER] marking %s posted failed: %v", rec.Slug, err)
			summary.Errors++
			continue
		}
		posted++
	}
	return posted
}

func (p *Poster) remind(ctx context.Context, summary *types.PostSummary) int {
	now := p.now()
	records, err := p.store.ListClosingSoon(ctx, now, ReminderHorizon, ReminderCooldown, MaxJobsPerCycle)
	if err != nil {
		log.Printf("[POSTER] listing closing-soon records failed: %v", err)
		summary.Errors++
		return 0
	}

	reminded := 0
	for _, rec := range records {
		if err := ctx.Err(); err != nil {
			return reminded
		}
		if reminded > 0 {
			p.sleep(ctx)
		}

		if _, err := p.sender.SendMessage(ctx, FormatReminder(rec, now)); err != nil {
			log.Printf("[POSTER] reminder failed for %s: %v", rec.Slug, err)
			summary.Errors++
			continue
		}
		if err := p.store.MarkReminded(ctx, rec.Slug, now); err != nil {
			log.Printf("[POSTER] marking %s reminded failed: %v", rec.Slug, err)
			summary.Errors++
			continue
		}
		reminded++
	}
	return reminded
}

func (p *Poster) sleep(ctx context.Context) {
	select {
	case <-ctx.Done():
	case <-time.After(p.delay):
	}
}
