// Package pipeline orchestrates one ingestion cycle: select sources, fetch
// candidates, filter, enrich, normalize, dedupe and persist. One broken
// source or candidate never aborts the cycle; failures are counted in the
// run summary.
package pipeline

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"strings"
	"time"

	"github.com/jobupdate/jobwire/internal/dedupe"
	"github.com/jobupdate/jobwire/internal/fetch"
	"github.com/jobupdate/jobwire/internal/heuristics"
	"github.com/jobupdate/jobwire/internal/linkcheck"
	"github.com/jobupdate/jobwire/internal/normalize"
	"github.com/jobupdate/jobwire/internal/sources"
	"github.com/jobupdate/jobwire/internal/store"
	"github.com/jobupdate/jobwire/internal/types"
)

// Defaults for one cycle. Overridable through Options.
const (
	DefaultSubsetSize     = 3
	DefaultPerSourceLimit = 10
	DefaultSourceDelay    = 2 * time.Second
)

// Writer is the store surface the pipeline needs.
type Writer interface {
	Insert(ctx context.Context, rec *types.Record) error
	SlugExists(ctx context.Context, slug string) (bool, error)
}

// Options tunes a cycle.
type Options struct {
	// SubsetSize is how many sources one cycle hits; 0 means the default.
	SubsetSize int
	// PerSourceLimit caps candidates per source; 0 means the default.
	PerSourceLimit int
	// SourceDelay spaces source fetches; 0 means the default.
	SourceDelay time.Duration
	// Rand seeds source selection; nil means time-seeded.
	Rand *rand.Rand
	// FetchArticles enables detail page fetches for candidates with thin
	// feed content.
	FetchArticles bool
	// Fetcher serves article fetches; nil means an uncached one.
	Fetcher *fetch.CachedFetcher
}

func (o *Options) withDefaults() Options {
	out := Options{SubsetSize: DefaultSubsetSize, PerSourceLimit: DefaultPerSourceLimit, SourceDelay: DefaultSourceDelay}
	if o == nil {
		return out
	}
	if o.SubsetSize > 0 {
		out.SubsetSize = o.SubsetSize
	}
	if o.PerSourceLimit > 0 {
		out.PerSourceLimit = o.PerSourceLimit
	}
	if o.SourceDelay > 0 {
		out.SourceDelay = o.SourceDelay
	}
	out.Rand = o.Rand
	out.FetchArticles = o.FetchArticles
	out.Fetcher = o.Fetcher
	return out
}

// Pipeline wires the ingestion stages together.
type Pipeline struct {
	registry   *sources.Registry
	normalizer *normalize.Normalizer
	checker    *dedupe.Checker
	writer     Writer
	fetcher    *fetch.CachedFetcher
	lists      heuristics.Lists
	domains    linkcheck.Domains
	opts       Options
	now        func() time.Time
}

// New builds a Pipeline.
func New(registry *sources.Registry, normalizer *normalize.Normalizer, checker *dedupe.Checker, writer Writer, opts *Options) *Pipeline {
	resolved := opts.withDefaults()
	fetcher := resolved.Fetcher
	if fetcher == nil {
		fetcher = fetch.NewCachedFetcher(nil, nil, 0)
	}
	return &Pipeline{
		registry:   registry,
		normalizer: normalizer,
		checker:    checker,
		writer:     writer,
		fetcher:    fetcher,
		lists:      heuristics.DefaultLists(),
		domains:    linkcheck.DefaultDomains(),
		opts:       resolved,
		now:        time.Now,
	}
}

// Fetch runs one ingestion cycle and returns its summary. The returned
// error is only for a cancelled context; per-source and per-candidate
// failures live in the summary.
func (p *Pipeline) Fetch(ctx context.Context) (*types.FetchSummary, error) {
	started := p.now()
	summary := &types.FetchSummary{Sources: make(map[string]types.SourceResult)}

	selected := sources.SelectSubset(p.registry.All(), p.opts.SubsetSize, p.opts.Rand)
	for i, src := range selected {
		if err := ctx.Err(); err != nil {
			summary.Duration = p.now().Sub(started)
			return summary, err
		}
		if i > 0 {
			select {
			case <-ctx.Done():
				summary.Duration = p.now().Sub(started)
				return summary, ctx.Err()
			case <-time.After(p.opts.SourceDelay):
			}
		}

		result := p.runSource(ctx, src, summary)
		summary.Sources[src.Name()] = result
	}

	summary.Duration = p.now().Sub(started)
	return summary, nil
}

func (p *Pipeline) runSource(ctx context.Context, src sources.Source, summary *types.FetchSummary) types.SourceResult {
	log.Printf("[PIPELINE] fetching from %s", src.Name())

	candidates, err := src.Fetch(ctx, p.opts.PerSourceLimit)
	if err != nil {
		log.Printf("[PIPELINE] source %s failed: %v", src.Name(), err)
		summary.Errors++
		return types.SourceResult{Count: len(candidates), Success: false, Error: err.Error()}
	}

	for _, cand := range candidates {
		summary.Fetched++
		p.processCandidate(ctx, cand, summary)
	}
	return types.SourceResult{Count: len(candidates), Success: true}
}

func (p *Pipeline) processCandidate(ctx context.Context, cand types.RawCandidate, summary *types.FetchSummary) {
	if !heuristics.IsRelevant(cand.Title, cand.ContentSnippet, p.lists) {
		summary.Skipped++
		return
	}

	articleText, articleHTML := p.enrich(ctx, cand)

	applyLink := cand.Link
	if articleHTML != "" {
		applyLink = linkcheck.ExtractOfficialLink(articleHTML, cand.Link, p.domains)
	}

	rec := p.normalizer.Normalize(cand, articleText, applyLink)

	dup, err := p.checker.IsDuplicate(ctx, rec)
	if err != nil {
		log.Printf("[PIPELINE] dedupe check failed for %s: %v", rec.SourceURL, err)
		summary.Errors++
		return
	}
	if dup {
		summary.Duplicates++
		return
	}

	if err := p.insert(ctx, rec); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			summary.Duplicates++
			return
		}
		log.Printf("[PIPELINE] insert failed for %s: %v", rec.SourceURL, err)
		summary.Errors++
		return
	}

	p.checker.MarkSeen(ctx, rec.SourceURL)
	summary.Added++
}

// insert writes the record, disambiguating the slug once on collision.
func (p *Pipeline) insert(ctx context.Context, rec *types.Record) error {
	taken, err := p.writer.SlugExists(ctx, rec.Slug)
	if err != nil {
		return err
	}
	if taken {
		rec.Slug = normalize.Disambiguate(rec.Slug, p.now())
	}
	return p.writer.Insert(ctx, rec)
}

// enrich fetches the article page when the feed content looks too thin to
// extract from. Fetch failures fall back to the feed content.
func (p *Pipeline) enrich(ctx context.Context, cand types.RawCandidate) (text, html string) {
	html = cand.ContentHTML
	text = cand.ContentSnippet

	if !p.opts.FetchArticles {
		return text, html
	}
	if len(strings.TrimSpace(text)) >= fetch.MinContentLength {
		return text, html
	}

	res, _, err := p.fetcher.Fetch(ctx, cand.Link)
	if err != nil {
		log.Printf("[PIPELINE] article fetch failed for %s: %v", cand.Link, err)
		return text, html
	}

	platform := fetch.DetectPlatform(cand.Link)
	extracted, err := fetch.ExtractMainText(res.HTML,
		fetch.PlatformContentSelectors(platform),
		fetch.PlatformNoiseSelectors(platform)...)
	if err != nil || strings.TrimSpace(extracted) == "" {
		return text, res.HTML
	}
	return extracted, res.HTML
}
