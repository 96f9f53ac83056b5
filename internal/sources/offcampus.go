package sources

import (
	"context"
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/jobupdate/jobwire/internal/fetch"
	"github.com/jobupdate/jobwire/internal/types"
)

// offCampusMaxDetails caps how many detail pages one cycle will render.
// Detail fetches are the expensive part of this adapter.
const offCampusMaxDetails = 5

// offCampusDetailDelay spaces detail page fetches to stay polite.
const offCampusDetailDelay = 2 * time.Second

// OffCampusSource scrapes a JavaScript-rendered off-campus hiring board.
// The listing page needs a headless browser; detail pages are usually
// server-rendered and fetched over plain HTTP.
type OffCampusSource struct {
	name       string
	listingURL string
	verbose    bool

	// render is swappable so tests can avoid a real browser.
	render func(ctx context.Context, url string, verbose bool) (string, error)
	// delay is shortened in tests.
	delay time.Duration
}

// NewOffCampusSource builds the adapter for one listing page.
func NewOffCampusSource(name, listingURL string, verbose bool) *OffCampusSource {
	return &OffCampusSource{
		name:       name,
		listingURL: listingURL,
		verbose:    verbose,
		render:     fetch.BrowserSimple,
		delay:      offCampusDetailDelay,
	}
}

func (s *OffCampusSource) Name() string {
	return s.name
}

// Fetch renders the listing, collects job card links, then fetches up to
// five detail pages. A failing detail page is logged and skipped; the other
// candidates still go through.
func (s *OffCampusSource) Fetch(ctx context.Context, limit int) ([]types.RawCandidate, error) {
	html, err := s.render(ctx, s.listingURL, s.verbose)
	if err != nil {
		return nil, &fetch.Error{URL: s.listingURL, Message: "listing render failed", Cause: err}
	}

	cards, err := s.parseListing(html)
	if err != nil {
		return nil, &fetch.Error{URL: s.listingURL, Message: "listing parse failed", Cause: err}
	}

	max := offCampusMaxDetails
	if limit > 0 && limit < max {
		max = limit
	}

	var out []types.RawCandidate
	for i, card := range cards {
		if len(out) >= max {
			break
		}
		if i > 0 {
			select {
			case <-ctx.Done():
				return out, ctx.Err()
			case <-time.After(s.delay):
			}
		}

		cand, err := s.fetchDetail(ctx, card)
		if err != nil {
			log.Printf("[%s] detail fetch failed for %s: %v", s.name, card.link, err)
			continue
		}
		out = append(out, cand)
	}
	return out, nil
}

type listingCard struct {
	title string
	link  string
}

func (s *OffCampusSource) parseListing(html string) ([]listingCard, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}
	base, _ := url.Parse(s.listingURL)

	seen := make(map[string]bool)
	var cards []listingCard
	doc.Find("article a[href], .job-card a[href], .job-listing a[href], h2 a[href], h3 a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		title := strings.TrimSpace(sel.Text())
		if href == "" || title == "" || len(title) < 10 {
			return
		}
		resolved := resolveAgainst(base, href)
		if resolved == "" || seen[resolved] {
			return
		}
		seen[resolved] = true
		cards = append(cards, listingCard{title: title, link: resolved})
	})
	return cards, nil
}

func (s *OffCampusSource) fetchDetail(ctx context.Context, card listingCard) (types.RawCandidate, error) {
	res, err := fetch.URL(ctx, card.link, nil)
	if err != nil {
		return types.RawCandidate{}, err
	}

	text, err := fetch.ExtractMainText(res.HTML, fetch.ArticleSelectors())
	if err != nil {
		return types.RawCandidate{}, err
	}

	snippet := text
	if len(snippet) > 500 {
		snippet = snippet[:500]
	}

	return types.RawCandidate{
		SourceName:      s.name,
		Title:           card.title,
		Link:            card.link,
		ContentSnippet:  snippet,
		ContentHTML:     res.HTML,
		PublishedAt:     time.Now().UTC(),
		DefaultCategory: types.CategoryPrivate,
	}, nil
}

func resolveAgainst(base *url.URL, href string) string {
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return ""
	}
	if ref.IsAbs() {
		return ref.String()
	}
	if base == nil {
		return ""
	}
	return base.ResolveReference(ref).String()
}
