package sources

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gocolly/colly/v2"

	"github.com/jobupdate/jobwire/internal/fetch"
	"github.com/jobupdate/jobwire/internal/types"
)

// AggregatorSource scrapes a server-rendered job aggregator listing with a
// classic crawler. It collects title and link from listing cards and leaves
// detail enrichment to the pipeline.
type AggregatorSource struct {
	name            string
	listingURL      string
	cardSelector    string
	defaultCategory types.Category
}

// NewAggregatorSource builds the adapter. cardSelector locates one job card
// containing a link; "" uses a selector set that fits most WordPress-style
// boards.
func NewAggregatorSource(name, listingURL, cardSelector string, defaultCategory types.Category) *AggregatorSource {
	if cardSelector == "" {
		cardSelector = "article h2 a[href], article h3 a[href], .post-title a[href]"
	}
	return &AggregatorSource{
		name:            name,
		listingURL:      listingURL,
		cardSelector:    cardSelector,
		defaultCategory: defaultCategory,
	}
}

func (s *AggregatorSource) Name() string {
	return s.name
}

func (s *AggregatorSource) Fetch(ctx context.Context, limit int) ([]types.RawCandidate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c := colly.NewCollector(
		colly.UserAgent(fetch.DefaultUserAgent),
		colly.MaxDepth(1),
	)
	c.SetRequestTimeout(fetch.DefaultTimeout)

	seen := make(map[string]bool)
	var out []types.RawCandidate
	var scrapeErr error

	c.OnHTML(s.cardSelector, func(e *colly.HTMLElement) {
		if limit > 0 && len(out) >= limit {
			return
		}
		link := e.Request.AbsoluteURL(e.Attr("href"))
		title := strings.TrimSpace(e.Text)
		if link == "" || title == "" || seen[link] {
			return
		}
		seen[link] = true
		out = append(out, types.RawCandidate{
			SourceName:      s.name,
			Title:           title,
			Link:            link,
			PublishedAt:     time.Now().UTC(),
			DefaultCategory: s.defaultCategory,
		})
	})

	c.OnError(func(_ *colly.Response, err error) {
		scrapeErr = err
	})

	if err := c.Visit(s.listingURL); err != nil {
		return nil, fmt.Errorf("visit %s: %w", s.listingURL, err)
	}
	c.Wait()

	if scrapeErr != nil {
		return out, fmt.Errorf("scrape %s: %w", s.listingURL, scrapeErr)
	}
	return out, nil
}
