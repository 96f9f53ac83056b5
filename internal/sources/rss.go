package sources

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/jobupdate/jobwire/internal/fetch"
	"github.com/jobupdate/jobwire/internal/types"
)

// RSSSource reads a job notification RSS or Atom feed.
type RSSSource struct {
	name            string
	feedURL         string
	defaultCategory types.Category
	timeout         time.Duration
	parser          *gofeed.Parser
}

// NewRSSSource builds an adapter for one feed. defaultCategory is attached
// to every candidate as the classifier fallback.
func NewRSSSource(name, feedURL string, defaultCategory types.Category) *RSSSource {
	parser := gofeed.NewParser()
	parser.UserAgent = fetch.DefaultUserAgent
	return &RSSSource{
		name:            name,
		feedURL:         feedURL,
		defaultCategory: defaultCategory,
		timeout:         fetch.DefaultTimeout,
		parser:          parser,
	}
}

func (s *RSSSource) Name() string {
	return s.name
}

// Fetch parses the feed and maps items to raw candidates. Items without a
// link are skipped.
func (s *RSSSource) Fetch(ctx context.Context, limit int) ([]types.RawCandidate, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	feed, err := s.parser.ParseURLWithContext(s.feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("parse feed %s: %w", s.feedURL, err)
	}

	var out []types.RawCandidate
	for _, item := range feed.Items {
		if limit > 0 && len(out) >= limit {
			break
		}
		link := strings.TrimSpace(item.Link)
		if link == "" {
			continue
		}

		cand := types.RawCandidate{
			SourceName:      s.name,
			Title:           strings.TrimSpace(item.Title),
			Link:            link,
			ContentSnippet:  strings.TrimSpace(item.Description),
			ContentHTML:     itemHTML(item),
			DefaultCategory: s.defaultCategory,
		}
		if item.PublishedParsed != nil {
			cand.PublishedAt = *item.PublishedParsed
		}
		out = append(out, cand)
	}
	return out, nil
}

// itemHTML prefers the full content block over the description snippet.
func itemHTML(item *gofeed.Item) string {
	if strings.TrimSpace(item.Content) != "" {
		return item.Content
	}
	return item.Description
}
