package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/jobupdate/jobwire/internal/fetch"
	"github.com/jobupdate/jobwire/internal/types"
)

const arbeitnowDefaultURL = "https://www.arbeitnow.com/api/job-board-api"

// ArbeitnowSource pulls openings from the Arbeitnow job board API.
type ArbeitnowSource struct {
	apiURL string
	client *http.Client
}

// NewArbeitnowSource builds the adapter. apiURL overrides the production
// endpoint; pass "" for the default.
func NewArbeitnowSource(apiURL string) *ArbeitnowSource {
	if apiURL == "" {
		apiURL = arbeitnowDefaultURL
	}
	return &ArbeitnowSource{
		apiURL: apiURL,
		client: &http.Client{Timeout: fetch.DefaultTimeout},
	}
}

func (s *ArbeitnowSource) Name() string {
	return "arbeitnow"
}

type arbeitnowJob struct {
	Slug        string   `json:"slug"`
	CompanyName string   `json:"company_name"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	URL         string   `json:"url"`
	Tags        []string `json:"tags"`
	Location    string   `json:"location"`
	CreatedAt   int64    `json:"created_at"`
}

type arbeitnowResponse struct {
	Data []arbeitnowJob `json:"data"`
}

func (s *ArbeitnowSource) Fetch(ctx context.Context, limit int) ([]types.RawCandidate, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", s.apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("arbeitnow request: %w", err)
	}
	req.Header.Set("User-Agent", fetch.DefaultUserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("arbeitnow fetch: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("arbeitnow fetch: HTTP status %d", resp.StatusCode)
	}

	var body arbeitnowResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("arbeitnow decode: %w", err)
	}

	var out []types.RawCandidate
	for _, job := range body.Data {
		if limit > 0 && len(out) >= limit {
			break
		}
		if job.Title == "" || job.URL == "" {
			continue
		}

		title := strings.TrimSpace(job.Title)
		if job.CompanyName != "" {
			title = fmt.Sprintf("%s - %s", strings.TrimSpace(job.CompanyName), title)
		}

		cand := types.RawCandidate{
			SourceName:      s.Name(),
			Title:           title,
			Link:            job.URL,
			ContentSnippet:  snippetFromHTML(job.Description),
			ContentHTML:     job.Description,
			DefaultCategory: types.CategoryPrivate,
		}
		if job.CreatedAt > 0 {
			cand.PublishedAt = time.Unix(job.CreatedAt, 0).UTC()
		}
		out = append(out, cand)
	}
	return out, nil
}

// snippetFromHTML strips markup from an API description so snippets are
// plain text. Falls back to the raw input when the fragment does not parse.
func snippetFromHTML(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return strings.TrimSpace(html)
	}
	text := strings.TrimSpace(doc.Text())
	if len(text) > 500 {
		text = text[:500]
	}
	return text
}
