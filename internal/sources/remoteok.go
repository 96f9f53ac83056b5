package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/jobupdate/jobwire/internal/fetch"
	"github.com/jobupdate/jobwire/internal/types"
)

const remoteOKDefaultURL = "https://remoteok.com/api"

// RemoteOKSource pulls remote IT openings from the RemoteOK JSON API.
type RemoteOKSource struct {
	apiURL string
	client *http.Client
}

// NewRemoteOKSource builds the adapter. apiURL overrides the production
// endpoint; pass "" for the default.
func NewRemoteOKSource(apiURL string) *RemoteOKSource {
	if apiURL == "" {
		apiURL = remoteOKDefaultURL
	}
	return &RemoteOKSource{
		apiURL: apiURL,
		client: &http.Client{Timeout: fetch.DefaultTimeout},
	}
}

func (s *RemoteOKSource) Name() string {
	return "remoteok"
}

type remoteOKJob struct {
	ID          json.Number `json:"id"`
	Company     string      `json:"company"`
	Position    string      `json:"position"`
	Description string      `json:"description"`
	URL         string      `json:"url"`
	Date        string      `json:"date"`
	Location    string      `json:"location"`
	Tags        []string    `json:"tags"`
}

// Fetch decodes the API response. The first array element is a legal notice
// without a position and is dropped along with any other incomplete entry.
func (s *RemoteOKSource) Fetch(ctx context.Context, limit int) ([]types.RawCandidate, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", s.apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("remoteok request: %w", err)
	}
	req.Header.Set("User-Agent", fetch.DefaultUserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("remoteok fetch: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("remoteok fetch: HTTP status %d", resp.StatusCode)
	}

	var jobs []remoteOKJob
	if err := json.NewDecoder(resp.Body).Decode(&jobs); err != nil {
		return nil, fmt.Errorf("remoteok decode: %w", err)
	}

	var out []types.RawCandidate
	for _, job := range jobs {
		if limit > 0 && len(out) >= limit {
			break
		}
		if job.Position == "" || job.URL == "" {
			continue
		}

		title := strings.TrimSpace(job.Position)
		if job.Company != "" {
			title = fmt.Sprintf("%s - %s", strings.TrimSpace(job.Company), title)
		}

		cand := types.RawCandidate{
			SourceName:      s.Name(),
			Title:           title,
			Link:            job.URL,
			ContentSnippet:  snippetFromHTML(job.Description),
			ContentHTML:     job.Description,
			DefaultCategory: types.CategoryIT,
		}
		if t, err := time.Parse(time.RFC3339, job.Date); err == nil {
			cand.PublishedAt = t
		}
		out = append(out, cand)
	}
	return out, nil
}
