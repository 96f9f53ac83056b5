package sources

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobupdate/jobwire/internal/types"
)

const remoteOKFixture = `[
	{"id": 0, "legal": "API terms of service"},
	{
		"id": 101,
		"company": "Acme",
		"position": "Backend Engineer",
		"description": "<p>Build services in <b>Go</b>.</p>",
		"url": "https://remoteok.com/remote-jobs/101",
		"date": "2026-02-20T10:00:00+00:00",
		"location": "Remote",
		"tags": ["golang", "backend"]
	},
	{
		"id": 102,
		"company": "",
		"position": "Data Engineer",
		"description": "ETL pipelines.",
		"url": "https://remoteok.com/remote-jobs/102",
		"date": "not-a-date"
	}
]`

func TestRemoteOKSource_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(remoteOKFixture))
	}))
	defer srv.Close()

	s := NewRemoteOKSource(srv.URL)
	got, err := s.Fetch(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "Acme - Backend Engineer", got[0].Title)
	assert.Equal(t, "https://remoteok.com/remote-jobs/101", got[0].Link)
	assert.Equal(t, "Build services in Go.", got[0].ContentSnippet)
	assert.Equal(t, types.CategoryIT, got[0].DefaultCategory)
	assert.Equal(t, 2026, got[0].PublishedAt.Year())

	// Missing company leaves the bare position; a bad date leaves the zero time.
	assert.Equal(t, "Data Engineer", got[1].Title)
	assert.True(t, got[1].PublishedAt.IsZero())
}

func TestRemoteOKSource_FetchLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(remoteOKFixture))
	}))
	defer srv.Close()

	got, err := NewRemoteOKSource(srv.URL).Fetch(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Acme - Backend Engineer", got[0].Title)
}

func TestRemoteOKSource_FetchHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := NewRemoteOKSource(srv.URL).Fetch(context.Background(), 0)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}
