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

const rssFixture = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0" xmlns:content="http://purl.org/rss/1.0/modules/content/">
<channel>
	<title>Job Updates</title>
	<item>
		<title>SBI PO Recruitment 2026 Notification</title>
		<link>https://example.com/sbi-po-2026</link>
		<description>Applications invited for probationary officers.</description>
		<content:encoded><![CDATA[<p>Full notification body with <a href="https://sbi.co.in/apply">apply link</a>.</p>]]></content:encoded>
		<pubDate>Fri, 20 Feb 2026 08:00:00 +0000</pubDate>
	</item>
	<item>
		<title>Item without link</title>
		<description>Should be skipped.</description>
	</item>
	<item>
		<title>RRB NTPC Admit Card Released</title>
		<link>https://example.com/rrb-admit-card</link>
		<description>Admit cards are out.</description>
	</item>
</channel>
</rss>`

func TestRSSSource_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(rssFixture))
	}))
	defer srv.Close()

	s := NewRSSSource("govt-feed", srv.URL, types.CategoryGovt)
	got, err := s.Fetch(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "govt-feed", got[0].SourceName)
	assert.Equal(t, "SBI PO Recruitment 2026 Notification", got[0].Title)
	assert.Equal(t, "https://example.com/sbi-po-2026", got[0].Link)
	assert.Equal(t, types.CategoryGovt, got[0].DefaultCategory)
	assert.Contains(t, got[0].ContentHTML, "Full notification body")
	assert.Equal(t, 2026, got[0].PublishedAt.Year())

	// Second surviving item has no content block, so the description is used.
	assert.Equal(t, "Admit cards are out.", got[1].ContentHTML)
	assert.True(t, got[1].PublishedAt.IsZero())
}

func TestRSSSource_FetchLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(rssFixture))
	}))
	defer srv.Close()

	got, err := NewRSSSource("govt-feed", srv.URL, types.CategoryGovt).Fetch(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestRSSSource_FetchBadFeed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := NewRSSSource("govt-feed", srv.URL, types.CategoryGovt).Fetch(context.Background(), 0)
	assert.Error(t, err)
}
