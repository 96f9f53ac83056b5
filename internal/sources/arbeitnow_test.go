package sources

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobupdate/jobwire/internal/types"
)

const arbeitnowFixture = `{
	"data": [
		{
			"slug": "golang-developer-berlin",
			"company_name": "Beispiel GmbH",
			"title": "Golang Developer",
			"description": "<p>Microservices in Go.</p>",
			"url": "https://www.arbeitnow.com/jobs/golang-developer-berlin",
			"tags": ["engineering"],
			"location": "Berlin",
			"created_at": 1774000000
		},
		{
			"slug": "no-url",
			"company_name": "Ghost",
			"title": "Phantom Role",
			"description": "",
			"url": "",
			"created_at": 0
		}
	]
}`

func TestArbeitnowSource_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(arbeitnowFixture))
	}))
	defer srv.Close()

	got, err := NewArbeitnowSource(srv.URL).Fetch(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, got, 1)

	assert.Equal(t, "Beispiel GmbH - Golang Developer", got[0].Title)
	assert.Equal(t, "Microservices in Go.", got[0].ContentSnippet)
	assert.Equal(t, types.CategoryPrivate, got[0].DefaultCategory)
	assert.Equal(t, time.Unix(1774000000, 0).UTC(), got[0].PublishedAt)
}

func TestArbeitnowSource_FetchDecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()

	_, err := NewArbeitnowSource(srv.URL).Fetch(context.Background(), 0)
	assert.Error(t, err)
}

func TestSnippetFromHTML_Truncates(t *testing.T) {
	got := snippetFromHTML("<p>" + strings.Repeat("a", 600) + "</p>")
	assert.Len(t, got, 500)
}
