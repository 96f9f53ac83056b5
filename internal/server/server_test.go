package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobupdate/jobwire/internal/store"
	"github.com/jobupdate/jobwire/internal/types"
)

type fakeRunner struct {
	runErr       error
	housekeepErr error
	dedupeGroups bool
	fullCalls    int
	postCalls    int
	runs         []store.Run
}

func (f *fakeRunner) RunFull(context.Context) (*types.RunSummary, error) {
	f.fullCalls++
	if f.runErr != nil {
		return nil, f.runErr
	}
	return &types.RunSummary{
		Fetch: &types.FetchSummary{Added: 2, Fetched: 5},
	}, nil
}

func (f *fakeRunner) RunPost(context.Context) (*types.RunSummary, error) {
	f.postCalls++
	if f.runErr != nil {
		return nil, f.runErr
	}
	return &types.RunSummary{
		Telegram: &types.PostSummary{JobsPosted: 4},
	}, nil
}

func (f *fakeRunner) RunHousekeep(_ context.Context, dedupeGroups bool) (*types.HousekeepSummary, error) {
	f.dedupeGroups = dedupeGroups
	if f.housekeepErr != nil {
		return nil, f.housekeepErr
	}
	return &types.HousekeepSummary{Expired: 3}, nil
}

func (f *fakeRunner) RecentRuns(context.Context, int) ([]store.Run, error) {
	return f.runs, nil
}

func newTestServer(secret string, runner Runner) *httptest.Server {
	s := New(Config{Port: 0, Secret: secret}, runner)
	return httptest.NewServer(s.Handler())
}

func TestHealth_NoSecretRequired(t *testing.T) {
	srv := newTestServer("s3cret", &fakeRunner{})
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestCronRun_ValidSecret(t *testing.T) {
	srv := newTestServer("s3cret", &fakeRunner{})
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/cron/run?secret=s3cret")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var summary types.RunSummary
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&summary))
	require.NotNil(t, summary.Fetch)
	assert.Equal(t, 2, summary.Fetch.Added)
}

func TestCronRun_BearerToken(t *testing.T) {
	srv := newTestServer("s3cret", &fakeRunner{})
	defer srv.Close()

	req, _ := http.NewRequest("POST", srv.URL+"/cron/run", nil)
	req.Header.Set("Authorization", "Bearer s3cret")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestCronRun_WrongSecret(t *testing.T) {
	srv := newTestServer("s3cret", &fakeRunner{})
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/cron/run?secret=wrong")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestCronRun_UnconfiguredSecretLocksEndpoint(t *testing.T) {
	srv := newTestServer("", &fakeRunner{})
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/cron/run?secret=")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestCronRun_PostOnlySkipsFetch(t *testing.T) {
	runner := &fakeRunner{}
	srv := newTestServer("s3cret", runner)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/cron/run?secret=s3cret&postOnly=true")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, 0, runner.fullCalls)
	assert.Equal(t, 1, runner.postCalls)

	var summary types.RunSummary
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&summary))
	assert.Nil(t, summary.Fetch)
	require.NotNil(t, summary.Telegram)
	assert.Equal(t, 4, summary.Telegram.JobsPosted)
}

func TestCronRun_TypeParam(t *testing.T) {
	tests := []struct {
		name      string
		kind      string
		wantFetch bool
	}{
		{"default runs fetch", "", true},
		{"all runs fetch", "all", true},
		{"hourly runs fetch", "hourly", true},
		{"unknown skips fetch", "daily", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := &fakeRunner{}
			srv := newTestServer("s3cret", runner)
			defer srv.Close()

			resp, err := http.Get(srv.URL + "/cron/run?secret=s3cret&type=" + tt.kind)
			require.NoError(t, err)
			defer func() { _ = resp.Body.Close() }()
			require.Equal(t, http.StatusOK, resp.StatusCode)

			if tt.wantFetch {
				assert.Equal(t, 1, runner.fullCalls)
				assert.Equal(t, 0, runner.postCalls)
			} else {
				assert.Equal(t, 0, runner.fullCalls)
				assert.Equal(t, 1, runner.postCalls)
			}
		})
	}
}

func TestCronRun_RunnerErrorIs500(t *testing.T) {
	srv := newTestServer("s3cret", &fakeRunner{runErr: errors.New("db unreachable")})
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/cron/run?secret=s3cret")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestCronCleanup_DedupeFlag(t *testing.T) {
	runner := &fakeRunner{}
	srv := newTestServer("s3cret", runner)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/cron/cleanup?secret=s3cret&dedupe=1")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, runner.dedupeGroups)
}

func TestRuns_RequiresSecret(t *testing.T) {
	srv := newTestServer("s3cret", &fakeRunner{})
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/runs")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
