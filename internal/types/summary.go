package types

import "time"

// SourceResult is the per-adapter outcome of a fetch cycle. A failing
// adapter reports Success=false with its error message; it never aborts
// sibling adapters.
type SourceResult struct {
	Count   int    `json:"count"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// FetchSummary aggregates one orchestrator run across the selected adapters.
type FetchSummary struct {
	Sources    map[string]SourceResult `json:"sources"`
	Fetched    int                     `json:"fetched"`
	Added      int                     `json:"added"`
	Duplicates int                     `json:"duplicates"`
	Skipped    int                     `json:"skipped"`
	Errors     int                     `json:"errors"`
	Duration   time.Duration           `json:"duration"`
}

// PostSummary aggregates one notifier cycle.
type PostSummary struct {
	JobsPosted       int           `json:"jobsPosted"`
	ResultsPosted    int           `json:"resultsPosted"`
	AdmitCardsPosted int           `json:"admitCardsPosted"`
	Reminded         int           `json:"reminded"`
	Errors           int           `json:"errors"`
	Duration         time.Duration `json:"duration"`
}

// HousekeepSummary aggregates one housekeeping pass.
type HousekeepSummary struct {
	Expired      int           `json:"expired"`
	Archived     int           `json:"archived"`
	RecentDecay  int           `json:"recentDecay"`
	Deduplicated int           `json:"deduplicated"`
	Duration     time.Duration `json:"duration"`
}

// RunSummary is the combined result of a full automation run, returned by
// the trigger endpoint and stored in the run log.
type RunSummary struct {
	Fetch     *FetchSummary     `json:"fetch,omitempty"`
	Telegram  *PostSummary      `json:"telegram,omitempty"`
	Housekeep *HousekeepSummary `json:"housekeep,omitempty"`
}
