// Package types provides type definitions for structured data used throughout the jobwire pipeline.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "time"

// Category classifies a record by the kind of posting it announces.
type Category string

// Categories recognized by the classifier. Govt is the conservative default
// for feed sources; IT sub-roles are carried separately in Record.ITRole.
const (
	CategoryGovt      Category = "Govt"
	CategoryPrivate   Category = "Private"
	CategoryIT        Category = "IT"
	CategoryBanking   Category = "Banking"
	CategoryRailway   Category = "Railway"
	CategoryPolice    Category = "Police"
	CategoryDefence   Category = "Defence"
	CategoryTeaching  Category = "Teaching"
	CategoryPSU       Category = "PSU"
	CategoryResult    Category = "Result"
	CategoryAdmitCard Category = "Admit Card"
)

// Status is the publication lifecycle state of a record.
type Status string

// Record statuses. A record with validation errors or an unverified apply
// link is never PUBLISHED automatically.
const (
	StatusPublished Status = "PUBLISHED"
	StatusDraft     Status = "DRAFT"
	StatusPending   Status = "PENDING"
	StatusExpired   Status = "EXPIRED"
)

// RawCandidate is the ephemeral output of a source adapter, consumed
// immediately by the normalizer and never persisted directly.
type RawCandidate struct {
	SourceName      string
	Title           string
	Link            string
	ContentSnippet  string
	ContentHTML     string
	PublishedAt     time.Time
	DefaultCategory Category
}

// Experience is a parsed experience requirement.
type Experience struct {
	Min   int    `json:"min"`
	Max   int    `json:"max"`
	Label string `json:"label"`
}

// Record is the canonical job/update entity produced by the normalizer.
type Record struct {
	// Identity
	Slug      string `json:"slug"`
	SourceURL string `json:"source_url"`
	ApplyLink string `json:"apply_link"`

	// Descriptive
	Title         string     `json:"title"`
	Organization  string     `json:"organization"`
	PostName      string     `json:"post_name"`
	Category      Category   `json:"category"`
	ITRole        string     `json:"it_role,omitempty"`
	Qualification string     `json:"qualification"`
	Experience    Experience `json:"experience"`
	Salary        string     `json:"salary"`
	Locations     []string   `json:"locations"`
	Skills        []string   `json:"skills"`
	Vacancies     string     `json:"vacancies"`
	Description   string     `json:"description"`

	// Dates
	LastDate   *time.Time `json:"last_date,omitempty"`
	ExamDate   *time.Time `json:"exam_date,omitempty"`
	PostedDate time.Time  `json:"posted_date"`
	ExpiresAt  *time.Time `json:"expires_at,omitempty"`

	// Lifecycle
	Status           Status   `json:"status"`
	IsOfficial       bool     `json:"is_official"`
	IsActive         bool     `json:"is_active"`
	IsRecent         bool     `json:"is_recent"`
	ValidationErrors []string `json:"validation_errors,omitempty"`

	// Engagement / ops
	Views             int        `json:"views"`
	Clicks            int        `json:"clicks"`
	TelegramPosted    bool       `json:"telegram_posted"`
	TelegramMessageID int        `json:"telegram_message_id,omitempty"`
	LastRepostedAt    *time.Time `json:"last_reposted_at,omitempty"`
}

// FirstLocation returns the first location or an empty string. It is the
// location component of the fuzzy duplicate key.
func (r *Record) FirstLocation() string {
	if len(r.Locations) == 0 {
		return ""
	}
	return r.Locations[0]
}

// Expired reports whether the record's expiry has passed at the given time.
func (r *Record) Expired(now time.Time) bool {
	if r.ExpiresAt == nil {
		return false
	}
	return r.ExpiresAt.Before(now)
}
