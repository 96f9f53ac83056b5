// Package normalize converts raw source candidates into canonical records.
// It runs the extraction heuristics, classifies, verifies the apply link and
// validates the finished record. Every descriptive field ends up non-empty:
// when extraction finds nothing the documented default is used, never a
// null.
package normalize

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/jobupdate/jobwire/internal/heuristics"
	"github.com/jobupdate/jobwire/internal/linkcheck"
	"github.com/jobupdate/jobwire/internal/types"
)

// Normalizer turns RawCandidates into Records. Safe for concurrent use.
type Normalizer struct {
	lists    heuristics.Lists
	domains  linkcheck.Domains
	validate *validator.Validate
	now      func() time.Time
}

// Option configures a Normalizer.
type Option func(*Normalizer)

// WithLists overrides the keyword dictionaries.
func WithLists(li heuristics.Lists) Option {
	return func(n *Normalizer) { n.lists = li }
}

// WithDomains overrides the official/blacklist domain lists.
func WithDomains(d linkcheck.Domains) Option {
	return func(n *Normalizer) { n.domains = d }
}

// WithClock overrides the time source for tests.
func WithClock(now func() time.Time) Option {
	return func(n *Normalizer) { n.now = now }
}

// New builds a Normalizer with production dictionaries.
func New(opts ...Option) *Normalizer {
	n := &Normalizer{
		lists:    heuristics.DefaultLists(),
		domains:  linkcheck.DefaultDomains(),
		validate: validator.New(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// recordChecks is the validated projection of a Record. Failures land in
// Record.ValidationErrors rather than aborting normalization.
type recordChecks struct {
	Title        string `validate:"required,min=10,max=300"`
	SourceURL    string `validate:"required,url"`
	ApplyLink    string `validate:"required,url"`
	Organization string `validate:"required,min=2"`
	PostName     string `validate:"required"`
	Description  string `validate:"required,min=20"`
	Category     string `validate:"required"`
}

// Normalize builds a Record from a candidate plus the article text and the
// apply link the pipeline resolved for it. It never returns nil: a candidate
// that yields a broken record comes back as a DRAFT carrying its validation
// errors.
func (n *Normalizer) Normalize(cand types.RawCandidate, articleText, applyLink string) *types.Record {
	now := n.now().UTC()

	text := strings.TrimSpace(articleText)
	if text == "" {
		text = cand.ContentSnippet
	}
	if text == "" {
		text = cand.Title
	}

	if strings.TrimSpace(applyLink) == "" {
		applyLink = cand.Link
	}

	org := heuristics.NormalizeOrganization(
		heuristics.ExtractOrganization(cand.Title, n.lists), n.lists)
	skills := heuristics.ExtractSkills(cand.Title+" "+text, n.lists)
	category := heuristics.ClassifyCategory(cand.Title, cand.DefaultCategory, n.lists)

	rec := &types.Record{
		SourceURL:     cand.Link,
		ApplyLink:     applyLink,
		Title:         strings.TrimSpace(cand.Title),
		Organization:  org,
		PostName:      heuristics.ExtractPostName(cand.Title, org),
		Category:      category,
		Qualification: heuristics.ExtractQualification(text, n.lists),
		Experience:    heuristics.ExtractExperience(text),
		Salary:        heuristics.ExtractSalary(text),
		Locations:     heuristics.ExtractLocations(text, n.lists),
		Skills:        skills,
		Vacancies:     heuristics.ExtractVacancies(text),
		Description:   heuristics.Summarize(text),
		PostedDate:    cand.PublishedAt,
		IsActive:      true,
		IsRecent:      true,
	}
	rec.Slug = Slugify(rec.Organization, rec.Title)

	if category == types.CategoryIT {
		rec.ITRole = heuristics.ClassifyITRole(cand.Title, skills)
	}
	if rec.PostedDate.IsZero() {
		rec.PostedDate = now
	}

	rec.LastDate = heuristics.ExtractDate(text, "last date")
	if category == types.CategoryResult || category == types.CategoryAdmitCard {
		rec.ExamDate = heuristics.ExtractDate(text, "exam date")
	}
	if rec.LastDate != nil {
		rec.ExpiresAt = rec.LastDate
	}

	rec.IsOfficial = linkcheck.IsOfficial(rec.ApplyLink, n.domains) ||
		linkcheck.IsOfficial(rec.SourceURL, n.domains)

	rec.ValidationErrors = n.check(rec, cand.Title+" "+text)
	switch {
	case len(rec.ValidationErrors) > 0:
		rec.Status = types.StatusDraft
	case rec.IsOfficial:
		rec.Status = types.StatusPublished
	default:
		rec.Status = types.StatusDraft
	}

	return rec
}

// check validates the finished record. fullText is the title plus whatever
// body text was available, used for checks that depend on wording rather
// than on a single field.
func (n *Normalizer) check(rec *types.Record, fullText string) []string {
	var out []string

	err := n.validate.Struct(recordChecks{
		Title:        rec.Title,
		SourceURL:    rec.SourceURL,
		ApplyLink:    rec.ApplyLink,
		Organization: rec.Organization,
		PostName:     rec.PostName,
		Description:  rec.Description,
		Category:     string(rec.Category),
	})
	if err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return []string{err.Error()}
		}
		for _, fe := range verrs {
			out = append(out, fmt.Sprintf("%s: failed %s check", fe.Field(), fe.Tag()))
		}
	}

	// A Result record whose text never says the result is declared or out
	// is most likely a preview article; it must not publish.
	if rec.Category == types.CategoryResult &&
		!heuristics.ContainsWord(fullText, "declared") && !heuristics.ContainsWord(fullText, "out") {
		out = append(out, "Category: result status unclear")
	}

	return out
}
