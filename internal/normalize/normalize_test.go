package normalize

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobupdate/jobwire/internal/types"
)

const sbiArticle = `State Bank of India has released the SBI PO Recruitment 2026 Notification
for probationary officers across the country. A Total 1056 Posts are on offer and
graduates from any recognised university are eligible to apply online. The last date
to apply is 15 March 2026. Candidates posted in Mumbai will draw a salary of
Rs. 44,900 per month.`

func sbiCandidate() types.RawCandidate {
	return types.RawCandidate{
		SourceName:      "govt-feed",
		Title:           "SBI PO Recruitment 2026 Notification",
		Link:            "https://example.com/sbi-po-2026",
		ContentSnippet:  "SBI PO vacancies announced",
		PublishedAt:     time.Date(2026, time.February, 20, 8, 0, 0, 0, time.UTC),
		DefaultCategory: types.CategoryGovt,
	}
}

func TestNormalize_FullRecordFromArticle(t *testing.T) {
	n := New()

	rec := n.Normalize(sbiCandidate(), sbiArticle, "https://sbi.co.in/careers/po-2026")
	require.NotNil(t, rec)

	assert.Equal(t, "SBI PO", rec.Organization)
	assert.Equal(t, "1056", rec.Vacancies)
	assert.Equal(t, types.CategoryBanking, rec.Category)
	assert.Equal(t, []string{"Mumbai"}, rec.Locations)
	assert.Contains(t, rec.Salary, "44,900")
	require.NotNil(t, rec.LastDate)
	assert.Equal(t, time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC), *rec.LastDate)
	assert.Equal(t, rec.LastDate, rec.ExpiresAt)
	assert.Equal(t, "sbi-po-sbi-po-recruitment-2026-notification", rec.Slug)
	assert.True(t, rec.IsActive)
	assert.True(t, rec.IsRecent)
}

func TestNormalize_DefaultsNeverEmpty(t *testing.T) {
	n := New()

	cand := types.RawCandidate{
		SourceName:      "feed",
		Title:           "Openings announced at small firm",
		Link:            "https://example.com/openings-announced",
		ContentSnippet:  "Several openings were announced this week at the firm.",
		DefaultCategory: types.CategoryPrivate,
	}
	rec := n.Normalize(cand, "", "")

	assert.NotEmpty(t, rec.Organization)
	assert.NotEmpty(t, rec.PostName)
	assert.NotEmpty(t, rec.Vacancies)
	assert.NotEmpty(t, rec.Qualification)
	assert.NotEmpty(t, rec.Salary)
	assert.NotEmpty(t, rec.Locations)
	assert.NotEmpty(t, rec.Experience.Label)
	assert.NotEmpty(t, rec.Description)
	assert.False(t, rec.PostedDate.IsZero())
	assert.Nil(t, rec.LastDate)
}

func TestNormalize_PublishedOnlyWhenOfficialAndValid(t *testing.T) {
	n := New()

	rec := n.Normalize(sbiCandidate(), sbiArticle, "https://ssc.nic.in/apply")
	assert.True(t, rec.IsOfficial)
	assert.Empty(t, rec.ValidationErrors)
	assert.Equal(t, types.StatusPublished, rec.Status)
}

func TestNormalize_UnofficialLinkStaysDraft(t *testing.T) {
	n := New()

	rec := n.Normalize(sbiCandidate(), sbiArticle, "https://someblog.in/apply-here")
	assert.False(t, rec.IsOfficial)
	assert.Empty(t, rec.ValidationErrors)
	assert.Equal(t, types.StatusDraft, rec.Status)
}

func TestNormalize_OfficialFromSourceURL(t *testing.T) {
	n := New()

	cand := sbiCandidate()
	cand.Link = "https://sbi.co.in/careers/po-2026"
	rec := n.Normalize(cand, sbiArticle, "https://someblog.in/apply-here")
	assert.True(t, rec.IsOfficial)
}

func TestNormalize_ValidationFailuresRecorded(t *testing.T) {
	n := New()

	cand := types.RawCandidate{
		SourceName: "feed",
		Title:      "Job",
		Link:       "not-a-url",
	}
	rec := n.Normalize(cand, "", "")

	require.NotNil(t, rec)
	assert.NotEmpty(t, rec.ValidationErrors)
	assert.Equal(t, types.StatusDraft, rec.Status)
}

func TestNormalize_UndeclaredResultStaysDraft(t *testing.T) {
	n := New()

	cand := types.RawCandidate{
		SourceName:      "results-feed",
		Title:           "Civil Services Prelims Marks Available For Candidates",
		Link:            "https://upsc.gov.in/prelims-marks",
		ContentSnippet:  "Prelims marks for all candidates are now available on the commission website.",
		DefaultCategory: types.CategoryResult,
	}
	rec := n.Normalize(cand, "", "")

	require.Equal(t, types.CategoryResult, rec.Category)
	assert.True(t, rec.IsOfficial)
	assert.NotEmpty(t, rec.ValidationErrors)
	assert.Equal(t, types.StatusDraft, rec.Status)
}

func TestNormalize_DeclaredResultPublishes(t *testing.T) {
	n := New()

	cand := types.RawCandidate{
		SourceName:      "results-feed",
		Title:           "Civil Services Prelims Result Declared For All Candidates",
		Link:            "https://upsc.gov.in/prelims-result",
		ContentSnippet:  "The commission has declared the prelims result on its official website.",
		DefaultCategory: types.CategoryResult,
	}
	rec := n.Normalize(cand, "", "")

	require.Equal(t, types.CategoryResult, rec.Category)
	assert.Empty(t, rec.ValidationErrors)
	assert.Equal(t, types.StatusPublished, rec.Status)
}

func TestNormalize_ShortOrganizationIsInvalid(t *testing.T) {
	n := New()

	cand := types.RawCandidate{
		SourceName:      "feed",
		Title:           "X - hiring for multiple analyst positions",
		Link:            "https://example.com/analyst-openings",
		ContentSnippet:  "Multiple analyst positions are open at the firm this quarter.",
		DefaultCategory: types.CategoryPrivate,
	}
	rec := n.Normalize(cand, "", "")

	assert.NotEmpty(t, rec.ValidationErrors)
	assert.Equal(t, types.StatusDraft, rec.Status)
}

func TestNormalize_ITRoleOnlyForITCategory(t *testing.T) {
	n := New()

	it := types.RawCandidate{
		SourceName:      "remoteok",
		Title:           "Acme - Senior Backend Developer",
		Link:            "https://example.com/backend-role",
		ContentSnippet:  "We are hiring a backend developer with Go and Postgres experience to join our platform team.",
		DefaultCategory: types.CategoryIT,
	}
	rec := n.Normalize(it, "", "")
	assert.Equal(t, types.CategoryIT, rec.Category)
	assert.Equal(t, "Backend Developer", rec.ITRole)

	govt := n.Normalize(sbiCandidate(), sbiArticle, "")
	assert.Empty(t, govt.ITRole)
}

func TestNormalize_TextFallbackChain(t *testing.T) {
	n := New()

	cand := types.RawCandidate{
		SourceName:      "feed",
		Title:           "Clerk recruitment drive announced today",
		Link:            "https://example.com/clerk-drive",
		DefaultCategory: types.CategoryGovt,
	}
	rec := n.Normalize(cand, "", "")

	// With no article text or snippet the title itself feeds extraction.
	assert.NotEmpty(t, rec.Description)
}
