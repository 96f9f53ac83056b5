package notify

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jobupdate/jobwire/internal/types"
)

func bankingRecord() *types.Record {
	last := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)
	return &types.Record{
		Slug:          "sbi-po-recruitment-2026",
		Title:         "SBI PO Recruitment 2026 Notification",
		Organization:  "SBI",
		PostName:      "Probationary Officer",
		Category:      types.CategoryBanking,
		Vacancies:     "1056",
		Qualification: "Graduate",
		Locations:     []string{"All India"},
		LastDate:      &last,
		ApplyLink:     "https://sbi.co.in/careers/po-2026",
	}
}

func TestFormatMessage_BankingTemplate(t *testing.T) {
	got := FormatMessage(bankingRecord())

	assert.True(t, strings.HasPrefix(got, "\U0001F3E6 <b>Banking Job Alert</b>"))
	assert.Contains(t, got, "<b>SBI PO Recruitment 2026 Notification</b>")
	assert.Contains(t, got, "Vacancies: 1056")
	assert.Contains(t, got, "Qualification: Graduate")
	assert.Contains(t, got, "Last Date: 15 Mar 2026")
	assert.Contains(t, got, `<a href="https://sbi.co.in/careers/po-2026">`)
}

func TestFormatMessage_ITTemplate(t *testing.T) {
	rec := &types.Record{
		Title:        "Acme - Senior Backend Developer",
		Organization: "Acme",
		PostName:     "Senior Backend Developer",
		Category:     types.CategoryIT,
		ITRole:       "Backend Developer",
		Experience:   types.Experience{Min: 3, Max: 5, Label: "3-5 years"},
		Salary:       "Best in Industry",
		Locations:    []string{"Bangalore", "Remote"},
		ApplyLink:    "https://jobs.lever.co/acme/123",
	}

	got := FormatMessage(rec)
	assert.Contains(t, got, "IT Job Alert")
	assert.Contains(t, got, "Role: Backend Developer")
	assert.Contains(t, got, "Experience: 3-5 years")
	assert.Contains(t, got, "Location: Bangalore, Remote")
	assert.NotContains(t, got, "Vacancies")
}

func TestFormatMessage_ResultShowsExamDate(t *testing.T) {
	exam := time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC)
	rec := &types.Record{
		Title:        "SSC CGL Result Declared",
		Organization: "SSC",
		PostName:     "Various Posts",
		Category:     types.CategoryResult,
		ExamDate:     &exam,
		Locations:    []string{"All India"},
		ApplyLink:    "https://ssc.nic.in/results",
	}

	got := FormatMessage(rec)
	assert.Contains(t, got, "Result Declared")
	assert.Contains(t, got, "Exam Date: 10 Jan 2026")
	assert.NotContains(t, got, "Qualification")
}

func TestFormatMessage_EscapesHTML(t *testing.T) {
	rec := bankingRecord()
	rec.Title = "Clerk <script>alert(1)</script> & more"

	got := FormatMessage(rec)
	assert.NotContains(t, got, "<script>")
	assert.Contains(t, got, "&lt;script&gt;")
	assert.Contains(t, got, "&amp; more")
}

func TestFormatMessage_UnknownCategoryUsesDefaultHeader(t *testing.T) {
	rec := bankingRecord()
	rec.Category = types.CategoryGovt

	got := FormatMessage(rec)
	assert.True(t, strings.HasPrefix(got, defaultHeader))
}

func TestFormatReminder_DayBuckets(t *testing.T) {
	now := time.Date(2026, time.March, 14, 10, 0, 0, 0, time.UTC)
	rec := bankingRecord()

	today := *rec
	d := now.Add(2 * time.Hour)
	today.LastDate = &d
	assert.Contains(t, FormatReminder(&today, now), "<b>Today</b>")

	tomorrow := *rec
	d2 := now.Add(36 * time.Hour)
	tomorrow.LastDate = &d2
	assert.Contains(t, FormatReminder(&tomorrow, now), "<b>Tomorrow</b>")

	later := *rec
	d3 := now.Add(5 * 24 * time.Hour)
	later.LastDate = &d3
	assert.Contains(t, FormatReminder(&later, now), "(5 days left)")
}
