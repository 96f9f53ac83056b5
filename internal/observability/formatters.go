// Package observability provides formatted output utilities for verbose CLI
// mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jobupdate/jobwire/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintFetchSummary outputs a human-readable summary of one ingestion cycle.
func (p *Printer) PrintFetchSummary(summary *types.FetchSummary) {
	if summary == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Fetched:    %d\n", summary.Fetched))
	sb.WriteString(fmt.Sprintf("Added:      %d\n", summary.Added))
	sb.WriteString(fmt.Sprintf("Duplicates: %d\n", summary.Duplicates))
	sb.WriteString(fmt.Sprintf("Skipped:    %d\n", summary.Skipped))
	sb.WriteString(fmt.Sprintf("Errors:     %d\n", summary.Errors))
	sb.WriteString(fmt.Sprintf("Duration:   %v\n", summary.Duration))

	if len(summary.Sources) > 0 {
		sb.WriteString("\nSources:\n")
		for name, result := range summary.Sources {
			status := "ok"
			if !result.Success {
				status = "failed"
			}
			sb.WriteString(fmt.Sprintf("  • %s: %d (%s)\n", name, result.Count, status))
		}
	}

	p.printBox("Fetch Cycle", strings.TrimRight(sb.String(), "\n"))
}

// PrintPostSummary outputs a human-readable summary of one posting cycle.
func (p *Printer) PrintPostSummary(summary *types.PostSummary) {
	if summary == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Jobs:        %d\n", summary.JobsPosted))
	sb.WriteString(fmt.Sprintf("Results:     %d\n", summary.ResultsPosted))
	sb.WriteString(fmt.Sprintf("Admit Cards: %d\n", summary.AdmitCardsPosted))
	sb.WriteString(fmt.Sprintf("Reminders:   %d\n", summary.Reminded))
	sb.WriteString(fmt.Sprintf("Errors:      %d\n", summary.Errors))
	sb.WriteString(fmt.Sprintf("Duration:    %v\n", summary.Duration))

	p.printBox("Posting Cycle", strings.TrimRight(sb.String(), "\n"))
}

// PrintRecord outputs a compact view of one normalized record.
func (p *Printer) PrintRecord(rec *types.Record) {
	if rec == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Org:      %s\n", rec.Organization))
	sb.WriteString(fmt.Sprintf("Post:     %s\n", rec.PostName))
	sb.WriteString(fmt.Sprintf("Category: %s\n", rec.Category))
	sb.WriteString(fmt.Sprintf("Status:   %s (official=%t)\n", rec.Status, rec.IsOfficial))

	if len(rec.Skills) > 0 {
		count := len(rec.Skills)
		if count > maxItemsToShow {
			count = maxItemsToShow
		}
		sb.WriteString(fmt.Sprintf("Skills:   %s\n", strings.Join(rec.Skills[:count], ", ")))
	}
	if len(rec.ValidationErrors) > 0 {
		sb.WriteString("Validation:\n")
		for _, verr := range rec.ValidationErrors {
			sb.WriteString(fmt.Sprintf("  • %s\n", verr))
		}
	}

	p.printBox(rec.Title, strings.TrimRight(sb.String(), "\n"))
}
