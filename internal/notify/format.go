package notify

import (
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/jobupdate/jobwire/internal/types"
)

// Per-category headline emoji and label. Default covers categories without
// their own template.
var categoryHeaders = map[types.Category]string{
	types.CategoryIT:        "\U0001F4BB <b>IT Job Alert</b>",
	types.CategoryBanking:   "\U0001F3E6 <b>Banking Job Alert</b>",
	types.CategoryRailway:   "\U0001F682 <b>Railway Job Alert</b>",
	types.CategoryPolice:    "\U0001F46E <b>Police Job Alert</b>",
	types.CategoryDefence:   "\U0001F396 <b>Defence Job Alert</b>",
	types.CategoryPSU:       "\U0001F3ED <b>PSU Job Alert</b>",
	types.CategoryTeaching:  "\U0001F9D1‍\U0001F3EB <b>Teaching Job Alert</b>",
	types.CategoryResult:    "\U0001F4CA <b>Result Declared</b>",
	types.CategoryAdmitCard: "\U0001F3AB <b>Admit Card Released</b>",
}

const defaultHeader = "\U0001F4E2 <b>New Job Alert</b>"

const dateLayout = "02 Jan 2006"

// FormatMessage renders one record as a Telegram HTML message. Dynamic
// fields are escaped; the apply link is the only anchor.
func FormatMessage(rec *types.Record) string {
	header, ok := categoryHeaders[rec.Category]
	if !ok {
		header = defaultHeader
	}

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "<b>%s</b>\n\n", html.EscapeString(rec.Title))
	fmt.Fprintf(&b, "\U0001F3E2 Organization: %s\n", html.EscapeString(rec.Organization))
	fmt.Fprintf(&b, "\U0001F4CB Post: %s\n", html.EscapeString(rec.PostName))

	switch rec.Category {
	case types.CategoryResult, types.CategoryAdmitCard:
		if rec.ExamDate != nil {
			fmt.Fprintf(&b, "\U0001F4C5 Exam Date: %s\n", rec.ExamDate.Format(dateLayout))
		}
	case types.CategoryIT:
		if rec.ITRole != "" {
			fmt.Fprintf(&b, "\U0001F527 Role: %s\n", html.EscapeString(rec.ITRole))
		}
		fmt.Fprintf(&b, "\U0001F4BC Experience: %s\n", html.EscapeString(rec.Experience.Label))
		fmt.Fprintf(&b, "\U0001F4B0 Salary: %s\n", html.EscapeString(rec.Salary))
	default:
		fmt.Fprintf(&b, "\U0001F465 Vacancies: %s\n", html.EscapeString(rec.Vacancies))
		fmt.Fprintf(&b, "\U0001F393 Qualification: %s\n", html.EscapeString(rec.Qualification))
	}

	fmt.Fprintf(&b, "\U0001F4CD Location: %s\n", html.EscapeString(strings.Join(rec.Locations, ", ")))
	if rec.LastDate != nil {
		fmt.Fprintf(&b, "⏳ Last Date: %s\n", rec.LastDate.Format(dateLayout))
	}

	fmt.Fprintf(&b, "\n\U0001F517 <a href=\"%s\">Apply / Official Notification</a>", html.EscapeString(rec.ApplyLink))
	return b.String()
}

// FormatReminder renders the closing-soon repost for an already announced
// record.
func FormatReminder(rec *types.Record, now time.Time) string {
	var b strings.Builder
	b.WriteString("⏰ <b>Closing Soon!</b>\n\n")
	fmt.Fprintf(&b, "<b>%s</b>\n\n", html.EscapeString(rec.Title))
	fmt.Fprintf(&b, "\U0001F3E2 %s\n", html.EscapeString(rec.Organization))
	if rec.LastDate != nil {
		days := int(rec.LastDate.Sub(now).Hours() / 24)
		switch {
		case days <= 0:
			b.WriteString("⏳ Last Date: <b>Today</b>\n")
		case days == 1:
			b.WriteString("⏳ Last Date: <b>Tomorrow</b>\n")
		default:
			fmt.Fprintf(&b, "⏳ Last Date: <b>%s</b> (%d days left)\n", rec.LastDate.Format(dateLayout), days)
		}
	}
	fmt.Fprintf(&b, "\n\U0001F517 <a href=\"%s\">Apply Now</a>", html.EscapeString(rec.ApplyLink))
	return b.String()
}
