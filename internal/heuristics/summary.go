package heuristics

import (
	"regexp"
	"sort"
	"strings"
)

var sentenceSplitRe = regexp.MustCompile(`[.!?\n]+`)

// Terms that mark a sentence as informative for a job summary.
var summaryKeywords = []string{
	"vacancy", "vacancies", "recruitment", "eligible", "eligibility",
	"qualification", "last date", "apply",
}

// Boilerplate fragments that disqualify a sentence outright.
var summaryBoilerplate = []string{
	"click here", "follow us", "join our", "subscribe", "whatsapp group",
	"telegram channel",
}

// Summarize builds a short description from article text: sentences longer
// than SummaryMinSentenceLen that mention a recruitment keyword, boilerplate
// excluded, longest first, capped at SummaryMaxSentences and joined with
// periods. Falls back to the first sentence, then to DefaultSummary.
func Summarize(text string) string {
	sentences := splitSentences(text)

	var picked []string
	for _, s := range sentences {
		if len(s) <= SummaryMinSentenceLen {
			continue
		}
		lower := strings.ToLower(s)
		if containsAny(lower, summaryBoilerplate) {
			continue
		}
		if containsAny(lower, summaryKeywords) {
			picked = append(picked, s)
		}
	}

	sort.SliceStable(picked, func(i, j int) bool {
		return len(picked[i]) > len(picked[j])
	})
	if len(picked) > SummaryMaxSentences {
		picked = picked[:SummaryMaxSentences]
	}

	if len(picked) > 0 {
		return strings.Join(picked, ". ") + "."
	}
	if len(sentences) > 0 && sentences[0] != "" {
		return sentences[0] + "."
	}
	return DefaultSummary
}

func splitSentences(text string) []string {
	parts := sentenceSplitRe.Split(text, -1)
	out := parts[:0]
	for _, p := range parts {
		p = strings.TrimSpace(spacesRe.ReplaceAllString(p, " "))
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func containsAny(s string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}
