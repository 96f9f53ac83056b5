package heuristics

import (
	"regexp"
	"strings"
	"sync"
)

// wordRe caches compiled whole-word patterns keyed by keyword. Keyword lists
// are small and fixed per process, so the cache stays bounded.
var wordRe sync.Map

func matchesWord(text, keyword string) bool {
	v, ok := wordRe.Load(keyword)
	if !ok {
		re := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(keyword) + `\b`)
		v, _ = wordRe.LoadOrStore(keyword, re)
	}
	return v.(*regexp.Regexp).MatchString(text)
}

// ContainsWord reports whether keyword appears as a whole word in text,
// case-insensitively.
func ContainsWord(text, keyword string) bool {
	return matchesWord(text, keyword)
}

// IsRelevant reports whether the text looks like a job/exam update worth
// processing: it must contain at least one allow-listed keyword and none of
// the deny-listed ones. Matching is whole-word and case-insensitive.
func IsRelevant(title, body string, li Lists) bool {
	text := strings.ToLower(title + " " + body)

	hasJobKeyword := false
	for _, k := range li.JobKeywords {
		if matchesWord(text, k) {
			hasJobKeyword = true
			break
		}
	}
	if !hasJobKeyword {
		return false
	}

	for _, k := range li.DenyKeywords {
		if matchesWord(text, k) {
			return false
		}
	}
	return true
}
