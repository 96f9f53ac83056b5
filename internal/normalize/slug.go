package normalize

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var (
	nonSlugRe   = regexp.MustCompile(`[^a-z0-9]+`)
	dashRunRe   = regexp.MustCompile(`-{2,}`)
	maxSlugBase = 80
)

// Slugify builds a URL-safe slug from organization and title. Non
// alphanumeric runs collapse to single dashes.
func Slugify(organization, title string) string {
	s := strings.ToLower(organization + " " + title)
	s = nonSlugRe.ReplaceAllString(s, "-")
	s = dashRunRe.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if len(s) > maxSlugBase {
		s = strings.Trim(s[:maxSlugBase], "-")
	}
	if s == "" {
		return "job"
	}
	return s
}

// Disambiguate appends a timestamp suffix for slug collisions.
func Disambiguate(slug string, now time.Time) string {
	return fmt.Sprintf("%s-%d", slug, now.Unix())
}
