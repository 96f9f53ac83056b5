package heuristics

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/jobupdate/jobwire/internal/types"
)

var (
	yearRe      = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)
	delimRe     = regexp.MustCompile(`[:|\x{2013}-]`)
	postNoiseRe = regexp.MustCompile(`(?i)\b(?:recruitment|notification|vacancy|vacancies|jobs?|hiring|for|posts?)\b`)
	spacesRe    = regexp.MustCompile(`\s+`)

	vacancyRe      = regexp.MustCompile(`(?i)\b(\d{1,6})\s+(?:posts?|vacanc(?:y|ies)|openings?|positions?)\b`)
	vacancyTotalRe = regexp.MustCompile(`(?i)\b(?:total|over)\s*(\d{1,6})\b`)

	salaryRe = regexp.MustCompile(`(?i)(?:salary|stipend|package|ctc|pay scale|pay)\s*:?\s*(?:rs\.?\s*|\x{20b9}\s*)?(\d[\d,.\x{2013}-]*(?:\s*(?:lpa|lakh|per month|monthly|annually|k))?)`)

	expRangeRe  = regexp.MustCompile(`(?i)\b(\d{1,2})\s*(?:-|\x{2013}|to)\s*(\d{1,2})\s*(?:years?|yrs?)\b`)
	expSingleRe = regexp.MustCompile(`(?i)\b(\d{1,2})\+?\s*(?:years?|yrs?)\b`)

	orgSuffixRe = regexp.MustCompile(`(?i)\b(?:pvt|private|ltd|limited|inc|llc|corp|corporation|solutions|technologies)\b\.?`)
)

// ExtractOrganization pulls the hiring organization out of a title by
// stripping recruitment noise words and years, then taking the text before
// the first delimiter. Returns DefaultOrganization when nothing survives.
func ExtractOrganization(title string, li Lists) string {
	cleaned := yearRe.ReplaceAllString(title, "")
	for _, noise := range li.TitleNoise {
		re := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(noise) + `\b`)
		cleaned = re.ReplaceAllString(cleaned, "")
	}

	if loc := delimRe.FindStringIndex(cleaned); loc != nil {
		cleaned = cleaned[:loc[0]]
	}

	cleaned = strings.TrimSpace(spacesRe.ReplaceAllString(cleaned, " "))
	if cleaned == "" {
		return DefaultOrganization
	}
	return cleaned
}

// ExtractPostName derives the post name from a title by removing the
// organization substring and generic recruitment words. Returns
// DefaultPostName when the title is nothing but the organization.
func ExtractPostName(title, organization string) string {
	cleaned := title
	if organization != "" && organization != DefaultOrganization {
		cleaned = strings.Replace(cleaned, organization, "", 1)
	}
	cleaned = yearRe.ReplaceAllString(cleaned, "")
	cleaned = postNoiseRe.ReplaceAllString(cleaned, "")
	cleaned = delimRe.ReplaceAllString(cleaned, " ")
	cleaned = strings.TrimSpace(spacesRe.ReplaceAllString(cleaned, " "))
	if cleaned == "" {
		return DefaultPostName
	}
	return cleaned
}

// ExtractVacancies finds a vacancy count like "1056 Posts" or "Total 1056".
// Returns the bare number as a string, or DefaultVacancies.
func ExtractVacancies(text string) string {
	if m := vacancyRe.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	if m := vacancyTotalRe.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return DefaultVacancies
}

// ExtractQualification maps qualification keywords found in the text to
// canonical labels and returns them comma-joined. Keys are scanned in sorted
// order so output is deterministic. Returns DefaultQualification when no
// keyword matches.
func ExtractQualification(text string, li Lists) string {
	t := strings.ToLower(text)

	keys := make([]string, 0, len(li.Qualifications))
	for k := range li.Qualifications {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	seen := make(map[string]bool)
	var labels []string
	for _, k := range keys {
		if !strings.Contains(t, k) {
			continue
		}
		label := li.Qualifications[k]
		if !seen[label] {
			seen[label] = true
			labels = append(labels, label)
		}
	}

	if len(labels) == 0 {
		return DefaultQualification
	}
	return strings.Join(labels, ", ")
}

// ExtractSalary captures an amount adjacent to a salary/stipend/pay keyword.
// Returns DefaultSalary when no figure is found.
func ExtractSalary(text string) string {
	if m := salaryRe.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return DefaultSalary
}

// ExtractLocations returns every region mentioned in the text, alias-
// normalized and deduplicated, preserving the dictionary order of
// li.Regions. Returns [DefaultLocation] when none match.
func ExtractLocations(text string, li Lists) []string {
	t := strings.ToLower(text)

	seen := make(map[string]bool)
	var found []string
	for _, region := range li.Regions {
		if !strings.Contains(t, strings.ToLower(region)) {
			continue
		}
		name := region
		if canonical, ok := li.RegionAliases[region]; ok {
			name = canonical
		}
		if !seen[name] {
			seen[name] = true
			found = append(found, name)
		}
	}

	if len(found) == 0 {
		return []string{DefaultLocation}
	}
	return found
}

// ExtractExperience parses an experience requirement: a range ("2-5 years"),
// a floor ("3+ years"), or the fresher keyword. The zero-information default
// is {0, 15, DefaultExperience}.
func ExtractExperience(text string) types.Experience {
	if m := expRangeRe.FindStringSubmatch(text); m != nil {
		min, _ := strconv.Atoi(m[1])
		max, _ := strconv.Atoi(m[2])
		return types.Experience{Min: min, Max: max, Label: m[1] + "-" + m[2] + " Years"}
	}
	if m := expSingleRe.FindStringSubmatch(text); m != nil {
		n, _ := strconv.Atoi(m[1])
		return types.Experience{Min: n, Max: n + 2, Label: m[1] + "+ Years"}
	}
	if strings.Contains(strings.ToLower(text), "fresher") {
		return types.Experience{Min: 0, Max: 1, Label: "Freshers"}
	}
	return types.Experience{Min: 0, Max: 15, Label: DefaultExperience}
}

var monthsByName = map[string]time.Month{
	"january": time.January, "jan": time.January,
	"february": time.February, "feb": time.February,
	"march": time.March, "mar": time.March,
	"april": time.April, "apr": time.April,
	"may": time.May,
	"june": time.June, "jun": time.June,
	"july": time.July, "jul": time.July,
	"august": time.August, "aug": time.August,
	"september": time.September, "sep": time.September,
	"october": time.October, "oct": time.October,
	"november": time.November, "nov": time.November,
	"december": time.December, "dec": time.December,
}

var dateRe = regexp.MustCompile(`(?i)\b(\d{1,2})(?:st|nd|rd|th)?\s+(january|february|march|april|may|june|july|august|september|october|november|december|jan|feb|mar|apr|jun|jul|aug|sep|oct|nov|dec)[,.]?\s+(\d{4})\b`)

// dateHintWindow bounds how far past a label hint a date may appear and
// still be attributed to it.
const dateHintWindow = 120

// ExtractDate finds a "DD Month YYYY" date in the text. When labelHint is
// present in the text, only the window immediately following the hint is
// searched first; the whole text is the fallback. Returns nil rather than
// a sentinel date when nothing parses, and callers must handle nil.
func ExtractDate(text, labelHint string) *time.Time {
	t := strings.ToLower(text)

	if labelHint != "" {
		if idx := strings.Index(t, strings.ToLower(labelHint)); idx >= 0 {
			end := idx + len(labelHint) + dateHintWindow
			if end > len(t) {
				end = len(t)
			}
			if d := parseFirstDate(t[idx:end]); d != nil {
				return d
			}
		}
	}
	return parseFirstDate(t)
}

func parseFirstDate(text string) *time.Time {
	m := dateRe.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	day, err := strconv.Atoi(m[1])
	if err != nil || day < 1 || day > 31 {
		return nil
	}
	month, ok := monthsByName[strings.ToLower(m[2])]
	if !ok {
		return nil
	}
	year, err := strconv.Atoi(m[3])
	if err != nil {
		return nil
	}
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	// Reject rollovers like 31 February.
	if d.Day() != day {
		return nil
	}
	return &d
}

// ExtractSkills collects canonical skill names mentioned in the text, capped
// at 10. Names made of word characters match whole-word; names with symbols
// (C++, C#, CI/CD) match as substrings.
func ExtractSkills(text string, li Lists) []string {
	t := strings.ToLower(text)

	var found []string
	for _, skill := range li.Skills {
		if len(found) >= 10 {
			break
		}
		lower := strings.ToLower(skill)
		var hit bool
		if isWordOnly(lower) {
			hit = matchesWord(t, lower)
		} else {
			hit = strings.Contains(t, lower)
		}
		if hit {
			found = append(found, skill)
		}
	}
	return found
}

func isWordOnly(s string) bool {
	for _, r := range s {
		if !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9') {
			return false
		}
	}
	return true
}

// NormalizeOrganization canonicalizes a company name: corporate suffixes and
// punctuation are stripped, then the alias dictionary is consulted.
func NormalizeOrganization(name string, li Lists) string {
	if strings.TrimSpace(name) == "" {
		return "Unknown"
	}

	cleaned := orgSuffixRe.ReplaceAllString(name, "")
	cleaned = strings.NewReplacer(".", "", ",", "").Replace(cleaned)
	cleaned = strings.TrimSpace(spacesRe.ReplaceAllString(cleaned, " "))

	keys := make([]string, 0, len(li.Organizations))
	for k := range li.Organizations {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lower := strings.ToLower(name)
	for _, key := range keys {
		if strings.Contains(lower, key) {
			return li.Organizations[key]
		}
	}

	if cleaned == "" {
		return name
	}
	return cleaned
}
