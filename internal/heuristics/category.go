package heuristics

import (
	"strings"

	"github.com/jobupdate/jobwire/internal/types"
)

// ClassifyCategory decides a record's category from its title. Detection
// order matters:
//
//  1. Result / Admit Card need both the content keyword and a state word
//     ("declared"/"out", "download"/"released"); a notification that merely
//     mentions an exam is not a result.
//  2. Sector scoring across the keyword dictionaries; the top score wins if
//     it reaches the threshold.
//  3. Otherwise the source's default category.
func ClassifyCategory(title string, defaultCat types.Category, li Lists) types.Category {
	t := strings.ToLower(title)

	if strings.Contains(t, "result") && (matchesWord(t, "declared") || matchesWord(t, "out")) {
		return types.CategoryResult
	}
	if strings.Contains(t, "admit card") && (matchesWord(t, "download") || matchesWord(t, "released")) {
		return types.CategoryAdmitCard
	}

	type scored struct {
		cat   types.Category
		score float64
	}
	scores := []scored{
		{types.CategoryIT, float64(countMatches(t, li.ITKeywords)) * 2},
		{types.CategoryBanking, float64(countMatches(t, li.BankKeywords)) * 1.5},
		{types.CategoryRailway, float64(countMatches(t, li.RailwayKeywords)) * 1.5},
		{types.CategoryPolice, float64(countMatches(t, li.PoliceKeywords)) * 1.5},
		{types.CategoryTeaching, float64(countMatches(t, li.TeachingKeywords)) * 1.5},
		{types.CategoryPSU, float64(countMatches(t, li.PSUKeywords)) * 1.5},
		{types.CategoryGovt, float64(countMatches(t, li.GovtKeywords))},
	}

	best := scores[0]
	for _, s := range scores[1:] {
		if s.score > best.score {
			best = s
		}
	}
	if best.score >= 2 {
		return best.cat
	}

	if defaultCat != "" {
		return defaultCat
	}
	return types.CategoryGovt
}

func countMatches(text string, keywords []string) int {
	n := 0
	for _, k := range keywords {
		if matchesWord(text, k) {
			n++
		}
	}
	return n
}

// itRoleRule maps trigger keywords to an IT sub-role label. Rules are
// evaluated in order and the first match wins, so the more specific roles
// (ML/AI, DevOps) must precede the generic ones.
type itRoleRule struct {
	label    string
	keywords []string
}

var itRoleRules = []itRoleRule{
	{"AI/ML Engineer", []string{"ml", "machine learning", "ai", "data science"}},
	{"DevOps Engineer", []string{"devops", "sre", "reliability"}},
	{"Cloud Engineer", []string{"cloud", "aws", "azure", "gcp"}},
	{"Data Engineer", []string{"data engineer", "etl", "data pipeline"}},
	{"Cybersecurity", []string{"security", "cyber"}},
	{"QA/Testing", []string{"qa", "testing", "quality"}},
	{"Frontend Developer", []string{"frontend", "front-end", "ui developer"}},
	{"Backend Developer", []string{"backend", "back-end"}},
	{"Full Stack Developer", []string{"fullstack", "full-stack", "full stack"}},
	{"Mobile Developer", []string{"mobile", "ios", "android", "flutter"}},
	{"Product & Tech", []string{"product", "program manager"}},
	{"Systems Engineer", []string{"system"}},
}

// ClassifyITRole maps a title plus extracted skills to an IT sub-role using
// an ordered first-match-wins rule list. Falls back to DefaultITRole.
func ClassifyITRole(title string, skills []string) string {
	text := strings.ToLower(title + " " + strings.Join(skills, " "))
	for _, rule := range itRoleRules {
		for _, k := range rule.keywords {
			if matchesWord(text, k) {
				return rule.label
			}
		}
	}
	return DefaultITRole
}
