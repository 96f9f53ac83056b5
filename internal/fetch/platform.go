// Package fetch - platform.go provides site-kind detection and per-kind
// selectors for the pages the pipeline fetches.
package fetch

import (
	"net/url"
	"strings"
)

// Platform represents a recognized kind of source site.
type Platform string

const (
	// PlatformGovNotice is an Indian government notification site.
	PlatformGovNotice Platform = "gov-notice"
	// PlatformArticle is a WordPress-style job news article site.
	PlatformArticle Platform = "article"
	// PlatformWorkday is the Workday ATS platform.
	PlatformWorkday Platform = "workday"
	// PlatformGreenhouse is the Greenhouse ATS platform.
	PlatformGreenhouse Platform = "greenhouse"
	// PlatformUnknown is an unrecognized site.
	PlatformUnknown Platform = "unknown"
)

// DetectPlatform identifies the site kind from a URL.
func DetectPlatform(urlStr string) Platform {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return PlatformUnknown
	}

	host := strings.ToLower(parsed.Host)

	for _, suffix := range []string{".gov.in", ".nic.in", ".res.in", ".ac.in"} {
		if strings.HasSuffix(host, suffix) {
			return PlatformGovNotice
		}
	}

	if strings.Contains(host, "myworkdayjobs.com") || strings.Contains(host, "workday.com") {
		return PlatformWorkday
	}
	if strings.Contains(host, "greenhouse.io") {
		return PlatformGreenhouse
	}

	if strings.HasSuffix(host, ".in") || strings.HasSuffix(host, ".com") {
		return PlatformArticle
	}
	return PlatformUnknown
}

// PlatformContentSelectors returns content selectors tuned for a site kind.
func PlatformContentSelectors(platform Platform) []string {
	switch platform {
	case PlatformGovNotice:
		return []string{
			".notification-content",
			".notice-board",
			"#content",
			"table",
			"main",
		}
	case PlatformWorkday:
		return []string{
			"[data-automation-id='jobDescription']",
			".job-description",
		}
	case PlatformGreenhouse:
		return []string{
			".job__description.body",
			".job__description",
			"#content",
		}
	case PlatformArticle:
		return ArticleSelectors()
	default:
		return JobBoardSelectors()
	}
}

// PlatformNoiseSelectors returns noise exclusion selectors for a site kind.
func PlatformNoiseSelectors(platform Platform) []string {
	common := []string{
		"form",
		".social-share",
		".share-buttons",
		".cookie-banner",
		".cookie-consent",
		".newsletter-signup",
		".telegram-join",
		".whatsapp-join",
	}

	switch platform {
	case PlatformArticle:
		return append(common,
			".author-box",
			".post-navigation",
			".related-posts",
			".comments",
			".wp-block-buttons",
		)
	case PlatformGreenhouse:
		return append(common,
			".application--wrapper",
			".post-apply",
		)
	case PlatformWorkday:
		return append(common,
			"[data-automation-id='applyButton']",
		)
	default:
		return common
	}
}
