package linkcheck

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Career portal hosts that count as a direct application link even though
// they are commercial platforms.
var careerPortalHosts = []string{
	"myworkdayjobs.com", "taleo.net", "greenhouse.io", "lever.co",
	"smartrecruiters.com", "workable.com",
}

// ExtractOfficialLink scans article HTML for the best application link, in
// priority order: a host passing IsOfficial against d, a known career
// portal, a PDF notification. Relative hrefs are resolved against
// articleURL. When nothing qualifies the article URL itself is returned.
func ExtractOfficialLink(html, articleURL string, d Domains) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return articleURL
	}
	base, err := url.Parse(articleURL)
	if err != nil {
		base = nil
	}

	var official, portal, pdf string
	doc.Find("a[href]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		href, _ := s.Attr("href")
		href = strings.TrimSpace(href)
		if href == "" || strings.HasPrefix(href, "#") || strings.HasPrefix(href, "javascript:") {
			return true
		}
		resolved := resolveHref(base, href)
		if resolved == "" {
			return true
		}
		u, err := url.Parse(resolved)
		if err != nil {
			return true
		}
		host := strings.ToLower(u.Hostname())

		switch {
		case official == "" && IsOfficial(resolved, d):
			official = resolved
			return false // best class found, stop scanning
		case portal == "" && isCareerPortalHost(host):
			portal = resolved
		case pdf == "" && strings.HasSuffix(strings.ToLower(u.Path), ".pdf"):
			pdf = resolved
		}
		return true
	})

	switch {
	case official != "":
		return official
	case portal != "":
		return portal
	case pdf != "":
		return pdf
	}
	return articleURL
}

func resolveHref(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	if ref.IsAbs() {
		return ref.String()
	}
	if base == nil {
		return ""
	}
	return base.ResolveReference(ref).String()
}

func isCareerPortalHost(host string) bool {
	for _, h := range careerPortalHosts {
		if host == h || strings.HasSuffix(host, "."+h) {
			return true
		}
	}
	return false
}
