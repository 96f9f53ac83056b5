// Package linkcheck decides whether a job URL points at an official hiring
// source and digs application links out of article HTML.
//
// The verdict is conservative: a URL that cannot be parsed, or whose host is
// on neither list, is not official. Aggregator sites are never official even
// when they repost genuine notifications.
package linkcheck

import (
	"net/url"
	"strings"
)

// Domains holds the allow and deny lists consulted by IsOfficial.
type Domains struct {
	// OfficialSuffixes match on host suffix, so subdomains qualify.
	OfficialSuffixes []string
	// Blacklisted match on substring anywhere in the host.
	Blacklisted []string
}

// DefaultDomains returns the production domain lists.
func DefaultDomains() Domains {
	return Domains{
		OfficialSuffixes: []string{
			".gov.in", ".nic.in", ".res.in", ".ac.in", ".edu.in",
			"ibps.in", "rbi.org.in", "sbi.co.in", "upsc.gov.in",
			"ssc.nic.in", "drdo.gov.in", "isro.gov.in", "indianrailways.gov.in",
			"joinindianarmy.nic.in", "indiapost.gov.in",
			"apna.co", "naukri.com", "linkedin.com", "indeed.com",
			"instahyre.com", "wellfound.com",
		},
		Blacklisted: []string{
			"sarkariresult", "freejobalert", "jagranjosh", "fresherslive",
			"testbook", "adda247", "glassdoor", "sarkarinaukri",
			"rojgarresult", "govtjobguru",
		},
	}
}

// IsOfficial reports whether rawURL belongs to a trusted hiring source.
// Parse failures and unknown hosts both return false.
func IsOfficial(rawURL string, d Domains) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	host := strings.ToLower(u.Hostname())
	if host == "" {
		return false
	}

	for _, bad := range d.Blacklisted {
		if strings.Contains(host, bad) {
			return false
		}
	}
	for _, suffix := range d.OfficialSuffixes {
		if strings.HasPrefix(suffix, ".") {
			if strings.HasSuffix(host, suffix) {
				return true
			}
			continue
		}
		if host == suffix || strings.HasSuffix(host, "."+suffix) {
			return true
		}
	}
	return false
}
