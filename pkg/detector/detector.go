// Package detector classifies where a fetched page comes from using only
// its URL, its declared metadata and its text.
package detector

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/dtnitsch/llm-citability/models"
)

const (
	DomainGov        = "gov"
	DomainEdu        = "edu"
	DomainAcademic   = "academic"
	DomainMobile     = "mobile"
	DomainCommercial = "commercial"
	DomainUnknown    = "unknown"
)

var academicDomains = []string{
	"arxiv.org", "doi.org", "pubmed.ncbi.nlm.nih.gov",
	"scholar.google.com", "researchgate.net", "academia.edu",
	"biorxiv.org", "medrxiv.org", "ssrn.com",
}

var newsDomains = []string{"techcrunch", "wired", "arstechnica", "theverge", "hacker", "news"}

var countries = map[string]string{
	"uk": "uk", "de": "de", "fr": "fr", "jp": "jp", "cn": "cn",
	"au": "au", "ca": "ca", "in": "in", "br": "br", "ru": "ru",
	"it": "it", "es": "es", "nl": "nl", "se": "se", "ch": "ch",
}

var arxivPattern = regexp.MustCompile(`arXiv:(\d{4}\.\d{4,5})`)

// Detect returns the source signals of content. Content without a
// parseable URL gets unknown domain signals but keeps its metadata.
func Detect(content models.Content) models.SourceSignals {
	signals := models.SourceSignals{
		DomainType:    DomainUnknown,
		Category:      "general",
		Country:       "unknown",
		Author:        content.Meta.Author,
		SiteName:      content.Meta.SiteName,
		PublishedTime: content.Meta.PublishedTime,
	}
	if m := arxivPattern.FindStringSubmatch(content.Text); len(m) > 1 {
		signals.ArXivID = m[1]
	}

	u, err := url.Parse(content.URL)
	if err != nil || u.Host == "" {
		return signals
	}
	signals.DomainType = domainType(u)
	signals.Country = country(u)
	signals.Category = category(u, signals.DomainType)
	return signals
}

func domainType(u *url.URL) string {
	host := strings.ToLower(u.Hostname())

	if strings.HasSuffix(host, ".gov") || strings.HasSuffix(host, ".mil") {
		return DomainGov
	}
	if strings.HasSuffix(host, ".edu") {
		return DomainEdu
	}
	for _, domain := range academicDomains {
		if host == domain || strings.HasSuffix(host, "."+domain) {
			return DomainAcademic
		}
	}
	if strings.HasPrefix(host, "m.") || strings.HasPrefix(host, "mobile.") {
		return DomainMobile
	}
	return DomainCommercial
}

// country guesses from the TLD; .gov, .edu and .mil imply us.
func country(u *url.URL) string {
	parts := strings.Split(strings.ToLower(u.Hostname()), ".")
	if len(parts) < 2 {
		return "unknown"
	}

	tld := parts[len(parts)-1]
	if c, ok := countries[tld]; ok {
		return c
	}
	if tld == "gov" || tld == "edu" || tld == "mil" {
		return "us"
	}
	return "unknown"
}

func category(u *url.URL, domain string) string {
	host := strings.ToLower(u.Hostname())
	path := strings.ToLower(u.Path)

	switch domain {
	case DomainGov:
		for _, marker := range []string{"health", "cdc", "nih", "fda"} {
			if strings.Contains(host, marker) {
				return "gov/health"
			}
		}
		return "gov/general"
	case DomainAcademic, DomainEdu:
		if strings.Contains(path, "/ai/") || strings.Contains(path, "/ml/") || strings.HasPrefix(host, "ai.") {
			return "academic/ai"
		}
		return "academic/general"
	}

	if strings.HasPrefix(host, "docs.") || strings.HasPrefix(host, "api.") ||
		strings.Contains(path, "/docs/") || strings.Contains(path, "/documentation/") || strings.Contains(path, "/api/") {
		return "docs/api"
	}
	if strings.HasPrefix(host, "blog.") || strings.Contains(path, "/blog/") {
		return "blog"
	}
	for _, news := range newsDomains {
		if strings.Contains(host, news) {
			return "news/tech"
		}
	}
	return "general"
}
