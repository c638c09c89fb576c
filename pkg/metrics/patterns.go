package metrics

import (
	"regexp"
	"strings"
)

// The pattern sets below are fixed; changing them changes reported counts.
var (
	numberToken = regexp.MustCompile(`^[$€£¥]?\d+(?:[.,]\d+)*%?$`)

	urlPattern = regexp.MustCompile(`(?i)\b(?:[a-z][a-z0-9+.\-]*://|www\.)[^\s<>"'()\[\]]+`)

	citationPatterns = []*regexp.Regexp{
		// [1], [2,3], [4-6]
		regexp.MustCompile(`\[\d{1,3}(?:\s*[,\-–]\s*\d{1,3})*\]`),
		// (2023), (Smith, 2019a)
		regexp.MustCompile(`\((?:[^()]{1,80}?,\s*)?(?:1[6-9]|20)\d{2}[a-z]?\)`),
		regexp.MustCompile(`(?i)\bet al\.?`),
		// DOI
		regexp.MustCompile(`\b10\.\d{4,9}/\S+`),
		regexp.MustCompile(`(?i)\b(?:according to|seg[uú]n)\b`),
	}
)

// tokenEdges are stripped from a token before it is tested as a number.
const tokenEdges = "()[]{}<>\"'“”‘’«»,;:!?"

// CountNumbers counts whitespace tokens that are numeric values, such as
// 42, 3.5, 1,200, 15% or $9.99.
func CountNumbers(words []string) int {
	n := 0
	for _, w := range words {
		w = strings.Trim(w, tokenEdges)
		w = strings.TrimRight(w, ".")
		w = strings.Trim(w, tokenEdges)
		if numberToken.MatchString(w) {
			n++
		}
	}
	return n
}

// CountURLs counts scheme:// and www. prefixed links.
func CountURLs(text string) int {
	return len(urlPattern.FindAllStringIndex(text, -1))
}

// CountCitations sums the matches of every citation-like pattern.
func CountCitations(text string) int {
	n := 0
	for _, re := range citationPatterns {
		n += len(re.FindAllStringIndex(text, -1))
	}
	return n
}
