// Package structure counts headings, list items and paragraph blocks in a
// document, from HTML markup when available and from plain-text layout
// otherwise.
package structure

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"github.com/dtnitsch/llm-citability/models"
	"github.com/dtnitsch/llm-citability/pkg/tokenizer"
)

const (
	headingSelector = "h1,h2,h3,h4,h5,h6"
	blockSelector   = "h1,h2,h3,h4,h5,h6,p,li,pre,blockquote,dt,dd"

	// MaxHeadingWords bounds the length of a standalone plain-text heading.
	MaxHeadingWords = 8
)

var (
	atxHeading  = regexp.MustCompile(`^#{1,6}\s+\S`)
	htmlHeading = regexp.MustCompile(`(?i)^<h[1-6][^>]*>.*</h[1-6]>$`)
	listItem    = regexp.MustCompile(`^\s*(?:[-*+•◦▪]|\d{1,3}[.)])\s+\S`)
)

// Extract returns the structural signals of content. Markup that cannot be
// parsed, or that has no readable block elements, falls back to the
// plain-text rules.
func Extract(content models.Content) models.StructuralSignals {
	if content.HasHTML() {
		if signals, ok := fromHTML(content.HTML); ok {
			return signals
		}
	}
	return FromText(content.Text)
}

func fromHTML(html string) (models.StructuralSignals, bool) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return models.StructuralSignals{}, false
	}
	paragraphs := blocks(doc.Selection)
	if len(paragraphs) == 0 {
		return models.StructuralSignals{}, false
	}

	signals := models.StructuralSignals{
		ParagraphCount: len(paragraphs),
		Source:         models.StructureSourceHTML,
	}
	doc.Find(headingSelector).Each(func(i int, s *goquery.Selection) {
		if normalizeText(s.Text()) != "" {
			signals.HeadingCount++
		}
	})
	doc.Find("li").Each(func(i int, s *goquery.Selection) {
		if normalizeText(s.Text()) != "" {
			signals.ListItemCount++
		}
	})
	return signals, true
}

// FromText applies the plain-text heading and list heuristics.
func FromText(text string) models.StructuralSignals {
	signals := models.StructuralSignals{Source: models.StructureSourceText}
	paragraphs := tokenizer.Paragraphs(text)
	signals.ParagraphCount = len(paragraphs)

	for _, p := range paragraphs {
		lines := nonEmptyLines(p)
		for _, line := range lines {
			switch {
			case IsListItem(line):
				signals.ListItemCount++
			case atxHeading.MatchString(line), htmlHeading.MatchString(line):
				signals.HeadingCount++
			case len(lines) == 1 && isStandaloneHeading(line):
				signals.HeadingCount++
			}
		}
	}
	return signals
}

// IsListItem reports whether a line starts with a bullet or numeral marker.
func IsListItem(line string) bool {
	return listItem.MatchString(line)
}

// isStandaloneHeading matches short unpunctuated lines written in ALL CAPS
// or Title Case.
func isStandaloneHeading(line string) bool {
	words := tokenizer.Words(line)
	if len(words) == 0 || len(words) > MaxHeadingWords {
		return false
	}
	if strings.ContainsAny(line[len(line)-1:], ".,;:!?") {
		return false
	}
	return isAllCaps(line) || isTitleCase(words)
}

func isAllCaps(line string) bool {
	hasLetter := false
	for _, r := range line {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsLetter(r) {
			hasLetter = true
		}
	}
	return hasLetter
}

func isTitleCase(words []string) bool {
	first := true
	for _, w := range words {
		letters := []rune(strings.TrimFunc(w, func(r rune) bool { return !unicode.IsLetter(r) }))
		if len(letters) == 0 {
			continue
		}
		if (first || len(letters) > 4) && !unicode.IsUpper(letters[0]) {
			return false
		}
		first = false
	}
	return !first
}

func nonEmptyLines(p string) []string {
	var lines []string
	for _, l := range strings.Split(p, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}
