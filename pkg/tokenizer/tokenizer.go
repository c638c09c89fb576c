// Package tokenizer splits raw text into words, sentences and paragraphs.
package tokenizer

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Tokens holds the segmented views of one text.
type Tokens struct {
	// Words are whitespace-delimited tokens as written.
	Words []string
	// Normalized has one case-folded, edge-stripped entry per word.
	Normalized []string
	Sentences  []string
	Paragraphs []string
}

var (
	// A run of terminal punctuation ends a sentence only when followed by
	// whitespace or the end of the text, so "3.5" and "example.com" survive.
	sentenceBoundary = regexp.MustCompile(`[.!?]+(?:\s+|$)`)
	blankLine        = regexp.MustCompile(`\n[ \t\f\v]*\n`)
)

// Tokenize runs every segmenter over text.
func Tokenize(text string) Tokens {
	words := Words(text)
	return Tokens{
		Words:      words,
		Normalized: normalize(words),
		Sentences:  Sentences(text),
		Paragraphs: Paragraphs(text),
	}
}

// Words returns whitespace-delimited tokens containing at least one letter
// or digit. Bare punctuation such as "#" or "—" is not a word.
func Words(text string) []string {
	fields := strings.Fields(text)
	words := make([]string, 0, len(fields))
	for _, f := range fields {
		if strings.IndexFunc(f, isWordRune) >= 0 {
			words = append(words, f)
		}
	}
	return words
}

// NormalizedWords returns the lexical form of every word in text.
func NormalizedWords(text string) []string {
	return normalize(Words(text))
}

func normalize(words []string) []string {
	// Casers carry state, so each call gets its own.
	caser := cases.Fold()
	out := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.TrimFunc(norm.NFC.String(w), func(r rune) bool { return !isWordRune(r) })
		out = append(out, caser.String(w))
	}
	return out
}

// Sentences splits text on terminal punctuation, dropping empty pieces.
func Sentences(text string) []string {
	return splitNonEmpty(sentenceBoundary.Split(normalizeNewlines(text), -1))
}

// Paragraphs splits text on blank lines.
func Paragraphs(text string) []string {
	return splitNonEmpty(blankLine.Split(normalizeNewlines(text), -1))
}

func splitNonEmpty(parts []string) []string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func normalizeNewlines(text string) string {
	return strings.ReplaceAll(strings.ReplaceAll(text, "\r\n", "\n"), "\r", "\n")
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
