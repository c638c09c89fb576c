// Package metrics turns tokenized text and structural signals into a
// MetricsReport.
package metrics

import (
	"github.com/dtnitsch/llm-citability/models"
	"github.com/dtnitsch/llm-citability/pkg/tokenizer"
)

// Calculate builds the report for one document. A paragraph counts as long
// when it has more than longParagraphWords words; zero or less disables it.
// Text without words yields the zero report, whatever markers it holds.
//
// Structural ratios divide by the structural block count when the signals
// come from HTML, and by the text paragraph count otherwise.
func Calculate(text string, tok tokenizer.Tokens, signals models.StructuralSignals, longParagraphWords int) models.MetricsReport {
	if len(tok.Words) == 0 {
		return models.MetricsReport{}
	}

	report := models.MetricsReport{
		WordCount:      len(tok.Words),
		SentenceCount:  len(tok.Sentences),
		ParagraphCount: len(tok.Paragraphs),
	}

	report.AvgSentenceLength = ratio(report.WordCount, report.SentenceCount)
	blocks := report.ParagraphCount
	if signals.Source == models.StructureSourceHTML && signals.ParagraphCount > 0 {
		blocks = signals.ParagraphCount
	}
	report.HeadingRatio = ratio(signals.HeadingCount, blocks)
	report.ListRatio = ratio(signals.ListItemCount, blocks)

	if longParagraphWords > 0 {
		for _, p := range tok.Paragraphs {
			if len(tokenizer.Words(p)) > longParagraphWords {
				report.LongParagraphCount++
			}
		}
	}

	report.NumberCount = CountNumbers(tok.Words)
	report.URLCount = CountURLs(text)
	report.CitationPatternCount = CountCitations(text)
	report.TypeTokenRatio = TypeTokenRatio(tok.Normalized, report.WordCount)
	report.RepetitionScore = RepetitionScore(tok.Normalized)

	return report
}

// TypeTokenRatio is the share of distinct normalized words among all words.
func TypeTokenRatio(normalized []string, wordCount int) float64 {
	if wordCount == 0 {
		return 0
	}
	distinct := make(map[string]struct{}, len(normalized))
	for _, w := range normalized {
		distinct[w] = struct{}{}
	}
	if len(distinct) > wordCount {
		return 1
	}
	return ratio(len(distinct), wordCount)
}

type bigram struct {
	first, second string
}

// RepetitionScore is the share of bigram occurrences whose bigram appears
// more than once. "go go go go" scores 1.
func RepetitionScore(normalized []string) float64 {
	if len(normalized) < 2 {
		return 0
	}
	counts := make(map[bigram]int, len(normalized)-1)
	for i := 1; i < len(normalized); i++ {
		counts[bigram{normalized[i-1], normalized[i]}]++
	}
	repeated := 0
	for _, c := range counts {
		if c > 1 {
			repeated += c
		}
	}
	return ratio(repeated, len(normalized)-1)
}

func ratio(num, den int) float64 {
	if den == 0 {
		return 0
	}
	return float64(num) / float64(den)
}
