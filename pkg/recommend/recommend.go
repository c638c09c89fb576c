// Package recommend maps a MetricsReport onto advisory messages using a
// fixed, ordered set of threshold rules.
package recommend

import (
	"fmt"

	"github.com/dtnitsch/llm-citability/models"
)

// Default policy bounds. Config files may override any of them.
const (
	DefaultMinWordCount         = 500
	DefaultMaxAvgSentenceLength = 25.0
	DefaultLongParagraphWords   = 120
	DefaultMinHeadingRatio      = 0.20
	DefaultMinListRatio         = 0.10
	DefaultMinNumberCount       = 5
	DefaultMinTypeTokenRatio    = 0.40
	DefaultMaxRepetitionScore   = 0.30
)

// Rule identifiers, in evaluation order.
const (
	RuleNoContent      = "no_content"
	RuleShortContent   = "short_content"
	RuleLongSentences  = "long_sentences"
	RuleLongParagraphs = "long_paragraphs"
	RuleFewHeadings    = "few_headings"
	RuleFewLists       = "few_lists"
	RuleFewNumbers     = "few_numbers"
	RuleNoReferences   = "no_references"
	RuleLowDiversity   = "low_diversity"
	RuleHighRepetition = "high_repetition"
)

// NoContentMessage is the only advice given for empty input.
const NoContentMessage = "No content to analyze. Paste some text or provide a URL with readable content."

// DefaultThresholds returns the built-in policy.
func DefaultThresholds() models.Thresholds {
	return models.Thresholds{
		MinWordCount:         DefaultMinWordCount,
		MaxAvgSentenceLength: DefaultMaxAvgSentenceLength,
		LongParagraphWords:   DefaultLongParagraphWords,
		MinHeadingRatio:      DefaultMinHeadingRatio,
		MinListRatio:         DefaultMinListRatio,
		MinNumberCount:       DefaultMinNumberCount,
		MinTypeTokenRatio:    DefaultMinTypeTokenRatio,
		MaxRepetitionScore:   DefaultMaxRepetitionScore,
	}
}

type rule struct {
	id     string
	metric string
	failed func(r models.MetricsReport, t models.Thresholds) bool
	advice func(r models.MetricsReport, t models.Thresholds) string
}

var rules = []rule{
	{
		id:     RuleShortContent,
		metric: "word_count",
		failed: func(r models.MetricsReport, t models.Thresholds) bool { return r.WordCount < t.MinWordCount },
		advice: func(r models.MetricsReport, t models.Thresholds) string {
			return "The content is relatively short. Consider adding more context, definitions, and detailed examples."
		},
	},
	{
		id:     RuleLongSentences,
		metric: "avg_sentence_length",
		failed: func(r models.MetricsReport, t models.Thresholds) bool {
			return r.AvgSentenceLength > t.MaxAvgSentenceLength
		},
		advice: func(r models.MetricsReport, t models.Thresholds) string {
			return fmt.Sprintf("Average sentence length is %.1f words (target ≤ %.0f). Split long sentences into shorter ones to improve clarity and LLM comprehension.",
				r.AvgSentenceLength, t.MaxAvgSentenceLength)
		},
	},
	{
		id:     RuleLongParagraphs,
		metric: "long_paragraph_count",
		failed: func(r models.MetricsReport, t models.Thresholds) bool { return r.LongParagraphCount > 0 },
		advice: func(r models.MetricsReport, t models.Thresholds) string {
			return fmt.Sprintf("There are %d very long paragraphs (over %d words). Split them into smaller chunks to make parsing and scanning easier.",
				r.LongParagraphCount, t.LongParagraphWords)
		},
	},
	{
		id:     RuleFewHeadings,
		metric: "heading_ratio",
		failed: func(r models.MetricsReport, t models.Thresholds) bool { return r.HeadingRatio < t.MinHeadingRatio },
		advice: func(r models.MetricsReport, t models.Thresholds) string {
			return fmt.Sprintf("Headings per paragraph is %.2f (target ≥ %.2f). Use more headings (H2/H3) to structure the content into clear, thematic sections.",
				r.HeadingRatio, t.MinHeadingRatio)
		},
	},
	{
		id:     RuleFewLists,
		metric: "list_ratio",
		failed: func(r models.MetricsReport, t models.Thresholds) bool { return r.ListRatio < t.MinListRatio },
		advice: func(r models.MetricsReport, t models.Thresholds) string {
			return fmt.Sprintf("List items per paragraph is %.2f (target ≥ %.2f). Add bullet lists to highlight steps, key points, or advantages. Structured information is easier for LLMs to reuse.",
				r.ListRatio, t.MinListRatio)
		},
	},
	{
		id:     RuleFewNumbers,
		metric: "number_count",
		failed: func(r models.MetricsReport, t models.Thresholds) bool { return r.NumberCount < t.MinNumberCount },
		advice: func(r models.MetricsReport, t models.Thresholds) string {
			return "Very few numeric data points detected. Add numbers, dates, or percentages that can be explicitly cited."
		},
	},
	{
		id:     RuleNoReferences,
		metric: "url_count+citation_pattern_count",
		failed: func(r models.MetricsReport, t models.Thresholds) bool {
			return r.URLCount == 0 && r.CitationPatternCount == 0
		},
		advice: func(r models.MetricsReport, t models.Thresholds) string {
			return "No references or sources detected. Adding links to official documentation or studies increases authority and citability."
		},
	},
	{
		id:     RuleLowDiversity,
		metric: "type_token_ratio",
		failed: func(r models.MetricsReport, t models.Thresholds) bool { return r.TypeTokenRatio < t.MinTypeTokenRatio },
		advice: func(r models.MetricsReport, t models.Thresholds) string {
			return fmt.Sprintf("Vocabulary diversity is low (type-token ratio %.2f, target ≥ %.2f). Use more specific terms and semantic variations related to the topic.",
				r.TypeTokenRatio, t.MinTypeTokenRatio)
		},
	},
	{
		id:     RuleHighRepetition,
		metric: "repetition_score",
		failed: func(r models.MetricsReport, t models.Thresholds) bool {
			return r.RepetitionScore > t.MaxRepetitionScore
		},
		advice: func(r models.MetricsReport, t models.Thresholds) string {
			return fmt.Sprintf("High repetition of word patterns detected (score %.2f, target ≤ %.2f). Rewrite or condense redundant parts to add more new information.",
				r.RepetitionScore, t.MaxRepetitionScore)
		},
	},
}

// Recommend evaluates every rule against the report. Empty reports get a
// single no-content notice instead.
func Recommend(report models.MetricsReport, thresholds models.Thresholds) []models.Recommendation {
	if report.WordCount == 0 {
		return []models.Recommendation{{
			Rule:    RuleNoContent,
			Metric:  "word_count",
			Message: NoContentMessage,
		}}
	}

	out := make([]models.Recommendation, 0, len(rules))
	for _, r := range rules {
		if r.failed(report, thresholds) {
			out = append(out, models.Recommendation{
				Rule:    r.id,
				Metric:  r.metric,
				Message: r.advice(report, thresholds),
			})
		}
	}
	return out
}

// RuleIDs lists the threshold rules in evaluation order.
func RuleIDs() []string {
	ids := make([]string, len(rules))
	for i, r := range rules {
		ids[i] = r.id
	}
	return ids
}
