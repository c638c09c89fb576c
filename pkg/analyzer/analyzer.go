// Package analyzer runs the citability pipeline: segmentation, structure
// extraction, metrics and recommendations.
//
// Analyze is a pure function of its arguments and is safe for concurrent use.
package analyzer

import (
	"strings"

	"github.com/dtnitsch/llm-citability/models"
	"github.com/dtnitsch/llm-citability/pkg/metrics"
	"github.com/dtnitsch/llm-citability/pkg/recommend"
	"github.com/dtnitsch/llm-citability/pkg/structure"
	"github.com/dtnitsch/llm-citability/pkg/tokenizer"
)

// Analyze profiles content against the given thresholds. It never fails:
// empty input yields a zeroed report with a single no-content notice.
func Analyze(content models.Content, thresholds models.Thresholds) models.Analysis {
	text := AnalyzableText(content)
	tok := tokenizer.Tokenize(text)
	signals := structure.Extract(models.Content{Text: text, HTML: content.HTML})
	report := metrics.Calculate(text, tok, signals, thresholds.LongParagraphWords)

	return models.Analysis{
		Metrics:         report,
		Structure:       signals,
		Recommendations: recommend.Recommend(report, thresholds),
	}
}

// AnalyzeDefault is Analyze with the built-in thresholds.
func AnalyzeDefault(content models.Content) models.Analysis {
	return Analyze(content, recommend.DefaultThresholds())
}

// AnalyzableText returns the text the metrics are computed on: the supplied
// text, or the block text of the HTML when no text was given.
func AnalyzableText(content models.Content) string {
	if strings.TrimSpace(content.Text) != "" || !content.HasHTML() {
		return content.Text
	}
	return structure.TextFromHTML(content.HTML)
}
