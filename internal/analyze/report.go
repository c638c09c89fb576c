package analyze

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dtnitsch/llm-citability/models"
	"github.com/dtnitsch/llm-citability/pkg/analytics"
	"github.com/dtnitsch/llm-citability/pkg/analyzer"
	"github.com/dtnitsch/llm-citability/pkg/detector"
	"github.com/dtnitsch/llm-citability/pkg/language"
	"github.com/dtnitsch/llm-citability/pkg/tokenizer"
	"gopkg.in/yaml.v3"
)

const (
	FormatJSON = "json"
	FormatYAML = "yaml"

	DefaultTopTerms = 10
)

// Report is the analyze command output.
type Report struct {
	Input           models.InputKind         `json:"input" yaml:"input"`
	Title           string                   `json:"title,omitempty" yaml:"title,omitempty"`
	URL             string                   `json:"url,omitempty" yaml:"url,omitempty"`
	Source          *models.SourceSignals    `json:"source,omitempty" yaml:"source,omitempty"`
	Language        language.Result          `json:"language" yaml:"language"`
	Metrics         models.MetricsReport     `json:"metrics" yaml:"metrics"`
	Structure       models.StructuralSignals `json:"structure" yaml:"structure"`
	TopTerms        []analytics.TermCount    `json:"top_terms" yaml:"top_terms"`
	Recommendations []models.Recommendation  `json:"recommendations" yaml:"recommendations"`
}

// BuildReport combines an analysis with the language and term summaries
// of the same text. Fetched pages also get source signals. A nil
// langDetector leaves the language unknown.
func BuildReport(kind models.InputKind, content models.Content, analysis models.Analysis, langDetector *language.Detector, topTerms int) Report {
	text := analyzer.AnalyzableText(content)

	lang := language.Result{Language: language.Unknown, ISOCode: language.Unknown}
	if langDetector != nil {
		lang = langDetector.Detect(text)
	}

	terms := analytics.TopTerms(tokenizer.NormalizedWords(text), topTerms)
	if terms == nil {
		terms = []analytics.TermCount{}
	}

	var source *models.SourceSignals
	if kind == models.InputURL {
		signals := detector.Detect(content)
		source = &signals
	}

	return Report{
		Input:           kind,
		Source:          source,
		Title:           content.Title,
		URL:             content.URL,
		Language:        lang,
		Metrics:         analysis.Metrics,
		Structure:       analysis.Structure,
		TopTerms:        terms,
		Recommendations: analysis.Recommendations,
	}
}

// WriteReport encodes report to w as JSON or YAML.
func WriteReport(w io.Writer, report Report, format string) error {
	var (
		outputData []byte
		err        error
	)
	if format == FormatYAML {
		outputData, err = yaml.Marshal(report)
	} else {
		outputData, err = json.MarshalIndent(report, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	if _, err := fmt.Fprintln(w, string(outputData)); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
