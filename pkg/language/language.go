// Package language guesses the natural language of analyzed text.
package language

import (
	"strings"

	"github.com/pemistahl/lingua-go"
)

// Unknown is reported for text too short or ambiguous to classify.
const Unknown = "unknown"

// minTextRunes is the shortest input worth running detection on.
const minTextRunes = 20

// Supported lists the languages the detector chooses between.
var Supported = []lingua.Language{
	lingua.English,
	lingua.Spanish,
	lingua.French,
	lingua.German,
	lingua.Italian,
	lingua.Portuguese,
	lingua.Dutch,
}

// Result is the detected language of one text.
type Result struct {
	Language   string  `json:"language" yaml:"language"`
	ISOCode    string  `json:"iso_code" yaml:"iso_code"`
	Confidence float64 `json:"confidence" yaml:"confidence"`
}

// Detector wraps a lingua detector. Building one loads language models, so
// callers should create it once and reuse it; Detect is safe for
// concurrent use.
type Detector struct {
	detector lingua.LanguageDetector
}

// NewDetector builds a detector over the Supported languages.
func NewDetector() *Detector {
	return &Detector{
		detector: lingua.NewLanguageDetectorBuilder().
			FromLanguages(Supported...).
			Build(),
	}
}

// Detect returns the most likely language of text, or Unknown when the text
// is too short or ambiguous.
func (d *Detector) Detect(text string) Result {
	text = strings.TrimSpace(text)
	if len([]rune(text)) < minTextRunes {
		return Result{Language: Unknown, ISOCode: Unknown}
	}

	lang, ok := d.detector.DetectLanguageOf(text)
	if !ok {
		return Result{Language: Unknown, ISOCode: Unknown}
	}
	return Result{
		Language:   strings.ToLower(lang.String()),
		ISOCode:    strings.ToLower(lang.IsoCode639_1().String()),
		Confidence: d.detector.ComputeLanguageConfidence(text, lang),
	}
}
