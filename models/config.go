// Package models defines the data structures shared by the analysis
// pipeline, the fetcher and the CLI.
package models

import "time"

// FetchConfig holds runtime settings for retrieving remote content.
type FetchConfig struct {
	Timeout      time.Duration `yaml:"timeout"`
	UserAgent    string        `yaml:"user_agent"`
	MaxBodyBytes int64         `yaml:"max_body_bytes"`
}

const (
	DefaultFetchTimeout = 15 * time.Second
	DefaultMaxBodyBytes = 10 << 20
	DefaultUserAgent    = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) " +
		"AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36"
)

// DefaultFetchConfig returns the settings used when no config file overrides them.
func DefaultFetchConfig() FetchConfig {
	return FetchConfig{
		Timeout:      DefaultFetchTimeout,
		UserAgent:    DefaultUserAgent,
		MaxBodyBytes: DefaultMaxBodyBytes,
	}
}

// Thresholds are the policy bounds the recommendation rules compare against.
type Thresholds struct {
	MinWordCount         int     `yaml:"min_word_count" json:"min_word_count"`
	MaxAvgSentenceLength float64 `yaml:"max_avg_sentence_length" json:"max_avg_sentence_length"`
	LongParagraphWords   int     `yaml:"long_paragraph_words" json:"long_paragraph_words"`
	MinHeadingRatio      float64 `yaml:"min_heading_ratio" json:"min_heading_ratio"`
	MinListRatio         float64 `yaml:"min_list_ratio" json:"min_list_ratio"`
	MinNumberCount       int     `yaml:"min_number_count" json:"min_number_count"`
	MinTypeTokenRatio    float64 `yaml:"min_type_token_ratio" json:"min_type_token_ratio"`
	MaxRepetitionScore   float64 `yaml:"max_repetition_score" json:"max_repetition_score"`
}
