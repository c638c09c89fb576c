package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/dtnitsch/llm-citability/models"
	"github.com/dtnitsch/llm-citability/pkg/recommend"
	"gopkg.in/yaml.v3"
)

const (
	EnvDBPath    = "CITABILITY_DB"
	EnvUserAgent = "CITABILITY_USER_AGENT"
)

// DatabaseConfig locates the fetch log.
type DatabaseConfig struct {
	Path string `yaml:"path"` // empty means next to the binary
}

// Config holds application configuration
type Config struct {
	Thresholds models.Thresholds  `yaml:"thresholds"`
	Fetch      models.FetchConfig `yaml:"fetch"`
	Database   DatabaseConfig     `yaml:"database"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Thresholds: recommend.DefaultThresholds(),
		Fetch:      models.DefaultFetchConfig(),
	}
}

// Load reads path over the defaults. A missing file is not an error.
// Environment variables take precedence over config file values.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.loadFromFile(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	cfg.loadFromEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) loadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, c)
}

func (c *Config) loadFromEnv() {
	if dbPath := os.Getenv(EnvDBPath); dbPath != "" {
		c.Database.Path = dbPath
	}
	if ua := os.Getenv(EnvUserAgent); ua != "" {
		c.Fetch.UserAgent = ua
	}
}

// Validate rejects settings the pipeline cannot run with.
func (c *Config) Validate() error {
	t := c.Thresholds
	switch {
	case t.MinWordCount < 0:
		return errors.New("thresholds.min_word_count must not be negative")
	case t.MaxAvgSentenceLength <= 0:
		return errors.New("thresholds.max_avg_sentence_length must be positive")
	case t.LongParagraphWords <= 0:
		return errors.New("thresholds.long_paragraph_words must be positive")
	case t.MinHeadingRatio < 0 || t.MinHeadingRatio > 1:
		return errors.New("thresholds.min_heading_ratio must be within [0, 1]")
	case t.MinListRatio < 0 || t.MinListRatio > 1:
		return errors.New("thresholds.min_list_ratio must be within [0, 1]")
	case t.MinNumberCount < 0:
		return errors.New("thresholds.min_number_count must not be negative")
	case t.MinTypeTokenRatio < 0 || t.MinTypeTokenRatio > 1:
		return errors.New("thresholds.min_type_token_ratio must be within [0, 1]")
	case t.MaxRepetitionScore < 0 || t.MaxRepetitionScore > 1:
		return errors.New("thresholds.max_repetition_score must be within [0, 1]")
	}

	if c.Fetch.Timeout <= 0 {
		return errors.New("fetch.timeout must be positive")
	}
	if c.Fetch.MaxBodyBytes <= 0 {
		return errors.New("fetch.max_body_bytes must be positive")
	}
	return nil
}
