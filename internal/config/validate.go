package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Corpus.validate(); err != nil {
		return fmt.Errorf("corpus: %w", err)
	}

	if c.Corpus.UsePostgres() && c.Database.DSN == "" {
		return fmt.Errorf("database.dsn is required when corpus.source is %q", CorpusSourcePostgres)
	}

	if err := c.Scoring.validate(); err != nil {
		return fmt.Errorf("scoring: %w", err)
	}

	if c.RateLimit.Enabled && c.RateLimit.RequestsPerMin <= 0 {
		return fmt.Errorf("rate_limit.requests_per_min must be > 0 (got %d)", c.RateLimit.RequestsPerMin)
	}

	return nil
}

func (c *CorpusConfig) validate() error {
	switch strings.ToLower(c.Source) {
	case CorpusSourceFiles:
		if c.Dir == "" {
			return fmt.Errorf("dir is required when source is %q", CorpusSourceFiles)
		}
	case CorpusSourcePostgres:
	default:
		return fmt.Errorf("source must be %q or %q (got %q)", CorpusSourceFiles, CorpusSourcePostgres, c.Source)
	}
	if c.LoadTimeout <= 0 {
		return fmt.Errorf("load_timeout must be > 0 (got %v)", c.LoadTimeout)
	}
	return nil
}

func (s *ScoringConfig) validate() error {
	if s.NotFoundPenalty < 0 {
		return fmt.Errorf("not_found_penalty must be >= 0 (got %d)", s.NotFoundPenalty)
	}
	if s.MaxTextLength <= 0 {
		return fmt.Errorf("max_text_length must be > 0 (got %d)", s.MaxTextLength)
	}
	if s.MaxProperNouns < 0 {
		return fmt.Errorf("max_proper_nouns must be >= 0 (got %d)", s.MaxProperNouns)
	}
	return nil
}
