// Package scoring prices sentences and words for the API and CLI. It adds
// request validation, the shared proper-noun registry, and metrics on top of
// the scorer.
package scoring

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/heartmarshall/sentencegolf/internal/config"
	"github.com/heartmarshall/sentencegolf/internal/domain"
	"github.com/heartmarshall/sentencegolf/internal/scorer"
)

// frequencyStore is the subset of corpus.Store the scorer needs.
type frequencyStore interface {
	CensusSummary() (domain.CensusSummary, error)
	Anchors() (wordCount, lemmaCount int, err error)
	LookupWord(word string) (domain.WordFrequencyEntry, bool, error)
	LookupLemma(lemma string) (domain.LemmaFrequencyEntry, bool, error)
}

type properNounRegistry interface {
	Add(ctx context.Context, word string) (bool, error)
	Remove(ctx context.Context, word string) error
	All(ctx context.Context) ([]string, error)
}

// Service implements sentence and word scoring.
type Service struct {
	log      *slog.Logger
	store    frequencyStore
	registry properNounRegistry
	cfg      config.ScoringConfig

	// Built on first use once the store has loaded.
	scorer atomic.Pointer[scorer.Scorer]
}

// NewService creates a scoring service. registry may be nil, in which case
// only per-request proper nouns are excluded.
func NewService(
	logger *slog.Logger,
	store frequencyStore,
	registry properNounRegistry,
	cfg config.ScoringConfig,
) *Service {
	return &Service{
		log:      logger.With("service", "scoring"),
		store:    store,
		registry: registry,
		cfg:      cfg,
	}
}

// getScorer returns the scorer, building it if the store has finished
// loading. It returns a NotReadyError before that.
func (s *Service) getScorer() (*scorer.Scorer, error) {
	if sc := s.scorer.Load(); sc != nil {
		return sc, nil
	}

	sc, err := scorer.New(s.store)
	if err != nil {
		return nil, err
	}
	// Concurrent builders produce equivalent scorers; keep the first.
	if !s.scorer.CompareAndSwap(nil, sc) {
		return s.scorer.Load(), nil
	}
	s.log.Info("scorer ready")
	return sc, nil
}

// Ready reports whether scoring requests can be served.
func (s *Service) Ready() bool {
	_, err := s.getScorer()
	return err == nil
}

func (s *Service) penalty(override *int) int {
	if override != nil {
		return *override
	}
	return s.cfg.NotFoundPenalty
}
