// Package corpustest provides an in-memory corpus for tests.
package corpustest

import (
	"context"
	"testing"

	"github.com/heartmarshall/sentencegolf/internal/corpus"
	"github.com/heartmarshall/sentencegolf/internal/domain"
)

// Provider is a static corpus.Provider. Non-nil error fields are returned
// from the matching Load method.
type Provider struct {
	Words  []domain.WordFrequencyEntry
	Lemmas []domain.LemmaFrequencyEntry
	Census domain.CensusSummary

	WordsErr  error
	LemmasErr error
	CensusErr error
}

func (p *Provider) LoadWords(ctx context.Context) ([]domain.WordFrequencyEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if p.WordsErr != nil {
		return nil, p.WordsErr
	}
	return p.Words, nil
}

func (p *Provider) LoadLemmas(ctx context.Context) ([]domain.LemmaFrequencyEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if p.LemmasErr != nil {
		return nil, p.LemmasErr
	}
	return p.Lemmas, nil
}

func (p *Provider) LoadCensus(ctx context.Context) (domain.CensusSummary, error) {
	if err := ctx.Err(); err != nil {
		return domain.CensusSummary{}, err
	}
	if p.CensusErr != nil {
		return domain.CensusSummary{}, p.CensusErr
	}
	return p.Census, nil
}

// Fixture returns a small corpus where "the" is the most frequent word and
// lemma. "orphan" has a lemma missing from the lemma table; "bose" and
// "hapax" are absent entirely.
func Fixture() *Provider {
	return &Provider{
		Words: []domain.WordFrequencyEntry{
			{Word: "the", Lemma: "the", Count: 60000},
			{Word: "and", Lemma: "and", Count: 30000},
			{Word: "to", Lemma: "to", Count: 25000},
			{Word: "i", Lemma: "i", Count: 9000},
			{Word: "n't", Lemma: "not", Count: 8000},
			{Word: "he", Lemma: "he", Count: 7000},
			{Word: "'", Lemma: "'", Count: 2500},
			{Word: "should", Lemma: "should", Count: 2000},
			{Word: "go", Lemma: "go", Count: 1500},
			{Word: "see", Lemma: "see", Count: 1200},
			{Word: "do", Lemma: "do", Count: 1100},
			{Word: "'ve", Lemma: "have", Count: 1000},
			{Word: "'d", Lemma: "would", Count: 900},
			{Word: "went", Lemma: "go", Count: 800},
			{Word: "'ll", Lemma: "will", Count: 700},
			{Word: "meeting", Lemma: "meeting", Count: 400},
			{Word: "parents", Lemma: "parent", Count: 300},
			{Word: "ate", Lemma: "eat", Count: 150},
			{Word: "apple", Lemma: "apple", Count: 120},
			{Word: "sword", Lemma: "sword", Count: 90},
			{Word: "orphan", Lemma: "orphanlemma", Count: 50},
			{Word: "einstein", Lemma: "einstein", Count: 40},
			{Word: "condensate", Lemma: "condensate", Count: 7},
			{Word: "grandiloquence", Lemma: "grandiloquence", Count: 7},
		},
		Lemmas: []domain.LemmaFrequencyEntry{
			{Lemma: "the", Count: 60000},
			{Lemma: "and", Count: 30000},
			{Lemma: "to", Count: 25000},
			{Lemma: "i", Count: 9000},
			{Lemma: "not", Count: 9000},
			{Lemma: "he", Count: 7000},
			{Lemma: "have", Count: 5000},
			{Lemma: "'", Count: 2500},
			{Lemma: "go", Count: 2300},
			{Lemma: "should", Count: 2000},
			{Lemma: "see", Count: 1200},
			{Lemma: "do", Count: 1100},
			{Lemma: "would", Count: 1000},
			{Lemma: "will", Count: 950},
			{Lemma: "parent", Count: 700},
			{Lemma: "meeting", Count: 450},
			{Lemma: "eat", Count: 400},
			{Lemma: "apple", Count: 150},
			{Lemma: "sword", Count: 100},
			{Lemma: "einstein", Count: 40},
			{Lemma: "condensate", Count: 7},
			{Lemma: "grandiloquence", Count: 7},
		},
		Census: domain.CensusSummary{
			BarewordCount: 1_000_000,
			LemmaCount:    1_000_000,
		},
	}
}

// LoadedStore returns a Store loaded from Fixture.
func LoadedStore(t testing.TB) *corpus.Store {
	t.Helper()

	store := corpus.NewStore()
	if err := store.Load(context.Background(), Fixture()); err != nil {
		t.Fatalf("corpustest: load fixture: %v", err)
	}
	return store
}
