// Package corpus holds the frequency tables the scorer prices words against.
// The Store is populated once by a Provider and is read-only afterwards.
package corpus

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/sentencegolf/internal/domain"
)

// Resource names reported by NotReadyError.
const (
	ResourceWords  = "word frequency data"
	ResourceLemmas = "lemma frequency data"
	ResourceCensus = "census summary"
)

// Provider supplies the corpus tables. Implementations own the storage format.
type Provider interface {
	LoadWords(ctx context.Context) ([]domain.WordFrequencyEntry, error)
	LoadLemmas(ctx context.Context) ([]domain.LemmaFrequencyEntry, error)
	LoadCensus(ctx context.Context) (domain.CensusSummary, error)
}

// snapshot is the immutable result of a successful load.
type snapshot struct {
	words      []domain.WordFrequencyEntry
	lemmas     []domain.LemmaFrequencyEntry
	wordIndex  map[string]domain.WordFrequencyEntry
	lemmaIndex map[string]domain.LemmaFrequencyEntry
	census     domain.CensusSummary

	// Highest counts in each table; they anchor score normalization.
	maxWordCount  int
	maxLemmaCount int
}

// Store is the process-wide Frequency Store. The zero value is not usable;
// create one with NewStore.
type Store struct {
	snap atomic.Pointer[snapshot]

	mu   sync.Mutex // serializes Load
	done chan struct{}
}

// NewStore creates an empty, not-yet-loaded Store.
func NewStore() *Store {
	return &Store{done: make(chan struct{})}
}

// Load fetches all three tables from p concurrently and publishes them.
// Load succeeds at most once; later calls return domain.ErrConflict.
func (s *Store) Load(ctx context.Context, p Provider) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.snap.Load() != nil {
		return fmt.Errorf("corpus: load: %w: already loaded", domain.ErrConflict)
	}

	var (
		words  []domain.WordFrequencyEntry
		lemmas []domain.LemmaFrequencyEntry
		census domain.CensusSummary
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if words, err = p.LoadWords(gCtx); err != nil {
			return fmt.Errorf("load %s: %w", ResourceWords, err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if lemmas, err = p.LoadLemmas(gCtx); err != nil {
			return fmt.Errorf("load %s: %w", ResourceLemmas, err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if census, err = p.LoadCensus(gCtx); err != nil {
			return fmt.Errorf("load %s: %w", ResourceCensus, err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("corpus: %w", err)
	}

	snap, err := buildSnapshot(words, lemmas, census)
	if err != nil {
		return fmt.Errorf("corpus: %w", err)
	}

	s.snap.Store(snap)
	close(s.done)
	return nil
}

func buildSnapshot(words []domain.WordFrequencyEntry, lemmas []domain.LemmaFrequencyEntry, census domain.CensusSummary) (*snapshot, error) {
	if len(words) == 0 {
		return nil, domain.NewValidationError("words", "table is empty")
	}
	if len(lemmas) == 0 {
		return nil, domain.NewValidationError("lemmas", "table is empty")
	}
	if census.BarewordCount < 1 {
		return nil, domain.NewValidationError("census.barewordCount", "must be positive")
	}
	if census.LemmaCount < 1 {
		return nil, domain.NewValidationError("census.lemmaCount", "must be positive")
	}

	snap := &snapshot{
		words:      words,
		lemmas:     lemmas,
		wordIndex:  make(map[string]domain.WordFrequencyEntry, len(words)),
		lemmaIndex: make(map[string]domain.LemmaFrequencyEntry, len(lemmas)),
		census:     census,
	}

	for i, w := range words {
		if w.Count < 1 {
			return nil, domain.NewValidationError(fmt.Sprintf("words[%d]", i), "count must be positive")
		}
		// First occurrence wins on duplicate keys.
		if _, ok := snap.wordIndex[w.Word]; !ok {
			snap.wordIndex[w.Word] = w
		}
		snap.maxWordCount = max(snap.maxWordCount, w.Count)
	}
	for i, l := range lemmas {
		if l.Count < 1 {
			return nil, domain.NewValidationError(fmt.Sprintf("lemmas[%d]", i), "count must be positive")
		}
		if _, ok := snap.lemmaIndex[l.Lemma]; !ok {
			snap.lemmaIndex[l.Lemma] = l
		}
		snap.maxLemmaCount = max(snap.maxLemmaCount, l.Count)
	}

	return snap, nil
}

// Loaded reports whether Load has completed successfully.
func (s *Store) Loaded() bool {
	return s.snap.Load() != nil
}

// Done returns a channel that is closed once Load has completed successfully.
func (s *Store) Done() <-chan struct{} {
	return s.done
}

func (s *Store) get(resource string) (*snapshot, error) {
	snap := s.snap.Load()
	if snap == nil {
		return nil, domain.NewNotReadyError(resource)
	}
	return snap, nil
}

// WordEntries returns the word table in provider order. Each entry is keyed
// by its Word field. The slice must not be modified.
func (s *Store) WordEntries() ([]domain.WordFrequencyEntry, error) {
	snap, err := s.get(ResourceWords)
	if err != nil {
		return nil, err
	}
	return snap.words, nil
}

// LemmaEntries returns the lemma table in provider order, keyed by Lemma.
// The slice must not be modified.
func (s *Store) LemmaEntries() ([]domain.LemmaFrequencyEntry, error) {
	snap, err := s.get(ResourceLemmas)
	if err != nil {
		return nil, err
	}
	return snap.lemmas, nil
}

// CensusSummary returns the corpus totals.
func (s *Store) CensusSummary() (domain.CensusSummary, error) {
	snap, err := s.get(ResourceCensus)
	if err != nil {
		return domain.CensusSummary{}, err
	}
	return snap.census, nil
}

// LookupWord finds a word by exact (case-sensitive) key.
func (s *Store) LookupWord(word string) (domain.WordFrequencyEntry, bool, error) {
	snap, err := s.get(ResourceWords)
	if err != nil {
		return domain.WordFrequencyEntry{}, false, err
	}
	e, ok := snap.wordIndex[word]
	return e, ok, nil
}

// LookupLemma finds a lemma by exact (case-sensitive) key.
func (s *Store) LookupLemma(lemma string) (domain.LemmaFrequencyEntry, bool, error) {
	snap, err := s.get(ResourceLemmas)
	if err != nil {
		return domain.LemmaFrequencyEntry{}, false, err
	}
	e, ok := snap.lemmaIndex[lemma]
	return e, ok, nil
}

// Anchors returns the highest word and lemma counts in the tables.
func (s *Store) Anchors() (wordCount, lemmaCount int, err error) {
	snap, err := s.get(ResourceWords)
	if err != nil {
		return 0, 0, err
	}
	return snap.maxWordCount, snap.maxLemmaCount, nil
}
