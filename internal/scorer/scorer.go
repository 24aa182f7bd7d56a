// Package scorer converts corpus frequencies into sentence-golf rarity
// scores. The most frequent word in the corpus scores 1; rarer words score
// higher.
package scorer

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/sentencegolf/internal/domain"
	"github.com/heartmarshall/sentencegolf/internal/tokenizer"
)

// frequencyStore is the read side of corpus.Store.
type frequencyStore interface {
	CensusSummary() (domain.CensusSummary, error)
	Anchors() (wordCount, lemmaCount int, err error)
	LookupWord(word string) (domain.WordFrequencyEntry, bool, error)
	LookupLemma(lemma string) (domain.LemmaFrequencyEntry, bool, error)
}

// Scorer prices words and sentences. It holds no mutable state and is safe
// for concurrent use.
type Scorer struct {
	store frequencyStore

	wordRefPoint  float64
	lemmaRefPoint float64
	wordLogZero   float64
	lemmaLogZero  float64
}

// Result is the outcome of scoring a sentence. WordScores is only set for
// domain.ResultTypeDetailed.
type Result struct {
	TotalScore int
	WordScores []domain.ScoredWord
}

// New derives the normalization constants from a loaded store. It returns
// the store's NotReadyError if the corpus has not been loaded yet.
func New(store frequencyStore) (*Scorer, error) {
	census, err := store.CensusSummary()
	if err != nil {
		return nil, fmt.Errorf("scorer: %w", err)
	}
	wordAnchor, lemmaAnchor, err := store.Anchors()
	if err != nil {
		return nil, fmt.Errorf("scorer: %w", err)
	}

	wordRef := math.Log10(float64(census.BarewordCount))
	lemmaRef := math.Log10(float64(census.LemmaCount))

	return &Scorer{
		store:         store,
		wordRefPoint:  wordRef,
		lemmaRefPoint: lemmaRef,
		wordLogZero:   wordRef - math.Log10(float64(wordAnchor)),
		lemmaLogZero:  lemmaRef - math.Log10(float64(lemmaAnchor)),
	}, nil
}

// ScoreWord scores a single word. Only the NotFoundPenalty option applies.
func (s *Scorer) ScoreWord(word string, opts ...Option) int {
	o := buildOptions(opts)
	score, _ := s.scoreToken(word, o.NotFoundPenalty)
	return score
}

// Score tokenizes text, drops proper nouns, and sums the per-token scores.
func (s *Scorer) Score(text string, opts ...Option) Result {
	o := buildOptions(opts)

	excluded := make(map[string]struct{}, len(o.ProperNouns))
	for _, noun := range o.ProperNouns {
		excluded[strings.ToUpper(noun)] = struct{}{}
	}

	detailed := o.ResultType == domain.ResultTypeDetailed

	var res Result
	if detailed {
		res.WordScores = []domain.ScoredWord{}
	}

	for _, token := range tokenizer.Wordize(text) {
		if _, skip := excluded[strings.ToUpper(token)]; skip {
			continue
		}

		score, status := s.scoreToken(token, o.NotFoundPenalty)
		res.TotalScore += score
		if detailed {
			res.WordScores = append(res.WordScores, domain.ScoredWord{
				Word:   token,
				Score:  score,
				Status: status,
			})
		}
	}

	return res
}

func (s *Scorer) scoreToken(word string, notFoundPenalty int) (int, domain.WordStatus) {
	rel, ok := s.relativeFrequency(word)
	if !ok {
		return notFoundPenalty + utf8.RuneCountInString(word), domain.WordStatusNotFound
	}
	return int(math.Floor(1 + rel)), domain.WordStatusFound
}

// relativeFrequency averages the word and lemma components. A missing
// lemma makes the whole word not found.
func (s *Scorer) relativeFrequency(word string) (float64, bool) {
	// The store was loaded before New returned, so lookups cannot fail.
	entry, ok, err := s.store.LookupWord(strings.ToLower(word))
	if err != nil || !ok {
		return 0, false
	}
	lemma, ok, err := s.store.LookupLemma(strings.ToLower(entry.Lemma))
	if err != nil || !ok {
		return 0, false
	}

	wordComponent := s.wordRefPoint - math.Log10(float64(entry.Count)) - s.wordLogZero
	lemmaComponent := s.lemmaRefPoint - math.Log10(float64(lemma.Count)) - s.lemmaLogZero

	return (wordComponent + lemmaComponent) / 2, true
}
