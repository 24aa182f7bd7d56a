package scoring

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/heartmarshall/sentencegolf/internal/domain"
	"github.com/heartmarshall/sentencegolf/internal/scorer"
)

// ScoreText scores a sentence. Registered proper nouns are excluded along
// with the request's own; if the registry is unreachable the request's nouns
// alone are used.
func (s *Service) ScoreText(ctx context.Context, in ScoreTextInput) (res scorer.Result, err error) {
	start := time.Now()
	defer func() {
		scoreDuration.WithLabelValues(kindText).Observe(time.Since(start).Seconds())
		observeResult(kindText, err)
	}()

	if err := in.Validate(s.cfg.MaxTextLength, s.cfg.MaxProperNouns); err != nil {
		return scorer.Result{}, err
	}

	sc, err := s.getScorer()
	if err != nil {
		return scorer.Result{}, err
	}

	nouns := s.properNouns(ctx, in.ProperNouns)

	// Always score in detail so token statuses can be counted.
	res = sc.Score(in.Text,
		scorer.WithProperNouns(nouns...),
		scorer.WithNotFoundPenalty(s.penalty(in.NotFoundPenalty)),
		scorer.Detailed(),
	)

	for _, w := range res.WordScores {
		scoredTokens.WithLabelValues(w.Status.String()).Inc()
	}
	if in.ResultType != domain.ResultTypeDetailed {
		res.WordScores = nil
	}

	s.log.DebugContext(ctx, "text scored",
		slog.Int("total_score", res.TotalScore),
		slog.Int("proper_nouns", len(nouns)),
	)

	return res, nil
}

// ScoreWord scores a single word without tokenizing it.
func (s *Service) ScoreWord(ctx context.Context, in ScoreWordInput) (score int, err error) {
	start := time.Now()
	defer func() {
		scoreDuration.WithLabelValues(kindWord).Observe(time.Since(start).Seconds())
		observeResult(kindWord, err)
	}()

	if err := in.Validate(); err != nil {
		return 0, err
	}

	sc, err := s.getScorer()
	if err != nil {
		return 0, err
	}

	word := strings.TrimSpace(in.Word)
	score = sc.ScoreWord(word, scorer.WithNotFoundPenalty(s.penalty(in.NotFoundPenalty)))

	s.log.DebugContext(ctx, "word scored", slog.String("word", word), slog.Int("score", score))
	return score, nil
}

// properNouns merges the request's nouns with the registry's.
func (s *Service) properNouns(ctx context.Context, requested []string) []string {
	if s.registry == nil {
		return requested
	}

	registered, err := s.registry.All(ctx)
	if err != nil {
		s.log.WarnContext(ctx, "proper noun registry unavailable, using request nouns only",
			slog.String("error", err.Error()),
		)
		return requested
	}

	nouns := make([]string, 0, len(requested)+len(registered))
	nouns = append(nouns, requested...)
	return append(nouns, registered...)
}
