// Package census builds the frequency census from BNC texts and publishes
// it as census files and Postgres tables.
package census

import (
	"context"

	"github.com/heartmarshall/sentencegolf/internal/domain"
)

// CensusRepo is the write side of the census tables.
// Implemented by frequency.Repo.
type CensusRepo interface {
	ClearCensus(ctx context.Context) error
	BulkInsertWords(ctx context.Context, entries []domain.WordFrequencyEntry) (int, error)
	BulkInsertLemmas(ctx context.Context, entries []domain.LemmaFrequencyEntry) (int, error)
	UpsertSummary(ctx context.Context, s domain.CensusSummary) error
}

// TxRunner runs fn in a single database transaction.
// Implemented by postgres.TxManager.
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}
