package frequency_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/sentencegolf/internal/adapter/postgres"
	"github.com/heartmarshall/sentencegolf/internal/adapter/postgres/frequency"
	"github.com/heartmarshall/sentencegolf/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/sentencegolf/internal/corpus"
	"github.com/heartmarshall/sentencegolf/internal/domain"
)

// Tests in this file share the census tables and must not run in parallel.

var _ corpus.Provider = (*frequency.Repo)(nil)

func newRepo(t *testing.T) (*frequency.Repo, *postgres.TxManager) {
	t.Helper()
	pool := testhelper.SetupTestDB(t)
	testhelper.TruncateCensus(t, pool)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return frequency.New(pool, logger), postgres.NewTxManager(pool)
}

func TestRepo_LoadEmpty(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()

	words, err := repo.LoadWords(ctx)
	require.NoError(t, err)
	assert.Empty(t, words)

	_, err = repo.LoadCensus(ctx)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRepo_InsertAndLoad(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()

	// Inserted out of count order; equal counts keep insertion order.
	words := []domain.WordFrequencyEntry{
		{Word: "sword", Lemma: "sword", Count: 90},
		{Word: "the", Lemma: "the", Count: 60000},
		{Word: "condensate", Lemma: "condensate", Count: 7},
		{Word: "grandiloquence", Lemma: "grandiloquence", Count: 7},
	}
	n, err := repo.BulkInsertWords(ctx, words)
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	lemmas := []domain.LemmaFrequencyEntry{
		{Lemma: "sword", Count: 100},
		{Lemma: "the", Count: 60000},
	}
	n, err = repo.BulkInsertLemmas(ctx, lemmas)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	require.NoError(t, repo.UpsertSummary(ctx, domain.CensusSummary{BarewordCount: 100, LemmaCount: 90}))
	require.NoError(t, repo.UpsertSummary(ctx, domain.CensusSummary{BarewordCount: 1000000, LemmaCount: 900000}))

	gotWords, err := repo.LoadWords(ctx)
	require.NoError(t, err)
	require.Len(t, gotWords, 4)
	assert.Equal(t, "the", gotWords[0].Word)
	assert.Equal(t, "sword", gotWords[1].Word)
	assert.Equal(t, "condensate", gotWords[2].Word)
	assert.Equal(t, "grandiloquence", gotWords[3].Word)
	assert.Equal(t, 7, gotWords[3].Count)

	gotLemmas, err := repo.LoadLemmas(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.LemmaFrequencyEntry{{Lemma: "the", Count: 60000}, {Lemma: "sword", Count: 100}}, gotLemmas)

	summary, err := repo.LoadCensus(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.CensusSummary{BarewordCount: 1000000, LemmaCount: 900000}, summary)
}

func TestRepo_DuplicateWordFirstWins(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()

	n, err := repo.BulkInsertWords(ctx, []domain.WordFrequencyEntry{
		{Word: "saw", Lemma: "see", Count: 50},
		{Word: "saw", Lemma: "saw", Count: 20},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	words, err := repo.LoadWords(ctx)
	require.NoError(t, err)
	require.Len(t, words, 1)
	assert.Equal(t, "see", words[0].Lemma)
}

func TestRepo_CheckViolation(t *testing.T) {
	repo, _ := newRepo(t)

	_, err := repo.BulkInsertLemmas(context.Background(), []domain.LemmaFrequencyEntry{{Lemma: "zero", Count: 0}})
	require.Error(t, err)
}

func TestRepo_ClearInTx_Rollback(t *testing.T) {
	repo, txm := newRepo(t)
	ctx := context.Background()

	_, err := repo.BulkInsertLemmas(ctx, []domain.LemmaFrequencyEntry{{Lemma: "keep", Count: 3}})
	require.NoError(t, err)

	sentinel := errors.New("abort")
	err = txm.RunInTx(ctx, func(ctx context.Context) error {
		if err := repo.ClearCensus(ctx); err != nil {
			return err
		}
		return sentinel
	})
	require.ErrorIs(t, err, sentinel)

	lemmas, err := repo.LoadLemmas(ctx)
	require.NoError(t, err)
	assert.Len(t, lemmas, 1)
}

func TestRepo_FeedsStore(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()

	_, err := repo.BulkInsertWords(ctx, []domain.WordFrequencyEntry{{Word: "the", Lemma: "the", Count: 10}})
	require.NoError(t, err)
	_, err = repo.BulkInsertLemmas(ctx, []domain.LemmaFrequencyEntry{{Lemma: "the", Count: 10}})
	require.NoError(t, err)
	require.NoError(t, repo.UpsertSummary(ctx, domain.CensusSummary{BarewordCount: 10, LemmaCount: 10}))

	store := corpus.NewStore()
	require.NoError(t, store.Load(ctx, repo))

	e, ok, err := store.LookupWord("the")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 10, e.Count)
}
