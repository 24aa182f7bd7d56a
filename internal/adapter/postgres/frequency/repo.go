// Package frequency implements the corpus frequency tables on PostgreSQL.
// It serves as a corpus.Provider for the server and as the bulk sink of the
// census builder.
package frequency

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/sentencegolf/internal/adapter/postgres"
	"github.com/heartmarshall/sentencegolf/internal/domain"
)

const (
	tableWords   = "census_words"
	tableLemmas  = "census_lemmas"
	tableSummary = "census_summary"

	summaryRowID = 1
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repo provides census persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

// New creates a new frequency repository.
func New(pool *pgxpool.Pool, logger *slog.Logger) *Repo {
	return &Repo{pool: pool, log: logger.With("repo", "frequency")}
}

// ---------------------------------------------------------------------------
// Read operations (corpus.Provider)
// ---------------------------------------------------------------------------

// LoadWords returns the word table, most frequent first. Rows with equal
// counts keep insertion order.
func (r *Repo) LoadWords(ctx context.Context) ([]domain.WordFrequencyEntry, error) {
	query, args, err := psql.
		Select("word", "lemma", "count").
		From(tableWords).
		OrderBy("count DESC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build words query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, tableWords, "all")
	}

	entries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.WordFrequencyEntry, error) {
		var e domain.WordFrequencyEntry
		err := row.Scan(&e.Word, &e.Lemma, &e.Count)
		return e, err
	})
	if err != nil {
		return nil, postgres.MapError(err, tableWords, "all")
	}

	r.log.InfoContext(ctx, "census table loaded", slog.String("table", tableWords), slog.Int("entries", len(entries)))
	return entries, nil
}

// LoadLemmas returns the lemma table, most frequent first.
func (r *Repo) LoadLemmas(ctx context.Context) ([]domain.LemmaFrequencyEntry, error) {
	query, args, err := psql.
		Select("lemma", "count").
		From(tableLemmas).
		OrderBy("count DESC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build lemmas query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, tableLemmas, "all")
	}

	entries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.LemmaFrequencyEntry, error) {
		var e domain.LemmaFrequencyEntry
		err := row.Scan(&e.Lemma, &e.Count)
		return e, err
	})
	if err != nil {
		return nil, postgres.MapError(err, tableLemmas, "all")
	}

	r.log.InfoContext(ctx, "census table loaded", slog.String("table", tableLemmas), slog.Int("entries", len(entries)))
	return entries, nil
}

// LoadCensus returns the corpus totals. Returns domain.ErrNotFound if the
// summary has never been written.
func (r *Repo) LoadCensus(ctx context.Context) (domain.CensusSummary, error) {
	query, args, err := psql.
		Select("bareword_count", "lemma_count").
		From(tableSummary).
		Where(squirrel.Eq{"id": summaryRowID}).
		ToSql()
	if err != nil {
		return domain.CensusSummary{}, fmt.Errorf("build summary query: %w", err)
	}

	var s domain.CensusSummary
	err = postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...).Scan(&s.BarewordCount, &s.LemmaCount)
	if err != nil {
		return domain.CensusSummary{}, postgres.MapError(err, tableSummary, "current")
	}
	return s, nil
}

// ---------------------------------------------------------------------------
// Write operations (census builder)
// ---------------------------------------------------------------------------

// ClearCensus removes all rows from the census tables. Outside a
// transaction the tables stay empty until the next insert.
func (r *Repo) ClearCensus(ctx context.Context) error {
	if !postgres.InTx(ctx) {
		r.log.WarnContext(ctx, "clearing census outside a transaction")
	}
	_, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx,
		`TRUNCATE `+tableWords+`, `+tableLemmas+`, `+tableSummary+` RESTART IDENTITY`)
	if err != nil {
		return postgres.MapError(err, "census", "truncate")
	}
	return nil
}

// BulkInsertWords inserts word rows using pgx.Batch. Existing words are
// skipped via ON CONFLICT DO NOTHING, so the first occurrence wins.
// Returns the number of actually inserted rows.
func (r *Repo) BulkInsertWords(ctx context.Context, entries []domain.WordFrequencyEntry) (int, error) {
	if len(entries) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for _, e := range entries {
		batch.Queue(
			`INSERT INTO census_words (word, lemma, count)
			 VALUES ($1, $2, $3)
			 ON CONFLICT (word) DO NOTHING`,
			e.Word, e.Lemma, e.Count,
		)
	}

	return r.sendBatchExec(ctx, batch)
}

// BulkInsertLemmas inserts lemma rows using pgx.Batch. Existing lemmas are
// skipped via ON CONFLICT DO NOTHING.
func (r *Repo) BulkInsertLemmas(ctx context.Context, entries []domain.LemmaFrequencyEntry) (int, error) {
	if len(entries) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for _, e := range entries {
		batch.Queue(
			`INSERT INTO census_lemmas (lemma, count)
			 VALUES ($1, $2)
			 ON CONFLICT (lemma) DO NOTHING`,
			e.Lemma, e.Count,
		)
	}

	return r.sendBatchExec(ctx, batch)
}

// UpsertSummary writes the corpus totals, replacing any previous values.
func (r *Repo) UpsertSummary(ctx context.Context, s domain.CensusSummary) error {
	query, args, err := psql.
		Insert(tableSummary).
		Columns("id", "bareword_count", "lemma_count").
		Values(summaryRowID, s.BarewordCount, s.LemmaCount).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			bareword_count = EXCLUDED.bareword_count,
			lemma_count = EXCLUDED.lemma_count,
			updated_at = now()`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build summary upsert: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, tableSummary, "current")
	}
	return nil
}

func (r *Repo) sendBatchExec(ctx context.Context, batch *pgx.Batch) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	results := q.SendBatch(ctx, batch)
	defer results.Close()

	var inserted int
	for range batch.Len() {
		tag, err := results.Exec()
		if err != nil {
			return inserted, fmt.Errorf("batch exec: %w", err)
		}
		inserted += int(tag.RowsAffected())
	}

	return inserted, nil
}
