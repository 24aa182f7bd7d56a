package testhelper

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
)

// TruncateCensus empties all census tables.
func TruncateCensus(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`TRUNCATE census_words, census_lemmas, census_summary RESTART IDENTITY`)
	if err != nil {
		t.Fatalf("testhelper: truncate census: %v", err)
	}
}
