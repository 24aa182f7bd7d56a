package census

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/heartmarshall/sentencegolf/internal/domain"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testdataDir(t *testing.T) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot determine test file path")
	}
	return filepath.Join(filepath.Dir(file), "testdata")
}

func TestFileProvider_Testdata(t *testing.T) {
	t.Parallel()

	p := NewFileProvider(testdataDir(t), Files{}, newTestLogger())
	ctx := context.Background()

	words, err := p.LoadWords(ctx)
	if err != nil {
		t.Fatalf("LoadWords: %v", err)
	}
	if len(words) != 4 {
		t.Fatalf("expected 4 words, got %d", len(words))
	}
	if words[0].Word != "the" || words[0].Count != 60000 {
		t.Errorf("first word = %+v", words[0])
	}
	if words[3].Word != "grandiloquence" || words[3].Count != 7 {
		t.Errorf("last word = %+v", words[3])
	}

	lemmas, err := p.LoadLemmas(ctx)
	if err != nil {
		t.Fatalf("LoadLemmas: %v", err)
	}
	if len(lemmas) != 4 {
		t.Fatalf("expected 4 lemmas, got %d", len(lemmas))
	}

	summary, err := p.LoadCensus(ctx)
	if err != nil {
		t.Fatalf("LoadCensus: %v", err)
	}
	if summary.BarewordCount != 1000000 || summary.LemmaCount != 900000 {
		t.Errorf("summary = %+v", summary)
	}
}

func TestFileProvider_MissingFile(t *testing.T) {
	t.Parallel()

	p := NewFileProvider(t.TempDir(), Files{}, newTestLogger())
	_, err := p.LoadWords(context.Background())
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected fs.ErrNotExist, got %v", err)
	}
}

func TestFileProvider_EmptyFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "w.csv"), nil, 0o644); err != nil {
		t.Fatal(err)
	}

	p := NewFileProvider(dir, Files{Words: "w.csv"}, newTestLogger())
	_, err := p.LoadWords(context.Background())
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestFileProvider_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := NewFileProvider(testdataDir(t), Files{}, newTestLogger())
	if _, err := p.LoadLemmas(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestWriteDir_LoadBack(t *testing.T) {
	t.Parallel()

	words := []domain.WordFrequencyEntry{
		{Word: "the", Lemma: "the", Count: 500},
		{Word: "went", Lemma: "go", Count: 20},
	}
	lemmas := []domain.LemmaFrequencyEntry{
		{Lemma: "the", Count: 500},
		{Lemma: "go", Count: 45},
	}
	summary := domain.CensusSummary{BarewordCount: 520, LemmaCount: 545}

	dir := filepath.Join(t.TempDir(), "static")
	if err := WriteDir(dir, words, lemmas, summary); err != nil {
		t.Fatalf("WriteDir: %v", err)
	}

	p := NewFileProvider(dir, Files{}, newTestLogger())
	ctx := context.Background()

	gotWords, err := p.LoadWords(ctx)
	if err != nil {
		t.Fatalf("LoadWords: %v", err)
	}
	if len(gotWords) != 2 || gotWords[1] != words[1] {
		t.Errorf("words = %+v", gotWords)
	}
	gotLemmas, err := p.LoadLemmas(ctx)
	if err != nil {
		t.Fatalf("LoadLemmas: %v", err)
	}
	if len(gotLemmas) != 2 || gotLemmas[1] != lemmas[1] {
		t.Errorf("lemmas = %+v", gotLemmas)
	}
	gotSummary, err := p.LoadCensus(ctx)
	if err != nil {
		t.Fatalf("LoadCensus: %v", err)
	}
	if gotSummary != summary {
		t.Errorf("summary = %+v, want %+v", gotSummary, summary)
	}
}
