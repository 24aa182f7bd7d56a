package census

import (
	"cmp"
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	censusfile "github.com/heartmarshall/sentencegolf/internal/adapter/census"
	"github.com/heartmarshall/sentencegolf/internal/app/census/bnc"
	"github.com/heartmarshall/sentencegolf/internal/domain"
)

const (
	PhaseExtract  = "extract"
	PhaseFiles    = "files"
	PhaseDatabase = "database"
)

// allPhases defines the canonical execution order.
var allPhases = []string{PhaseExtract, PhaseFiles, PhaseDatabase}

// PhaseResult holds the outcome of a single pipeline phase.
type PhaseResult struct {
	Inserted int
	Skipped  int
	Errors   int
	Duration time.Duration
	Err      error
}

// Tables is a census ready to publish: entries at or above the minimum
// count, sorted by count descending, plus the unfiltered totals.
type Tables struct {
	Words   []domain.WordFrequencyEntry
	Lemmas  []domain.LemmaFrequencyEntry
	Summary domain.CensusSummary
}

// Pipeline runs the census phases.
type Pipeline struct {
	log     *slog.Logger
	repo    CensusRepo
	tx      TxRunner
	cfg     Config
	tables  *Tables
	results map[string]PhaseResult
}

// NewPipeline creates a new Pipeline. repo and tx may be nil when the
// database phase is not run.
func NewPipeline(log *slog.Logger, repo CensusRepo, tx TxRunner, cfg Config) *Pipeline {
	return &Pipeline{
		log:     log.With("pipeline", "census"),
		repo:    repo,
		tx:      tx,
		cfg:     cfg,
		results: make(map[string]PhaseResult),
	}
}

// Results returns phase results after Run completes.
func (p *Pipeline) Results() map[string]PhaseResult {
	return p.results
}

// Tables returns the census built or loaded by the last run, if any.
func (p *Pipeline) Tables() *Tables {
	return p.tables
}

// HasErrors returns true if any phase recorded errors.
func (p *Pipeline) HasErrors() bool {
	for _, r := range p.results {
		if r.Err != nil || r.Errors > 0 {
			return true
		}
	}
	return false
}

// SelectPhases returns the requested phases in canonical order. An empty
// request selects every phase.
func SelectPhases(requested []string) ([]string, error) {
	if len(requested) == 0 {
		return allPhases, nil
	}
	want := make(map[string]bool, len(requested))
	for _, ph := range requested {
		ph = strings.TrimSpace(ph)
		if !slices.Contains(allPhases, ph) {
			return nil, domain.NewValidationError("phase", fmt.Sprintf("unknown phase %q", ph))
		}
		want[ph] = true
	}
	var out []string
	for _, ph := range allPhases {
		if want[ph] {
			out = append(out, ph)
		}
	}
	return out, nil
}

// Run executes the pipeline. If phases is non-empty, only the listed phases run.
// A failed phase is recorded in Results and later phases still run.
func (p *Pipeline) Run(ctx context.Context, phases []string) error {
	toRun, err := SelectPhases(phases)
	if err != nil {
		return err
	}

	for _, phase := range toRun {
		if err := ctx.Err(); err != nil {
			return err
		}

		start := time.Now()
		p.log.Info("starting phase", slog.String("phase", phase))

		var result PhaseResult
		switch phase {
		case PhaseExtract:
			result = p.runExtract(ctx)
		case PhaseFiles:
			result = p.runFiles()
		case PhaseDatabase:
			result = p.runDatabase(ctx)
		}
		result.Duration = time.Since(start)
		p.results[phase] = result

		if result.Err != nil {
			p.log.Warn("phase failed",
				slog.String("phase", phase),
				slog.String("error", result.Err.Error()),
				slog.Duration("duration", result.Duration),
			)
		} else {
			p.log.Info("phase completed",
				slog.String("phase", phase),
				slog.Int("inserted", result.Inserted),
				slog.Int("skipped", result.Skipped),
				slog.Int("errors", result.Errors),
				slog.Duration("duration", result.Duration),
			)
		}
	}

	p.log.Info("pipeline completed", slog.Int("phases_run", len(toRun)))
	return nil
}

// runExtract parses every .xml file under TextsDir. Files are parsed
// concurrently and merged in path order, so the lemma recorded for a word
// is the one from its first file. A file that fails to parse is logged and
// contributes nothing.
func (p *Pipeline) runExtract(ctx context.Context) PhaseResult {
	if p.cfg.TextsDir == "" {
		return PhaseResult{Skipped: 1, Err: fmt.Errorf("texts dir not configured")}
	}

	paths, err := listXML(p.cfg.TextsDir)
	if err != nil {
		return PhaseResult{Err: fmt.Errorf("list texts: %w", err)}
	}
	p.log.Info("texts found", slog.Int("files", len(paths)))

	perFile := make([]*bnc.Counts, len(paths))
	failed := make([]error, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, p.cfg.Workers))
	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			perFile[i], failed[i] = parseFile(path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return PhaseResult{Err: err}
	}

	total := bnc.NewCounts()
	var result PhaseResult
	for i, path := range paths {
		if failed[i] != nil {
			result.Errors++
			p.log.Warn("skipping text", slog.String("file", path), slog.String("error", failed[i].Error()))
			continue
		}
		total.Merge(perFile[i])
	}

	p.tables = BuildTables(total, p.cfg.MinCount)
	p.log.Info("census extracted",
		slog.Int("occurrences", total.Total),
		slog.Int("distinct_words", len(total.Words)),
		slog.Int("distinct_lemmas", len(total.Lemmas)),
		slog.Int("kept_words", len(p.tables.Words)),
		slog.Int("kept_lemmas", len(p.tables.Lemmas)),
	)
	result.Skipped += len(total.Words) - len(p.tables.Words)
	return result
}

// runFiles writes the census files into OutputDir.
func (p *Pipeline) runFiles() PhaseResult {
	if p.tables == nil {
		return PhaseResult{Skipped: 1, Err: fmt.Errorf("no census extracted")}
	}
	rows := len(p.tables.Words) + len(p.tables.Lemmas)
	if p.cfg.DryRun {
		return PhaseResult{Skipped: rows}
	}

	if err := censusfile.WriteDir(p.cfg.OutputDir, p.tables.Words, p.tables.Lemmas, p.tables.Summary); err != nil {
		return PhaseResult{Err: fmt.Errorf("write census files: %w", err)}
	}
	return PhaseResult{Inserted: rows}
}

// runDatabase replaces the census tables in one transaction. Without a
// preceding extract it publishes the census files found in OutputDir.
func (p *Pipeline) runDatabase(ctx context.Context) PhaseResult {
	if p.tables == nil {
		tables, err := p.loadFiles(ctx)
		if err != nil {
			return PhaseResult{Err: fmt.Errorf("load census files: %w", err)}
		}
		p.tables = tables
	}
	if p.cfg.DryRun {
		return PhaseResult{Skipped: len(p.tables.Words) + len(p.tables.Lemmas)}
	}
	if p.repo == nil || p.tx == nil {
		return PhaseResult{Skipped: 1, Err: fmt.Errorf("database not configured")}
	}

	var result PhaseResult
	err := p.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := p.repo.ClearCensus(ctx); err != nil {
			return fmt.Errorf("clear census: %w", err)
		}

		inserted, err := batchProcess(p.tables.Words, p.cfg.BatchSize, func(batch []domain.WordFrequencyEntry) (int, error) {
			return p.repo.BulkInsertWords(ctx, batch)
		})
		if err != nil {
			return fmt.Errorf("insert words: %w", err)
		}
		result.Inserted += inserted

		inserted, err = batchProcess(p.tables.Lemmas, p.cfg.BatchSize, func(batch []domain.LemmaFrequencyEntry) (int, error) {
			return p.repo.BulkInsertLemmas(ctx, batch)
		})
		if err != nil {
			return fmt.Errorf("insert lemmas: %w", err)
		}
		result.Inserted += inserted

		if err := p.repo.UpsertSummary(ctx, p.tables.Summary); err != nil {
			return fmt.Errorf("upsert summary: %w", err)
		}
		return nil
	})
	if err != nil {
		return PhaseResult{Err: err}
	}
	return result
}

func (p *Pipeline) loadFiles(ctx context.Context) (*Tables, error) {
	provider := censusfile.NewFileProvider(p.cfg.OutputDir, censusfile.Files{}, p.log)

	words, err := provider.LoadWords(ctx)
	if err != nil {
		return nil, err
	}
	lemmas, err := provider.LoadLemmas(ctx)
	if err != nil {
		return nil, err
	}
	summary, err := provider.LoadCensus(ctx)
	if err != nil {
		return nil, err
	}
	return &Tables{Words: words, Lemmas: lemmas, Summary: summary}, nil
}

// BuildTables drops entries below minCount and sorts the rest by count
// descending, then key ascending. Summary totals include dropped entries.
func BuildTables(c *bnc.Counts, minCount int) *Tables {
	t := &Tables{
		Words:   make([]domain.WordFrequencyEntry, 0, len(c.Words)),
		Lemmas:  make([]domain.LemmaFrequencyEntry, 0, len(c.Lemmas)),
		Summary: domain.CensusSummary{BarewordCount: c.Total, LemmaCount: c.Total},
	}

	for word, tally := range c.Words {
		if tally.Count >= minCount {
			t.Words = append(t.Words, domain.WordFrequencyEntry{Word: word, Lemma: tally.Lemma, Count: tally.Count})
		}
	}
	for lemma, n := range c.Lemmas {
		if n >= minCount {
			t.Lemmas = append(t.Lemmas, domain.LemmaFrequencyEntry{Lemma: lemma, Count: n})
		}
	}

	slices.SortFunc(t.Words, func(a, b domain.WordFrequencyEntry) int {
		return cmp.Or(cmp.Compare(b.Count, a.Count), cmp.Compare(a.Word, b.Word))
	})
	slices.SortFunc(t.Lemmas, func(a, b domain.LemmaFrequencyEntry) int {
		return cmp.Or(cmp.Compare(b.Count, a.Count), cmp.Compare(a.Lemma, b.Lemma))
	})
	return t
}

func listXML(root string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.EqualFold(filepath.Ext(path), ".xml") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	slices.Sort(paths)
	return paths, nil
}

func parseFile(path string) (*bnc.Counts, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	counts, err := bnc.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return counts, nil
}

// batchProcess splits items into batches and processes each via fn.
func batchProcess[T any](items []T, batchSize int, fn func([]T) (int, error)) (int, error) {
	if len(items) == 0 {
		return 0, nil
	}
	if batchSize <= 0 {
		batchSize = 500
	}

	total := 0
	for i := 0; i < len(items); i += batchSize {
		end := min(i+batchSize, len(items))
		n, err := fn(items[i:end])
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}
