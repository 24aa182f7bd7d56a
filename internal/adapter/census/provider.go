package census

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/edsrzf/mmap-go"

	"github.com/heartmarshall/sentencegolf/internal/domain"
)

// FileProvider loads the census from a directory of census files. Files
// are memory-mapped for the duration of a parse.
type FileProvider struct {
	wordsPath   string
	lemmasPath  string
	summaryPath string
	log         *slog.Logger
}

// Files names the three census files inside a directory. Empty names fall
// back to the defaults.
type Files struct {
	Words   string
	Lemmas  string
	Summary string
}

// NewFileProvider creates a FileProvider reading from dir.
func NewFileProvider(dir string, files Files, logger *slog.Logger) *FileProvider {
	return &FileProvider{
		wordsPath:   filepath.Join(dir, orDefault(files.Words, DefaultWordsFile)),
		lemmasPath:  filepath.Join(dir, orDefault(files.Lemmas, DefaultLemmasFile)),
		summaryPath: filepath.Join(dir, orDefault(files.Summary, DefaultSummaryFile)),
		log:         logger.With("adapter", "census_files"),
	}
}

func orDefault(name, def string) string {
	if name == "" {
		return def
	}
	return name
}

// LoadWords parses the bareword census file.
func (p *FileProvider) LoadWords(ctx context.Context) ([]domain.WordFrequencyEntry, error) {
	var entries []domain.WordFrequencyEntry
	err := p.read(ctx, p.wordsPath, func(r io.Reader) error {
		var err error
		entries, err = ParseWords(r)
		return err
	})
	if err != nil {
		return nil, err
	}
	p.log.InfoContext(ctx, "census file loaded", slog.String("path", p.wordsPath), slog.Int("entries", len(entries)))
	return entries, nil
}

// LoadLemmas parses the lemma census file.
func (p *FileProvider) LoadLemmas(ctx context.Context) ([]domain.LemmaFrequencyEntry, error) {
	var entries []domain.LemmaFrequencyEntry
	err := p.read(ctx, p.lemmasPath, func(r io.Reader) error {
		var err error
		entries, err = ParseLemmas(r)
		return err
	})
	if err != nil {
		return nil, err
	}
	p.log.InfoContext(ctx, "census file loaded", slog.String("path", p.lemmasPath), slog.Int("entries", len(entries)))
	return entries, nil
}

// LoadCensus parses the census summary file.
func (p *FileProvider) LoadCensus(ctx context.Context) (domain.CensusSummary, error) {
	var summary domain.CensusSummary
	err := p.read(ctx, p.summaryPath, func(r io.Reader) error {
		var err error
		summary, err = ParseSummary(r)
		return err
	})
	if err != nil {
		return domain.CensusSummary{}, err
	}
	return summary, nil
}

// read maps path into memory and hands a reader over the mapping to fn.
// The mapping is released when fn returns, so fn must copy what it keeps.
func (p *FileProvider) read(ctx context.Context, path string, fn func(io.Reader) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("census: open %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("census: stat %s: %w", path, err)
	}
	// Zero-length files cannot be mapped.
	if info.Size() == 0 {
		return fn(bytes.NewReader(nil))
	}

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return fmt.Errorf("census: mmap %s: %w", path, err)
	}
	defer func() {
		if err := m.Unmap(); err != nil {
			p.log.WarnContext(ctx, "census unmap failed", slog.String("path", path), slog.String("error", err.Error()))
		}
	}()

	return fn(bytes.NewReader(m))
}

// WriteDir writes all three census files into dir using the default names,
// creating dir if needed.
func WriteDir(dir string, words []domain.WordFrequencyEntry, lemmas []domain.LemmaFrequencyEntry, summary domain.CensusSummary) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("census: create dir: %w", err)
	}

	writers := []struct {
		name  string
		write func(io.Writer) error
	}{
		{DefaultWordsFile, func(w io.Writer) error { return WriteWords(w, words) }},
		{DefaultLemmasFile, func(w io.Writer) error { return WriteLemmas(w, lemmas) }},
		{DefaultSummaryFile, func(w io.Writer) error { return WriteSummary(w, summary) }},
	}
	for _, wr := range writers {
		if err := writeFile(filepath.Join(dir, wr.name), wr.write); err != nil {
			return err
		}
	}
	return nil
}

func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("census: create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("census: close %s: %w", path, cerr)
		}
	}()
	return write(f)
}
