// Package census reads and writes the on-disk census files: the bareword
// and lemma frequency tables (CSV) and the census summary (key=value).
package census

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/heartmarshall/sentencegolf/internal/domain"
)

// Default file names inside a corpus directory.
const (
	DefaultWordsFile   = "barewordcensus.csv"
	DefaultLemmasFile  = "lemmacensus.csv"
	DefaultSummaryFile = "censussummary.txt"
)

const (
	colWord  = "word"
	colLemma = "lemma"
	colCount = "count"

	keyBarewordCount = "barewordCount"
	keyLemmaCount    = "lemmaCount"
)

// Rows are padded with a tab after each comma and end in CRLF. Readers trim
// both, so hand-edited files without padding parse too.
const (
	fieldSep = ",\t"
	lineEnd  = "\r\n"
)

const maxLineSize = 1 << 20

// table is a header-indexed view over the rows of a census CSV.
type table struct {
	columns map[string]int
	width   int
}

// readTable scans a census CSV and calls fn for each data row. Blank lines
// are skipped; line numbers are 1-based and count the header.
func readTable(r io.Reader, required []string, fn func(line int, row []string) error) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var (
		tbl  *table
		line int
	)
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}

		fields := splitFields(text)
		if tbl == nil {
			t, err := parseHeader(fields, required)
			if err != nil {
				return err
			}
			tbl = t
			continue
		}

		// Rows written with a leading separator carry an empty first field.
		if len(fields) == tbl.width+1 && fields[0] == "" {
			fields = fields[1:]
		}
		if len(fields) != tbl.width {
			return domain.NewValidationError(
				fmt.Sprintf("line %d", line),
				fmt.Sprintf("expected %d fields, got %d", tbl.width, len(fields)),
			)
		}

		row := make([]string, len(required))
		for i, col := range required {
			row[i] = fields[tbl.columns[col]]
		}
		if err := fn(line, row); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read: %w", err)
	}
	if tbl == nil {
		return domain.NewValidationError("header", "missing")
	}
	return nil
}

func splitFields(text string) []string {
	fields := strings.Split(text, ",")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	return fields
}

func parseHeader(fields, required []string) (*table, error) {
	t := &table{columns: make(map[string]int, len(fields)), width: len(fields)}
	for i, f := range fields {
		t.columns[strings.ToLower(f)] = i
	}
	for _, col := range required {
		if _, ok := t.columns[col]; !ok {
			return nil, domain.NewValidationError("header", fmt.Sprintf("missing column %q", col))
		}
	}
	return t, nil
}

func parseCount(line int, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, domain.NewValidationError(
			fmt.Sprintf("line %d", line),
			fmt.Sprintf("count %q must be a positive integer", s),
		)
	}
	return n, nil
}

// ParseWords reads a bareword census table with word, lemma and count columns.
func ParseWords(r io.Reader) ([]domain.WordFrequencyEntry, error) {
	var entries []domain.WordFrequencyEntry
	err := readTable(r, []string{colWord, colLemma, colCount}, func(line int, row []string) error {
		count, err := parseCount(line, row[2])
		if err != nil {
			return err
		}
		if row[0] == "" {
			return domain.NewValidationError(fmt.Sprintf("line %d", line), "word is empty")
		}
		entries = append(entries, domain.WordFrequencyEntry{Word: row[0], Lemma: row[1], Count: count})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("census: parse words: %w", err)
	}
	return entries, nil
}

// ParseLemmas reads a lemma census table with lemma and count columns.
func ParseLemmas(r io.Reader) ([]domain.LemmaFrequencyEntry, error) {
	var entries []domain.LemmaFrequencyEntry
	err := readTable(r, []string{colLemma, colCount}, func(line int, row []string) error {
		count, err := parseCount(line, row[1])
		if err != nil {
			return err
		}
		if row[0] == "" {
			return domain.NewValidationError(fmt.Sprintf("line %d", line), "lemma is empty")
		}
		entries = append(entries, domain.LemmaFrequencyEntry{Lemma: row[0], Count: count})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("census: parse lemmas: %w", err)
	}
	return entries, nil
}

// ParseSummary reads key=value lines. Unknown keys are ignored; both totals
// are required.
func ParseSummary(r io.Reader) (domain.CensusSummary, error) {
	values := make(map[string]string)

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") || strings.HasPrefix(text, ";") {
			continue
		}
		key, value, ok := strings.Cut(text, "=")
		if !ok {
			continue
		}
		values[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	if err := sc.Err(); err != nil {
		return domain.CensusSummary{}, fmt.Errorf("census: parse summary: read: %w", err)
	}

	var (
		summary domain.CensusSummary
		errs    []domain.FieldError
	)
	for _, f := range []struct {
		key string
		dst *int
	}{
		{keyBarewordCount, &summary.BarewordCount},
		{keyLemmaCount, &summary.LemmaCount},
	} {
		raw, ok := values[f.key]
		if !ok {
			errs = append(errs, domain.FieldError{Field: f.key, Message: "missing"})
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			errs = append(errs, domain.FieldError{Field: f.key, Message: fmt.Sprintf("%q must be a positive integer", raw)})
			continue
		}
		*f.dst = n
	}
	if len(errs) > 0 {
		return domain.CensusSummary{}, fmt.Errorf("census: parse summary: %w", domain.NewValidationErrors(errs))
	}
	return summary, nil
}

// WriteWords writes entries as a bareword census table.
func WriteWords(w io.Writer, entries []domain.WordFrequencyEntry) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(colWord + fieldSep + colLemma + fieldSep + colCount + lineEnd)
	for _, e := range entries {
		fmt.Fprintf(bw, "%s%s%s%s%d%s", e.Word, fieldSep, e.Lemma, fieldSep, e.Count, lineEnd)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("census: write words: %w", err)
	}
	return nil
}

// WriteLemmas writes entries as a lemma census table.
func WriteLemmas(w io.Writer, entries []domain.LemmaFrequencyEntry) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(colLemma + fieldSep + colCount + lineEnd)
	for _, e := range entries {
		fmt.Fprintf(bw, "%s%s%d%s", e.Lemma, fieldSep, e.Count, lineEnd)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("census: write lemmas: %w", err)
	}
	return nil
}

// WriteSummary writes the census totals as key=value lines.
func WriteSummary(w io.Writer, s domain.CensusSummary) error {
	_, err := fmt.Fprintf(w, "%s=%d\n%s=%d\n", keyBarewordCount, s.BarewordCount, keyLemmaCount, s.LemmaCount)
	if err != nil {
		return fmt.Errorf("census: write summary: %w", err)
	}
	return nil
}
