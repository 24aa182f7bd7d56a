// Package bnc extracts word and lemma frequencies from British National
// Corpus XML texts.
//
// Only <w> elements nested inside a <p> are counted. The bareword is the
// element text, trimmed and lowercased; the lemma is the lowercased hw
// attribute.
package bnc

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/heartmarshall/sentencegolf/internal/domain"
)

// WordTally is the running count of one bareword. Lemma is taken from the
// first occurrence.
type WordTally struct {
	Lemma string
	Count int
}

// Counts accumulates occurrences across one or more texts.
type Counts struct {
	Words  map[string]*WordTally
	Lemmas map[string]int
	// Total is the number of counted <w> occurrences.
	Total int
}

// NewCounts returns empty Counts.
func NewCounts() *Counts {
	return &Counts{
		Words:  make(map[string]*WordTally),
		Lemmas: make(map[string]int),
	}
}

// Add records one occurrence of word with the given lemma.
func (c *Counts) Add(word, lemma string) {
	c.Total++
	c.Lemmas[lemma]++
	if t, ok := c.Words[word]; ok {
		t.Count++
		return
	}
	c.Words[word] = &WordTally{Lemma: lemma, Count: 1}
}

// Merge folds o into c. Words already present in c keep their lemma.
func (c *Counts) Merge(o *Counts) {
	c.Total += o.Total
	for lemma, n := range o.Lemmas {
		c.Lemmas[lemma] += n
	}
	for word, t := range o.Words {
		if existing, ok := c.Words[word]; ok {
			existing.Count += t.Count
			continue
		}
		c.Words[word] = &WordTally{Lemma: t.Lemma, Count: t.Count}
	}
}

// Parse streams one BNC text and returns its counts. A <w> inside a <p>
// without an hw attribute fails the whole text.
func Parse(r io.Reader) (*Counts, error) {
	dec := xml.NewDecoder(r)
	counts := NewCounts()
	paragraphs := 0

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return counts, nil
		}
		if err != nil {
			return nil, fmt.Errorf("bnc: decode: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				paragraphs++
			case "w":
				if paragraphs == 0 {
					continue
				}
				line, _ := dec.InputPos()
				lemma, ok := attr(t, "hw")
				if !ok {
					return nil, domain.NewValidationError("w", fmt.Sprintf("line %d: missing hw attribute", line))
				}
				text, err := elementText(dec)
				if err != nil {
					return nil, fmt.Errorf("bnc: line %d: %w", line, err)
				}
				word := strings.ToLower(strings.TrimSpace(text))
				if word == "" {
					continue
				}
				counts.Add(word, strings.ToLower(strings.TrimSpace(lemma)))
			}
		case xml.EndElement:
			if t.Name.Local == "p" && paragraphs > 0 {
				paragraphs--
			}
		}
	}
}

func attr(el xml.StartElement, name string) (string, bool) {
	for _, a := range el.Attr {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

// elementText consumes tokens up to the end of the current element and
// returns its character data.
func elementText(dec *xml.Decoder) (string, error) {
	var sb strings.Builder
	depth := 1
	for depth > 0 {
		tok, err := dec.Token()
		if err != nil {
			return "", err
		}
		switch t := tok.(type) {
		case xml.CharData:
			sb.Write(t)
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
		}
	}
	return sb.String(), nil
}
