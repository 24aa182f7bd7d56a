// Package tokenizer splits sentences into the word and clitic units the
// scorer prices individually.
package tokenizer

import (
	"regexp"
	"strings"
)

var (
	// separatorRe matches runs of anything that is not a Latin letter or an
	// apostrophe. Hyphens, digits and punctuation all act as separators.
	separatorRe = regexp.MustCompile(`[^A-Za-z']+`)

	// cliticRe recognizes enclitic suffixes. It is not end-anchored.
	cliticRe = regexp.MustCompile(`(?i)n't|s'|'(?:ve|d|s|ll|m)`)
)

// possessivePlural is the only match whose leading letter stays on the base word.
const possessivePlural = "s'"

// Wordize splits text into lowercased words and detached clitics in
// left-to-right order. Empty and punctuation-only input yields an empty slice.
func Wordize(text string) []string {
	tokens := []string{}
	for _, fragment := range separatorRe.Split(text, -1) {
		if fragment == "" {
			continue
		}
		tokens = append(tokens, SeparateClitics(strings.ToLower(fragment))...)
	}
	return tokens
}

// SeparateClitics detaches clitic suffixes from word.
//
//	shouldn't've → should, n't, 've
//	parents'     → parents, '
//
// A word without clitics is returned unchanged as a single element. Text
// between matches and after the last match is dropped.
func SeparateClitics(word string) []string {
	matches := cliticRe.FindAllStringIndex(word, -1)
	if len(matches) == 0 {
		return []string{word}
	}

	tokens := make([]string, 0, len(matches)+1)

	start, end := matches[0][0], matches[0][1]
	base, clitic := word[:start], word[start:end]
	if strings.EqualFold(clitic, possessivePlural) {
		base, clitic = word[:start+1], word[start+1:end]
	}
	if base != "" {
		tokens = append(tokens, base)
	}
	tokens = append(tokens, clitic)

	for _, m := range matches[1:] {
		tokens = append(tokens, word[m[0]:m[1]])
	}
	return tokens
}
