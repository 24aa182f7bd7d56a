package domain

// WordFrequencyEntry is one distinct surface word form observed in the corpus.
type WordFrequencyEntry struct {
	Word  string
	Lemma string
	Count int
}

// LemmaFrequencyEntry is one distinct lemma (dictionary base form).
type LemmaFrequencyEntry struct {
	Lemma string
	Count int
}

// CensusSummary holds total occurrence counts across the whole corpus,
// not the number of distinct entries.
type CensusSummary struct {
	BarewordCount int
	LemmaCount    int
}
