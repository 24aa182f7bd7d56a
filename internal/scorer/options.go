package scorer

import "github.com/heartmarshall/sentencegolf/internal/domain"

// DefaultNotFoundPenalty is added to a token's length when the token is
// missing from the word table or its lemma is missing from the lemma table.
const DefaultNotFoundPenalty = 10

// Options controls a single scoring call.
type Options struct {
	ProperNouns     []string
	ResultType      domain.ResultType
	NotFoundPenalty int
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the options used when none are given.
func DefaultOptions() Options {
	return Options{
		ResultType:      domain.ResultTypeSimple,
		NotFoundPenalty: DefaultNotFoundPenalty,
	}
}

// WithProperNouns excludes the given words from scoring. Matching is
// case-insensitive and exact.
func WithProperNouns(nouns ...string) Option {
	return func(o *Options) {
		o.ProperNouns = append(o.ProperNouns, nouns...)
	}
}

// WithResultType selects a simple or detailed result.
func WithResultType(rt domain.ResultType) Option {
	return func(o *Options) {
		o.ResultType = rt
	}
}

// Detailed is shorthand for WithResultType(domain.ResultTypeDetailed).
func Detailed() Option {
	return WithResultType(domain.ResultTypeDetailed)
}

// WithNotFoundPenalty overrides DefaultNotFoundPenalty.
func WithNotFoundPenalty(penalty int) Option {
	return func(o *Options) {
		o.NotFoundPenalty = penalty
	}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
