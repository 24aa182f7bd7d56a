package domain

// WordStatus reports whether a token was priced from the frequency tables.
type WordStatus string

const (
	WordStatusFound    WordStatus = "FOUND"
	WordStatusNotFound WordStatus = "NOT_FOUND"
)

func (s WordStatus) String() string { return string(s) }

func (s WordStatus) IsValid() bool {
	switch s {
	case WordStatusFound, WordStatusNotFound:
		return true
	}
	return false
}

// ResultType selects the shape of a sentence scoring result.
type ResultType string

const (
	ResultTypeSimple   ResultType = "simple"
	ResultTypeDetailed ResultType = "detailed"
)

func (t ResultType) String() string { return string(t) }

func (t ResultType) IsValid() bool {
	switch t {
	case ResultTypeSimple, ResultTypeDetailed:
		return true
	}
	return false
}
