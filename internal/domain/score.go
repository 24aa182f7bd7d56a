package domain

// ScoredWord is a single token's contribution to a detailed result.
type ScoredWord struct {
	Word   string
	Score  int
	Status WordStatus
}
