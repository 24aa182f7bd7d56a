package scoring

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/sentencegolf/internal/domain"
)

// maxWordLength bounds single-word inputs and registered proper nouns.
const maxWordLength = 100

// ScoreTextInput holds parameters for scoring a sentence.
type ScoreTextInput struct {
	Text            string
	ProperNouns     []string
	ResultType      domain.ResultType // empty means simple
	NotFoundPenalty *int              // nil means the configured default
}

// Validate checks the input against the configured limits.
func (i ScoreTextInput) Validate(maxTextLength, maxProperNouns int) error {
	var errs []domain.FieldError

	if n := utf8.RuneCountInString(i.Text); n > maxTextLength {
		errs = append(errs, domain.FieldError{Field: "text", Message: fmt.Sprintf("too long (max %d characters)", maxTextLength)})
	}

	if len(i.ProperNouns) > maxProperNouns {
		errs = append(errs, domain.FieldError{Field: "properNouns", Message: fmt.Sprintf("too many (max %d)", maxProperNouns)})
	}
	for idx, noun := range i.ProperNouns {
		if strings.TrimSpace(noun) == "" {
			errs = append(errs, domain.FieldError{Field: fmt.Sprintf("properNouns[%d]", idx), Message: "required"})
		}
	}

	if i.ResultType != "" && !i.ResultType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "resultType", Message: "must be simple or detailed"})
	}

	if i.NotFoundPenalty != nil && *i.NotFoundPenalty < 0 {
		errs = append(errs, domain.FieldError{Field: "notFoundPenalty", Message: "must be at least 0"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ScoreWordInput holds parameters for scoring a single word.
type ScoreWordInput struct {
	Word            string
	NotFoundPenalty *int
}

// Validate validates the score word input.
func (i ScoreWordInput) Validate() error {
	var errs []domain.FieldError

	word := strings.TrimSpace(i.Word)
	if word == "" {
		errs = append(errs, domain.FieldError{Field: "word", Message: "required"})
	} else if utf8.RuneCountInString(word) > maxWordLength {
		errs = append(errs, domain.FieldError{Field: "word", Message: "too long"})
	}

	if i.NotFoundPenalty != nil && *i.NotFoundPenalty < 0 {
		errs = append(errs, domain.FieldError{Field: "notFoundPenalty", Message: "must be at least 0"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// validateProperNoun checks a word submitted to the shared registry.
func validateProperNoun(word string) error {
	word = strings.TrimSpace(word)
	switch {
	case word == "":
		return domain.NewValidationError("word", "required")
	case len(word) > maxWordLength:
		return domain.NewValidationError("word", "too long")
	case !domain.IsWordToken(word):
		return domain.NewValidationError("word", "must be a single word of letters and apostrophes")
	}
	return nil
}
