package scoring

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/sentencegolf/internal/domain"
)

// ErrRegistryDisabled is returned by registry operations when no registry
// is configured.
var ErrRegistryDisabled = fmt.Errorf("proper noun registry: %w", domain.ErrNotFound)

// ListProperNouns returns the registered proper nouns. Without a registry
// the list is empty.
func (s *Service) ListProperNouns(ctx context.Context) ([]string, error) {
	if s.registry == nil {
		return []string{}, nil
	}
	words, err := s.registry.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list proper nouns: %w", err)
	}
	if words == nil {
		words = []string{}
	}
	return words, nil
}

// RegisterProperNoun adds a word to the shared exclusion list. Registering
// a word twice returns domain.ErrAlreadyExists.
func (s *Service) RegisterProperNoun(ctx context.Context, word string) error {
	if err := validateProperNoun(word); err != nil {
		return err
	}
	if s.registry == nil {
		return ErrRegistryDisabled
	}

	word = strings.ToLower(strings.TrimSpace(word))
	added, err := s.registry.Add(ctx, word)
	if err != nil {
		return fmt.Errorf("register proper noun: %w", err)
	}
	if !added {
		return fmt.Errorf("proper noun %q: %w", word, domain.ErrAlreadyExists)
	}

	s.log.InfoContext(ctx, "proper noun registered", slog.String("word", word))
	return nil
}

// RemoveProperNoun deletes a word from the shared exclusion list. Removing
// an unknown word succeeds.
func (s *Service) RemoveProperNoun(ctx context.Context, word string) error {
	if err := validateProperNoun(word); err != nil {
		return err
	}
	if s.registry == nil {
		return ErrRegistryDisabled
	}

	word = strings.ToLower(strings.TrimSpace(word))
	if err := s.registry.Remove(ctx, word); err != nil {
		return fmt.Errorf("remove proper noun: %w", err)
	}

	s.log.InfoContext(ctx, "proper noun removed", slog.String("word", word))
	return nil
}
