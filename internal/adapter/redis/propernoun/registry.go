// Package propernoun stores the always-excluded proper nouns in a Redis set.
package propernoun

import (
	"context"
	"fmt"
	"slices"

	"github.com/redis/go-redis/v9"

	"github.com/heartmarshall/sentencegolf/internal/domain"
)

// DefaultKey is the Redis set used when none is configured.
const DefaultKey = "proper_nouns"

// Registry wraps a Redis client to store proper nouns. Words are stored
// lowercased so membership is case-insensitive.
type Registry struct {
	client *redis.Client
	key    string
}

// New creates a Registry over the given set key.
func New(client *redis.Client, key string) *Registry {
	if key == "" {
		key = DefaultKey
	}
	return &Registry{client: client, key: key}
}

// Add inserts a word. It reports whether the word was not already present.
func (r *Registry) Add(ctx context.Context, word string) (bool, error) {
	n, err := r.client.SAdd(ctx, r.key, normalize(word)).Result()
	if err != nil {
		return false, fmt.Errorf("propernoun: add %q: %w", word, err)
	}
	return n > 0, nil
}

// Remove deletes a word. Removing an absent word is not an error.
func (r *Registry) Remove(ctx context.Context, word string) error {
	if err := r.client.SRem(ctx, r.key, normalize(word)).Err(); err != nil {
		return fmt.Errorf("propernoun: remove %q: %w", word, err)
	}
	return nil
}

// All returns every registered word in sorted order.
func (r *Registry) All(ctx context.Context) ([]string, error) {
	words, err := r.client.SMembers(ctx, r.key).Result()
	if err != nil {
		return nil, fmt.Errorf("propernoun: list: %w", err)
	}
	slices.Sort(words)
	return words, nil
}

// Ping checks the connection.
func (r *Registry) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func normalize(word string) string {
	return domain.NormalizeText(word)
}
