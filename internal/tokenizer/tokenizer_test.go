package tokenizer

import (
	"slices"
	"testing"
)

func TestWordize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "simple sentence",
			input: "I ate the apple.",
			want:  []string{"i", "ate", "the", "apple"},
		},
		{
			name:  "double clitic",
			input: "shouldn't've",
			want:  []string{"should", "n't", "'ve"},
		},
		{
			name:  "plural possessive keeps the s",
			input: "parents' meeting",
			want:  []string{"parents", "'", "meeting"},
		},
		{
			name:  "contracted would have",
			input: "he'd've",
			want:  []string{"he", "'d", "'ve"},
		},
		{
			name:  "hyphenated compound splits",
			input: "Bose-Einstein condensate",
			want:  []string{"bose", "einstein", "condensate"},
		},
		{
			name:  "quoted speech",
			input: "He said, \"Don't you cry for me, I'll be back again someday.\"",
			want: []string{
				"he", "said", "do", "n't", "you", "cry", "for", "me",
				"i", "'ll", "be", "back", "again", "someday",
			},
		},
		{
			name:  "digits are separators",
			input: "route66 to 2 places",
			want:  []string{"route", "to", "places"},
		},
		{
			name:  "uppercase clitic",
			input: "I'M HERE",
			want:  []string{"i", "'m", "here"},
		},
		{
			name:  "empty",
			input: "",
			want:  []string{},
		},
		{
			name:  "punctuation only",
			input: "?!... -- 42",
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Wordize(tt.input)
			if !slices.Equal(got, tt.want) {
				t.Errorf("Wordize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSeparateClitics(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  []string
	}{
		{"condensate", []string{"condensate"}},
		{"don't", []string{"do", "n't"}},
		{"it's", []string{"it", "'s"}},
		{"we'll", []string{"we", "'ll"}},
		{"i'm", []string{"i", "'m"}},
		{"they've", []string{"they", "'ve"}},
		{"parents'", []string{"parents", "'"}},
		{"shouldn't've", []string{"should", "n't", "'ve"}},
		// Word starting with a clitic yields no empty base.
		{"'ve", []string{"'ve"}},
		// Leading apostrophe without a recognized clitic is left alone.
		{"'tis", []string{"'tis"}},
		// Trailing text after the last match is dropped.
		{"james's", []string{"james", "'"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			got := SeparateClitics(tt.input)
			if !slices.Equal(got, tt.want) {
				t.Errorf("SeparateClitics(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestWordize_Idempotent(t *testing.T) {
	t.Parallel()

	text := "Joey and Marlow went to see Norla."
	first := Wordize(text)
	second := Wordize(text)
	if !slices.Equal(first, second) {
		t.Fatalf("Wordize not deterministic: %q vs %q", first, second)
	}
}
