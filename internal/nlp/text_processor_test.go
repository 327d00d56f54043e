package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	processor := NewTextProcessor()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "lowercases and trims",
			input:    "  Create a Peaceful Painting  ",
			expected: "create a peaceful painting",
		},
		{
			name:     "collapses whitespace",
			input:    "blue   and    gold",
			expected: "blue and gold",
		},
		{
			name:     "strips special characters",
			input:    "a dreamy @sunset# with $stars%",
			expected: "a dreamy sunset with stars",
		},
		{
			name:     "removes punctuation between words",
			input:    "bright,colorful scene",
			expected: "brightcolorful scene",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "whitespace only",
			input:    "   \t\n  ",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, processor.Normalize(tt.input))
		})
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	processor := NewTextProcessor()

	inputs := []string{
		"Create a PEACEFUL oil painting!",
		"  blue   and gold  ",
		"a dreamy @sunset# with stars",
		"",
	}

	for _, input := range inputs {
		once := processor.Normalize(input)
		twice := processor.Normalize(once)
		assert.Equal(t, once, twice, "normalize should be idempotent for %q", input)
	}
}

func TestTokenize(t *testing.T) {
	processor := NewTextProcessor()

	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "simple sentence",
			input:    "Create a peaceful painting",
			expected: []string{"create", "a", "peaceful", "painting"},
		},
		{
			name:     "empty input",
			input:    "",
			expected: []string{},
		},
		{
			name:     "punctuation is not a token",
			input:    "fast, upbeat music!",
			expected: []string{"fast", "upbeat", "music"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, processor.Tokenize(tt.input))
		})
	}
}

func TestExtractKeyPhrases(t *testing.T) {
	processor := NewTextProcessor()

	t.Run("drops stop words and action verbs", func(t *testing.T) {
		phrases := processor.ExtractKeyPhrases("Create a painting of the ocean")
		assert.Contains(t, phrases, "painting")
		assert.Contains(t, phrases, "ocean")
		assert.NotContains(t, phrases, "create")
		assert.NotContains(t, phrases, "the")
	})

	t.Run("builds adjective noun phrases", func(t *testing.T) {
		phrases := processor.ExtractKeyPhrases("a peaceful lake at dawn")
		assert.Contains(t, phrases, "peaceful")
		assert.Contains(t, phrases, "peaceful lake")
	})

	t.Run("deduplicates", func(t *testing.T) {
		phrases := processor.ExtractKeyPhrases("ocean ocean ocean")
		count := 0
		for _, p := range phrases {
			if p == "ocean" {
				count++
			}
		}
		assert.Equal(t, 1, count)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, processor.ExtractKeyPhrases(""))
	})
}

func TestStemWords(t *testing.T) {
	processor := NewTextProcessor()

	stemmed := processor.StemWords([]string{"painting", "painted", "paints"})
	assert.Len(t, stemmed, 3)
	// All inflections of "paint" share a stem.
	assert.Equal(t, stemmed[0], stemmed[1])
	assert.Equal(t, stemmed[1], stemmed[2])
}

func TestExtractSentences(t *testing.T) {
	processor := NewTextProcessor()

	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "splits on terminators",
			input:    "A happy scene. A dark night! Really?",
			expected: []string{"A happy scene", "A dark night", "Really"},
		},
		{
			name:     "single sentence without terminator",
			input:    "a quiet forest",
			expected: []string{"a quiet forest"},
		},
		{
			name:     "empty input",
			input:    "",
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, processor.ExtractSentences(tt.input))
		})
	}
}

func TestCalculateSimilarity(t *testing.T) {
	processor := NewTextProcessor()

	t.Run("identical strings score one", func(t *testing.T) {
		assert.InDelta(t, 1.0, processor.CalculateSimilarity("painting", "painting"), 1e-9)
	})

	t.Run("similar strings score high", func(t *testing.T) {
		score := processor.CalculateSimilarity("painting", "paintings")
		assert.Greater(t, score, 0.9)
	})

	t.Run("unrelated strings score lower", func(t *testing.T) {
		similar := processor.CalculateSimilarity("painting", "paintings")
		unrelated := processor.CalculateSimilarity("painting", "saxophone")
		assert.Less(t, unrelated, similar)
	})
}
