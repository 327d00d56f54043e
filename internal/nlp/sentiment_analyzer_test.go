package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeSentiment(t *testing.T) {
	analyzer := NewSentimentAnalyzer()

	tests := []struct {
		name      string
		input     string
		sentiment Sentiment
		mood      string
	}{
		{
			name:      "happy text is joyful",
			input:     "a happy joyful celebration",
			sentiment: SentimentPositive,
			mood:      "joyful",
		},
		{
			name:      "dark wins regardless of polarity",
			input:     "a dark gloomy night",
			sentiment: SentimentNegative,
			mood:      "dark",
		},
		{
			name:      "sad text is melancholic",
			input:     "a sad melancholic song",
			sentiment: SentimentNegative,
			mood:      "melancholic",
		},
		{
			name:      "elegant wins over polarity",
			input:     "an elegant sophisticated design",
			sentiment: SentimentPositive,
			mood:      "elegant",
		},
		{
			name:      "positive without mood keywords is uplifting",
			input:     "an amazing wonderful piece",
			sentiment: SentimentPositive,
			mood:      "uplifting",
		},
		{
			name:      "negative without mood keywords is somber",
			input:     "a terrible awful mess",
			sentiment: SentimentNegative,
			mood:      "somber",
		},
		{
			name:      "neutral with no keywords",
			input:     "a table and a chair",
			sentiment: SentimentNeutral,
			mood:      "neutral",
		},
		{
			name:      "neutral dramatic keywords",
			input:     "a striking theatrical scene",
			sentiment: SentimentNeutral,
			mood:      "dramatic",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := analyzer.AnalyzeSentiment(tt.input)
			assert.Equal(t, tt.sentiment, result.Sentiment)
			assert.Equal(t, tt.mood, result.Mood)
			assert.GreaterOrEqual(t, result.Confidence, 0.1)
			assert.LessOrEqual(t, result.Confidence, 1.0)
		})
	}
}

func TestMapMoodToVisualParameters(t *testing.T) {
	analyzer := NewSentimentAnalyzer()

	t.Run("fills empty fields", func(t *testing.T) {
		mapped := analyzer.MapMoodToVisualParameters("peaceful", &VisualParameters{})

		assert.Equal(t, "peaceful", mapped.Mood)
		assert.Equal(t, []string{"soft blue", "green", "pastel", "earth tones"}, mapped.Colors)
		assert.Equal(t, "balanced", mapped.Composition)
		assert.NotEmpty(t, mapped.Style)
		assert.NotEmpty(t, mapped.Themes)
	})

	t.Run("merges with mood values first", func(t *testing.T) {
		mapped := analyzer.MapMoodToVisualParameters("peaceful", &VisualParameters{
			Colors: []string{"blue"},
		})

		assert.Equal(t, []string{"soft blue", "green", "pastel", "earth tones", "blue"}, mapped.Colors)
	})

	t.Run("existing composition is kept", func(t *testing.T) {
		mapped := analyzer.MapMoodToVisualParameters("peaceful", &VisualParameters{
			Composition: "close-up",
		})
		assert.Equal(t, "close-up", mapped.Composition)
	})

	t.Run("unknown mood returns input unchanged", func(t *testing.T) {
		existing := &VisualParameters{Colors: []string{"blue"}}
		assert.Equal(t, existing, analyzer.MapMoodToVisualParameters("uplifting", existing))
	})
}

func TestMapMoodToAudioParameters(t *testing.T) {
	analyzer := NewSentimentAnalyzer()

	t.Run("fills empty fields and scales default tempo", func(t *testing.T) {
		mapped := analyzer.MapMoodToAudioParameters("energetic", &AudioParameters{Tempo: 120})

		assert.Equal(t, "energetic", mapped.Mood)
		assert.Equal(t, []string{"rock", "electronic", "dance"}, mapped.Genre)
		assert.Equal(t, 168, mapped.Tempo)
		assert.Equal(t, "intro-verse-chorus-verse-chorus-solo-chorus", mapped.Structure)
	})

	t.Run("explicit tempo survives", func(t *testing.T) {
		mapped := analyzer.MapMoodToAudioParameters("energetic", &AudioParameters{Tempo: 140})
		assert.Equal(t, 140, mapped.Tempo)
	})

	t.Run("zero tempo is treated as unset", func(t *testing.T) {
		mapped := analyzer.MapMoodToAudioParameters("peaceful", &AudioParameters{})
		assert.Equal(t, 84, mapped.Tempo)
	})

	t.Run("unknown mood returns input unchanged", func(t *testing.T) {
		existing := &AudioParameters{Tempo: 140}
		assert.Equal(t, existing, analyzer.MapMoodToAudioParameters("somber", existing))
	})
}

func TestGetMoodParameterSuggestions(t *testing.T) {
	analyzer := NewSentimentAnalyzer()

	t.Run("both modalities", func(t *testing.T) {
		visual, audio := analyzer.GetMoodParameterSuggestions("peaceful", "both")
		assert.Len(t, visual, 4)
		assert.Len(t, audio, 4)
		assert.Contains(t, visual[0], "peaceful")
	})

	t.Run("visual only", func(t *testing.T) {
		visual, audio := analyzer.GetMoodParameterSuggestions("dark", "visual")
		assert.NotEmpty(t, visual)
		assert.Empty(t, audio)
	})

	t.Run("unknown mood yields nothing", func(t *testing.T) {
		visual, audio := analyzer.GetMoodParameterSuggestions("uplifting", "both")
		assert.Empty(t, visual)
		assert.Empty(t, audio)
	})
}

func TestGetEmotionalIntensity(t *testing.T) {
	analyzer := NewSentimentAnalyzer()

	t.Run("caps at one", func(t *testing.T) {
		assert.InDelta(t, 1.0, analyzer.GetEmotionalIntensity("joyful joyful joyful"), 1e-9)
	})

	t.Run("zero for neutral text", func(t *testing.T) {
		assert.InDelta(t, 0.0, analyzer.GetEmotionalIntensity("a table and a chair"), 1e-9)
	})
}

func TestExtractEmotionalKeywords(t *testing.T) {
	analyzer := NewSentimentAnalyzer()

	keywords := analyzer.ExtractEmotionalKeywords("a happy but sad day")
	assert.Equal(t, []string{"happy", "sad"}, keywords)
}

func TestAnalyzeMoodProgression(t *testing.T) {
	analyzer := NewSentimentAnalyzer()

	entries := analyzer.AnalyzeMoodProgression("A happy sunny day. A dark gloomy night.")

	assert.Len(t, entries, 2)
	assert.Equal(t, "A happy sunny day", entries[0].Sentence)
	assert.Equal(t, "joyful", entries[0].Mood)
	assert.Equal(t, SentimentPositive, entries[0].Sentiment)
	assert.Greater(t, entries[0].Score, 0)

	assert.Equal(t, "dark", entries[1].Mood)
	assert.Equal(t, SentimentNegative, entries[1].Sentiment)
	assert.Less(t, entries[1].Score, 0)
}
