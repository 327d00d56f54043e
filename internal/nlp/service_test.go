package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCreativeInputAudio(t *testing.T) {
	service := NewService()

	result, err := service.ParseCreativeInput("Compose an upbeat jazz song with piano and saxophone at 140 BPM", IntentMixed, nil)
	require.NoError(t, err)
	require.NotNil(t, result)

	require.NotNil(t, result.Parameters.Audio)
	assert.Nil(t, result.Parameters.Visual)
	assert.Contains(t, result.Parameters.Audio.Genre, "jazz")
	assert.Contains(t, result.Parameters.Audio.Instruments, "piano")
	assert.Contains(t, result.Parameters.Audio.Instruments, "saxophone")
	assert.Equal(t, 140, result.Parameters.Audio.Tempo)

	assert.Greater(t, result.Confidence, 0.0)
	assert.GreaterOrEqual(t, result.ProcessingTimeMs, int64(0))
}

func TestParseCreativeInputVisual(t *testing.T) {
	service := NewService()

	result, err := service.ParseCreativeInput("Create a peaceful oil painting with blue colors", IntentMixed, nil)
	require.NoError(t, err)

	require.NotNil(t, result.Parameters.Visual)
	assert.Nil(t, result.Parameters.Audio)
	assert.Equal(t, "peaceful", result.Parameters.Visual.Mood)
	assert.Contains(t, result.Parameters.Visual.Style, "oil painting")
	assert.Contains(t, result.Parameters.Visual.Colors, "blue")
	// Mood enrichment prepends its palette before the extracted colors.
	assert.Contains(t, result.Parameters.Visual.Colors, "soft blue")
}

func TestParseCreativeInputEmptyText(t *testing.T) {
	service := NewService()

	result, err := service.ParseCreativeInput("", IntentMixed, nil)
	require.NoError(t, err)

	require.NotNil(t, result.Parameters.Audio)
	assert.Equal(t, 120, result.Parameters.Audio.Tempo)
	assert.GreaterOrEqual(t, result.Confidence, 0.1)
}

func TestParseCreativeInputMergesPreviousParameters(t *testing.T) {
	service := NewService()

	previous := &ParsedParameters{
		Audio: &AudioParameters{
			Genre:       []string{"rock"},
			Instruments: []string{"guitar"},
			Tempo:       140,
		},
	}

	result, err := service.ParseCreativeInput("add some piano", IntentAudio, &ParseContext{PreviousParameters: previous})
	require.NoError(t, err)

	require.NotNil(t, result.Parameters.Audio)
	assert.Nil(t, result.Parameters.Visual)
	assert.Equal(t, []string{"rock"}, result.Parameters.Audio.Genre)
	assert.Equal(t, []string{"guitar", "piano"}, result.Parameters.Audio.Instruments)
	assert.Equal(t, 140, result.Parameters.Audio.Tempo)
}

func TestParseCreativeInputRespectsExplicitIntent(t *testing.T) {
	service := NewService()

	result, err := service.ParseCreativeInput("create a peaceful oil painting with blue colors", IntentAudio, nil)
	require.NoError(t, err)

	assert.Nil(t, result.Parameters.Visual)
	assert.NotNil(t, result.Parameters.Audio)
}

func TestParseCreativeInputReportsAmbiguities(t *testing.T) {
	service := NewService()

	result, err := service.ParseCreativeInput("a fast song with guitar", IntentAudio, nil)
	require.NoError(t, err)

	require.NotEmpty(t, result.Ambiguities)
	assert.Equal(t, "audio.tempo", result.Ambiguities[0].Field)
	assert.Contains(t, result.Parameters.Ambiguities, "audio.tempo")
	assert.NotEmpty(t, result.Suggestions)
	assert.LessOrEqual(t, len(result.Suggestions), 6)
}

func TestServiceClassifyIntent(t *testing.T) {
	service := NewService()

	assert.Equal(t, IntentVisual, service.ClassifyIntent("Draw a realistic PORTRAIT"))
	assert.Equal(t, IntentAudio, service.ClassifyIntent("compose an upbeat jazz song with piano"))
}

func TestServiceValidateParameters(t *testing.T) {
	service := NewService()

	result := service.ValidateParameters(ParsedParameters{Confidence: 0.5})
	assert.False(t, result.IsValid)
	assert.Equal(t, CodeNoParameters, result.Errors[0].Code)
}

func TestSuggestImprovements(t *testing.T) {
	service := NewService()

	t.Run("empty visual", func(t *testing.T) {
		suggestions := service.SuggestImprovements(ParsedParameters{
			Visual:     &VisualParameters{},
			Confidence: 0.8,
		})

		assert.Contains(t, suggestions, `Add style descriptions like "realistic portrait" or "abstract landscape"`)
		assert.Contains(t, suggestions, `Specify colors like "warm colors", "blue and gold", or "monochrome"`)
		assert.Contains(t, suggestions, `Include themes like "nature", "urban", or "fantasy"`)
	})

	t.Run("default tempo and low confidence", func(t *testing.T) {
		suggestions := service.SuggestImprovements(ParsedParameters{
			Audio:      &AudioParameters{Genre: []string{"jazz"}, Instruments: []string{"piano"}, Tempo: 120},
			Confidence: 0.3,
		})

		assert.Contains(t, suggestions, `Specify tempo like "slow ballad", "upbeat", or "120 BPM"`)
		assert.Contains(t, suggestions, "Be more specific with descriptive words and avoid ambiguous terms")
	})

	t.Run("complete parameters", func(t *testing.T) {
		suggestions := service.SuggestImprovements(ParsedParameters{
			Audio:      &AudioParameters{Genre: []string{"jazz"}, Instruments: []string{"piano"}, Tempo: 140},
			Confidence: 0.8,
		})

		assert.Empty(t, suggestions)
	})
}
