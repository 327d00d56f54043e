package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func errorCodes(result ValidationResult) []string {
	codes := make([]string, 0, len(result.Errors))
	for _, err := range result.Errors {
		codes = append(codes, err.Code)
	}
	return codes
}

func warningFields(result ValidationResult) []string {
	fields := make([]string, 0, len(result.Warnings))
	for _, warning := range result.Warnings {
		fields = append(fields, warning.Field)
	}
	return fields
}

func TestValidateParameters(t *testing.T) {
	validator := NewParameterValidator()

	t.Run("no parameters at all", func(t *testing.T) {
		result := validator.ValidateParameters(ParsedParameters{Confidence: 0.5})

		assert.False(t, result.IsValid)
		assert.Contains(t, errorCodes(result), CodeNoParameters)
	})

	t.Run("tempo out of range", func(t *testing.T) {
		result := validator.ValidateParameters(ParsedParameters{
			Audio:      &AudioParameters{Tempo: 250, Genre: []string{"rock"}},
			Confidence: 0.5,
		})

		assert.False(t, result.IsValid)
		assert.Contains(t, errorCodes(result), CodeInvalidTempoRange)
	})

	t.Run("confidence out of range", func(t *testing.T) {
		result := validator.ValidateParameters(ParsedParameters{
			Visual:     &VisualParameters{Style: []string{"sketch"}},
			Confidence: 1.5,
		})

		assert.False(t, result.IsValid)
		assert.Contains(t, errorCodes(result), CodeInvalidConfidence)
	})

	t.Run("blank list entries are errors", func(t *testing.T) {
		result := validator.ValidateParameters(ParsedParameters{
			Visual: &VisualParameters{
				Style:  []string{"sketch", "  "},
				Colors: []string{""},
				Themes: []string{"nature", ""},
			},
			Audio: &AudioParameters{
				Genre:       []string{" "},
				Instruments: []string{""},
				Tempo:       100,
			},
			Confidence: 0.5,
		})

		codes := errorCodes(result)
		assert.Contains(t, codes, CodeInvalidStyleEntries)
		assert.Contains(t, codes, CodeInvalidColorEntries)
		assert.Contains(t, codes, CodeInvalidThemeEntries)
		assert.Contains(t, codes, CodeInvalidGenreEntries)
		assert.Contains(t, codes, CodeInvalidInstrumentEntries)
	})

	t.Run("warnings never invalidate", func(t *testing.T) {
		result := validator.ValidateParameters(ParsedParameters{
			Visual:     &VisualParameters{},
			Audio:      &AudioParameters{Tempo: 120},
			Confidence: 0.2,
		})

		assert.True(t, result.IsValid)
		assert.Empty(t, result.Errors)

		fields := warningFields(result)
		assert.Contains(t, fields, "visual.style")
		assert.Contains(t, fields, "visual.colors")
		assert.Contains(t, fields, "visual.mood")
		assert.Contains(t, fields, "audio.genre")
		assert.Contains(t, fields, "audio.tempo")
		assert.Contains(t, fields, "confidence")
	})

	t.Run("generic and ambiguous terms warn", func(t *testing.T) {
		result := validator.ValidateParameters(ParsedParameters{
			Visual: &VisualParameters{
				Style:  []string{"artistic"},
				Colors: []string{"dark"},
				Mood:   "peaceful",
				Themes: []string{"nature"},
			},
			Confidence: 0.8,
		})

		assert.True(t, result.IsValid)
		fields := warningFields(result)
		assert.Contains(t, fields, "visual.style")
		assert.Contains(t, fields, "visual.colors")
	})

	t.Run("complete parameters pass cleanly", func(t *testing.T) {
		result := validator.ValidateParameters(ParsedParameters{
			Visual: &VisualParameters{
				Style:       []string{"oil painting"},
				Colors:      []string{"blue"},
				Mood:        "peaceful",
				Composition: "balanced",
				Themes:      []string{"nature"},
			},
			Audio: &AudioParameters{
				Genre:       []string{"jazz"},
				Instruments: []string{"piano"},
				Tempo:       140,
				Mood:        "uplifting",
				Structure:   "head-solos-head",
			},
			Confidence: 0.8,
		})

		assert.True(t, result.IsValid)
		assert.Empty(t, result.Errors)
		assert.Empty(t, result.Warnings)
	})
}

func TestIsCompleteForGeneration(t *testing.T) {
	validator := NewParameterValidator()

	tests := []struct {
		name     string
		params   ParsedParameters
		expected bool
	}{
		{
			name:     "no modalities",
			params:   ParsedParameters{Confidence: 0.9},
			expected: false,
		},
		{
			name: "visual with mood only",
			params: ParsedParameters{
				Visual:     &VisualParameters{Mood: "peaceful"},
				Confidence: 0.5,
			},
			expected: true,
		},
		{
			name: "visual with nothing",
			params: ParsedParameters{
				Visual:     &VisualParameters{},
				Confidence: 0.9,
			},
			expected: false,
		},
		{
			name: "confidence below threshold",
			params: ParsedParameters{
				Visual:     &VisualParameters{Mood: "peaceful"},
				Confidence: 0.1,
			},
			expected: false,
		},
		{
			name: "audio with genre",
			params: ParsedParameters{
				Audio:      &AudioParameters{Genre: []string{"jazz"}, Tempo: 120},
				Confidence: 0.4,
			},
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, validator.IsCompleteForGeneration(tt.params))
		})
	}
}

func TestGetValidationSeverity(t *testing.T) {
	validator := NewParameterValidator()

	tests := []struct {
		name     string
		params   ParsedParameters
		expected ValidationSeverity
	}{
		{
			name:     "no modalities is an error",
			params:   ParsedParameters{Confidence: 0.9},
			expected: SeverityError,
		},
		{
			name: "low confidence warns",
			params: ParsedParameters{
				Visual:     &VisualParameters{},
				Confidence: 0.2,
			},
			expected: SeverityWarning,
		},
		{
			name: "many ambiguities warn",
			params: ParsedParameters{
				Visual:      &VisualParameters{},
				Confidence:  0.8,
				Ambiguities: []string{"a", "b", "c"},
			},
			expected: SeverityWarning,
		},
		{
			name: "confident and unambiguous succeeds",
			params: ParsedParameters{
				Visual:     &VisualParameters{},
				Confidence: 0.8,
			},
			expected: SeveritySuccess,
		},
		{
			name: "middling confidence is info",
			params: ParsedParameters{
				Visual:     &VisualParameters{},
				Confidence: 0.5,
			},
			expected: SeverityInfo,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, validator.GetValidationSeverity(tt.params))
		})
	}
}
