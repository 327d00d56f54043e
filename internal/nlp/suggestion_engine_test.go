package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentifyAmbiguities(t *testing.T) {
	engine := NewSuggestionEngine()

	t.Run("vague color", func(t *testing.T) {
		ambiguities := engine.IdentifyAmbiguities(ParsedParameters{
			Visual: &VisualParameters{Colors: []string{"dark"}},
		}, "a dark scene")

		assert.Len(t, ambiguities, 1)
		assert.Equal(t, "visual.colors", ambiguities[0].Field)
		assert.Equal(t, "dark", ambiguities[0].AmbiguousTerm)
		assert.Equal(t, []string{"deep blue", "charcoal gray", "midnight black", "forest green"}, ambiguities[0].PossibleValues)
		assert.InDelta(t, 0.3, ambiguities[0].Confidence, 1e-9)
	})

	t.Run("generic style", func(t *testing.T) {
		ambiguities := engine.IdentifyAmbiguities(ParsedParameters{
			Visual: &VisualParameters{Style: []string{"artistic"}},
		}, "something artistic")

		assert.Len(t, ambiguities, 1)
		assert.Equal(t, "visual.style", ambiguities[0].Field)
		assert.Len(t, ambiguities[0].PossibleValues, 5)
		assert.InDelta(t, 0.2, ambiguities[0].Confidence, 1e-9)
	})

	t.Run("relative tempo without bpm", func(t *testing.T) {
		ambiguities := engine.IdentifyAmbiguities(ParsedParameters{
			Audio: &AudioParameters{Tempo: 140},
		}, "a fast tempo song")

		assert.Len(t, ambiguities, 1)
		assert.Equal(t, "audio.tempo", ambiguities[0].Field)
		assert.Equal(t, "fast", ambiguities[0].AmbiguousTerm)
		assert.InDelta(t, 0.4, ambiguities[0].Confidence, 1e-9)
	})

	t.Run("explicit bpm silences tempo ambiguity", func(t *testing.T) {
		ambiguities := engine.IdentifyAmbiguities(ParsedParameters{
			Audio: &AudioParameters{Tempo: 140},
		}, "a fast song at 140 bpm")

		assert.Empty(t, ambiguities)
	})

	t.Run("nothing vague", func(t *testing.T) {
		ambiguities := engine.IdentifyAmbiguities(ParsedParameters{
			Visual: &VisualParameters{Style: []string{"oil painting"}, Colors: []string{"blue"}},
		}, "a blue oil painting")

		assert.Empty(t, ambiguities)
	})
}

func TestGenerateSuggestions(t *testing.T) {
	engine := NewSuggestionEngine()

	t.Run("empty visual leads with missing style", func(t *testing.T) {
		suggestions := engine.GenerateSuggestions(ParsedParameters{
			Visual:     &VisualParameters{},
			Confidence: 0.6,
		}, "a picture", nil)

		assert.NotEmpty(t, suggestions)
		assert.Equal(t, PriorityHigh, suggestions[0].Priority)
		assert.Equal(t, "visual.style", suggestions[0].Field)
	})

	t.Run("low-confidence ambiguity becomes high-priority clarification", func(t *testing.T) {
		ambiguities := engine.IdentifyAmbiguities(ParsedParameters{
			Visual: &VisualParameters{Colors: []string{"dark"}},
		}, "a dark scene")

		suggestions := engine.GenerateSuggestions(ParsedParameters{
			Visual: &VisualParameters{
				Style:       []string{"oil painting"},
				Colors:      []string{"dark"},
				Mood:        "mysterious",
				Composition: "wide shot",
				Themes:      []string{"nature"},
			},
			Confidence: 0.8,
		}, "a dark scene", ambiguities)

		assert.Equal(t, SuggestionClarification, suggestions[0].Type)
		assert.Equal(t, PriorityHigh, suggestions[0].Priority)
		assert.Equal(t, CategoryVisual, suggestions[0].Category)
		assert.Len(t, suggestions[0].Examples, 3)
	})

	t.Run("caps at eight ordered by priority", func(t *testing.T) {
		suggestions := engine.GenerateSuggestions(ParsedParameters{
			Visual:     &VisualParameters{},
			Audio:      &AudioParameters{Tempo: defaultTempo},
			Confidence: 0.1,
		}, "hm", nil)

		assert.Len(t, suggestions, maxSuggestions)
		rank := map[SuggestionPriority]int{PriorityHigh: 0, PriorityMedium: 1, PriorityLow: 2}
		for i := 1; i < len(suggestions); i++ {
			assert.LessOrEqual(t, rank[suggestions[i-1].Priority], rank[suggestions[i].Priority])
		}
	})

	t.Run("complete parameters stay quiet", func(t *testing.T) {
		suggestions := engine.GenerateSuggestions(ParsedParameters{
			Visual: &VisualParameters{
				Style:       []string{"oil painting"},
				Colors:      []string{"blue"},
				Mood:        "peaceful",
				Composition: "balanced",
				Themes:      []string{"nature"},
			},
			Confidence: 0.8,
		}, "a peaceful blue oil painting of nature", nil)

		assert.Empty(t, suggestions)
	})
}
