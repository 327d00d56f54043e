package nlp

import (
	"math"
	"strings"
)

// moodKeywords boost confidence when an explicit mood word appears.
var moodConfidenceKeywords = []string{
	"happy", "sad", "angry", "peaceful", "energetic", "romantic", "playful",
	"melancholic", "dark", "mysterious", "dramatic", "elegant", "joyful",
	"intense", "nostalgic", "cheerful", "gloomy", "vibrant", "serene",
}

// lexiconScore is the raw output of a lexicon pass over the text.
type lexiconScore struct {
	score    int
	tokens   []string
	positive []string
	negative []string
}

// SentimentAnalyzer scores text against the sentiment lexicon and maps the
// resulting mood onto generation parameter defaults.
type SentimentAnalyzer struct {
	textProcessor *TextProcessor
}

// NewSentimentAnalyzer creates a new sentiment analyzer.
func NewSentimentAnalyzer() *SentimentAnalyzer {
	return &SentimentAnalyzer{textProcessor: NewTextProcessor()}
}

// analyze runs the lexicon over every token of the text.
func (a *SentimentAnalyzer) analyze(text string) lexiconScore {
	tokens := a.textProcessor.Tokenize(text)
	result := lexiconScore{tokens: tokens, positive: []string{}, negative: []string{}}

	for _, token := range tokens {
		score, ok := sentimentLexicon[token]
		if !ok {
			continue
		}
		result.score += score
		if score > 0 {
			result.positive = append(result.positive, token)
		} else if score < 0 {
			result.negative = append(result.negative, token)
		}
	}

	return result
}

// AnalyzeSentiment classifies the text's polarity, picks a mood and scores
// the analysis confidence.
func (a *SentimentAnalyzer) AnalyzeSentiment(text string) SentimentResult {
	result := a.analyze(text)

	sentiment := SentimentNeutral
	if result.score > 0 {
		sentiment = SentimentPositive
	} else if result.score < 0 {
		sentiment = SentimentNegative
	}

	return SentimentResult{
		Sentiment:  sentiment,
		Mood:       a.determineMood(text, sentiment),
		Confidence: a.calculateConfidence(text, result),
	}
}

// calculateConfidence blends score magnitude, explicit mood keywords, text
// length and emotional word density into a single score in [0.1, 1.0].
func (a *SentimentAnalyzer) calculateConfidence(text string, result lexiconScore) float64 {
	normalized := strings.ToLower(text)
	tokenCount := math.Max(float64(len(result.tokens)), 1)

	scoreConfidence := math.Min(math.Abs(float64(result.score))/tokenCount, 1.0)

	foundKeywords := 0
	for _, keyword := range moodConfidenceKeywords {
		if strings.Contains(normalized, keyword) {
			foundKeywords++
		}
	}
	keywordConfidence := math.Min(float64(foundKeywords)*0.3, 1.0)

	lengthConfidence := math.Min(float64(len(text))/100, 1.0)

	emotionalWords := float64(len(result.positive) + len(result.negative))
	densityConfidence := math.Min(emotionalWords/tokenCount*2, 1.0)

	combined := scoreConfidence*0.4 + keywordConfidence*0.3 + lengthConfidence*0.1 + densityConfidence*0.2

	return math.Max(math.Min(combined, 1.0), 0.1)
}

// determineMood picks a named mood. Dark and elegant cues win over polarity;
// after that the polarity selects which keyword groups are considered.
func (a *SentimentAnalyzer) determineMood(text string, sentiment Sentiment) string {
	normalized := strings.ToLower(text)

	if containsAny(normalized, []string{"dark", "gothic", "brooding"}) &&
		!containsAny(normalized, []string{"bright", "light", "cheerful"}) {
		return "dark"
	}
	if containsAny(normalized, []string{"elegant", "sophisticated", "refined"}) &&
		!containsAny(normalized, []string{"sad", "angry", "terrible"}) {
		return "elegant"
	}

	if sentiment == SentimentPositive {
		switch {
		case containsAny(normalized, []string{"happy", "joy", "cheerful", "bright", "sunny"}):
			return "joyful"
		case containsAny(normalized, []string{"excited", "energetic", "dynamic", "vibrant"}):
			return "energetic"
		case containsAny(normalized, []string{"peaceful", "calm", "serene", "tranquil"}):
			return "peaceful"
		case containsAny(normalized, []string{"romantic", "love", "tender", "gentle"}):
			return "romantic"
		case containsAny(normalized, []string{"playful", "fun", "whimsical", "amusing"}):
			return "playful"
		}
		return "uplifting"
	}

	if sentiment == SentimentNegative {
		switch {
		case containsAny(normalized, []string{"sad", "melancholy", "sorrowful", "gloomy"}):
			return "melancholic"
		case containsAny(normalized, []string{"angry", "aggressive", "intense", "fierce"}):
			return "intense"
		case containsAny(normalized, []string{"nostalgic", "wistful", "longing", "reminiscent"}):
			return "nostalgic"
		}
		return "somber"
	}

	switch {
	case containsAny(normalized, []string{"dramatic", "theatrical", "bold", "striking"}):
		return "dramatic"
	case containsAny(normalized, []string{"mysterious", "enigmatic", "intriguing"}):
		return "mysterious"
	}
	return "neutral"
}

// MapMoodToVisualParameters fills empty visual fields with the mood's
// defaults. Non-empty list fields are merged with the mood values first.
// Unknown moods return the input unchanged.
func (a *SentimentAnalyzer) MapMoodToVisualParameters(mood string, existing *VisualParameters) *VisualParameters {
	mapping, ok := moodVisualMappings[mood]
	if !ok {
		return existing
	}

	mapped := &VisualParameters{Mood: mood}
	if existing != nil {
		mapped.Composition = existing.Composition
	}

	if existing == nil || len(existing.Colors) == 0 {
		mapped.Colors = append([]string{}, mapping.colors...)
	} else {
		mapped.Colors = dedupeStrings(append(append([]string{}, mapping.colors...), existing.Colors...))
	}

	if existing == nil || len(existing.Style) == 0 {
		mapped.Style = append([]string{}, mapping.style...)
	} else {
		mapped.Style = dedupeStrings(append(append([]string{}, mapping.style...), existing.Style...))
	}

	if mapped.Composition == "" {
		mapped.Composition = mapping.composition
	}

	if existing == nil || len(existing.Themes) == 0 {
		mapped.Themes = append([]string{}, mapping.themes...)
	} else {
		mapped.Themes = dedupeStrings(append(append([]string{}, mapping.themes...), existing.Themes...))
	}

	return mapped
}

// MapMoodToAudioParameters fills empty audio fields with the mood's
// defaults. Tempo is only recomputed from the modifier while it still holds
// the default value, so explicit BPM requests survive enrichment.
func (a *SentimentAnalyzer) MapMoodToAudioParameters(mood string, existing *AudioParameters) *AudioParameters {
	mapping, ok := moodAudioMappings[mood]
	if !ok {
		return existing
	}

	mapped := &AudioParameters{Mood: mood}
	if existing != nil {
		mapped.Tempo = existing.Tempo
		mapped.Structure = existing.Structure
	}

	if existing == nil || len(existing.Genre) == 0 {
		mapped.Genre = append([]string{}, mapping.genre...)
	} else {
		mapped.Genre = dedupeStrings(append(append([]string{}, mapping.genre...), existing.Genre...))
	}

	if existing == nil || len(existing.Instruments) == 0 {
		mapped.Instruments = append([]string{}, mapping.instruments...)
	} else {
		mapped.Instruments = dedupeStrings(append(append([]string{}, mapping.instruments...), existing.Instruments...))
	}

	baseTempo := defaultTempo
	if existing != nil && existing.Tempo != 0 {
		baseTempo = existing.Tempo
	}
	if existing == nil || existing.Tempo == 0 || existing.Tempo == defaultTempo {
		mapped.Tempo = int(math.Round(float64(baseTempo) * mapping.tempoModifier))
	}

	if mapped.Structure == "" {
		mapped.Structure = mapping.structure
	}

	return mapped
}

// GetMoodParameterSuggestions renders human-readable hints for the mood,
// split by modality. kind is "visual", "audio" or "both".
func (a *SentimentAnalyzer) GetMoodParameterSuggestions(mood, kind string) (visual, audio []string) {
	if kind == "visual" || kind == "both" {
		if mapping, ok := moodVisualMappings[mood]; ok {
			visual = []string{
				"Try " + strings.Join(mapping.colors, " or ") + " colors for a " + mood + " feel",
				"Consider " + strings.Join(mapping.style, " or ") + " style elements",
				"Use " + mapping.composition + " composition",
				"Include themes like " + strings.Join(mapping.themes[:2], " or "),
			}
		}
	}

	if kind == "audio" || kind == "both" {
		if mapping, ok := moodAudioMappings[mood]; ok {
			pace := "moderate"
			if mapping.tempoModifier > 1 {
				pace = "faster"
			} else if mapping.tempoModifier < 1 {
				pace = "slower"
			}
			audio = []string{
				"Try " + strings.Join(mapping.genre, " or ") + " genre for " + mood + " mood",
				"Consider " + strings.Join(mapping.instruments[:2], " and ") + " instruments",
				"Use " + mapping.structure + " song structure",
				"Adjust tempo to " + pace + " pace",
			}
		}
	}

	return visual, audio
}

// GetEmotionalIntensity returns the average lexicon score magnitude per
// token, capped at 1.
func (a *SentimentAnalyzer) GetEmotionalIntensity(text string) float64 {
	result := a.analyze(text)
	intensity := math.Abs(float64(result.score)) / math.Max(float64(len(result.tokens)), 1)
	return math.Min(intensity, 1.0)
}

// ExtractEmotionalKeywords returns the lexicon words found in the text,
// positive first.
func (a *SentimentAnalyzer) ExtractEmotionalKeywords(text string) []string {
	result := a.analyze(text)
	return append(append([]string{}, result.positive...), result.negative...)
}

// AnalyzeMoodProgression analyzes each sentence of a longer text on its own,
// tracking how the mood shifts across it.
func (a *SentimentAnalyzer) AnalyzeMoodProgression(text string) []MoodProgressionEntry {
	sentences := a.textProcessor.ExtractSentences(text)
	entries := make([]MoodProgressionEntry, 0, len(sentences))

	for _, sentence := range sentences {
		analysis := a.AnalyzeSentiment(sentence)
		entries = append(entries, MoodProgressionEntry{
			Sentence:  sentence,
			Mood:      analysis.Mood,
			Sentiment: analysis.Sentiment,
			Score:     a.analyze(sentence).score,
		})
	}

	return entries
}
