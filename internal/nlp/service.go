package nlp

import (
	"errors"
	"strings"
	"time"
)

// Service wires the pipeline stages together: normalize, classify, extract,
// enrich with sentiment, normalize again, then annotate with ambiguities
// and suggestions.
type Service struct {
	textProcessor     *TextProcessor
	intentClassifier  *IntentClassifier
	extractor         *ParameterExtractor
	sentimentAnalyzer *SentimentAnalyzer
	normalizer        *ParameterNormalizer
	validator         *ParameterValidator
	suggestionEngine  *SuggestionEngine
}

// NewService creates a fully wired NLP service. The returned value is safe
// for concurrent use.
func NewService() *Service {
	return &Service{
		textProcessor:     NewTextProcessor(),
		intentClassifier:  NewIntentClassifier(),
		extractor:         NewParameterExtractor(),
		sentimentAnalyzer: NewSentimentAnalyzer(),
		normalizer:        NewParameterNormalizer(),
		validator:         NewParameterValidator(),
		suggestionEngine:  NewSuggestionEngine(),
	}
}

// ParseCreativeInput runs the full pipeline over a creative description.
// intentType narrows the extraction; IntentMixed lets the classifier decide.
// parseCtx may carry parameters from a previous parse to refine.
func (s *Service) ParseCreativeInput(text string, intentType Intent, parseCtx *ParseContext) (result *ParseResult, err error) {
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = errors.New("failed to parse creative input")
		}
	}()

	normalized := s.textProcessor.Normalize(text)

	actualType := intentType
	if actualType == "" || actualType == IntentMixed {
		actualType = s.intentClassifier.ClassifyIntent(normalized)
	}

	var visual *VisualParameters
	var audio *AudioParameters

	if actualType == IntentVisual || actualType == IntentMixed {
		visual = s.extractor.ExtractVisualParameters(normalized)
	}
	if actualType == IntentAudio || actualType == IntentMixed {
		audio = s.extractor.ExtractAudioParameters(normalized)
	}

	if parseCtx != nil && parseCtx.PreviousParameters != nil {
		visual, audio = mergeWithPrevious(parseCtx.PreviousParameters, visual, audio)
	}

	sentimentAnalysis := s.sentimentAnalyzer.AnalyzeSentiment(normalized)

	if visual != nil {
		visual = s.sentimentAnalyzer.MapMoodToVisualParameters(sentimentAnalysis.Mood, visual)
	}
	if audio != nil {
		audio = s.sentimentAnalyzer.MapMoodToAudioParameters(sentimentAnalysis.Mood, audio)
	}

	intentConfidence := s.intentClassifier.GetClassificationConfidence(normalized)
	overallConfidence := (intentConfidence + sentimentAnalysis.Confidence) / 2

	params := ParsedParameters{
		Visual:     visual,
		Audio:      audio,
		Confidence: overallConfidence,
	}
	params = s.normalizer.NormalizeParameters(params, DefaultNormalizationOptions())

	ambiguities := s.suggestionEngine.IdentifyAmbiguities(params, normalized)
	params.Ambiguities = ambiguityFields(ambiguities)

	suggestions := s.generateSuggestions(normalized, params, ambiguities, sentimentAnalysis.Mood)

	return &ParseResult{
		Parameters:       params,
		Confidence:       overallConfidence,
		Ambiguities:      ambiguities,
		Suggestions:      suggestions,
		ProcessingTimeMs: time.Since(start).Milliseconds(),
	}, nil
}

// ValidateParameters checks parsed parameters for completeness and
// correctness.
func (s *Service) ValidateParameters(params ParsedParameters) ValidationResult {
	return s.validator.ValidateParameters(params)
}

// NormalizeParameters cleans and standardizes parameters with the default
// options.
func (s *Service) NormalizeParameters(params ParsedParameters) ParsedParameters {
	return s.normalizer.NormalizeParameters(params, DefaultNormalizationOptions())
}

// ClassifyIntent normalizes the text and picks its target modality.
func (s *Service) ClassifyIntent(text string) Intent {
	return s.intentClassifier.ClassifyIntent(s.textProcessor.Normalize(text))
}

// AnalyzeSentiment scores the text's polarity, mood and confidence.
func (s *Service) AnalyzeSentiment(text string) SentimentResult {
	return s.sentimentAnalyzer.AnalyzeSentiment(text)
}

// GenerateSuggestions produces structured suggestions for the parameters.
func (s *Service) GenerateSuggestions(params ParsedParameters, originalText string) []Suggestion {
	ambiguities := s.suggestionEngine.IdentifyAmbiguities(params, originalText)
	return s.suggestionEngine.GenerateSuggestions(params, originalText, ambiguities)
}

// SuggestImprovements returns plain-text hints for incomplete parameters.
func (s *Service) SuggestImprovements(params ParsedParameters) []string {
	suggestions := []string{}

	if params.Visual != nil {
		if len(params.Visual.Style) == 0 {
			suggestions = append(suggestions, `Add style descriptions like "realistic portrait" or "abstract landscape"`)
		}
		if len(params.Visual.Colors) == 0 {
			suggestions = append(suggestions, `Specify colors like "warm colors", "blue and gold", or "monochrome"`)
		}
		if len(params.Visual.Themes) == 0 {
			suggestions = append(suggestions, `Include themes like "nature", "urban", or "fantasy"`)
		}
	}

	if params.Audio != nil {
		if len(params.Audio.Genre) == 0 {
			suggestions = append(suggestions, `Specify musical genre like "jazz", "rock", or "classical"`)
		}
		if len(params.Audio.Instruments) == 0 {
			suggestions = append(suggestions, `Mention instruments like "piano and strings" or "electric guitar"`)
		}
		if params.Audio.Tempo == defaultTempo {
			suggestions = append(suggestions, `Specify tempo like "slow ballad", "upbeat", or "120 BPM"`)
		}
	}

	if params.Confidence < 0.5 {
		suggestions = append(suggestions, "Be more specific with descriptive words and avoid ambiguous terms")
	}
	if len(params.Ambiguities) > 0 {
		suggestions = append(suggestions, "Clarify ambiguous terms for better results")
	}

	return suggestions
}

// generateSuggestions builds the plain-text suggestion list for a parse:
// ambiguity hints first, then mood hints, then cross-modal and structural
// ones, capped at six.
func (s *Service) generateSuggestions(text string, params ParsedParameters, ambiguities []AmbiguityResolution, mood string) []string {
	suggestions := []string{}

	for _, ambiguity := range ambiguities {
		if ambiguity.Suggestion != "" {
			suggestions = append(suggestions, ambiguity.Suggestion)
		}
	}

	if mood != "" && mood != "neutral" {
		kind := "both"
		if params.Visual != nil && params.Audio == nil {
			kind = "visual"
		} else if params.Audio != nil && params.Visual == nil {
			kind = "audio"
		}
		moodVisual, moodAudio := s.sentimentAnalyzer.GetMoodParameterSuggestions(mood, kind)
		suggestions = append(suggestions, firstN(moodVisual, 2)...)
		suggestions = append(suggestions, firstN(moodAudio, 2)...)
	}

	if params.Visual != nil && params.Audio == nil && len(text) > 50 {
		suggestions = append(suggestions, "Consider adding background music to enhance your visual creation")
	}
	if params.Audio != nil && params.Visual == nil && len(text) > 50 {
		suggestions = append(suggestions, "Consider adding visual elements to create a multimedia experience")
	}

	if params.Visual != nil && len(params.Visual.Themes) == 0 {
		suggestions = append(suggestions, `Add thematic elements like "sunset", "forest", or "cityscape" for better results`)
	}
	if params.Audio != nil && params.Audio.Structure == "verse-chorus" && len(params.Audio.Genre) > 0 {
		suggestions = append(suggestions, `Consider specifying song structure like "intro-verse-chorus-bridge-outro"`)
	}

	return firstN(suggestions, 6)
}

// mergeWithPrevious folds a previous parse into the fresh extraction so a
// follow-up request refines rather than replaces. Previous list values come
// first, scalar fields prefer the fresh value when it carries signal.
func mergeWithPrevious(previous *ParsedParameters, visual *VisualParameters, audio *AudioParameters) (*VisualParameters, *AudioParameters) {
	if previous.Visual != nil {
		if visual == nil {
			copied := *previous.Visual
			visual = &copied
		} else {
			visual.Style = dedupeStrings(append(append([]string{}, previous.Visual.Style...), visual.Style...))
			visual.Colors = dedupeStrings(append(append([]string{}, previous.Visual.Colors...), visual.Colors...))
			visual.Themes = dedupeStrings(append(append([]string{}, previous.Visual.Themes...), visual.Themes...))
			if strings.TrimSpace(visual.Mood) == "" {
				visual.Mood = previous.Visual.Mood
			}
			if strings.TrimSpace(visual.Composition) == "" {
				visual.Composition = previous.Visual.Composition
			}
		}
	}

	if previous.Audio != nil {
		if audio == nil {
			copied := *previous.Audio
			audio = &copied
		} else {
			audio.Genre = dedupeStrings(append(append([]string{}, previous.Audio.Genre...), audio.Genre...))
			audio.Instruments = dedupeStrings(append(append([]string{}, previous.Audio.Instruments...), audio.Instruments...))
			if strings.TrimSpace(audio.Mood) == "" {
				audio.Mood = previous.Audio.Mood
			}
			if strings.TrimSpace(audio.Structure) == "" || audio.Structure == "verse-chorus" {
				if previous.Audio.Structure != "" {
					audio.Structure = previous.Audio.Structure
				}
			}
			// A fresh explicit tempo wins; the default defers to history.
			if audio.Tempo == defaultTempo && previous.Audio.Tempo != 0 {
				audio.Tempo = previous.Audio.Tempo
			}
		}
	}

	return visual, audio
}

func ambiguityFields(ambiguities []AmbiguityResolution) []string {
	fields := make([]string, 0, len(ambiguities))
	for _, ambiguity := range ambiguities {
		fields = append(fields, ambiguity.Field)
	}
	return fields
}

func firstN(list []string, n int) []string {
	if len(list) > n {
		return list[:n]
	}
	return list
}
