package nlp

import (
	"regexp"
	"sort"
	"strings"
)

const maxSuggestions = 8

var bpmMentionPattern = regexp.MustCompile(`(?i)\d+\s*bpm`)

var knownVisualStyles = []string{
	"photorealistic", "oil painting", "watercolor", "digital art", "sketch",
	"cartoon", "anime", "abstract", "impressionist", "surreal", "minimalist",
	"vintage", "modern", "cyberpunk", "steampunk", "art nouveau", "pop art",
}

var knownColorPalettes = []string{
	"warm colors", "cool colors", "earth tones", "pastel colors", "neon colors",
	"monochrome", "black and white", "sepia", "vibrant colors", "muted colors",
	"complementary colors", "analogous colors", "triadic colors",
}

var knownVisualThemes = []string{
	"nature", "landscape", "portrait", "urban", "fantasy", "sci-fi",
	"historical", "futuristic", "abstract", "geometric", "organic",
	"architectural", "wildlife", "floral", "celestial", "underwater",
}

var knownMusicGenres = []string{
	"rock", "pop", "jazz", "classical", "electronic", "hip-hop", "country",
	"blues", "folk", "reggae", "metal", "punk", "ambient", "techno",
	"house", "trance", "dubstep", "indie", "alternative", "world music",
}

var knownInstruments = []string{
	"piano", "guitar", "violin", "drums", "bass", "saxophone", "trumpet",
	"flute", "cello", "harp", "synthesizer", "organ", "clarinet", "trombone",
	"percussion", "strings", "brass", "woodwinds", "vocals", "choir",
}

var knownMusicMoods = []string{
	"uplifting", "melancholic", "energetic", "peaceful", "dramatic",
	"romantic", "mysterious", "playful", "intense", "relaxing",
	"nostalgic", "triumphant", "dark", "bright", "contemplative",
}

var specificColorAlternatives = map[string][]string{
	"dark":     {"deep blue", "charcoal gray", "midnight black", "forest green"},
	"light":    {"pale yellow", "soft pink", "cream white", "sky blue"},
	"bright":   {"electric blue", "neon green", "vibrant red", "sunny yellow"},
	"muted":    {"sage green", "dusty rose", "slate gray", "taupe brown"},
	"colorful": {"rainbow palette", "vibrant mix", "jewel tones", "primary colors"},
}

// SuggestionEngine finds vague terms in parsed parameters and produces
// prioritized improvement hints from fixed knowledge lists.
type SuggestionEngine struct{}

// NewSuggestionEngine creates a new suggestion engine.
func NewSuggestionEngine() *SuggestionEngine {
	return &SuggestionEngine{}
}

// IdentifyAmbiguities finds vague color, style and tempo terms, each paired
// with concrete replacements.
func (s *SuggestionEngine) IdentifyAmbiguities(params ParsedParameters, originalText string) []AmbiguityResolution {
	ambiguities := []AmbiguityResolution{}

	if params.Visual != nil {
		for _, color := range params.Visual.Colors {
			lower := strings.ToLower(color)
			if alternatives, ok := specificColorAlternatives[lower]; ok {
				ambiguities = append(ambiguities, AmbiguityResolution{
					Field:          "visual.colors",
					AmbiguousTerm:  color,
					PossibleValues: alternatives,
					Suggestion:     `"` + color + `" is ambiguous. Consider specific colors like "` + alternatives[0] + `"`,
					Confidence:     0.3,
				})
			}
		}

		for _, style := range params.Visual.Style {
			if containsAnyFold([]string{style}, genericStyleTerms) {
				ambiguities = append(ambiguities, AmbiguityResolution{
					Field:          "visual.style",
					AmbiguousTerm:  style,
					PossibleValues: knownVisualStyles[:5],
					Suggestion:     `"` + style + `" is too general. Specify an art style like "photorealistic" or "oil painting"`,
					Confidence:     0.2,
				})
			}
		}
	}

	if params.Audio != nil {
		hasBPM := bpmMentionPattern.MatchString(originalText)
		if strings.Contains(originalText, "fast") && !hasBPM {
			ambiguities = append(ambiguities, AmbiguityResolution{
				Field:          "audio.tempo",
				AmbiguousTerm:  "fast",
				PossibleValues: []string{"140 BPM", "160 BPM", "180 BPM"},
				Suggestion:     `Specify exact BPM for "fast" tempo (e.g., "140 BPM" for moderately fast)`,
				Confidence:     0.4,
			})
		}
		if strings.Contains(originalText, "slow") && !hasBPM {
			ambiguities = append(ambiguities, AmbiguityResolution{
				Field:          "audio.tempo",
				AmbiguousTerm:  "slow",
				PossibleValues: []string{"60 BPM", "70 BPM", "80 BPM"},
				Suggestion:     `Specify exact BPM for "slow" tempo (e.g., "70 BPM" for ballad)`,
				Confidence:     0.4,
			})
		}
	}

	return ambiguities
}

// GenerateSuggestions builds improvement hints from the parameters and any
// detected ambiguities, sorted by priority and capped.
func (s *SuggestionEngine) GenerateSuggestions(params ParsedParameters, originalText string, ambiguities []AmbiguityResolution) []Suggestion {
	suggestions := []Suggestion{}

	for _, ambiguity := range ambiguities {
		category := CategoryAudio
		if strings.HasPrefix(ambiguity.Field, "visual") {
			category = CategoryVisual
		}
		priority := PriorityMedium
		if ambiguity.Confidence < 0.5 {
			priority = PriorityHigh
		}
		examples := ambiguity.PossibleValues
		if len(examples) > 3 {
			examples = examples[:3]
		}
		suggestions = append(suggestions, Suggestion{
			Type:     SuggestionClarification,
			Category: category,
			Message:  ambiguity.Suggestion,
			Field:    ambiguity.Field,
			Examples: examples,
			Priority: priority,
		})
	}

	if params.Visual != nil {
		suggestions = append(suggestions, s.visualSuggestions(params.Visual)...)
	}
	if params.Audio != nil {
		suggestions = append(suggestions, s.audioSuggestions(params.Audio)...)
	}
	suggestions = append(suggestions, s.generalSuggestions(params, originalText)...)

	return prioritizeAndLimit(suggestions)
}

func (s *SuggestionEngine) visualSuggestions(visual *VisualParameters) []Suggestion {
	suggestions := []Suggestion{}

	if len(visual.Style) == 0 {
		suggestions = append(suggestions, Suggestion{
			Type:     SuggestionImprovement,
			Category: CategoryVisual,
			Message:  "Add visual style for better results",
			Field:    "visual.style",
			Examples: knownVisualStyles[:4],
			Priority: PriorityHigh,
		})
	} else if containsAnyFold(visual.Style, []string{"artistic", "creative", "beautiful"}) {
		suggestions = append(suggestions, Suggestion{
			Type:     SuggestionImprovement,
			Category: CategoryVisual,
			Message:  "Replace generic style terms with specific art styles",
			Field:    "visual.style",
			Examples: knownVisualStyles[:4],
			Priority: PriorityMedium,
		})
	}

	if len(visual.Colors) == 0 {
		suggestions = append(suggestions, Suggestion{
			Type:     SuggestionImprovement,
			Category: CategoryVisual,
			Message:  "Specify colors or color palette for better visual results",
			Field:    "visual.colors",
			Examples: knownColorPalettes[:4],
			Priority: PriorityMedium,
		})
	} else if containsAnyFold(visual.Colors, ambiguousColorTerms) {
		suggestions = append(suggestions, Suggestion{
			Type:     SuggestionClarification,
			Category: CategoryVisual,
			Message:  "Use more specific color descriptions",
			Field:    "visual.colors",
			Examples: []string{"deep blue", "warm red", "forest green", "golden yellow"},
			Priority: PriorityMedium,
		})
	}

	if len(visual.Themes) == 0 {
		suggestions = append(suggestions, Suggestion{
			Type:     SuggestionEnhancement,
			Category: CategoryVisual,
			Message:  "Add thematic elements to enhance your visual",
			Field:    "visual.themes",
			Examples: knownVisualThemes[:4],
			Priority: PriorityLow,
		})
	}

	if strings.TrimSpace(visual.Mood) == "" {
		suggestions = append(suggestions, Suggestion{
			Type:     SuggestionEnhancement,
			Category: CategoryVisual,
			Message:  "Specify mood to influence the visual atmosphere",
			Field:    "visual.mood",
			Examples: []string{"peaceful", "dramatic", "energetic", "mysterious"},
			Priority: PriorityMedium,
		})
	}

	if strings.TrimSpace(visual.Composition) == "" {
		suggestions = append(suggestions, Suggestion{
			Type:     SuggestionEnhancement,
			Category: CategoryVisual,
			Message:  "Consider specifying composition for better framing",
			Field:    "visual.composition",
			Examples: []string{"close-up", "wide shot", "bird's eye view", "rule of thirds"},
			Priority: PriorityLow,
		})
	}

	return suggestions
}

func (s *SuggestionEngine) audioSuggestions(audio *AudioParameters) []Suggestion {
	suggestions := []Suggestion{}

	if len(audio.Genre) == 0 {
		suggestions = append(suggestions, Suggestion{
			Type:     SuggestionImprovement,
			Category: CategoryAudio,
			Message:  "Specify musical genre for better audio generation",
			Field:    "audio.genre",
			Examples: knownMusicGenres[:4],
			Priority: PriorityHigh,
		})
	}

	if len(audio.Instruments) == 0 {
		suggestions = append(suggestions, Suggestion{
			Type:     SuggestionImprovement,
			Category: CategoryAudio,
			Message:  "Add instruments to define the musical arrangement",
			Field:    "audio.instruments",
			Examples: knownInstruments[:4],
			Priority: PriorityMedium,
		})
	}

	if audio.Tempo == defaultTempo {
		suggestions = append(suggestions, Suggestion{
			Type:     SuggestionEnhancement,
			Category: CategoryAudio,
			Message:  "Specify tempo for more precise musical timing",
			Field:    "audio.tempo",
			Examples: []string{"slow (70-90 BPM)", "moderate (90-120 BPM)", "fast (120-140 BPM)", "very fast (140+ BPM)"},
			Priority: PriorityLow,
		})
	}

	if strings.TrimSpace(audio.Mood) == "" {
		suggestions = append(suggestions, Suggestion{
			Type:     SuggestionEnhancement,
			Category: CategoryAudio,
			Message:  "Add mood to influence the musical atmosphere",
			Field:    "audio.mood",
			Examples: knownMusicMoods[:4],
			Priority: PriorityMedium,
		})
	}

	if strings.TrimSpace(audio.Structure) == "" {
		suggestions = append(suggestions, Suggestion{
			Type:     SuggestionEnhancement,
			Category: CategoryAudio,
			Message:  "Consider specifying song structure",
			Field:    "audio.structure",
			Examples: []string{"verse-chorus", "AABA", "intro-verse-chorus-bridge-outro", "free form"},
			Priority: PriorityLow,
		})
	}

	return suggestions
}

func (s *SuggestionEngine) generalSuggestions(params ParsedParameters, originalText string) []Suggestion {
	suggestions := []Suggestion{}

	if params.Confidence < 0.3 {
		suggestions = append(suggestions, Suggestion{
			Type:     SuggestionImprovement,
			Category: CategoryGeneral,
			Message:  "Low confidence detected. Be more specific with your descriptions",
			Examples: []string{"Use descriptive adjectives", "Mention specific styles or genres", "Add more detail"},
			Priority: PriorityHigh,
		})
	}

	if len(params.Ambiguities) > 2 {
		suggestions = append(suggestions, Suggestion{
			Type:     SuggestionClarification,
			Category: CategoryGeneral,
			Message:  "Multiple ambiguous terms detected. Consider clarifying your descriptions",
			Examples: []string{"Replace vague terms with specific ones", "Use examples", "Be more descriptive"},
			Priority: PriorityMedium,
		})
	}

	if params.Visual != nil && params.Audio == nil && len(originalText) > 50 {
		suggestions = append(suggestions, Suggestion{
			Type:     SuggestionEnhancement,
			Category: CategoryGeneral,
			Message:  "Consider adding background music to enhance your visual creation",
			Examples: []string{"ambient music", "matching mood soundtrack", "instrumental background"},
			Priority: PriorityLow,
		})
	}

	if params.Audio != nil && params.Visual == nil && len(originalText) > 50 {
		suggestions = append(suggestions, Suggestion{
			Type:     SuggestionEnhancement,
			Category: CategoryGeneral,
			Message:  "Consider adding visual elements to create a multimedia experience",
			Examples: []string{"album cover art", "music visualization", "abstract visuals"},
			Priority: PriorityLow,
		})
	}

	return suggestions
}

// prioritizeAndLimit orders suggestions high before medium before low,
// keeping the original order inside each band, and caps the list.
func prioritizeAndLimit(suggestions []Suggestion) []Suggestion {
	rank := map[SuggestionPriority]int{PriorityHigh: 0, PriorityMedium: 1, PriorityLow: 2}
	sort.SliceStable(suggestions, func(i, j int) bool {
		return rank[suggestions[i].Priority] < rank[suggestions[j].Priority]
	})
	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return suggestions
}
