// Package nlp implements the rule-based pipeline that turns free-text
// creative descriptions into structured generation parameters. Every
// component is a pure function over immutable lookup tables built at
// package init, so a single instance of each is safe for concurrent use.
package nlp

// Intent is the target modality of a creative request.
type Intent string

const (
	IntentVisual Intent = "visual"
	IntentAudio  Intent = "audio"
	IntentMixed  Intent = "mixed"
)

// Sentiment is the aggregate emotional polarity of a text.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// VisualParameters describes an image/visual generation request.
type VisualParameters struct {
	Style       []string `json:"style"`
	Colors      []string `json:"colors"`
	Mood        string   `json:"mood"`
	Composition string   `json:"composition"`
	Themes      []string `json:"themes"`
}

// AudioParameters describes a music/audio generation request.
// Tempo is in BPM and must stay within [60, 200] after normalization.
type AudioParameters struct {
	Genre       []string `json:"genre"`
	Instruments []string `json:"instruments"`
	Tempo       int      `json:"tempo"`
	Mood        string   `json:"mood"`
	Structure   string   `json:"structure"`
}

// ParsedParameters is the combined output of a parse. Visual and Audio are
// nil when the corresponding modality was not requested or detected.
// Ambiguities holds field paths such as "visual.colors".
type ParsedParameters struct {
	Visual      *VisualParameters `json:"visual,omitempty"`
	Audio       *AudioParameters  `json:"audio,omitempty"`
	Confidence  float64           `json:"confidence"`
	Ambiguities []string          `json:"ambiguities"`
}

// AmbiguityResolution describes a vague term found in the parameters and
// what it could be replaced with.
type AmbiguityResolution struct {
	Field          string   `json:"field"`
	AmbiguousTerm  string   `json:"ambiguousTerm"`
	PossibleValues []string `json:"possibleValues"`
	Suggestion     string   `json:"suggestion"`
	Confidence     float64  `json:"confidence"`
}

// SuggestionType classifies what a suggestion asks the user to do.
type SuggestionType string

const (
	SuggestionImprovement   SuggestionType = "improvement"
	SuggestionEnhancement   SuggestionType = "enhancement"
	SuggestionClarification SuggestionType = "clarification"
	SuggestionAlternative   SuggestionType = "alternative"
)

// SuggestionCategory is the modality a suggestion applies to.
type SuggestionCategory string

const (
	CategoryVisual  SuggestionCategory = "visual"
	CategoryAudio   SuggestionCategory = "audio"
	CategoryGeneral SuggestionCategory = "general"
)

// SuggestionPriority orders suggestions for display.
type SuggestionPriority string

const (
	PriorityHigh   SuggestionPriority = "high"
	PriorityMedium SuggestionPriority = "medium"
	PriorityLow    SuggestionPriority = "low"
)

// Suggestion is a structured improvement hint for the caller's UI.
type Suggestion struct {
	Type     SuggestionType     `json:"type"`
	Category SuggestionCategory `json:"category"`
	Message  string             `json:"message"`
	Field    string             `json:"field,omitempty"`
	Examples []string           `json:"examples,omitempty"`
	Priority SuggestionPriority `json:"priority"`
}

// ValidationError is a hard failure with a stable machine-readable code.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

// ValidationWarning flags missing-but-optional content; it never blocks
// processing.
type ValidationWarning struct {
	Field      string `json:"field"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
}

// ValidationResult is the outcome of validating a ParsedParameters value.
type ValidationResult struct {
	IsValid  bool                `json:"isValid"`
	Errors   []ValidationError   `json:"errors"`
	Warnings []ValidationWarning `json:"warnings"`
}

// SentimentResult is the outcome of sentiment and mood analysis.
type SentimentResult struct {
	Sentiment  Sentiment `json:"sentiment"`
	Mood       string    `json:"mood"`
	Confidence float64   `json:"confidence"`
}

// MoodProgressionEntry is the per-sentence result of AnalyzeMoodProgression.
type MoodProgressionEntry struct {
	Sentence  string    `json:"sentence"`
	Mood      string    `json:"mood"`
	Sentiment Sentiment `json:"sentiment"`
	Score     int       `json:"score"`
}

// ParseContext carries optional state from a previous parse so follow-up
// requests ("make it more blue") refine rather than replace earlier results.
type ParseContext struct {
	PreviousParameters *ParsedParameters `json:"previousParameters,omitempty"`
}

// ParseResult is the full response of Service.ParseCreativeInput.
type ParseResult struct {
	Parameters       ParsedParameters      `json:"parameters"`
	Confidence       float64               `json:"confidence"`
	Ambiguities      []AmbiguityResolution `json:"ambiguities"`
	Suggestions      []string              `json:"suggestions"`
	ProcessingTimeMs int64                 `json:"processingTimeMs"`
}
