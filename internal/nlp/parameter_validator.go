package nlp

import "strings"

// Validation error codes.
const (
	CodeNoParameters             = "NO_PARAMETERS"
	CodeInvalidConfidence        = "INVALID_CONFIDENCE"
	CodeInvalidTempoRange        = "INVALID_TEMPO_RANGE"
	CodeInvalidStyleEntries      = "INVALID_STYLE_ENTRIES"
	CodeInvalidColorEntries      = "INVALID_COLOR_ENTRIES"
	CodeInvalidThemeEntries      = "INVALID_THEME_ENTRIES"
	CodeInvalidGenreEntries      = "INVALID_GENRE_ENTRIES"
	CodeInvalidInstrumentEntries = "INVALID_INSTRUMENT_ENTRIES"
)

// ValidationSeverity summarizes how actionable a validation outcome is.
type ValidationSeverity string

const (
	SeverityError   ValidationSeverity = "error"
	SeverityWarning ValidationSeverity = "warning"
	SeverityInfo    ValidationSeverity = "info"
	SeveritySuccess ValidationSeverity = "success"
)

var genericStyleTerms = []string{"artistic", "creative", "beautiful", "nice", "good"}

var ambiguousColorTerms = []string{"dark", "light", "bright", "muted", "colorful"}

// ParameterValidator checks parsed parameters for completeness and
// correctness before they are handed to a generator.
type ParameterValidator struct{}

// NewParameterValidator creates a new parameter validator.
func NewParameterValidator() *ParameterValidator {
	return &ParameterValidator{}
}

// ValidateParameters collects every error and warning; warnings never make
// the result invalid.
func (v *ParameterValidator) ValidateParameters(params ParsedParameters) ValidationResult {
	errors := []ValidationError{}
	warnings := []ValidationWarning{}

	if params.Visual == nil && params.Audio == nil {
		errors = append(errors, ValidationError{
			Field:   "parameters",
			Message: "At least one parameter type (visual or audio) must be specified",
			Code:    CodeNoParameters,
		})
	}

	if params.Visual != nil {
		errors, warnings = v.validateVisual(params.Visual, errors, warnings)
	}
	if params.Audio != nil {
		errors, warnings = v.validateAudio(params.Audio, errors, warnings)
	}

	if params.Confidence < 0 || params.Confidence > 1 {
		errors = append(errors, ValidationError{
			Field:   "confidence",
			Message: "Confidence must be between 0 and 1",
			Code:    CodeInvalidConfidence,
		})
	}

	if params.Confidence < 0.3 {
		warnings = append(warnings, ValidationWarning{
			Field:      "confidence",
			Message:    "Low confidence in parameter extraction",
			Suggestion: "Consider providing more specific descriptions",
		})
	}

	return ValidationResult{
		IsValid:  len(errors) == 0,
		Errors:   errors,
		Warnings: warnings,
	}
}

func (v *ParameterValidator) validateVisual(visual *VisualParameters, errors []ValidationError, warnings []ValidationWarning) ([]ValidationError, []ValidationWarning) {
	if hasEmptyEntries(visual.Style) {
		errors = append(errors, ValidationError{
			Field:   "visual.style",
			Message: "All style entries must be non-empty strings",
			Code:    CodeInvalidStyleEntries,
		})
	}
	if len(visual.Style) == 0 {
		warnings = append(warnings, ValidationWarning{
			Field:      "visual.style",
			Message:    "No visual style specified",
			Suggestion: `Consider adding style keywords like "realistic", "abstract", or "cartoon"`,
		})
	}
	if containsAnyFold(visual.Style, genericStyleTerms) {
		warnings = append(warnings, ValidationWarning{
			Field:      "visual.style",
			Message:    "Generic style terms detected",
			Suggestion: `Use more specific style descriptions like "oil painting", "digital art", or "photorealistic"`,
		})
	}

	if hasEmptyEntries(visual.Colors) {
		errors = append(errors, ValidationError{
			Field:   "visual.colors",
			Message: "All color entries must be non-empty strings",
			Code:    CodeInvalidColorEntries,
		})
	}
	if len(visual.Colors) == 0 {
		warnings = append(warnings, ValidationWarning{
			Field:      "visual.colors",
			Message:    "No colors specified",
			Suggestion: "Consider adding color descriptions for better results",
		})
	}
	if containsAnyFold(visual.Colors, ambiguousColorTerms) {
		warnings = append(warnings, ValidationWarning{
			Field:      "visual.colors",
			Message:    "Ambiguous color terms detected",
			Suggestion: `Use specific color names like "deep blue", "warm red", or "forest green"`,
		})
	}

	if strings.TrimSpace(visual.Mood) == "" {
		warnings = append(warnings, ValidationWarning{
			Field:      "visual.mood",
			Message:    "No mood specified",
			Suggestion: `Consider adding mood keywords like "peaceful", "energetic", or "dramatic"`,
		})
	}

	if hasEmptyEntries(visual.Themes) {
		errors = append(errors, ValidationError{
			Field:   "visual.themes",
			Message: "All theme entries must be non-empty strings",
			Code:    CodeInvalidThemeEntries,
		})
	}
	if len(visual.Themes) == 0 {
		warnings = append(warnings, ValidationWarning{
			Field:      "visual.themes",
			Message:    "No themes specified",
			Suggestion: `Add thematic elements like "nature", "urban", or "fantasy" for better results`,
		})
	}

	return errors, warnings
}

func (v *ParameterValidator) validateAudio(audio *AudioParameters, errors []ValidationError, warnings []ValidationWarning) ([]ValidationError, []ValidationWarning) {
	if hasEmptyEntries(audio.Genre) {
		errors = append(errors, ValidationError{
			Field:   "audio.genre",
			Message: "All genre entries must be non-empty strings",
			Code:    CodeInvalidGenreEntries,
		})
	}
	if len(audio.Genre) == 0 {
		warnings = append(warnings, ValidationWarning{
			Field:      "audio.genre",
			Message:    "No musical genre specified",
			Suggestion: `Consider adding genre keywords like "rock", "jazz", or "electronic"`,
		})
	}

	if hasEmptyEntries(audio.Instruments) {
		errors = append(errors, ValidationError{
			Field:   "audio.instruments",
			Message: "All instrument entries must be non-empty strings",
			Code:    CodeInvalidInstrumentEntries,
		})
	}
	if len(audio.Instruments) == 0 {
		warnings = append(warnings, ValidationWarning{
			Field:      "audio.instruments",
			Message:    "No instruments specified",
			Suggestion: `Consider adding instrument names like "piano", "guitar", or "drums"`,
		})
	}

	if audio.Tempo < minTempo || audio.Tempo > maxTempo {
		errors = append(errors, ValidationError{
			Field:   "audio.tempo",
			Message: "Tempo must be between 60 and 200 BPM",
			Code:    CodeInvalidTempoRange,
		})
	}
	if audio.Tempo == defaultTempo {
		warnings = append(warnings, ValidationWarning{
			Field:      "audio.tempo",
			Message:    "Using default tempo",
			Suggestion: `Specify tempo like "slow ballad", "upbeat", or specific BPM for better results`,
		})
	}

	if strings.TrimSpace(audio.Mood) == "" {
		warnings = append(warnings, ValidationWarning{
			Field:      "audio.mood",
			Message:    "No mood specified",
			Suggestion: `Consider adding mood keywords like "uplifting", "melancholic", or "energetic"`,
		})
	}

	if strings.TrimSpace(audio.Structure) == "" {
		warnings = append(warnings, ValidationWarning{
			Field:      "audio.structure",
			Message:    "No structure specified",
			Suggestion: `Consider specifying song structure like "verse-chorus" or "intro-verse-chorus-bridge-outro"`,
		})
	}

	return errors, warnings
}

// IsCompleteForGeneration reports whether each present modality carries at
// least one meaningful field and the parse is confident enough to act on.
func (v *ParameterValidator) IsCompleteForGeneration(params ParsedParameters) bool {
	if params.Visual == nil && params.Audio == nil {
		return false
	}

	if params.Visual != nil {
		hasMinimal := len(params.Visual.Style) > 0 ||
			len(params.Visual.Colors) > 0 ||
			params.Visual.Mood != "" ||
			len(params.Visual.Themes) > 0
		if !hasMinimal {
			return false
		}
	}

	if params.Audio != nil {
		hasMinimal := len(params.Audio.Genre) > 0 ||
			len(params.Audio.Instruments) > 0 ||
			params.Audio.Mood != ""
		if !hasMinimal {
			return false
		}
	}

	return params.Confidence >= 0.2
}

// GetValidationSeverity summarizes the overall state for UI display.
func (v *ParameterValidator) GetValidationSeverity(params ParsedParameters) ValidationSeverity {
	if params.Visual == nil && params.Audio == nil {
		return SeverityError
	}
	if params.Confidence < 0.3 {
		return SeverityWarning
	}
	if len(params.Ambiguities) > 2 {
		return SeverityWarning
	}
	if params.Confidence >= 0.7 && len(params.Ambiguities) == 0 {
		return SeveritySuccess
	}
	return SeverityInfo
}

func hasEmptyEntries(list []string) bool {
	for _, item := range list {
		if strings.TrimSpace(item) == "" {
			return true
		}
	}
	return false
}

func containsAnyFold(list, terms []string) bool {
	for _, item := range list {
		lower := strings.ToLower(item)
		for _, term := range terms {
			if lower == term {
				return true
			}
		}
	}
	return false
}
