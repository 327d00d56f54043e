package nlp

import (
	"math"
	"regexp"
	"strings"
)

// NormalizationOptions controls which cleanup passes NormalizeParameters
// applies.
type NormalizationOptions struct {
	ApplyDefaults        bool
	SanitizeInput        bool
	StandardizeTerms     bool
	RemoveInvalidEntries bool
}

// DefaultNormalizationOptions enables every pass.
func DefaultNormalizationOptions() NormalizationOptions {
	return NormalizationOptions{
		ApplyDefaults:        true,
		SanitizeInput:        true,
		StandardizeTerms:     true,
		RemoveInvalidEntries: true,
	}
}

const maxListEntries = 10

var sanitizePattern = regexp.MustCompile(`[^\w\s\-.,!?()]`)

var styleStandardization = map[string]string{
	"photo":        "photorealistic",
	"realistic":    "photorealistic",
	"real":         "photorealistic",
	"painting":     "oil painting",
	"drawn":        "sketch",
	"drawing":      "sketch",
	"toon":         "cartoon",
	"animated":     "cartoon",
	"digital":      "digital art",
	"computer":     "digital art",
	"old":          "vintage",
	"retro":        "vintage",
	"new":          "modern",
	"contemporary": "modern",
}

var colorStandardization = map[string]string{
	"red":     "red",
	"crimson": "red",
	"scarlet": "red",
	"blue":    "blue",
	"azure":   "blue",
	"navy":    "dark blue",
	"green":   "green",
	"emerald": "green",
	"forest":  "forest green",
	"yellow":  "yellow",
	"gold":    "golden yellow",
	"orange":  "orange",
	"purple":  "purple",
	"violet":  "purple",
	"pink":    "pink",
	"magenta": "pink",
	"brown":   "brown",
	"tan":     "brown",
	"gray":    "gray",
	"grey":    "gray",
	"silver":  "silver gray",
	"black":   "black",
	"white":   "white",
}

var genreStandardization = map[string]string{
	"rock and roll":   "rock",
	"r&b":             "rhythm and blues",
	"rnb":             "rhythm and blues",
	"edm":             "electronic",
	"techno":          "electronic",
	"house":           "electronic",
	"trance":          "electronic",
	"dubstep":         "electronic",
	"hiphop":          "hip-hop",
	"rap":             "hip-hop",
	"classical music": "classical",
	"folk music":      "folk",
	"country music":   "country",
	"blues music":     "blues",
}

var instrumentStandardization = map[string]string{
	"guitars":         "guitar",
	"electric guitar": "guitar",
	"acoustic guitar": "guitar",
	"pianos":          "piano",
	"keyboard":        "piano",
	"keys":            "piano",
	"drums":           "drums",
	"percussion":      "drums",
	"violins":         "violin",
	"strings":         "violin",
	"bass guitar":     "bass",
	"double bass":     "bass",
	"synthesizer":     "synthesizer",
	"synth":           "synthesizer",
	"vocals":          "vocals",
	"voice":           "vocals",
	"singing":         "vocals",
}

// ParameterNormalizer cleans and standardizes parsed parameters so
// downstream generators get a consistent vocabulary and valid ranges.
type ParameterNormalizer struct{}

// NewParameterNormalizer creates a new parameter normalizer.
func NewParameterNormalizer() *ParameterNormalizer {
	return &ParameterNormalizer{}
}

// NormalizeParameters sanitizes, standardizes, deduplicates and clamps the
// parsed parameters. The operation is idempotent: running it twice yields
// the same result as running it once.
func (n *ParameterNormalizer) NormalizeParameters(params ParsedParameters, opts NormalizationOptions) ParsedParameters {
	normalized := ParsedParameters{
		Confidence:  normalizeConfidence(params.Confidence),
		Ambiguities: n.normalizeStringArray(params.Ambiguities, opts, nil),
	}

	if params.Visual != nil {
		normalized.Visual = &VisualParameters{
			Style:       n.normalizeStringArray(params.Visual.Style, opts, styleStandardization),
			Colors:      n.normalizeStringArray(params.Visual.Colors, opts, colorStandardization),
			Mood:        n.normalizeString(params.Visual.Mood, opts),
			Composition: n.normalizeString(params.Visual.Composition, opts),
			Themes:      n.normalizeStringArray(params.Visual.Themes, opts, nil),
		}
	}

	if params.Audio != nil {
		normalized.Audio = &AudioParameters{
			Genre:       n.normalizeStringArray(params.Audio.Genre, opts, genreStandardization),
			Instruments: n.normalizeStringArray(params.Audio.Instruments, opts, instrumentStandardization),
			Tempo:       normalizeTempo(params.Audio.Tempo),
			Mood:        n.normalizeString(params.Audio.Mood, opts),
			Structure:   n.normalizeString(params.Audio.Structure, opts),
		}
	}

	return normalized
}

func (n *ParameterNormalizer) normalizeStringArray(list []string, opts NormalizationOptions, standardization map[string]string) []string {
	normalized := make([]string, 0, len(list))
	for _, item := range list {
		if opts.SanitizeInput {
			item = sanitizeString(item)
		}
		if opts.RemoveInvalidEntries && strings.TrimSpace(item) == "" {
			continue
		}
		if opts.StandardizeTerms && standardization != nil {
			if canonical, ok := standardization[strings.ToLower(item)]; ok {
				item = canonical
			}
		}
		normalized = append(normalized, item)
	}

	deduped := []string{}
	seen := make(map[string]bool, len(normalized))
	for _, item := range normalized {
		if strings.TrimSpace(item) == "" || seen[item] {
			continue
		}
		seen[item] = true
		deduped = append(deduped, item)
	}

	if len(deduped) > maxListEntries {
		deduped = deduped[:maxListEntries]
	}
	return deduped
}

func (n *ParameterNormalizer) normalizeString(value string, opts NormalizationOptions) string {
	if opts.SanitizeInput {
		value = sanitizeString(value)
	}
	return strings.TrimSpace(value)
}

// sanitizeString trims, collapses whitespace, strips characters outside the
// word/punctuation whitelist and lowercases.
func sanitizeString(input string) string {
	out := strings.TrimSpace(input)
	out = whitespacePattern.ReplaceAllString(out, " ")
	out = sanitizePattern.ReplaceAllString(out, "")
	return strings.ToLower(out)
}

// normalizeTempo clamps tempo into [60, 200]; non-positive values fall back
// to the default.
func normalizeTempo(tempo int) int {
	if tempo <= 0 {
		return defaultTempo
	}
	if tempo < minTempo {
		return minTempo
	}
	if tempo > maxTempo {
		return maxTempo
	}
	return tempo
}

func normalizeConfidence(confidence float64) float64 {
	if math.IsNaN(confidence) {
		return 0
	}
	return math.Max(0, math.Min(1, confidence))
}

var themeStyleMap = map[string][]string{
	"nature":     {"photorealistic", "landscape painting"},
	"fantasy":    {"digital art", "fantasy art"},
	"urban":      {"street photography", "urban art"},
	"portrait":   {"photorealistic", "oil painting"},
	"abstract":   {"abstract art", "modern art"},
	"historical": {"classical painting", "vintage"},
	"futuristic": {"digital art", "cyberpunk"},
}

var moodColorMap = map[string][]string{
	"peaceful":   {"soft blue", "pale green"},
	"energetic":  {"bright red", "electric blue"},
	"dramatic":   {"deep red", "black"},
	"romantic":   {"soft pink", "warm red"},
	"mysterious": {"deep purple", "dark blue"},
	"happy":      {"bright yellow", "orange"},
	"sad":        {"gray", "muted blue"},
	"calm":       {"light blue", "soft green"},
}

var genreInstrumentMap = map[string][]string{
	"rock":       {"guitar", "bass", "drums"},
	"jazz":       {"piano", "saxophone", "bass"},
	"classical":  {"violin", "piano", "cello"},
	"electronic": {"synthesizer", "drums"},
	"folk":       {"guitar", "vocals"},
	"blues":      {"guitar", "harmonica", "piano"},
	"country":    {"guitar", "banjo", "fiddle"},
	"hip-hop":    {"drums", "bass", "vocals"},
}

var genreStructureMap = map[string]string{
	"rock":       "verse-chorus-verse-chorus-bridge-chorus",
	"pop":        "intro-verse-chorus-verse-chorus-bridge-chorus-outro",
	"jazz":       "head-solos-head",
	"classical":  "sonata form",
	"electronic": "intro-buildup-drop-breakdown-drop",
	"folk":       "verse-chorus-verse-chorus",
	"blues":      "12-bar blues",
	"country":    "verse-chorus-verse-chorus-bridge-chorus",
}

// ApplySmartDefaults fills empty fields from related ones: styles from
// themes, colors from mood, instruments and structure from genre.
func (n *ParameterNormalizer) ApplySmartDefaults(params ParsedParameters) ParsedParameters {
	if params.Visual != nil {
		visual := *params.Visual
		if len(visual.Style) == 0 && len(visual.Themes) > 0 {
			visual.Style = stylesForThemes(visual.Themes)
		}
		if len(visual.Colors) == 0 && visual.Mood != "" {
			visual.Colors = colorsForMood(visual.Mood)
		}
		params.Visual = &visual
	}

	if params.Audio != nil {
		audio := *params.Audio
		if len(audio.Instruments) == 0 && len(audio.Genre) > 0 {
			audio.Instruments = instrumentsForGenre(audio.Genre[0])
		}
		if audio.Structure == "" && len(audio.Genre) > 0 {
			audio.Structure = structureForGenre(audio.Genre[0])
		}
		params.Audio = &audio
	}

	return params
}

func stylesForThemes(themes []string) []string {
	for _, theme := range themes {
		if styles, ok := themeStyleMap[strings.ToLower(theme)]; ok {
			if len(styles) > 2 {
				styles = styles[:2]
			}
			return append([]string{}, styles...)
		}
	}
	return []string{"photorealistic"}
}

func colorsForMood(mood string) []string {
	if colors, ok := moodColorMap[strings.ToLower(mood)]; ok {
		return append([]string{}, colors...)
	}
	return []string{"natural colors"}
}

func instrumentsForGenre(genre string) []string {
	if instruments, ok := genreInstrumentMap[strings.ToLower(genre)]; ok {
		return append([]string{}, instruments...)
	}
	return []string{"piano"}
}

func structureForGenre(genre string) string {
	if structure, ok := genreStructureMap[strings.ToLower(genre)]; ok {
		return structure
	}
	return "verse-chorus"
}

// ValidateNormalizedParameters reports whether the parameters satisfy every
// range invariant the normalizer guarantees.
func (n *ParameterNormalizer) ValidateNormalizedParameters(params ParsedParameters) bool {
	if params.Visual == nil && params.Audio == nil {
		return false
	}
	if params.Audio != nil && (params.Audio.Tempo < minTempo || params.Audio.Tempo > maxTempo) {
		return false
	}
	if params.Confidence < 0 || params.Confidence > 1 || math.IsNaN(params.Confidence) {
		return false
	}
	return true
}
