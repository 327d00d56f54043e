package nlp

import (
	"regexp"
	"strconv"
	"strings"
)

// Tempo bounds in BPM accepted from explicit "N bpm" style input.
const (
	minTempo     = 60
	maxTempo     = 200
	defaultTempo = 120
)

// keywordEntry maps a canonical term to its synonyms. Entries are kept in
// slices (not maps) so extraction output order is deterministic.
type keywordEntry struct {
	canonical string
	synonyms  []string
}

var visualStyleKeywords = []keywordEntry{
	{"realistic", []string{"photorealistic", "lifelike", "detailed", "high resolution"}},
	{"abstract", []string{"non-representational", "conceptual", "geometric", "expressionist"}},
	{"cartoon", []string{"animated", "comic", "illustration", "stylized"}},
	{"anime", []string{"manga", "japanese animation", "cel shaded"}},
	{"oil painting", []string{"traditional", "classical", "renaissance", "baroque"}},
	{"watercolor", []string{"soft", "flowing", "transparent", "delicate"}},
	{"digital art", []string{"computer generated", "cgi", "digital painting"}},
	{"minimalist", []string{"simple", "clean", "sparse", "uncluttered"}},
	{"surreal", []string{"dreamlike", "fantastical", "impossible", "bizarre"}},
	{"impressionist", []string{"monet", "renoir", "loose brushstrokes", "light effects"}},
}

var colorKeywords = []keywordEntry{
	{"red", []string{"crimson", "scarlet", "burgundy", "maroon", "cherry"}},
	{"blue", []string{"azure", "navy", "cobalt", "cerulean", "sapphire"}},
	{"green", []string{"emerald", "forest", "lime", "olive", "mint"}},
	{"yellow", []string{"golden", "amber", "lemon", "canary", "sunshine"}},
	{"purple", []string{"violet", "lavender", "plum", "magenta", "indigo"}},
	{"orange", []string{"tangerine", "peach", "coral", "amber", "rust"}},
	{"pink", []string{"rose", "blush", "salmon", "fuchsia", "magenta"}},
	{"brown", []string{"tan", "beige", "chocolate", "coffee", "sepia"}},
	{"black", []string{"ebony", "charcoal", "midnight", "onyx", "jet"}},
	{"white", []string{"ivory", "cream", "pearl", "snow", "alabaster"}},
	{"gray", []string{"silver", "slate", "ash", "pewter", "steel"}},
	{"gold", []string{"golden", "metallic", "brass", "bronze"}},
}

var moodKeywordEntries = []keywordEntry{
	{"joyful", []string{"happy", "joy", "cheerful", "uplifting", "optimistic", "radiant"}},
	{"bright", []string{"cheerful", "uplifting", "optimistic", "joyful", "radiant"}},
	{"peaceful", []string{"calm", "serene", "tranquil", "relaxing", "soothing"}},
	{"energetic", []string{"dynamic", "vibrant", "lively", "active", "exciting"}},
	{"dark", []string{"moody", "mysterious", "gothic", "somber", "brooding"}},
	{"romantic", []string{"loving", "tender", "passionate", "intimate", "dreamy"}},
	{"dramatic", []string{"intense", "powerful", "striking", "bold", "theatrical"}},
	{"melancholic", []string{"sad", "nostalgic", "wistful", "pensive", "reflective"}},
	{"playful", []string{"fun", "whimsical", "lighthearted", "amusing", "cheerful"}},
}

var genreKeywords = []keywordEntry{
	{"rock", []string{"hard rock", "soft rock", "classic rock", "alternative rock"}},
	{"pop", []string{"pop music", "mainstream", "catchy", "commercial"}},
	{"jazz", []string{"bebop", "swing", "fusion", "smooth jazz", "free jazz"}},
	{"classical", []string{"orchestral", "symphony", "chamber music", "baroque", "romantic"}},
	{"electronic", []string{"edm", "techno", "house", "trance", "dubstep", "ambient"}},
	{"hip hop", []string{"rap", "hip-hop", "urban", "beats"}},
	{"country", []string{"folk", "bluegrass", "americana", "western"}},
	{"blues", []string{"rhythm and blues", "r&b", "soul", "gospel"}},
	{"metal", []string{"heavy metal", "death metal", "black metal", "thrash"}},
}

var instrumentKeywords = []keywordEntry{
	{"piano", []string{"keyboard", "keys", "grand piano", "upright piano"}},
	{"guitar", []string{"electric guitar", "acoustic guitar", "bass guitar", "strings"}},
	{"drums", []string{"percussion", "drum kit", "beats", "rhythm section"}},
	{"violin", []string{"fiddle", "strings", "bow", "orchestral strings"}},
	{"saxophone", []string{"sax", "alto sax", "tenor sax", "woodwinds"}},
	{"trumpet", []string{"brass", "horn", "cornet", "flugelhorn"}},
	{"synthesizer", []string{"synth", "electronic", "digital", "analog synth"}},
	{"vocals", []string{"singing", "voice", "choir", "harmony", "melody"}},
}

var compositionTerms = []string{
	"centered", "off-center", "rule of thirds", "symmetrical", "asymmetrical",
	"close-up", "wide shot", "portrait", "landscape", "aerial view",
	"low angle", "high angle", "bird's eye", "worm's eye",
}

var themeKeywords = []string{
	"nature", "urban", "fantasy", "sci-fi", "historical", "modern",
	"vintage", "futuristic", "magical", "realistic", "abstract",
	"portrait", "landscape", "still life", "architecture", "animals",
}

var structureTerms = []string{
	"verse-chorus-bridge", "intro-verse-chorus-outro", "aaba",
	"verse-chorus", "simple", "complex", "repetitive", "progressive", "cyclical",
}

var (
	tempoPattern = regexp.MustCompile(`(?i)(\d+)\s*bpm|tempo\s*(?:of\s*)?(\d+)|(\d+)\s*beats?\s*per\s*minute`)
	colorPattern = regexp.MustCompile(`(?i)#[0-9a-f]{6}|#[0-9a-f]{3}|rgb\(\s*\d+\s*,\s*\d+\s*,\s*\d+\s*\)|rgba\(\s*\d+\s*,\s*\d+\s*,\s*\d+\s*,\s*[\d.]+\s*\)`)
)

// ParameterExtractor pulls visual and audio parameters out of text via
// keyword/synonym tables and regex patterns. No learning involved.
type ParameterExtractor struct {
	textProcessor *TextProcessor
}

// NewParameterExtractor creates a new parameter extractor.
func NewParameterExtractor() *ParameterExtractor {
	return &ParameterExtractor{textProcessor: NewTextProcessor()}
}

// ExtractVisualParameters extracts style, colors, mood, composition and
// themes from the text.
func (e *ParameterExtractor) ExtractVisualParameters(text string) *VisualParameters {
	normalized := strings.ToLower(text)
	keyPhrases := e.textProcessor.ExtractKeyPhrases(text)

	return &VisualParameters{
		Style:       e.extractStyles(normalized, keyPhrases),
		Colors:      e.extractColors(normalized, keyPhrases),
		Mood:        e.extractMood(normalized, keyPhrases),
		Composition: e.extractComposition(normalized),
		Themes:      e.extractThemes(normalized, keyPhrases),
	}
}

// ExtractAudioParameters extracts genre, instruments, tempo, mood and
// structure from the text.
func (e *ParameterExtractor) ExtractAudioParameters(text string) *AudioParameters {
	normalized := strings.ToLower(text)
	keyPhrases := e.textProcessor.ExtractKeyPhrases(text)

	return &AudioParameters{
		Genre:       matchCanonicalTerms(normalized, genreKeywords),
		Instruments: matchCanonicalTerms(normalized, instrumentKeywords),
		Tempo:       e.extractTempo(normalized),
		Mood:        e.extractMood(normalized, keyPhrases),
		Structure:   e.extractStructure(normalized),
	}
}

func (e *ParameterExtractor) extractStyles(text string, keyPhrases []string) []string {
	styles := matchCanonicalTerms(text, visualStyleKeywords)
	for _, phrase := range keyPhrases {
		for _, entry := range visualStyleKeywords {
			if entryMatches(phrase, entry) && !containsString(styles, entry.canonical) {
				styles = append(styles, entry.canonical)
			}
		}
	}
	return styles
}

func (e *ParameterExtractor) extractColors(text string, keyPhrases []string) []string {
	colors := []string{}

	// Hex and rgb()/rgba() notations are preserved verbatim.
	colors = append(colors, colorPattern.FindAllString(text, -1)...)

	colors = append(colors, matchCanonicalTerms(text, colorKeywords)...)

	for _, phrase := range keyPhrases {
		lower := strings.ToLower(phrase)
		for _, entry := range colorKeywords {
			if entryMatches(lower, entry) && !containsString(colors, entry.canonical) {
				colors = append(colors, entry.canonical)
			}
		}
	}

	return dedupeStrings(colors)
}

func (e *ParameterExtractor) extractMood(text string, keyPhrases []string) string {
	for _, entry := range moodKeywordEntries {
		if entryMatches(text, entry) {
			return entry.canonical
		}
	}
	for _, phrase := range keyPhrases {
		for _, entry := range moodKeywordEntries {
			if entryMatches(phrase, entry) {
				return entry.canonical
			}
		}
	}
	return ""
}

func (e *ParameterExtractor) extractComposition(text string) string {
	for _, term := range compositionTerms {
		if strings.Contains(text, term) {
			return term
		}
	}
	return ""
}

// extractThemes combines the fixed theme list with leftover key phrases.
// Key phrases are appended without a relevance filter beyond length, which
// lets generic leftovers through; downstream consumers depend on that.
func (e *ParameterExtractor) extractThemes(text string, keyPhrases []string) []string {
	themes := []string{}
	for _, theme := range themeKeywords {
		if strings.Contains(text, theme) {
			themes = append(themes, theme)
		}
	}

	for _, phrase := range keyPhrases {
		if len(phrase) > 3 && !containsString(themes, phrase) {
			themes = append(themes, phrase)
		}
	}

	if len(themes) > 5 {
		themes = themes[:5]
	}
	return themes
}

func (e *ParameterExtractor) extractTempo(text string) int {
	if match := tempoPattern.FindStringSubmatch(text); match != nil {
		for _, group := range match[1:] {
			if group == "" {
				continue
			}
			if tempo, err := strconv.Atoi(group); err == nil && tempo >= minTempo && tempo <= maxTempo {
				return tempo
			}
			break
		}
	}

	// Descriptive fallbacks, checked in fixed order.
	switch {
	case strings.Contains(text, "slow") || strings.Contains(text, "ballad"):
		return 70
	case strings.Contains(text, "medium") || strings.Contains(text, "moderate"):
		return 120
	case strings.Contains(text, "fast") || strings.Contains(text, "upbeat"):
		return 140
	case strings.Contains(text, "very fast") || strings.Contains(text, "energetic"):
		return 160
	}

	return defaultTempo
}

func (e *ParameterExtractor) extractStructure(text string) string {
	for _, term := range structureTerms {
		if strings.Contains(text, term) {
			return term
		}
	}
	return "verse-chorus"
}

// matchCanonicalTerms returns the canonical term of every entry whose
// canonical form or any synonym occurs in the text, in table order.
func matchCanonicalTerms(text string, entries []keywordEntry) []string {
	matched := []string{}
	for _, entry := range entries {
		if entryMatches(text, entry) {
			matched = append(matched, entry.canonical)
		}
	}
	return matched
}

func entryMatches(text string, entry keywordEntry) bool {
	if strings.Contains(text, entry.canonical) {
		return true
	}
	for _, syn := range entry.synonyms {
		if strings.Contains(text, syn) {
			return true
		}
	}
	return false
}

func containsString(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}

func dedupeStrings(list []string) []string {
	seen := make(map[string]bool, len(list))
	out := []string{}
	for _, item := range list {
		if !seen[item] {
			seen[item] = true
			out = append(out, item)
		}
	}
	return out
}
