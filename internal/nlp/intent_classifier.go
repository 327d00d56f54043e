package nlp

import (
	"math"
	"strings"
)

// intentRatioThreshold is the normalized score gap below which a request
// with both visual and audio signal is treated as mixed.
const intentRatioThreshold = 0.3

var visualKeywords = makeSet([]string{
	// Visual styles and techniques
	"painting", "drawing", "sketch", "illustration", "artwork", "image", "picture",
	"photo", "photograph", "portrait", "landscape", "abstract", "realistic",
	"cartoon", "anime", "digital art", "oil painting", "watercolor", "pencil",

	// Visual elements
	"color", "colors", "bright", "dark", "light", "shadow", "contrast",
	"composition", "perspective", "depth", "texture", "pattern", "shape",
	"line", "curve", "geometric", "organic", "symmetry", "balance",

	// Visual moods and styles
	"vibrant", "muted", "pastel", "neon", "monochrome", "colorful",
	"minimalist", "detailed", "complex", "simple", "elegant", "bold",
	"subtle", "dramatic", "serene", "chaotic", "organized",

	// Visual subjects
	"person", "people", "face", "eyes", "hands", "body", "figure",
	"animal", "nature", "tree", "flower", "mountain", "ocean", "sky",
	"building", "architecture", "city", "street", "room", "interior",

	// Visual effects
	"lighting", "glow", "shine", "reflection", "mirror", "glass",
	"transparent", "opaque", "blur", "focus", "sharp", "soft",
})

var audioKeywords = makeSet([]string{
	// Musical instruments
	"piano", "guitar", "violin", "drums", "bass", "saxophone", "trumpet",
	"flute", "clarinet", "cello", "harp", "organ", "synthesizer", "keyboard",
	"electric guitar", "acoustic guitar", "drum kit", "percussion",

	// Musical genres
	"rock", "pop", "jazz", "classical", "blues", "country", "folk",
	"electronic", "techno", "house", "ambient", "hip hop", "rap",
	"reggae", "funk", "soul", "r&b", "metal", "punk", "indie",

	// Musical elements
	"melody", "harmony", "rhythm", "beat", "tempo", "chord", "note",
	"scale", "key", "pitch", "tone", "timbre", "dynamics", "volume",
	"loud", "quiet", "soft", "forte", "crescendo", "diminuendo",

	// Musical structure
	"verse", "chorus", "bridge", "intro", "outro", "solo", "riff",
	"progression", "sequence", "pattern", "loop", "sample",

	// Audio production
	"sound", "audio", "music", "song", "track", "recording", "mix",
	"master", "reverb", "echo", "delay", "distortion", "filter",
	"equalizer", "compression", "stereo", "mono", "surround",

	// Tempo and mood
	"fast", "slow", "upbeat", "downtempo", "energetic", "calm",
	"peaceful", "aggressive", "smooth", "rough", "flowing", "choppy",
})

var mixedKeywords = makeSet([]string{
	// Creative terms that could apply to both modalities
	"create", "generate", "make", "produce", "design", "compose",
	"artistic", "creative", "beautiful", "stunning", "amazing",
	"mood", "feeling", "emotion", "atmosphere", "vibe", "style",
	"modern", "vintage", "retro", "futuristic", "contemporary",
	"experimental", "traditional", "innovative", "unique", "original",
})

var visualIndicators = []string{
	"draw", "paint", "sketch", "illustrate", "design", "create image",
	"make picture", "generate art", "visual", "artwork", "image of",
	"picture of", "show me", "looks like", "appears", "see",
}

var audioIndicators = []string{
	"play", "sing", "compose", "create music", "make song",
	"generate audio", "sounds like", "hear", "listen", "music",
	"song", "track", "audio", "sound", "musical", "tune",
}

var genericTerms = []string{"something", "nice", "good", "create", "make"}

// IntentClassifier scores text against fixed visual/audio/mixed keyword
// sets to pick a target modality.
type IntentClassifier struct{}

// NewIntentClassifier creates a new intent classifier.
func NewIntentClassifier() *IntentClassifier {
	return &IntentClassifier{}
}

// ClassifyIntent picks the dominant modality of the text. Phrase matches
// weigh 2, single words weigh 1 and explicit action verbs add a fixed bonus.
// Texts with no signal, or comparable visual and audio signal, are mixed.
func (c *IntentClassifier) ClassifyIntent(text string) Intent {
	normalized := strings.ToLower(text)
	words := strings.Fields(normalized)

	var visualScore, audioScore float64

	for _, phrase := range slidingPhrases(words) {
		if visualKeywords[phrase] {
			visualScore += 2
		}
		if audioKeywords[phrase] {
			audioScore += 2
		}
	}

	for _, word := range words {
		if visualKeywords[word] {
			visualScore++
		}
		if audioKeywords[word] {
			audioScore++
		}
	}

	if containsAny(normalized, visualIndicators) {
		visualScore += 3
	}
	if containsAny(normalized, audioIndicators) {
		audioScore += 3
	}

	total := visualScore + audioScore
	if total == 0 {
		return IntentMixed
	}

	visualRatio := visualScore / total
	audioRatio := audioScore / total
	if visualScore > 0 && audioScore > 0 && math.Abs(visualRatio-audioRatio) < intentRatioThreshold {
		return IntentMixed
	}

	if visualScore > audioScore {
		return IntentVisual
	}
	return IntentAudio
}

// GetClassificationConfidence scores how much modality signal the text
// carries, in [0.1, 0.9].
func (c *IntentClassifier) GetClassificationConfidence(text string) float64 {
	normalized := strings.ToLower(text)
	words := strings.Fields(normalized)
	if len(words) == 0 {
		return 0.1
	}

	matches := 0
	for _, word := range words {
		if visualKeywords[word] || audioKeywords[word] || mixedKeywords[word] {
			matches++
		}
	}

	density := float64(matches) / float64(len(words))
	confidence := math.Min(density*1.5, 0.8)

	if containsAny(normalized, visualIndicators) || containsAny(normalized, audioIndicators) {
		confidence = math.Min(confidence+0.2, 0.9)
	}

	// Filler like "make something nice" with no real keyword is penalized.
	if containsAny(normalized, genericTerms) && matches <= 1 {
		confidence = math.Min(confidence*0.6, 0.4)
	}

	return math.Max(confidence, 0.1)
}

// slidingPhrases returns every 2- and 3-word window over the word list.
func slidingPhrases(words []string) []string {
	phrases := make([]string, 0, 2*len(words))
	for i := 0; i+1 < len(words); i++ {
		phrases = append(phrases, words[i]+" "+words[i+1])
	}
	for i := 0; i+2 < len(words); i++ {
		phrases = append(phrases, words[i]+" "+words[i+1]+" "+words[i+2])
	}
	return phrases
}

func containsAny(text string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}
