package nlp

// moodVisualMapping holds the default visual parameters for a named mood.
type moodVisualMapping struct {
	colors      []string
	style       []string
	composition string
	themes      []string
}

// moodAudioMapping holds the default audio parameters for a named mood.
// tempoModifier multiplies the base tempo.
type moodAudioMapping struct {
	genre         []string
	instruments   []string
	tempoModifier float64
	structure     string
}

var moodVisualMappings = map[string]moodVisualMapping{
	"joyful": {
		colors:      []string{"bright yellow", "orange", "warm colors", "sunny"},
		style:       []string{"vibrant", "cheerful", "expressive"},
		composition: "dynamic",
		themes:      []string{"celebration", "sunshine", "flowers", "children playing"},
	},
	"energetic": {
		colors:      []string{"red", "orange", "electric blue", "neon"},
		style:       []string{"dynamic", "bold", "high contrast"},
		composition: "action-packed",
		themes:      []string{"sports", "movement", "city life", "dance"},
	},
	"peaceful": {
		colors:      []string{"soft blue", "green", "pastel", "earth tones"},
		style:       []string{"soft", "gentle", "minimalist"},
		composition: "balanced",
		themes:      []string{"nature", "meditation", "zen garden", "quiet lake"},
	},
	"romantic": {
		colors:      []string{"pink", "rose", "warm purple", "gold"},
		style:       []string{"soft", "dreamy", "impressionist"},
		composition: "intimate",
		themes:      []string{"couples", "sunset", "flowers", "candlelight"},
	},
	"playful": {
		colors:      []string{"rainbow", "bright colors", "multicolor"},
		style:       []string{"cartoon", "whimsical", "fun"},
		composition: "scattered",
		themes:      []string{"toys", "animals", "games", "fantasy"},
	},
	"melancholic": {
		colors:      []string{"blue", "grey", "muted colors", "monochrome"},
		style:       []string{"soft", "blurred", "impressionist"},
		composition: "empty space",
		themes:      []string{"rain", "autumn", "solitude", "memories"},
	},
	"dark": {
		colors:      []string{"black", "dark purple", "deep red", "shadow"},
		style:       []string{"gothic", "dramatic", "high contrast"},
		composition: "moody lighting",
		themes:      []string{"night", "mystery", "gothic architecture", "shadows"},
	},
	"intense": {
		colors:      []string{"red", "black", "high contrast"},
		style:       []string{"bold", "aggressive", "sharp"},
		composition: "dramatic angles",
		themes:      []string{"storm", "fire", "conflict", "power"},
	},
	"nostalgic": {
		colors:      []string{"sepia", "faded colors", "vintage"},
		style:       []string{"vintage", "soft focus", "film grain"},
		composition: "classic",
		themes:      []string{"old photos", "vintage cars", "childhood", "memories"},
	},
	"elegant": {
		colors:      []string{"gold", "silver", "black and white", "deep blue"},
		style:       []string{"refined", "sophisticated", "clean lines"},
		composition: "symmetrical",
		themes:      []string{"luxury", "fashion", "architecture", "jewelry"},
	},
	"mysterious": {
		colors:      []string{"dark blue", "purple", "shadow", "moonlight"},
		style:       []string{"atmospheric", "ethereal", "soft edges"},
		composition: "hidden elements",
		themes:      []string{"fog", "forest", "ancient ruins", "secrets"},
	},
	"dramatic": {
		colors:      []string{"high contrast", "bold colors", "spotlight"},
		style:       []string{"theatrical", "bold", "expressive"},
		composition: "dramatic lighting",
		themes:      []string{"theater", "performance", "epic scenes", "heroes"},
	},
}

var moodAudioMappings = map[string]moodAudioMapping{
	"joyful": {
		genre:         []string{"pop", "folk", "upbeat"},
		instruments:   []string{"acoustic guitar", "piano", "violin", "flute"},
		tempoModifier: 1.2,
		structure:     "verse-chorus-verse-chorus-bridge-chorus",
	},
	"energetic": {
		genre:         []string{"rock", "electronic", "dance"},
		instruments:   []string{"electric guitar", "drums", "synthesizer", "bass"},
		tempoModifier: 1.4,
		structure:     "intro-verse-chorus-verse-chorus-solo-chorus",
	},
	"peaceful": {
		genre:         []string{"ambient", "classical", "new age"},
		instruments:   []string{"piano", "strings", "harp", "flute"},
		tempoModifier: 0.7,
		structure:     "intro-theme-variation-theme-outro",
	},
	"romantic": {
		genre:         []string{"ballad", "jazz", "classical"},
		instruments:   []string{"piano", "violin", "cello", "soft vocals"},
		tempoModifier: 0.8,
		structure:     "intro-verse-chorus-verse-chorus-bridge-chorus",
	},
	"playful": {
		genre:         []string{"children", "novelty", "swing"},
		instruments:   []string{"xylophone", "kazoo", "accordion", "toy piano"},
		tempoModifier: 1.1,
		structure:     "verse-chorus-verse-chorus-fun-section-chorus",
	},
	"melancholic": {
		genre:         []string{"blues", "folk", "indie"},
		instruments:   []string{"acoustic guitar", "piano", "harmonica", "strings"},
		tempoModifier: 0.6,
		structure:     "intro-verse-verse-chorus-verse-outro",
	},
	"dark": {
		genre:         []string{"gothic", "industrial", "dark ambient"},
		instruments:   []string{"organ", "distorted guitar", "synthesizer", "choir"},
		tempoModifier: 0.8,
		structure:     "intro-theme-development-climax-resolution",
	},
	"intense": {
		genre:         []string{"metal", "hardcore", "aggressive rock"},
		instruments:   []string{"distorted guitar", "heavy drums", "bass", "screaming vocals"},
		tempoModifier: 1.5,
		structure:     "intro-verse-chorus-verse-chorus-breakdown-chorus",
	},
	"nostalgic": {
		genre:         []string{"vintage", "oldies", "folk"},
		instruments:   []string{"acoustic guitar", "harmonica", "piano", "strings"},
		tempoModifier: 0.9,
		structure:     "intro-verse-chorus-verse-chorus-outro",
	},
	"elegant": {
		genre:         []string{"classical", "jazz", "sophisticated pop"},
		instruments:   []string{"piano", "strings", "brass", "sophisticated percussion"},
		tempoModifier: 1.0,
		structure:     "intro-theme-development-recapitulation-coda",
	},
	"mysterious": {
		genre:         []string{"ambient", "cinematic", "experimental"},
		instruments:   []string{"synthesizer", "ethereal vocals", "unusual percussion", "processed sounds"},
		tempoModifier: 0.8,
		structure:     "intro-build-climax-resolution-outro",
	},
	"dramatic": {
		genre:         []string{"cinematic", "orchestral", "epic"},
		instruments:   []string{"full orchestra", "choir", "timpani", "brass"},
		tempoModifier: 1.1,
		structure:     "intro-build-climax-resolution-finale",
	},
}
