package nlp

// baseLexicon is a compact polarity word list covering the emotional
// vocabulary that shows up in creative prompts. Scores follow the usual
// -5..+5 convention.
var baseLexicon = map[string]int{
	"admire":      3,
	"adorable":    3,
	"adore":       3,
	"alive":       1,
	"angry":       -3,
	"anxious":     -2,
	"awesome":     4,
	"awful":       -3,
	"bad":         -3,
	"bliss":       3,
	"blissful":    3,
	"bleak":       -2,
	"bright":      1,
	"brilliant":   4,
	"broken":      -1,
	"calm":        2,
	"charming":    3,
	"cheer":       2,
	"cheerful":    2,
	"cold":        -1,
	"comfort":     2,
	"cozy":        2,
	"creepy":      -2,
	"cruel":       -3,
	"crying":      -2,
	"dead":        -3,
	"delight":     3,
	"delightful":  3,
	"depressed":   -2,
	"despair":     -3,
	"dreadful":    -3,
	"dream":       1,
	"dreamy":      2,
	"dull":        -2,
	"dying":       -3,
	"eager":       2,
	"ecstatic":    4,
	"elegant":     2,
	"enchanting":  3,
	"energetic":   2,
	"enjoy":       2,
	"evil":        -3,
	"excellent":   3,
	"excited":     3,
	"exciting":    3,
	"fabulous":    4,
	"fantastic":   4,
	"fear":        -2,
	"fierce":      -1,
	"fresh":       1,
	"fun":         4,
	"funny":       4,
	"gentle":      3,
	"glad":        3,
	"gloom":       -2,
	"glorious":    2,
	"good":        3,
	"gorgeous":    3,
	"graceful":    2,
	"great":       3,
	"grief":       -2,
	"grim":        -2,
	"happiness":   3,
	"happy":       3,
	"harmonious":  2,
	"hell":        -4,
	"hope":        2,
	"hopeful":     2,
	"horrible":    -3,
	"horror":      -3,
	"hurt":        -2,
	"inspired":    2,
	"inspiring":   2,
	"joy":         3,
	"kind":        2,
	"lively":      2,
	"lonely":      -2,
	"loss":        -3,
	"lovely":      3,
	"lucky":       3,
	"mad":         -3,
	"magical":     3,
	"miserable":   -3,
	"misery":      -2,
	"nice":        3,
	"optimistic":  2,
	"pain":        -2,
	"passionate":  2,
	"perfect":     3,
	"pleasant":    3,
	"pleased":     3,
	"pretty":      1,
	"radiant":     2,
	"rage":        -2,
	"relaxed":     2,
	"relaxing":    2,
	"rich":        2,
	"sadness":     -2,
	"scared":      -2,
	"scary":       -2,
	"smile":       2,
	"soothing":    2,
	"sorrow":      -2,
	"sorrowful":   -2,
	"sparkle":     3,
	"splendid":    3,
	"strong":      2,
	"stunning":    4,
	"sunny":       2,
	"superb":      5,
	"sweet":       2,
	"tender":      2,
	"terrific":    4,
	"tragic":      -2,
	"tranquil":    2,
	"triumphant":  4,
	"ugly":        -3,
	"unhappy":     -2,
	"upbeat":      2,
	"uplifting":   2,
	"vibrant":     2,
	"vivid":       2,
	"warm":        1,
	"weary":       -2,
	"whimsical":   1,
	"wonderful":   4,
	"worried":     -3,
	"wrong":       -2,
}

// customLexicon carries hand-tuned weights for domain words; these override
// the base list.
var customLexicon = map[string]int{
	"beautiful":     2,
	"amazing":       2,
	"wonderful":     2,
	"joyful":        3,
	"happy":         2,
	"cheerful":      2,
	"peaceful":      2,
	"energetic":     2,
	"uplifting":     2,
	"bright":        1,
	"vibrant":       2,
	"serene":        2,
	"calm":          1,
	"romantic":      2,
	"playful":       2,
	"whimsical":     1,
	"elegant":       1,
	"sophisticated": 1,
	"dramatic":      0,
	"mysterious":    0,
	"terrible":      -2,
	"awful":         -2,
	"sad":           -2,
	"melancholic":   -2,
	"dark":          -1,
	"depressing":    -2,
	"hate":          -3,
	"love":          3,
	"gloomy":        -2,
	"somber":        -1,
	"nostalgic":     -1,
	"wistful":       -1,
	"aggressive":    -1,
	"intense":       0,
	"fierce":        -1,
}

// sentimentLexicon is the merged scoring table, built once at init.
var sentimentLexicon = buildSentimentLexicon()

func buildSentimentLexicon() map[string]int {
	merged := make(map[string]int, len(baseLexicon)+len(customLexicon))
	for word, score := range baseLexicon {
		merged[word] = score
	}
	for word, score := range customLexicon {
		merged[word] = score
	}
	return merged
}
