package nlp

import (
	"regexp"
	"strings"

	"github.com/kljensen/snowball/english"
	"github.com/xrash/smetrics"
)

var (
	specialCharsPattern = regexp.MustCompile(`[^\w\s.,!?-]`)
	whitespacePattern   = regexp.MustCompile(`\s+`)
	strayPunctPattern   = regexp.MustCompile(`\b[.,!?-]+\b`)
	wordPattern         = regexp.MustCompile(`\w+`)
	sentenceEndPattern  = regexp.MustCompile(`[.!?]+`)
)

// stopWords are filtered out of key phrases.
var stopWords = makeSet([]string{
	"the", "a", "an", "and", "or", "but", "in", "on", "at", "to", "for",
	"of", "with", "by", "is", "are", "was", "were", "be", "been", "being",
	"have", "has", "had", "do", "does", "did", "will", "would", "could",
	"should", "may", "might", "must", "can", "this", "that", "these", "those",
})

// actionVerbs are request verbs ("create", "draw") that carry no descriptive
// content and would otherwise pollute key phrases and themes.
var actionVerbs = makeSet([]string{
	"create", "make", "generate", "produce", "design", "compose",
	"draw", "sketch", "play", "sing", "add", "use", "want", "need",
})

// descriptiveAdjectives seed adjective+noun phrase detection.
var descriptiveAdjectives = makeSet([]string{
	"beautiful", "bright", "dark", "soft", "warm", "cool", "vibrant",
	"calm", "peaceful", "energetic", "gentle", "bold", "deep", "light",
	"colorful", "dramatic", "mysterious", "elegant", "modern", "vintage",
	"abstract", "realistic", "upbeat", "slow", "fast", "happy", "sad",
	"romantic", "playful", "serene", "gloomy", "intense",
})

func makeSet(words []string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}

// TextProcessor cleans and tokenizes raw input text. It is the leaf
// dependency of every other pipeline component.
type TextProcessor struct{}

// NewTextProcessor creates a new text processor.
func NewTextProcessor() *TextProcessor {
	return &TextProcessor{}
}

// Normalize lowercases the text, strips everything outside word characters,
// whitespace and basic punctuation, collapses whitespace and trims.
// Normalize is idempotent.
func (p *TextProcessor) Normalize(text string) string {
	normalized := strings.ToLower(strings.TrimSpace(text))
	normalized = specialCharsPattern.ReplaceAllString(normalized, " ")
	normalized = whitespacePattern.ReplaceAllString(normalized, " ")
	normalized = strayPunctPattern.ReplaceAllString(normalized, "")
	return strings.TrimSpace(normalized)
}

// Tokenize normalizes the text and splits it into words.
func (p *TextProcessor) Tokenize(text string) []string {
	normalized := p.Normalize(text)
	if normalized == "" {
		return []string{}
	}
	return wordPattern.FindAllString(normalized, -1)
}

// ExtractKeyPhrases pulls descriptive words and adjective+noun phrases out
// of the text, deduplicated, longer than two characters and not stop words.
func (p *TextProcessor) ExtractKeyPhrases(text string) []string {
	tokens := p.Tokenize(text)
	seen := make(map[string]bool)
	phrases := []string{}

	add := func(phrase string) {
		if len(phrase) > 2 && !stopWords[phrase] && !seen[phrase] {
			seen[phrase] = true
			phrases = append(phrases, phrase)
		}
	}

	for i, token := range tokens {
		if stopWords[token] || actionVerbs[token] {
			continue
		}
		add(token)

		// Adjective followed by a content word forms a phrase.
		if descriptiveAdjectives[token] && i+1 < len(tokens) {
			next := tokens[i+1]
			if !stopWords[next] && !actionVerbs[next] && !descriptiveAdjectives[next] {
				add(token + " " + next)
			}
		}
	}

	return phrases
}

// StemWords maps each word to its morphological root using Porter stemming.
func (p *TextProcessor) StemWords(words []string) []string {
	stemmed := make([]string, 0, len(words))
	for _, word := range words {
		stemmed = append(stemmed, english.Stem(word, false))
	}
	return stemmed
}

// ExtractSentences splits the text on sentence-ending punctuation, dropping
// empty results.
func (p *TextProcessor) ExtractSentences(text string) []string {
	parts := sentenceEndPattern.Split(text, -1)
	sentences := []string{}
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			sentences = append(sentences, trimmed)
		}
	}
	return sentences
}

// CalculateSimilarity returns the Jaro-Winkler similarity of two strings
// in [0, 1]. Identical strings score 1.
func (p *TextProcessor) CalculateSimilarity(a, b string) float64 {
	return smetrics.JaroWinkler(a, b, 0.7, 4)
}
