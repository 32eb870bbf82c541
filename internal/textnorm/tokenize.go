package textnorm

import (
	"regexp"
	"strings"
)

var (
	// sentenceEndPattern matches terminal punctuation (with optional closing
	// quotes or brackets) followed by whitespace.
	sentenceEndPattern = regexp.MustCompile(`[.!?]+["')\]]*\s+`)

	// tokenPattern approximates a treebank tokenizer: words (with inner
	// apostrophes, hyphens or dots) and single punctuation marks.
	tokenPattern = regexp.MustCompile(`[\p{L}\p{N}_]+(?:['’.\-][\p{L}\p{N}_]+)*|[^\p{L}\p{N}_\s]`)
)

// Fields splits text on runs of Unicode whitespace.
func Fields(text string) []string {
	return strings.Fields(text)
}

// WordCount returns the number of whitespace-separated words.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// Tokens splits text into word and punctuation tokens.
func Tokens(text string) []string {
	return tokenPattern.FindAllString(text, -1)
}

// Sentences splits text into sentences on terminal punctuation followed by whitespace.
// The final fragment is kept even when it has no terminal punctuation.
func Sentences(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	var sentences []string
	start := 0
	for _, loc := range sentenceEndPattern.FindAllStringIndex(text, -1) {
		if s := strings.TrimSpace(text[start:loc[1]]); s != "" {
			sentences = append(sentences, s)
		}
		start = loc[1]
	}
	if s := strings.TrimSpace(text[start:]); s != "" {
		sentences = append(sentences, s)
	}
	return sentences
}

// AverageSentenceLength returns the mean number of whitespace-separated words
// per sentence, and false when the text has no sentences.
func AverageSentenceLength(text string) (float64, bool) {
	sentences := Sentences(text)
	if len(sentences) == 0 {
		return 0, false
	}
	total := 0
	for _, s := range sentences {
		total += WordCount(s)
	}
	return float64(total) / float64(len(sentences)), true
}

// VocabularyRatio returns unique tokens divided by total tokens of the lowercased text,
// or 0 for text without tokens.
func VocabularyRatio(text string) float64 {
	tokens := Tokens(Lower(text))
	if len(tokens) == 0 {
		return 0
	}
	unique := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		unique[t] = struct{}{}
	}
	return float64(len(unique)) / float64(len(tokens))
}
