package textnorm

import (
	"errors"
	"strings"
	"unicode"
)

// ErrNoWords is returned when readability metrics are requested for text without words.
var ErrNoWords = errors.New("text contains no words")

// ReadabilityStats holds the Flesch metrics for a passage of text.
type ReadabilityStats struct {
	Words            int
	Sentences        int
	Syllables        int
	ReadingEase      float64 // Flesch Reading Ease
	GradeLevel       float64 // Flesch-Kincaid grade level
	WordsPerSentence float64
}

// Readability computes Flesch Reading Ease and Flesch-Kincaid grade level.
//
// Words are whitespace-separated tokens stripped of surrounding punctuation.
// Sentences with two words or fewer are not counted, but at least one
// sentence is always assumed.
func Readability(text string) (ReadabilityStats, error) {
	var words []string
	for _, field := range strings.Fields(text) {
		w := strings.TrimFunc(field, func(r rune) bool { return !IsWordRune(r) })
		if w != "" {
			words = append(words, w)
		}
	}
	if len(words) == 0 {
		return ReadabilityStats{}, ErrNoWords
	}

	sentenceCount := 0
	for _, s := range Sentences(text) {
		if WordCount(s) > 2 {
			sentenceCount++
		}
	}
	sentenceCount = max(1, sentenceCount)

	syllables := 0
	for _, w := range words {
		syllables += CountSyllables(w)
	}

	wps := float64(len(words)) / float64(sentenceCount)
	spw := float64(syllables) / float64(len(words))

	return ReadabilityStats{
		Words:            len(words),
		Sentences:        sentenceCount,
		Syllables:        syllables,
		ReadingEase:      206.835 - 1.015*wps - 84.6*spw,
		GradeLevel:       0.39*wps + 11.8*spw - 15.59,
		WordsPerSentence: wps,
	}, nil
}

// CountSyllables estimates the syllables in a single word by counting vowel groups.
// A silent trailing "e" is discounted (but not in "-le" endings), and every word
// has at least one syllable. Tokens without letters count as one.
func CountSyllables(word string) int {
	word = strings.ToLower(word)

	count := 0
	prevVowel := false
	letters := 0
	for _, r := range word {
		if !unicode.IsLetter(r) {
			prevVowel = false
			continue
		}
		letters++
		v := isVowel(r)
		if v && !prevVowel {
			count++
		}
		prevVowel = v
	}
	if letters == 0 {
		return 1
	}

	if strings.HasSuffix(word, "e") && !strings.HasSuffix(word, "le") && count > 1 {
		count--
	}
	if strings.HasSuffix(word, "es") || strings.HasSuffix(word, "ed") {
		// "makes", "named": the e is silent unless preceded by t/d (e.g. "wanted").
		stem := word[:len(word)-2]
		if count > 1 && !strings.HasSuffix(stem, "t") && !strings.HasSuffix(stem, "d") &&
			!strings.HasSuffix(stem, "s") && !strings.HasSuffix(stem, "x") && !strings.HasSuffix(stem, "z") &&
			!strings.HasSuffix(stem, "c") && !strings.HasSuffix(stem, "g") {
			count--
		}
	}

	return max(1, count)
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'y', 'à', 'á', 'â', 'ä', 'è', 'é', 'ê', 'ë', 'ì', 'í', 'î', 'ï', 'ò', 'ó', 'ô', 'ö', 'ù', 'ú', 'û', 'ü':
		return true
	}
	return false
}
