// Package textnorm provides the lowercasing, tokenization and word-boundary
// matching helpers shared by the analyzers.
package textnorm

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Lower lowercases text for case-insensitive scans.
func Lower(text string) string {
	return strings.ToLower(text)
}

// Title upper-cases the first letter of every word, e.g. "devops tools" -> "Devops Tools".
func Title(s string) string {
	// A Caser is stateful, so each call builds its own.
	return cases.Title(language.English).String(s)
}

// IsWordRune reports whether r is a word character: a Unicode letter or number, or underscore.
func IsWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

// ContainsWord reports whether term occurs in text delimited by word boundaries.
// Both arguments are compared as given; callers lowercase them first.
//
// A boundary exists between a word rune and a non-word rune (or the edge of the
// text). A term that begins or ends with a non-word rune, such as "c++",
// therefore only matches when the neighbouring rune is a word rune.
func ContainsWord(text, term string) bool {
	return CountWord(text, term, 1) > 0
}

// CountWord counts non-overlapping bounded occurrences of term in text.
// Counting stops early once limit is reached when limit > 0.
func CountWord(text, term string, limit int) int {
	if term == "" || len(term) > len(text) {
		return 0
	}

	first, _ := utf8.DecodeRuneInString(term)
	last, _ := utf8.DecodeLastRuneInString(term)
	firstIsWord := IsWordRune(first)
	lastIsWord := IsWordRune(last)

	count := 0
	offset := 0
	for offset <= len(text)-len(term) {
		idx := strings.Index(text[offset:], term)
		if idx < 0 {
			break
		}
		start := offset + idx
		end := start + len(term)

		if leftBoundary(text, start, firstIsWord) && rightBoundary(text, end, lastIsWord) {
			count++
			if limit > 0 && count >= limit {
				break
			}
			offset = end
			continue
		}

		_, size := utf8.DecodeRuneInString(text[start:])
		offset = start + size
	}
	return count
}

// ContainsAnyWord reports whether any of terms occurs as a bounded word in text.
func ContainsAnyWord(text string, terms []string) bool {
	for _, term := range terms {
		if ContainsWord(text, term) {
			return true
		}
	}
	return false
}

// ContainsAny reports whether any of needles is a plain substring of text.
func ContainsAny(text string, needles []string) bool {
	for _, needle := range needles {
		if strings.Contains(text, needle) {
			return true
		}
	}
	return false
}

// CountSubstrings sums the non-overlapping substring occurrences of every needle.
func CountSubstrings(text string, needles []string) int {
	total := 0
	for _, needle := range needles {
		if needle == "" {
			continue
		}
		total += strings.Count(text, needle)
	}
	return total
}

func leftBoundary(text string, start int, innerIsWord bool) bool {
	outerIsWord := false
	if start > 0 {
		r, _ := utf8.DecodeLastRuneInString(text[:start])
		outerIsWord = IsWordRune(r)
	}
	return innerIsWord != outerIsWord
}

func rightBoundary(text string, end int, innerIsWord bool) bool {
	outerIsWord := false
	if end < len(text) {
		r, _ := utf8.DecodeRuneInString(text[end:])
		outerIsWord = IsWordRune(r)
	}
	return innerIsWord != outerIsWord
}
