package ats

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jonathan/resume-analyzer/internal/textnorm"
)

var (
	// specialCharPattern matches characters outside word characters, whitespace and - @ . , ( ) : /
	specialCharPattern = regexp.MustCompile(`[^\p{L}\p{N}_\s\v\p{Z}\x{85}\x{1c}-\x{1f}\-@.,():/]`)

	bulletPattern = regexp.MustCompile(`[•\-*]\s`)

	// phonePattern: optional country code, area code, separators, 7 digits.
	phonePattern = regexp.MustCompile(`(?:\+?1[-.\s]?)?\(?[0-9]{3}\)?[-.\s]?[0-9]{3}[-.\s]?[0-9]{4}`)
)

// quantityUnits may follow a number, optionally after whitespace, to make it a quantified
// achievement.
var quantityUnits = []string{"percent", "million", "thousand", "k", "m"}

// wordBoundary reports whether offset i of text sits between a word rune and a non-word
// rune, treating both ends of the text as non-word.
func wordBoundary(text string, i int) bool {
	before, after := false, false
	if i > 0 {
		r, _ := utf8.DecodeLastRuneInString(text[:i])
		before = textnorm.IsWordRune(r)
	}
	if i < len(text) {
		r, _ := utf8.DecodeRuneInString(text[i:])
		after = textnorm.IsWordRune(r)
	}
	return before != after
}

func isEmailLocalByte(c byte) bool {
	return isASCIIAlnum(c) || strings.IndexByte("._%+-", c) >= 0
}

func isEmailDomainByte(c byte) bool {
	return isASCIIAlnum(c) || c == '.' || c == '-'
}

func isEmailTLDByte(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '|'
}

func isASCIIAlnum(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

// containsEmail reports whether text holds local@domain.tld bounded by Unicode word
// boundaries on both sides. The local part, domain and TLD use ASCII character classes.
func containsEmail(text string) bool {
	for at := strings.IndexByte(text, '@'); at >= 0; {
		if emailAt(text, at) {
			return true
		}
		next := strings.IndexByte(text[at+1:], '@')
		if next < 0 {
			break
		}
		at += next + 1
	}
	return false
}

func emailAt(text string, at int) bool {
	start := at
	for start > 0 && isEmailLocalByte(text[start-1]) {
		start--
	}
	localOK := false
	for s := start; s < at; s++ {
		if wordBoundary(text, s) {
			localOK = true
			break
		}
	}
	if !localOK {
		return false
	}

	end := at + 1
	for end < len(text) && (isEmailDomainByte(text[end]) || text[end] == '|') {
		end++
	}
	for dot := at + 2; dot < end; dot++ {
		if text[dot] != '.' || !allBytes(text[at+1:dot], isEmailDomainByte) {
			continue
		}
		for e := dot + 1; e < len(text) && isEmailTLDByte(text[e]); e++ {
			if e-dot >= 2 && wordBoundary(text, e+1) {
				return true
			}
		}
	}
	return false
}

func allBytes(s string, ok func(byte) bool) bool {
	for i := 0; i < len(s); i++ {
		if !ok(s[i]) {
			return false
		}
	}
	return true
}

// countQuantities counts non-overlapping quantified amounts: a run of decimal digits that
// starts at a word boundary and is followed by % or $, or by optional whitespace and a
// unit word that ends at a word boundary.
func countQuantities(text string) int {
	count := 0
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if !unicode.IsDigit(r) || !wordBoundary(text, i) {
			i += size
			continue
		}

		end := i
		for end < len(text) {
			d, n := utf8.DecodeRuneInString(text[end:])
			if !unicode.IsDigit(d) {
				break
			}
			end += n
		}

		if matched := quantityEnd(text, end); matched > 0 {
			count++
			i = matched
			continue
		}
		i = end
	}
	return count
}

// quantityEnd returns the offset just past the suffix that makes the digits ending at
// offset i a quantity, or 0 when there is none.
func quantityEnd(text string, i int) int {
	if i < len(text) && (text[i] == '%' || text[i] == '$') {
		return i + 1
	}

	j := i
	for j < len(text) {
		r, n := utf8.DecodeRuneInString(text[j:])
		if !unicode.IsSpace(r) {
			break
		}
		j += n
	}
	for _, unit := range quantityUnits {
		if strings.HasPrefix(text[j:], unit) && wordBoundary(text, j+len(unit)) {
			return j + len(unit)
		}
	}
	return 0
}

// Section names.
const (
	SectionContact        = "contact"
	SectionSummary        = "summary"
	SectionExperience     = "experience"
	SectionEducation      = "education"
	SectionSkills         = "skills"
	SectionProjects       = "projects"
	SectionCertifications = "certifications"
)

type sectionRule struct {
	name     string
	pattern  *regexp.Regexp
	required bool
}

// sectionRules are tested against lowercased text in this order.
var sectionRules = []sectionRule{
	{SectionContact, regexp.MustCompile(`(?:contact|phone|email|address|linkedin)`), true},
	{SectionSummary, regexp.MustCompile(`(?:summary|objective|profile|about)`), true},
	{SectionExperience, regexp.MustCompile(`(?:experience|work|employment|career|professional)`), true},
	{SectionEducation, regexp.MustCompile(`(?:education|academic|degree|university|college)`), true},
	{SectionSkills, regexp.MustCompile(`(?:skills|competencies|technologies|proficiencies)`), true},
	{SectionProjects, regexp.MustCompile(`(?:projects|portfolio|work samples)`), false},
	{SectionCertifications, regexp.MustCompile(`(?:certifications|certificates|licenses|credentials)`), false},
}

// passiveMarkers are counted as substrings of the lowercased text.
var passiveMarkers = []string{"was", "were", "been", "being"}
