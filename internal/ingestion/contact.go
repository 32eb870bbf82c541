package ingestion

import (
	"regexp"
	"strings"
)

var (
	emailPattern    = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Z|a-z]{2,}\b`)
	phonePattern    = regexp.MustCompile(`(?:\+?1[-.\s]?)?\(?[0-9]{3}\)?[-.\s]?[0-9]{3}[-.\s]?[0-9]{4}`)
	linkedInPattern = regexp.MustCompile(`(?:linkedin\.com/in/|linkedin\.com/pub/)([a-zA-Z0-9-]+)`)
	gitHubPattern   = regexp.MustCompile(`github\.com/([a-zA-Z0-9-]+)`)
)

// ContactInfo holds the first match of each contact detail. Missing details are empty.
type ContactInfo struct {
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
}

// ExtractContactInfo finds the email, phone number and LinkedIn and GitHub profiles in
// résumé text. Profile URLs are normalized to "linkedin.com/in/<handle>" and
// "github.com/<handle>" with a lowercased handle.
func ExtractContactInfo(text string) ContactInfo {
	var info ContactInfo

	info.Email = emailPattern.FindString(text)
	info.Phone = phonePattern.FindString(text)

	lower := strings.ToLower(text)
	if m := linkedInPattern.FindStringSubmatch(lower); m != nil {
		info.LinkedIn = "linkedin.com/in/" + m[1]
	}
	if m := gitHubPattern.FindStringSubmatch(lower); m != nil {
		info.GitHub = "github.com/" + m[1]
	}

	return info
}
