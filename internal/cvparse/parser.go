// Package cvparse extracts a structured candidate profile from résumé text.
// Parsing is a stateless pure transform: it reads nothing but its arguments
// and never fails; fields that cannot be found stay at their zero values.
package cvparse

import (
	"strings"

	"github.com/talentshift/ats/internal/doctext"
)

// rawSampleLimit caps the diagnostic text sample kept on the profile.
const rawSampleLimit = 2000

// ParseDocument converts document bytes into a CandidateProfile. The declared
// content type must be PDF or DOCX; enforcing that is the caller's contract.
func ParseDocument(content []byte, filename, contentType string) *CandidateProfile {
	text := doctext.Extract(content, contentType)
	return ParseText(text, filename)
}

// ParseText runs the full extraction pipeline over already-extracted plain
// text. Every extractor runs unconditionally; they are independent of each
// other.
func ParseText(text, filename string) *CandidateProfile {
	textLower := strings.ToLower(text)

	sample := text
	if runes := []rune(sample); len(runes) > rawSampleLimit {
		sample = string(runes[:rawSampleLimit])
	}

	return &CandidateProfile{
		Filename:         filename,
		Name:             extractName(text),
		Email:            extractEmail(text),
		Phone:            extractPhone(text),
		Location:         extractLocation(textLower),
		EducationLevel:   extractEducationLevel(textLower),
		EducationMajor:   extractEducationMajor(textLower),
		ExperienceYears:  extractExperienceYears(textLower),
		ExperienceTitles: extractJobTitles(textLower),
		Skills:           extractSkills(textLower),
		Bootcamps:        extractBootcamps(textLower),
		Certifications:   nil,
		PortfolioURLs:    extractURLs(text),
		GitHubURL:        extractGitHub(text),
		LinkedInURL:      extractLinkedIn(text),
		RawTextSample:    sample,
	}
}
