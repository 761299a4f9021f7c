package cvparse

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Field extractors. Each one is a pure function of the (optionally
// lower-cased) text, independent of the others, and total: unmatched input
// yields the zero value, never an error.

func extractEmail(text string) string {
	return emailPattern.FindString(text)
}

func extractPhone(text string) string {
	return phonePattern.FindString(text)
}

// extractName scans the first 5 non-empty lines for something name-shaped:
// no email, no 4-digit run (dates, phone fragments), length strictly between
// 2 and 50, and not a document-title header. Heuristic only: it assumes the
// candidate's name appears unobstructed near the top.
func extractName(text string) string {
	seen := 0
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		seen++
		if seen > 5 {
			break
		}
		if strings.Contains(line, "@") || fourDigitRun.MatchString(line) {
			continue
		}
		if n := utf8.RuneCountInString(line); n <= 2 || n >= 50 {
			continue
		}
		if documentTitleTokens[strings.ToLower(line)] {
			continue
		}
		return line
	}
	return ""
}

func extractLocation(textLower string) string {
	for _, city := range cityGazetteer {
		if strings.Contains(textLower, city) {
			return titleCase(city)
		}
	}
	return ""
}

// extractEducationLevel resolves the highest education level through a strict
// priority cascade; the first matching rule wins and later rules are never
// reconsidered. The bare S1/S2/S3 token rules run last because those
// abbreviations collide with storage-product vocabulary ("AWS S3 bucket").
func extractEducationLevel(textLower string) EducationLevel {
	for _, kw := range s1Keywords {
		if strings.Contains(textLower, kw) {
			return EducationS1
		}
	}
	for _, kw := range s2Keywords {
		if strings.Contains(textLower, kw) {
			return EducationS2
		}
	}
	for _, kw := range s3Keywords {
		if strings.Contains(textLower, kw) {
			return EducationS3
		}
	}
	for _, p := range d3Patterns {
		if p.MatchString(textLower) {
			return EducationD3
		}
	}
	for _, p := range d4Patterns {
		if p.MatchString(textLower) {
			return EducationD4
		}
	}
	for _, p := range smaPatterns {
		if p.MatchString(textLower) {
			return EducationSMA
		}
	}
	if matchBareToken(textLower, bareS1, nil, storageAfterS1) {
		return EducationS1
	}
	if bareS2.MatchString(textLower) {
		return EducationS2
	}
	if matchBareToken(textLower, bareS3, vendorBeforeS3, storageAfterS3) {
		return EducationS3
	}
	return ""
}

// matchBareToken accepts a word-bounded token match unless the text
// immediately before it matches reject-before or the text after it matches
// reject-after. This reproduces the lookaround guards of the disambiguation
// rules without regex lookaround support.
func matchBareToken(text string, token, rejectBefore, rejectAfter *regexp.Regexp) bool {
	for _, loc := range token.FindAllStringIndex(text, -1) {
		if rejectBefore != nil && rejectBefore.MatchString(text[:loc[0]]) {
			continue
		}
		if rejectAfter != nil && rejectAfter.MatchString(text[loc[1]:]) {
			continue
		}
		return true
	}
	return false
}

func extractEducationMajor(textLower string) string {
	for _, m := range majorMapping {
		if strings.Contains(textLower, m.keyword) {
			return m.canonical
		}
	}
	return ""
}

func extractExperienceYears(textLower string) int {
	for _, p := range experiencePatterns {
		if m := p.FindStringSubmatch(textLower); m != nil {
			years, err := strconv.Atoi(m[1])
			if err != nil {
				continue
			}
			return years
		}
	}
	return 0
}

// extractJobTitles captures up to 3 short phrases per title keyword,
// title-cases them, then deduplicates across keywords and caps the result at
// 5. Callers must treat the result as a set.
func extractJobTitles(textLower string) []string {
	var titles []string
	seen := make(map[string]bool)
	for _, kw := range jobTitleKeywords {
		if !strings.Contains(textLower, kw) {
			continue
		}
		matches := jobTitlePatterns[kw].FindAllString(textLower, -1)
		if len(matches) > 3 {
			matches = matches[:3]
		}
		for _, m := range matches {
			title := titleCase(strings.TrimSpace(m))
			if !seen[title] {
				seen[title] = true
				titles = append(titles, title)
			}
		}
	}
	if len(titles) > 5 {
		titles = titles[:5]
	}
	return titles
}

func extractSkills(textLower string) []string {
	var skills []string
	seen := make(map[string]bool)
	for i, p := range skillPatterns {
		if !p.MatchString(textLower) {
			continue
		}
		skill := skillVocabulary[i]
		rendered := titleCase(skill)
		if utf8.RuneCountInString(skill) <= 3 {
			rendered = strings.ToUpper(skill)
		}
		if !seen[rendered] {
			seen[rendered] = true
			skills = append(skills, rendered)
		}
	}
	return skills
}

func extractBootcamps(textLower string) []string {
	var found []string
	seen := make(map[string]bool)
	for _, provider := range bootcampProviders {
		if !strings.Contains(textLower, provider) {
			continue
		}
		rendered := titleCase(provider)
		if !seen[rendered] {
			seen[rendered] = true
			found = append(found, rendered)
		}
	}
	return found
}

func extractURLs(text string) []string {
	return urlPattern.FindAllString(text, -1)
}

func extractGitHub(text string) string {
	return githubPattern.FindString(text)
}

func extractLinkedIn(text string) string {
	return linkedinPattern.FindString(text)
}

// titleCase upper-cases every letter that follows a non-letter and
// lower-cases the rest, so "binar academy" becomes "Binar Academy" and
// "next.js" becomes "Next.Js".
func titleCase(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				sb.WriteRune(unicode.ToLower(r))
			} else {
				sb.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
		} else {
			sb.WriteRune(r)
			prevLetter = false
		}
	}
	return sb.String()
}
