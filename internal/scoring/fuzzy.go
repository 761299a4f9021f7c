package scoring

import (
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

// Similarity thresholds. A fuzzy match is declared at full-ratio >= 80, or at
// partial (substring) ratio >= 90 for option strings that are substrings of
// the candidate value or vice versa. Skill matching uses a stricter 85
// full-ratio as its last-resort path.
const (
	ratioThreshold      = 80
	partialThreshold    = 90
	skillRatioThreshold = 85
)

// skillSynonyms maps canonical skill names to accepted aliases. Consulted
// bidirectionally before falling back to fuzzy similarity.
var skillSynonyms = map[string][]string{
	"javascript":              {"js", "ecmascript", "es6", "es2015"},
	"typescript":              {"ts"},
	"python":                  {"py", "python3"},
	"postgresql":              {"postgres", "pgsql"},
	"kubernetes":              {"k8s"},
	"machine learning":        {"ml"},
	"artificial intelligence": {"ai"},
	"rest api":                {"restful", "restful api"},
	"react":                   {"reactjs", "react.js"},
	"vue":                     {"vuejs", "vue.js"},
	"angular":                 {"angularjs"},
	"node":                    {"nodejs", "node.js"},
	"next":                    {"nextjs", "next.js"},
}

// fuzzyMatchAny reports whether value approximately matches any option.
func fuzzyMatchAny(value string, options []string) bool {
	valueLower := strings.ToLower(value)
	for _, option := range options {
		optionLower := strings.ToLower(option)
		if fuzzy.Ratio(valueLower, optionLower) >= ratioThreshold {
			return true
		}
		if fuzzy.PartialRatio(valueLower, optionLower) >= partialThreshold {
			return true
		}
	}
	return false
}

// skillMatches checks a required skill against the profile's skills: exact
// case-insensitive match first, then the synonym table in both directions,
// then fuzzy similarity as a last resort.
func skillMatches(requiredSkill string, profileSkills []string) bool {
	requiredLower := strings.ToLower(requiredSkill)

	profileLower := make([]string, len(profileSkills))
	for i, s := range profileSkills {
		profileLower[i] = strings.ToLower(s)
	}

	for _, s := range profileLower {
		if s == requiredLower {
			return true
		}
	}

	for _, synonym := range skillSynonyms[requiredLower] {
		for _, s := range profileLower {
			if s == synonym {
				return true
			}
		}
	}

	// The required skill may itself be an alias of a canonical profile skill.
	for canonical, synonyms := range skillSynonyms {
		for _, synonym := range synonyms {
			if requiredLower != synonym {
				continue
			}
			for _, s := range profileLower {
				if s == canonical {
					return true
				}
			}
		}
	}

	for _, s := range profileLower {
		if fuzzy.Ratio(requiredLower, s) >= skillRatioThreshold {
			return true
		}
	}
	return false
}
