// Package scoring evaluates a candidate profile against a job requirement
// template. Six independent category scorers each produce a bounded score,
// weighted contribution and human-readable evidence; the engine aggregates
// them into a total score and qualification tier. Scoring is pure and
// deterministic: no I/O, no shared mutable state, safe for concurrent use.
package scoring

import (
	"fmt"
	"math"
	"strings"

	"github.com/talentshift/ats/internal/cvparse"
)

// QualificationStatus is the tier derived from the total score.
type QualificationStatus string

const (
	StatusHighlyQualified    QualificationStatus = "highly_qualified"
	StatusQualified          QualificationStatus = "qualified"
	StatusPartiallyQualified QualificationStatus = "partially_qualified"
	StatusNotQualified       QualificationStatus = "not_qualified"
)

// StatusForScore maps a total score onto its qualification tier. Cutoffs are
// fixed and non-overlapping.
func StatusForScore(total float64) QualificationStatus {
	switch {
	case total >= 80:
		return StatusHighlyQualified
	case total >= 60:
		return StatusQualified
	case total >= 40:
		return StatusPartiallyQualified
	default:
		return StatusNotQualified
	}
}

// ScoreBreakdown is the result of one category scorer.
type ScoreBreakdown struct {
	Score         float64  `json:"score"`
	Weight        int      `json:"weight"`
	WeightedScore float64  `json:"weighted_score"`
	Details       string   `json:"details"`
	Matched       []string `json:"matched"`
	Missing       []string `json:"missing"`
}

// CandidateScore is the aggregate scoring result for one profile.
type CandidateScore struct {
	Filename      string                    `json:"filename"`
	CandidateName string                    `json:"candidate_name,omitempty"`
	Email         string                    `json:"email,omitempty"`
	TotalScore    float64                   `json:"total_score"`
	Status        QualificationStatus       `json:"status"`
	Breakdown     map[string]ScoreBreakdown `json:"breakdown"`
	Profile       cvparse.CandidateProfile  `json:"profile"`
}

// Category names; all six keys are always present in a breakdown.
const (
	CategoryEducation  = "education"
	CategoryExperience = "experience"
	CategorySkills     = "skills"
	CategoryBootcamp   = "bootcamp"
	CategoryPortfolio  = "portfolio"
	CategoryLocation   = "location"
)

// Score evaluates the profile against the requirement spec. No category is
// ever skipped; missing configuration falls back to per-scorer defaults.
func Score(profile *cvparse.CandidateProfile, spec JobRequirementSpec) *CandidateScore {
	breakdown := map[string]ScoreBreakdown{
		CategoryEducation:  scoreEducation(profile, spec.Education),
		CategoryExperience: scoreExperience(profile, spec.Experience),
		CategorySkills:     scoreSkills(profile, spec.Skills),
		CategoryBootcamp:   scoreBootcamp(profile, spec.Bootcamp),
		CategoryPortfolio:  scorePortfolio(profile, spec.Portfolio),
		CategoryLocation:   scoreLocation(profile, spec.Location),
	}

	var total float64
	for _, cat := range breakdown {
		total += cat.WeightedScore
	}

	return &CandidateScore{
		Filename:      profile.Filename,
		CandidateName: profile.Name,
		Email:         profile.Email,
		TotalScore:    round1(total),
		Status:        StatusForScore(round1(total)),
		Breakdown:     breakdown,
		Profile:       *profile,
	}
}

// newBreakdown finalizes a category result. WeightedScore is always derived
// from the stored score and weight, never computed independently.
func newBreakdown(score float64, weight int, details string, matched, missing []string) ScoreBreakdown {
	return ScoreBreakdown{
		Score:         score,
		Weight:        weight,
		WeightedScore: round2(score * float64(weight) / 100),
		Details:       details,
		Matched:       matched,
		Missing:       missing,
	}
}

func scoreEducation(profile *cvparse.CandidateProfile, req EducationRequirement) ScoreBreakdown {
	weight := weightOr(req.Weight, defaultEducationWeight)
	var score float64
	var details, matched, missing []string

	minLevel := req.MinLevel
	if minLevel == "" {
		minLevel = cvparse.EducationS1
	}
	minScore := levelScore(minLevel, 80)

	if profile.EducationLevel != "" {
		if levelScore(profile.EducationLevel, 50) >= minScore {
			score += 60
			matched = append(matched, string(profile.EducationLevel))
			details = append(details, fmt.Sprintf("%s ✓", profile.EducationLevel))
		} else {
			score += 30
			missing = append(missing, fmt.Sprintf("Min: %s", minLevel))
			details = append(details, fmt.Sprintf("%s (below %s)", profile.EducationLevel, minLevel))
		}
	} else {
		missing = append(missing, "Education level not found")
		details = append(details, "Education not detected")
	}

	switch {
	case profile.EducationMajor != "" && len(req.PreferredMajor) > 0:
		if fuzzyMatchAny(profile.EducationMajor, req.PreferredMajor) {
			score += 40
			matched = append(matched, profile.EducationMajor)
			details = append(details, fmt.Sprintf("%s ✓", profile.EducationMajor))
		} else {
			score += 20
			details = append(details, profile.EducationMajor)
		}
	case profile.EducationMajor != "":
		score += 25
		details = append(details, profile.EducationMajor)
	}

	return newBreakdown(clamp100(score), weight, joinDetails(details, "No education data"), matched, missing)
}

func scoreExperience(profile *cvparse.CandidateProfile, req ExperienceRequirement) ScoreBreakdown {
	weight := weightOr(req.Weight, defaultExperienceWeight)
	minYears := intOr(req.MinYears, defaultMinYears)
	var score float64
	var details, matched, missing []string

	// Zero years is indistinguishable from "not found" and is treated as
	// absent.
	switch {
	case profile.ExperienceYears >= minYears && profile.ExperienceYears > 0:
		score += 60
		matched = append(matched, fmt.Sprintf("%d years", profile.ExperienceYears))
		details = append(details, fmt.Sprintf("%d years experience ✓", profile.ExperienceYears))
	case profile.ExperienceYears >= minYears-1 && profile.ExperienceYears > 0:
		score += 40
		details = append(details, fmt.Sprintf("%d years (close to %d required)", profile.ExperienceYears, minYears))
	case profile.ExperienceYears > 0:
		score += 20
		missing = append(missing, fmt.Sprintf("Need %d+ years", minYears))
		details = append(details, fmt.Sprintf("%d years (need %d+)", profile.ExperienceYears, minYears))
	default:
		missing = append(missing, "Experience years not found")
		details = append(details, "Experience not detected")
	}

	if len(profile.ExperienceTitles) > 0 && len(req.RelevantTitles) > 0 {
		titleMatches := 0
		for _, title := range profile.ExperienceTitles {
			if fuzzyMatchAny(title, req.RelevantTitles) {
				titleMatches++
				matched = append(matched, title)
			}
		}
		if titleMatches > 0 {
			score += math.Min(40, float64(titleMatches)*20)
			details = append(details, fmt.Sprintf("Relevant titles: %d", titleMatches))
		}
	}

	return newBreakdown(clamp100(score), weight, joinDetails(details, "No experience data"), matched, missing)
}

func scoreSkills(profile *cvparse.CandidateProfile, req SkillsRequirement) ScoreBreakdown {
	weight := weightOr(req.Weight, defaultSkillsWeight)
	var matched, missing []string

	requiredMatched := 0
	for _, skill := range req.Required {
		if skillMatches(skill, profile.Skills) {
			requiredMatched++
			matched = append(matched, skill)
		} else {
			missing = append(missing, skill)
		}
	}

	preferredMatched := 0
	for _, skill := range req.Preferred {
		if skillMatches(skill, profile.Skills) {
			preferredMatched++
			matched = append(matched, skill+" (bonus)")
		}
	}

	requiredScore := 35.0
	if len(req.Required) > 0 {
		requiredScore = float64(requiredMatched) / float64(len(req.Required)) * 70
	}
	preferredScore := 15.0
	if len(req.Preferred) > 0 {
		preferredScore = float64(preferredMatched) / float64(len(req.Preferred)) * 30
	}

	details := fmt.Sprintf("Required: %d/%d", requiredMatched, len(req.Required))
	if len(req.Preferred) > 0 {
		details += fmt.Sprintf(" | Preferred: %d/%d", preferredMatched, len(req.Preferred))
	}

	score := round1(clamp100(requiredScore + preferredScore))
	return newBreakdown(score, weight, details, matched, missing)
}

func scoreBootcamp(profile *cvparse.CandidateProfile, req BootcampRequirement) ScoreBreakdown {
	weight := weightOr(req.Weight, defaultBootcampWeight)
	var score float64
	var matched []string
	details := "No bootcamp/training detected"

	if len(profile.Bootcamps) > 0 {
		for _, bootcamp := range profile.Bootcamps {
			if fuzzyMatchAny(bootcamp, req.PreferredProviders) {
				matched = append(matched, bootcamp)
				score += 50
			}
		}
		score = clamp100(score)
		details = "Found: " + strings.Join(profile.Bootcamps, ", ")
	}

	return newBreakdown(score, weight, details, matched, nil)
}

func scorePortfolio(profile *cvparse.CandidateProfile, req PortfolioRequirement) ScoreBreakdown {
	weight := weightOr(req.Weight, defaultPortfolioWeight)
	var score float64
	var matched, missing []string
	var details string

	if profile.HasPortfolio() {
		score += 40
		if profile.GitHubURL != "" {
			matched = append(matched, "GitHub")
			score += 25
		}
		if profile.LinkedInURL != "" {
			matched = append(matched, "LinkedIn")
			score += 15
		}
		if profile.WebsiteURL != "" {
			matched = append(matched, "Website")
			score += 20
		}
		details = "Platforms: " + strings.Join(matched, ", ")
	} else {
		if req.Required {
			missing = append(missing, "Portfolio required")
		}
		details = "No portfolio found"
	}

	return newBreakdown(clamp100(score), weight, details, matched, missing)
}

func scoreLocation(profile *cvparse.CandidateProfile, req LocationRequirement) ScoreBreakdown {
	weight := weightOr(req.Weight, defaultLocationWeight)
	var score float64
	var matched []string
	var details string

	switch {
	case profile.Location != "" && len(req.Allowed) > 0:
		if fuzzyMatchAny(profile.Location, req.Allowed) {
			score = 100
			matched = append(matched, profile.Location)
			details = fmt.Sprintf("%s ✓", profile.Location)
		} else {
			score = 50
			details = fmt.Sprintf("%s (not preferred)", profile.Location)
		}
	case containsFold(req.Allowed, "remote"):
		score = 80
		details = "Remote available"
	default:
		score = 50
		details = "Location not detected"
	}

	return newBreakdown(score, weight, details, matched, nil)
}

func containsFold(list []string, target string) bool {
	for _, s := range list {
		if strings.EqualFold(s, target) {
			return true
		}
	}
	return false
}

func joinDetails(details []string, fallback string) string {
	if len(details) == 0 {
		return fallback
	}
	return strings.Join(details, " | ")
}

func clamp100(score float64) float64 {
	return math.Min(score, 100)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
