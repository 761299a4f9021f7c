package scoring

import "github.com/talentshift/ats/internal/cvparse"

// Default category weights, in percentage points, applied when a category
// config omits its weight.
const (
	defaultEducationWeight  = 15
	defaultExperienceWeight = 25
	defaultSkillsWeight     = 40
	defaultBootcampWeight   = 10
	defaultPortfolioWeight  = 15
	defaultLocationWeight   = 5

	defaultMinYears = 3
)

// JobRequirementSpec is the requirement template a profile is scored
// against. Each category carries named optional fields; absent fields fall
// back to documented defaults, never to an error. The engine never mutates a
// spec.
type JobRequirementSpec struct {
	Education  EducationRequirement  `json:"education"`
	Experience ExperienceRequirement `json:"experience"`
	Skills     SkillsRequirement     `json:"skills"`
	Bootcamp   BootcampRequirement   `json:"bootcamp"`
	Portfolio  PortfolioRequirement  `json:"portfolio"`
	Location   LocationRequirement   `json:"location"`
}

type EducationRequirement struct {
	MinLevel       cvparse.EducationLevel `json:"min_level,omitempty"`
	PreferredMajor []string               `json:"preferred_major,omitempty"`
	Weight         *int                   `json:"weight,omitempty"`
}

type ExperienceRequirement struct {
	MinYears       *int     `json:"min_years,omitempty"`
	RelevantTitles []string `json:"relevant_titles,omitempty"`
	Weight         *int     `json:"weight,omitempty"`
}

type SkillsRequirement struct {
	Required  []string `json:"required,omitempty"`
	Preferred []string `json:"preferred,omitempty"`
	Weight    *int     `json:"weight,omitempty"`
}

type BootcampRequirement struct {
	PreferredProviders []string `json:"preferred_providers,omitempty"`
	Weight             *int     `json:"weight,omitempty"`
}

type PortfolioRequirement struct {
	Required bool `json:"required,omitempty"`
	// PreferredPlatforms is informational only; it does not influence the
	// score.
	PreferredPlatforms []string `json:"preferred_platforms,omitempty"`
	Weight             *int     `json:"weight,omitempty"`
}

type LocationRequirement struct {
	Allowed []string `json:"allowed,omitempty"`
	Weight  *int     `json:"weight,omitempty"`
}

func weightOr(w *int, fallback int) int {
	if w != nil {
		return *w
	}
	return fallback
}

func intOr(v *int, fallback int) int {
	if v != nil {
		return *v
	}
	return fallback
}

// educationLevelScores is the fixed ordinal table for education levels.
var educationLevelScores = map[cvparse.EducationLevel]int{
	cvparse.EducationS3:  100,
	cvparse.EducationS2:  90,
	cvparse.EducationS1:  80,
	cvparse.EducationD4:  75,
	cvparse.EducationD3:  60,
	cvparse.EducationSMA: 40,
}

func levelScore(level cvparse.EducationLevel, fallback int) int {
	if s, ok := educationLevelScores[level]; ok {
		return s
	}
	return fallback
}

// DefaultRequirements returns the seed requirement template used when a
// deployment starts with no configured jobs.
func DefaultRequirements() JobRequirementSpec {
	eduW, expW, skillW := defaultEducationWeight, defaultExperienceWeight, defaultSkillsWeight
	bootW, portW, locW := defaultBootcampWeight, defaultPortfolioWeight, defaultLocationWeight
	minYears := defaultMinYears
	return JobRequirementSpec{
		Education: EducationRequirement{
			MinLevel:       cvparse.EducationS1,
			PreferredMajor: []string{"Informatika", "Teknik Komputer", "Sistem Informasi"},
			Weight:         &eduW,
		},
		Experience: ExperienceRequirement{
			MinYears:       &minYears,
			RelevantTitles: []string{"Developer", "Engineer", "Programmer"},
			Weight:         &expW,
		},
		Skills: SkillsRequirement{
			Required:  []string{"Python", "SQL", "REST API"},
			Preferred: []string{"Docker", "AWS", "PostgreSQL"},
			Weight:    &skillW,
		},
		Bootcamp: BootcampRequirement{
			PreferredProviders: []string{"Hacktiv8", "Binar Academy", "Dicoding", "Purwadhika", "Sanbercode"},
			Weight:             &bootW,
		},
		Portfolio: PortfolioRequirement{
			Required:           true,
			PreferredPlatforms: []string{"github", "gitlab", "personal_website"},
			Weight:             &portW,
		},
		Location: LocationRequirement{
			Allowed: []string{"Jakarta", "Bandung", "Remote"},
			Weight:  &locW,
		},
	}
}
