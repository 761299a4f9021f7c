package cvparse

// EducationLevel is the Indonesian education ladder used for requirement
// matching. SMA is senior high school, D3/D4 are diploma tracks, S1/S2/S3 are
// bachelor/master/doctorate.
type EducationLevel string

const (
	EducationSMA EducationLevel = "SMA"
	EducationD3  EducationLevel = "D3"
	EducationD4  EducationLevel = "D4"
	EducationS1  EducationLevel = "S1"
	EducationS2  EducationLevel = "S2"
	EducationS3  EducationLevel = "S3"
)

// CandidateProfile holds the facts extracted from one résumé document.
// Extraction never invents values: string fields are empty and
// ExperienceYears is zero when nothing was found.
type CandidateProfile struct {
	Filename string `json:"filename"`

	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`

	EducationLevel EducationLevel `json:"education_level,omitempty"`
	EducationMajor string         `json:"education_major,omitempty"`

	// ExperienceYears is zero when no duration was detected; the scoring
	// engine treats zero as absent.
	ExperienceYears  int      `json:"experience_years,omitempty"`
	ExperienceTitles []string `json:"experience_titles,omitempty"`

	Skills    []string `json:"skills,omitempty"`
	Bootcamps []string `json:"bootcamps,omitempty"`

	// Certifications is always empty today; certification extraction is not
	// implemented but downstream consumers rely on the field existing.
	Certifications []string `json:"certifications,omitempty"`

	PortfolioURLs []string `json:"portfolio_urls,omitempty"`
	GitHubURL     string   `json:"github_url,omitempty"`
	LinkedInURL   string   `json:"linkedin_url,omitempty"`
	WebsiteURL    string   `json:"website_url,omitempty"`

	// RawTextSample keeps the first 2000 characters of the normalized text
	// for diagnostics.
	RawTextSample string `json:"raw_text_sample,omitempty"`
}

// HasPortfolio reports whether any portfolio signal was found.
func (p *CandidateProfile) HasPortfolio() bool {
	return p.GitHubURL != "" || p.LinkedInURL != "" || p.WebsiteURL != "" || len(p.PortfolioURLs) > 0
}
