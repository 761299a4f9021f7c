package cvparse

import "regexp"

// Static vocabulary tables. Built once at init and never mutated, so
// concurrent parses need no synchronization.

var (
	emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)

	// Indonesian mobile numbers: +62/62/0 country-code variants with optional
	// space or dash separators.
	phonePattern = regexp.MustCompile(`(?:\+62|62|0)[\s-]?\d{2,4}[\s-]?\d{3,4}[\s-]?\d{3,4}`)

	githubPattern   = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?github\.com/[\w-]+`)
	linkedinPattern = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?linkedin\.com/in/[\w-]+`)
	urlPattern      = regexp.MustCompile(`https?://[\w.-]+\.[a-zA-Z]{2,}(?:/[\w./-]*)?`)

	fourDigitRun = regexp.MustCompile(`\d{4}`)

	experiencePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(\d+)\+?\s*(?:years?|tahun)\s*(?:of\s*)?(?:experience|pengalaman)?`),
		regexp.MustCompile(`(?:experience|pengalaman)\s*(?:of\s*)?(\d+)\+?\s*(?:years?|tahun)`),
	}
)

// documentTitleTokens are header lines that must not be mistaken for a name.
var documentTitleTokens = map[string]bool{
	"curriculum vitae": true,
	"cv":               true,
	"resume":           true,
	"profile":          true,
}

// cityGazetteer lists recognized Indonesian cities plus "remote". Order is
// the tie-break when several appear in one document.
var cityGazetteer = []string{
	"jakarta", "bandung", "surabaya", "yogyakarta", "jogja", "semarang",
	"medan", "makassar", "palembang", "tangerang", "bekasi", "depok",
	"bogor", "malang", "solo", "denpasar", "bali", "remote",
}

// Education keyword cascade. The substring lists resolve unambiguous degree
// terms; the word-bounded lists and bare-token rules handle abbreviations
// that collide with unrelated vocabulary (notably AWS S3).
var (
	s1Keywords = []string{"bachelor", "bachelor's", "sarjana", "s.kom", "skom", "s.t", "s.e"}
	s2Keywords = []string{"master", "master's", "magister", "msc", "mba", "mm", "mt", "mti"}
	s3Keywords = []string{"doktor", "phd", "doctoral", "doctorate", "doctor of philosophy"}

	d3Patterns  = compileBounded("diploma", "ahli madya", "d3", "d-3")
	d4Patterns  = compileBounded("sarjana terapan", "d4", "d-4")
	smaPatterns = compileBounded("sma", "smk", "high school", "smu", "slta")

	bareS1 = regexp.MustCompile(`\bs1\b`)
	bareS2 = regexp.MustCompile(`\bs2\b`)
	bareS3 = regexp.MustCompile(`\bs3\b`)

	// Context rules around bare tokens. RE2 has no lookaround, so the
	// surrounding text is inspected explicitly at each match site.
	storageAfterS1 = regexp.MustCompile(`^\s*(?:bucket|storage)`)
	storageAfterS3 = regexp.MustCompile(`^\s*(?:bucket|storage|aws|amazon)`)
	vendorBeforeS3 = regexp.MustCompile(`(?:aws|amazon)\s$`)
)

// majorMapping maps a field-of-study keyword to its canonical display name.
// First match wins, in this order.
var majorMapping = []struct {
	keyword   string
	canonical string
}{
	{"informatika", "Teknik Informatika"},
	{"ilmu komputer", "Ilmu Komputer"},
	{"sistem informasi", "Sistem Informasi"},
	{"teknik komputer", "Teknik Komputer"},
	{"computer science", "Computer Science"},
	{"information technology", "Information Technology"},
	{"software engineering", "Software Engineering"},
	{"elektro", "Teknik Elektro"},
	{"matematika", "Matematika"},
	{"statistik", "Statistik"},
}

// jobTitleKeywords are title-indicating nouns; short phrases ending in one of
// these are captured as experience titles.
var jobTitleKeywords = []string{
	"developer", "engineer", "programmer", "analyst", "manager",
	"lead", "senior", "junior", "architect", "consultant",
	"specialist", "administrator", "designer", "scientist",
}

var jobTitlePatterns = func() map[string]*regexp.Regexp {
	patterns := make(map[string]*regexp.Regexp, len(jobTitleKeywords))
	for _, kw := range jobTitleKeywords {
		patterns[kw] = regexp.MustCompile(`\b\w*\s*` + kw + `\b`)
	}
	return patterns
}()

// skillVocabulary is the curated skill list matched word-bounded against the
// lower-cased text. Short acronyms render upper-case, longer terms
// title-case.
var skillVocabulary = []string{
	// Programming languages
	"python", "javascript", "typescript", "java", "c++", "c#", "go", "golang",
	"ruby", "php", "swift", "kotlin", "rust", "scala", "r",
	// Web frameworks
	"react", "vue", "angular", "nextjs", "next.js", "express", "fastapi",
	"django", "flask", "spring", "laravel", "rails",
	// Low-code platforms
	"outsystems", "mendix", "appian", "power apps",
	// Databases
	"sql", "mysql", "postgresql", "postgres", "mongodb", "redis", "elasticsearch",
	"oracle", "sqlite", "dynamodb",
	// DevOps & Cloud
	"docker", "kubernetes", "k8s", "aws", "gcp", "azure", "terraform",
	"jenkins", "gitlab ci", "github actions", "circleci",
	// Other
	"git", "rest api", "restful", "graphql", "microservices",
	"agile", "scrum", "jira", "linux", "nginx", "apache",
	"machine learning", "ml", "data science", "data analyst",
	"html", "css", "tailwind", "bootstrap", "sass", "figma",
	"problem solving", "time management", "communication",
	// QA & Testing
	"qa", "quality assurance", "manual testing", "automation testing",
	"test case", "test scenario", "bug reporting", "regression testing",
	"functional testing", "selenium", "appium", "katalon", "postman",
	"cypress", "playwright", "junit", "pytest", "trello", "clickup",
	"spreadsheet", "excel", "google sheets", "whimsical", "flowchart",
}

var skillPatterns = func() []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, len(skillVocabulary))
	for i, skill := range skillVocabulary {
		patterns[i] = regexp.MustCompile(`\b` + regexp.QuoteMeta(skill) + `\b`)
	}
	return patterns
}()

// bootcampProviders are known Indonesian and international training
// providers, matched as plain substrings.
var bootcampProviders = []string{
	"hacktiv8", "binar", "binar academy", "dicoding", "purwadhika",
	"sanbercode", "glints academy", "coursera", "udemy", "linkedin learning",
	"google career", "aws training", "meta blueprint",
}

func compileBounded(keywords ...string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, len(keywords))
	for i, kw := range keywords {
		patterns[i] = regexp.MustCompile(`\b` + regexp.QuoteMeta(kw) + `\b`)
	}
	return patterns
}
