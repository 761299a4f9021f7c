package cvparse

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCV = `Andi Wijaya
Backend Developer
andi.wijaya@gmail.com | 0812-3456-7890
Jakarta, Indonesia

PENDIDIKAN
Sarjana Teknik Informatika, Universitas Indonesia

PENGALAMAN
Backend Developer, PT Maju Jaya
5 years of experience building services with Python, PostgreSQL, Docker and Redis.

PELATIHAN
Hacktiv8 Full Stack Program

PORTFOLIO
https://andi.dev
github.com/andiwijaya
linkedin.com/in/andiwijaya
`

func TestParseText(t *testing.T) {
	profile := ParseText(sampleCV, "andi_wijaya.pdf")
	require.NotNil(t, profile)

	assert.Equal(t, "andi_wijaya.pdf", profile.Filename)
	assert.Equal(t, "Andi Wijaya", profile.Name)
	assert.Equal(t, "andi.wijaya@gmail.com", profile.Email)
	assert.Equal(t, "0812-3456-7890", profile.Phone)
	assert.Equal(t, "Jakarta", profile.Location)

	assert.Equal(t, EducationS1, profile.EducationLevel)
	assert.Equal(t, "Teknik Informatika", profile.EducationMajor)

	assert.Equal(t, 5, profile.ExperienceYears)
	assert.Contains(t, profile.ExperienceTitles, "Backend Developer")

	assert.Contains(t, profile.Skills, "Python")
	assert.Contains(t, profile.Skills, "Postgresql")
	assert.Contains(t, profile.Skills, "Docker")
	assert.Contains(t, profile.Skills, "Redis")

	assert.Equal(t, []string{"Hacktiv8"}, profile.Bootcamps)

	assert.Equal(t, []string{"https://andi.dev"}, profile.PortfolioURLs)
	assert.Equal(t, "github.com/andiwijaya", profile.GitHubURL)
	assert.Equal(t, "linkedin.com/in/andiwijaya", profile.LinkedInURL)
	assert.True(t, profile.HasPortfolio())

	assert.Nil(t, profile.Certifications)
	assert.Equal(t, sampleCV, profile.RawTextSample)
}

func TestParseTextEmpty(t *testing.T) {
	profile := ParseText("", "blank.pdf")
	require.NotNil(t, profile)

	assert.Equal(t, "blank.pdf", profile.Filename)
	assert.Empty(t, profile.Name)
	assert.Empty(t, profile.Email)
	assert.Equal(t, EducationLevel(""), profile.EducationLevel)
	assert.Zero(t, profile.ExperienceYears)
	assert.Empty(t, profile.Skills)
	assert.False(t, profile.HasPortfolio())
}

func TestParseTextSampleTruncation(t *testing.T) {
	long := strings.Repeat("a", 3000)
	profile := ParseText(long, "long.pdf")
	assert.Len(t, profile.RawTextSample, rawSampleLimit)
}

func TestParseTextIsDeterministic(t *testing.T) {
	first := ParseText(sampleCV, "cv.pdf")
	second := ParseText(sampleCV, "cv.pdf")
	assert.Equal(t, first, second)
}
