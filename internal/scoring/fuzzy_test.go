package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFuzzyMatchAny(t *testing.T) {
	assert.True(t, fuzzyMatchAny("Jakarta", []string{"jakarta", "bandung"}))
	assert.True(t, fuzzyMatchAny("Backend Developer", []string{"Developer"}), "partial ratio on substring")
	assert.True(t, fuzzyMatchAny("Teknik Informatika", []string{"Informatika"}))
	assert.False(t, fuzzyMatchAny("Surabaya", []string{"Jakarta", "Bandung"}))
	assert.False(t, fuzzyMatchAny("anything", nil))
}

func TestSkillMatchesExact(t *testing.T) {
	assert.True(t, skillMatches("Python", []string{"python", "docker"}))
	assert.False(t, skillMatches("Rust", []string{"python", "docker"}))
}

func TestSkillMatchesSynonyms(t *testing.T) {
	// Canonical required skill against a profile alias.
	assert.True(t, skillMatches("javascript", []string{"es6"}))
	assert.True(t, skillMatches("kubernetes", []string{"k8s"}))
	assert.True(t, skillMatches("postgresql", []string{"postgres"}))

	// Alias required skill against a canonical profile skill.
	assert.True(t, skillMatches("js", []string{"javascript"}))
	assert.True(t, skillMatches("k8s", []string{"kubernetes"}))

	assert.False(t, skillMatches("js", []string{"java"}))
}

func TestSkillMatchesFuzzyFallback(t *testing.T) {
	assert.True(t, skillMatches("postgresql", []string{"postgresql "}))
	// Below the 85 threshold.
	assert.False(t, skillMatches("sql", []string{"postgresql"}))
	assert.False(t, skillMatches("java", []string{"javascript"}))
}
