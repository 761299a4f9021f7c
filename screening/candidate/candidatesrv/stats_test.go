package candidatesrv

import (
	"context"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentshift/ats/internal/cvparse"
	"github.com/talentshift/ats/internal/scoring"
	"github.com/talentshift/ats/pkg/kernel"
	"github.com/talentshift/ats/screening/candidate"
)

func seedCandidate(t *testing.T, repo *fakeCandidateRepo, id string, score float64, status candidate.PipelineStatus, profile cvparse.CandidateProfile) *candidate.Candidate {
	t.Helper()
	entity := &candidate.Candidate{
		ID:             kernel.NewCandidateID(id),
		JobID:          kernel.NewJobID("job-1"),
		Filename:       id + ".pdf",
		Name:           profile.Name,
		Email:          profile.Email,
		Location:       profile.Location,
		TotalScore:     score,
		Qualification:  scoring.StatusForScore(score),
		PipelineStatus: status,
		Breakdown: map[string]scoring.ScoreBreakdown{
			scoring.CategorySkills: {Score: score, Weight: 40},
		},
		Profile: profile,
	}
	require.NoError(t, repo.Create(context.Background(), entity))
	return entity
}

func TestStatsAggregation(t *testing.T) {
	svc, repo, _, _ := newTestService(t)

	seedCandidate(t, repo, "c1", 85, candidate.PipelineShortlisted, cvparse.CandidateProfile{Name: "A", Skills: []string{"Python", "Docker"}})
	seedCandidate(t, repo, "c2", 62.5, candidate.PipelineReview, cvparse.CandidateProfile{Name: "B", Skills: []string{"Python"}})
	seedCandidate(t, repo, "c3", 31, candidate.PipelineRejected, cvparse.CandidateProfile{Name: "C"})

	stats, err := svc.Stats(context.Background(), kernel.JobID(""))
	require.NoError(t, err)

	assert.Equal(t, int64(3), stats.TotalCandidates)
	assert.InDelta(t, 59.5, stats.AverageScore, 0.01)
	assert.Equal(t, int64(1), stats.ByPipelineStatus[candidate.PipelineShortlisted])
	assert.Equal(t, int64(1), stats.ByPipelineStatus[candidate.PipelineReview])
	assert.Equal(t, int64(1), stats.ByPipelineStatus[candidate.PipelineRejected])
	assert.Equal(t, int64(1), stats.ScoreDistribution["80-100"])
	assert.Equal(t, int64(1), stats.ScoreDistribution["60-79"])
	assert.Equal(t, int64(0), stats.ScoreDistribution["40-59"])
	assert.Equal(t, int64(1), stats.ScoreDistribution["0-39"])
	assert.Equal(t, int64(1), stats.ByQualification[scoring.StatusHighlyQualified])
	assert.Equal(t, int64(1), stats.ByQualification[scoring.StatusQualified])
	assert.Equal(t, int64(1), stats.ByQualification[scoring.StatusNotQualified])
}

func TestStatsEmpty(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	stats, err := svc.Stats(context.Background(), kernel.JobID(""))
	require.NoError(t, err)

	assert.Equal(t, int64(0), stats.TotalCandidates)
	assert.Equal(t, 0.0, stats.AverageScore)
	// Bands are always present, even with no candidates.
	assert.Len(t, stats.ScoreDistribution, 4)
}

func TestAnalyticsTopSkillsOrdering(t *testing.T) {
	svc, repo, _, _ := newTestService(t)

	seedCandidate(t, repo, "c1", 80, candidate.PipelineReview, cvparse.CandidateProfile{
		Skills: []string{"Python", "Docker"}, EducationLevel: "S1", Location: "Jakarta",
	})
	seedCandidate(t, repo, "c2", 70, candidate.PipelineReview, cvparse.CandidateProfile{
		Skills: []string{"Python", "Sql"}, EducationLevel: "S1", Location: "Bandung",
	})
	seedCandidate(t, repo, "c3", 60, candidate.PipelineReview, cvparse.CandidateProfile{
		Skills: []string{"Python", "Docker", "Git"}, EducationLevel: "D3", Location: "Jakarta",
	})

	analytics, err := svc.Analytics(context.Background(), kernel.JobID(""))
	require.NoError(t, err)

	require.GreaterOrEqual(t, len(analytics.TopSkills), 4)
	assert.Equal(t, candidate.SkillFrequency{Skill: "Python", Count: 3}, analytics.TopSkills[0])
	assert.Equal(t, candidate.SkillFrequency{Skill: "Docker", Count: 2}, analytics.TopSkills[1])
	// Ties break alphabetically.
	assert.Equal(t, candidate.SkillFrequency{Skill: "Git", Count: 1}, analytics.TopSkills[2])
	assert.Equal(t, candidate.SkillFrequency{Skill: "Sql", Count: 1}, analytics.TopSkills[3])

	assert.Equal(t, int64(2), analytics.ByEducation["S1"])
	assert.Equal(t, int64(1), analytics.ByEducation["D3"])
	assert.Equal(t, int64(2), analytics.ByLocation["Jakarta"])
	assert.Equal(t, int64(3), analytics.Stats.TotalCandidates)
}

func TestExportCSVRanksByScore(t *testing.T) {
	svc, repo, _, _ := newTestService(t)

	seedCandidate(t, repo, "c1", 55, candidate.PipelineReview, cvparse.CandidateProfile{Name: "Low Scorer", Email: "low@example.com"})
	seedCandidate(t, repo, "c2", 91.5, candidate.PipelineReview, cvparse.CandidateProfile{Name: "Top Scorer", Email: "top@example.com"})

	result, err := svc.Export(context.Background(), candidate.ExportRequest{Format: "csv"})
	require.NoError(t, err)
	assert.Equal(t, "text/csv", result.ContentType)
	assert.True(t, strings.HasPrefix(result.Filename, "candidates_"))
	assert.True(t, strings.HasSuffix(result.Filename, ".csv"))

	records, err := csv.NewReader(strings.NewReader(string(result.Content))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, exportColumns, records[0])
	assert.Equal(t, "1", records[1][0])
	assert.Equal(t, "Top Scorer", records[1][1])
	assert.Equal(t, "91.5", records[1][5])
	assert.Equal(t, "highly_qualified", records[1][6])
	assert.Equal(t, "2", records[2][0])
	assert.Equal(t, "Low Scorer", records[2][1])
}

func TestExportXLSXProducesWorkbook(t *testing.T) {
	svc, repo, _, _ := newTestService(t)
	seedCandidate(t, repo, "c1", 75, candidate.PipelineReview, cvparse.CandidateProfile{Name: "A"})

	result, err := svc.Export(context.Background(), candidate.ExportRequest{Format: "xlsx"})
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(result.Filename, ".xlsx"))
	// XLSX is a zip archive.
	assert.Equal(t, []byte{'P', 'K'}, result.Content[:2])
}

func TestExportRejectsUnknownFormat(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	_, err := svc.Export(context.Background(), candidate.ExportRequest{Format: "pdf"})
	require.Error(t, err)
}
