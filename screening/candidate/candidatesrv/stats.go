package candidatesrv

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/talentshift/ats/internal/scoring"
	"github.com/talentshift/ats/pkg/errx"
	"github.com/talentshift/ats/pkg/kernel"
	"github.com/talentshift/ats/screening/candidate"
)

// Score distribution bands, matching the qualification tier cutoffs.
var distributionBands = []struct {
	label string
	min   float64
}{
	{"80-100", 80},
	{"60-79", 60},
	{"40-59", 40},
	{"0-39", 0},
}

func bandFor(score float64) string {
	for _, band := range distributionBands {
		if score >= band.min {
			return band.label
		}
	}
	return distributionBands[len(distributionBands)-1].label
}

// Stats aggregates pipeline counts and score distribution over stored
// candidates, optionally restricted to one job.
func (s *Service) Stats(ctx context.Context, jobID kernel.JobID) (*candidate.StatsResponse, error) {
	candidates, err := s.repo.ListAll(ctx, jobID)
	if err != nil {
		return nil, errx.Wrap(err, "failed to load candidates for stats", errx.TypeInternal)
	}
	return buildStats(candidates), nil
}

func buildStats(candidates []candidate.Candidate) *candidate.StatsResponse {
	stats := &candidate.StatsResponse{
		TotalCandidates:   int64(len(candidates)),
		ByPipelineStatus:  make(map[candidate.PipelineStatus]int64),
		ScoreDistribution: make(map[string]int64),
		ByQualification:   make(map[scoring.QualificationStatus]int64),
	}
	for _, band := range distributionBands {
		stats.ScoreDistribution[band.label] = 0
	}

	var sum float64
	for i := range candidates {
		c := &candidates[i]
		sum += c.TotalScore
		stats.ByPipelineStatus[c.PipelineStatus]++
		stats.ScoreDistribution[bandFor(c.TotalScore)]++
		stats.ByQualification[c.Qualification]++
	}
	if len(candidates) > 0 {
		stats.AverageScore = math.Round(sum/float64(len(candidates))*10) / 10
	}
	return stats
}

const topSkillsLimit = 10

// Analytics extends Stats with skill, education and location breakdowns.
func (s *Service) Analytics(ctx context.Context, jobID kernel.JobID) (*candidate.AnalyticsResponse, error) {
	candidates, err := s.repo.ListAll(ctx, jobID)
	if err != nil {
		return nil, errx.Wrap(err, "failed to load candidates for analytics", errx.TypeInternal)
	}

	skillCounts := make(map[string]int64)
	byEducation := make(map[string]int64)
	byLocation := make(map[string]int64)

	for i := range candidates {
		c := &candidates[i]
		for _, skill := range c.Profile.Skills {
			skillCounts[skill]++
		}
		if c.Profile.EducationLevel != "" {
			byEducation[string(c.Profile.EducationLevel)]++
		}
		if c.Location != "" {
			byLocation[c.Location]++
		}
	}

	topSkills := make([]candidate.SkillFrequency, 0, len(skillCounts))
	for skill, count := range skillCounts {
		topSkills = append(topSkills, candidate.SkillFrequency{Skill: skill, Count: count})
	}
	sort.Slice(topSkills, func(i, j int) bool {
		if topSkills[i].Count != topSkills[j].Count {
			return topSkills[i].Count > topSkills[j].Count
		}
		return topSkills[i].Skill < topSkills[j].Skill
	})
	if len(topSkills) > topSkillsLimit {
		topSkills = topSkills[:topSkillsLimit]
	}

	return &candidate.AnalyticsResponse{
		Stats:       *buildStats(candidates),
		TopSkills:   topSkills,
		ByEducation: byEducation,
		ByLocation:  byLocation,
		GeneratedAt: time.Now(),
	}, nil
}
