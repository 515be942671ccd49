// Package insights aggregates a user's resumes, questions and job matches
// into the dashboard views.
package insights

import (
	"math"

	"resume-insights/internal/resumes"
)

// DashboardStats is the summary shown at the top of the dashboard.
type DashboardStats struct {
	ResumeCount   int     `json:"resumeCount"`
	SkillCount    int     `json:"skillCount"`
	QuestionCount int     `json:"questionCount"`
	AverageScore  float64 `json:"averageScore"`
}

// SkillsOverview lists the distinct skills across all resumes.
type SkillsOverview struct {
	TechnicalSkills  []string `json:"technicalSkills"`
	SoftSkills       []string `json:"softSkills"`
	TotalSkillsCount int      `json:"totalSkillsCount"`
}

// ComputeStats counts distinct extracted skill names and averages the
// overall score to one decimal place.
func ComputeStats(list []resumes.Resume, questionCount int) DashboardStats {
	stats := DashboardStats{ResumeCount: len(list), QuestionCount: questionCount}
	if len(list) == 0 {
		return stats
	}
	seen := make(map[string]struct{})
	total := 0
	for _, r := range list {
		total += r.OverallScore
		for _, s := range r.ExtractedSkills {
			seen[s] = struct{}{}
		}
	}
	stats.SkillCount = len(seen)
	stats.AverageScore = math.Round(float64(total)/float64(len(list))*10) / 10
	return stats
}

// Overview keeps the first occurrence of each name, walking resumes newest
// first.
func Overview(list []resumes.Resume) SkillsOverview {
	technical := distinct(list, func(r resumes.Resume) []string { return r.TechnicalSkills })
	soft := distinct(list, func(r resumes.Resume) []string { return r.SoftSkills })
	return SkillsOverview{
		TechnicalSkills:  technical,
		SoftSkills:       soft,
		TotalSkillsCount: len(technical) + len(soft),
	}
}

func distinct(list []resumes.Resume, pick func(resumes.Resume) []string) []string {
	out := make([]string, 0)
	seen := make(map[string]struct{})
	for _, r := range list {
		for _, s := range pick(r) {
			if _, ok := seen[s]; ok {
				continue
			}
			seen[s] = struct{}{}
			out = append(out, s)
		}
	}
	return out
}
