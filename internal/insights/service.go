package insights

import (
	"context"
	"fmt"

	"resume-insights/internal/matching"
	"resume-insights/internal/resumes"
)

type ResumeLister interface {
	List(ctx context.Context, userID string) ([]resumes.Resume, error)
}

type QuestionCounter interface {
	Count(ctx context.Context, userID string) (int, error)
}

type MatchLister interface {
	List(ctx context.Context, userID string) ([]matching.JobMatch, error)
}

// Service reads the other feature services; it stores nothing itself.
type Service struct {
	Resumes   ResumeLister
	Questions QuestionCounter
	Matches   MatchLister
}

func (s *Service) Stats(ctx context.Context, userID string) (DashboardStats, error) {
	list, err := s.Resumes.List(ctx, userID)
	if err != nil {
		return DashboardStats{}, fmt.Errorf("list resumes: %w", err)
	}
	count, err := s.Questions.Count(ctx, userID)
	if err != nil {
		return DashboardStats{}, fmt.Errorf("count questions: %w", err)
	}
	return ComputeStats(list, count), nil
}

func (s *Service) SkillsOverview(ctx context.Context, userID string) (SkillsOverview, error) {
	list, err := s.Resumes.List(ctx, userID)
	if err != nil {
		return SkillsOverview{}, fmt.Errorf("list resumes: %w", err)
	}
	return Overview(list), nil
}

func (s *Service) LearningPath(ctx context.Context, userID string) ([]LearningStep, error) {
	matches, err := s.Matches.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list job matches: %w", err)
	}
	return LearningPath(matches), nil
}
