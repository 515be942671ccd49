package matching

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"resume-insights/internal/jobroles"
)

// RecentLimit is how many matches the dashboard shows.
const RecentLimit = 5

type Service struct {
	Repo  Repo
	Roles jobroles.Repo
	Now   func() time.Time
}

func NewService(repo Repo, roles jobroles.Repo) *Service {
	return &Service{Repo: repo, Roles: roles, Now: time.Now}
}

// MatchJobRoles evaluates the whole catalog against skills and replaces the
// resume's stored matches with those above Threshold.
func (s *Service) MatchJobRoles(ctx context.Context, userID, resumeID string, skills []string) ([]JobMatch, error) {
	if s == nil || s.Repo == nil || s.Roles == nil {
		return nil, errors.New("matching service not configured")
	}
	roles, err := s.Roles.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load job roles: %w", err)
	}
	now := s.now()
	evaluations := MatchAll(skills, roles)
	matches := make([]JobMatch, 0, len(evaluations))
	for _, ev := range evaluations {
		role := ev.Role
		matches = append(matches, JobMatch{
			ID:              uuid.NewString(),
			UserID:          userID,
			ResumeID:        resumeID,
			JobRoleID:       role.ID,
			MatchPercentage: ev.MatchPercentage,
			MissingSkills:   ev.MissingSkills,
			CreatedAt:       now,
			JobRole:         &role,
		})
	}
	if err := s.Repo.ReplaceForResume(ctx, userID, resumeID, matches); err != nil {
		return nil, fmt.Errorf("store job matches: %w", err)
	}
	return matches, nil
}

// Recent returns the newest RecentLimit matches with their roles attached.
func (s *Service) Recent(ctx context.Context, userID string) ([]JobMatch, error) {
	all, err := s.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(all) > RecentLimit {
		all = all[:RecentLimit]
	}
	return all, nil
}

// List returns every match for the user, newest first, with roles attached.
func (s *Service) List(ctx context.Context, userID string) ([]JobMatch, error) {
	matches, err := s.Repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	roles, err := s.Roles.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load job roles: %w", err)
	}
	byID := make(map[string]jobroles.JobRole, len(roles))
	for _, r := range roles {
		byID[r.ID] = r
	}
	for i := range matches {
		if role, ok := byID[matches[i].JobRoleID]; ok {
			matches[i].JobRole = &role
		}
	}
	return matches, nil
}

// DeleteByResume removes the matches computed for one resume.
func (s *Service) DeleteByResume(ctx context.Context, userID, resumeID string) error {
	return s.Repo.DeleteByResume(ctx, userID, resumeID)
}

func (s *Service) now() time.Time {
	if s.Now == nil {
		return time.Now().UTC()
	}
	return s.Now().UTC()
}
