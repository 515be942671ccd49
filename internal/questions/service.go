package questions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"resume-insights/internal/shared/metrics"
	"resume-insights/internal/shared/telemetry"
	"resume-insights/internal/skills"
)

// RecentLimit is how many questions the dashboard shows.
const RecentLimit = 10

type Service struct {
	Repo      Repo
	Generator Generator
	Timeout   time.Duration
	Now       func() time.Time
}

func NewService(repo Repo, gen Generator, timeout time.Duration) *Service {
	return &Service{Repo: repo, Generator: gen, Timeout: timeout, Now: time.Now}
}

// GenerateForResume produces questions for the resume's skills and stores
// them under the user, tagged with resumeID.
func (s *Service) GenerateForResume(ctx context.Context, userID, resumeID string, skillNames []string) ([]Question, error) {
	if s == nil || s.Repo == nil {
		return nil, errors.New("questions service not configured")
	}
	names := skills.Dedupe(skillNames)
	if len(names) == 0 {
		return []Question{}, nil
	}
	items := s.generate(ctx, names)

	now := s.now()
	qs := make([]Question, 0, len(items))
	for _, item := range items {
		qs = append(qs, Question{
			ID:         uuid.NewString(),
			UserID:     userID,
			ResumeID:   resumeID,
			Skill:      item.Skill,
			Difficulty: item.Difficulty,
			Question:   item.Question,
			Category:   item.Category,
			CreatedAt:  now,
		})
	}
	if err := s.Repo.CreateBatch(ctx, qs); err != nil {
		return nil, fmt.Errorf("store interview questions: %w", err)
	}
	return qs, nil
}

// Regenerate creates a fresh set from skills that is not tied to a resume,
// so deleting a resume leaves it in place.
func (s *Service) Regenerate(ctx context.Context, userID string, skillNames []string) ([]Question, error) {
	return s.GenerateForResume(ctx, userID, "", skillNames)
}

func (s *Service) generate(ctx context.Context, names []string) []Item {
	if s.Generator != nil {
		callCtx := ctx
		if s.Timeout > 0 {
			var cancel context.CancelFunc
			callCtx, cancel = context.WithTimeout(ctx, s.Timeout)
			defer cancel()
		}
		items, err := s.Generator.Generate(callCtx, names)
		if err == nil && len(items) > 0 {
			return items
		}
		if err == nil {
			err = errors.New("generator returned no questions")
		}
		metrics.IncQuestionsFallback()
		telemetry.Warn("questions.generator_fallback", map[string]any{
			"error":      err,
			"request_id": telemetry.RequestIDFrom(ctx),
		})
	}
	return Fallback(names)
}

// Recent returns the newest RecentLimit questions.
func (s *Service) Recent(ctx context.Context, userID string) ([]Question, error) {
	all, err := s.Repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(all) > RecentLimit {
		all = all[:RecentLimit]
	}
	return all, nil
}

func (s *Service) List(ctx context.Context, userID string) ([]Question, error) {
	return s.Repo.ListByUser(ctx, userID)
}

func (s *Service) Count(ctx context.Context, userID string) (int, error) {
	return s.Repo.CountByUser(ctx, userID)
}

// Delete removes a question the user owns.
func (s *Service) Delete(ctx context.Context, userID, id string) error {
	return s.Repo.Delete(ctx, userID, id)
}

// DeleteByResume removes the questions generated from one resume.
func (s *Service) DeleteByResume(ctx context.Context, userID, resumeID string) error {
	return s.Repo.DeleteByResume(ctx, userID, resumeID)
}

func (s *Service) now() time.Time {
	if s.Now == nil {
		return time.Now().UTC()
	}
	return s.Now().UTC()
}
