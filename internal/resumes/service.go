package resumes

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"resume-insights/internal/events"
	"resume-insights/internal/extract"
	"resume-insights/internal/matching"
	"resume-insights/internal/questions"
	"resume-insights/internal/scoring"
	"resume-insights/internal/shared/metrics"
	"resume-insights/internal/shared/storage/object"
	"resume-insights/internal/shared/telemetry"
	"resume-insights/internal/skills"
)

// RecentLimit is how many resumes the dashboard shows.
const RecentLimit = 5

// JobMatcher computes and clears the job matches of a resume.
type JobMatcher interface {
	MatchJobRoles(ctx context.Context, userID, resumeID string, skills []string) ([]matching.JobMatch, error)
	DeleteByResume(ctx context.Context, userID, resumeID string) error
}

// QuestionGenerator creates and clears the interview questions of a resume.
type QuestionGenerator interface {
	GenerateForResume(ctx context.Context, userID, resumeID string, skills []string) ([]questions.Question, error)
	DeleteByResume(ctx context.Context, userID, resumeID string) error
}

// Service runs the upload pipeline and owns the resume lifecycle.
type Service struct {
	Repo       Repo
	Store      object.ObjectStore
	Classifier skills.Classifier
	Matcher    JobMatcher
	Questions  QuestionGenerator
	Events     events.Publisher
	Now        func() time.Time
}

// Upload extracts, classifies and scores the document, stores it, then
// matches job roles and generates interview questions. Only parsing,
// classification and the resume insert can fail the upload; the later steps
// are logged and skipped on error.
func (s *Service) Upload(ctx context.Context, userID, fileName, mimeType string, data []byte) (Resume, error) {
	start := time.Now()
	res, err := s.upload(ctx, userID, fileName, mimeType, data)
	if err != nil {
		metrics.IncResumeUploadFailed()
		return Resume{}, err
	}
	metrics.IncResumeUpload()
	metrics.ObservePipelineDurationMs(float64(time.Since(start).Microseconds()) / 1000.0)
	return res, nil
}

func (s *Service) upload(ctx context.Context, userID, fileName, mimeType string, data []byte) (Resume, error) {
	fileName = strings.TrimSpace(fileName)
	if userID == "" || fileName == "" || len(data) == 0 {
		return Resume{}, ErrInvalidInput
	}
	mimeType = ResolveMimeType(mimeType, fileName)
	if !extract.Supported(mimeType) {
		return Resume{}, fmt.Errorf("%w: %s", ErrUnsupportedType, mimeType)
	}

	raw, err := extract.FromBytes(ctx, data, mimeType, fileName)
	if err != nil {
		return Resume{}, err
	}
	text, err := extract.Normalize(raw)
	if err != nil {
		return Resume{}, err
	}

	// The document is readable; finish the work even if the client goes away.
	ctx = context.WithoutCancel(ctx)

	result, err := s.Classifier.Classify(ctx, text)
	if err != nil {
		return Resume{}, fmt.Errorf("classify skills: %w", err)
	}
	scores := scoring.Compute(scoring.Input{Technical: result.Technical, Soft: result.Soft, Text: text})

	res := Resume{
		ID:                   uuid.NewString(),
		UserID:               userID,
		Filename:             fileName,
		MimeType:             mimeType,
		SizeBytes:            int64(len(data)),
		OriginalText:         text,
		TechnicalSkills:      result.Technical,
		SoftSkills:           result.Soft,
		ExtractedSkills:      result.All(),
		OverallScore:         scores.Overall,
		SkillMatchPercentage: scores.SkillMatchPercentage,
		FormatQuality:        scores.FormatQuality,
		KeywordDensity:       scores.KeywordDensity,
		CreatedAt:            s.now(),
	}

	if s.Store != nil {
		key, _, err := s.Store.Save(ctx, object.Upload{
			UserID:      userID,
			ResumeID:    res.ID,
			FileName:    fileName,
			ContentType: mimeType,
			Body:        bytes.NewReader(data),
		})
		if err != nil {
			return Resume{}, fmt.Errorf("archive upload: %w", err)
		}
		res.StorageKey = key
	}

	if err := s.Repo.Create(ctx, res); err != nil {
		s.discardObject(ctx, res.StorageKey)
		return Resume{}, fmt.Errorf("store resume: %w", err)
	}

	logFields := func(step string, err error) map[string]any {
		return map[string]any{
			"step":       step,
			"resume_id":  res.ID,
			"user_id":    userID,
			"request_id": telemetry.RequestIDFrom(ctx),
			"error":      err,
		}
	}

	matchCount := 0
	if s.Matcher != nil {
		matches, err := s.Matcher.MatchJobRoles(ctx, userID, res.ID, res.ExtractedSkills)
		if err != nil {
			telemetry.Error("resume.pipeline_step_failed", logFields("match_job_roles", err))
		}
		matchCount = len(matches)
	}
	if s.Questions != nil {
		if _, err := s.Questions.GenerateForResume(ctx, userID, res.ID, res.ExtractedSkills); err != nil {
			telemetry.Error("resume.pipeline_step_failed", logFields("generate_questions", err))
		}
	}

	evt := events.New(events.TypeResumeProcessed, userID, res.ID, telemetry.RequestIDFrom(ctx), s.now())
	evt.OverallScore = res.OverallScore
	evt.SkillCount = len(res.ExtractedSkills)
	evt.MatchCount = matchCount
	events.PublishBestEffort(ctx, s.Events, evt)

	telemetry.Info("resume.processed", map[string]any{
		"resume_id":     res.ID,
		"user_id":       userID,
		"request_id":    telemetry.RequestIDFrom(ctx),
		"overall_score": res.OverallScore,
		"skill_count":   len(res.ExtractedSkills),
		"match_count":   matchCount,
	})
	return res, nil
}

// List returns every resume of the user, newest first.
func (s *Service) List(ctx context.Context, userID string) ([]Resume, error) {
	return s.Repo.ListByUser(ctx, userID)
}

// Recent returns the newest RecentLimit resumes.
func (s *Service) Recent(ctx context.Context, userID string) ([]Resume, error) {
	all, err := s.Repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(all) > RecentLimit {
		all = all[:RecentLimit]
	}
	return all, nil
}

func (s *Service) Get(ctx context.Context, userID, id string) (Resume, error) {
	return s.Repo.GetByID(ctx, userID, id)
}

// LatestSkills returns the extracted skills of the user's newest resume.
func (s *Service) LatestSkills(ctx context.Context, userID string) ([]string, bool, error) {
	all, err := s.Repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, false, err
	}
	if len(all) == 0 {
		return nil, false, nil
	}
	return all[0].ExtractedSkills, true, nil
}

// Download opens the archived original of a resume the user owns.
func (s *Service) Download(ctx context.Context, userID, id string) (Resume, io.ReadCloser, error) {
	res, err := s.Repo.GetByID(ctx, userID, id)
	if err != nil {
		return Resume{}, nil, err
	}
	if s.Store == nil || res.StorageKey == "" {
		return Resume{}, nil, ErrNotFound
	}
	rc, err := s.Store.Open(ctx, res.StorageKey)
	if err != nil {
		if errors.Is(err, object.ErrNotFound) {
			return Resume{}, nil, ErrNotFound
		}
		return Resume{}, nil, fmt.Errorf("open archived resume: %w", err)
	}
	return res, rc, nil
}

// Delete removes a resume with its job matches, the questions generated from
// it and its archived file. Deleting a resume the user does not own is a
// no-op.
func (s *Service) Delete(ctx context.Context, userID, id string) error {
	res, err := s.Repo.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil
		}
		return err
	}
	if s.Matcher != nil {
		if err := s.Matcher.DeleteByResume(ctx, userID, id); err != nil {
			return fmt.Errorf("delete job matches: %w", err)
		}
	}
	if s.Questions != nil {
		if err := s.Questions.DeleteByResume(ctx, userID, id); err != nil {
			return fmt.Errorf("delete interview questions: %w", err)
		}
	}
	if err := s.Repo.Delete(ctx, userID, id); err != nil && !errors.Is(err, ErrNotFound) {
		return fmt.Errorf("delete resume: %w", err)
	}
	s.discardObject(ctx, res.StorageKey)

	events.PublishBestEffort(ctx, s.Events, events.New(events.TypeResumeDeleted, userID, id, telemetry.RequestIDFrom(ctx), s.now()))
	return nil
}

func (s *Service) discardObject(ctx context.Context, key string) {
	if s.Store == nil || key == "" {
		return
	}
	if err := s.Store.Delete(ctx, key); err != nil {
		telemetry.Warn("resume.object_delete_failed", map[string]any{
			"storage_key": key,
			"request_id":  telemetry.RequestIDFrom(ctx),
			"error":       err,
		})
	}
}

func (s *Service) now() time.Time {
	if s.Now == nil {
		return time.Now().UTC()
	}
	return s.Now().UTC()
}

// ResolveMimeType lowercases the declared type and falls back to the file
// extension when the client sent none or a generic binary type.
func ResolveMimeType(declared, fileName string) string {
	clean := strings.ToLower(strings.TrimSpace(strings.Split(declared, ";")[0]))
	switch clean {
	case "", "application/octet-stream":
		return extract.MimeFromFileName(fileName)
	default:
		return clean
	}
}
