package users

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"resume-insights/internal/identity"
)

type Service struct {
	Repo Repo
}

func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// GetOrCreate returns the internal user for a verified identity, creating
// it on first sight. Existing users are never updated.
func (s *Service) GetOrCreate(ctx context.Context, id identity.Identity) (User, error) {
	if s == nil || s.Repo == nil {
		return User{}, errors.New("users service not configured")
	}
	subject := strings.TrimSpace(id.UID)
	if subject == "" {
		return User{}, errors.New("identity subject is required")
	}
	return s.Repo.GetOrCreate(ctx, User{
		ID:      uuid.NewString(),
		Subject: subject,
		Email:   strings.TrimSpace(id.Email),
		Name:    strings.TrimSpace(id.Name),
	})
}

// ResolveID adapts GetOrCreate to the auth middleware.
func (s *Service) ResolveID(ctx context.Context, id identity.Identity) (string, error) {
	user, err := s.GetOrCreate(ctx, id)
	if err != nil {
		return "", err
	}
	return user.ID, nil
}

func (s *Service) GetByID(ctx context.Context, userID string) (User, error) {
	if s == nil || s.Repo == nil {
		return User{}, errors.New("users service not configured")
	}
	if strings.TrimSpace(userID) == "" {
		return User{}, errors.New("user id is required")
	}
	return s.Repo.GetByID(ctx, userID)
}
