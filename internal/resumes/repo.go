package resumes

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when the resume does not exist for the user.
	ErrNotFound = errors.New("resume not found")
	// ErrInvalidInput is returned for uploads missing a name or content.
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnsupportedType is returned for mime types outside the accepted set.
	ErrUnsupportedType = errors.New("unsupported file type")
)

// Repo persists resumes. Lists are newest first.
type Repo interface {
	Create(ctx context.Context, r Resume) error
	ListByUser(ctx context.Context, userID string) ([]Resume, error)
	GetByID(ctx context.Context, userID, id string) (Resume, error)
	Delete(ctx context.Context, userID, id string) error
}
