package questions

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("interview question not found")

// Repo stores interview questions. Lists are newest first.
type Repo interface {
	CreateBatch(ctx context.Context, qs []Question) error
	ListByUser(ctx context.Context, userID string) ([]Question, error)
	CountByUser(ctx context.Context, userID string) (int, error)
	// Delete removes one question owned by userID, or returns ErrNotFound.
	Delete(ctx context.Context, userID, id string) error
	DeleteByResume(ctx context.Context, userID, resumeID string) error
}
