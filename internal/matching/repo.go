package matching

import "context"

// Repo stores job matches. Lists are newest first.
type Repo interface {
	// ReplaceForResume swaps the resume's matches for the given set atomically.
	ReplaceForResume(ctx context.Context, userID, resumeID string, matches []JobMatch) error
	ListByUser(ctx context.Context, userID string) ([]JobMatch, error)
	DeleteByResume(ctx context.Context, userID, resumeID string) error
}
