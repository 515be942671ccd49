package object

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"resume-insights/internal/shared/util"
)

// ErrNotFound is returned when a storage key does not exist.
var ErrNotFound = errors.New("object not found")

// Upload describes one resume file to archive.
type Upload struct {
	UserID      string
	ResumeID    string
	FileName    string
	ContentType string
	Body        io.Reader
}

// ObjectStore archives uploaded resume files per user.
type ObjectStore interface {
	Save(ctx context.Context, up Upload) (storageKey string, sizeBytes int64, err error)
	Open(ctx context.Context, storageKey string) (io.ReadCloser, error)
	Delete(ctx context.Context, storageKey string) error
}

// Key builds the slash-separated storage key for an upload:
// <user namespace>/<resume id>/<sanitized file name>.
func Key(up Upload) (string, error) {
	resumeID := strings.TrimSpace(up.ResumeID)
	if resumeID == "" || strings.ContainsAny(resumeID, `/\`) || strings.Contains(resumeID, "..") {
		return "", fmt.Errorf("invalid resume id %q", up.ResumeID)
	}
	if strings.TrimSpace(up.UserID) == "" {
		return "", errors.New("user id is required")
	}
	name, err := util.SanitizeFileName(up.FileName)
	if err != nil {
		return "", fmt.Errorf("sanitize file name: %w", err)
	}
	if name == "." {
		return "", fmt.Errorf("invalid file name %q", up.FileName)
	}
	return path.Join(util.UserNamespace(up.UserID), resumeID, name), nil
}

// ContentTypeOrDefault falls back to a generic binary type.
func ContentTypeOrDefault(contentType string) string {
	if ct := strings.TrimSpace(contentType); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
