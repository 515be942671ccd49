package jobroles

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("job role not found")

// Repo lists the catalog in a stable order and seeds it.
type Repo interface {
	List(ctx context.Context) ([]JobRole, error)
	Upsert(ctx context.Context, roles []JobRole) error
}
