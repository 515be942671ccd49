package users

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("user not found")

type Repo interface {
	// GetOrCreate returns the user with user.Subject, inserting user if none exists.
	GetOrCreate(ctx context.Context, user User) (User, error)
	GetByID(ctx context.Context, userID string) (User, error)
}
