package users

import (
	"context"
	"database/sql"
	"errors"
)

type PGRepo struct {
	DB *sql.DB
}

// GetOrCreate inserts the user unless the subject is already known, then
// reads back the stored row so concurrent first requests agree on one id.
func (r *PGRepo) GetOrCreate(ctx context.Context, user User) (User, error) {
	const insert = `
INSERT INTO users (id, subject, email, name, created_at)
VALUES ($1, $2, $3, $4, now())
ON CONFLICT (subject) DO NOTHING`
	if _, err := r.DB.ExecContext(ctx, insert, user.ID, user.Subject, user.Email, user.Name); err != nil {
		return User{}, err
	}
	const query = `
SELECT id, subject, email, name, created_at
FROM users
WHERE subject = $1
LIMIT 1`
	return scanUser(r.DB.QueryRowContext(ctx, query, user.Subject))
}

func (r *PGRepo) GetByID(ctx context.Context, userID string) (User, error) {
	const query = `
SELECT id, subject, email, name, created_at
FROM users
WHERE id = $1
LIMIT 1`
	return scanUser(r.DB.QueryRowContext(ctx, query, userID))
}

func scanUser(row *sql.Row) (User, error) {
	var user User
	err := row.Scan(&user.ID, &user.Subject, &user.Email, &user.Name, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	return user, nil
}
