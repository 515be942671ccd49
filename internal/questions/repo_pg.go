package questions

import (
	"context"
	"database/sql"
	"fmt"

	"resume-insights/internal/shared/storage/db"
)

type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) CreateBatch(ctx context.Context, qs []Question) error {
	const query = `
INSERT INTO interview_questions (id, user_id, resume_id, skill, difficulty, question, category, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	return db.WithTx(ctx, r.DB, func(tx *sql.Tx) error {
		for _, q := range qs {
			if _, err := tx.ExecContext(ctx, query,
				q.ID, q.UserID, nullableString(q.ResumeID), q.Skill, q.Difficulty, q.Question, q.Category, q.CreatedAt,
			); err != nil {
				return fmt.Errorf("insert interview question: %w", err)
			}
		}
		return nil
	})
}

func (r *PGRepo) ListByUser(ctx context.Context, userID string) ([]Question, error) {
	const query = `
SELECT id, user_id, resume_id, skill, difficulty, question, category, created_at
FROM interview_questions
WHERE user_id = $1
ORDER BY created_at DESC, id DESC`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Question, 0)
	for rows.Next() {
		var q Question
		var resumeID sql.NullString
		if err := rows.Scan(&q.ID, &q.UserID, &resumeID, &q.Skill, &q.Difficulty, &q.Question, &q.Category, &q.CreatedAt); err != nil {
			return nil, err
		}
		q.ResumeID = resumeID.String
		out = append(out, q)
	}
	return out, rows.Err()
}

func (r *PGRepo) CountByUser(ctx context.Context, userID string) (int, error) {
	const query = `SELECT COUNT(*) FROM interview_questions WHERE user_id = $1`
	var n int
	err := r.DB.QueryRowContext(ctx, query, userID).Scan(&n)
	return n, err
}

func (r *PGRepo) Delete(ctx context.Context, userID, id string) error {
	const query = `DELETE FROM interview_questions WHERE id = $1 AND user_id = $2`
	res, err := r.DB.ExecContext(ctx, query, id, userID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PGRepo) DeleteByResume(ctx context.Context, userID, resumeID string) error {
	const query = `DELETE FROM interview_questions WHERE user_id = $1 AND resume_id = $2`
	_, err := r.DB.ExecContext(ctx, query, userID, resumeID)
	return err
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
