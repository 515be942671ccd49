package matching

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"resume-insights/internal/shared/storage/db"
)

type PGRepo struct {
	DB *sql.DB
}

// ReplaceForResume deletes and re-inserts the resume's matches in one
// transaction, so reprocessing never accumulates duplicates.
func (r *PGRepo) ReplaceForResume(ctx context.Context, userID, resumeID string, matches []JobMatch) error {
	const del = `DELETE FROM job_matches WHERE user_id = $1 AND resume_id = $2`
	const insert = `
INSERT INTO job_matches (id, user_id, resume_id, job_role_id, match_percentage, missing_skills, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`
	return db.WithTx(ctx, r.DB, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, del, userID, resumeID); err != nil {
			return fmt.Errorf("delete job matches: %w", err)
		}
		for _, m := range matches {
			missing, err := json.Marshal(nonNil(m.MissingSkills))
			if err != nil {
				return err
			}
			if _, err := tx.ExecContext(ctx, insert,
				m.ID, userID, resumeID, m.JobRoleID, m.MatchPercentage, missing, m.CreatedAt,
			); err != nil {
				return fmt.Errorf("insert job match: %w", err)
			}
		}
		return nil
	})
}

func (r *PGRepo) ListByUser(ctx context.Context, userID string) ([]JobMatch, error) {
	const query = `
SELECT id, user_id, resume_id, job_role_id, match_percentage, missing_skills, created_at
FROM job_matches
WHERE user_id = $1
ORDER BY created_at DESC, id DESC`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]JobMatch, 0)
	for rows.Next() {
		var m JobMatch
		var missing []byte
		if err := rows.Scan(&m.ID, &m.UserID, &m.ResumeID, &m.JobRoleID, &m.MatchPercentage, &missing, &m.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(missing, &m.MissingSkills); err != nil {
			return nil, fmt.Errorf("job match %s missing skills: %w", m.ID, err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *PGRepo) DeleteByResume(ctx context.Context, userID, resumeID string) error {
	const query = `DELETE FROM job_matches WHERE user_id = $1 AND resume_id = $2`
	_, err := r.DB.ExecContext(ctx, query, userID, resumeID)
	return err
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
