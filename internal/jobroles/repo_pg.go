package jobroles

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

func (r *PGRepo) List(ctx context.Context) ([]JobRole, error) {
	const query = `
SELECT id, title, required_skills, description, experience_level
FROM job_roles
ORDER BY title ASC`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []JobRole
	for rows.Next() {
		var role JobRole
		var skills []byte
		var description, level sql.NullString
		if err := rows.Scan(&role.ID, &role.Title, &skills, &description, &level); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(skills, &role.RequiredSkills); err != nil {
			return nil, fmt.Errorf("job role %s skills: %w", role.ID, err)
		}
		role.Description = description.String
		role.ExperienceLevel = level.String
		out = append(out, role)
	}
	return out, rows.Err()
}

// Upsert writes the catalog keyed by title in a single transaction.
func (r *PGRepo) Upsert(ctx context.Context, roles []JobRole) error {
	const query = `
INSERT INTO job_roles (id, title, required_skills, description, experience_level)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (title) DO UPDATE SET
  required_skills = EXCLUDED.required_skills,
  description = EXCLUDED.description,
  experience_level = EXCLUDED.experience_level`
	return db.WithTx(ctx, r.DB, func(tx *sql.Tx) error {
		for _, role := range roles {
			skills, err := json.Marshal(role.RequiredSkills)
			if err != nil {
				return err
			}
			id := role.ID
			if id == "" {
				id = RoleID(role.Title)
			}
			if _, err := tx.ExecContext(ctx, query,
				id,
				role.Title,
				skills,
				nullableString(role.Description),
				nullableString(role.ExperienceLevel),
			); err != nil {
				return fmt.Errorf("upsert job role %q: %w", role.Title, err)
			}
		}
		return nil
	})
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
