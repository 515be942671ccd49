package resumes

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// PGRepo implements Repo using Postgres; skill lists are stored as JSONB.
type PGRepo struct {
	DB *sql.DB
}

const selectColumns = `id, user_id, filename, mime_type, size_bytes, storage_key, original_text,
       technical_skills, soft_skills, extracted_skills,
       overall_score, skill_match_percentage, format_quality, keyword_density, created_at`

func (r *PGRepo) Create(ctx context.Context, res Resume) error {
	const query = `
INSERT INTO resumes (
    id,
    user_id,
    filename,
    mime_type,
    size_bytes,
    storage_key,
    original_text,
    technical_skills,
    soft_skills,
    extracted_skills,
    overall_score,
    skill_match_percentage,
    format_quality,
    keyword_density,
    created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

	technical, err := marshalList(res.TechnicalSkills)
	if err != nil {
		return err
	}
	soft, err := marshalList(res.SoftSkills)
	if err != nil {
		return err
	}
	extracted, err := marshalList(res.ExtractedSkills)
	if err != nil {
		return err
	}

	var storageKey sql.NullString
	if res.StorageKey != "" {
		storageKey = sql.NullString{String: res.StorageKey, Valid: true}
	}

	_, err = r.DB.ExecContext(
		ctx,
		query,
		res.ID,
		res.UserID,
		res.Filename,
		res.MimeType,
		res.SizeBytes,
		storageKey,
		res.OriginalText,
		technical,
		soft,
		extracted,
		res.OverallScore,
		res.SkillMatchPercentage,
		res.FormatQuality,
		res.KeywordDensity,
		res.CreatedAt,
	)
	return err
}

func (r *PGRepo) ListByUser(ctx context.Context, userID string) ([]Resume, error) {
	query := `
SELECT ` + selectColumns + `
FROM resumes
WHERE user_id = $1
ORDER BY created_at DESC, id DESC`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Resume, 0)
	for rows.Next() {
		res, err := scanResume(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, rows.Err()
}

func (r *PGRepo) GetByID(ctx context.Context, userID, id string) (Resume, error) {
	query := `
SELECT ` + selectColumns + `
FROM resumes
WHERE user_id = $1 AND id = $2
LIMIT 1`
	res, err := scanResume(r.DB.QueryRowContext(ctx, query, userID, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Resume{}, ErrNotFound
		}
		return Resume{}, err
	}
	return res, nil
}

// Delete removes the resume; job matches and resume-bound questions follow
// through ON DELETE CASCADE.
func (r *PGRepo) Delete(ctx context.Context, userID, id string) error {
	const query = `DELETE FROM resumes WHERE user_id = $1 AND id = $2`
	result, err := r.DB.ExecContext(ctx, query, userID, id)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanResume(row rowScanner) (Resume, error) {
	var res Resume
	var storageKey sql.NullString
	var technical, soft, extracted []byte
	if err := row.Scan(
		&res.ID,
		&res.UserID,
		&res.Filename,
		&res.MimeType,
		&res.SizeBytes,
		&storageKey,
		&res.OriginalText,
		&technical,
		&soft,
		&extracted,
		&res.OverallScore,
		&res.SkillMatchPercentage,
		&res.FormatQuality,
		&res.KeywordDensity,
		&res.CreatedAt,
	); err != nil {
		return Resume{}, err
	}
	if storageKey.Valid {
		res.StorageKey = storageKey.String
	}
	for _, col := range []struct {
		raw []byte
		dst *[]string
	}{
		{technical, &res.TechnicalSkills},
		{soft, &res.SoftSkills},
		{extracted, &res.ExtractedSkills},
	} {
		if err := json.Unmarshal(col.raw, col.dst); err != nil {
			return Resume{}, fmt.Errorf("resume %s skills: %w", res.ID, err)
		}
	}
	return res, nil
}

func marshalList(s []string) ([]byte, error) {
	if s == nil {
		s = []string{}
	}
	return json.Marshal(s)
}
