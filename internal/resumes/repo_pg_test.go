package resumes

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pgColumns = []string{
	"id", "user_id", "filename", "mime_type", "size_bytes", "storage_key", "original_text",
	"technical_skills", "soft_skills", "extracted_skills",
	"overall_score", "skill_match_percentage", "format_quality", "keyword_density", "created_at",
}

func TestPGRepoCreateEncodesSkillLists(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	repo := &PGRepo{DB: db}
	created := time.Date(2026, time.April, 2, 10, 0, 0, 0, time.UTC)

	mock.ExpectExec("INSERT INTO resumes").
		WithArgs("r1", "u1", "cv.pdf", "application/pdf", int64(2048), nil, "text",
			[]byte(`["Go"]`), []byte(`[]`), []byte(`["Go"]`), 3, 5, 6, 2, created).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err = repo.Create(context.Background(), Resume{
		ID: "r1", UserID: "u1", Filename: "cv.pdf", MimeType: "application/pdf", SizeBytes: 2048,
		OriginalText: "text", TechnicalSkills: []string{"Go"}, ExtractedSkills: []string{"Go"},
		OverallScore: 3, SkillMatchPercentage: 5, FormatQuality: 6, KeywordDensity: 2, CreatedAt: created,
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPGRepoListAndGet(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	repo := &PGRepo{DB: db}
	created := time.Date(2026, time.April, 2, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery("FROM resumes\\s+WHERE user_id = \\$1\\s+ORDER BY created_at DESC").
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows(pgColumns).
			AddRow("r2", "u1", "b.pdf", "application/pdf", 10, "k2", "b", []byte(`["Go","SQL"]`), []byte(`["Leadership"]`), []byte(`["Go","SQL","Leadership"]`), 1, 15, 5, 3, created.Add(time.Hour)).
			AddRow("r1", "u1", "a.pdf", "application/pdf", 10, nil, "a", []byte(`[]`), []byte(`[]`), []byte(`[]`), 0, 0, 4, 0, created))

	list, err := repo.ListByUser(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "r2", list[0].ID)
	assert.Equal(t, "k2", list[0].StorageKey)
	assert.Equal(t, []string{"Go", "SQL", "Leadership"}, list[0].ExtractedSkills)
	assert.Empty(t, list[1].StorageKey)
	assert.Equal(t, []string{}, list[1].TechnicalSkills)

	mock.ExpectQuery("FROM resumes\\s+WHERE user_id = \\$1 AND id = \\$2").
		WithArgs("u2", "r1").
		WillReturnRows(sqlmock.NewRows(pgColumns))
	_, err = repo.GetByID(context.Background(), "u2", "r1")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPGRepoDelete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	repo := &PGRepo{DB: db}

	mock.ExpectExec("DELETE FROM resumes WHERE user_id = \\$1 AND id = \\$2").
		WithArgs("u1", "r1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM resumes WHERE user_id = \\$1 AND id = \\$2").
		WithArgs("u2", "r1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Delete(context.Background(), "u1", "r1"))
	assert.ErrorIs(t, repo.Delete(context.Background(), "u2", "r1"), ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
