package jobroles

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepoUpsertAndList(t *testing.T) {
	roles, err := DefaultCatalog()
	require.NoError(t, err)
	repo := NewMemoryRepo(roles)

	updated := roles[0]
	updated.Description = "changed"
	require.NoError(t, repo.Upsert(context.Background(), []JobRole{updated}))

	list, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 5)
	assert.Equal(t, "Backend Developer", list[0].Title)
	for _, r := range list {
		if r.ID == updated.ID {
			assert.Equal(t, "changed", r.Description)
		}
	}
}

func TestPGRepoUpsertRunsInTransaction(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	repo := &PGRepo{DB: db}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO job_roles").
		WithArgs(RoleID("Go Developer"), "Go Developer", []byte(`["Go","SQL"]`), nil, "Mid").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err = repo.Upsert(context.Background(), []JobRole{{Title: "Go Developer", RequiredSkills: []string{"Go", "SQL"}, ExperienceLevel: LevelMid}})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPGRepoList(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	repo := &PGRepo{DB: db}

	mock.ExpectQuery("SELECT id, title, required_skills, description, experience_level\\s+FROM job_roles").
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "required_skills", "description", "experience_level"}).
			AddRow("r1", "Data Scientist", []byte(`["Python","R"]`), "Analyze data", "Mid").
			AddRow("r2", "Go Developer", []byte(`["Go"]`), nil, nil))

	roles, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, roles, 2)
	assert.Equal(t, []string{"Python", "R"}, roles[0].RequiredSkills)
	assert.Equal(t, "", roles[1].Description)
	assert.Equal(t, "", roles[1].ExperienceLevel)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestHandlerListsCatalog(t *testing.T) {
	gin.SetMode(gin.TestMode)
	roles, err := DefaultCatalog()
	require.NoError(t, err)
	router := gin.New()
	NewHandler(NewMemoryRepo(roles)).RegisterRoutes(router.Group("/api"))

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/job-roles", nil))
	require.Equal(t, http.StatusOK, resp.Code)

	var got []JobRole
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &got))
	assert.Len(t, got, 5)
	assert.NotEmpty(t, got[0].ID)
}
