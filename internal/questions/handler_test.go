package questions

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSkills struct {
	skills []string
	ok     bool
}

func (s stubSkills) LatestSkills(ctx context.Context, userID string) ([]string, bool, error) {
	return s.skills, s.ok, nil
}

func newRouter(svc *Service, src SkillSource, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api", func(c *gin.Context) {
		c.Set("userId", userID)
		c.Next()
	})
	NewHandler(svc, src).RegisterRoutes(api)
	return router
}

func TestGenerateRouteUsesLatestResumeSkills(t *testing.T) {
	svc := newTestService(nil)
	router := newRouter(svc, stubSkills{skills: []string{"React"}, ok: true}, "u1")

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodPost, "/api/interview-questions/generate", nil))
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	var got []Question
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &got))
	require.Len(t, got, 4)
	assert.Empty(t, got[0].ResumeID)
}

func TestGenerateRouteWithoutResumeIs404(t *testing.T) {
	router := newRouter(newTestService(nil), stubSkills{}, "u1")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodPost, "/api/interview-questions/generate", nil))
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestDeleteRouteChecksOwnership(t *testing.T) {
	svc := newTestService(nil)
	qs, err := svc.GenerateForResume(context.Background(), "owner", "r1", []string{"SQL"})
	require.NoError(t, err)

	intruder := newRouter(svc, stubSkills{}, "intruder")
	resp := httptest.NewRecorder()
	intruder.ServeHTTP(resp, httptest.NewRequest(http.MethodDelete, "/api/interview-questions/"+qs[0].ID, nil))
	assert.Equal(t, http.StatusNotFound, resp.Code)

	owner := newRouter(svc, stubSkills{}, "owner")
	resp = httptest.NewRecorder()
	owner.ServeHTTP(resp, httptest.NewRequest(http.MethodDelete, "/api/interview-questions/"+qs[0].ID, nil))
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"success":true}`, resp.Body.String())

	resp = httptest.NewRecorder()
	owner.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/interview-questions/recent", nil))
	require.Equal(t, http.StatusOK, resp.Code)
	var recent []Question
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &recent))
	assert.Len(t, recent, 3)
}
