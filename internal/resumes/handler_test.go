package resumes

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-insights/internal/extract"
)

func newRouter(svc *Service, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api", func(c *gin.Context) {
		c.Set("userId", userID)
		c.Next()
	})
	h := NewHandler(svc)
	api.POST("/resumes/upload", h.Upload)
	h.RegisterRoutes(api)
	return router
}

func uploadRequest(t *testing.T, field, fileName, contentType string, data []byte) *http.Request {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+fileName+`"`)
	if contentType != "" {
		header.Set("Content-Type", contentType)
	}
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/resumes/upload", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

type errorBody struct {
	Error struct {
		Code string `json:"code"`
	} `json:"error"`
}

func TestUploadRouteProcessesResume(t *testing.T) {
	f := newFixture(t)
	router := newRouter(f.svc, "u1")

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, uploadRequest(t, "resume", "cv.docx", extract.MimeDOCX, docxWithText(t, resumeBody)))
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	var body struct {
		Success  bool   `json:"success"`
		ResumeID string `json:"resumeId"`
		Message  string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.NotEmpty(t, body.ResumeID)
	assert.Equal(t, "Resume uploaded and processed successfully", body.Message)

	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/resumes/recent", nil))
	require.Equal(t, http.StatusOK, resp.Code)
	var list []Resume
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, body.ResumeID, list[0].ID)
}

func TestUploadRouteErrors(t *testing.T) {
	f := newFixture(t)
	router := newRouter(f.svc, "u1")

	cases := []struct {
		name   string
		req    *http.Request
		status int
		code   string
	}{
		{"missing field", uploadRequest(t, "file", "cv.pdf", extract.MimePDF, []byte("%PDF")), http.StatusBadRequest, "validation_error"},
		{"unsupported type", uploadRequest(t, "resume", "cv.txt", "text/plain", []byte("plain text resume")), http.StatusBadRequest, "validation_error"},
		{"unparseable pdf", uploadRequest(t, "resume", "cv.pdf", extract.MimePDF, []byte("not really a pdf")), http.StatusUnprocessableEntity, "parse_error"},
		{"too large", uploadRequest(t, "resume", "cv.pdf", extract.MimePDF, make([]byte, maxUploadSize+1)), http.StatusBadRequest, "validation_error"},
		{"exactly at size limit", uploadRequest(t, "resume", "cv.pdf", extract.MimePDF, make([]byte, maxUploadSize)), http.StatusUnprocessableEntity, "parse_error"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := httptest.NewRecorder()
			router.ServeHTTP(resp, tc.req)
			require.Equal(t, tc.status, resp.Code, resp.Body.String())
			var body errorBody
			require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
			assert.Equal(t, tc.code, body.Error.Code)
		})
	}

	list, err := f.svc.List(t.Context(), "u1")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestGetDownloadAndDeleteRoutes(t *testing.T) {
	f := newFixture(t)
	data := docxWithText(t, resumeBody)
	res, err := f.svc.Upload(t.Context(), "u1", "cv.docx", extract.MimeDOCX, data)
	require.NoError(t, err)

	owner := newRouter(f.svc, "u1")
	stranger := newRouter(f.svc, "u2")

	resp := httptest.NewRecorder()
	stranger.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/resumes/"+res.ID, nil))
	assert.Equal(t, http.StatusNotFound, resp.Code)

	resp = httptest.NewRecorder()
	owner.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/resumes/"+res.ID, nil))
	require.Equal(t, http.StatusOK, resp.Code)
	var got Resume
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &got))
	assert.Equal(t, res.ID, got.ID)

	resp = httptest.NewRecorder()
	owner.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/resumes/"+res.ID+"/download", nil))
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, data, resp.Body.Bytes())
	assert.Contains(t, resp.Header().Get("Content-Disposition"), "cv.docx")

	resp = httptest.NewRecorder()
	stranger.ServeHTTP(resp, httptest.NewRequest(http.MethodDelete, "/api/resumes/"+res.ID, nil))
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"success":true}`, resp.Body.String())
	_, err = f.svc.Get(t.Context(), "u1", res.ID)
	require.NoError(t, err)

	resp = httptest.NewRecorder()
	owner.ServeHTTP(resp, httptest.NewRequest(http.MethodDelete, "/api/resumes/"+res.ID, nil))
	assert.Equal(t, http.StatusOK, resp.Code)
	_, err = f.svc.Get(t.Context(), "u1", res.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
