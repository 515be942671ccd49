package resumes

import (
	"errors"
	"io"
	"mime"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-insights/internal/extract"
	"resume-insights/internal/shared/server/middleware"
	"resume-insights/internal/shared/server/respond"
)

const (
	maxUploadSize = 10 << 20 // 10MB per file
	// Room for multipart boundaries and part headers around the file.
	multipartOverhead = 1 << 20
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches resume read and delete routes. The upload route is
// registered separately so it can carry its own rate limit.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/resumes", h.list)
	rg.GET("/resumes/recent", h.recent)
	rg.GET("/resumes/:id", h.get)
	rg.GET("/resumes/:id/download", h.download)
	rg.DELETE("/resumes/:id", h.delete)
}

// Upload handles POST /resumes/upload.
func (h *Handler) Upload(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize+multipartOverhead)

	fileHeader, err := c.FormFile("resume")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respond.Error(c, http.StatusBadRequest, respond.CodeValidation, "file exceeds 10MB", nil)
			return
		}
		respond.Error(c, http.StatusBadRequest, respond.CodeValidation, "resume file is required", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, respond.CodeValidation, "unable to read file", nil)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadSize+1))
	if err != nil {
		respond.Error(c, http.StatusBadRequest, respond.CodeValidation, "unable to read file", nil)
		return
	}
	if len(data) > maxUploadSize {
		respond.Error(c, http.StatusBadRequest, respond.CodeValidation, "file exceeds 10MB", nil)
		return
	}

	res, err := h.Svc.Upload(c.Request.Context(), userID, fileHeader.Filename, fileHeader.Header.Get("Content-Type"), data)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, respond.CodeValidation, "resume file is required", nil)
		case errors.Is(err, ErrUnsupportedType):
			respond.Error(c, http.StatusBadRequest, respond.CodeValidation, "only PDF and Word documents are accepted", nil)
		case errors.Is(err, extract.ErrUnsupportedFormat), errors.Is(err, extract.ErrNoReadableText):
			respond.Error(c, http.StatusUnprocessableEntity, respond.CodeParse, err.Error(), nil)
		default:
			respond.Internal(c, "failed to process resume", err)
		}
		return
	}

	c.Set(middleware.ResumeIDKey, res.ID)
	respond.Success(c, gin.H{
		"resumeId": res.ID,
		"message":  "Resume uploaded and processed successfully",
	})
}

func (h *Handler) list(c *gin.Context) {
	list, err := h.Svc.List(c.Request.Context(), middleware.UserIDFromContext(c))
	if err != nil {
		respond.Internal(c, "failed to load resumes", err)
		return
	}
	respond.OK(c, list)
}

func (h *Handler) recent(c *gin.Context) {
	list, err := h.Svc.Recent(c.Request.Context(), middleware.UserIDFromContext(c))
	if err != nil {
		respond.Internal(c, "failed to load resumes", err)
		return
	}
	respond.OK(c, list)
}

func (h *Handler) get(c *gin.Context) {
	id := c.Param("id")
	c.Set(middleware.ResumeIDKey, id)
	res, err := h.Svc.Get(c.Request.Context(), middleware.UserIDFromContext(c), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.NotFound(c, "resume")
			return
		}
		respond.Internal(c, "failed to load resume", err)
		return
	}
	respond.OK(c, res)
}

func (h *Handler) download(c *gin.Context) {
	id := c.Param("id")
	c.Set(middleware.ResumeIDKey, id)
	res, rc, err := h.Svc.Download(c.Request.Context(), middleware.UserIDFromContext(c), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.NotFound(c, "resume")
			return
		}
		respond.Internal(c, "failed to open resume", err)
		return
	}
	defer rc.Close()

	headers := map[string]string{
		"Content-Disposition": mime.FormatMediaType("attachment", map[string]string{"filename": res.Filename}),
	}
	c.DataFromReader(http.StatusOK, res.SizeBytes, res.MimeType, rc, headers)
}

func (h *Handler) delete(c *gin.Context) {
	id := c.Param("id")
	c.Set(middleware.ResumeIDKey, id)
	if err := h.Svc.Delete(c.Request.Context(), middleware.UserIDFromContext(c), id); err != nil {
		respond.Internal(c, "failed to delete resume", err)
		return
	}
	respond.Success(c, nil)
}
