package questions

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-insights/internal/shared/server/middleware"
	"resume-insights/internal/shared/server/respond"
)

// SkillSource supplies the skills of the user's newest resume. ok is false
// when the user has no resume.
type SkillSource interface {
	LatestSkills(ctx context.Context, userID string) (skills []string, ok bool, err error)
}

type Handler struct {
	Svc    *Service
	Skills SkillSource
}

func NewHandler(svc *Service, skills SkillSource) *Handler {
	return &Handler{Svc: svc, Skills: skills}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/interview-questions", h.list)
	rg.GET("/interview-questions/recent", h.recent)
	rg.POST("/interview-questions/generate", h.generate)
	rg.DELETE("/interview-questions/:id", h.delete)
}

func (h *Handler) list(c *gin.Context) {
	qs, err := h.Svc.List(c.Request.Context(), middleware.UserIDFromContext(c))
	if err != nil {
		respond.Internal(c, "failed to load interview questions", err)
		return
	}
	respond.OK(c, qs)
}

func (h *Handler) recent(c *gin.Context) {
	qs, err := h.Svc.Recent(c.Request.Context(), middleware.UserIDFromContext(c))
	if err != nil {
		respond.Internal(c, "failed to load interview questions", err)
		return
	}
	respond.OK(c, qs)
}

func (h *Handler) generate(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	if h.Skills == nil {
		respond.Error(c, http.StatusInternalServerError, respond.CodeInternal, "service unavailable", nil)
		return
	}
	names, ok, err := h.Skills.LatestSkills(c.Request.Context(), userID)
	if err != nil {
		respond.Internal(c, "failed to load resume", err)
		return
	}
	if !ok {
		respond.Error(c, http.StatusNotFound, respond.CodeNotFound, "upload a resume first", nil)
		return
	}
	qs, err := h.Svc.Regenerate(c.Request.Context(), userID, names)
	if err != nil {
		respond.Internal(c, "failed to generate interview questions", err)
		return
	}
	respond.OK(c, qs)
}

func (h *Handler) delete(c *gin.Context) {
	err := h.Svc.Delete(c.Request.Context(), middleware.UserIDFromContext(c), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.NotFound(c, "interview question")
			return
		}
		respond.Internal(c, "failed to delete interview question", err)
		return
	}
	respond.Success(c, nil)
}
