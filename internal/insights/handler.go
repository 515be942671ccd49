package insights

import (
	"github.com/gin-gonic/gin"

	"resume-insights/internal/shared/server/middleware"
	"resume-insights/internal/shared/server/respond"
)

type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/dashboard/stats", h.stats)
	rg.GET("/skills/overview", h.skills)
	rg.GET("/learning-path", h.learningPath)
}

func (h *Handler) stats(c *gin.Context) {
	stats, err := h.Svc.Stats(c.Request.Context(), middleware.UserIDFromContext(c))
	if err != nil {
		respond.Internal(c, "failed to load dashboard stats", err)
		return
	}
	respond.OK(c, stats)
}

func (h *Handler) skills(c *gin.Context) {
	overview, err := h.Svc.SkillsOverview(c.Request.Context(), middleware.UserIDFromContext(c))
	if err != nil {
		respond.Internal(c, "failed to load skills", err)
		return
	}
	respond.OK(c, overview)
}

func (h *Handler) learningPath(c *gin.Context) {
	steps, err := h.Svc.LearningPath(c.Request.Context(), middleware.UserIDFromContext(c))
	if err != nil {
		respond.Internal(c, "failed to build learning path", err)
		return
	}
	respond.OK(c, steps)
}
