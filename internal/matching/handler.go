package matching

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
	rg.GET("/job-matches", h.list)
	rg.GET("/job-matches/recent", h.recent)
}

func (h *Handler) list(c *gin.Context) {
	matches, err := h.Svc.List(c.Request.Context(), middleware.UserIDFromContext(c))
	if err != nil {
		respond.Internal(c, "failed to load job matches", err)
		return
	}
	respond.OK(c, matches)
}

func (h *Handler) recent(c *gin.Context) {
	matches, err := h.Svc.Recent(c.Request.Context(), middleware.UserIDFromContext(c))
	if err != nil {
		respond.Internal(c, "failed to load job matches", err)
		return
	}
	respond.OK(c, matches)
}
