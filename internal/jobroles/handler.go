package jobroles

import (
	"github.com/gin-gonic/gin"

	"resume-insights/internal/shared/server/respond"
)

type Handler struct {
	Repo Repo
}

func NewHandler(repo Repo) *Handler {
	return &Handler{Repo: repo}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/job-roles", h.list)
}

func (h *Handler) list(c *gin.Context) {
	roles, err := h.Repo.List(c.Request.Context())
	if err != nil {
		respond.Internal(c, "failed to load job roles", err)
		return
	}
	if roles == nil {
		roles = []JobRole{}
	}
	respond.OK(c, roles)
}
