package users

import (
	"errors"
	"net/http"

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
	rg.POST("/users", h.me)
	rg.GET("/me", h.me)
}

// me serves both registration and lookup: the auth middleware has already
// run get-or-create, so both return the stored user.
func (h *Handler) me(c *gin.Context) {
	if h.Svc == nil {
		respond.Error(c, http.StatusInternalServerError, respond.CodeInternal, "service unavailable", nil)
		return
	}
	user, err := h.Svc.GetByID(c.Request.Context(), middleware.UserIDFromContext(c))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.NotFound(c, "user")
			return
		}
		respond.Internal(c, "failed to load user", err)
		return
	}
	respond.OK(c, user)
}
