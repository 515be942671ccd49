package respond

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func JSON(c *gin.Context, status int, payload any) {
	c.JSON(status, payload)
}

func OK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

// Success writes the {"success": true} acknowledgement used by mutating
// routes. extra keys are merged into the body.
func Success(c *gin.Context, extra gin.H) {
	body := make(gin.H, len(extra)+1)
	for k, v := range extra {
		body[k] = v
	}
	body["success"] = true
	OK(c, body)
}
