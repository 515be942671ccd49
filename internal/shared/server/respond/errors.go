package respond

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-insights/internal/shared/telemetry"
)

// Code is the machine-readable error kind in an error envelope.
type Code string

const (
	CodeValidation   Code = "validation_error"
	CodeParse        Code = "parse_error"
	CodeNotFound     Code = "not_found"
	CodeUnauthorized Code = "unauthorized"
	CodeRateLimited  Code = "rate_limited"
	CodeInternal     Code = "internal_error"
)

type errorBody struct {
	Code      Code   `json:"code"`
	Message   string `json:"message"`
	Details   any    `json:"details,omitempty"`
	RequestID string `json:"requestId,omitempty"`
}

// Error aborts the request with {"error": {...}}. Server faults log at
// error level and client faults at warn.
func Error(c *gin.Context, status int, code Code, message string, details any) {
	requestID := c.GetString("requestId")
	fields := map[string]any{
		"status":     status,
		"code":       code,
		"message":    message,
		"route":      c.FullPath(),
		"method":     c.Request.Method,
		"request_id": requestID,
	}
	if userID := c.GetString("userId"); userID != "" {
		fields["user_id"] = userID
	}
	if status >= http.StatusInternalServerError {
		telemetry.Error("http.error", fields)
	} else {
		telemetry.Warn("http.error", fields)
	}

	c.AbortWithStatusJSON(status, gin.H{"error": errorBody{
		Code:      code,
		Message:   message,
		Details:   details,
		RequestID: requestID,
	}})
}

// NotFound reports a missing resource owned by the caller.
func NotFound(c *gin.Context, what string) {
	Error(c, http.StatusNotFound, CodeNotFound, what+" not found", nil)
}

// Internal attaches err to the gin context for the request log and sends
// message without the underlying cause.
func Internal(c *gin.Context, message string, err error) {
	if err != nil {
		_ = c.Error(err)
	}
	Error(c, http.StatusInternalServerError, CodeInternal, message, nil)
}
