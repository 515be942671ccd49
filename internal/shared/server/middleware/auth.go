package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-insights/internal/identity"
	"resume-insights/internal/shared/server/respond"
	"resume-insights/internal/shared/telemetry"
)

const (
	userIDKey    = "userId"
	userEmailKey = "userEmail"
	userNameKey  = "userName"
)

// ResolveUser maps a verified identity to the internal user id, creating the
// user on first sight.
type ResolveUser func(ctx context.Context, id identity.Identity) (string, error)

// Auth requires a bearer token, verifies it and stores the caller in context.
func Auth(verifier identity.Verifier, resolve ResolveUser) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Status(http.StatusNoContent)
			return
		}

		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			respond.Error(c, http.StatusUnauthorized, respond.CodeUnauthorized, "missing or invalid token", nil)
			return
		}

		who, err := verifier.Verify(c.Request.Context(), token)
		if err != nil {
			if !errors.Is(err, identity.ErrInvalidToken) {
				telemetry.Error("auth.verify_failed", map[string]any{
					"request_id": RequestIDFromContext(c),
					"error":      err,
				})
			}
			respond.Error(c, http.StatusUnauthorized, respond.CodeUnauthorized, "missing or invalid token", nil)
			return
		}

		userID, err := resolve(c.Request.Context(), who)
		if err != nil {
			telemetry.Error("auth.resolve_user_failed", map[string]any{
				"request_id": RequestIDFromContext(c),
				"subject":    who.UID,
				"error":      err,
			})
			respond.Internal(c, "failed to load user", err)
			return
		}

		c.Set(userIDKey, userID)
		c.Set(userEmailKey, who.Email)
		c.Set(userNameKey, who.Name)
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	header = strings.TrimSpace(header)
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(prefix):])
	return token, token != ""
}

// UserIDFromContext fetches the internal user ID set by the auth middleware.
func UserIDFromContext(c *gin.Context) string {
	return stringFromContext(c, userIDKey)
}

// UserEmailFromContext fetches the verified email set by the auth middleware.
func UserEmailFromContext(c *gin.Context) string {
	return stringFromContext(c, userEmailKey)
}

// UserNameFromContext fetches the verified display name set by the auth middleware.
func UserNameFromContext(c *gin.Context) string {
	return stringFromContext(c, userNameKey)
}

func stringFromContext(c *gin.Context, key string) string {
	if c == nil {
		return ""
	}
	val, _ := c.Get(key)
	if s, ok := val.(string); ok {
		return s
	}
	return ""
}
