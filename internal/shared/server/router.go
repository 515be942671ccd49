package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-insights/internal/identity"
	"resume-insights/internal/insights"
	"resume-insights/internal/jobroles"
	"resume-insights/internal/matching"
	"resume-insights/internal/questions"
	"resume-insights/internal/resumes"
	"resume-insights/internal/services/health"
	"resume-insights/internal/shared/config"
	"resume-insights/internal/shared/metrics"
	"resume-insights/internal/shared/server/middleware"
	"resume-insights/internal/shared/server/respond"
	"resume-insights/internal/users"
)

// RouterDeps carries the handlers and auth collaborators the router mounts.
type RouterDeps struct {
	Config          config.Config
	Health          *health.Service
	Verifier        identity.Verifier
	ResolveUser     middleware.ResolveUser
	RateLimiter     *middleware.RateLimiter
	UserHandler     *users.Handler
	ResumeHandler   *resumes.Handler
	MatchHandler    *matching.Handler
	QuestionHandler *questions.Handler
	JobRoleHandler  *jobroles.Handler
	InsightsHandler *insights.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	if !deps.Config.IsDevLike() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api")
	api.GET("/health", func(c *gin.Context) {
		status := deps.Health.Check(c.Request.Context())
		code := http.StatusOK
		if !status.OK {
			code = http.StatusServiceUnavailable
		}
		respond.JSON(c, code, status)
	})

	protected := api.Group("", middleware.Auth(deps.Verifier, deps.ResolveUser))
	if deps.UserHandler != nil {
		deps.UserHandler.RegisterRoutes(protected)
	}
	if deps.ResumeHandler != nil {
		uploadRule := middleware.PerMinute(deps.Config.UploadRatePerMinute, deps.Config.UploadBurst)
		protected.POST("/resumes/upload",
			middleware.RateLimit(deps.RateLimiter, "resume_upload", uploadRule),
			deps.ResumeHandler.Upload,
		)
		deps.ResumeHandler.RegisterRoutes(protected)
	}
	if deps.MatchHandler != nil {
		deps.MatchHandler.RegisterRoutes(protected)
	}
	if deps.QuestionHandler != nil {
		deps.QuestionHandler.RegisterRoutes(protected)
	}
	if deps.JobRoleHandler != nil {
		deps.JobRoleHandler.RegisterRoutes(protected)
	}
	if deps.InsightsHandler != nil {
		deps.InsightsHandler.RegisterRoutes(protected)
	}

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
