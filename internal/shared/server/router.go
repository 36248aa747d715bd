package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Shivamsahlot17/AI-Resume-and-Cover-letter-generator/internal/archive"
	"github.com/Shivamsahlot17/AI-Resume-and-Cover-letter-generator/internal/enrich"
	"github.com/Shivamsahlot17/AI-Resume-and-Cover-letter-generator/internal/resumes"
	"github.com/Shivamsahlot17/AI-Resume-and-Cover-letter-generator/internal/services/health"
	"github.com/Shivamsahlot17/AI-Resume-and-Cover-letter-generator/internal/shared/config"
	"github.com/Shivamsahlot17/AI-Resume-and-Cover-letter-generator/internal/shared/metrics"
	"github.com/Shivamsahlot17/AI-Resume-and-Cover-letter-generator/internal/shared/server/middleware"
	"github.com/Shivamsahlot17/AI-Resume-and-Cover-letter-generator/internal/shared/server/respond"
)

const aiPathPrefix = "/api/v1/ai/"

// RouterDeps carries the handlers NewRouter mounts. ArchiveHandler may be nil
// when archiving is disabled.
type RouterDeps struct {
	Config         config.Config
	Tokens         middleware.TokenVerifier
	Health         *health.Service
	ResumeHandler  *resumes.Handler
	EnrichHandler  *enrich.Handler
	ArchiveHandler *archive.Handler
	RateLimiter    *middleware.RateLimiter
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	switch deps.Config.Env {
	case "production", "staging":
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.MaxMultipartMemory = deps.Config.MaxUploadBytes

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		metrics.Middleware(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.Auth(deps.Tokens),
		middleware.RateLimit(middleware.RateLimitConfig{
			GroupFor: middleware.PathPrefixGroup(aiPathPrefix, middleware.GroupAI),
			Limiter:  deps.RateLimiter,
			Rules: map[string]middleware.RateLimitRule{
				middleware.GroupAI: {Rate: deps.Config.AIRatePerSec, Burst: deps.Config.AIRateBurst},
			},
		}),
	)

	r.GET("/metrics", metrics.Handler())

	healthSvc := deps.Health
	if healthSvc == nil {
		healthSvc = health.NewService(nil)
	}

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		status, ok := healthSvc.Status(c.Request.Context())
		if !ok {
			respond.JSON(c, http.StatusServiceUnavailable, status)
			return
		}
		respond.JSON(c, http.StatusOK, status)
	})
	registerMeRoutes(api)

	if deps.ResumeHandler != nil {
		deps.ResumeHandler.RegisterRoutes(api)
	}
	if deps.EnrichHandler != nil {
		deps.EnrichHandler.RegisterRoutes(api)
	}
	if deps.ArchiveHandler != nil {
		deps.ArchiveHandler.RegisterRoutes(api.Group("", middleware.RequireIdentity()))
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
