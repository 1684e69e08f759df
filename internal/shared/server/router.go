package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-builder-backend/internal/builder"
	"resume-builder-backend/internal/profiles"
	"resume-builder-backend/internal/shared/config"
	"resume-builder-backend/internal/shared/server/middleware"
	"resume-builder-backend/internal/templates"
)

// RouterDeps carries the handlers the router mounts.
type RouterDeps struct {
	Config          config.Config
	ProfileHandler  *profiles.Handler
	TemplateHandler *templates.Handler
	BuilderHandler  *builder.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.Identity(),
		middleware.RateLimit(rateLimitConfig()),
	)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1")
	deps.ProfileHandler.RegisterRoutes(api)
	deps.TemplateHandler.RegisterRoutes(api)
	deps.BuilderHandler.RegisterRoutes(api)

	return r
}

// rateLimitConfig throttles draft generation separately from reads:
// generation writes a document per call, so it gets a tighter bucket.
func rateLimitConfig() middleware.RateLimitConfig {
	return middleware.RateLimitConfig{
		DefaultGroup: "READ",
		GroupFor: func(c *gin.Context) string {
			if c.Request.Method == http.MethodPost &&
				strings.HasPrefix(c.FullPath(), "/api/v1/resumes/") {
				return "GENERATE"
			}
			return "READ"
		},
		Rules: map[string]middleware.RateLimitRule{
			"READ":     {Rate: 10, Burst: 30},
			"GENERATE": {Rate: 1, Burst: 5},
		},
	}
}

// Addr formats the listen address for the given port.
func Addr(port string) string {
	return ":" + port
}
