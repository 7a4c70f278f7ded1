package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hireflow-backend/internal/resumes"
	"hireflow-backend/internal/shared/config"
	"hireflow-backend/internal/shared/metrics"
	"hireflow-backend/internal/shared/server/middleware"
	"hireflow-backend/internal/shared/server/respond"
)

// RouterDeps carries the wired handlers the router needs.
type RouterDeps struct {
	Config        config.Config
	ResumeHandler *resumes.Handler
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
	)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})

	authed := api.Group("")
	authed.Use(
		middleware.Identity(),
		middleware.RateLimit(middleware.RateLimitConfig{
			DefaultGroup: "DEFAULT",
			GroupFor:     rateLimitGroup,
			Rules: map[string]middleware.RateLimitRule{
				"DEFAULT": {Rate: 10, Burst: 20},
				"PARSE":   {Rate: 0.5, Burst: 5},
			},
		}),
	)
	registerMeRoutes(authed)
	deps.ResumeHandler.RegisterRoutes(authed)

	return r
}

// rateLimitGroup puts the expensive parse endpoints in their own bucket.
func rateLimitGroup(c *gin.Context) string {
	if c.Request.Method == http.MethodPost {
		switch c.FullPath() {
		case "/api/v1/resumes/parse", "/api/v1/resumes/reparse":
			return "PARSE"
		}
	}
	return "DEFAULT"
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
