package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"ats-backend/internal/shared/config"
	"ats-backend/internal/shared/metrics"
	"ats-backend/internal/shared/server/middleware"
)

// Registrar mounts a feature's routes on the versioned API group.
type Registrar interface {
	Register(rg *gin.RouterGroup)
}

// NewRouter builds the gin engine with the shared middleware chain and
// mounts every registrar under /api/v1.
func NewRouter(cfg config.Config, registrars ...Registrar) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
	)

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", metrics.Handler())

	api := router.Group("/api/v1")
	api.Use(
		middleware.Auth(cfg.Env),
		middleware.RateLimit(rateLimitConfig()),
	)
	for _, registrar := range registrars {
		if registrar == nil {
			continue
		}
		registrar.Register(api)
	}
	return router
}

// rateLimitConfig keeps match scoring on a tighter budget than plain CRUD:
// each match request is a provider call the service pays for.
func rateLimitConfig() middleware.RateLimitConfig {
	return middleware.RateLimitConfig{
		Rules: map[string]middleware.RateLimitRule{
			"DEFAULT": {Rate: 10, Burst: 20},
			"MATCH":   {Rate: 0.5, Burst: 5},
		},
		GroupFor: func(c *gin.Context) string {
			if strings.HasSuffix(c.FullPath(), "/match") || strings.HasSuffix(c.FullPath(), "/resume") {
				return "MATCH"
			}
			return ""
		},
	}
}

// Addr formats a listen address from a port.
func Addr(port string) string {
	if strings.HasPrefix(port, ":") {
		return port
	}
	return ":" + port
}
