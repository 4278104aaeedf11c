// Package router assembles the gin engine: middleware, CORS, health, and
// module routes.
package router

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"tradedesk_backend/internal/intake"
	"tradedesk_backend/platform/config"
	"tradedesk_backend/platform/httpkit"
	"tradedesk_backend/platform/logger"
)

// Global guard across the whole API surface; the intake module enforces
// its own stricter fixed-window cap on top.
const (
	globalRatePerSecond = 2
	globalBurst         = 20
)

// New builds the HTTP engine.
func New(cfg config.HTTPConfig, env string, intakeModule *intake.Module, log *logger.Logger) *gin.Engine {
	if env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(httpkit.RequestID())
	engine.Use(httpkit.RequestLogger(log))
	engine.Use(httpkit.SecurityHeaders())

	corsCfg := cors.Config{
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
	}
	if cfg.GetCORSAllowAll() {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.GetCORSOrigins()
	}
	engine.Use(cors.New(corsCfg))

	limiter := httpkit.NewIPRateLimiter(rate.Limit(globalRatePerSecond), globalBurst, log)
	engine.Use(limiter.RateLimit())

	engine.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := engine.Group("/api/v1")
	intakeModule.RegisterRoutes(v1.Group("/leads"))

	return engine
}
