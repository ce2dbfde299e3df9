package app

import (
	"net/http"
	"time"

	"github.com/foundrbox/core/internal/middleware"
	"github.com/foundrbox/core/internal/modules/dashboard"
	"github.com/foundrbox/core/internal/modules/growth"
	"github.com/foundrbox/core/internal/modules/pitch"
	"github.com/foundrbox/core/internal/modules/research"
	"github.com/foundrbox/core/internal/modules/user"
	"github.com/foundrbox/core/internal/modules/validation"
	pkgredis "github.com/foundrbox/core/internal/pkg/redis"
	"github.com/foundrbox/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

const apiPrefix = "/api/v1"

func (a *App) registerRoutes(rc *pkgredis.Client) {
	r := a.router
	db := a.db

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c, "Not found")
	})
	r.NoMethod(func(c *gin.Context) {
		response.MethodNotAllowed(c)
	})

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "uptime_ms": time.Since(processStart).Milliseconds()})
	})

	api := r.Group(apiPrefix)
	api.Use(middleware.RateLimit(rc.Raw()))
	api.Use(middleware.Idempotence(rc.Raw()))
	api.Use(middleware.Identity(a.cfg.JWTSecret))

	validation.NewHandler(validation.NewService(db, a.ai.validation, a.logger), a.logger).RegisterRoutes(api)
	research.NewHandler(research.NewService(db, a.ai.research, a.logger), a.logger).RegisterRoutes(api)
	pitch.NewHandler(pitch.NewService(db, a.ai.pitch, a.logger), a.logger).RegisterRoutes(api)
	growth.NewHandler(growth.NewService(db, a.ai.chat, a.logger), a.logger).RegisterRoutes(api)
	user.NewHandler(user.NewService(db), a.logger).RegisterRoutes(api)
	dashboard.NewHandler(dashboard.NewService(db), a.logger).RegisterRoutes(api)
}

var processStart = time.Now()
