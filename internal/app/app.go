package app

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/foundrbox/core/internal/config"
	"github.com/foundrbox/core/internal/database"
	"github.com/foundrbox/core/internal/middleware"
	"github.com/foundrbox/core/internal/modules/completion"
	pkgredis "github.com/foundrbox/core/internal/pkg/redis"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// App holds all application dependencies.
type App struct {
	cfg    *config.AppConfig
	router *gin.Engine
	db     *gorm.DB
	logger *zap.Logger
	ai     aiClients
}

// aiClients carries one completion client per capability so each can pin its
// own provider and model.
type aiClients struct {
	validation completion.Client
	research   completion.Client
	pitch      completion.Client
	chat       completion.Client
}

// New initializes the application: config → DB → Redis → AI clients → routes.
func New(logger *zap.Logger, cfg *config.AppConfig) (*App, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}

	db, err := database.Connect(cfg, true)
	if err != nil {
		return nil, fmt.Errorf("database: %w", err)
	}

	rc, err := pkgredis.Connect(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("redis: %w", err)
	}

	ai, err := buildAIClients(cfg)
	if err != nil {
		return nil, fmt.Errorf("ai providers: %w", err)
	}

	if cfg.IsDev() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(gin.Recovery())
	router.Use(middleware.Logger(logger))
	router.Use(cors.New(buildCORSConfig(cfg)))

	app := &App{cfg: cfg, router: router, db: db, logger: logger, ai: ai}
	app.registerRoutes(rc)

	return app, nil
}

func buildAIClients(cfg *config.AppConfig) (aiClients, error) {
	validation, err := completion.New(cfg.AI, cfg.AI.ValidationModel)
	if err != nil {
		return aiClients{}, err
	}
	research, err := completion.New(cfg.AI, cfg.AI.ResearchModel)
	if err != nil {
		return aiClients{}, err
	}
	pitch, err := completion.New(cfg.AI, cfg.AI.PitchModel)
	if err != nil {
		return aiClients{}, err
	}
	chat, err := completion.New(cfg.AI, cfg.AI.ChatModel)
	if err != nil {
		return aiClients{}, err
	}
	return aiClients{validation: validation, research: research, pitch: pitch, chat: chat}, nil
}

func buildCORSConfig(cfg *config.AppConfig) cors.Config {
	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "x-idempotence"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}
	if len(cfg.AllowedOrigins) > 0 && !cfg.IsDev() {
		patterns := cfg.AllowedOrigins
		corsConfig.AllowOriginFunc = func(origin string) bool {
			host := extractOriginHost(origin)
			for _, pattern := range patterns {
				if matchOriginPattern(pattern, host) {
					return true
				}
			}
			return false
		}
	} else {
		corsConfig.AllowOriginFunc = func(origin string) bool { return true }
	}
	return corsConfig
}

// Addr returns the listen address.
func (a *App) Addr() string { return fmt.Sprintf(":%d", a.cfg.Port) }

// Router returns the HTTP handler.
func (a *App) Router() http.Handler { return a.router }
