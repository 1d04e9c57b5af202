package app

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/odhav-enterprise/core/internal/config"
	"github.com/odhav-enterprise/core/internal/database"
	"github.com/odhav-enterprise/core/internal/middleware"
	"github.com/odhav-enterprise/core/internal/modules/auth"
	"github.com/odhav-enterprise/core/internal/pkg/jwt"
	pkgredis "github.com/odhav-enterprise/core/internal/pkg/redis"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// App holds all application dependencies.
type App struct {
	cfg    *config.AppConfig
	router *gin.Engine
	db     *gorm.DB
	cache  *pkgredis.Client
	logger *zap.Logger
}

// New initializes the application: config, DB, Redis, routes. Redis is
// optional: without redis_url the server runs with caching and rate
// limiting disabled.
func New(logger *zap.Logger, cfg *config.AppConfig) (*App, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}

	jwt.SetSecret(cfg.JWTSecret)

	db, err := database.Connect(cfg, true)
	if err != nil {
		return nil, fmt.Errorf("database: %w", err)
	}

	var cache *pkgredis.Client
	if cfg.RedisURL != "" {
		cache, err = pkgredis.Connect(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("redis: %w", err)
		}
	} else {
		logger.Warn("redis_url not configured, http cache and rate limiting disabled")
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

	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "x-cache"},
		AllowCredentials: true,
	}
	if cfg.IsDev() {
		corsConfig.AllowOriginFunc = func(string) bool { return true }
	} else {
		corsConfig.AllowOriginFunc = newOriginMatcher(cfg.AllowedOrigins).allow
	}
	router.Use(cors.New(corsConfig))

	authSvc := auth.NewService(db, logger)
	if err := authSvc.SeedAdmin(cfg.Admin.Username, cfg.Admin.Password); err != nil {
		return nil, fmt.Errorf("seed admin: %w", err)
	}

	app := &App{cfg: cfg, router: router, db: db, cache: cache, logger: logger}
	app.registerRoutes(authSvc)

	return app, nil
}

// Addr returns the listen address.
func (a *App) Addr() string { return fmt.Sprintf(":%d", a.cfg.Port) }

// Router returns the HTTP handler.
func (a *App) Router() http.Handler { return a.router }
