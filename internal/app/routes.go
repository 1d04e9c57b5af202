package app

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/odhav-enterprise/core/internal/middleware"
	"github.com/odhav-enterprise/core/internal/modules/auth"
	"github.com/odhav-enterprise/core/internal/modules/content/article"
	"github.com/odhav-enterprise/core/internal/modules/content/client"
	"github.com/odhav-enterprise/core/internal/modules/content/projecttype"
	"github.com/odhav-enterprise/core/internal/modules/storage/importer"
	"github.com/odhav-enterprise/core/internal/modules/syndication/sitemap"
	"github.com/odhav-enterprise/core/internal/modules/system/health"
	"github.com/odhav-enterprise/core/internal/pkg/response"
)

const apiPrefix = "/api"

func (a *App) registerRoutes(authSvc *auth.Service) {
	r := a.router
	db := a.db
	authMW := middleware.Auth()

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c)
	})
	r.NoMethod(func(c *gin.Context) {
		response.MethodNotAllowed(c)
	})

	// Root-level endpoints
	root := r.Group("")
	sitemap.RegisterRoutes(root, db, a.cfg.Site)

	// Versioned API
	api := r.Group(apiPrefix)
	api.Use(middleware.OptionalAuth())
	if a.cache != nil {
		api.Use(middleware.RateLimit(a.cache.Raw(), a.logger))
		api.Use(middleware.HTTPCache(a.cache.Raw(), middleware.HTTPCacheOptions{
			TTL:     15 * time.Second,
			Disable: a.cfg.IsDev(),
			SkipPaths: []string{
				apiPrefix + "/auth/*",
				apiPrefix + "/admin/*",
				apiPrefix + "/health",
			},
		}))
	}

	health.RegisterRoutes(api, db, a.cache)
	api.GET("/ping", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"data": "pong"}) })

	auth.NewHandler(authSvc).RegisterRoutes(api, authMW)

	articleSvc := article.NewService(db)
	article.NewHandler(articleSvc, a.cfg.Site).RegisterRoutes(api, authMW)
	client.NewHandler(client.NewService(db)).RegisterRoutes(api, authMW)
	projecttype.NewHandler(projecttype.NewService(db)).RegisterRoutes(api, authMW)

	importer.RegisterRoutes(api, db, a.logger, authMW)

	if a.cache != nil {
		api.POST("/admin/clean_cache", authMW, func(c *gin.Context) {
			deleted, err := middleware.PurgeHTTPCache(c.Request.Context(), a.cache.Raw())
			if err != nil {
				response.InternalError(c, "failed to purge cache", err)
				return
			}
			response.OK(c, gin.H{"deleted": deleted})
		})
	}
}
