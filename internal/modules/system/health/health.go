package health

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/odhav-enterprise/core/internal/pkg/redis"
	"gorm.io/gorm"
)

func RegisterRoutes(rg gin.IRouter, db *gorm.DB, cache *redis.Client) {
	rg.GET("/health", func(c *gin.Context) {
		sqlDB, err := db.DB()
		dbOK := err == nil && sqlDB.Ping() == nil

		status := "ok"
		code := http.StatusOK
		if !dbOK {
			status = "degraded"
			code = http.StatusServiceUnavailable
		}

		body := gin.H{
			"status":   status,
			"database": dbOK,
		}
		if cache != nil {
			body["cache"] = cache.Raw().Ping(c.Request.Context()).Err() == nil
		}

		c.JSON(code, body)
	})
}
