package importer

import (
	"archive/zip"
	"bytes"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/odhav-enterprise/core/internal/pkg/response"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const maxUploadBytes = 64 << 20

// RegisterRoutes mounts the admin import endpoint.
func RegisterRoutes(rg gin.IRouter, db *gorm.DB, log *zap.Logger, auth gin.HandlerFunc) {
	rg.POST("/admin/import", auth, func(c *gin.Context) {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			response.BadRequest(c, "file is required")
			return
		}
		if fileHeader.Size > maxUploadBytes {
			response.BadRequest(c, "archive too large")
			return
		}

		f, err := fileHeader.Open()
		if err != nil {
			response.InternalError(c, "failed to read upload", err)
			return
		}
		defer f.Close()

		payload, err := io.ReadAll(io.LimitReader(f, maxUploadBytes))
		if err != nil {
			response.InternalError(c, "failed to read upload", err)
			return
		}

		zr, err := zip.NewReader(bytes.NewReader(payload), int64(len(payload)))
		if err != nil {
			response.BadRequest(c, "invalid zip archive")
			return
		}

		summary, err := ImportFromZip(db, zr)
		if err != nil {
			log.Error("legacy import failed", zap.Error(err))
			response.UnprocessableEntity(c, err.Error())
			return
		}

		log.Info("legacy import completed",
			zap.Int("clients", summary.Clients),
			zap.Int("projectTypes", summary.ProjectTypes),
			zap.Int("articles", summary.Articles))
		response.OK(c, summary)
	})
}
