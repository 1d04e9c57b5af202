package database

import (
	"fmt"

	"github.com/odhav-enterprise/core/internal/config"
	"github.com/odhav-enterprise/core/internal/models"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens a MySQL connection and optionally runs auto-migration.
func Connect(cfg *config.AppConfig, autoMigrate bool) (*gorm.DB, error) {
	logLevel := logger.Warn
	if cfg.IsDev() {
		logLevel = logger.Info
	}

	db, err := gorm.Open(mysql.New(mysql.Config{
		DSN:               cfg.DSN,
		DefaultStringSize: 191,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	if autoMigrate {
		if err := migrate(db); err != nil {
			return nil, fmt.Errorf("migration failed: %w", err)
		}
	}

	return db, nil
}

// migrate runs GORM auto-migration and creates the indexes the query
// builder depends on.
func migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.UserModel{},
		&models.ClientModel{},
		&models.ProjectTypeModel{},
		&models.ArticleModel{},
	); err != nil {
		return err
	}

	if db.Dialector.Name() == "mysql" {
		// Text search spans title, description and content; AutoMigrate
		// cannot express FULLTEXT indexes.
		if !db.Migrator().HasIndex(&models.ArticleModel{}, "idx_articles_fulltext") {
			if err := db.Exec(
				"CREATE FULLTEXT INDEX idx_articles_fulltext ON `articles` (`title`, `description`, `content`)",
			).Error; err != nil {
				return err
			}
		}
	}

	return nil
}
