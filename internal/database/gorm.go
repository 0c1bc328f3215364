package database

import (
	"fmt"
	"log"

	"template-gateway/internal/config"
	"template-gateway/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var GormDB *gorm.DB

// InitGorm connects to PostgreSQL when DB_HOST is configured, otherwise
// falls back to a local SQLite file, and migrates the schema.
func InitGorm(cfg *config.Config) {
	var dialector gorm.Dialector
	if cfg.DBHost != "" {
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
			cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort, cfg.DBSSLMode)
		dialector = postgres.Open(dsn)
	} else {
		dialector = sqlite.Open(cfg.DBPath)
	}

	var err error
	GormDB, err = gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = GormDB.AutoMigrate(
		&models.OutboundMessage{},
		&models.Template{},
	)
	if err != nil {
		log.Fatalf("Failed to run auto-migration: %v", err)
	}
}
