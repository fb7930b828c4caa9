package database

import (
	"github.com/central-adventures/trips/internal/config"
	"github.com/central-adventures/trips/internal/models"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func Connect(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(cfg.DatabasePath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DatabasePath).Msg("Failed to connect to database")
	}

	// Auto Migrate
	if err := Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("Failed to auto migrate")
	}

	return db
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.StorageItem{}, &models.ContactSubmission{})
}
