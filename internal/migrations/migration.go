package migrations

import (
	"errors"
	"restaurant_panel/internal/database"
	"restaurant_panel/internal/models"
	"restaurant_panel/internal/repository"
	"time"

	"gorm.io/gorm"
)

// RunMigrations creates the schema and the default data the panel expects.
func RunMigrations(db *gorm.DB) error {
	if err := database.AutoMigrate(db); err != nil {
		return err
	}
	return createDefaultData(db)
}

// createDefaultData seeds the singleton settings row so the settings page
// always has something to load.
func createDefaultData(db *gorm.DB) error {
	settingsRepo := repository.NewSettingsRepository(db)

	_, err := settingsRepo.Get()
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return settingsRepo.Save(&models.StoreSettings{
		ID:          models.StoreSettingsID,
		StoreName:   "Orla 33",
		OpeningTime: "18:00",
		ClosingTime: "23:00",
		LastUpdated: time.Now(),
	})
}
