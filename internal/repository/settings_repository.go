package repository

import (
	"restaurant_panel/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingsRepository interface {
	Get() (*models.StoreSettings, error)
	Save(settings *models.StoreSettings) error
}

type settingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) Get() (*models.StoreSettings, error) {
	var settings models.StoreSettings
	err := r.db.First(&settings, models.StoreSettingsID).Error
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// Save upserts the single settings row: insert when missing, full update
// otherwise.
func (r *settingsRepository) Save(settings *models.StoreSettings) error {
	settings.ID = models.StoreSettingsID
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(settings).Error
}
