package services

import (
	"errors"
	"restaurant_panel/internal/models"
	"restaurant_panel/internal/repository"
	"time"

	"gorm.io/gorm"
)

type SettingsService interface {
	GetSettings() (*models.StoreSettings, error)
	SaveSettings(settings *models.StoreSettings) (*models.StoreSettings, error)
}

type settingsService struct {
	settingsRepo repository.SettingsRepository
}

func NewSettingsService(settingsRepo repository.SettingsRepository) SettingsService {
	return &settingsService{settingsRepo: settingsRepo}
}

// GetSettings returns the singleton settings row, or an empty default when
// none has been saved yet.
func (s *settingsService) GetSettings() (*models.StoreSettings, error) {
	settings, err := s.settingsRepo.Get()
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &models.StoreSettings{ID: models.StoreSettingsID}, nil
	}
	if err != nil {
		return nil, err
	}
	return settings, nil
}

// SaveSettings upserts the single settings row and stamps the update time.
func (s *settingsService) SaveSettings(settings *models.StoreSettings) (*models.StoreSettings, error) {
	settings.ID = models.StoreSettingsID
	settings.LastUpdated = time.Now()
	if err := s.settingsRepo.Save(settings); err != nil {
		return nil, err
	}
	return s.settingsRepo.Get()
}
