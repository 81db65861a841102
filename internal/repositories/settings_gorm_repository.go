package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"weighttracker/internal/models"
)

// GORMSettingsRepository is a GORM implementation of SettingsRepository.
type GORMSettingsRepository struct {
	db *gorm.DB
}

// NewGORMSettingsRepository creates a new instance of GORMSettingsRepository.
func NewGORMSettingsRepository(db *gorm.DB) *GORMSettingsRepository {
	return &GORMSettingsRepository{
		db: db,
	}
}

// GetByUserID retrieves the settings row for a user, or (nil, nil) if the
// user has no settings yet.
func (r *GORMSettingsRepository) GetByUserID(userID string) (*models.UserSettings, error) {
	var settings models.UserSettings
	if err := r.db.First(&settings, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get settings for user %s: %w", userID, err)
	}
	return &settings, nil
}

// Create inserts a new settings row, generating an ID if none is set.
func (r *GORMSettingsRepository) Create(settings *models.UserSettings) error {
	if settings.ID == "" {
		settings.ID = uuid.New().String()
	}
	if err := r.db.Create(settings).Error; err != nil {
		return fmt.Errorf("failed to create settings: %w", err)
	}
	return nil
}

// Update overwrites all mutable fields of an existing settings row.
func (r *GORMSettingsRepository) Update(settings *models.UserSettings) error {
	res := r.db.Save(settings)
	if res.Error != nil {
		return fmt.Errorf("failed to update settings: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("settings with ID %s not found for update", settings.ID)
	}
	return nil
}
