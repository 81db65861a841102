package repositories

import "weighttracker/internal/models"

// SettingsRepository defines the interface for user settings data access.
// A user has at most one settings row; GetByUserID returns (nil, nil) when
// none exists yet so callers can distinguish "not created" from a failure.
type SettingsRepository interface {
	GetByUserID(userID string) (*models.UserSettings, error)
	Create(settings *models.UserSettings) error
	Update(settings *models.UserSettings) error
}
