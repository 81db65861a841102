package services

import (
	"fmt"

	"weighttracker/internal/models"
	"weighttracker/internal/repositories"
)

// SettingsService handles business logic for per-user settings.
type SettingsService struct {
	repo repositories.SettingsRepository
}

// NewSettingsService creates a new SettingsService.
func NewSettingsService(repo repositories.SettingsRepository) *SettingsService {
	return &SettingsService{
		repo: repo,
	}
}

// SettingsUpdate carries the full mutable field set for an upsert. Values
// are stored as submitted; out-of-range numbers are accepted.
type SettingsUpdate struct {
	Height          float64 `json:"height"`
	Gender          string  `json:"gender"`
	InitialWeight   float64 `json:"initial_weight"`
	TargetWeight    float64 `json:"target_weight"`
	TargetMonths    int     `json:"target_months"`
	ReminderEnabled bool    `json:"reminder_enabled"`
	ReminderTime    string  `json:"reminder_time"`
}

// GetSettings returns the user's settings row, or (nil, nil) if none exists.
func (s *SettingsService) GetSettings(userID string) (*models.UserSettings, error) {
	return s.repo.GetByUserID(userID)
}

// UpsertSettings updates the existing settings row in place or inserts a new
// one. It reports whether a row was created.
func (s *SettingsService) UpsertSettings(userID string, update SettingsUpdate) (bool, error) {
	existing, err := s.repo.GetByUserID(userID)
	if err != nil {
		return false, err
	}

	if existing != nil {
		existing.Height = update.Height
		existing.Gender = update.Gender
		existing.InitialWeight = update.InitialWeight
		existing.TargetWeight = update.TargetWeight
		existing.TargetMonths = update.TargetMonths
		existing.ReminderEnabled = update.ReminderEnabled
		existing.ReminderTime = update.ReminderTime
		if err := s.repo.Update(existing); err != nil {
			return false, fmt.Errorf("failed to update settings: %w", err)
		}
		return false, nil
	}

	settings := &models.UserSettings{
		UserID:          userID,
		Height:          update.Height,
		Gender:          update.Gender,
		InitialWeight:   update.InitialWeight,
		TargetWeight:    update.TargetWeight,
		TargetMonths:    update.TargetMonths,
		ReminderEnabled: update.ReminderEnabled,
		ReminderTime:    update.ReminderTime,
	}
	if err := s.repo.Create(settings); err != nil {
		return false, fmt.Errorf("failed to create settings: %w", err)
	}
	return true, nil
}
