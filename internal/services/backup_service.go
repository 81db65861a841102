package services

import (
	"encoding/json"
	"fmt"

	"weighttracker/internal/models"
	"weighttracker/internal/repositories"
)

// BackupService serializes a user's state into a JSON document and restores
// state from an externally supplied document.
type BackupService struct {
	settingsRepo repositories.SettingsRepository
	recordRepo   repositories.RecordRepository
	backupRepo   repositories.BackupRepository
}

// NewBackupService creates a new BackupService.
func NewBackupService(settingsRepo repositories.SettingsRepository, recordRepo repositories.RecordRepository, backupRepo repositories.BackupRepository) *BackupService {
	return &BackupService{
		settingsRepo: settingsRepo,
		recordRepo:   recordRepo,
		backupRepo:   backupRepo,
	}
}

// Backup serializes the user's settings and records into one JSON document,
// persists it as a backup row and returns the document verbatim. The caller
// is expected to store the document externally; backups are never read back
// by the service itself.
func (s *BackupService) Backup(userID string) (string, error) {
	settings, err := s.settingsRepo.GetByUserID(userID)
	if err != nil {
		return "", err
	}
	records, err := s.recordRepo.ListOrderedByDate(userID)
	if err != nil {
		return "", err
	}
	if records == nil {
		records = []models.WeightRecord{}
	}

	payload := struct {
		Settings interface{}           `json:"settings"`
		Records  []models.WeightRecord `json:"records"`
	}{
		Settings: map[string]interface{}{},
		Records:  records,
	}
	if settings != nil {
		payload.Settings = settings
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to serialize backup: %w", err)
	}

	backup := &models.Backup{
		UserID:     userID,
		BackupData: string(data),
	}
	if err := s.backupRepo.Create(backup); err != nil {
		return "", err
	}

	return string(data), nil
}

// Restore parses a backup document and replaces the user's settings and
// records from it inside one transaction. Either everything in the document
// is applied or nothing is.
func (s *BackupService) Restore(userID, backupData string) error {
	var doc models.BackupDocument
	if err := json.Unmarshal([]byte(backupData), &doc); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBackup, err)
	}
	return s.backupRepo.Restore(userID, doc.Settings, doc.Records)
}
