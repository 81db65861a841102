package repositories

import "weighttracker/internal/models"

// BackupRepository defines the interface for backup persistence and the
// atomic restore of a user's settings and records.
type BackupRepository interface {
	Create(backup *models.Backup) error
	// Restore replace-upserts the supplied settings (when non-nil) and
	// records inside one transaction. If any statement fails, nothing is
	// persisted.
	Restore(userID string, settings *models.BackupSettings, records []models.BackupRecord) error
}
