package repositories

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"weighttracker/internal/models"
)

// GORMBackupRepository is a GORM implementation of BackupRepository.
type GORMBackupRepository struct {
	db *gorm.DB
}

// NewGORMBackupRepository creates a new instance of GORMBackupRepository.
func NewGORMBackupRepository(db *gorm.DB) *GORMBackupRepository {
	return &GORMBackupRepository{
		db: db,
	}
}

// Create inserts a new backup row, generating an ID if none is set.
func (r *GORMBackupRepository) Create(backup *models.Backup) error {
	if backup.ID == "" {
		backup.ID = uuid.New().String()
	}
	if err := r.db.Create(backup).Error; err != nil {
		return fmt.Errorf("failed to create backup: %w", err)
	}
	return nil
}

// Restore replace-upserts settings and records in one transaction. REPLACE
// honors every unique constraint on the target tables, so a restored row
// evicts both an id match and a (user_id, date) match, mirroring the
// upsert-by-natural-key contract. Nil document fields become NULLs; the
// schema's NOT NULL constraints then abort the statement and GORM rolls the
// whole transaction back.
func (r *GORMBackupRepository) Restore(userID string, settings *models.BackupSettings, records []models.BackupRecord) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		now := time.Now()

		if settings != nil {
			id := settings.ID
			if id == "" {
				id = uuid.New().String()
			}
			err := tx.Exec(
				`REPLACE INTO user_settings
					(id, user_id, height, gender, initial_weight, target_weight,
					 target_months, reminder_enabled, reminder_time, created_at, updated_at)
				 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				id, userID, settings.Height, settings.Gender, settings.InitialWeight,
				settings.TargetWeight, settings.TargetMonths, boolToInt(settings.ReminderEnabled),
				settings.ReminderTime, now, now,
			).Error
			if err != nil {
				return fmt.Errorf("failed to restore settings: %w", err)
			}
		}

		for _, record := range records {
			id := record.ID
			if id == "" {
				id = uuid.New().String()
			}
			err := tx.Exec(
				`REPLACE INTO weight_records
					(id, user_id, date, weight, feeling, notes, created_at, updated_at)
				 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
				id, userID, record.Date, record.Weight, orEmpty(record.Feeling), orEmpty(record.Notes), now, now,
			).Error
			if err != nil {
				return fmt.Errorf("failed to restore record: %w", err)
			}
		}

		return nil
	})
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// orEmpty coalesces optional free-text fields; date and weight deliberately
// stay nil-able so incomplete rows fail the schema's NOT NULL checks.
func orEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
