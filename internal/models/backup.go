package models

import "time"

// Backup is an append-only snapshot of a user's settings and records. Rows
// are only ever written; a restore works from an externally supplied
// document, never from this table.
type Backup struct {
	ID         string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID     string    `json:"user_id" gorm:"index;type:varchar(36);not null"`
	User       *User     `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	BackupData string    `json:"backup_data" gorm:"not null"`
	CreatedAt  time.Time `json:"created_at"`
}

// TableName pins the table name used by the raw restore statements.
func (Backup) TableName() string {
	return "backups"
}

// BackupDocument is the JSON payload produced by a backup and accepted by a
// restore. Restore fields are pointers so that values absent from the
// document reach the store as NULLs and incomplete rows are rejected by the
// schema's NOT NULL constraints, rolling back the whole restore.
type BackupDocument struct {
	Settings *BackupSettings `json:"settings"`
	Records  []BackupRecord  `json:"records"`
}

// BackupSettings mirrors the user_settings columns a restore replaces.
type BackupSettings struct {
	ID              string   `json:"id"`
	Height          *float64 `json:"height"`
	Gender          *string  `json:"gender"`
	InitialWeight   *float64 `json:"initial_weight"`
	TargetWeight    *float64 `json:"target_weight"`
	TargetMonths    *int     `json:"target_months"`
	ReminderEnabled bool     `json:"reminder_enabled"`
	ReminderTime    *string  `json:"reminder_time"`
}

// BackupRecord mirrors the weight_records columns a restore replaces.
type BackupRecord struct {
	ID      string   `json:"id"`
	Date    *string  `json:"date"`
	Weight  *float64 `json:"weight"`
	Feeling *string  `json:"feeling"`
	Notes   *string  `json:"notes"`
}
