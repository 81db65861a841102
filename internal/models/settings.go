package models

import "time"

// Default values applied to a settings row created at registration time.
const (
	DefaultHeight        = 170
	DefaultGender        = "male"
	DefaultInitialWeight = 210
	DefaultTargetWeight  = 135
	DefaultTargetMonths  = 6
	DefaultReminderTime  = "20:00"
)

// UserSettings holds a user's profile and goal configuration. There is at
// most one row per user; the unique index on user_id lets a restore replace
// the row wholesale.
type UserSettings struct {
	ID              string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID          string    `json:"user_id" gorm:"uniqueIndex;type:varchar(36);not null"`
	User            *User     `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Height          float64   `json:"height" gorm:"not null;default:170"`
	Gender          string    `json:"gender" gorm:"type:varchar(20);not null;default:male"`
	InitialWeight   float64   `json:"initial_weight" gorm:"not null;default:210"`
	TargetWeight    float64   `json:"target_weight" gorm:"not null;default:135"`
	TargetMonths    int       `json:"target_months" gorm:"not null;default:6"`
	ReminderEnabled bool      `json:"reminder_enabled" gorm:"not null;default:0"`
	ReminderTime    string    `json:"reminder_time" gorm:"type:varchar(5);not null;default:20:00"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// TableName pins the table name used by the raw restore statements.
func (UserSettings) TableName() string {
	return "user_settings"
}

// NewDefaultUserSettings returns the settings row created for a fresh user.
func NewDefaultUserSettings(userID string) *UserSettings {
	return &UserSettings{
		UserID:        userID,
		Height:        DefaultHeight,
		Gender:        DefaultGender,
		InitialWeight: DefaultInitialWeight,
		TargetWeight:  DefaultTargetWeight,
		TargetMonths:  DefaultTargetMonths,
		ReminderTime:  DefaultReminderTime,
	}
}
