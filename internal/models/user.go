package models

import "time"

// User represents a registered account. The password hash is never
// serialized into responses or backups.
type User struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Username  string    `json:"username" gorm:"uniqueIndex;type:varchar(100);not null" validate:"required,max=100"`
	Password  string    `json:"-" gorm:"type:varchar(255);not null" validate:"required"`
	Email     *string   `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"omitempty,email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName pins the table name used by the raw restore statements.
func (User) TableName() string {
	return "users"
}
