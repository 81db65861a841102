package models

import "time"

// WeightRecord is one weight entry for one calendar day. The (user_id, date)
// pair is the natural key: a write for an existing date updates the row in
// place instead of creating a duplicate.
type WeightRecord struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID    string    `json:"user_id" gorm:"type:varchar(36);not null;uniqueIndex:idx_weight_records_user_date"`
	User      *User     `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Date      string    `json:"date" gorm:"type:varchar(32);not null;uniqueIndex:idx_weight_records_user_date" validate:"required"`
	Weight    float64   `json:"weight" gorm:"not null" validate:"required"`
	Feeling   string    `json:"feeling"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName pins the table name used by the raw restore statements.
func (WeightRecord) TableName() string {
	return "weight_records"
}
