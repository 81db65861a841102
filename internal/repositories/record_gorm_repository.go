package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"weighttracker/internal/models"
)

// GORMRecordRepository is a GORM implementation of RecordRepository.
type GORMRecordRepository struct {
	db *gorm.DB
}

// NewGORMRecordRepository creates a new instance of GORMRecordRepository.
func NewGORMRecordRepository(db *gorm.DB) *GORMRecordRepository {
	return &GORMRecordRepository{
		db: db,
	}
}

// List retrieves a user's records within the filter's inclusive date range,
// ordered by the requested sort.
func (r *GORMRecordRepository) List(userID string, filter RecordFilter) ([]models.WeightRecord, error) {
	query := r.db.Where("user_id = ?", userID)

	if filter.StartDate != "" && filter.EndDate != "" {
		query = query.Where("date BETWEEN ? AND ?", filter.StartDate, filter.EndDate)
	} else if filter.StartDate != "" {
		query = query.Where("date >= ?", filter.StartDate)
	} else if filter.EndDate != "" {
		query = query.Where("date <= ?", filter.EndDate)
	}

	switch filter.Sort {
	case SortDateAsc:
		query = query.Order("date ASC")
	case SortWeightAsc:
		query = query.Order("weight ASC")
	case SortWeightDesc:
		query = query.Order("weight DESC")
	default:
		query = query.Order("date DESC")
	}

	var records []models.WeightRecord
	if err := query.Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list records for user %s: %w", userID, err)
	}
	return records, nil
}

// ListOrderedByDate retrieves all of a user's records ordered by date
// ascending, the order the statistics engine expects.
func (r *GORMRecordRepository) ListOrderedByDate(userID string) ([]models.WeightRecord, error) {
	var records []models.WeightRecord
	if err := r.db.Where("user_id = ?", userID).Order("date ASC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list records for user %s: %w", userID, err)
	}
	return records, nil
}

// GetByDate retrieves the record for a user and date, or (nil, nil) if none
// exists.
func (r *GORMRecordRepository) GetByDate(userID, date string) (*models.WeightRecord, error) {
	var record models.WeightRecord
	if err := r.db.First(&record, "user_id = ? AND date = ?", userID, date).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get record for user %s on %s: %w", userID, date, err)
	}
	return &record, nil
}

// Create inserts a new record, generating an ID if none is set.
func (r *GORMRecordRepository) Create(record *models.WeightRecord) error {
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	if err := r.db.Create(record).Error; err != nil {
		return fmt.Errorf("failed to create record: %w", err)
	}
	return nil
}

// Update overwrites the mutable fields of an existing record.
func (r *GORMRecordRepository) Update(record *models.WeightRecord) error {
	res := r.db.Save(record)
	if res.Error != nil {
		return fmt.Errorf("failed to update record: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("record with ID %s not found for update", record.ID)
	}
	return nil
}

// DeleteByDate removes the record for a user and date. Deleting an absent
// record is not an error.
func (r *GORMRecordRepository) DeleteByDate(userID, date string) error {
	if err := r.db.Delete(&models.WeightRecord{}, "user_id = ? AND date = ?", userID, date).Error; err != nil {
		return fmt.Errorf("failed to delete record for user %s on %s: %w", userID, date, err)
	}
	return nil
}
