package repositories

import "weighttracker/internal/models"

// Sort orders accepted by RecordFilter. Anything else falls back to
// SortDateDesc.
const (
	SortDateAsc    = "date_asc"
	SortDateDesc   = "date_desc"
	SortWeightAsc  = "weight_asc"
	SortWeightDesc = "weight_desc"
)

// RecordFilter narrows and orders a record listing. Either date bound may be
// empty; bounds are inclusive.
type RecordFilter struct {
	StartDate string
	EndDate   string
	Sort      string
}

// RecordRepository defines the interface for weight record data access.
// GetByDate returns (nil, nil) when no record exists for the date.
type RecordRepository interface {
	List(userID string, filter RecordFilter) ([]models.WeightRecord, error)
	ListOrderedByDate(userID string) ([]models.WeightRecord, error)
	GetByDate(userID, date string) (*models.WeightRecord, error)
	Create(record *models.WeightRecord) error
	Update(record *models.WeightRecord) error
	DeleteByDate(userID, date string) error
}
