package services

import (
	"fmt"

	"weighttracker/internal/models"
	"weighttracker/internal/repositories"
)

// RecordService handles business logic for daily weight records. The date is
// the record's identity: writes for an existing date update in place.
type RecordService struct {
	repo repositories.RecordRepository
}

// NewRecordService creates a new RecordService.
func NewRecordService(repo repositories.RecordRepository) *RecordService {
	return &RecordService{
		repo: repo,
	}
}

// ListRecords returns the user's records narrowed and ordered by the filter.
func (s *RecordService) ListRecords(userID string, filter repositories.RecordFilter) ([]models.WeightRecord, error) {
	return s.repo.List(userID, filter)
}

// GetRecordByDate returns the record for the given date, or (nil, nil) if
// none exists.
func (s *RecordService) GetRecordByDate(userID, date string) (*models.WeightRecord, error) {
	return s.repo.GetByDate(userID, date)
}

// UpsertRecord updates the record for (userID, date) in place or inserts a
// new one. It reports whether a row was created so the handler can answer
// 201 vs 200. A zero weight counts as missing.
func (s *RecordService) UpsertRecord(userID, date string, weight float64, feeling, notes string) (bool, error) {
	if date == "" || weight == 0 {
		return false, fmt.Errorf("%w: date and weight are required", ErrValidation)
	}

	existing, err := s.repo.GetByDate(userID, date)
	if err != nil {
		return false, err
	}

	if existing != nil {
		existing.Weight = weight
		existing.Feeling = feeling
		existing.Notes = notes
		if err := s.repo.Update(existing); err != nil {
			return false, fmt.Errorf("failed to update record: %w", err)
		}
		return false, nil
	}

	record := &models.WeightRecord{
		UserID:  userID,
		Date:    date,
		Weight:  weight,
		Feeling: feeling,
		Notes:   notes,
	}
	if err := s.repo.Create(record); err != nil {
		return false, fmt.Errorf("failed to create record: %w", err)
	}
	return true, nil
}

// DeleteRecord removes the record for the given date. Deleting an absent
// record succeeds.
func (s *RecordService) DeleteRecord(userID, date string) error {
	return s.repo.DeleteByDate(userID, date)
}
