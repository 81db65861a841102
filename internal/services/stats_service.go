package services

import (
	"fmt"
	"math"
	"time"

	"weighttracker/internal/models"
	"weighttracker/internal/repositories"
)

// Statistics is the summary served by the stats endpoint. Weight-derived
// fields are rounded to one decimal place on output.
type Statistics struct {
	TotalDays     int     `json:"total_days"`
	TotalLost     float64 `json:"total_lost"`
	CurrentWeight float64 `json:"current_weight"`
	Remaining     float64 `json:"remaining"`
	WeeklyAverage float64 `json:"weekly_average"`
	BestWeek      float64 `json:"best_week"`
	Streak        int     `json:"streak"`
}

// StatsService derives statistics from a user's settings and record history.
type StatsService struct {
	settingsRepo repositories.SettingsRepository
	recordRepo   repositories.RecordRepository
}

// NewStatsService creates a new StatsService.
func NewStatsService(settingsRepo repositories.SettingsRepository, recordRepo repositories.RecordRepository) *StatsService {
	return &StatsService{
		settingsRepo: settingsRepo,
		recordRepo:   recordRepo,
	}
}

// GetStatistics fetches the user's settings and date-ordered records and
// computes the summary.
func (s *StatsService) GetStatistics(userID string) (*Statistics, error) {
	settings, err := s.settingsRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		return nil, fmt.Errorf("settings not found for user %s", userID)
	}

	records, err := s.recordRepo.ListOrderedByDate(userID)
	if err != nil {
		return nil, err
	}

	return Calculate(settings, records), nil
}

// Calculate derives the statistics summary from settings and records ordered
// by date ascending. Pure computation; internal arithmetic keeps full
// precision and only the returned values are rounded.
func Calculate(settings *models.UserSettings, records []models.WeightRecord) *Statistics {
	if len(records) == 0 {
		return &Statistics{Remaining: settings.TargetWeight}
	}

	current := records[len(records)-1].Weight
	totalLost := settings.InitialWeight - current
	remaining := math.Max(0, current-settings.TargetWeight)

	// Consecutive-day streak, walking backward from the latest record. Any
	// gap other than exactly one whole day breaks the chain.
	streak := 1
	for i := len(records) - 1; i > 0; i-- {
		if dayGap(records[i-1].Date, records[i].Date) != 1 {
			break
		}
		streak++
	}

	var weeklyAverage, bestWeek float64
	if len(records) >= 7 {
		weeks := len(records) / 7
		weeklyAverage = totalLost / float64(weeks)

		// Non-overlapping 7-record windows from the start. A window that
		// gained weight contributes nothing, never a negative.
		for i := 0; i+6 < len(records); i += 7 {
			if lost := records[i].Weight - records[i+6].Weight; lost > bestWeek {
				bestWeek = lost
			}
		}
	}

	return &Statistics{
		TotalDays:     len(records),
		TotalLost:     round1(totalLost),
		CurrentWeight: round1(current),
		Remaining:     round1(remaining),
		WeeklyAverage: round1(weeklyAverage),
		BestWeek:      round1(bestWeek),
		Streak:        streak,
	}
}

// dayGap returns the whole-day difference between two stored date strings.
// Dates are truncated to calendar days first, so a time-of-day component in
// either value cannot skew the gap. Unparseable dates yield -1, which breaks
// a streak rather than extending it.
func dayGap(earlier, later string) int {
	a, errA := parseDay(earlier)
	b, errB := parseDay(later)
	if errA != nil || errB != nil {
		return -1
	}
	return int(b.Sub(a).Hours() / 24)
}

func parseDay(date string) (time.Time, error) {
	if len(date) >= 10 {
		if t, err := time.Parse("2006-01-02", date[:10]); err == nil {
			return t, nil
		}
	}
	return time.Parse(time.RFC3339, date)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
