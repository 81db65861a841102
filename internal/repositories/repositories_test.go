package repositories_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"weighttracker/internal/database"
	"weighttracker/internal/models"
	"weighttracker/internal/repositories"
)

// openTestDB opens an in-memory SQLite database unique to the test. The
// shared cache keeps the pool's connections on the same database.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func createTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	user := &models.User{Username: "tester", Password: "hashed"}
	if err := repositories.NewGORMUserRepository(db).Create(user); err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

func floatPtr(v float64) *float64 { return &v }
func strPtr(s string) *string     { return &s }
func intPtr(v int) *int           { return &v }

func TestRecordUserDateUniqueness(t *testing.T) {
	db := openTestDB(t)
	user := createTestUser(t, db)
	repo := repositories.NewGORMRecordRepository(db)

	first := &models.WeightRecord{UserID: user.ID, Date: "2024-01-01", Weight: 200}
	assert.NoError(t, repo.Create(first))

	// A second insert for the same (user, date) violates the composite
	// unique index.
	dup := &models.WeightRecord{UserID: user.ID, Date: "2024-01-01", Weight: 199}
	assert.Error(t, repo.Create(dup))

	records, err := repo.ListOrderedByDate(user.ID)
	assert.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestRecordListFilteringAndSorting(t *testing.T) {
	db := openTestDB(t)
	user := createTestUser(t, db)
	repo := repositories.NewGORMRecordRepository(db)

	for _, r := range []models.WeightRecord{
		{UserID: user.ID, Date: "2024-01-01", Weight: 201},
		{UserID: user.ID, Date: "2024-01-02", Weight: 199},
		{UserID: user.ID, Date: "2024-01-03", Weight: 200},
	} {
		record := r
		assert.NoError(t, repo.Create(&record))
	}

	// Default sort is date descending.
	records, err := repo.List(user.ID, repositories.RecordFilter{})
	assert.NoError(t, err)
	assert.Len(t, records, 3)
	assert.Equal(t, "2024-01-03", records[0].Date)

	// Inclusive lower bound.
	records, err = repo.List(user.ID, repositories.RecordFilter{StartDate: "2024-01-02"})
	assert.NoError(t, err)
	assert.Len(t, records, 2)

	// Inclusive range with both bounds.
	records, err = repo.List(user.ID, repositories.RecordFilter{StartDate: "2024-01-01", EndDate: "2024-01-02"})
	assert.NoError(t, err)
	assert.Len(t, records, 2)

	// Weight ascending.
	records, err = repo.List(user.ID, repositories.RecordFilter{Sort: repositories.SortWeightAsc})
	assert.NoError(t, err)
	assert.Equal(t, 199.0, records[0].Weight)
	assert.Equal(t, 201.0, records[2].Weight)
}

func TestRecordDeleteByDateIdempotent(t *testing.T) {
	db := openTestDB(t)
	user := createTestUser(t, db)
	repo := repositories.NewGORMRecordRepository(db)

	record := &models.WeightRecord{UserID: user.ID, Date: "2024-01-01", Weight: 200}
	assert.NoError(t, repo.Create(record))

	assert.NoError(t, repo.DeleteByDate(user.ID, "2024-01-01"))
	// Deleting again matches no row and still succeeds.
	assert.NoError(t, repo.DeleteByDate(user.ID, "2024-01-01"))

	got, err := repo.GetByDate(user.ID, "2024-01-01")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestSettingsGetByUserIDAbsent(t *testing.T) {
	db := openTestDB(t)
	user := createTestUser(t, db)
	repo := repositories.NewGORMSettingsRepository(db)

	settings, err := repo.GetByUserID(user.ID)
	assert.NoError(t, err)
	assert.Nil(t, settings)
}

func TestRestoreReplacesSettingsAndRecords(t *testing.T) {
	db := openTestDB(t)
	user := createTestUser(t, db)
	settingsRepo := repositories.NewGORMSettingsRepository(db)
	recordRepo := repositories.NewGORMRecordRepository(db)
	backupRepo := repositories.NewGORMBackupRepository(db)

	assert.NoError(t, settingsRepo.Create(models.NewDefaultUserSettings(user.ID)))

	restoredSettings := &models.BackupSettings{
		Height:        floatPtr(175),
		Gender:        strPtr("female"),
		InitialWeight: floatPtr(195),
		TargetWeight:  floatPtr(145),
		TargetMonths:  intPtr(9),
		ReminderTime:  strPtr("08:00"),
	}
	restoredRecords := []models.BackupRecord{
		{Date: strPtr("2024-01-01"), Weight: floatPtr(195), Feeling: strPtr("good")},
		{Date: strPtr("2024-01-02"), Weight: floatPtr(194.5)},
	}

	assert.NoError(t, backupRepo.Restore(user.ID, restoredSettings, restoredRecords))

	// The settings row is replaced wholesale, still one row per user.
	settings, err := settingsRepo.GetByUserID(user.ID)
	assert.NoError(t, err)
	assert.NotNil(t, settings)
	assert.Equal(t, 175.0, settings.Height)
	assert.Equal(t, "female", settings.Gender)

	records, err := recordRepo.ListOrderedByDate(user.ID)
	assert.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, "good", records[0].Feeling)
}

func TestRestoreRollsBackOnBadRow(t *testing.T) {
	db := openTestDB(t)
	user := createTestUser(t, db)
	settingsRepo := repositories.NewGORMSettingsRepository(db)
	recordRepo := repositories.NewGORMRecordRepository(db)
	backupRepo := repositories.NewGORMBackupRepository(db)

	assert.NoError(t, settingsRepo.Create(models.NewDefaultUserSettings(user.ID)))
	existing := &models.WeightRecord{UserID: user.ID, Date: "2023-12-31", Weight: 205}
	assert.NoError(t, recordRepo.Create(existing))

	badSettings := &models.BackupSettings{
		Height:        floatPtr(175),
		Gender:        strPtr("female"),
		InitialWeight: floatPtr(195),
		TargetWeight:  floatPtr(145),
		TargetMonths:  intPtr(9),
		ReminderTime:  strPtr("08:00"),
	}
	// The second record has no weight; the NOT NULL constraint fails the
	// statement and must take the settings replacement down with it.
	badRecords := []models.BackupRecord{
		{Date: strPtr("2024-01-01"), Weight: floatPtr(195)},
		{Date: strPtr("2024-01-02")},
	}

	assert.Error(t, backupRepo.Restore(user.ID, badSettings, badRecords))

	settings, err := settingsRepo.GetByUserID(user.ID)
	assert.NoError(t, err)
	assert.NotNil(t, settings)
	assert.Equal(t, float64(models.DefaultHeight), settings.Height, "settings must be untouched after rollback")
	assert.Equal(t, models.DefaultGender, settings.Gender)

	records, err := recordRepo.ListOrderedByDate(user.ID)
	assert.NoError(t, err)
	assert.Len(t, records, 1, "no record from the failed restore may persist")
	assert.Equal(t, "2023-12-31", records[0].Date)
}

func TestRestoreEvictsNaturalKeyMatch(t *testing.T) {
	db := openTestDB(t)
	user := createTestUser(t, db)
	recordRepo := repositories.NewGORMRecordRepository(db)
	backupRepo := repositories.NewGORMBackupRepository(db)

	existing := &models.WeightRecord{UserID: user.ID, Date: "2024-01-01", Weight: 205}
	assert.NoError(t, recordRepo.Create(existing))

	// A restored row with a fresh id but the same (user, date) replaces the
	// old row instead of failing the unique index.
	assert.NoError(t, backupRepo.Restore(user.ID, nil, []models.BackupRecord{
		{Date: strPtr("2024-01-01"), Weight: floatPtr(200)},
	}))

	records, err := recordRepo.ListOrderedByDate(user.ID)
	assert.NoError(t, err)
	assert.Len(t, records, 1)
	assert.Equal(t, 200.0, records[0].Weight)
	assert.NotEqual(t, existing.ID, records[0].ID)
}

func TestBackupCreateAssignsID(t *testing.T) {
	db := openTestDB(t)
	user := createTestUser(t, db)
	repo := repositories.NewGORMBackupRepository(db)

	backup := &models.Backup{UserID: user.ID, BackupData: `{"settings":{},"records":[]}`}
	assert.NoError(t, repo.Create(backup))
	assert.NotEmpty(t, backup.ID)
}
