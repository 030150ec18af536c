package services

import (
	"context"
	"errors"
	"mindcare/internal/models"
	"mindcare/internal/storage"
	"mindcare/internal/structures"
	"time"
)

var testNow = time.Date(2026, 4, 15, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

func testConfig() *structures.Config {
	return &structures.Config{
		AppName: "mindcare",
		Auth: structures.AuthConfig{
			Secret:   "0123456789abcdef0123456789abcdef",
			TokenTTL: time.Hour,
		},
		Analytics: structures.AnalyticsConfig{
			LowMoodThreshold:           5,
			NegativeSentimentThreshold: -0.3,
			StatsWindowDays:            30,
			ChatHistoryLimit:           20,
		},
		Media: structures.MediaConfig{MaxSizeMB: 1},
	}
}

func newTestDB() *storage.Database {
	return storage.NewDatabaseWithClock(fixedClock)
}

func strPtr(s string) *string { return &s }

func mood(id, owner string, rating int, ago time.Duration, tags ...string) *models.MoodEntry {
	return &models.MoodEntry{
		ID:        id,
		UserID:    owner,
		Rating:    rating,
		Tags:      tags,
		Timestamp: testNow.Add(-ago),
	}
}

func medication(id, owner, name string) *models.Medication {
	return &models.Medication{
		ID:        id,
		UserID:    owner,
		Name:      name,
		Dosage:    "10mg",
		Frequency: "daily",
		StartDate: "2026-01-01",
	}
}

func reminder(id, owner, medID string, in time.Duration, status models.ReminderStatus) *models.Reminder {
	return &models.Reminder{
		ID:            id,
		UserID:        owner,
		MedicationID:  medID,
		ScheduledTime: testNow.Add(in),
		Status:        status,
	}
}

var errStoreDown = errors.New("store unavailable")

// failingReader wraps an EntryReader and fails the selected reads.
type failingReader struct {
	EntryReader
	moods, journals, medications, reminders bool
}

func (f *failingReader) ListMoodEntries(ctx context.Context, owner string, limit int, start, end time.Time) ([]*models.MoodEntry, error) {
	if f.moods {
		return nil, errStoreDown
	}
	return f.EntryReader.ListMoodEntries(ctx, owner, limit, start, end)
}

func (f *failingReader) ListJournalEntries(ctx context.Context, owner string, limit int, start, end time.Time) ([]*models.JournalEntry, error) {
	if f.journals {
		return nil, errStoreDown
	}
	return f.EntryReader.ListJournalEntries(ctx, owner, limit, start, end)
}

func (f *failingReader) ListMedications(ctx context.Context, owner string) ([]*models.Medication, error) {
	if f.medications {
		return nil, errStoreDown
	}
	return f.EntryReader.ListMedications(ctx, owner)
}

func (f *failingReader) ListUpcomingReminders(ctx context.Context, owner string, days int) ([]*models.Reminder, error) {
	if f.reminders {
		return nil, errStoreDown
	}
	return f.EntryReader.ListUpcomingReminders(ctx, owner, days)
}
