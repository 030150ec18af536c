package services

import (
	"context"
	"mindcare/internal/models"
	"time"
)

// EntryReader is the read side of the entry store used by the analytics
// consumers. *storage.Database implements it.
type EntryReader interface {
	ListMoodEntries(ctx context.Context, owner string, limit int, start, end time.Time) ([]*models.MoodEntry, error)
	ListJournalEntries(ctx context.Context, owner string, limit int, start, end time.Time) ([]*models.JournalEntry, error)
	ListMedications(ctx context.Context, owner string) ([]*models.Medication, error)
	ListUpcomingReminders(ctx context.Context, owner string, days int) ([]*models.Reminder, error)
	ListReminders(ctx context.Context, owner string, start, end time.Time) ([]*models.Reminder, error)
	GetMedication(ctx context.Context, owner, id string) (*models.Medication, error)
}

// ChatTranscript stores chat messages per user. *storage.ChatHistory implements it.
type ChatTranscript interface {
	Append(ctx context.Context, owner, text string, isUser bool, ts time.Time) (*models.ChatMessage, error)
	Recent(ctx context.Context, owner string, limit int) ([]*models.ChatMessage, error)
}
