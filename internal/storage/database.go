package storage

import (
	"mindcare/internal/models"
	"time"
)

type (
	UserTable       = Table[models.User, *models.User]
	MoodTable       = Table[models.MoodEntry, *models.MoodEntry]
	JournalTable    = Table[models.JournalEntry, *models.JournalEntry]
	MedicationTable = Table[models.Medication, *models.Medication]
	ReminderTable   = Table[models.Reminder, *models.Reminder]
	FeedbackTable   = Table[models.Feedback, *models.Feedback]
)

// Database groups the tables of the service. It is created once at start up
// and handed to every service that needs it.
type Database struct {
	Users       *UserTable
	Moods       *MoodTable
	Journals    *JournalTable
	Medications *MedicationTable
	Reminders   *ReminderTable
	Feedback    *FeedbackTable
	Chat        *ChatHistory

	now func() time.Time
}

func NewDatabase() *Database {
	return NewDatabaseWithClock(time.Now)
}

func NewDatabaseWithClock(now func() time.Time) *Database {
	return &Database{
		Users:       NewTable[models.User]("user"),
		Moods:       NewTable[models.MoodEntry]("mood entry"),
		Journals:    NewTable[models.JournalEntry]("journal entry"),
		Medications: NewTable[models.Medication]("medication"),
		Reminders:   NewTable[models.Reminder]("reminder"),
		Feedback:    NewTable[models.Feedback]("feedback"),
		Chat:        NewChatHistory(),
		now:         now,
	}
}

// Counts reports the number of rows per table.
func (d *Database) Counts() map[string]int {
	return map[string]int{
		"users":       d.Users.Len(),
		"moods":       d.Moods.Len(),
		"journal":     d.Journals.Len(),
		"medications": d.Medications.Len(),
		"reminders":   d.Reminders.Len(),
		"chat":        d.Chat.Len(),
		"feedback":    d.Feedback.Len(),
	}
}

// Snapshot is the on-disk form of the database.
type Snapshot struct {
	Users       []models.User         `json:"users"`
	Moods       []models.MoodEntry    `json:"moods"`
	Journals    []models.JournalEntry `json:"journals"`
	Medications []models.Medication   `json:"medications"`
	Reminders   []models.Reminder     `json:"reminders"`
	Feedback    []models.Feedback     `json:"feedback"`
	Chat        []models.ChatMessage  `json:"chat"`
	TakenAt     time.Time             `json:"taken_at"`
}

func (d *Database) Snapshot() *Snapshot {
	return &Snapshot{
		Users:       d.Users.All(),
		Moods:       d.Moods.All(),
		Journals:    d.Journals.All(),
		Medications: d.Medications.All(),
		Reminders:   d.Reminders.All(),
		Feedback:    d.Feedback.All(),
		Chat:        d.Chat.All(),
		TakenAt:     d.now().UTC(),
	}
}

// Load replaces every table with the snapshot contents.
func (d *Database) Load(s *Snapshot) {
	d.Users.Replace(s.Users)
	d.Moods.Replace(s.Moods)
	d.Journals.Replace(s.Journals)
	d.Medications.Replace(s.Medications)
	d.Reminders.Replace(s.Reminders)
	d.Feedback.Replace(s.Feedback)
	d.Chat.Replace(s.Chat)
}
