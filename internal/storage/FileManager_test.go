package storage

import (
	"context"
	"errors"
	"mindcare/internal/models"
	"mindcare/internal/testutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededDB(t *testing.T) *Database {
	t.Helper()
	db := NewDatabaseWithClock(func() time.Time { return queryNow })
	notes := "slept well"
	db.Users.Put(&models.User{ID: "u1", Email: "a@example.com", PasswordHash: "hash"})
	db.Moods.Put(&models.MoodEntry{ID: "m1", UserID: "u1", Rating: 7, Tags: []string{"sleep"}, Notes: &notes, Timestamp: queryNow})
	db.Journals.Put(&models.JournalEntry{ID: "j1", UserID: "u1", Title: "t", Content: "c", Timestamp: queryNow})
	db.Medications.Put(&models.Medication{ID: "med1", UserID: "u1", Name: "Sertraline"})
	db.Reminders.Put(&models.Reminder{ID: "r1", UserID: "u1", MedicationID: "med1", ScheduledTime: queryNow, Status: models.ReminderPending})
	db.Feedback.Put(&models.Feedback{ID: "f1", UserID: "u1", Feedback: "nice", Timestamp: queryNow})
	_, err := db.Chat.Append(context.Background(), "u1", "hello", true, queryNow)
	require.NoError(t, err)
	return db
}

func TestFileManager_RoundTripWithZstd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "mindcare.db")
	compressor, err := NewZstdCompressor()
	require.NoError(t, err)
	defer compressor.Close()

	src := seededDB(t)
	require.NoError(t, NewFileManager(compressor, src, &testutil.MockLogger{}).SaveToFile(path))

	dst := NewDatabase()
	require.NoError(t, NewFileManager(compressor, dst, &testutil.MockLogger{}).LoadFromFile(path))

	assert.Equal(t, src.Counts(), dst.Counts())
	user, err := dst.Users.Get("u1")
	require.NoError(t, err)
	assert.Equal(t, "hash", user.PasswordHash)
	mood, err := dst.Moods.GetOwned("u1", "m1")
	require.NoError(t, err)
	assert.Equal(t, "slept well", *mood.Notes)
	assert.True(t, queryNow.Equal(mood.Timestamp))
	med, err := dst.Medications.Get("med1")
	require.NoError(t, err)
	assert.Equal(t, "Sertraline", med.Name)
}

func TestFileManager_SaveLeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mindcare.db")
	fm := NewFileManager(&testutil.MockCompressor{}, seededDB(t), &testutil.MockLogger{})

	require.NoError(t, fm.SaveToFile(path))

	_, err := os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"entry_id":"m1"`)
}

func TestFileManager_CompressErrorKeepsPreviousFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mindcare.db")
	require.NoError(t, os.WriteFile(path, []byte("previous"), 0644))
	comp := &testutil.MockCompressor{CompressFn: func([]byte) ([]byte, error) { return nil, errors.New("boom") }}

	err := NewFileManager(comp, seededDB(t), &testutil.MockLogger{}).SaveToFile(path)

	assert.EqualError(t, err, "boom")
	data, _ := os.ReadFile(path)
	assert.Equal(t, "previous", string(data))
}

func TestFileManager_LoadMissingFile(t *testing.T) {
	db := NewDatabase()
	fm := NewFileManager(&testutil.MockCompressor{}, db, &testutil.MockLogger{})

	require.NoError(t, fm.LoadFromFile(filepath.Join(t.TempDir(), "absent.db")))
	assert.Equal(t, 0, db.Users.Len())
}

func TestFileManager_LoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mindcare.db")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0644))
	fm := NewFileManager(&testutil.MockCompressor{}, NewDatabase(), &testutil.MockLogger{})

	err := fm.LoadFromFile(path)

	assert.ErrorContains(t, err, "decode snapshot")
}

func TestFileManager_Close(t *testing.T) {
	comp := &testutil.MockCompressor{}
	NewFileManager(comp, NewDatabase(), &testutil.MockLogger{}).Close()

	assert.True(t, comp.Closed)
}
