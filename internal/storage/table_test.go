package storage

import (
	"errors"
	"fmt"
	"mindcare/internal/models"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_PutGet(t *testing.T) {
	tbl := NewTable[models.MoodEntry]("mood entry")
	tbl.Put(&models.MoodEntry{ID: "m1", UserID: "u1", Rating: 4})

	got, err := tbl.Get("m1")
	require.NoError(t, err)
	assert.Equal(t, 4, got.Rating)
}

func TestTable_ReturnsCopies(t *testing.T) {
	tbl := NewTable[models.MoodEntry]("mood entry")
	in := &models.MoodEntry{ID: "m1", UserID: "u1", Rating: 4}
	tbl.Put(in)
	in.Rating = 9

	got, _ := tbl.Get("m1")
	got.Rating = 1

	again, _ := tbl.Get("m1")
	assert.Equal(t, 4, again.Rating)
}

func TestTable_OwnerIsolation(t *testing.T) {
	tbl := NewTable[models.JournalEntry]("journal entry")
	tbl.Put(&models.JournalEntry{ID: "j1", UserID: "u1"})

	_, err := tbl.GetOwned("u2", "j1")
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.ErrorIs(t, tbl.Delete("u2", "j1"), models.ErrNotFound)
	assert.Empty(t, tbl.QueryByOwner("u2"))

	got, err := tbl.GetOwned("u1", "j1")
	require.NoError(t, err)
	assert.Equal(t, "j1", got.ID)
}

func TestTable_NotFoundMessage(t *testing.T) {
	tbl := NewTable[models.Medication]("medication")

	_, err := tbl.Get("nope")

	assert.EqualError(t, err, "medication with ID nope not found")
}

func TestTable_DeleteRemovesFromIndex(t *testing.T) {
	tbl := NewTable[models.MoodEntry]("mood entry")
	tbl.Put(&models.MoodEntry{ID: "m1", UserID: "u1"})
	tbl.Put(&models.MoodEntry{ID: "m2", UserID: "u1"})

	require.NoError(t, tbl.Delete("u1", "m1"))

	rows := tbl.QueryByOwner("u1")
	require.Len(t, rows, 1)
	assert.Equal(t, "m2", rows[0].ID)
	assert.Equal(t, 1, tbl.Len())
}

func TestTable_PutMovesOwnerIndex(t *testing.T) {
	tbl := NewTable[models.MoodEntry]("mood entry")
	tbl.Put(&models.MoodEntry{ID: "m1", UserID: "u1"})
	tbl.Put(&models.MoodEntry{ID: "m1", UserID: "u2"})

	assert.Empty(t, tbl.QueryByOwner("u1"))
	assert.Len(t, tbl.QueryByOwner("u2"), 1)
}

func TestTable_Find(t *testing.T) {
	tbl := NewTable[models.User]("user")
	tbl.Put(&models.User{ID: "a", Email: "a@example.com"})
	tbl.Put(&models.User{ID: "b", Email: "b@example.com"})

	found := tbl.Find(func(u *models.User) bool { return u.Email == "b@example.com" })

	require.Len(t, found, 1)
	assert.Equal(t, "b", found[0].ID)
}

func TestTable_ReplaceRebuildsIndex(t *testing.T) {
	tbl := NewTable[models.MoodEntry]("mood entry")
	tbl.Put(&models.MoodEntry{ID: "old", UserID: "u1"})

	tbl.Replace([]models.MoodEntry{
		{ID: "m1", UserID: "u1", Timestamp: time.Unix(1, 0)},
		{ID: "m2", UserID: "u2", Timestamp: time.Unix(2, 0)},
	})

	assert.Equal(t, 2, tbl.Len())
	_, err := tbl.Get("old")
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.Len(t, tbl.QueryByOwner("u1"), 1)
	assert.Len(t, tbl.QueryByOwner("u2"), 1)
	assert.Equal(t, []string{"m1", "m2"}, []string{tbl.All()[0].ID, tbl.All()[1].ID})
}

func TestTable_InsertRejectsClash(t *testing.T) {
	tbl := NewTable[models.User]("user")
	sameEmail := func(email string) func(*models.User) bool {
		return func(u *models.User) bool { return u.Email == email }
	}

	require.NoError(t, tbl.Insert(&models.User{ID: "a", Email: "a@example.com"}, sameEmail("a@example.com")))

	err := tbl.Insert(&models.User{ID: "b", Email: "a@example.com"}, sameEmail("a@example.com"))
	assert.ErrorIs(t, err, models.ErrConflict)
	err = tbl.Insert(&models.User{ID: "a", Email: "other@example.com"}, nil)
	assert.ErrorIs(t, err, models.ErrConflict)
	assert.Equal(t, 1, tbl.Len())
}

func TestTable_ConcurrentInsertKeepsOne(t *testing.T) {
	tbl := NewTable[models.User]("user")
	var wg sync.WaitGroup
	var inserted atomic.Int32
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			u := &models.User{ID: fmt.Sprintf("u%d", i), Email: "same@example.com"}
			if tbl.Insert(u, func(e *models.User) bool { return e.Email == u.Email }) == nil {
				inserted.Add(1)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(1), inserted.Load())
	assert.Equal(t, 1, tbl.Len())
}

func TestTable_Update(t *testing.T) {
	tbl := NewTable[models.MoodEntry]("mood entry")
	tbl.Put(&models.MoodEntry{ID: "m1", UserID: "u1", Rating: 4})

	updated, err := tbl.Update("m1", func(m *models.MoodEntry) error {
		m.Rating = 6
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 6, updated.Rating)
	updated.Rating = 1
	got, _ := tbl.Get("m1")
	assert.Equal(t, 6, got.Rating)

	boom := errors.New("boom")
	_, err = tbl.Update("m1", func(m *models.MoodEntry) error {
		m.Rating = 9
		return boom
	})
	assert.ErrorIs(t, err, boom)
	got, _ = tbl.Get("m1")
	assert.Equal(t, 6, got.Rating)

	_, err = tbl.Update("missing", func(*models.MoodEntry) error { return nil })
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestTable_ConcurrentUpdatesAreSerialized(t *testing.T) {
	tbl := NewTable[models.MoodEntry]("mood entry")
	tbl.Put(&models.MoodEntry{ID: "m1", UserID: "u1"})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = tbl.Update("m1", func(m *models.MoodEntry) error {
				m.Rating++
				return nil
			})
		}()
	}
	wg.Wait()

	got, _ := tbl.Get("m1")
	assert.Equal(t, 50, got.Rating)
}
