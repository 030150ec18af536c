package storage

import (
	"context"
	"fmt"
	"github.com/samber/lo"
	"mindcare/internal/models"
	"sort"
	"strings"
	"time"
)

const day = 24 * time.Hour

// inRange reports whether ts lies in [start, end]. Zero bounds are open.
func inRange(ts, start, end time.Time) bool {
	if !start.IsZero() && ts.Before(start) {
		return false
	}
	if !end.IsZero() && ts.After(end) {
		return false
	}
	return true
}

func newestFirst[T any](rows []T, ts func(T) time.Time, limit int) []T {
	sort.SliceStable(rows, func(i, j int) bool { return ts(rows[i]).After(ts(rows[j])) })
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	return rows
}

// ListMoodEntries returns the owner's mood entries in [start, end],
// newest first, at most limit of them when limit > 0.
func (d *Database) ListMoodEntries(ctx context.Context, owner string, limit int, start, end time.Time) ([]*models.MoodEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rows := lo.Filter(d.Moods.QueryByOwner(owner), func(m *models.MoodEntry, _ int) bool {
		return inRange(m.Timestamp, start, end)
	})
	return newestFirst(rows, func(m *models.MoodEntry) time.Time { return m.Timestamp }, limit), nil
}

func (d *Database) ListJournalEntries(ctx context.Context, owner string, limit int, start, end time.Time) ([]*models.JournalEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rows := lo.Filter(d.Journals.QueryByOwner(owner), func(j *models.JournalEntry, _ int) bool {
		return inRange(j.Timestamp, start, end)
	})
	return newestFirst(rows, func(j *models.JournalEntry) time.Time { return j.Timestamp }, limit), nil
}

// SearchJournalEntries matches the query against title and content without
// regard to case and requires every requested tag.
func (d *Database) SearchJournalEntries(ctx context.Context, owner string, search models.JournalSearch) ([]*models.JournalEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	query := strings.ToLower(strings.TrimSpace(search.Query))
	rows := lo.Filter(d.Journals.QueryByOwner(owner), func(j *models.JournalEntry, _ int) bool {
		if query != "" &&
			!strings.Contains(strings.ToLower(j.Title), query) &&
			!strings.Contains(strings.ToLower(j.Content), query) {
			return false
		}
		return lo.Every(j.Tags, search.Tags)
	})
	return newestFirst(rows, func(j *models.JournalEntry) time.Time { return j.Timestamp }, search.Limit), nil
}

// ListMedications returns the owner's medications, most recently created first.
func (d *Database) ListMedications(ctx context.Context, owner string) ([]*models.Medication, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rows := d.Medications.QueryByOwner(owner)
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].CreatedAt > rows[j].CreatedAt })
	return rows, nil
}

// ListReminders returns the owner's reminders scheduled in [start, end],
// earliest first.
func (d *Database) ListReminders(ctx context.Context, owner string, start, end time.Time) ([]*models.Reminder, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rows := lo.Filter(d.Reminders.QueryByOwner(owner), func(r *models.Reminder, _ int) bool {
		return inRange(r.ScheduledTime, start, end)
	})
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].ScheduledTime.Before(rows[j].ScheduledTime) })
	return rows, nil
}

// ListUpcomingReminders returns reminders scheduled between now and
// now + days, earliest first.
func (d *Database) ListUpcomingReminders(ctx context.Context, owner string, days int) ([]*models.Reminder, error) {
	now := d.now()
	return d.ListReminders(ctx, owner, now, now.Add(time.Duration(days)*day))
}

// ListTodayReminders returns reminders on the current UTC calendar date.
func (d *Database) ListTodayReminders(ctx context.Context, owner string) ([]*models.Reminder, error) {
	start := d.now().UTC().Truncate(day)
	return d.ListReminders(ctx, owner, start, start.Add(day-time.Nanosecond))
}

// FindUserByEmail matches the address without regard to case.
func (d *Database) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	found := d.Users.Find(func(u *models.User) bool { return strings.EqualFold(u.Email, email) })
	if len(found) == 0 {
		return nil, models.NotFound("user", email)
	}
	return found[0], nil
}

// InsertUser stores user unless another user already has the address.
func (d *Database) InsertUser(ctx context.Context, user *models.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	err := d.Users.Insert(user, func(u *models.User) bool { return strings.EqualFold(u.Email, user.Email) })
	if err != nil {
		return fmt.Errorf("email already registered: %w", err)
	}
	return nil
}

func (d *Database) GetMedication(ctx context.Context, owner, id string) (*models.Medication, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return d.Medications.GetOwned(owner, id)
}
