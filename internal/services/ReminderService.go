package services

import (
	"context"
	"github.com/google/uuid"
	"mindcare/internal/models"
	"mindcare/internal/storage"
	"time"
)

const (
	DefaultUpcomingDays = 7
	MaxUpcomingDays     = 30
)

type ReminderServiceInterface interface {
	Create(ctx context.Context, owner string, in *models.ReminderInput) (*models.ReminderView, error)
	Get(ctx context.Context, owner, id string) (*models.ReminderView, error)
	List(ctx context.Context, owner string, start, end time.Time) ([]*models.ReminderView, error)
	Today(ctx context.Context, owner string) ([]*models.ReminderView, error)
	Upcoming(ctx context.Context, owner string, days int) ([]*models.ReminderView, error)
	Update(ctx context.Context, owner, id string, in *models.ReminderUpdateInput) (*models.ReminderView, error)
	UpdateStatus(ctx context.Context, owner, id string, in *models.ReminderStatusInput) (*models.ReminderView, error)
	Delete(ctx context.Context, owner, id string) error
}

type ReminderService struct {
	db  *storage.Database
	now func() time.Time
}

func NewReminderService(db *storage.Database) ReminderServiceInterface {
	return &ReminderService{db: db, now: time.Now}
}

func (s *ReminderService) Create(ctx context.Context, owner string, in *models.ReminderInput) (*models.ReminderView, error) {
	scheduled, err := in.Validate()
	if err != nil {
		return nil, err
	}
	med, err := s.db.GetMedication(ctx, owner, in.MedicationID)
	if err != nil {
		return nil, err
	}
	status := models.ReminderPending
	if in.Status != "" {
		status = models.ReminderStatus(in.Status)
	}
	now := s.now().Unix()
	reminder := &models.Reminder{
		ID:            uuid.NewString(),
		UserID:        owner,
		MedicationID:  med.ID,
		ScheduledTime: scheduled,
		Status:        status,
		Notes:         in.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	s.db.Reminders.Put(reminder)
	return s.view(ctx, reminder), nil
}

func (s *ReminderService) Get(ctx context.Context, owner, id string) (*models.ReminderView, error) {
	reminder, err := s.db.Reminders.GetOwned(owner, id)
	if err != nil {
		return nil, err
	}
	return s.view(ctx, reminder), nil
}

func (s *ReminderService) List(ctx context.Context, owner string, start, end time.Time) ([]*models.ReminderView, error) {
	reminders, err := s.db.ListReminders(ctx, owner, start, end)
	if err != nil {
		return nil, err
	}
	return s.views(ctx, reminders), nil
}

func (s *ReminderService) Today(ctx context.Context, owner string) ([]*models.ReminderView, error) {
	reminders, err := s.db.ListTodayReminders(ctx, owner)
	if err != nil {
		return nil, err
	}
	return s.views(ctx, reminders), nil
}

func (s *ReminderService) Upcoming(ctx context.Context, owner string, days int) ([]*models.ReminderView, error) {
	if days < 1 || days > MaxUpcomingDays {
		return nil, models.NewValidationError("days", "days must be between 1 and 30")
	}
	reminders, err := s.db.ListUpcomingReminders(ctx, owner, days)
	if err != nil {
		return nil, err
	}
	return s.views(ctx, reminders), nil
}

func (s *ReminderService) Update(ctx context.Context, owner, id string, in *models.ReminderUpdateInput) (*models.ReminderView, error) {
	scheduled, err := in.Validate()
	if err != nil {
		return nil, err
	}
	reminder, err := s.db.Reminders.GetOwned(owner, id)
	if err != nil {
		return nil, err
	}
	if scheduled != nil {
		reminder.ScheduledTime = *scheduled
	}
	if in.Status != nil {
		reminder.Status = models.ReminderStatus(*in.Status)
	}
	if in.Notes != nil {
		notes := *in.Notes
		reminder.Notes = &notes
	}
	reminder.UpdatedAt = s.now().Unix()
	s.db.Reminders.Put(reminder)
	return s.view(ctx, reminder), nil
}

func (s *ReminderService) UpdateStatus(ctx context.Context, owner, id string, in *models.ReminderStatusInput) (*models.ReminderView, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	reminder, err := s.db.Reminders.GetOwned(owner, id)
	if err != nil {
		return nil, err
	}
	reminder.Status = models.ReminderStatus(in.Status)
	if in.Notes != nil {
		notes := *in.Notes
		reminder.Notes = &notes
	}
	reminder.UpdatedAt = s.now().Unix()
	s.db.Reminders.Put(reminder)
	return s.view(ctx, reminder), nil
}

func (s *ReminderService) Delete(_ context.Context, owner, id string) error {
	return s.db.Reminders.Delete(owner, id)
}

// view joins the reminder with its medication. A deleted medication leaves
// both fields empty.
func (s *ReminderService) view(ctx context.Context, r *models.Reminder) *models.ReminderView {
	v := &models.ReminderView{Reminder: r}
	if med, err := s.db.GetMedication(ctx, r.UserID, r.MedicationID); err == nil {
		v.Medication = med
		v.MedicationName = med.Name
	}
	return v
}

func (s *ReminderService) views(ctx context.Context, reminders []*models.Reminder) []*models.ReminderView {
	out := make([]*models.ReminderView, 0, len(reminders))
	for _, r := range reminders {
		out = append(out, s.view(ctx, r))
	}
	return out
}
