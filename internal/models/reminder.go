package models

import "time"

type ReminderStatus string

const (
	ReminderPending   ReminderStatus = "pending"
	ReminderCompleted ReminderStatus = "completed"
	ReminderMissed    ReminderStatus = "missed"
	ReminderSkipped   ReminderStatus = "skipped"
)

const reminderStatusRule = "in:pending,completed,missed,skipped"

type Reminder struct {
	ID            string         `json:"reminder_id"`
	UserID        string         `json:"user_id"`
	MedicationID  string         `json:"medication_id"`
	ScheduledTime time.Time      `json:"scheduled_time"`
	Status        ReminderStatus `json:"status"`
	Notes         *string        `json:"notes"`
	CreatedAt     int64          `json:"created_at"`
	UpdatedAt     int64          `json:"updated_at"`
}

func (r *Reminder) RecordID() string { return r.ID }
func (r *Reminder) OwnerID() string  { return r.UserID }

// ReminderView is a reminder joined with its medication for responses.
type ReminderView struct {
	*Reminder
	Medication     *Medication `json:"medication,omitempty"`
	MedicationName string      `json:"medication_name,omitempty"`
}

type ReminderInput struct {
	MedicationID  string  `json:"medication_id" validate:"required"`
	ScheduledTime string  `json:"scheduled_time" validate:"required"`
	Status        string  `json:"status"`
	Notes         *string `json:"notes"`
}

// Validate returns the parsed scheduled time.
func (in *ReminderInput) Validate() (time.Time, error) {
	ve := validateStruct(in)
	if in.Status != "" {
		if sve := validateMap(map[string]any{"status": in.Status}, map[string]string{"status": reminderStatusRule}); sve != nil {
			for k, v := range sve.Fields {
				ve = ve.merge(k, v)
			}
		}
	}
	var ts time.Time
	if in.ScheduledTime != "" {
		parsed, ok := ParseTime(in.ScheduledTime)
		if !ok {
			ve = ve.merge("scheduled_time", "scheduled_time must be an ISO-8601 datetime")
		}
		ts = parsed
	}
	return ts, ve.orNil()
}

type ReminderUpdateInput struct {
	ScheduledTime *string `json:"scheduled_time"`
	Status        *string `json:"status"`
	Notes         *string `json:"notes"`
}

// Validate returns the parsed scheduled time when one was supplied.
func (in *ReminderUpdateInput) Validate() (*time.Time, error) {
	data := map[string]any{}
	if in.Status != nil {
		data["status"] = *in.Status
	}
	ve := validateMap(data, map[string]string{"status": "required|" + reminderStatusRule})
	var ts *time.Time
	if in.ScheduledTime != nil {
		parsed, ok := ParseTime(*in.ScheduledTime)
		if !ok {
			ve = ve.merge("scheduled_time", "scheduled_time must be an ISO-8601 datetime")
		} else {
			ts = &parsed
		}
	}
	return ts, ve.orNil()
}

type ReminderStatusInput struct {
	Status string  `json:"status" validate:"required|in:pending,completed,missed,skipped"`
	Notes  *string `json:"notes"`
}

func (in *ReminderStatusInput) Validate() error {
	return validateStruct(in).orNil()
}
