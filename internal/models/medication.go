package models

import "time"

type Medication struct {
	ID             string   `json:"medication_id"`
	UserID         string   `json:"user_id"`
	Name           string   `json:"name"`
	Dosage         string   `json:"dosage"`
	Frequency      string   `json:"frequency"`
	TimeOfDay      *string  `json:"time_of_day"`
	SpecificTimes  []string `json:"specific_times"`
	StartDate      string   `json:"start_date"`
	EndDate        *string  `json:"end_date"`
	Notes          *string  `json:"notes"`
	MedicationType *string  `json:"medication_type"`
	ImageURL       *string  `json:"image_url"`
	CreatedAt      int64    `json:"created_at"`
	UpdatedAt      int64    `json:"updated_at"`
}

func (m *Medication) RecordID() string { return m.ID }
func (m *Medication) OwnerID() string  { return m.UserID }

// ActiveAt reports whether the course covers the calendar date of t (UTC).
// Unparseable bounds are treated as open.
func (m *Medication) ActiveAt(t time.Time) bool {
	day := t.UTC().Format(time.DateOnly)
	if start, ok := ParseTime(m.StartDate); ok && start.Format(time.DateOnly) > day {
		return false
	}
	if m.EndDate != nil {
		if end, ok := ParseTime(*m.EndDate); ok && end.Format(time.DateOnly) < day {
			return false
		}
	}
	return true
}

type MedicationInput struct {
	Name           string   `json:"name" validate:"required|maxLen:120"`
	Dosage         string   `json:"dosage" validate:"required"`
	Frequency      string   `json:"frequency" validate:"required"`
	TimeOfDay      *string  `json:"time_of_day"`
	SpecificTimes  []string `json:"specific_times"`
	StartDate      string   `json:"start_date" validate:"required"`
	EndDate        *string  `json:"end_date"`
	Notes          *string  `json:"notes"`
	MedicationType *string  `json:"medication_type"`
	ImageURL       *string  `json:"image_url"`
}

func (in *MedicationInput) Validate() error {
	ve := validateStruct(in)
	if in.StartDate != "" {
		if _, ok := ParseTime(in.StartDate); !ok {
			ve = ve.merge("start_date", "start_date must be an ISO-8601 date")
		}
	}
	if in.EndDate != nil && *in.EndDate != "" {
		if _, ok := ParseTime(*in.EndDate); !ok {
			ve = ve.merge("end_date", "end_date must be an ISO-8601 date")
		}
	}
	return ve.orNil()
}

type MedicationUpdateInput struct {
	Name           *string   `json:"name"`
	Dosage         *string   `json:"dosage"`
	Frequency      *string   `json:"frequency"`
	TimeOfDay      *string   `json:"time_of_day"`
	SpecificTimes  *[]string `json:"specific_times"`
	StartDate      *string   `json:"start_date"`
	EndDate        *string   `json:"end_date"`
	Notes          *string   `json:"notes"`
	MedicationType *string   `json:"medication_type"`
	ImageURL       *string   `json:"image_url"`
}

func (in *MedicationUpdateInput) Validate() error {
	data := map[string]any{}
	for field, val := range map[string]*string{"name": in.Name, "dosage": in.Dosage, "frequency": in.Frequency, "start_date": in.StartDate} {
		if val != nil {
			data[field] = *val
		}
	}
	ve := validateMap(data, map[string]string{
		"name":       "required|maxLen:120",
		"dosage":     "required",
		"frequency":  "required",
		"start_date": "required",
	})
	if in.StartDate != nil && *in.StartDate != "" {
		if _, ok := ParseTime(*in.StartDate); !ok {
			ve = ve.merge("start_date", "start_date must be an ISO-8601 date")
		}
	}
	if in.EndDate != nil && *in.EndDate != "" {
		if _, ok := ParseTime(*in.EndDate); !ok {
			ve = ve.merge("end_date", "end_date must be an ISO-8601 date")
		}
	}
	return ve.orNil()
}

func (in *MedicationUpdateInput) Apply(m *Medication, now time.Time) {
	setString := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	setOptional := func(dst **string, src *string) {
		if src != nil {
			v := *src
			*dst = &v
		}
	}
	setString(&m.Name, in.Name)
	setString(&m.Dosage, in.Dosage)
	setString(&m.Frequency, in.Frequency)
	setString(&m.StartDate, in.StartDate)
	setOptional(&m.TimeOfDay, in.TimeOfDay)
	setOptional(&m.EndDate, in.EndDate)
	setOptional(&m.Notes, in.Notes)
	setOptional(&m.MedicationType, in.MedicationType)
	setOptional(&m.ImageURL, in.ImageURL)
	if in.SpecificTimes != nil {
		m.SpecificTimes = append([]string(nil), (*in.SpecificTimes)...)
	}
	m.UpdatedAt = now.Unix()
}
