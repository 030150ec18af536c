package models

import "time"

const (
	MinMoodRating = 1
	MaxMoodRating = 10
)

type MoodEntry struct {
	ID        string    `json:"entry_id"`
	UserID    string    `json:"user_id"`
	Rating    int       `json:"mood_rating"`
	Tags      []string  `json:"tags"`
	Notes     *string   `json:"notes"`
	Timestamp time.Time `json:"timestamp"`
	CreatedAt int64     `json:"created_at"`
	UpdatedAt int64     `json:"updated_at"`
}

func (m *MoodEntry) RecordID() string { return m.ID }
func (m *MoodEntry) OwnerID() string  { return m.UserID }

type MoodCreateInput struct {
	Rating    int      `json:"mood_rating" validate:"required|int|min:1|max:10"`
	Tags      []string `json:"tags"`
	Notes     *string  `json:"notes"`
	Timestamp string   `json:"timestamp"`
}

// Validate checks the payload and returns the parsed timestamp, or zero when absent.
func (in *MoodCreateInput) Validate() (time.Time, error) {
	ve := validateStruct(in)
	var ts time.Time
	if in.Timestamp != "" {
		parsed, ok := ParseTime(in.Timestamp)
		if !ok {
			ve = ve.merge("timestamp", "timestamp must be an ISO-8601 datetime")
		}
		ts = parsed
	}
	return ts, ve.orNil()
}

type MoodUpdateInput struct {
	Rating *int      `json:"mood_rating"`
	Tags   *[]string `json:"tags"`
	Notes  *string   `json:"notes"`
}

func (in *MoodUpdateInput) Validate() error {
	data := map[string]any{}
	if in.Rating != nil {
		data["mood_rating"] = *in.Rating
	}
	return validateMap(data, map[string]string{"mood_rating": "int|min:1|max:10"}).orNil()
}

// Apply copies the present fields onto entry. Identity and timestamp never change.
func (in *MoodUpdateInput) Apply(entry *MoodEntry, now time.Time) {
	if in.Rating != nil {
		entry.Rating = *in.Rating
	}
	if in.Tags != nil {
		entry.Tags = NormalizeTags(*in.Tags)
	}
	if in.Notes != nil {
		notes := *in.Notes
		entry.Notes = &notes
	}
	entry.UpdatedAt = now.Unix()
}
