package models

import "time"

type JournalEntry struct {
	ID        string    `json:"entry_id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Tags      []string  `json:"tags"`
	Timestamp time.Time `json:"timestamp"`
	CreatedAt int64     `json:"created_at"`
	UpdatedAt int64     `json:"updated_at"`
}

func (j *JournalEntry) RecordID() string { return j.ID }
func (j *JournalEntry) OwnerID() string  { return j.UserID }

type JournalCreateInput struct {
	Title     string   `json:"title" validate:"required|maxLen:200"`
	Content   string   `json:"content" validate:"required"`
	Tags      []string `json:"tags"`
	Timestamp string   `json:"timestamp"`
}

func (in *JournalCreateInput) Validate() (time.Time, error) {
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

type JournalUpdateInput struct {
	Title   *string   `json:"title"`
	Content *string   `json:"content"`
	Tags    *[]string `json:"tags"`
}

func (in *JournalUpdateInput) Validate() error {
	data := map[string]any{}
	if in.Title != nil {
		data["title"] = *in.Title
	}
	if in.Content != nil {
		data["content"] = *in.Content
	}
	return validateMap(data, map[string]string{
		"title":   "required|maxLen:200",
		"content": "required",
	}).orNil()
}

func (in *JournalUpdateInput) Apply(entry *JournalEntry, now time.Time) {
	if in.Title != nil {
		entry.Title = *in.Title
	}
	if in.Content != nil {
		entry.Content = *in.Content
	}
	if in.Tags != nil {
		entry.Tags = NormalizeTags(*in.Tags)
	}
	entry.UpdatedAt = now.Unix()
}

// JournalSearch filters entries by a case-insensitive substring over
// title and content and by tags that must all be present.
type JournalSearch struct {
	Query string
	Tags  []string
	Limit int
}
