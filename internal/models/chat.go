package models

import "time"

type ChatMessage struct {
	ID        string    `json:"message_id"`
	UserID    string    `json:"user_id"`
	Message   string    `json:"message"`
	IsUser    bool      `json:"is_user"`
	Timestamp time.Time `json:"timestamp"`
}

func (c *ChatMessage) RecordID() string { return c.ID }
func (c *ChatMessage) OwnerID() string  { return c.UserID }

type ChatInput struct {
	Message string `json:"message" validate:"required|maxLen:4000"`
}

func (in *ChatInput) Validate() error {
	return validateStruct(in).orNil()
}

type ChatResponse struct {
	Response string `json:"response"`
}

type Feedback struct {
	ID        string    `json:"feedback_id"`
	UserID    string    `json:"user_id"`
	Feedback  string    `json:"feedback"`
	Timestamp time.Time `json:"timestamp"`
}

func (f *Feedback) RecordID() string { return f.ID }
func (f *Feedback) OwnerID() string  { return f.UserID }
