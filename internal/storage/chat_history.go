package storage

import (
	"context"
	"github.com/google/uuid"
	"mindcare/internal/models"
	"sort"
	"time"
)

// ChatHistory is the per-user chat transcript.
type ChatHistory struct {
	messages *Table[models.ChatMessage, *models.ChatMessage]
}

func NewChatHistory() *ChatHistory {
	return &ChatHistory{messages: NewTable[models.ChatMessage]("chat message")}
}

func (h *ChatHistory) Append(ctx context.Context, owner, text string, isUser bool, ts time.Time) (*models.ChatMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	msg := &models.ChatMessage{
		ID:        uuid.Must(uuid.NewV7()).String(),
		UserID:    owner,
		Message:   text,
		IsUser:    isUser,
		Timestamp: ts.UTC(),
	}
	h.messages.Put(msg)
	return msg, nil
}

// Recent returns the last limit messages of owner, oldest first. Message ids
// are time ordered, so equal timestamps keep append order.
func (h *ChatHistory) Recent(ctx context.Context, owner string, limit int) ([]*models.ChatMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rows := h.messages.QueryByOwner(owner)
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Timestamp.Before(rows[j].Timestamp) })
	if limit > 0 && len(rows) > limit {
		rows = rows[len(rows)-limit:]
	}
	return rows, nil
}

func (h *ChatHistory) Len() int {
	return h.messages.Len()
}

func (h *ChatHistory) All() []models.ChatMessage {
	return h.messages.All()
}

func (h *ChatHistory) Replace(rows []models.ChatMessage) {
	h.messages.Replace(rows)
}
