package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatHistory_RecentOldestFirst(t *testing.T) {
	h := NewChatHistory()
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	for i, text := range []string{"one", "two", "three", "four"} {
		_, err := h.Append(ctx, "u1", text, i%2 == 0, base.Add(time.Duration(i)*time.Minute))
		require.NoError(t, err)
	}
	_, _ = h.Append(ctx, "u2", "not mine", true, base)

	recent, err := h.Recent(ctx, "u1", 3)

	require.NoError(t, err)
	require.Len(t, recent, 3)
	assert.Equal(t, "two", recent[0].Message)
	assert.Equal(t, "four", recent[2].Message)
	assert.False(t, recent[0].IsUser)
}

func TestChatHistory_EqualTimestampsKeepAppendOrder(t *testing.T) {
	h := NewChatHistory()
	ctx := context.Background()
	ts := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	for _, text := range []string{"question", "answer", "follow-up", "reply"} {
		_, err := h.Append(ctx, "u1", text, true, ts)
		require.NoError(t, err)
	}

	recent, _ := h.Recent(ctx, "u1", 10)
	got := make([]string, 0, len(recent))
	for _, m := range recent {
		got = append(got, m.Message)
	}
	assert.Equal(t, []string{"question", "answer", "follow-up", "reply"}, got)
}
