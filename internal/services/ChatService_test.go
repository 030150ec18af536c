package services

import (
	"context"
	"errors"
	"mindcare/internal/analytics"
	"mindcare/internal/models"
	"mindcare/internal/providers"
	"mindcare/internal/storage"
	"mindcare/internal/testutil"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingContext records Build calls.
type countingContext struct {
	calls   int
	summary models.ContextSummary
}

func (c *countingContext) Build(_ context.Context, _ string) models.ContextSummary {
	c.calls++
	return c.summary
}

type chatFixture struct {
	svc     *ChatService
	db      *storage.Database
	llm     *testutil.MockLLM
	events  *testutil.MockPublisher
	metrics *testutil.MockMetrics
	logger  *testutil.MockLogger
	context *countingContext
}

func newChatFixture() *chatFixture {
	f := &chatFixture{
		db:      newTestDB(),
		llm:     &testutil.MockLLM{Response: "That sounds hard. What helped last time?"},
		events:  &testutil.MockPublisher{},
		metrics: &testutil.MockMetrics{},
		logger:  &testutil.MockLogger{},
		context: &countingContext{},
	}
	f.svc = NewChatService(testConfig(), f.db.Chat, analytics.NewCrisisDetector(), f.context, f.llm, f.events, f.metrics, f.logger).(*ChatService)
	f.svc.now = fixedClock
	return f
}

func TestChat_CrisisShortCircuits(t *testing.T) {
	f := newChatFixture()

	resp, err := f.svc.Chat(context.Background(), "u1", &models.ChatInput{Message: "I feel like I can’t go on anymore"})
	require.NoError(t, err)

	assert.Equal(t, analytics.CrisisResponse, resp.Response)
	assert.Zero(t, f.llm.Calls())
	assert.Zero(t, f.context.calls)
	assert.Equal(t, 1, f.metrics.Crises())

	history, err := f.db.Chat.Recent(context.Background(), "u1", 10)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.True(t, history[0].IsUser)
	assert.Equal(t, "I feel like I can’t go on anymore", history[0].Message)
	assert.False(t, history[1].IsUser)
	assert.Equal(t, analytics.CrisisResponse, history[1].Message)

	published := f.events.Published()
	require.Len(t, published, 1)
	assert.Equal(t, providers.EventCrisisDetected, published[0].Type)
	assert.Equal(t, "u1", published[0].UserID)
}

func TestChat_CrisisSurvivesPublishFailure(t *testing.T) {
	f := newChatFixture()
	f.events.Err = errors.New("broker down")

	resp, err := f.svc.Chat(context.Background(), "u1", &models.ChatInput{Message: "there is no way out"})
	require.NoError(t, err)
	assert.Equal(t, analytics.CrisisResponse, resp.Response)
	assert.Equal(t, 2, f.logger.Count("warn"), "crisis notice and publish failure")
}

func TestChat_NormalPath(t *testing.T) {
	f := newChatFixture()
	f.context.summary = models.ContextSummary{Medications: []models.ActiveMedication{{Name: "Sertraline", Dosage: "50mg", Frequency: "daily"}}}
	ctx := context.Background()

	_, err := f.db.Chat.Append(ctx, "u1", "hello", true, testNow.Add(-time.Minute))
	require.NoError(t, err)
	_, err = f.db.Chat.Append(ctx, "u1", "Hi, how are you?", false, testNow.Add(-time.Minute))
	require.NoError(t, err)

	resp, err := f.svc.Chat(ctx, "u1", &models.ChatInput{Message: "I had a rough day at work"})
	require.NoError(t, err)
	assert.Equal(t, f.llm.Response, resp.Response)

	require.Equal(t, 1, f.llm.Calls())
	assert.Equal(t, 1, f.context.calls)
	prompt := f.llm.Prompts[0]
	assert.True(t, strings.HasPrefix(prompt, "User Context:\n"))
	assert.Contains(t, prompt, "  * Sertraline (50mg, daily)")
	assert.Contains(t, prompt, "User: hello\nAssistant: Hi, how are you?")
	assert.True(t, strings.HasSuffix(prompt, "User message: I had a rough day at work"))
	assert.Equal(t, 1, strings.Count(prompt, "I had a rough day at work"))

	history, err := f.svc.History(ctx, "u1", 20)
	require.NoError(t, err)
	require.Len(t, history, 4)
	assert.Equal(t, f.llm.Response, history[3].Message)
	assert.Zero(t, f.metrics.Crises())
}

func TestChat_LLMFailurePropagates(t *testing.T) {
	f := newChatFixture()
	f.llm.Err = &models.CollaboratorError{Collaborator: "llm", Err: errors.New("503")}

	_, err := f.svc.Chat(context.Background(), "u1", &models.ChatInput{Message: "hello"})
	var ce *models.CollaboratorError
	require.ErrorAs(t, err, &ce)

	history, err := f.db.Chat.Recent(context.Background(), "u1", 10)
	require.NoError(t, err)
	require.Len(t, history, 1, "only the user message is recorded")
	assert.True(t, history[0].IsUser)
}

func TestChat_Validation(t *testing.T) {
	f := newChatFixture()
	var ve *models.ValidationError

	_, err := f.svc.Chat(context.Background(), "u1", &models.ChatInput{})
	assert.ErrorAs(t, err, &ve)

	for _, limit := range []int{0, 101} {
		_, err = f.svc.History(context.Background(), "u1", limit)
		assert.ErrorAs(t, err, &ve, "limit %d", limit)
	}
	assert.Zero(t, f.llm.Calls())
}
