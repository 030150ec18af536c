package services

import (
	"context"
	"fmt"
	"mindcare/internal/analytics"
	"mindcare/internal/models"
	"mindcare/internal/providers"
	"mindcare/internal/structures"
	"strings"
	"time"
)

const (
	DefaultHistoryLimit = 20
	MaxHistoryLimit     = 100
)

type ChatServiceInterface interface {
	Chat(ctx context.Context, owner string, in *models.ChatInput) (*models.ChatResponse, error)
	History(ctx context.Context, owner string, limit int) ([]*models.ChatMessage, error)
}

type ChatService struct {
	transcript   ChatTranscript
	detector     *analytics.CrisisDetector
	context      ContextBuilderInterface
	llm          providers.LLMProviderInterface
	events       providers.EventPublisherInterface
	metrics      providers.MetricsProviderInterface
	logger       providers.Logger
	historyLimit int
	now          func() time.Time
}

func NewChatService(
	conf *structures.Config,
	transcript ChatTranscript,
	detector *analytics.CrisisDetector,
	contextBuilder ContextBuilderInterface,
	llm providers.LLMProviderInterface,
	events providers.EventPublisherInterface,
	metrics providers.MetricsProviderInterface,
	logger providers.Logger,
) ChatServiceInterface {
	limit := conf.Analytics.ChatHistoryLimit
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &ChatService{
		transcript:   transcript,
		detector:     detector,
		context:      contextBuilder,
		llm:          llm,
		events:       events,
		metrics:      metrics,
		logger:       logger,
		historyLimit: limit,
		now:          time.Now,
	}
}

// Chat answers one user message. Crisis messages get the static resources
// text without consulting the context builder or the LLM.
func (s *ChatService) Chat(ctx context.Context, owner string, in *models.ChatInput) (*models.ChatResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	if s.detector.IsCrisis(in.Message) {
		return s.crisis(ctx, owner, in.Message)
	}

	userMsg, err := s.transcript.Append(ctx, owner, in.Message, true, s.now())
	if err != nil {
		return nil, fmt.Errorf("append user message: %w", err)
	}

	history, err := s.transcript.Recent(ctx, owner, s.historyLimit)
	if err != nil {
		s.logger.Warnf(providers.TypeChat, "Chat history for %s unavailable: %s", owner, err)
		history = nil
	}

	summary := s.context.Build(ctx, owner)
	reply, err := s.llm.Complete(ctx, buildChatPrompt(summary, history, userMsg))
	if err != nil {
		s.logger.Errorf(providers.TypeChat, "LLM completion for %s failed: %s", owner, err)
		return nil, err
	}

	if _, err := s.transcript.Append(ctx, owner, reply, false, s.now()); err != nil {
		return nil, fmt.Errorf("append assistant message: %w", err)
	}
	return &models.ChatResponse{Response: reply}, nil
}

func (s *ChatService) crisis(ctx context.Context, owner, message string) (*models.ChatResponse, error) {
	s.metrics.IncCrisisDetected()
	s.logger.Warnf(providers.TypeChat, "Crisis language detected for user %s", owner)

	now := s.now()
	if _, err := s.transcript.Append(ctx, owner, message, true, now); err != nil {
		return nil, fmt.Errorf("append user message: %w", err)
	}
	if _, err := s.transcript.Append(ctx, owner, analytics.CrisisResponse, false, now); err != nil {
		return nil, fmt.Errorf("append crisis response: %w", err)
	}

	event := providers.Event{Type: providers.EventCrisisDetected, UserID: owner, OccurredAt: now.UTC()}
	if err := s.events.Publish(ctx, event); err != nil {
		s.logger.Warnf(providers.TypeChat, "Failed to publish %s for %s: %s", event.Type, owner, err)
	}
	return &models.ChatResponse{Response: analytics.CrisisResponse}, nil
}

func (s *ChatService) History(ctx context.Context, owner string, limit int) ([]*models.ChatMessage, error) {
	if limit < 1 || limit > MaxHistoryLimit {
		return nil, models.NewValidationError("limit", "limit must be between 1 and 100")
	}
	return s.transcript.Recent(ctx, owner, limit)
}

// buildChatPrompt renders context, prior turns and the current message.
// The current message is excluded from the prior turns.
func buildChatPrompt(summary models.ContextSummary, history []*models.ChatMessage, current *models.ChatMessage) string {
	var b strings.Builder
	b.WriteString(summary.Render())

	var turns []string
	for _, m := range history {
		if m.ID == current.ID {
			continue
		}
		speaker := "Assistant"
		if m.IsUser {
			speaker = "User"
		}
		turns = append(turns, speaker+": "+m.Message)
	}
	if len(turns) > 0 {
		b.WriteString("\nConversation so far:\n")
		b.WriteString(strings.Join(turns, "\n"))
		b.WriteString("\n")
	}

	b.WriteString("\nUser message: ")
	b.WriteString(current.Message)
	return b.String()
}
