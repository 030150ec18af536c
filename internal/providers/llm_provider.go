package providers

import (
	"context"
	"errors"
	"fmt"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/responses"
	"mindcare/internal/models"
	"mindcare/internal/structures"
	"net/http"
	"strings"
	"time"
)

// assistantInstructions frames every completion.
const assistantInstructions = "You are a supportive mental health assistant. Your goal is to provide " +
	"empathetic, helpful responses to users who may be dealing with mental health challenges. " +
	"Always be supportive, non-judgmental, and encouraging. Never provide medical advice or diagnoses, " +
	"and always suggest professional help for serious concerns."

type LLMProviderInterface interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

type OpenAIProvider struct {
	client  openai.Client
	conf    structures.LLMConfig
	logger  Logger
	metrics MetricsProviderInterface
	backoff []time.Duration
}

func NewLLMProvider(conf *structures.Config, logger Logger, metrics MetricsProviderInterface) LLMProviderInterface {
	if !conf.LLM.Enabled {
		logger.Infof(TypeApp, "LLM disabled")
		return &disabledLLM{}
	}

	opts := []option.RequestOption{
		option.WithAPIKey(conf.LLM.APIKey),
		option.WithMaxRetries(0),
		option.WithHTTPClient(&http.Client{Timeout: conf.LLM.Timeout}),
	}
	if conf.LLM.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(conf.LLM.BaseURL))
	}

	logger.Infof(TypeApp, "LLM initialized: model=%s", conf.LLM.Model)
	return &OpenAIProvider{
		client:  openai.NewClient(opts...),
		conf:    conf.LLM,
		logger:  logger,
		metrics: metrics,
		backoff: []time.Duration{time.Second, 5 * time.Second, 15 * time.Second},
	}
}

// Complete sends one prompt through the Responses API. Rate limits and server
// errors are retried up to the configured number of times.
func (p *OpenAIProvider) Complete(ctx context.Context, prompt string) (string, error) {
	params := responses.ResponseNewParams{
		Model:           p.conf.Model,
		Instructions:    openai.String(assistantInstructions),
		MaxOutputTokens: openai.Int(p.conf.MaxOutputTokens),
		Input: responses.ResponseNewParamsInputUnion{
			OfString: openai.String(prompt),
		},
	}

	start := time.Now()
	text, err := p.callWithRetry(ctx, params)
	p.metrics.ObserveLLMDuration(time.Since(start), err != nil)
	if err != nil {
		p.logger.Errorf(TypeChat, "LLM completion failed: %s", err)
		return "", &models.CollaboratorError{Collaborator: "llm", Err: err}
	}
	return text, nil
}

func (p *OpenAIProvider) callWithRetry(ctx context.Context, params responses.ResponseNewParams) (string, error) {
	attempts := max(p.conf.MaxRetries, 0) + 1
	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		resp, err := p.client.Responses.New(ctx, params)
		if err == nil {
			text := strings.TrimSpace(resp.OutputText())
			if text == "" {
				return "", errors.New("empty completion")
			}
			return text, nil
		}
		if !retryable(err) {
			return "", err
		}
		lastErr = err
		if attempt == attempts-1 {
			break
		}

		wait := p.backoff[min(attempt, len(p.backoff)-1)]
		p.logger.Warnf(TypeChat, "LLM call failed (attempt %d/%d), retrying in %s: %s", attempt+1, attempts, wait, err)
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(wait):
		}
	}
	return "", fmt.Errorf("after %d attempts: %w", attempts, lastErr)
}

func retryable(err error) bool {
	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusTooManyRequests || apiErr.StatusCode >= http.StatusInternalServerError
	}
	return false
}

type disabledLLM struct{}

func (d *disabledLLM) Complete(_ context.Context, _ string) (string, error) {
	return "", fmt.Errorf("llm: %w", models.ErrCollaboratorDisabled)
}
