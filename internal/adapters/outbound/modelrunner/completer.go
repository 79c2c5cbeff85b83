package modelrunner

import (
	"context"
	"errors"
	"strings"

	"github.com/cleitonmarx/symbiont-mcp-bridge/internal/domain"
	"github.com/cleitonmarx/symbiont-mcp-bridge/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
)

// Completer adapts APIClient to domain.LLMCompleter.
// Safety settings have no OpenAI-compatible equivalent and are ignored.
type Completer struct {
	client APIClient
	model  string
}

// NewCompleter creates a new adapter
func NewCompleter(client APIClient, model string) Completer {
	return Completer{client: client, model: model}
}

// Complete implements domain.LLMCompleter.Complete
func (c Completer) Complete(ctx context.Context, prompt string, opts domain.CompletionOptions) (string, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	resp, err := c.client.Chat(spanCtx, ChatRequest{
		Model:       c.model,
		Messages:    []ChatMessage{{Role: "user", Content: prompt}},
		Temperature: opts.Temperature,
		TopP:        opts.TopP,
		TopK:        opts.TopK,
		MaxTokens:   opts.MaxTokens,
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return "", err
	}

	if resp.Usage != nil {
		span.SetAttributes(
			attribute.Int("llm.usage.prompt_tokens", resp.Usage.PromptTokens),
			attribute.Int("llm.usage.completion_tokens", resp.Usage.CompletionTokens),
		)
	}

	if len(resp.Choices) == 0 {
		err := errors.New("no choices in response")
		telemetry.RecordErrorAndStatus(span, err)
		return "", err
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		telemetry.RecordErrorAndStatus(span, domain.ErrEmptyCompletion)
		return "", domain.ErrEmptyCompletion
	}
	return content, nil
}
