package llm

import (
	"context"
	"errors"

	"github.com/cleitonmarx/symbiont-mcp-bridge/internal/domain"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	meter          = otel.Meter("llm")
	LLMCompletions metric.Int64Counter
)

func init() {
	var err error
	LLMCompletions, err = meter.Int64Counter(
		"llm_completions_total",
		metric.WithDescription("Total LLM completions by provider and outcome"),
	)
	if err != nil {
		panic(err)
	}
}

// MeteredCompleter counts completions by outcome.
type MeteredCompleter struct {
	next     domain.LLMCompleter
	provider Provider
}

// NewMeteredCompleter wraps a completer with the llm_completions_total counter.
func NewMeteredCompleter(next domain.LLMCompleter, provider Provider) MeteredCompleter {
	return MeteredCompleter{next: next, provider: provider}
}

// Complete implements domain.LLMCompleter.Complete
func (m MeteredCompleter) Complete(ctx context.Context, prompt string, opts domain.CompletionOptions) (string, error) {
	text, err := m.next.Complete(ctx, prompt, opts)
	LLMCompletions.Add(ctx, 1, metric.WithAttributes(
		attribute.String("provider", string(m.provider)),
		attribute.String("outcome", completionOutcome(err)),
	))
	return text, err
}

func completionOutcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, domain.ErrEmptyCompletion):
		return "empty"
	case errors.Is(err, domain.ErrLLMUnavailable):
		return "unavailable"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	default:
		return "error"
	}
}
