package usecases

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// TurnOutcome classifies how a conversation turn ended.
type TurnOutcome string

const (
	TurnOutcome_Answered      TurnOutcome = "answered"
	TurnOutcome_ToolsExecuted TurnOutcome = "tools_executed"
	TurnOutcome_LLMError      TurnOutcome = "llm_error"
	TurnOutcome_EmptyReply    TurnOutcome = "empty_reply"
	TurnOutcome_Cancelled     TurnOutcome = "cancelled"
)

// DirectiveOutcome classifies how a single directive was resolved.
type DirectiveOutcome string

const (
	DirectiveOutcome_Executed   DirectiveOutcome = "executed"
	DirectiveOutcome_ToolError  DirectiveOutcome = "tool_error"
	DirectiveOutcome_ParseError DirectiveOutcome = "parse_error"
	DirectiveOutcome_Cancelled  DirectiveOutcome = "cancelled"
)

var (
	meter      = otel.Meter("usecases")
	ChatTurns  metric.Int64Counter
	Directives metric.Int64Counter
)

func init() {
	var err error
	ChatTurns, err = meter.Int64Counter(
		"chat_turns_total",
		metric.WithDescription("Total conversation turns by outcome"),
	)
	if err != nil {
		panic(err)
	}

	Directives, err = meter.Int64Counter(
		"tool_directives_total",
		metric.WithDescription("Total tool-call directives found in LLM replies by outcome"),
	)
	if err != nil {
		panic(err)
	}
}

// RecordChatTurn records the outcome of a conversation turn.
func RecordChatTurn(ctx context.Context, outcome TurnOutcome) {
	ChatTurns.Add(ctx, 1, metric.WithAttributes(
		attribute.String("outcome", string(outcome)),
	))
}

// RecordDirective records the outcome of a tool-call directive.
func RecordDirective(ctx context.Context, outcome DirectiveOutcome) {
	Directives.Add(ctx, 1, metric.WithAttributes(
		attribute.String("outcome", string(outcome)),
	))
}
