package pubsub

import (
	"context"
	"encoding/json"
	"log"
	"time"

	pubsubV2 "cloud.google.com/go/pubsub/v2"
	"github.com/cleitonmarx/symbiont-mcp-bridge/internal/domain"
	"github.com/cleitonmarx/symbiont-mcp-bridge/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const TOOL_EXECUTED_EVENT = "TOOL_EXECUTED"

// toolExecutedEvent is the message payload of a tool execution event.
type toolExecutedEvent struct {
	ID         string         `json:"id"`
	TurnID     string         `json:"turn_id"`
	ToolName   string         `json:"tool_name"`
	Arguments  map[string]any `json:"arguments"`
	IsError    bool           `json:"is_error"`
	Simulated  bool           `json:"simulated"`
	DurationMs int64          `json:"duration_ms"`
	ExecutedAt time.Time      `json:"executed_at"`
}

// ToolEventPublisher implements domain.ToolEventPublisher using Google Cloud Pub/Sub.
type ToolEventPublisher struct {
	Client *pubsubV2.Client
	Topic  string
}

// NewToolEventPublisher creates a new instance of ToolEventPublisher.
func NewToolEventPublisher(client *pubsubV2.Client, topic string) ToolEventPublisher {
	return ToolEventPublisher{Client: client, Topic: topic}
}

// PublishToolExecuted publishes the execution to the configured topic.
// The tool output is left out of the event; consumers read it from the journal.
func (p ToolEventPublisher) PublishToolExecuted(ctx context.Context, execution domain.ToolExecution) error {
	spanCtx, span := telemetry.Start(ctx,
		trace.WithAttributes(
			attribute.String("execution_id", execution.ID.String()),
			attribute.String(telemetry.ATTR_TOOL_NAME, execution.ToolName),
			attribute.String("topic", p.Topic),
		),
	)
	defer span.End()

	payload, err := json.Marshal(toolExecutedEvent{
		ID:         execution.ID.String(),
		TurnID:     execution.TurnID.String(),
		ToolName:   execution.ToolName,
		Arguments:  execution.Arguments,
		IsError:    execution.IsError,
		Simulated:  execution.Simulated,
		DurationMs: execution.Duration.Milliseconds(),
		ExecutedAt: execution.ExecutedAt,
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}

	result := p.Client.Publisher(p.Topic).Publish(spanCtx, &pubsubV2.Message{
		Data: payload,
		Attributes: map[string]string{
			"event_type": TOOL_EXECUTED_EVENT,
			"tool_name":  execution.ToolName,
			"turn_id":    execution.TurnID.String(),
		},
	})

	_, err = result.Get(spanCtx)
	telemetry.RecordErrorAndStatus(span, err)
	return err
}

var _ domain.ToolEventPublisher = ToolEventPublisher{}

// InitPublisher initializes the ToolEventPublisher implementation.
type InitPublisher struct {
	Logger *log.Logger `resolve:""`
	Topic  string      `config:"PUBSUB_TOOL_EVENTS_TOPIC" default:"tool-executions"`
}

// Initialize registers the ToolEventPublisher when a Pub/Sub client is available.
func (i *InitPublisher) Initialize(ctx context.Context) (context.Context, error) {
	client, err := depend.Resolve[*pubsubV2.Client]()
	if err != nil {
		i.Logger.Println("InitPublisher: no pubsub client, tool execution events disabled")
		return ctx, nil
	}
	depend.Register[domain.ToolEventPublisher](NewToolEventPublisher(client, i.Topic))
	return ctx, nil
}
