package domain

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ToolResult is the flattened outcome of a tool invocation.
type ToolResult struct {
	ToolName  string
	Arguments map[string]any
	Content   string
	IsError   bool
	// Simulated is set when the result was produced by the offline simulation.
	Simulated bool
}

// NewToolErrorResult creates an error-flagged result with a human-readable message.
func NewToolErrorResult(name string, arguments map[string]any, format string, args ...any) ToolResult {
	msg := fmt.Sprintf(format, args...)
	if msg == "" {
		msg = fmt.Sprintf("Failed to call tool %s", name)
	}
	return ToolResult{
		ToolName:  name,
		Arguments: arguments,
		Content:   msg,
		IsError:   true,
	}
}

// ToolInvocationPath identifies how a ToolResult was obtained.
type ToolInvocationPath string

const (
	ToolInvocationPath_Session    ToolInvocationPath = "session"
	ToolInvocationPath_Native     ToolInvocationPath = "native"
	ToolInvocationPath_Simulation ToolInvocationPath = "simulation"
)

// ToolExecution is an audit record of a directive executed during a conversation turn.
type ToolExecution struct {
	ID         uuid.UUID
	TurnID     uuid.UUID
	ToolName   string
	Arguments  map[string]any
	Content    string
	IsError    bool
	Simulated  bool
	Duration   time.Duration
	ExecutedAt time.Time
}

// NewToolExecution builds the audit record for a result.
func NewToolExecution(turnID uuid.UUID, result ToolResult, startedAt time.Time, duration time.Duration) ToolExecution {
	return ToolExecution{
		ID:         uuid.New(),
		TurnID:     turnID,
		ToolName:   result.ToolName,
		Arguments:  result.Arguments,
		Content:    result.Content,
		IsError:    result.IsError,
		Simulated:  result.Simulated,
		Duration:   duration,
		ExecutedAt: startedAt,
	}
}

// ToolExecutionRecorder records executed directives. Implementations are best-effort.
type ToolExecutionRecorder interface {
	RecordToolExecution(ctx context.Context, execution ToolExecution)
}

// ToolExecutionRepository persists tool executions.
type ToolExecutionRepository interface {
	// CreateToolExecution stores a single execution.
	CreateToolExecution(ctx context.Context, execution ToolExecution) error

	// ListToolExecutions returns the most recent executions, newest first.
	ListToolExecutions(ctx context.Context, limit int) ([]ToolExecution, error)
}

// ToolEventPublisher publishes tool execution events to a message broker.
type ToolEventPublisher interface {
	PublishToolExecuted(ctx context.Context, execution ToolExecution) error
}
