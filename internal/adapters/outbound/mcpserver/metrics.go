package mcpserver

import (
	"context"
	"time"

	"github.com/cleitonmarx/symbiont-mcp-bridge/internal/domain"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	meter                  = otel.Meter("mcpserver")
	ToolInvocations        metric.Int64Counter
	ToolInvocationDuration metric.Float64Histogram
	Reconnects             metric.Int64Counter
)

func init() {
	var err error
	ToolInvocations, err = meter.Int64Counter(
		"tool_invocations_total",
		metric.WithDescription("Total tool invocations by outcome and execution path"),
	)
	if err != nil {
		panic(err)
	}

	ToolInvocationDuration, err = meter.Float64Histogram(
		"tool_invocation_duration_seconds",
		metric.WithDescription("Duration of tool invocations"),
		metric.WithUnit("s"),
	)
	if err != nil {
		panic(err)
	}

	Reconnects, err = meter.Int64Counter(
		"mcp_reconnects_total",
		metric.WithDescription("Total tool server rediscoveries by resulting strategy"),
	)
	if err != nil {
		panic(err)
	}
}

// RecordToolInvocation records the outcome and duration of a tool invocation.
func RecordToolInvocation(ctx context.Context, result domain.ToolResult, path domain.ToolInvocationPath, duration time.Duration) {
	outcome := "success"
	if result.IsError {
		outcome = "error"
	}
	attrs := metric.WithAttributes(
		attribute.String("tool", result.ToolName),
		attribute.String("outcome", outcome),
		attribute.String("path", string(path)),
	)
	ToolInvocations.Add(ctx, 1, attrs)
	ToolInvocationDuration.Record(ctx, duration.Seconds(), attrs)
}

// RecordReconnect records a completed rediscovery.
func RecordReconnect(ctx context.Context, strategy Strategy) {
	Reconnects.Add(ctx, 1, metric.WithAttributes(
		attribute.String("strategy", string(strategy)),
	))
}
