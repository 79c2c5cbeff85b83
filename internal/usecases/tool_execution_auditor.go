package usecases

import (
	"context"
	"log"
	"time"

	"github.com/cleitonmarx/symbiont-mcp-bridge/internal/domain"
	"github.com/cleitonmarx/symbiont-mcp-bridge/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// AUDIT_TIMEOUT bounds a single journal write or event publication.
const AUDIT_TIMEOUT = 5 * time.Second

// ToolExecutionAuditor records tool executions in the journal and publishes them as events.
// Failures are logged and never returned.
type ToolExecutionAuditor struct {
	repo      domain.ToolExecutionRepository
	publisher domain.ToolEventPublisher
	logger    *log.Logger
}

// NewToolExecutionAuditor creates a new auditor. Either sink may be nil.
func NewToolExecutionAuditor(repo domain.ToolExecutionRepository, publisher domain.ToolEventPublisher, logger *log.Logger) ToolExecutionAuditor {
	return ToolExecutionAuditor{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
	}
}

// RecordToolExecution implements domain.ToolExecutionRecorder.RecordToolExecution
func (a ToolExecutionAuditor) RecordToolExecution(ctx context.Context, execution domain.ToolExecution) {
	if a.repo == nil && a.publisher == nil {
		return
	}

	spanCtx, span := telemetry.Start(context.WithoutCancel(ctx), trace.WithAttributes(
		attribute.String(telemetry.ATTR_TOOL_NAME, execution.ToolName),
		attribute.String("execution.id", execution.ID.String()),
	))
	defer span.End()

	auditCtx, cancel := context.WithTimeout(spanCtx, AUDIT_TIMEOUT)
	defer cancel()

	if a.repo != nil {
		err := a.repo.CreateToolExecution(auditCtx, execution)
		if telemetry.RecordErrorAndStatus(span, err) {
			a.logger.Printf("ToolExecutionAuditor: failed to store execution of %s: %v", execution.ToolName, err)
		}
	}

	if a.publisher != nil {
		err := a.publisher.PublishToolExecuted(auditCtx, execution)
		if telemetry.RecordErrorAndStatus(span, err) {
			a.logger.Printf("ToolExecutionAuditor: failed to publish execution of %s: %v", execution.ToolName, err)
		}
	}
}

var _ domain.ToolExecutionRecorder = ToolExecutionAuditor{}

// InitToolExecutionRecorder registers the auditor with whichever sinks are configured.
type InitToolExecutionRecorder struct {
	Logger *log.Logger `resolve:""`
}

// Initialize registers the ToolExecutionRecorder implementation.
func (i InitToolExecutionRecorder) Initialize(ctx context.Context) (context.Context, error) {
	repo, _ := depend.Resolve[domain.ToolExecutionRepository]()
	publisher, _ := depend.Resolve[domain.ToolEventPublisher]()
	depend.Register[domain.ToolExecutionRecorder](NewToolExecutionAuditor(repo, publisher, i.Logger))
	return ctx, nil
}
