package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont-mcp-bridge/internal/domain"
	"github.com/cleitonmarx/symbiont-mcp-bridge/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

const (
	DEFAULT_TOOL_EXECUTIONS_LIMIT = 20
	MAX_TOOL_EXECUTIONS_LIMIT     = 100
)

// ListToolExecutions defines the interface for the ListToolExecutions use case.
type ListToolExecutions interface {
	// Query returns the most recent tool executions, newest first.
	Query(ctx context.Context, limit int) ([]domain.ToolExecution, error)
}

// ListToolExecutionsImpl is the implementation of the ListToolExecutions use case.
// A nil repository means the journal is disabled.
type ListToolExecutionsImpl struct {
	repo domain.ToolExecutionRepository
}

// NewListToolExecutionsImpl creates a new instance of ListToolExecutionsImpl.
func NewListToolExecutionsImpl(repo domain.ToolExecutionRepository) ListToolExecutionsImpl {
	return ListToolExecutionsImpl{repo: repo}
}

// Query implements ListToolExecutions.Query
func (lte ListToolExecutionsImpl) Query(ctx context.Context, limit int) ([]domain.ToolExecution, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if lte.repo == nil {
		return []domain.ToolExecution{}, nil
	}

	if limit <= 0 {
		limit = DEFAULT_TOOL_EXECUTIONS_LIMIT
	}
	if limit > MAX_TOOL_EXECUTIONS_LIMIT {
		return nil, domain.NewValidationErr("limit must be at most 100")
	}

	executions, err := lte.repo.ListToolExecutions(spanCtx, limit)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	return executions, nil
}

// InitListToolExecutions initializes the ListToolExecutions use case.
type InitListToolExecutions struct{}

// Initialize registers the ListToolExecutions use case implementation.
func (i InitListToolExecutions) Initialize(ctx context.Context) (context.Context, error) {
	repo, _ := depend.Resolve[domain.ToolExecutionRepository]()
	depend.Register[ListToolExecutions](NewListToolExecutionsImpl(repo))
	return ctx, nil
}
