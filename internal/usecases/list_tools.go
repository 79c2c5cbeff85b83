package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont-mcp-bridge/internal/domain"
	"github.com/cleitonmarx/symbiont-mcp-bridge/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

// ListTools defines the interface for the ListTools use case.
type ListTools interface {
	// Query returns the tools of the current catalog in discovery order.
	Query(ctx context.Context) []domain.Tool
}

// ListToolsImpl is the implementation of the ListTools use case.
type ListToolsImpl struct {
	toolServer domain.ToolServer
}

// NewListToolsImpl creates a new instance of ListToolsImpl.
func NewListToolsImpl(toolServer domain.ToolServer) ListToolsImpl {
	return ListToolsImpl{toolServer: toolServer}
}

// Query implements ListTools.Query
func (lt ListToolsImpl) Query(ctx context.Context) []domain.Tool {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	return lt.toolServer.Catalog(spanCtx).List()
}

// InitListTools initializes the ListTools use case.
type InitListTools struct {
	ToolServer domain.ToolServer `resolve:""`
}

// Initialize registers the ListTools use case implementation.
func (i InitListTools) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ListTools](NewListToolsImpl(i.ToolServer))
	return ctx, nil
}
