package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"log"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/cleitonmarx/symbiont-mcp-bridge/internal/domain"
	"github.com/cleitonmarx/symbiont-mcp-bridge/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var toolExecutionFields = []string{
	"id",
	"turn_id",
	"tool_name",
	"arguments",
	"content",
	"is_error",
	"simulated",
	"duration_ms",
	"executed_at",
}

// ToolExecutionRepository is the Postgres journal of executed tool directives.
type ToolExecutionRepository struct {
	sb squirrel.StatementBuilderType
}

// NewToolExecutionRepository creates a new ToolExecutionRepository.
func NewToolExecutionRepository(br squirrel.BaseRunner) ToolExecutionRepository {
	return ToolExecutionRepository{
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(br),
	}
}

// CreateToolExecution stores a single execution.
func (r ToolExecutionRepository) CreateToolExecution(ctx context.Context, execution domain.ToolExecution) error {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String(telemetry.ATTR_TOOL_NAME, execution.ToolName),
	))
	defer span.End()

	arguments := execution.Arguments
	if arguments == nil {
		arguments = map[string]any{}
	}
	argumentsJSON, err := json.Marshal(arguments)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}

	_, err = r.sb.
		Insert("tool_executions").
		Columns(toolExecutionFields...).
		Values(
			execution.ID,
			execution.TurnID,
			execution.ToolName,
			argumentsJSON,
			execution.Content,
			execution.IsError,
			execution.Simulated,
			execution.Duration.Milliseconds(),
			execution.ExecutedAt,
		).
		ExecContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

// ListToolExecutions returns the most recent executions, newest first.
func (r ToolExecutionRepository) ListToolExecutions(ctx context.Context, limit int) ([]domain.ToolExecution, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Int("limit", limit),
	))
	defer span.End()

	qry := r.sb.
		Select(toolExecutionFields...).
		From("tool_executions").
		OrderBy("executed_at DESC")
	if limit > 0 {
		qry = qry.Limit(uint64(limit))
	}

	rows, err := qry.QueryContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	executions := []domain.ToolExecution{}
	for rows.Next() {
		var (
			e             domain.ToolExecution
			argumentsJSON []byte
			durationMs    int64
		)
		if err := rows.Scan(
			&e.ID,
			&e.TurnID,
			&e.ToolName,
			&argumentsJSON,
			&e.Content,
			&e.IsError,
			&e.Simulated,
			&durationMs,
			&e.ExecutedAt,
		); telemetry.RecordErrorAndStatus(span, err) {
			return nil, err
		}
		if len(argumentsJSON) > 0 {
			if err := json.Unmarshal(argumentsJSON, &e.Arguments); telemetry.RecordErrorAndStatus(span, err) {
				return nil, err
			}
		}
		e.Duration = time.Duration(durationMs) * time.Millisecond
		executions = append(executions, e)
	}
	if err := rows.Err(); telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	return executions, nil
}

var _ domain.ToolExecutionRepository = ToolExecutionRepository{}

// InitToolExecutionRepository is a Symbiont initializer for ToolExecutionRepository.
// The repository is only registered when InitDB opened a database.
type InitToolExecutionRepository struct {
	Logger *log.Logger `resolve:""`
}

// Initialize registers the ToolExecutionRepository in the dependency container.
func (r InitToolExecutionRepository) Initialize(ctx context.Context) (context.Context, error) {
	db, err := depend.Resolve[*sql.DB]()
	if err != nil {
		r.Logger.Print("InitToolExecutionRepository: no database configured, tool execution journal disabled")
		return ctx, nil
	}
	depend.Register[domain.ToolExecutionRepository](NewToolExecutionRepository(db))
	return ctx, nil
}
