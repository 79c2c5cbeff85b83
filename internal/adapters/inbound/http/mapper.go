package http

import (
	"errors"
	"fmt"

	"github.com/cleitonmarx/symbiont-mcp-bridge/internal/domain"
)

const DEFAULT_TOOL_DESCRIPTION = "MCP tool: %s"

func toError(err error) ErrorResp {
	errResp := ErrorResp{}
	var validationErr *domain.ValidationErr
	switch {
	case errors.As(err, &validationErr):
		errResp.Error.Code = BAD_REQUEST
		errResp.Error.Message = validationErr.Error()
	default:
		errResp.Error.Code = INTERNAL_ERROR
		errResp.Error.Message = "internal server error"
	}
	return errResp
}

func badRequest(message string) ErrorResp {
	return ErrorResp{Error: Error{Code: BAD_REQUEST, Message: message}}
}

func toToolResp(t domain.Tool) ToolResp {
	description := t.Description
	if description == "" {
		description = fmt.Sprintf(DEFAULT_TOOL_DESCRIPTION, t.Name)
	}
	schema := t.InputSchema
	if schema == nil {
		schema = domain.EmptyInputSchema()
	}
	return ToolResp{
		Name:        t.Name,
		Description: description,
		Schema:      schema,
	}
}

func toToolExecutionResp(e domain.ToolExecution) ToolExecutionResp {
	arguments := e.Arguments
	if arguments == nil {
		arguments = map[string]any{}
	}
	return ToolExecutionResp{
		ID:         e.ID,
		TurnID:     e.TurnID,
		ToolName:   e.ToolName,
		Arguments:  arguments,
		Content:    e.Content,
		IsError:    e.IsError,
		Simulated:  e.Simulated,
		DurationMs: e.Duration.Milliseconds(),
		ExecutedAt: e.ExecutedAt,
	}
}
