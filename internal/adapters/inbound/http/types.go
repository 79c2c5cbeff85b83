package http

import (
	"time"

	"github.com/google/uuid"
)

// ErrorCode classifies an API error.
type ErrorCode string

const (
	BAD_REQUEST    ErrorCode = "BAD_REQUEST"
	NOT_FOUND      ErrorCode = "NOT_FOUND"
	INTERNAL_ERROR ErrorCode = "INTERNAL_ERROR"
)

// Error is the body of an API error.
type Error struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// ErrorResp wraps an Error.
type ErrorResp struct {
	Error Error `json:"error"`
}

// ChatRequest is the body of POST /api/chat.
type ChatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id,omitempty"`
}

// ChatResponse is the reply of POST /api/chat.
type ChatResponse struct {
	Response string `json:"response"`
}

// ToolResp describes a discovered tool.
type ToolResp struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Schema      map[string]any `json:"schema"`
}

// ToolExecutionResp is a journal entry.
type ToolExecutionResp struct {
	ID         uuid.UUID      `json:"id"`
	TurnID     uuid.UUID      `json:"turn_id"`
	ToolName   string         `json:"tool_name"`
	Arguments  map[string]any `json:"arguments"`
	Content    string         `json:"content"`
	IsError    bool           `json:"is_error"`
	Simulated  bool           `json:"simulated"`
	DurationMs int64          `json:"duration_ms"`
	ExecutedAt time.Time      `json:"executed_at"`
}

// ListToolExecutionsParams are the query parameters of GET /api/tool-executions.
type ListToolExecutionsParams struct {
	Limit *int `form:"limit,omitempty" json:"limit,omitempty"`
}

// HealthResp is the reply of GET /api/health.
type HealthResp struct {
	Status           string `json:"status"`
	AgentInitialized bool   `json:"agent_initialized"`
	Timestamp        string `json:"timestamp"`
}

// Frame types of the WebSocket chat protocol.
const (
	FRAME_MESSAGE       = "message"
	FRAME_MESSAGE_START = "message_start"
	FRAME_MESSAGE_CHUNK = "message_chunk"
	FRAME_MESSAGE_END   = "message_end"
	FRAME_ERROR         = "error"
)

// WSFrame is a WebSocket chat frame in either direction.
type WSFrame struct {
	Type    string  `json:"type"`
	Content *string `json:"content,omitempty"`
}
