package domain

import "errors"

var (
	// ErrSessionExpired signals that the remote tool server rejected the session.
	ErrSessionExpired = errors.New("invalid session")

	// ErrNoToolsDiscovered signals that a discovery strategy yielded no tools.
	ErrNoToolsDiscovered = errors.New("no tools discovered")

	// ErrEmptyCompletion signals that the LLM produced no text.
	ErrEmptyCompletion = errors.New("empty completion")

	// ErrLLMUnavailable signals a transient LLM provider failure (rate limit or 5xx).
	ErrLLMUnavailable = errors.New("llm unavailable")
)

// ValidationErr reports invalid caller input, surfaced as a 400 by the REST API.
type ValidationErr struct {
	message string
}

// NewValidationErr creates a new ValidationErr with the given message.
func NewValidationErr(message string) *ValidationErr {
	return &ValidationErr{message: message}
}

func (e *ValidationErr) Error() string {
	return e.message
}
