// Package gemini implements domain.LLMCompleter on the Gemini
// generateContent REST endpoint.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/cleitonmarx/symbiont-mcp-bridge/internal/domain"
	"github.com/cleitonmarx/symbiont-mcp-bridge/internal/telemetry"
	"google.golang.org/api/googleapi"
)

// DEFAULT_BASE_URL is the public Gemini API root.
const DEFAULT_BASE_URL = "https://generativelanguage.googleapis.com/v1beta"

// Completer calls models/{model}:generateContent with a single user turn.
type Completer struct {
	baseURL string
	apiKey  string
	model   string
	http    *http.Client
}

// NewCompleter creates a new Gemini completer.
func NewCompleter(baseURL, apiKey, model string, httpClient *http.Client) Completer {
	if baseURL == "" {
		baseURL = DEFAULT_BASE_URL
	}
	return Completer{
		baseURL: baseURL,
		apiKey:  apiKey,
		model:   strings.TrimPrefix(model, "models/"),
		http:    httpClient,
	}
}

// Complete implements domain.LLMCompleter.Complete
func (c Completer) Complete(ctx context.Context, prompt string, opts domain.CompletionOptions) (string, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	resp, err := c.generateContent(spanCtx, newGenerateContentRequest(prompt, opts))
	if telemetry.RecordErrorAndStatus(span, err) {
		return "", err
	}

	text, err := resp.text()
	if telemetry.RecordErrorAndStatus(span, err) {
		return "", err
	}
	return text, nil
}

func (c Completer) generateContent(ctx context.Context, body generateContentRequest) (*generateContentResponse, error) {
	endpoint, err := url.JoinPath(c.baseURL, "models", c.model+":generateContent")
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http do: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if err := googleapi.CheckResponse(resp); err != nil {
		var apiErr *googleapi.Error
		if errors.As(err, &apiErr) && (apiErr.Code == http.StatusTooManyRequests || apiErr.Code >= http.StatusInternalServerError) {
			return nil, fmt.Errorf("generate content: %w: %w", domain.ErrLLMUnavailable, err)
		}
		return nil, fmt.Errorf("generate content: %w", err)
	}

	var out generateContentResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}
	return &out, nil
}
