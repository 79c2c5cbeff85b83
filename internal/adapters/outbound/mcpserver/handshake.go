package mcpserver

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cleitonmarx/symbiont-mcp-bridge/internal/domain"
	"github.com/cleitonmarx/symbiont-mcp-bridge/internal/telemetry"
)

const (
	// MAX_HANDSHAKE_LINES bounds how many stream lines are read while waiting for the session path.
	MAX_HANDSHAKE_LINES = 20

	sessionPathPrefix = "/message?sessionId="
	sseDataPrefix     = "data: "

	sessionToolDescription = "OpenShift tool: %s"
)

// rpcRequest is a JSON-RPC 2.0 request envelope.
type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      int    `json:"id"`
	Method  string `json:"method"`
	Params  any    `json:"params"`
}

func newRPCRequest(id int, method string, params any) rpcRequest {
	return rpcRequest{JSONRPC: "2.0", ID: id, Method: method, Params: params}
}

// discoverSession runs the session handshake and lists tools over the resolved session URL.
// The event stream stays open until tools/list returns; servers drop the session once it closes.
func (d Discoverer) discoverSession(ctx context.Context, session domain.Session) ([]domain.Tool, string, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	stream, err := d.handshake(spanCtx, session)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, "", err
	}
	defer stream.Close()

	tools, err := d.listSessionTools(spanCtx, session.WithSessionURL(stream.sessionURL))
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, "", err
	}
	return tools, stream.sessionURL, nil
}

// eventStream is an open handshake stream bound to an announced session.
type eventStream struct {
	sessionURL string
	body       io.ReadCloser
	cancel     context.CancelFunc
}

// Close ends the stream and its request.
func (s *eventStream) Close() {
	s.body.Close() //nolint:errcheck
	s.cancel()
}

// handshake opens the event stream and waits for the session path announcement.
// The handshake timeout bounds only the wait for the announcement; the returned
// stream remains open until closed by the caller.
func (d Discoverer) handshake(ctx context.Context, session domain.Session) (*eventStream, error) {
	streamCtx, cancel := context.WithCancel(ctx)
	timer := time.AfterFunc(d.timeouts.Handshake, cancel)

	fail := func(err error) (*eventStream, error) {
		timer.Stop()
		cancel()
		return nil, err
	}

	req, err := http.NewRequestWithContext(streamCtx, http.MethodGet, session.BaseEndpoint, nil)
	if err != nil {
		return fail(fmt.Errorf("create handshake request: %w", err))
	}
	req.Header.Set("Accept", "text/event-stream")
	setAuthorization(req, session)

	resp, err := d.client.Do(req)
	if err != nil {
		return fail(fmt.Errorf("open event stream: %w", err))
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close() //nolint:errcheck
		return fail(fmt.Errorf("event stream returned %s", resp.Status))
	}

	path, err := scanSessionPath(resp.Body, MAX_HANDSHAKE_LINES)
	if !timer.Stop() && err == nil {
		err = fmt.Errorf("no session path within %s", d.timeouts.Handshake)
	}
	if err != nil {
		resp.Body.Close() //nolint:errcheck
		return fail(err)
	}

	return &eventStream{
		sessionURL: resolveSessionURL(session.BaseEndpoint, path),
		body:       resp.Body,
		cancel:     cancel,
	}, nil
}

// scanSessionPath reads at most maxLines lines looking for a session path,
// either as an SSE data payload or as a bare line.
func scanSessionPath(r io.Reader, maxLines int) (string, error) {
	scanner := bufio.NewScanner(r)
	lines := 0
	for scanner.Scan() {
		lines++
		line := scanner.Text()
		if data, ok := strings.CutPrefix(line, sseDataPrefix); ok {
			if strings.HasPrefix(data, sessionPathPrefix) {
				return strings.TrimSpace(data), nil
			}
		} else if trimmed := strings.TrimSpace(line); strings.HasPrefix(trimmed, sessionPathPrefix) {
			return trimmed, nil
		}
		if lines >= maxLines {
			return "", fmt.Errorf("no session path within %d lines", maxLines)
		}
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("read event stream: %w", err)
	}
	return "", errors.New("event stream ended without a session path")
}

// resolveSessionURL joins the session path to the endpoint's parent path.
func resolveSessionURL(endpoint, path string) string {
	base := endpoint
	if i := strings.LastIndex(endpoint, "/"); i >= 0 {
		base = endpoint[:i]
	}
	return base + path
}

// listSessionTools issues tools/list over an established session.
func (d Discoverer) listSessionTools(ctx context.Context, session domain.Session) ([]domain.Tool, error) {
	ctx, cancel := context.WithTimeout(ctx, d.timeouts.List)
	defer cancel()

	body, err := json.Marshal(newRPCRequest(1, "tools/list", map[string]any{}))
	if err != nil {
		return nil, fmt.Errorf("marshal tools/list: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, session.SessionURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create tools/list request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	setAuthorization(req, session)

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tools/list: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		return nil, fmt.Errorf("tools/list returned %s", resp.Status)
	}

	var out struct {
		Result *struct {
			Tools []wireTool `json:"tools"`
		} `json:"result"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode tools/list response: %w", err)
	}
	if out.Result == nil {
		return nil, errors.New("tools/list response has no result")
	}

	tools := toDomainTools(out.Result.Tools, sessionToolDescription)
	if len(tools) == 0 {
		return nil, domain.ErrNoToolsDiscovered
	}
	return tools, nil
}
