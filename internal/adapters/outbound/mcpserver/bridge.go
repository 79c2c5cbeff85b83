package mcpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/cleitonmarx/symbiont-mcp-bridge/internal/domain"
	"github.com/cleitonmarx/symbiont-mcp-bridge/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/singleflight"
)

const (
	invalidSessionMarker  = "Invalid session"
	sessionExpiredMessage = "Session expired. Please refresh the page and try again."
	reconnectKey          = "reconnect"
)

// connection is an immutable snapshot of the bridge's view of the tool server.
type connection struct {
	session   domain.Session
	catalog   domain.ToolCatalog
	native    *nativeConn
	strategy  Strategy
	connected bool
}

// Bridge is the long-lived connection to the remote tool server.
// Concurrent turns share it; reconnects swap in a new snapshot atomically.
type Bridge struct {
	discoverer Discoverer
	client     *http.Client
	logger     *log.Logger
	endpoint   string
	authToken  string
	timeouts   Timeouts

	mu    sync.RWMutex
	state connection
	group singleflight.Group
}

// NewBridge creates a Bridge. Call Reconnect to run the initial discovery.
func NewBridge(client *http.Client, logger *log.Logger, endpoint, authToken string, transport Transport, timeouts Timeouts) *Bridge {
	return &Bridge{
		discoverer: NewDiscoverer(client, logger, transport, timeouts),
		client:     client,
		logger:     logger,
		endpoint:   endpoint,
		authToken:  authToken,
		timeouts:   timeouts,
		state:      connection{session: domain.NewSession(endpoint, authToken)},
	}
}

func (b *Bridge) snapshot() connection {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.state
}

// Catalog returns the current tool catalog.
func (b *Bridge) Catalog(_ context.Context) domain.ToolCatalog {
	return b.snapshot().catalog
}

// Connected reports whether discovery has completed at least once.
func (b *Bridge) Connected() bool {
	return b.snapshot().connected
}

// Strategy returns the discovery strategy behind the current catalog.
func (b *Bridge) Strategy() Strategy {
	return b.snapshot().strategy
}

// Reconnect re-runs discovery and swaps in the new session and catalog.
// Concurrent callers share a single discovery run.
func (b *Bridge) Reconnect(ctx context.Context) error {
	ch := b.group.DoChan(reconnectKey, func() (any, error) {
		discoverCtx := context.WithoutCancel(ctx)
		d := b.discoverer.Discover(discoverCtx, b.endpoint, b.authToken)
		b.swap(d)
		RecordReconnect(discoverCtx, d.Strategy)
		return d.Strategy, nil
	})

	select {
	case <-ctx.Done():
		return ctx.Err()
	case r := <-ch:
		return r.Err
	}
}

func (b *Bridge) swap(d Discovery) {
	next := connection{
		session:   d.Session,
		catalog:   domain.NewToolCatalog(d.Tools),
		native:    d.native,
		strategy:  d.Strategy,
		connected: true,
	}

	b.mu.Lock()
	previous := b.state
	b.state = next
	b.mu.Unlock()

	if previous.native != nil && previous.native != next.native {
		previous.native.close()
	}
}

// Close releases the SDK session, if any.
func (b *Bridge) Close() {
	b.mu.Lock()
	native := b.state.native
	b.state.native = nil
	b.mu.Unlock()
	native.close()
}

// Invoke executes a tool over the current connection snapshot.
// It never returns an error: every failure is an error-flagged ToolResult.
func (b *Bridge) Invoke(ctx context.Context, name string, arguments map[string]any) domain.ToolResult {
	spanCtx, span := telemetry.Start(ctx, telemetry.ToolAttributes(name, arguments))
	defer span.End()

	started := time.Now()
	arguments = prepareArguments(name, arguments)
	snap := b.snapshot()

	var (
		result domain.ToolResult
		path   domain.ToolInvocationPath
	)
	switch {
	case snap.session.HasSessionURL():
		path = domain.ToolInvocationPath_Session
		result = b.invokeOverSession(spanCtx, snap.session, name, arguments)
	case snap.native != nil:
		path = domain.ToolInvocationPath_Native
		callCtx, cancel := context.WithTimeout(spanCtx, b.timeouts.Call)
		result = callNative(callCtx, snap.native, name, arguments)
		cancel()
	default:
		path = domain.ToolInvocationPath_Simulation
		result = Simulate(name, arguments)
	}

	span.SetAttributes(attribute.String(telemetry.ATTR_INVOCATION_PATH, string(path)))
	if result.IsError {
		telemetry.RecordErrorAndStatus(span, errors.New(result.Content))
	} else {
		telemetry.RecordErrorAndStatus(span, nil)
	}
	RecordToolInvocation(spanCtx, result, path, time.Since(started))
	return result
}

// invokeOverSession calls the tool and, on session expiry, retries once on a fresh session.
// When another turn already replaced the stale session the retry reuses it; otherwise the
// bridge reconnects first.
func (b *Bridge) invokeOverSession(ctx context.Context, session domain.Session, name string, arguments map[string]any) domain.ToolResult {
	result, err := b.postToolCall(ctx, session, name, arguments)
	if !errors.Is(err, domain.ErrSessionExpired) {
		return result
	}

	renewed := b.snapshot().session
	if renewed.HasSessionURL() && renewed.SessionURL != session.SessionURL {
		b.logger.Printf("Bridge: session expired calling %s, retrying on renewed session", name)
	} else {
		b.logger.Printf("Bridge: session expired calling %s, reconnecting", name)
		if err := b.Reconnect(ctx); err != nil {
			return domain.NewToolErrorResult(name, arguments, sessionExpiredMessage)
		}
		renewed = b.snapshot().session
	}

	if !renewed.HasSessionURL() {
		b.logger.Printf("Bridge: reconnect did not establish a session for %s", name)
		return domain.NewToolErrorResult(name, arguments, sessionExpiredMessage)
	}

	result, err = b.postToolCall(ctx, renewed, name, arguments)
	if errors.Is(err, domain.ErrSessionExpired) {
		b.logger.Printf("Bridge: failed to re-establish session for %s", name)
		return domain.NewToolErrorResult(name, arguments, sessionExpiredMessage)
	}
	return result
}

// postToolCall sends one tools/call request. The only error it returns is domain.ErrSessionExpired;
// every other failure is reported as an error-flagged result.
func (b *Bridge) postToolCall(ctx context.Context, session domain.Session, name string, arguments map[string]any) (domain.ToolResult, error) {
	ctx, cancel := context.WithTimeout(telemetry.WithoutRetries(ctx), b.timeouts.Call)
	defer cancel()

	body, err := json.Marshal(newRPCRequest(2, "tools/call", map[string]any{
		"name":      name,
		"arguments": arguments,
	}))
	if err != nil {
		return domain.NewToolErrorResult(name, arguments, "Failed to call tool %s: %v", name, err), nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, session.SessionURL, bytes.NewReader(body))
	if err != nil {
		return domain.NewToolErrorResult(name, arguments, "Failed to call tool %s: %v", name, err), nil
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	setAuthorization(req, session)

	resp, err := b.client.Do(req)
	if err != nil {
		return domain.NewToolErrorResult(name, arguments, "HTTP error calling %s: %v", name, err), nil
	}
	defer resp.Body.Close() //nolint:errcheck

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.NewToolErrorResult(name, arguments, "HTTP error calling %s: %v", name, err), nil
	}

	if resp.StatusCode >= http.StatusBadRequest {
		if strings.Contains(string(payload), invalidSessionMarker) {
			return domain.ToolResult{}, domain.ErrSessionExpired
		}
		return domain.NewToolErrorResult(name, arguments, "HTTP error calling %s: %s", name, resp.Status), nil
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(payload, &envelope); err != nil {
		return domain.NewToolErrorResult(name, arguments, "Invalid response format from server"), nil
	}

	if rpcErr, ok := envelope["error"]; ok && !isJSONNull(rpcErr) {
		if strings.Contains(string(rpcErr), invalidSessionMarker) {
			return domain.ToolResult{}, domain.ErrSessionExpired
		}
		msg := errorMessage(rpcErr)
		b.logger.Printf("Bridge: tool %s returned error: %s", name, msg)
		return domain.NewToolErrorResult(name, arguments, "Error: %s", msg), nil
	}

	raw, ok := envelope["result"]
	if !ok {
		return domain.NewToolErrorResult(name, arguments, "No result returned from tool call"), nil
	}

	content, isError := flattenResult(name, raw)
	return domain.ToolResult{
		ToolName:  name,
		Arguments: arguments,
		Content:   content,
		IsError:   isError,
	}, nil
}

func isJSONNull(raw json.RawMessage) bool {
	return len(raw) == 0 || string(bytes.TrimSpace(raw)) == "null"
}

// prepareArguments guarantees a non-nil argument map and expands escaped newlines
// in the definitions passed to the generic resource tools.
func prepareArguments(name string, arguments map[string]any) map[string]any {
	if arguments == nil {
		return map[string]any{}
	}
	if !strings.HasPrefix(name, "resources_") {
		return arguments
	}
	definition, ok := arguments["yaml"].(string)
	if !ok || !strings.Contains(definition, `\n`) {
		return arguments
	}

	prepared := make(map[string]any, len(arguments))
	for k, v := range arguments {
		prepared[k] = v
	}
	prepared["yaml"] = strings.ReplaceAll(definition, `\n`, "\n")
	return prepared
}

var _ domain.ToolServer = (*Bridge)(nil)
