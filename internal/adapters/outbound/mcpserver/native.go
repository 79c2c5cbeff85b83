package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/cleitonmarx/symbiont-mcp-bridge/internal/domain"
	"github.com/cleitonmarx/symbiont-mcp-bridge/internal/telemetry"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	CLIENT_NAME    = "mcpbridge"
	CLIENT_VERSION = "v1.0.0"
)

// nativeConn is a tool session held by the MCP SDK client.
// The connection context outlives discovery and is cancelled on close.
type nativeConn struct {
	session *mcp.ClientSession
	cancel  context.CancelFunc
}

func (c *nativeConn) close() {
	if c == nil {
		return
	}
	c.session.Close() //nolint:errcheck
	c.cancel()
}

// bearerTransport adds the configured authorization header to every SDK request.
type bearerTransport struct {
	base   http.RoundTripper
	header string
}

func (t bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("Authorization", t.header)
	return t.base.RoundTrip(req)
}

func (d Discoverer) sdkHTTPClient(session domain.Session) *http.Client {
	header := session.AuthorizationHeader()
	if header == "" {
		return d.client
	}
	base := d.client.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	c := *d.client
	c.Transport = bearerTransport{base: base, header: header}
	return &c
}

// discoverNative connects through the MCP SDK and lists the advertised tools.
func (d Discoverer) discoverNative(ctx context.Context, session domain.Session) (*nativeConn, []domain.Tool, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	conn, err := d.connectNative(spanCtx, session)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, nil, err
	}

	listCtx, cancel := context.WithTimeout(spanCtx, d.timeouts.List)
	defer cancel()

	res, err := conn.session.ListTools(listCtx, &mcp.ListToolsParams{})
	if err != nil {
		conn.close()
		err = fmt.Errorf("list tools: %w", err)
		telemetry.RecordErrorAndStatus(span, err)
		return nil, nil, err
	}

	wire := make([]wireTool, 0, len(res.Tools))
	for _, t := range res.Tools {
		wire = append(wire, wireTool{
			Name:        t.Name,
			Description: t.Description,
			InputSchema: schemaToMap(t.InputSchema),
		})
	}

	tools := toDomainTools(wire, sessionToolDescription)
	if len(tools) == 0 {
		conn.close()
		telemetry.RecordErrorAndStatus(span, domain.ErrNoToolsDiscovered)
		return nil, nil, domain.ErrNoToolsDiscovered
	}
	return conn, tools, nil
}

// connectNative runs the SDK handshake bounded by the handshake timeout.
// The SDK binds the stream to the context given to Connect, so the connection gets its own context.
func (d Discoverer) connectNative(ctx context.Context, session domain.Session) (*nativeConn, error) {
	httpClient := d.sdkHTTPClient(session)

	var transport mcp.Transport
	switch d.transport {
	case Transport_Streamable:
		transport = &mcp.StreamableClientTransport{Endpoint: session.BaseEndpoint, HTTPClient: httpClient}
	default:
		transport = &mcp.SSEClientTransport{Endpoint: session.BaseEndpoint, HTTPClient: httpClient}
	}

	client := mcp.NewClient(&mcp.Implementation{Name: CLIENT_NAME, Version: CLIENT_VERSION}, nil)

	connCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	type connectResult struct {
		session *mcp.ClientSession
		err     error
	}
	done := make(chan connectResult, 1)
	go func() {
		cs, err := client.Connect(connCtx, transport, nil)
		done <- connectResult{session: cs, err: err}
	}()

	timeout, stop := context.WithTimeout(ctx, d.timeouts.Handshake)
	defer stop()

	select {
	case r := <-done:
		if r.err != nil {
			cancel()
			return nil, fmt.Errorf("connect: %w", r.err)
		}
		return &nativeConn{session: r.session, cancel: cancel}, nil
	case <-timeout.Done():
		cancel()
		return nil, fmt.Errorf("connect: %w", timeout.Err())
	}
}

// callNative invokes a tool through the SDK session.
func callNative(ctx context.Context, conn *nativeConn, name string, arguments map[string]any) domain.ToolResult {
	res, err := conn.session.CallTool(ctx, &mcp.CallToolParams{Name: name, Arguments: arguments})
	if err != nil {
		return domain.NewToolErrorResult(name, arguments, "Failed to call tool %s: %v", name, err)
	}

	texts := make([]string, 0, len(res.Content))
	for _, c := range res.Content {
		if tc, ok := c.(*mcp.TextContent); ok {
			texts = append(texts, tc.Text)
		}
	}

	content := strings.Join(texts, "\n")
	if content == "" {
		content = successMessage(name)
	}
	return domain.ToolResult{
		ToolName:  name,
		Arguments: arguments,
		Content:   content,
		IsError:   res.IsError,
	}
}

// schemaToMap converts whatever schema representation the SDK exposes into a generic object.
func schemaToMap(schema any) map[string]any {
	if schema == nil {
		return nil
	}
	if m, ok := schema.(map[string]any); ok {
		return m
	}
	b, err := json.Marshal(schema)
	if err != nil {
		return nil
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil
	}
	return m
}
