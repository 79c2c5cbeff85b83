package mcpserver

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/cleitonmarx/symbiont-mcp-bridge/internal/domain"
	"github.com/cleitonmarx/symbiont-mcp-bridge/internal/telemetry"
)

// Strategy identifies which discovery attempt produced the catalog.
type Strategy string

const (
	Strategy_Session   Strategy = "session"
	Strategy_Native    Strategy = "native"
	Strategy_HTTPProbe Strategy = "http_probe"
	Strategy_Fallback  Strategy = "fallback"
)

// Transport selects how the session handshake is performed.
type Transport string

const (
	// Transport_SSE runs the handshake with plain HTTP requests.
	Transport_SSE Transport = "sse"
	// Transport_Native delegates the SSE handshake to the MCP SDK client.
	Transport_Native Transport = "native"
	// Transport_Streamable uses the MCP SDK streamable HTTP transport.
	Transport_Streamable Transport = "streamable"
)

// ParseTransport validates a transport name.
func ParseTransport(s string) (Transport, error) {
	switch t := Transport(s); t {
	case Transport_SSE, Transport_Native, Transport_Streamable:
		return t, nil
	}
	return "", fmt.Errorf("unsupported MCP transport %q", s)
}

// Timeouts bounds every network operation performed against the tool server.
type Timeouts struct {
	Probe     time.Duration
	List      time.Duration
	Handshake time.Duration
	Call      time.Duration
}

// DefaultTimeouts returns the timeouts used when none are configured.
func DefaultTimeouts() Timeouts {
	return Timeouts{
		Probe:     5 * time.Second,
		List:      10 * time.Second,
		Handshake: 30 * time.Second,
		Call:      30 * time.Second,
	}
}

// Discovery is the outcome of a discovery run. It always carries at least one tool.
type Discovery struct {
	Tools    []domain.Tool
	Session  domain.Session
	Strategy Strategy
	native   *nativeConn
}

// Discoverer runs the layered discovery strategies against a tool server.
type Discoverer struct {
	client    *http.Client
	logger    *log.Logger
	transport Transport
	timeouts  Timeouts
}

// NewDiscoverer creates a Discoverer.
func NewDiscoverer(client *http.Client, logger *log.Logger, transport Transport, timeouts Timeouts) Discoverer {
	return Discoverer{
		client:    client,
		logger:    logger,
		transport: transport,
		timeouts:  timeouts,
	}
}

// Discover establishes a session with the tool server and lists its tools.
// It never fails: when every network strategy is exhausted the fallback table is returned.
func (d Discoverer) Discover(ctx context.Context, endpoint, authToken string) Discovery {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	session := domain.NewSession(endpoint, authToken)

	if d.transport == Transport_SSE {
		tools, sessionURL, err := d.discoverSession(spanCtx, session)
		if err == nil {
			d.logger.Printf("ToolDiscovery: loaded %d tools over session %s", len(tools), sessionURL)
			return Discovery{Tools: tools, Session: session.WithSessionURL(sessionURL), Strategy: Strategy_Session}
		}
		d.logger.Printf("ToolDiscovery: session handshake failed: %v", err)
	} else {
		conn, tools, err := d.discoverNative(spanCtx, session)
		if err == nil {
			d.logger.Printf("ToolDiscovery: loaded %d tools over %s MCP session", len(tools), d.transport)
			return Discovery{Tools: tools, Session: session, Strategy: Strategy_Native, native: conn}
		}
		d.logger.Printf("ToolDiscovery: %s MCP session failed: %v", d.transport, err)
	}

	tools, err := d.probeHTTP(spanCtx, session)
	if err == nil {
		d.logger.Printf("ToolDiscovery: discovered %d tools via HTTP API", len(tools))
		return Discovery{Tools: tools, Session: session, Strategy: Strategy_HTTPProbe}
	}
	d.logger.Printf("ToolDiscovery: HTTP discovery failed: %v", err)

	telemetry.RecordErrorAndStatus(span, errors.New("tool server unreachable, using fallback tools"))
	d.logger.Println("ToolDiscovery: using built-in Kubernetes tools")
	return Discovery{Tools: FallbackTools(), Session: session, Strategy: Strategy_Fallback}
}

// wireTool is a tool descriptor as advertised by the tool server.
type wireTool struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"inputSchema"`
	Schema      map[string]any `json:"schema"`
}

// toDomainTools maps advertised descriptors, skipping unnamed ones and filling defaults.
func toDomainTools(wire []wireTool, defaultDescription string) []domain.Tool {
	tools := make([]domain.Tool, 0, len(wire))
	for _, w := range wire {
		if w.Name == "" {
			continue
		}
		description := w.Description
		if description == "" {
			description = fmt.Sprintf(defaultDescription, w.Name)
		}
		schema := w.InputSchema
		if schema == nil {
			schema = w.Schema
		}
		tools = append(tools, domain.NewTool(w.Name, description, schema))
	}
	return tools
}

func setAuthorization(req *http.Request, session domain.Session) {
	if h := session.AuthorizationHeader(); h != "" {
		req.Header.Set("Authorization", h)
	}
}
