package mcpserver

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/cleitonmarx/symbiont-mcp-bridge/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
)

// InitToolBridge discovers the remote tool server and registers the Bridge as domain.ToolServer.
type InitToolBridge struct {
	Logger           *log.Logger   `resolve:""`
	HttpClient       *http.Client  `resolve:""`
	Endpoint         string        `config:"MCP_ENDPOINT"`
	AuthToken        string        `config:"MCP_AUTH_TOKEN" default:"-"`
	Transport        string        `config:"MCP_TRANSPORT" default:"sse"`
	ProbeTimeout     time.Duration `config:"MCP_PROBE_TIMEOUT" default:"5s"`
	ListTimeout      time.Duration `config:"MCP_LIST_TIMEOUT" default:"10s"`
	HandshakeTimeout time.Duration `config:"MCP_HANDSHAKE_TIMEOUT" default:"30s"`
	CallTimeout      time.Duration `config:"MCP_CALL_TIMEOUT" default:"30s"`
	bridge           *Bridge
}

// Initialize runs the initial discovery and registers the bridge.
func (i *InitToolBridge) Initialize(ctx context.Context) (context.Context, error) {
	if i.Endpoint == "" {
		return ctx, errors.New("MCP_ENDPOINT is required")
	}
	transport, err := ParseTransport(i.Transport)
	if err != nil {
		return ctx, err
	}

	authToken := i.AuthToken
	if authToken == "-" {
		authToken = ""
	}

	i.bridge = NewBridge(i.HttpClient, i.Logger, i.Endpoint, authToken, transport, Timeouts{
		Probe:     i.ProbeTimeout,
		List:      i.ListTimeout,
		Handshake: i.HandshakeTimeout,
		Call:      i.CallTimeout,
	})
	if err := i.bridge.Reconnect(ctx); err != nil {
		return ctx, err
	}
	i.Logger.Printf("InitToolBridge: %d tools available via %s", i.bridge.Catalog(ctx).Len(), i.bridge.Strategy())

	depend.Register[domain.ToolServer](i.bridge)
	return ctx, nil
}

// Close releases the tool server connection.
func (i *InitToolBridge) Close() {
	if i.bridge != nil {
		i.bridge.Close()
	}
}
