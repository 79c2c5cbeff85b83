package app

import (
	"github.com/cleitonmarx/symbiont"
	"github.com/cleitonmarx/symbiont-mcp-bridge/internal/adapters/inbound/http"
	"github.com/cleitonmarx/symbiont-mcp-bridge/internal/adapters/inbound/workers"
	"github.com/cleitonmarx/symbiont-mcp-bridge/internal/adapters/outbound/config"
	"github.com/cleitonmarx/symbiont-mcp-bridge/internal/adapters/outbound/llm"
	"github.com/cleitonmarx/symbiont-mcp-bridge/internal/adapters/outbound/log"
	"github.com/cleitonmarx/symbiont-mcp-bridge/internal/adapters/outbound/mcpserver"
	"github.com/cleitonmarx/symbiont-mcp-bridge/internal/adapters/outbound/postgres"
	"github.com/cleitonmarx/symbiont-mcp-bridge/internal/adapters/outbound/pubsub"
	"github.com/cleitonmarx/symbiont-mcp-bridge/internal/adapters/outbound/time"
	"github.com/cleitonmarx/symbiont-mcp-bridge/internal/telemetry"
	"github.com/cleitonmarx/symbiont-mcp-bridge/internal/usecases"
)

// NewBridgeApp creates the MCP bridge application. Extra initializers run first, so callers
// can seed configuration or dependencies before the bridge components resolve them.
func NewBridgeApp(initializers ...symbiont.Initializer) *symbiont.App {
	return symbiont.NewApp().
		Initialize(initializers...).
		Initialize(Components()...).
		Host(
			&http.BridgeServer{},
			&workers.CatalogRefresher{},
		).
		Introspect(&MermaidGraphIntrospector{})
}

// Components returns the initializers shared by the server and the command line tools,
// in dependency order.
func Components() []symbiont.Initializer {
	return []symbiont.Initializer{
		&log.InitLogger{},
		&config.InitVaultProvider{},
		&telemetry.InitOpenTelemetry{},
		&telemetry.InitHttpClient{},
		&time.InitCurrentTimeProvider{},
		&postgres.InitDB{},
		&postgres.InitToolExecutionRepository{},
		&pubsub.InitClient{},
		&pubsub.InitPublisher{},
		&mcpserver.InitToolBridge{},
		&llm.InitLLMCompleter{},

		&usecases.InitToolExecutionRecorder{},
		&usecases.InitResponseEnhancer{},
		&usecases.InitChat{},
		&usecases.InitListTools{},
		&usecases.InitListToolExecutions{},
	}
}
