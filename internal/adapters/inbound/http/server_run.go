package http

import (
	"context"
	_ "embed"
	"fmt"
	"log"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/cleitonmarx/symbiont-mcp-bridge/internal/domain"
	"github.com/cleitonmarx/symbiont-mcp-bridge/internal/telemetry"
	"github.com/cleitonmarx/symbiont-mcp-bridge/internal/usecases"
	"github.com/rs/cors"
)

//go:embed webui/index.html
var indexHTML []byte

// BridgeServer is the chat UI, WebSocket and REST API HTTP server of the MCP bridge.
type BridgeServer struct {
	Host                      string                      `config:"HOST" default:"0.0.0.0"`
	Port                      int                         `config:"PORT" default:"8000"`
	CORSOrigins               string                      `config:"CORS_ORIGINS" default:"http://localhost:3000,http://localhost:8000"`
	Logger                    *log.Logger                 `resolve:""`
	ChatUseCase               usecases.Chat               `resolve:""`
	ListToolsUseCase          usecases.ListTools          `resolve:""`
	ListToolExecutionsUseCase usecases.ListToolExecutions `resolve:""`
	ToolServer                domain.ToolServer           `resolve:""`
	TimeProvider              domain.CurrentTimeProvider  `resolve:""`
}

// Handler builds the routed, instrumented and CORS-wrapped handler.
func (api BridgeServer) Handler() http.Handler {
	mux := http.NewServeMux()

	handle := func(pattern string, h http.HandlerFunc) {
		mux.Handle(pattern, telemetry.Middleware("mcpbridge-api")(h))
	}

	handle("GET /{$}", api.Index)
	handle("GET /ws", api.WebSocketChat)
	handle("POST /api/chat", api.PostChat)
	handle("GET /api/tools", api.ListTools)
	handle("GET /api/tool-executions", api.ListToolExecutions)
	handle("GET /api/health", api.Health)

	// Register introspection endpoint for debugging and testing purposes
	mux.HandleFunc("GET /introspect", api.Introspect)

	return cors.New(cors.Options{
		AllowedOrigins:   api.allowedOrigins(),
		AllowCredentials: true,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions, http.MethodHead},
		AllowedHeaders:   []string{"*"},
	}).Handler(mux)
}

// Run starts the HTTP server for the BridgeServer.
func (api BridgeServer) Run(ctx context.Context) error {
	s := &http.Server{
		Handler:           api.Handler(),
		Addr:              net.JoinHostPort(api.Host, strconv.Itoa(api.Port)),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		api.Logger.Printf("BridgeServer: Listening on %s", s.Addr)
		errCh <- s.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := s.Shutdown(shutdownCtx)
		if err != nil {
			api.Logger.Printf("BridgeServer: error during shutdown: %v", err)
		} else {
			api.Logger.Println("BridgeServer: stopped")
		}
		return err
	case err := <-errCh:
		return err
	}
}

// IsReady checks if the BridgeServer is ready by calling the health endpoint.
func (api BridgeServer) IsReady(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("http://127.0.0.1:%d/api/health", api.Port), nil)
	if err != nil {
		return err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return nil
}

// Index serves the embedded chat page.
func (api BridgeServer) Index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(indexHTML) //nolint:errcheck
}

func (api BridgeServer) allowedOrigins() []string {
	var origins []string
	for _, origin := range strings.Split(api.CORSOrigins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}
