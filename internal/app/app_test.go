package app

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont-mcp-bridge/internal/adapters/outbound/modelrunner"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBridgeApp_Initializers(t *testing.T) {
	app := NewBridgeApp()
	require.NotNil(t, app, "NewBridgeApp should not return nil")
	assert.NotEmpty(t, Components())
}

type namespaceArgs struct {
	Namespace string `json:"namespace"`
}

func newClusterToolServer(t *testing.T) *httptest.Server {
	server := mcp.NewServer(&mcp.Implementation{Name: "cluster-tools", Version: "v0.0.1"}, nil)
	mcp.AddTool(server, &mcp.Tool{Name: "pods_list_in_namespace", Description: "List pods in a specific namespace"},
		func(_ context.Context, _ *mcp.CallToolRequest, args namespaceArgs) (*mcp.CallToolResult, any, error) {
			return &mcp.CallToolResult{
				Content: []mcp.Content{&mcp.TextContent{Text: "pod-a (Running) in " + args.Namespace}},
			}, nil, nil
		})

	ts := httptest.NewServer(mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server { return server }, nil))
	t.Cleanup(ts.Close)
	return ts
}

// scriptedLLM answers OpenAI-compatible chat completions based on which prompt it receives.
type scriptedLLM struct {
	mu      sync.Mutex
	prompts []string
}

func (s *scriptedLLM) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req modelrunner.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.Messages) == 0 {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	prompt := req.Messages[0].Content

	s.mu.Lock()
	s.prompts = append(s.prompts, prompt)
	s.mu.Unlock()

	var reply string
	switch {
	case strings.HasSuffix(prompt, "Assistant:"):
		reply = "Checking. call_tool('pods_list_in_namespace', {'namespace': 'test-ns'})"
	case strings.Contains(prompt, "Raw result from the MCP server"):
		reply = "pod-a is running."
	case strings.Contains(prompt, "Final response:"):
		reply = "There is one pod in test-ns and it is running."
	default:
		reply = "unexpected prompt"
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(modelrunner.ChatResponse{ //nolint:errcheck
		ID:      "cmpl-1",
		Choices: []modelrunner.Choice{{Message: modelrunner.Message{Role: "assistant", Content: reply}}},
	})
}

func (s *scriptedLLM) sawPromptContaining(text string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.prompts {
		if strings.Contains(p, text) {
			return true
		}
	}
	return false
}

func freePort(t *testing.T) int {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close() //nolint:errcheck
	return l.Addr().(*net.TCPAddr).Port
}

func TestNewBridgeApp_ChatTurn(t *testing.T) {
	toolServer := newClusterToolServer(t)
	llm := &scriptedLLM{}
	llmServer := httptest.NewServer(llm)
	t.Cleanup(llmServer.Close)

	port := freePort(t)
	t.Setenv("HOST", "127.0.0.1")
	t.Setenv("PORT", strconv.Itoa(port))
	t.Setenv("LOG_OUTPUT", "discard")
	t.Setenv("MCP_ENDPOINT", toolServer.URL)
	t.Setenv("MCP_TRANSPORT", "streamable")
	t.Setenv("LLM_PROVIDER", "openai")
	t.Setenv("LLM_MODEL_HOST", llmServer.URL)
	t.Setenv("LLM_MODEL", "test-model")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	bridgeApp := NewBridgeApp()
	shutdownCh := bridgeApp.RunAsync(ctx)
	require.NoError(t, bridgeApp.WaitForReadiness(ctx, 30*time.Second))

	baseURL := fmt.Sprintf("http://127.0.0.1:%d", port)

	t.Run("health", func(t *testing.T) {
		resp, err := http.Get(baseURL + "/api/health")
		require.NoError(t, err)
		defer resp.Body.Close() //nolint:errcheck

		var health map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&health))
		assert.Equal(t, "healthy", health["status"])
		assert.Equal(t, true, health["agent_initialized"])
	})

	t.Run("tools", func(t *testing.T) {
		resp, err := http.Get(baseURL + "/api/tools")
		require.NoError(t, err)
		defer resp.Body.Close() //nolint:errcheck

		var tools []map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&tools))
		require.Len(t, tools, 1)
		assert.Equal(t, "pods_list_in_namespace", tools[0]["name"])
	})

	t.Run("chat", func(t *testing.T) {
		body, _ := json.Marshal(map[string]string{"message": "list pods in namespace test-ns"})
		resp, err := http.Post(baseURL+"/api/chat", "application/json", bytes.NewReader(body))
		require.NoError(t, err)
		defer resp.Body.Close() //nolint:errcheck
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var chat map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&chat))
		assert.Equal(t, "There is one pod in test-ns and it is running.", chat["response"])
		assert.True(t, llm.sawPromptContaining("pod-a (Running) in test-ns"))
	})

	cancel()
	select {
	case err := <-shutdownCh:
		assert.NoError(t, err)
	case <-time.After(30 * time.Second):
		t.Fatal("bridge did not shut down in time")
	}
}
