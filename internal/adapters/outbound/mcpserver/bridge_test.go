package mcpserver

import (
	"context"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont-mcp-bridge/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newConnectedBridge(t *testing.T, f *fakeToolServer, timeouts Timeouts) *Bridge {
	b := NewBridge(f.server.Client(), testLogger(), f.endpoint(), "", Transport_SSE, timeouts)
	require.NoError(t, b.Reconnect(context.Background()))
	t.Cleanup(b.Close)
	return b
}

func TestBridge_Invoke_Session(t *testing.T) {
	tests := map[string]struct {
		onCall      func(n int, name string, args map[string]any) (int, string)
		wantContent string
		wantError   bool
	}{
		"content-array": {
			onCall: func(int, string, map[string]any) (int, string) {
				return http.StatusOK, `{"result":{"content":[{"type":"text","text":"pod-a"},{"type":"image","data":"x"},{"type":"text","text":"pod-b"}]}}`
			},
			wantContent: "pod-a\npod-b",
		},
		"content-array-flagged-error": {
			onCall: func(int, string, map[string]any) (int, string) {
				return http.StatusOK, `{"result":{"isError":true,"content":[{"type":"text","text":"pods is forbidden"}]}}`
			},
			wantContent: "pods is forbidden",
			wantError:   true,
		},
		"plain-string": {
			onCall: func(int, string, map[string]any) (int, string) {
				return http.StatusOK, `{"result":"3 pods running"}`
			},
			wantContent: "3 pods running",
		},
		"scalar": {
			onCall: func(int, string, map[string]any) (int, string) {
				return http.StatusOK, `{"result":42}`
			},
			wantContent: "42",
		},
		"no-extractable-content": {
			onCall: func(int, string, map[string]any) (int, string) {
				return http.StatusOK, `{"result":{"content":[]}}`
			},
			wantContent: "Tool pods_list executed successfully",
		},
		"null-result": {
			onCall: func(int, string, map[string]any) (int, string) {
				return http.StatusOK, `{"result":null}`
			},
			wantContent: "Tool pods_list executed successfully",
		},
		"error-payload": {
			onCall: func(int, string, map[string]any) (int, string) {
				return http.StatusOK, `{"error":{"code":-32602,"message":"namespace not found"}}`
			},
			wantContent: "Error: namespace not found",
			wantError:   true,
		},
		"error-payload-without-message": {
			onCall: func(int, string, map[string]any) (int, string) {
				return http.StatusOK, `{"error":{"code":-32000}}`
			},
			wantContent: "Error: Unknown error",
			wantError:   true,
		},
		"http-500": {
			onCall: func(int, string, map[string]any) (int, string) {
				return http.StatusInternalServerError, `oops`
			},
			wantContent: "HTTP error calling pods_list: 500 Internal Server Error",
			wantError:   true,
		},
		"malformed-json": {
			onCall: func(int, string, map[string]any) (int, string) {
				return http.StatusOK, `{"result":`
			},
			wantContent: "Invalid response format from server",
			wantError:   true,
		},
		"missing-result": {
			onCall: func(int, string, map[string]any) (int, string) {
				return http.StatusOK, `{"jsonrpc":"2.0","id":2}`
			},
			wantContent: "No result returned from tool call",
			wantError:   true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			f := newFakeToolServer(t)
			f.onCall = tt.onCall
			b := newConnectedBridge(t, f, testTimeouts())

			got := b.Invoke(context.Background(), "pods_list", map[string]any{"namespace": "default"})

			assert.Equal(t, "pods_list", got.ToolName)
			assert.Equal(t, map[string]any{"namespace": "default"}, got.Arguments)
			assert.Equal(t, tt.wantContent, got.Content)
			assert.Equal(t, tt.wantError, got.IsError)
			assert.False(t, got.Simulated)
			assert.Equal(t, 1, f.callCount())
		})
	}
}

func TestBridge_Invoke_Timeout(t *testing.T) {
	f := newFakeToolServer(t)
	release := make(chan struct{})
	defer close(release)
	f.onCall = func(int, string, map[string]any) (int, string) {
		select {
		case <-release:
		case <-time.After(2 * time.Second):
		}
		return http.StatusOK, `{"result":"late"}`
	}

	timeouts := testTimeouts()
	timeouts.Call = 50 * time.Millisecond
	b := newConnectedBridge(t, f, timeouts)

	got := b.Invoke(context.Background(), "pods_list", nil)

	assert.True(t, got.IsError)
	assert.Contains(t, got.Content, "HTTP error calling pods_list")
	assert.Equal(t, map[string]any{}, got.Arguments)
}

func TestBridge_Invoke_SessionExpiry(t *testing.T) {
	invalidSession := `{"jsonrpc":"2.0","id":2,"error":{"code":-32600,"message":"Invalid session ID"}}`

	tests := map[string]struct {
		onCall       func(n int, name string, args map[string]any) (int, string)
		wantContent  string
		wantError    bool
		wantSessions int
		wantCalls    int
	}{
		"expires-once-then-succeeds": {
			onCall: func(n int, name string, _ map[string]any) (int, string) {
				if n == 1 {
					return http.StatusOK, invalidSession
				}
				return http.StatusOK, `{"result":{"content":[{"type":"text","text":"fresh session"}]}}`
			},
			wantContent:  "fresh session",
			wantSessions: 2,
			wantCalls:    2,
		},
		"expires-twice": {
			onCall: func(int, string, map[string]any) (int, string) {
				return http.StatusOK, invalidSession
			},
			wantContent:  "Session expired. Please refresh the page and try again.",
			wantError:    true,
			wantSessions: 2,
			wantCalls:    2,
		},
		"http-error-body-signals-expiry": {
			onCall: func(n int, _ string, _ map[string]any) (int, string) {
				if n == 1 {
					return http.StatusNotFound, `{"message":"Invalid session"}`
				}
				return http.StatusOK, `{"result":"recovered"}`
			},
			wantContent:  "recovered",
			wantSessions: 2,
			wantCalls:    2,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			f := newFakeToolServer(t)
			f.onCall = tt.onCall
			b := newConnectedBridge(t, f, testTimeouts())
			require.Equal(t, 1, f.sessionCount())

			got := b.Invoke(context.Background(), "pods_list", map[string]any{})

			assert.Equal(t, tt.wantContent, got.Content)
			assert.Equal(t, tt.wantError, got.IsError)
			assert.Equal(t, tt.wantSessions, f.sessionCount())
			assert.Equal(t, tt.wantCalls, f.callCount())
		})
	}
}

func TestBridge_Invoke_ExpiryAfterSessionAlreadyRenewed(t *testing.T) {
	f := newFakeToolServer(t)
	f.onCall = func(n int, _ string, _ map[string]any) (int, string) {
		if n == 1 {
			return http.StatusOK, `{"jsonrpc":"2.0","id":2,"error":{"code":-32600,"message":"Invalid session ID"}}`
		}
		return http.StatusOK, `{"result":{"content":[{"type":"text","text":"renewed session"}]}}`
	}
	b := newConnectedBridge(t, f, testTimeouts())

	stale := b.snapshot().session
	require.NoError(t, b.Reconnect(context.Background()))
	require.Equal(t, 2, f.sessionCount())
	require.NotEqual(t, stale.SessionURL, b.snapshot().session.SessionURL)

	got := b.invokeOverSession(context.Background(), stale, "pods_list", map[string]any{})

	assert.False(t, got.IsError)
	assert.Equal(t, "renewed session", got.Content)
	assert.Equal(t, 2, f.sessionCount(), "retry must reuse the renewed session")
	assert.Equal(t, 2, f.callCount())
}

func TestBridge_Invoke_ExpiryWhenReconnectLosesSession(t *testing.T) {
	f := newFakeToolServer(t)
	f.onCall = func(int, string, map[string]any) (int, string) {
		return http.StatusOK, `{"error":{"message":"Invalid session"}}`
	}
	b := newConnectedBridge(t, f, testTimeouts())
	f.handshake = func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusServiceUnavailable)
	}

	got := b.Invoke(context.Background(), "pods_list", nil)

	assert.True(t, got.IsError)
	assert.Equal(t, "Session expired. Please refresh the page and try again.", got.Content)
	assert.Equal(t, 1, f.callCount())
	assert.Equal(t, Strategy_Fallback, b.Strategy())
}

func TestBridge_Invoke_Simulation(t *testing.T) {
	f := newFakeToolServer(t)
	f.handshake = func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}
	b := newConnectedBridge(t, f, testTimeouts())

	assert.True(t, b.Connected())
	assert.Equal(t, Strategy_Fallback, b.Strategy())
	assert.Equal(t, 14, b.Catalog(context.Background()).Len())

	got := b.Invoke(context.Background(), "pods_list_in_namespace", map[string]any{"namespace": "test-ns"})

	assert.True(t, got.Simulated)
	assert.False(t, got.IsError)
	assert.Contains(t, got.Content, "[simulated] Pods in namespace 'test-ns'")
	assert.Equal(t, 0, f.callCount())
}

func TestBridge_NotConnected(t *testing.T) {
	b := NewBridge(http.DefaultClient, testLogger(), "http://127.0.0.1:0/sse", "", Transport_SSE, testTimeouts())

	assert.False(t, b.Connected())
	assert.Equal(t, 0, b.Catalog(context.Background()).Len())

	got := b.Invoke(context.Background(), "namespaces_list", nil)
	assert.True(t, got.Simulated)
}

func TestBridge_Reconnect_CanceledContext(t *testing.T) {
	f := newFakeToolServer(t)
	b := NewBridge(f.server.Client(), testLogger(), f.endpoint(), "", Transport_SSE, testTimeouts())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, b.Reconnect(ctx), context.Canceled)
}

func TestBridge_ConcurrentInvokeAndReconnect(t *testing.T) {
	f := newFakeToolServer(t)
	b := newConnectedBridge(t, f, testTimeouts())

	var wg sync.WaitGroup
	results := make([]domain.ToolResult, 20)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%5 == 0 {
				assert.NoError(t, b.Reconnect(context.Background()))
			}
			results[i] = b.Invoke(context.Background(), "pods_list", nil)
		}(i)
	}
	wg.Wait()

	for _, r := range results {
		assert.False(t, r.IsError)
		assert.Equal(t, "pods_list ok", r.Content)
	}
	assert.Equal(t, 20, f.callCount())
	assert.True(t, b.Catalog(context.Background()).Len() > 0)
}

func TestPrepareArguments(t *testing.T) {
	tests := map[string]struct {
		name string
		args map[string]any
		want map[string]any
	}{
		"nil-arguments": {
			name: "pods_list",
			args: nil,
			want: map[string]any{},
		},
		"resource-yaml-newlines-expanded": {
			name: "resources_create_or_update",
			args: map[string]any{"yaml": `apiVersion: v1\nkind: ConfigMap`},
			want: map[string]any{"yaml": "apiVersion: v1\nkind: ConfigMap"},
		},
		"non-resource-tool-untouched": {
			name: "pods_exec",
			args: map[string]any{"yaml": `a\nb`},
			want: map[string]any{"yaml": `a\nb`},
		},
		"non-string-yaml-untouched": {
			name: "resources_create_or_update",
			args: map[string]any{"yaml": 12},
			want: map[string]any{"yaml": 12},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, prepareArguments(tt.name, tt.args))
		})
	}
}
