package mcpserver

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"
)

// fakeToolServer speaks the SSE session dialect: GET /sse announces a session path,
// POST /message answers tools/list and tools/call.
type fakeToolServer struct {
	t        *testing.T
	server   *httptest.Server
	mu       sync.Mutex
	sessions int
	calls    []string

	// handshake overrides the GET /sse handler.
	handshake http.HandlerFunc
	// tools is the result.tools payload of tools/list.
	tools string
	// onCall produces the status and body for the n-th tools/call (1-based).
	onCall func(n int, name string, args map[string]any) (int, string)
	// probes maps sibling listing paths to their JSON bodies.
	probes map[string]string
	// streamBound keeps each session alive only while its event stream is open.
	streamBound bool
	open        map[string]bool
}

func newFakeToolServer(t *testing.T) *fakeToolServer {
	f := &fakeToolServer{
		t:     t,
		tools: `[{"name":"pods_list","description":"List pods","inputSchema":{"type":"object","properties":{}}}]`,
		onCall: func(_ int, name string, _ map[string]any) (int, string) {
			return http.StatusOK, fmt.Sprintf(`{"jsonrpc":"2.0","id":2,"result":{"content":[{"type":"text","text":"%s ok"}]}}`, name)
		},
		probes: map[string]string{},
		open:   map[string]bool{},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /sse", func(w http.ResponseWriter, r *http.Request) {
		if f.handshake != nil {
			f.handshake(w, r)
			return
		}
		f.mu.Lock()
		f.sessions++
		id := fmt.Sprint(f.sessions)
		f.open[id] = true
		f.mu.Unlock()

		w.Header().Set("Content-Type", "text/event-stream")
		fmt.Fprintf(w, "event: endpoint\ndata: /message?sessionId=%s\n\n", id) //nolint:errcheck
		if !f.streamBound {
			f.closeSession(id)
			return
		}
		w.(http.Flusher).Flush()
		<-r.Context().Done()
		f.closeSession(id)
	})
	mux.HandleFunc("POST /message", f.handleMessage)
	mux.HandleFunc("GET /sse/{probe...}", func(w http.ResponseWriter, r *http.Request) {
		body, ok := f.probes["/"+r.PathValue("probe")]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, body) //nolint:errcheck
	})

	f.server = httptest.NewServer(mux)
	t.Cleanup(f.server.Close)
	return f
}

func (f *fakeToolServer) endpoint() string {
	return f.server.URL + "/sse"
}

func (f *fakeToolServer) handleMessage(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Method string `json:"method"`
		Params struct {
			Name      string         `json:"name"`
			Arguments map[string]any `json:"arguments"`
		} `json:"params"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if f.streamBound && !f.isOpen(r.URL.Query().Get("sessionId")) {
		http.Error(w, "Invalid session ID", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	switch req.Method {
	case "tools/list":
		fmt.Fprintf(w, `{"jsonrpc":"2.0","id":1,"result":{"tools":%s}}`, f.tools) //nolint:errcheck
	case "tools/call":
		f.mu.Lock()
		f.calls = append(f.calls, req.Params.Name)
		n := len(f.calls)
		f.mu.Unlock()

		status, body := f.onCall(n, req.Params.Name, req.Params.Arguments)
		w.WriteHeader(status)
		io.WriteString(w, body) //nolint:errcheck
	default:
		http.Error(w, "unknown method", http.StatusBadRequest)
	}
}

func (f *fakeToolServer) closeSession(id string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.open, id)
}

func (f *fakeToolServer) isOpen(id string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.open[id]
}

func (f *fakeToolServer) sessionCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sessions
}

func (f *fakeToolServer) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func testLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func testTimeouts() Timeouts {
	return Timeouts{
		Probe:     time.Second,
		List:      time.Second,
		Handshake: time.Second,
		Call:      time.Second,
	}
}
