package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cleitonmarx/symbiont-mcp-bridge/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestBridgeServer_Introspect(t *testing.T) {
	tests := map[string]struct {
		registerDependencies func(t *testing.T, ts *domain.MockToolServer)
		expectedCode         int
		expectedType         string
		shouldContain        []string
	}{
		"success-returns-html": {
			registerDependencies: func(t *testing.T, ts *domain.MockToolServer) {
				depend.RegisterNamed("graph TD;\nA-->B;\nB-->C;\nA-->C;", INTROSPECTION_GRAPH)
				t.Cleanup(depend.ClearContainer)

				ts.EXPECT().Connected().Return(true)
				ts.EXPECT().Catalog(mock.Anything).Return(domain.NewToolCatalog([]domain.Tool{
					domain.NewTool("pods_list_in_namespace", "", nil),
					domain.NewTool("namespaces_list", "", nil),
				}))
			},
			expectedCode: http.StatusOK,
			expectedType: "text/html; charset=utf-8",
			shouldContain: []string{
				"<!DOCTYPE html>",
				"<title>MCP Bridge Introspection Graph</title>",
				"mermaid.registerLayoutLoaders(elkLayouts);",
				"mermaid.initialize({ startOnLoad: false });",
				"window.addEventListener('DOMContentLoaded', renderGraph);",
				"<h1>MCP Bridge Introspection Graph</h1>",
				`const { svg } = await mermaid.render('mermaid-svg-id', "graph TD;\nA--\u003eB;\nB--\u003eC;\nA--\u003eC;");`,
				"Tool server connected, 2 tools available.",
				"<code>pods_list_in_namespace</code>",
			},
		},
		"failed-to-resolve-dependency": {
			registerDependencies: func(t *testing.T, ts *domain.MockToolServer) {},
			expectedCode:         http.StatusInternalServerError,
			expectedType:         "text/plain; charset=utf-8",
			shouldContain:        []string{"Failed to resolve dependency graph"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			toolServer := domain.NewMockToolServer(t)
			tt.registerDependencies(t, toolServer)

			req := httptest.NewRequest(http.MethodGet, "/introspect", nil)
			w := httptest.NewRecorder()

			BridgeServer{ToolServer: toolServer}.Introspect(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.Equal(t, tt.expectedType, w.Header().Get("Content-Type"))

			body := w.Body.String()
			for _, expectedText := range tt.shouldContain {
				assert.True(t,
					strings.Contains(body, expectedText),
					"expected response to contain %q", expectedText,
				)
			}
		})
	}
}
