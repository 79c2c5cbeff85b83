package mcpserver

import (
	"strings"
	"testing"

	"github.com/cleitonmarx/symbiont-mcp-bridge/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestSimulate(t *testing.T) {
	tests := map[string]struct {
		tool        string
		args        map[string]any
		wantContent string
		wantPrefix  string
		wantError   bool
	}{
		"pods-in-namespace": {
			tool:       "pods_list_in_namespace",
			args:       map[string]any{"namespace": "test-ns"},
			wantPrefix: "[simulated] Pods in namespace 'test-ns':\n- chatbot-deployment-abc123 (Running)",
		},
		"namespace-defaults": {
			tool:       "pods_list_in_namespace",
			args:       map[string]any{},
			wantPrefix: "[simulated] Pods in namespace 'default':",
		},
		"pod-logs-with-lines": {
			tool:       "pods_log",
			args:       map[string]any{"name": "api-0", "lines": 5},
			wantPrefix: "[simulated] Last 5 lines of logs from pod 'api-0' in namespace 'default':",
		},
		"pod-delete": {
			tool:        "pods_delete",
			args:        map[string]any{"name": "api-0", "namespace": "prod"},
			wantContent: "[simulated] Pod 'api-0' deleted from namespace 'prod'",
		},
		"resources-create-or-update": {
			tool:        "resources_create_or_update",
			args:        map[string]any{"yaml": "apiVersion: v1\nkind: ConfigMap\nmetadata:\n  name: settings\n  namespace: apps\ndata:\n  mode: fast\n"},
			wantContent: "[simulated] ConfigMap 'settings' (v1) configured in namespace 'apps'",
		},
		"resources-create-or-update-json-definition": {
			tool:        "resources_create_or_update",
			args:        map[string]any{"yaml": `{"apiVersion":"apps/v1","kind":"Deployment","metadata":{"name":"web"}}`},
			wantContent: "[simulated] Deployment 'web' (apps/v1) configured in namespace 'default'",
		},
		"resources-create-or-update-invalid": {
			tool:       "resources_create_or_update",
			args:       map[string]any{"yaml": "kind: [unterminated"},
			wantPrefix: "[simulated] Error: invalid resource definition:",
			wantError:  true,
		},
		"resources-create-or-update-missing-kind": {
			tool:        "resources_create_or_update",
			args:        map[string]any{"yaml": "metadata:\n  name: x\n"},
			wantContent: "[simulated] Error: invalid resource definition: kind and metadata.name are required",
			wantError:   true,
		},
		"unknown-tool": {
			tool:        "get_weather",
			args:        map[string]any{"location": "Lisbon"},
			wantContent: `[simulated] Mock result for Kubernetes tool 'get_weather' with args: {"location":"Lisbon"}`,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := Simulate(tt.tool, tt.args)

			assert.True(t, got.Simulated)
			assert.Equal(t, tt.tool, got.ToolName)
			assert.Equal(t, tt.wantError, got.IsError)
			if tt.wantContent != "" {
				assert.Equal(t, tt.wantContent, got.Content)
			}
			if tt.wantPrefix != "" {
				assert.True(t, strings.HasPrefix(got.Content, tt.wantPrefix), got.Content)
			}
		})
	}
}

func TestSimulate_EveryFallbackToolIsLabeled(t *testing.T) {
	for _, tool := range FallbackTools() {
		got := Simulate(tool.Name, map[string]any{"yaml": "apiVersion: v1\nkind: Pod\nmetadata:\n  name: p\n"})
		assert.True(t, strings.HasPrefix(got.Content, SIMULATED_PREFIX), tool.Name)
		assert.False(t, got.IsError, tool.Name)
	}
}

func TestSimulate_DefaultNamespace(t *testing.T) {
	got := Simulate("pods_list_in_namespace", map[string]any{"namespace": ""})

	assert.False(t, got.IsError)
	assert.True(t, strings.HasPrefix(got.Content, "[simulated] Pods in namespace '"+domain.DEFAULT_NAMESPACE+"':"), got.Content)
}
