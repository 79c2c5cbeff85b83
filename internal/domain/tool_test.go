package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTool(t *testing.T) {
	tool := NewTool("pods_list", "List pods", nil)

	assert.Equal(t, EmptyInputSchema(), tool.InputSchema)
	assert.Empty(t, tool.Parameters.Properties)
	assert.Empty(t, tool.Parameters.Required)

	tool = NewTool("pods_get", "Get a pod", map[string]any{
		"type": "object",
		"properties": map[string]any{
			"name": map[string]any{"type": "string"},
		},
		"required": []any{"name"},
	})
	assert.Equal(t, []string{"name"}, tool.Parameters.Required)
	assert.Equal(t, PropertyType_String, tool.Parameters.Properties["name"].Type)
}

func TestToolCatalog(t *testing.T) {
	catalog := NewToolCatalog([]Tool{
		NewTool("pods_list", "first", nil),
		NewTool("", "unnamed", nil),
		NewTool("events_list", "events", nil),
		NewTool("pods_list", "duplicate", nil),
	})

	assert.Equal(t, 2, catalog.Len())
	assert.Equal(t, []string{"events_list", "pods_list"}, catalog.Names())

	tool, ok := catalog.Lookup("pods_list")
	assert.True(t, ok)
	assert.Equal(t, "first", tool.Description)

	_, ok = catalog.Lookup("missing")
	assert.False(t, ok)

	list := catalog.List()
	assert.Equal(t, "pods_list", list[0].Name)
	list[0].Name = "mutated"
	tool, ok = catalog.Lookup("pods_list")
	assert.True(t, ok)
	assert.Equal(t, "pods_list", tool.Name)
}

func TestToolCatalog_ZeroValue(t *testing.T) {
	var catalog ToolCatalog

	assert.Equal(t, 0, catalog.Len())
	assert.Empty(t, catalog.List())
	_, ok := catalog.Lookup("pods_list")
	assert.False(t, ok)
}

func TestNewToolErrorResult(t *testing.T) {
	args := map[string]any{"namespace": "default"}

	got := NewToolErrorResult("pods_list", args, "Error: %s", "boom")
	assert.Equal(t, ToolResult{ToolName: "pods_list", Arguments: args, Content: "Error: boom", IsError: true}, got)

	got = NewToolErrorResult("pods_list", nil, "")
	assert.Equal(t, "Failed to call tool pods_list", got.Content)
}
