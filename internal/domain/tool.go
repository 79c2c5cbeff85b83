package domain

import (
	"context"
	"sort"
)

// DEFAULT_NAMESPACE is the Kubernetes namespace assumed when a call names none.
const DEFAULT_NAMESPACE = "default"

// Tool is a remotely advertised, schema-described operation.
type Tool struct {
	Name        string
	Description string
	// InputSchema is the parameter schema exactly as advertised by the tool server.
	InputSchema map[string]any
	// Parameters is InputSchema reduced by NormalizeSchema.
	Parameters NormalizedSchema
}

// NewTool creates a Tool and normalizes its input schema.
func NewTool(name, description string, inputSchema map[string]any) Tool {
	if inputSchema == nil {
		inputSchema = EmptyInputSchema()
	}
	return Tool{
		Name:        name,
		Description: description,
		InputSchema: inputSchema,
		Parameters:  NormalizeSchema(inputSchema),
	}
}

// EmptyInputSchema returns the schema used when a tool advertises none.
func EmptyInputSchema() map[string]any {
	return map[string]any{
		"type":       "object",
		"properties": map[string]any{},
		"required":   []any{},
	}
}

// ToolCatalog is an immutable, name-indexed set of tools.
// It is rebuilt wholesale whenever the tool server is rediscovered.
type ToolCatalog struct {
	tools []Tool
	index map[string]int
}

// NewToolCatalog builds a catalog keeping the first occurrence of each tool name.
func NewToolCatalog(tools []Tool) ToolCatalog {
	c := ToolCatalog{
		tools: make([]Tool, 0, len(tools)),
		index: make(map[string]int, len(tools)),
	}
	for _, t := range tools {
		if t.Name == "" {
			continue
		}
		if _, exists := c.index[t.Name]; exists {
			continue
		}
		c.index[t.Name] = len(c.tools)
		c.tools = append(c.tools, t)
	}
	return c
}

// List returns the tools in discovery order.
func (c ToolCatalog) List() []Tool {
	out := make([]Tool, len(c.tools))
	copy(out, c.tools)
	return out
}

// Lookup returns the tool with the given name.
func (c ToolCatalog) Lookup(name string) (Tool, bool) {
	i, ok := c.index[name]
	if !ok {
		return Tool{}, false
	}
	return c.tools[i], true
}

// Names returns the sorted tool names.
func (c ToolCatalog) Names() []string {
	names := make([]string, 0, len(c.tools))
	for _, t := range c.tools {
		names = append(names, t.Name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of tools in the catalog.
func (c ToolCatalog) Len() int {
	return len(c.tools)
}

// ToolServer is the bridge's long-lived connection to the remote tool server.
type ToolServer interface {
	// Catalog returns the current tool catalog snapshot.
	Catalog(ctx context.Context) ToolCatalog

	// Invoke executes a tool. It never returns an error: every failure is an error-flagged ToolResult.
	Invoke(ctx context.Context, name string, arguments map[string]any) ToolResult

	// Reconnect re-runs discovery and swaps in the new session and catalog.
	Reconnect(ctx context.Context) error

	// Connected reports whether discovery has completed at least once.
	Connected() bool
}
