package mcpserver

import (
	_ "embed"
	"fmt"

	"github.com/cleitonmarx/symbiont-mcp-bridge/internal/domain"
	"go.yaml.in/yaml/v3"
)

//go:embed fallback_tools.yml
var fallbackToolsFile []byte

type fallbackTool struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	InputSchema map[string]any `yaml:"inputSchema"`
}

// FallbackTools returns the built-in Kubernetes tool table used when discovery fails.
// Every call decodes a fresh copy so callers may not corrupt the table.
func FallbackTools() []domain.Tool {
	tools, err := decodeFallbackTools(fallbackToolsFile)
	if err != nil {
		panic(err)
	}
	return tools
}

func decodeFallbackTools(data []byte) ([]domain.Tool, error) {
	var entries []fallbackTool
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode fallback tools: %w", err)
	}

	tools := make([]domain.Tool, 0, len(entries))
	for _, e := range entries {
		tools = append(tools, domain.NewTool(e.Name, e.Description, e.InputSchema))
	}
	return tools, nil
}
