package usecases

import (
	"embed"
	"fmt"

	"github.com/toon-format/toon-go"
	"go.yaml.in/yaml/v3"
)

//go:embed prompts/*.yml
var promptFiles embed.FS

// promptTemplate is a prompt file; Template is a fmt format with indexed verbs.
type promptTemplate struct {
	Template string `yaml:"template"`
}

// renderPrompt loads prompts/<name>.yml and formats it with args.
func renderPrompt(name string, args ...any) (string, error) {
	file, err := promptFiles.Open("prompts/" + name + ".yml")
	if err != nil {
		return "", fmt.Errorf("failed to open %s prompt: %w", name, err)
	}
	defer file.Close() //nolint:errcheck

	var prompt promptTemplate
	if err := yaml.NewDecoder(file).Decode(&prompt); err != nil {
		return "", fmt.Errorf("failed to decode %s prompt: %w", name, err)
	}

	return fmt.Sprintf(prompt.Template, args...), nil
}

// marshalTOON converts a value into a TOON string for LLM input.
func marshalTOON(v any) (string, error) {
	s, err := toon.MarshalString(v, toon.WithLengthMarkers(true))
	if err != nil {
		return "", fmt.Errorf("failed to marshal TOON: %w", err)
	}
	return s, nil
}
