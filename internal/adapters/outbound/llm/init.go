// Package llm selects and registers the configured domain.LLMCompleter.
package llm

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/cleitonmarx/symbiont-mcp-bridge/internal/adapters/outbound/azureopenai"
	"github.com/cleitonmarx/symbiont-mcp-bridge/internal/adapters/outbound/gemini"
	"github.com/cleitonmarx/symbiont-mcp-bridge/internal/adapters/outbound/modelrunner"
	"github.com/cleitonmarx/symbiont-mcp-bridge/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
)

// Provider names an LLM vendor.
type Provider string

const (
	Provider_Gemini Provider = "gemini"
	Provider_OpenAI Provider = "openai"
	Provider_Azure  Provider = "azure"
)

// InitLLMCompleter builds the completer for LLM_PROVIDER and registers it as domain.LLMCompleter.
type InitLLMCompleter struct {
	Logger        *log.Logger  `resolve:""`
	HttpClient    *http.Client `resolve:""`
	Provider      string       `config:"LLM_PROVIDER" default:"gemini"`
	Model         string       `config:"LLM_MODEL" default:"gemini-2.0-flash"`
	GoogleAPIKey  string       `config:"GOOGLE_API_KEY" default:"-"`
	GeminiBaseURL string       `config:"GEMINI_BASE_URL" default:"-"`
	ModelHost     string       `config:"LLM_MODEL_HOST" default:"-"`
	APIKey        string       `config:"LLM_API_KEY" default:"-"`
	AzureEndpoint string       `config:"AZURE_OPENAI_ENDPOINT" default:"-"`
	AzureKey      string       `config:"AZURE_OPENAI_KEY" default:"-"`
}

// Initialize creates the provider client and registers it.
func (i InitLLMCompleter) Initialize(ctx context.Context) (context.Context, error) {
	completer, err := i.newCompleter()
	if err != nil {
		return ctx, err
	}
	i.Logger.Printf("InitLLMCompleter: using provider %s with model %s", i.Provider, i.Model)

	depend.Register[domain.LLMCompleter](NewMeteredCompleter(completer, Provider(i.Provider)))
	return ctx, nil
}

func (i InitLLMCompleter) newCompleter() (domain.LLMCompleter, error) {
	switch Provider(i.Provider) {
	case Provider_Gemini:
		if unset(i.GoogleAPIKey) {
			return nil, errors.New("GOOGLE_API_KEY is required for the gemini provider")
		}
		return gemini.NewCompleter(valueOrEmpty(i.GeminiBaseURL), i.GoogleAPIKey, i.Model, i.HttpClient), nil
	case Provider_OpenAI:
		if unset(i.ModelHost) {
			return nil, errors.New("LLM_MODEL_HOST is required for the openai provider")
		}
		client := modelrunner.NewAPIClient(i.ModelHost, valueOrEmpty(i.APIKey), i.HttpClient)
		return modelrunner.NewCompleter(client, i.Model), nil
	case Provider_Azure:
		if unset(i.AzureEndpoint) || unset(i.AzureKey) {
			return nil, errors.New("AZURE_OPENAI_ENDPOINT and AZURE_OPENAI_KEY are required for the azure provider")
		}
		return azureopenai.NewCompleter(i.AzureEndpoint, i.AzureKey, i.Model, i.HttpClient)
	default:
		return nil, fmt.Errorf("unsupported LLM_PROVIDER %q", i.Provider)
	}
}

func unset(v string) bool {
	return v == "" || v == "-"
}

func valueOrEmpty(v string) string {
	if v == "-" {
		return ""
	}
	return v
}
