// Package azureopenai implements domain.LLMCompleter on an Azure OpenAI deployment.
package azureopenai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/ai/azopenai"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/cleitonmarx/symbiont-mcp-bridge/internal/domain"
	"github.com/cleitonmarx/symbiont-mcp-bridge/internal/telemetry"
)

// Completer sends single-message chat completions to a deployment.
// TopK and safety settings have no Azure OpenAI equivalent and are ignored.
type Completer struct {
	client       *azopenai.Client
	deploymentID string
}

// NewCompleter creates a new Azure OpenAI completer using key authentication.
// The shared http client is used as the pipeline transport; its own retries replace the SDK's.
func NewCompleter(endpoint, apiKey, deploymentID string, httpClient *http.Client) (*Completer, error) {
	opts := &azopenai.ClientOptions{
		ClientOptions: azcore.ClientOptions{
			Transport: httpClient,
			Retry:     policy.RetryOptions{MaxRetries: -1},
		},
	}
	client, err := azopenai.NewClientWithKeyCredential(endpoint, azcore.NewKeyCredential(apiKey), opts)
	if err != nil {
		return nil, fmt.Errorf("error creating Azure OpenAI client: %w", err)
	}
	return &Completer{
		client:       client,
		deploymentID: deploymentID,
	}, nil
}

// Complete implements domain.LLMCompleter.Complete
func (c *Completer) Complete(ctx context.Context, prompt string, opts domain.CompletionOptions) (string, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	req := azopenai.ChatCompletionsOptions{
		DeploymentName: to.Ptr(c.deploymentID),
		Messages: []azopenai.ChatRequestMessageClassification{
			&azopenai.ChatRequestUserMessage{
				Content: azopenai.NewChatRequestUserMessageContent(prompt),
			},
		},
	}
	if opts.Temperature != nil {
		req.Temperature = to.Ptr(float32(*opts.Temperature))
	}
	if opts.TopP != nil {
		req.TopP = to.Ptr(float32(*opts.TopP))
	}
	if opts.MaxTokens != nil {
		req.MaxTokens = to.Ptr(int32(*opts.MaxTokens))
	}

	resp, err := c.client.GetChatCompletions(spanCtx, req, nil)
	if telemetry.RecordErrorAndStatus(span, err) {
		return "", err
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message == nil || resp.Choices[0].Message.Content == nil {
		err := errors.New("no completion received from LLM")
		telemetry.RecordErrorAndStatus(span, err)
		return "", err
	}

	text := strings.TrimSpace(*resp.Choices[0].Message.Content)
	if text == "" {
		telemetry.RecordErrorAndStatus(span, domain.ErrEmptyCompletion)
		return "", domain.ErrEmptyCompletion
	}
	return text, nil
}
