package usecases

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/cleitonmarx/symbiont-mcp-bridge/internal/domain"
	"github.com/cleitonmarx/symbiont-mcp-bridge/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

// ENHANCED_MARKER is appended to every LLM-enhanced tool result.
const ENHANCED_MARKER = "\n\n*✨ Enhanced with AI analysis*"

// ResponseEnhancer turns raw tool output into user-facing prose.
// Both operations are best-effort and always return usable text.
type ResponseEnhancer interface {
	// Enhance restates a single tool result, falling back to FormatToolResult.
	Enhance(ctx context.Context, userMessage string, result domain.ToolResult) string

	// EnhanceFinal polishes the substituted reply, returning it unchanged on failure.
	EnhanceFinal(ctx context.Context, userMessage string, substituted string) string
}

// ResponseEnhancerImpl is the implementation of ResponseEnhancer.
type ResponseEnhancerImpl struct {
	llm    domain.LLMCompleter
	logger *log.Logger
}

// NewResponseEnhancerImpl creates a new instance of ResponseEnhancerImpl.
func NewResponseEnhancerImpl(llm domain.LLMCompleter, logger *log.Logger) ResponseEnhancerImpl {
	return ResponseEnhancerImpl{llm: llm, logger: logger}
}

// Enhance implements ResponseEnhancer.Enhance
func (re ResponseEnhancerImpl) Enhance(ctx context.Context, userMessage string, result domain.ToolResult) string {
	spanCtx, span := telemetry.Start(ctx, telemetry.ToolAttributes(result.ToolName, result.Arguments))
	defer span.End()

	if result.IsError {
		return FormatToolResult(result)
	}

	prompt, err := renderPrompt("enhance", userMessage, result.ToolName, argumentsTOON(result.Arguments), result.Content)
	if telemetry.RecordErrorAndStatus(span, err) {
		return FormatToolResult(result)
	}

	text, err := re.llm.Complete(spanCtx, prompt, completionOptions())
	if telemetry.RecordErrorAndStatus(span, err) {
		re.logger.Printf("ResponseEnhancer: enhancement of %s failed, using fallback format: %v", result.ToolName, err)
		return FormatToolResult(result)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return FormatToolResult(result)
	}
	return text + ENHANCED_MARKER
}

// EnhanceFinal implements ResponseEnhancer.EnhanceFinal
func (re ResponseEnhancerImpl) EnhanceFinal(ctx context.Context, userMessage string, substituted string) string {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	prompt, err := renderPrompt("final", userMessage, substituted)
	if telemetry.RecordErrorAndStatus(span, err) {
		return substituted
	}

	text, err := re.llm.Complete(spanCtx, prompt, completionOptions())
	if telemetry.RecordErrorAndStatus(span, err) {
		re.logger.Printf("ResponseEnhancer: final enhancement failed: %v", err)
		return substituted
	}

	text = strings.TrimSpace(text)
	if text == "" || ContainsDirective(text) {
		return substituted
	}
	return text
}

// FormatToolResult renders a result without the LLM. It never returns an empty string.
func FormatToolResult(result domain.ToolResult) string {
	content := strings.TrimSpace(result.Content)

	if result.IsError {
		content = strings.TrimSpace(strings.TrimPrefix(content, "Error:"))
		if content == "" {
			content = fmt.Sprintf("Failed to call tool %s", result.ToolName)
		}
		return "❌ Error: " + content
	}
	if content == "" {
		return fmt.Sprintf("**%s:**\n✅ Operation completed successfully", result.ToolName)
	}

	name := result.ToolName
	switch {
	case strings.Contains(name, "pods_list"):
		return fencedSection("📦 **Pods Found:**", content)
	case strings.Contains(name, "namespaces_list"):
		return fencedSection("🏷️ **Namespaces:**", content)
	case strings.Contains(name, "events_list"):
		return fencedSection("📋 **Cluster Events:**", content)
	case strings.Contains(name, "log"):
		return fencedSection("📄 **Logs:**", content)
	default:
		return fmt.Sprintf(
			"### ✅ Tool Execution: %s\n**Arguments:**\n```json\n%s\n```\n**Result:**\n```\n%s\n```",
			name, argumentsJSON(result.Arguments), content,
		)
	}
}

func fencedSection(header, content string) string {
	return fmt.Sprintf("%s\n```\n%s\n```", header, content)
}

func argumentsJSON(args map[string]any) string {
	if args == nil {
		args = map[string]any{}
	}
	b, err := json.MarshalIndent(args, "", "  ")
	if err != nil {
		return fmt.Sprint(args)
	}
	return string(b)
}

// argumentsTOON renders the arguments for the enhancement prompt, falling back to JSON.
func argumentsTOON(args map[string]any) string {
	if len(args) == 0 {
		return "(none)"
	}
	s, err := marshalTOON(args)
	if err != nil {
		return argumentsJSON(args)
	}
	return s
}

// InitResponseEnhancer initializes the ResponseEnhancer use case.
type InitResponseEnhancer struct {
	LLM    domain.LLMCompleter `resolve:""`
	Logger *log.Logger         `resolve:""`
}

// Initialize registers the ResponseEnhancer implementation.
func (i InitResponseEnhancer) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ResponseEnhancer](NewResponseEnhancerImpl(i.LLM, i.Logger))
	return ctx, nil
}
