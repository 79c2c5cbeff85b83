package usecases

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/cleitonmarx/symbiont-mcp-bridge/internal/common"
	"github.com/cleitonmarx/symbiont-mcp-bridge/internal/domain"
	"github.com/cleitonmarx/symbiont-mcp-bridge/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	CHAT_TEMPERATURE = 0.2
	CHAT_TOP_P       = 0.8
	CHAT_TOP_K       = 40
	CHAT_MAX_TOKENS  = 2048

	CHAT_TIME_LAYOUT = "2006-01-02 15:04:05"

	LLM_ERROR_REPLY   = "I encountered an error while processing your request. Please try again."
	EMPTY_REPLY_REPLY = "I'm not sure how to respond to that. Could you please rephrase your question?"
)

// TurnState is a stage of a conversation turn.
type TurnState string

const (
	TurnState_Initial         TurnState = "INITIAL"
	TurnState_Prompted        TurnState = "PROMPTED"
	TurnState_RawReply        TurnState = "RAW_REPLY"
	TurnState_DirectivesFound TurnState = "DIRECTIVES_FOUND"
	TurnState_Executing       TurnState = "EXECUTING"
	TurnState_EnhancingFinal  TurnState = "ENHANCING_FINAL"
	TurnState_Done            TurnState = "DONE"
)

// completionOptions are the LLM options shared by every completion of a turn.
func completionOptions() domain.CompletionOptions {
	return domain.CompletionOptions{
		Temperature: common.Ptr(CHAT_TEMPERATURE),
		TopP:        common.Ptr(CHAT_TOP_P),
		TopK:        common.Ptr(CHAT_TOP_K),
		MaxTokens:   common.Ptr(CHAT_MAX_TOKENS),
		Safety:      domain.PermissiveSafetySettings(),
	}
}

// Chat defines the interface for the Chat use case.
type Chat interface {
	// Execute runs one conversation turn and returns the resolved reply. It never fails:
	// every failure is expressed as text in the reply.
	Execute(ctx context.Context, message string) string
}

// ChatImpl is the implementation of the Chat use case.
type ChatImpl struct {
	toolServer   domain.ToolServer
	llm          domain.LLMCompleter
	enhancer     ResponseEnhancer
	recorder     domain.ToolExecutionRecorder
	timeProvider domain.CurrentTimeProvider
	logger       *log.Logger
}

// NewChatImpl creates a new instance of ChatImpl.
func NewChatImpl(
	toolServer domain.ToolServer,
	llm domain.LLMCompleter,
	enhancer ResponseEnhancer,
	recorder domain.ToolExecutionRecorder,
	timeProvider domain.CurrentTimeProvider,
	logger *log.Logger,
) ChatImpl {
	return ChatImpl{
		toolServer:   toolServer,
		llm:          llm,
		enhancer:     enhancer,
		recorder:     recorder,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// turn carries the state of a single Execute call.
type turn struct {
	id      uuid.UUID
	message string
	state   TurnState
	span    trace.Span
}

func (t *turn) transition(to TurnState) {
	t.state = to
	t.span.AddEvent("turn.state", trace.WithAttributes(attribute.String("state", string(to))))
}

// Execute implements Chat.Execute
func (c ChatImpl) Execute(ctx context.Context, message string) string {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	t := &turn{id: uuid.New(), message: message, state: TurnState_Initial, span: span}
	span.SetAttributes(attribute.String("turn.id", t.id.String()))

	reply, outcome := c.run(spanCtx, t)
	t.transition(TurnState_Done)
	RecordChatTurn(spanCtx, outcome)
	return reply
}

func (c ChatImpl) run(ctx context.Context, t *turn) (string, TurnOutcome) {
	prompt, err := c.buildPrompt(ctx, t.message)
	if telemetry.RecordErrorAndStatus(t.span, err) {
		c.logger.Printf("Chat: failed to build prompt: %v", err)
		return LLM_ERROR_REPLY, TurnOutcome_LLMError
	}
	t.transition(TurnState_Prompted)

	reply, err := c.llm.Complete(ctx, prompt, completionOptions())
	t.transition(TurnState_RawReply)
	if err != nil {
		c.logger.Printf("Chat: error generating response: %v", err)
		return LLM_ERROR_REPLY, TurnOutcome_LLMError
	}
	if strings.TrimSpace(reply) == "" {
		return EMPTY_REPLY_REPLY, TurnOutcome_EmptyReply
	}

	if !ContainsDirective(reply) {
		return reply, TurnOutcome_Answered
	}

	directives := ParseDirectives(reply)
	t.transition(TurnState_DirectivesFound)
	if len(directives) == 0 {
		return reply, TurnOutcome_Answered
	}

	t.transition(TurnState_Executing)
	replacements := c.executeDirectives(ctx, t, directives)
	substituted := domain.SubstituteDirectives(reply, directives, replacements)

	if ctx.Err() != nil {
		return substituted, TurnOutcome_Cancelled
	}

	t.transition(TurnState_EnhancingFinal)
	return c.enhancer.EnhanceFinal(ctx, t.message, substituted), TurnOutcome_ToolsExecuted
}

// executeDirectives runs the directives sequentially in textual order and returns
// the replacement text of each one.
func (c ChatImpl) executeDirectives(ctx context.Context, t *turn, directives []domain.CallDirective) []string {
	replacements := make([]string, len(directives))
	for i, d := range directives {
		if ctx.Err() != nil {
			replacements[i] = fmt.Sprintf("❌ Request cancelled before %s could run", d.ToolName)
			RecordDirective(ctx, DirectiveOutcome_Cancelled)
			continue
		}
		if d.Malformed() {
			c.logger.Printf("Chat: invalid arguments for %s: %v", d.ToolName, d.Err)
			replacements[i] = d.ParseErrorMarker()
			RecordDirective(ctx, DirectiveOutcome_ParseError)
			continue
		}

		c.logger.Printf("Chat: executing tool %s", d.ToolName)
		startedAt := c.timeProvider.Now()
		result := c.toolServer.Invoke(ctx, d.ToolName, d.Arguments)
		duration := domain.Elapsed(c.timeProvider, startedAt)
		c.recordExecution(ctx, t, result, startedAt, duration)

		if result.IsError {
			replacements[i] = FormatToolResult(result)
			RecordDirective(ctx, DirectiveOutcome_ToolError)
			continue
		}
		replacements[i] = c.enhancer.Enhance(ctx, t.message, result)
		RecordDirective(ctx, DirectiveOutcome_Executed)
	}
	return replacements
}

func (c ChatImpl) recordExecution(ctx context.Context, t *turn, result domain.ToolResult, startedAt time.Time, duration time.Duration) {
	if c.recorder == nil {
		return
	}
	c.recorder.RecordToolExecution(ctx, domain.NewToolExecution(t.id, result, startedAt, duration))
}

// buildPrompt renders the system prompt from the current catalog and appends the user message.
func (c ChatImpl) buildPrompt(ctx context.Context, message string) (string, error) {
	toolTable, err := marshalToolTable(c.toolServer.Catalog(ctx))
	if err != nil {
		return "", err
	}

	system, err := renderPrompt("chat", c.timeProvider.Now().Format(CHAT_TIME_LAYOUT), toolTable)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s\n\nUser: %s\nAssistant:", strings.TrimRight(system, "\n"), message), nil
}

// promptTool is a row of the TOON tool table.
type promptTool struct {
	Name        string `toon:"name" json:"name"`
	Description string `toon:"description" json:"description"`
	Parameters  string `toon:"parameters" json:"parameters"`
}

// marshalToolTable renders the catalog as a TOON table.
func marshalToolTable(catalog domain.ToolCatalog) (string, error) {
	tools := catalog.List()
	rows := make([]promptTool, 0, len(tools))
	for _, tool := range tools {
		rows = append(rows, promptTool{
			Name:        tool.Name,
			Description: tool.Description,
			Parameters:  describeParameters(tool.Parameters),
		})
	}
	return marshalTOON(map[string]any{"tools": rows})
}

// describeParameters renders a schema as "name:type" pairs, required ones suffixed with *.
func describeParameters(schema domain.NormalizedSchema) string {
	if len(schema.Properties) == 0 {
		return "none"
	}
	names := make([]string, 0, len(schema.Properties))
	for name := range schema.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		typ := string(schema.Properties[name].Type)
		if typ == "" {
			typ = "object"
		}
		part := name + ":" + typ
		if schema.IsRequired(name) {
			part += "*"
		}
		parts = append(parts, part)
	}
	return strings.Join(parts, " ")
}

// InitChat initializes the Chat use case.
type InitChat struct {
	ToolServer   domain.ToolServer          `resolve:""`
	LLM          domain.LLMCompleter        `resolve:""`
	Enhancer     ResponseEnhancer           `resolve:""`
	TimeProvider domain.CurrentTimeProvider `resolve:""`
	Logger       *log.Logger                `resolve:""`
}

// Initialize registers the Chat use case implementation.
func (i InitChat) Initialize(ctx context.Context) (context.Context, error) {
	recorder, _ := depend.Resolve[domain.ToolExecutionRecorder]()
	depend.Register[Chat](NewChatImpl(i.ToolServer, i.LLM, i.Enhancer, recorder, i.TimeProvider, i.Logger))
	return ctx, nil
}
