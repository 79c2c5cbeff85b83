package usecases

import (
	"context"
	"errors"
	"io"
	"log"
	"strings"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont-mcp-bridge/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const podListing = "NAME    READY   STATUS\nweb-1   1/1     Running"

func testCatalog() domain.ToolCatalog {
	return domain.NewToolCatalog([]domain.Tool{
		domain.NewTool("pods_list_in_namespace", "List pods in a namespace", map[string]any{
			"type": "object",
			"properties": map[string]any{
				"namespace": map[string]any{"type": "string"},
			},
			"required": []any{"namespace"},
		}),
		domain.NewTool("pods_get", "Get a pod", map[string]any{
			"type": "object",
			"properties": map[string]any{
				"namespace": map[string]any{"type": "string"},
				"name":      map[string]any{"type": "string"},
			},
			"required": []any{"name"},
		}),
		domain.NewTool("namespaces_list", "List namespaces", nil),
	})
}

type chatMocks struct {
	toolServer   *domain.MockToolServer
	llm          *domain.MockLLMCompleter
	enhancer     *MockResponseEnhancer
	recorder     *domain.MockToolExecutionRecorder
	timeProvider *domain.MockCurrentTimeProvider
}

func newChatMocks(t *testing.T) chatMocks {
	m := chatMocks{
		toolServer:   domain.NewMockToolServer(t),
		llm:          domain.NewMockLLMCompleter(t),
		enhancer:     NewMockResponseEnhancer(t),
		recorder:     domain.NewMockToolExecutionRecorder(t),
		timeProvider: domain.NewMockCurrentTimeProvider(t),
	}
	m.toolServer.EXPECT().Catalog(mock.Anything).Return(testCatalog()).Maybe()
	m.timeProvider.EXPECT().Now().Return(time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)).Maybe()
	return m
}

func (m chatMocks) chat() ChatImpl {
	return NewChatImpl(m.toolServer, m.llm, m.enhancer, m.recorder, m.timeProvider, log.New(io.Discard, "", 0))
}

func TestChatImpl_Execute(t *testing.T) {
	const message = "list pods in namespace test-ns"

	tests := map[string]struct {
		setExpectations func(m chatMocks)
		expected        string
		prefixOnly      bool
	}{
		"answer-without-tools": {
			setExpectations: func(m chatMocks) {
				m.llm.EXPECT().Complete(mock.Anything, mock.Anything, mock.Anything).Return("There is nothing to run.", nil)
			},
			expected: "There is nothing to run.",
		},
		"llm-error": {
			setExpectations: func(m chatMocks) {
				m.llm.EXPECT().Complete(mock.Anything, mock.Anything, mock.Anything).Return("", errors.New("503"))
			},
			expected: LLM_ERROR_REPLY,
		},
		"empty-reply": {
			setExpectations: func(m chatMocks) {
				m.llm.EXPECT().Complete(mock.Anything, mock.Anything, mock.Anything).Return("  \n", nil)
			},
			expected: EMPTY_REPLY_REPLY,
		},
		"marker-without-valid-directive": {
			setExpectations: func(m chatMocks) {
				m.llm.EXPECT().Complete(mock.Anything, mock.Anything, mock.Anything).Return("I would use call_tool( here.", nil)
			},
			expected: "I would use call_tool( here.",
		},
		"tool-directive-is-resolved": {
			setExpectations: func(m chatMocks) {
				m.llm.EXPECT().Complete(mock.Anything, mock.MatchedBy(func(prompt string) bool {
					return strings.Contains(prompt, "pods_list_in_namespace") &&
						strings.Contains(prompt, "2026-01-02 03:04:05") &&
						strings.HasSuffix(prompt, "User: "+message+"\nAssistant:")
				}), mock.Anything).Return("Sure. call_tool('pods_list_in_namespace', {'namespace': 'test-ns'})", nil)

				result := domain.ToolResult{
					ToolName:  "pods_list_in_namespace",
					Arguments: map[string]any{"namespace": "test-ns"},
					Content:   podListing,
				}
				m.toolServer.EXPECT().Invoke(mock.Anything, "pods_list_in_namespace", map[string]any{"namespace": "test-ns"}).Return(result)
				m.recorder.EXPECT().RecordToolExecution(mock.Anything, mock.MatchedBy(func(e domain.ToolExecution) bool {
					return e.ToolName == "pods_list_in_namespace" && e.Content == podListing && !e.IsError
				})).Return()
				m.enhancer.EXPECT().Enhance(mock.Anything, message, result).Return(FormatToolResult(result))
				m.enhancer.EXPECT().EnhanceFinal(mock.Anything, message, mock.Anything).
					RunAndReturn(func(_ context.Context, _ string, substituted string) string {
						return substituted
					})
			},
			expected: "Sure. 📦 **Pods Found:**\n```\n" + podListing + "\n```",
		},
		"tool-error-is-formatted": {
			setExpectations: func(m chatMocks) {
				m.llm.EXPECT().Complete(mock.Anything, mock.Anything, mock.Anything).Return("call_tool('pods_get', 'default', 'web')", nil)
				m.toolServer.EXPECT().Invoke(mock.Anything, "pods_get", mock.Anything).
					Return(domain.NewToolErrorResult("pods_get", nil, "Error: pod not found"))
				m.recorder.EXPECT().RecordToolExecution(mock.Anything, mock.Anything).Return()
				m.enhancer.EXPECT().EnhanceFinal(mock.Anything, message, "❌ Error: pod not found").Return("The pod web was not found.")
			},
			expected: "The pod web was not found.",
		},
		"malformed-directive-is-marked": {
			setExpectations: func(m chatMocks) {
				m.llm.EXPECT().Complete(mock.Anything, mock.Anything, mock.Anything).Return("Result: call_tool('pods_get', {name: web})", nil)
				m.enhancer.EXPECT().EnhanceFinal(mock.Anything, message, mock.Anything).
					RunAndReturn(func(_ context.Context, _ string, substituted string) string {
						return substituted
					})
			},
			expected:   "Result: ❌ Invalid tool call arguments for pods_get",
			prefixOnly: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			m := newChatMocks(t)
			tt.setExpectations(m)

			got := m.chat().Execute(context.Background(), message)
			if tt.prefixOnly {
				assert.True(t, strings.HasPrefix(got, tt.expected), got)
			} else {
				assert.Equal(t, tt.expected, got)
			}
			assert.NotContains(t, got, DIRECTIVE_MARKER+"'")
		})
	}
}

func TestChatImpl_Execute_RunsDirectivesInTextualOrder(t *testing.T) {
	m := newChatMocks(t)
	reply := "A: call_tool('namespaces_list', {}) B: call_tool('pods_get', 'default', 'web') C: call_tool('pods_list_in_namespace')"
	m.llm.EXPECT().Complete(mock.Anything, mock.Anything, mock.Anything).Return(reply, nil)

	var invoked []string
	m.toolServer.EXPECT().Invoke(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, name string, args map[string]any) domain.ToolResult {
			invoked = append(invoked, name)
			return domain.ToolResult{ToolName: name, Arguments: args, Content: "out-" + name}
		}).Times(3)
	m.recorder.EXPECT().RecordToolExecution(mock.Anything, mock.Anything).Return().Times(3)
	m.enhancer.EXPECT().Enhance(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, result domain.ToolResult) string {
			return "[" + result.Content + "]"
		})
	m.enhancer.EXPECT().EnhanceFinal(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, substituted string) string {
			return substituted
		})

	got := m.chat().Execute(context.Background(), "show me everything")

	assert.Equal(t, []string{"namespaces_list", "pods_get", "pods_list_in_namespace"}, invoked)
	assert.Equal(t, "A: [out-namespaces_list] B: [out-pods_get] C: [out-pods_list_in_namespace]", got)
}

func TestChatImpl_Execute_Cancellation(t *testing.T) {
	m := newChatMocks(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m.llm.EXPECT().Complete(mock.Anything, mock.Anything, mock.Anything).
		Return("call_tool('namespaces_list') then call_tool('pods_list_in_namespace', {'namespace': 'a'})", nil)
	m.toolServer.EXPECT().Invoke(mock.Anything, "namespaces_list", mock.Anything).
		Run(func(context.Context, string, map[string]any) { cancel() }).
		Return(domain.ToolResult{ToolName: "namespaces_list", Content: "default"}).Once()
	m.recorder.EXPECT().RecordToolExecution(mock.Anything, mock.Anything).Return().Once()
	m.enhancer.EXPECT().Enhance(mock.Anything, mock.Anything, mock.Anything).Return("default").Once()

	got := m.chat().Execute(ctx, "namespaces and pods")

	assert.Equal(t, "default then ❌ Request cancelled before pods_list_in_namespace could run", got)
}

func TestChatImpl_Execute_WithoutRecorder(t *testing.T) {
	m := newChatMocks(t)
	m.llm.EXPECT().Complete(mock.Anything, mock.Anything, mock.Anything).Return("call_tool('namespaces_list')", nil)
	m.toolServer.EXPECT().Invoke(mock.Anything, "namespaces_list", map[string]any{}).
		Return(domain.ToolResult{ToolName: "namespaces_list", Content: "default"})
	m.enhancer.EXPECT().Enhance(mock.Anything, mock.Anything, mock.Anything).Return("default")
	m.enhancer.EXPECT().EnhanceFinal(mock.Anything, mock.Anything, "default").Return("Only the default namespace exists.")

	c := NewChatImpl(m.toolServer, m.llm, m.enhancer, nil, m.timeProvider, log.New(io.Discard, "", 0))

	assert.Equal(t, "Only the default namespace exists.", c.Execute(context.Background(), "namespaces?"))
}

func TestDescribeParameters(t *testing.T) {
	catalog := testCatalog()

	podsGet, ok := catalog.Lookup("pods_get")
	require.True(t, ok)
	assert.Equal(t, "name:string* namespace:string", describeParameters(podsGet.Parameters))

	namespaces, ok := catalog.Lookup("namespaces_list")
	require.True(t, ok)
	assert.Equal(t, "none", describeParameters(namespaces.Parameters))
}

func TestMarshalToolTable(t *testing.T) {
	table, err := marshalToolTable(testCatalog())
	require.NoError(t, err)

	for _, name := range []string{"pods_list_in_namespace", "pods_get", "namespaces_list"} {
		assert.Contains(t, table, name)
	}
}

func TestInitChat_Initialize(t *testing.T) {
	i := InitChat{
		ToolServer:   domain.NewMockToolServer(t),
		LLM:          domain.NewMockLLMCompleter(t),
		Enhancer:     NewMockResponseEnhancer(t),
		TimeProvider: domain.NewMockCurrentTimeProvider(t),
		Logger:       log.New(io.Discard, "", 0),
	}

	ctx, err := i.Initialize(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, ctx)

	registered, err := depend.Resolve[Chat]()
	assert.NoError(t, err)
	assert.NotNil(t, registered)
}
