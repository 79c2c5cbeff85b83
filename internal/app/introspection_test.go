package app

import (
	"context"
	"log"
	"strings"
	"testing"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/cleitonmarx/symbiont/introspection"
	"github.com/stretchr/testify/require"
)

func TestMermaidGraphIntrospector_Introspect(t *testing.T) {
	introspector := MermaidGraphIntrospector{}

	report := introspection.Report{
		Configs: []introspection.ConfigAccess{
			{
				Key:         "KEY1",
				UsedDefault: true,
			},
		},
	}
	ctx := context.Background()

	err := introspector.Introspect(ctx, report)
	require.NoError(t, err)
	mermaidGraph, err := depend.ResolveNamed[string]("introspection-graph-mermaid")
	require.NoError(t, err)
	require.NotEmpty(t, mermaidGraph, "Mermaid graph should be registered as a named dependency")
}

func TestReportLoggerIntrospector_Introspect(t *testing.T) {
	out := &strings.Builder{}
	depend.Register(log.New(out, "", 0))

	report := introspection.Report{
		Configs: []introspection.ConfigAccess{
			{Key: "MCP_ENDPOINT", UsedDefault: false},
			{Key: "LLM_PROVIDER", UsedDefault: true},
		},
	}

	err := ReportLoggerIntrospector{}.Introspect(context.Background(), report)
	require.NoError(t, err)
	require.Contains(t, out.String(), "Config: MCP_ENDPOINT (environment)")
	require.Contains(t, out.String(), "Config: LLM_PROVIDER (default)")
}
