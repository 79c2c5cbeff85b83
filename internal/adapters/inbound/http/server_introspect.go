package http

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/cleitonmarx/symbiont/depend"
)

var (
	//go:embed templates/introspect.gohtml
	templateFS embed.FS
	tmpl       = template.Must(template.ParseFS(templateFS, "templates/introspect.gohtml"))
)

const INTROSPECTION_GRAPH = "introspection-graph-mermaid"

type introspectPage struct {
	Title     string
	Graph     string
	Connected bool
	Tools     []string
}

// Introspect renders the dependency graph of the running bridge together with the
// state of the tool server connection.
func (api BridgeServer) Introspect(w http.ResponseWriter, r *http.Request) {
	mermaidGraph, err := depend.ResolveNamed[string](INTROSPECTION_GRAPH)
	if err != nil {
		http.Error(w, "Failed to resolve dependency graph", http.StatusInternalServerError)
		return
	}

	page := introspectPage{
		Title:     "MCP Bridge Introspection Graph",
		Graph:     mermaidGraph,
		Connected: api.ToolServer.Connected(),
		Tools:     api.ToolServer.Catalog(r.Context()).Names(),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.Execute(w, page); err != nil {
		http.Error(w, "Failed to render introspection page", http.StatusInternalServerError)
	}
}
