package http

import (
	"net/http"

	"github.com/oapi-codegen/runtime"
)

// ListTools returns the current tool catalog.
func (api BridgeServer) ListTools(w http.ResponseWriter, r *http.Request) {
	tools := api.ListToolsUseCase.Query(r.Context())

	resp := make([]ToolResp, 0, len(tools))
	for _, tool := range tools {
		resp = append(resp, toToolResp(tool))
	}

	respondJSON(w, http.StatusOK, resp)
}

// ListToolExecutions returns the most recent journal entries.
func (api BridgeServer) ListToolExecutions(w http.ResponseWriter, r *http.Request) {
	params := ListToolExecutionsParams{}
	if err := runtime.BindQueryParameter("form", true, false, "limit", r.URL.Query(), &params.Limit); err != nil {
		respondError(w, badRequest("invalid format for parameter limit: "+err.Error()))
		return
	}

	limit := 0
	if params.Limit != nil {
		limit = *params.Limit
	}

	executions, err := api.ListToolExecutionsUseCase.Query(r.Context(), limit)
	if err != nil {
		respondError(w, toError(err))
		return
	}

	resp := make([]ToolExecutionResp, 0, len(executions))
	for _, execution := range executions {
		resp = append(resp, toToolExecutionResp(execution))
	}

	respondJSON(w, http.StatusOK, resp)
}
