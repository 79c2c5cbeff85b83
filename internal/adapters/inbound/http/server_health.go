package http

import (
	"net/http"
	"time"
)

// Health reports whether the bridge has discovered the tool server.
func (api BridgeServer) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, HealthResp{
		Status:           "healthy",
		AgentInitialized: api.ToolServer.Connected(),
		Timestamp:        api.TimeProvider.Now().Format(time.RFC3339),
	})
}
