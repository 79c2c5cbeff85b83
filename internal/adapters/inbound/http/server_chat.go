package http

import (
	"encoding/json"
	"net/http"
	"strings"
)

// PostChat runs one conversation turn.
func (api BridgeServer) PostChat(w http.ResponseWriter, r *http.Request) {
	req := ChatRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, badRequest("invalid request body"))
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		respondError(w, badRequest("message is required"))
		return
	}

	reply := api.ChatUseCase.Execute(r.Context(), req.Message)

	respondJSON(w, http.StatusOK, ChatResponse{Response: reply})
}
