package http

import (
	"encoding/json"
	"net/http"
)

var statusByErrorCode = map[ErrorCode]int{
	BAD_REQUEST:    http.StatusBadRequest,
	NOT_FOUND:      http.StatusNotFound,
	INTERNAL_ERROR: http.StatusInternalServerError,
}

// respondJSON writes payload as JSON. API responses describe live bridge state, so they are never cached.
func respondJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, err ErrorResp) {
	statusCode, ok := statusByErrorCode[err.Error.Code]
	if !ok {
		statusCode = http.StatusInternalServerError
	}
	respondJSON(w, statusCode, err)
}
