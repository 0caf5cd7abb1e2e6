package helpers

import (
	"encoding/json"
	"net/http"
)

// MessageResponse is the response body for contact and subscribe operations.
// swagger:model MessageResponse
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ListResponse is the response body for paginated admin list operations.
// swagger:model ListResponse
type ListResponse struct {
	Success bool           `json:"success"`
	Data    any            `json:"data"`
	Meta    PaginationMeta `json:"meta"`
}

// TokenResponse is the response body for a successful admin login.
// swagger:model TokenResponse
type TokenResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}

// WriteJSON sets Content-Type to application/json, writes statusCode, and encodes v.
func WriteJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteSuccess writes a MessageResponse with success true.
func WriteSuccess(w http.ResponseWriter, statusCode int, message string) {
	WriteJSON(w, statusCode, MessageResponse{Success: true, Message: message})
}

// WriteError writes a MessageResponse with success false.
func WriteError(w http.ResponseWriter, statusCode int, message string) {
	WriteJSON(w, statusCode, MessageResponse{Success: false, Message: message})
}
