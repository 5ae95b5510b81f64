package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/nchapman/convosage/internal/agent"
	"github.com/nchapman/convosage/internal/db"
	"github.com/nchapman/convosage/internal/rag"
)

type ChatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id,omitempty"`
}

type ChatResponse struct {
	Response  string    `json:"response"`
	SessionID string    `json:"session_id"`
	Timestamp time.Time `json:"timestamp"`
}

type HistoryResponse struct {
	SessionID string            `json:"session_id"`
	History   []agent.Message   `json:"history"`
	Metadata  agent.SessionInfo `json:"metadata"`
}

type StatsResponse struct {
	ActiveSessions int `json:"active_sessions"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	AppName string `json:"app_name"`
	Version string `json:"version"`
}

type ProductSearchRequest struct {
	Query string `json:"query"`
	TopK  int    `json:"top_k,omitempty"`
}

type ProductSearchResponse struct {
	Query        string        `json:"query"`
	Results      []rag.Product `json:"results"`
	TotalResults int           `json:"total_results"`
}

type OutletSearchRequest struct {
	Query string `json:"query"`
}

type QueryMetadata struct {
	QueryType  string `json:"query_type"`
	Location   string `json:"location,omitempty"`
	OutletName string `json:"outlet_name,omitempty"`
	Valid      bool   `json:"valid"`
}

type OutletSearchResponse struct {
	Query         string        `json:"query"`
	SQLGenerated  string        `json:"sql_generated"`
	Results       []db.Outlet   `json:"results"`
	TotalResults  int           `json:"total_results"`
	QueryMetadata QueryMetadata `json:"query_metadata"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`
}

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// writeJSON encodes v as JSON to w. Encoding errors are ignored
// since there's no meaningful recovery (client connection is typically closed).
func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{
		Error: ErrorDetail{Code: code, Message: message, Status: status},
	})
}
