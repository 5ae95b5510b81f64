package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/nchapman/convosage/internal/db"
	"github.com/nchapman/convosage/internal/logs"
	"github.com/nchapman/convosage/internal/rag"
	"github.com/nchapman/convosage/internal/text2sql"
	"github.com/nchapman/convosage/internal/version"
)

const maxMessageLength = 2000

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, HealthResponse{
		Status:  "healthy",
		AppName: s.cfg.AppName,
		Version: version.Version,
	})
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Only POST is allowed")
		return
	}

	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_REQUEST", "Failed to parse request body")
		return
	}

	if req.Message == "" {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Message must not be empty")
		return
	}
	if len(req.Message) > maxMessageLength {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR",
			fmt.Sprintf("Message must be at most %d characters", maxMessageLength))
		return
	}

	sessionID := s.memory.GetOrCreate(req.SessionID)
	response := s.agent.Process(r.Context(), sessionID, req.Message)
	s.memory.Save(sessionID, req.Message, response)

	writeJSON(w, ChatResponse{
		Response:  response,
		SessionID: sessionID,
		Timestamp: time.Now().UTC(),
	})
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Only GET is allowed")
		return
	}

	sessionID := strings.TrimPrefix(r.URL.Path, "/chat/history/")
	info, ok := s.memory.Info(sessionID)
	if !ok {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "Session not found")
		return
	}

	writeJSON(w, HistoryResponse{
		SessionID: sessionID,
		History:   s.memory.History(sessionID),
		Metadata:  info,
	})
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		writeError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Only DELETE is allowed")
		return
	}

	sessionID := strings.TrimPrefix(r.URL.Path, "/chat/session/")
	s.memory.Delete(sessionID)

	writeJSON(w, map[string]string{
		"message": fmt.Sprintf("Session %s deleted successfully", sessionID),
	})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Only GET is allowed")
		return
	}

	writeJSON(w, StatsResponse{ActiveSessions: s.memory.ActiveSessions()})
}

func (s *Server) handleProductSearch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Only POST is allowed")
		return
	}

	var req ProductSearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_REQUEST", "Failed to parse request body")
		return
	}
	if req.Query == "" {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Query must not be empty")
		return
	}
	if req.TopK == 0 {
		req.TopK = 3
	}
	if req.TopK < 1 || req.TopK > 10 {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "top_k must be between 1 and 10")
		return
	}

	results := s.products.Search(req.Query, req.TopK)
	if results == nil {
		results = []rag.Product{}
	}

	writeJSON(w, ProductSearchResponse{
		Query:        req.Query,
		Results:      results,
		TotalResults: len(results),
	})
}

func (s *Server) handleAllProducts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Only GET is allowed")
		return
	}

	writeJSON(w, s.products.All())
}

func (s *Server) handleProductByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Only GET is allowed")
		return
	}

	productID := strings.TrimPrefix(r.URL.Path, "/products/")
	product := s.products.ByID(productID)
	if product == nil {
		writeError(w, http.StatusNotFound, "NOT_FOUND",
			fmt.Sprintf("Product with ID '%s' not found", productID))
		return
	}

	writeJSON(w, product)
}

func (s *Server) handleOutletSearch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Only POST is allowed")
		return
	}

	var req OutletSearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_REQUEST", "Failed to parse request body")
		return
	}
	if req.Query == "" {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Query must not be empty")
		return
	}

	q := text2sql.Generate(req.Query)
	metadata := QueryMetadata{
		QueryType:  string(q.Type),
		Location:   q.Location,
		OutletName: q.OutletName,
		Valid:      q.Valid,
	}

	if q.Type == text2sql.QueryCount {
		count := 0
		if q.Valid {
			var err error
			count, err = s.database.RunCountQuery(r.Context(), q)
			if err != nil {
				logs.Error("Outlet count query failed", "error", err)
				writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Error searching outlets")
				return
			}
		}
		writeJSON(w, OutletSearchResponse{
			Query:         req.Query,
			SQLGenerated:  strings.TrimSpace(q.SQL),
			Results:       []db.Outlet{},
			TotalResults:  count,
			QueryMetadata: metadata,
		})
		return
	}

	outlets, err := s.database.RunQuery(r.Context(), q)
	if err != nil {
		logs.Error("Outlet query failed", "error", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Error searching outlets")
		return
	}
	if outlets == nil {
		outlets = []db.Outlet{}
	}

	writeJSON(w, OutletSearchResponse{
		Query:         req.Query,
		SQLGenerated:  strings.TrimSpace(q.SQL),
		Results:       outlets,
		TotalResults:  len(outlets),
		QueryMetadata: metadata,
	})
}

func (s *Server) handleAllOutlets(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Only GET is allowed")
		return
	}

	outlets, err := s.database.AllOutlets(r.Context())
	if err != nil {
		logs.Error("Outlet listing failed", "error", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Error fetching outlets")
		return
	}
	if outlets == nil {
		outlets = []db.Outlet{}
	}

	writeJSON(w, outlets)
}
