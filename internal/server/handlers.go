package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"codesearch/apimodels"
	"codesearch/internal/llm"
)

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req apimodels.SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if req.Query == "" {
		http.Error(w, "query is required", http.StatusBadRequest)
		return
	}
	if req.Language == "" {
		req.Language = "auto"
	}

	slog.Debug("received search request", "query", req.Query)

	resp, err := s.analyzer.Search(r.Context(), req)
	if err != nil {
		if errors.Is(err, llm.ErrUpstream) {
			// same envelope semantics as the MCP transport: upstream
			// faults are a well-formed response with the error flag set
			writeJSON(w, apimodels.SearchResponse{
				Error:   true,
				Message: "search failed: " + err.Error(),
			})
			return
		}
		slog.Error("search request failed", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, *resp)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
