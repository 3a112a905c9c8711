// File path: internal/api/server.go
package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	chi "github.com/go-chi/chi/v5"

	"github.com/medassist-ai/icdcoder/internal/common"
	"github.com/medassist-ai/icdcoder/internal/ingest"
	"github.com/medassist-ai/icdcoder/internal/pipeline"
	"github.com/medassist-ai/icdcoder/internal/schema"
)

// Server exposes the coding pipeline over HTTP: direct summary submission,
// chart lookup through the retrieval backend when one is configured, and
// the captured log history.
type Server struct {
	router chi.Router
	pipe   *pipeline.Pipeline
	rag    *ingest.Client
}

func NewServer(pipe *pipeline.Pipeline, rag *ingest.Client) (*Server, error) {
	if pipe == nil {
		return nil, fmt.Errorf("pipeline required")
	}
	s := &Server{pipe: pipe, rag: rag}
	router := chi.NewRouter()
	router.Get("/healthz", s.handleHealth)
	router.Route("/api/v1", func(r chi.Router) {
		r.Post("/code", s.handleCode)
		r.Post("/charts/{chartID}/code", s.handleChartCode)
		r.Get("/logs", s.handleLogs)
	})
	s.router = router
	common.Logger().Info("api: server routes registered", "rag_available", rag.Available())
	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

type codeRequest struct {
	SummaryID string   `json:"summary_id"`
	Summary   string   `json:"summary"`
	SeedCodes []string `json:"seed_codes,omitempty"`
	// Format selects the output shape: "record" (default) or "chart".
	Format string `json:"format,omitempty"`
}

func (s *Server) handleCode(w http.ResponseWriter, r *http.Request) {
	var req codeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}
	if strings.TrimSpace(req.Summary) == "" {
		writeError(w, http.StatusBadRequest, "summary text required")
		return
	}
	summaryID := strings.TrimSpace(req.SummaryID)
	if summaryID == "" {
		summaryID = "adhoc"
	}
	summary := ingest.Summary{
		ID:        summaryID,
		Text:      req.Summary,
		SeedCodes: req.SeedCodes,
	}
	s.respondRecord(w, s.pipe.Run(r.Context(), summary), req.Format)
}

func (s *Server) handleChartCode(w http.ResponseWriter, r *http.Request) {
	if !s.rag.Available() {
		writeError(w, http.StatusServiceUnavailable, "retrieval backend not configured or unreachable")
		return
	}
	chartID := chi.URLParam(r, "chartID")
	summary, err := s.rag.Fetch(r.Context(), chartID)
	if err != nil {
		common.Logger().Warn("api: chart fetch failed", "chart", chartID, "error", err)
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	s.respondRecord(w, s.pipe.Run(r.Context(), summary), r.URL.Query().Get("format"))
}

func (s *Server) handleLogs(w http.ResponseWriter, r *http.Request) {
	entries := common.LogEntries()
	if entries == nil {
		entries = []common.LogEntry{}
	}
	writeJSON(w, http.StatusOK, entries)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":        "ok",
		"rag_available": s.rag.Available(),
	})
}

func (s *Server) respondRecord(w http.ResponseWriter, record schema.Record, format string) {
	if strings.EqualFold(strings.TrimSpace(format), "chart") {
		writeJSON(w, http.StatusOK, schema.ToChart(record))
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		common.Logger().Error("api: response encoding failed", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
