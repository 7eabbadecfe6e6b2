// Package server exposes the HTTP API: current snapshots, manual
// regeneration, history and health, plus the static frontend.
package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/nlamendino/dealday/internal/models"
	"github.com/nlamendino/dealday/internal/pipeline"
)

const (
	// historyPreviewLimit bounds the history slice embedded in the
	// main content response; the full retained window lives under
	// /api/history.
	historyPreviewLimit = 10

	regenerateTimeout = 4 * time.Minute
)

// Pipeline is the part of the regeneration pipeline the handlers use.
type Pipeline interface {
	RunAll(ctx context.Context) (pipeline.Counts, error)
	Snapshot() pipeline.Snapshot
	History(limit int) []models.ArchiveEntry
}

// Server holds the HTTP handlers.
type Server struct {
	pipeline  Pipeline
	publicDir string
}

// New creates a Server serving the given pipeline and static directory.
func New(p Pipeline, publicDir string) *Server {
	return &Server{pipeline: p, publicDir: publicDir}
}

// Routes builds the full handler tree, CORS included. The /api/
// subtree is claimed in full so a wrong method or an unknown API path
// gets a JSON error instead of falling through to the file server.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/deals", s.handleDeals)
	mux.HandleFunc("POST /api/regenerate", s.handleRegenerate)
	mux.HandleFunc("GET /api/history", s.handleHistory)
	mux.HandleFunc("/api/", s.handleAPIFallback)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.Handle("/", http.FileServer(http.Dir(s.publicDir)))
	return withCORS(mux)
}

// handleAPIFallback answers requests under /api/ that no method-
// specific pattern claimed: 405 for a known endpoint with the wrong
// method, 404 otherwise.
func (s *Server) handleAPIFallback(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/api/deals", "/api/regenerate", "/api/history":
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
	default:
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
	}
}

type contentResponse struct {
	Deals      []models.Deal         `json:"deals"`
	Articles   []models.Article      `json:"articles"`
	News       []models.NewsItem     `json:"news"`
	Videos     []models.VideoItem    `json:"videos"`
	LastUpdate time.Time             `json:"lastUpdate"`
	History    []models.ArchiveEntry `json:"history"`
}

func (s *Server) handleDeals(w http.ResponseWriter, r *http.Request) {
	snap := s.pipeline.Snapshot()
	writeJSON(w, http.StatusOK, contentResponse{
		Deals:      snap.Deals,
		Articles:   snap.Articles,
		News:       snap.News,
		Videos:     snap.Videos,
		LastUpdate: snap.LastUpdate,
		History:    s.pipeline.History(historyPreviewLimit),
	})
}

type regenerateResponse struct {
	Success   bool      `json:"success"`
	Message   string    `json:"message"`
	Deals     int       `json:"deals"`
	Articles  int       `json:"articles"`
	News      int       `json:"news"`
	Videos    int       `json:"videos"`
	Timestamp time.Time `json:"timestamp"`
}

func (s *Server) handleRegenerate(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), regenerateTimeout)
	defer cancel()

	counts, err := s.pipeline.RunAll(ctx)
	if err != nil {
		slog.Error("Manual regeneration failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, regenerateResponse{
		Success:   true,
		Message:   "Contenuti rigenerati",
		Deals:     counts.Deals,
		Articles:  counts.Articles,
		News:      counts.News,
		Videos:    counts.Videos,
		Timestamp: time.Now(),
	})
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.pipeline.History(0))
}

type healthResponse struct {
	Status     string    `json:"status"`
	Deals      int       `json:"deals"`
	Articles   int       `json:"articles"`
	News       int       `json:"news"`
	Videos     int       `json:"videos"`
	LastUpdate time.Time `json:"lastUpdate"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	// One snapshot read so the counts and lastUpdate come from the
	// same commit.
	snap := s.pipeline.Snapshot()
	writeJSON(w, http.StatusOK, healthResponse{
		Status:     "ok",
		Deals:      len(snap.Deals),
		Articles:   len(snap.Articles),
		News:       len(snap.News),
		Videos:     len(snap.Videos),
		LastUpdate: snap.LastUpdate,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

// withCORS allows the static frontend to be served from anywhere, as
// the original deployment did.
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
