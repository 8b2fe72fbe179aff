package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"reddit-pulse/internal/model"
)

// ResultSource yields the latest completed analysis, nil when none exists.
type ResultSource interface {
	LatestResult(ctx context.Context) (*model.Result, error)
}

// AnalysisHandler serves slices of the latest result bundle.
type AnalysisHandler struct {
	source ResultSource
}

func NewAnalysisHandler(source ResultSource) *AnalysisHandler {
	return &AnalysisHandler{source: source}
}

// GetAnalysis returns the whole bundle.
func (h *AnalysisHandler) GetAnalysis(w http.ResponseWriter, r *http.Request) {
	res, ok := h.latest(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// GetPosts returns the enriched record set.
func (h *AnalysisHandler) GetPosts(w http.ResponseWriter, r *http.Request) {
	res, ok := h.latest(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"run_id": res.RunID,
		"posts":  res.Enriched,
	})
}

// GetTopics returns the fitted topic list.
func (h *AnalysisHandler) GetTopics(w http.ResponseWriter, r *http.Request) {
	res, ok := h.latest(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"run_id": res.RunID,
		"topics": res.Topics,
	})
}

// GetDaily returns the daily statistic series.
func (h *AnalysisHandler) GetDaily(w http.ResponseWriter, r *http.Request) {
	res, ok := h.latest(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"run_id": res.RunID,
		"daily":  res.Daily,
	})
}

// GetExtremes returns the top/bottom sentiment subsets.
func (h *AnalysisHandler) GetExtremes(w http.ResponseWriter, r *http.Request) {
	res, ok := h.latest(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"run_id":       res.RunID,
		"top_positive": res.TopPositive,
		"top_negative": res.TopNegative,
	})
}

func (h *AnalysisHandler) latest(w http.ResponseWriter, r *http.Request) (*model.Result, bool) {
	res, err := h.source.LatestResult(r.Context())
	if err != nil {
		slog.Error("server: load latest result", "err", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to load analysis"})
		return nil, false
	}
	if res == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "no analysis available yet"})
		return nil, false
	}
	return res, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("server: encode response", "err", err)
	}
}
