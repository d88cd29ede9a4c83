package http

import (
	"errors"
	"log/slog"
	"net/http"

	"verbrauch/internal/core"
	"verbrauch/internal/storage"
)

func (s *Server) handleCreateWater(w http.ResponseWriter, r *http.Request) {
	var entry core.WaterEntry
	if err := decodeJSON(r, &entry); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	entry.ID = 0
	if err := entry.Validate(); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	view, err := s.water.Create(r.Context(), entry)
	if err != nil {
		slog.ErrorContext(r.Context(), "Create water entry failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to save entry")
		return
	}
	writeJSON(w, http.StatusCreated, view)
}

func (s *Server) handleListWater(w http.ResponseWriter, r *http.Request) {
	views, err := s.water.List(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "List water entries failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list entries")
		return
	}
	writeJSON(w, http.StatusOK, views)
}

func (s *Server) handleGetWater(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	view, err := s.water.Get(r.Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		writeError(w, http.StatusNotFound, "water entry not found")
		return
	}
	if err != nil {
		slog.ErrorContext(r.Context(), "Get water entry failed", "error", err, "id", id)
		writeError(w, http.StatusInternalServerError, "failed to load entry")
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleDeleteWater(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	deleted, err := s.water.Delete(r.Context(), id)
	if err != nil {
		slog.ErrorContext(r.Context(), "Delete water entry failed", "error", err, "id", id)
		writeError(w, http.StatusInternalServerError, "failed to delete entry")
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, "water entry not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleWaterOverall(w http.ResponseWriter, r *http.Request) {
	overall, err := s.water.Overall(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Water overall stats failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to compute stats")
		return
	}
	writeJSON(w, http.StatusOK, overall)
}

func (s *Server) handleWaterYearlySummary(w http.ResponseWriter, r *http.Request) {
	summary, err := s.water.YearlySummary(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Water yearly summary failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to compute summary")
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (s *Server) handleWaterPriceTrend(w http.ResponseWriter, r *http.Request) {
	trend, err := s.water.PriceTrend(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Water price trend failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to compute trend")
		return
	}
	writeJSON(w, http.StatusOK, trend)
}
