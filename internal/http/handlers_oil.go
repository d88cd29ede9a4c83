package http

import (
	"errors"
	"log/slog"
	"net/http"

	"verbrauch/internal/core"
	"verbrauch/internal/storage"
)

func (s *Server) handleCreateOil(w http.ResponseWriter, r *http.Request) {
	var entry core.OilEntry
	if err := decodeJSON(r, &entry); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	entry.ID = 0
	if err := entry.Validate(); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	view, err := s.oil.Create(r.Context(), entry)
	if err != nil {
		slog.ErrorContext(r.Context(), "Create oil entry failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to save entry")
		return
	}
	writeJSON(w, http.StatusCreated, view)
}

func (s *Server) handleListOil(w http.ResponseWriter, r *http.Request) {
	views, err := s.oil.List(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "List oil entries failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list entries")
		return
	}
	writeJSON(w, http.StatusOK, views)
}

func (s *Server) handleGetOil(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	view, err := s.oil.Get(r.Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		writeError(w, http.StatusNotFound, "oil entry not found")
		return
	}
	if err != nil {
		slog.ErrorContext(r.Context(), "Get oil entry failed", "error", err, "id", id)
		writeError(w, http.StatusInternalServerError, "failed to load entry")
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleDeleteOil(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	deleted, err := s.oil.Delete(r.Context(), id)
	if err != nil {
		slog.ErrorContext(r.Context(), "Delete oil entry failed", "error", err, "id", id)
		writeError(w, http.StatusInternalServerError, "failed to delete entry")
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, "oil entry not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleOilOverall(w http.ResponseWriter, r *http.Request) {
	overall, err := s.oil.Overall(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Oil overall stats failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to compute stats")
		return
	}
	writeJSON(w, http.StatusOK, overall)
}

func (s *Server) handleOilYearlySummary(w http.ResponseWriter, r *http.Request) {
	summary, err := s.oil.YearlySummary(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Oil yearly summary failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to compute summary")
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (s *Server) handleOilPriceTrend(w http.ResponseWriter, r *http.Request) {
	trend, err := s.oil.PriceTrend(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Oil price trend failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to compute trend")
		return
	}
	writeJSON(w, http.StatusOK, trend)
}

func (s *Server) handleCreateOilFillLevel(w http.ResponseWriter, r *http.Request) {
	var level core.OilFillLevel
	if err := decodeJSON(r, &level); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	level.ID = 0
	if err := level.Validate(); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	created, err := s.oil.CreateFillLevel(r.Context(), level)
	if err != nil {
		slog.ErrorContext(r.Context(), "Create oil fill level failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to save fill level")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleListOilFillLevels(w http.ResponseWriter, r *http.Request) {
	levels, err := s.oil.ListFillLevels(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "List oil fill levels failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list fill levels")
		return
	}
	if levels == nil {
		levels = []core.OilFillLevel{}
	}
	writeJSON(w, http.StatusOK, levels)
}

func (s *Server) handleDeleteOilFillLevel(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	deleted, err := s.oil.DeleteFillLevel(r.Context(), id)
	if err != nil {
		slog.ErrorContext(r.Context(), "Delete oil fill level failed", "error", err, "id", id)
		writeError(w, http.StatusInternalServerError, "failed to delete fill level")
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, "oil fill level not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
