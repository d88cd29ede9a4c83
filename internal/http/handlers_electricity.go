package http

import (
	"errors"
	"log/slog"
	"net/http"

	"verbrauch/internal/core"
	"verbrauch/internal/storage"
)

func (s *Server) handleCreateElectricity(w http.ResponseWriter, r *http.Request) {
	var entry core.ElectricityEntry
	if err := decodeJSON(r, &entry); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	entry.ID = 0
	if err := entry.Validate(); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	view, err := s.electricity.Create(r.Context(), entry)
	if err != nil {
		slog.ErrorContext(r.Context(), "Create electricity entry failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to save entry")
		return
	}
	writeJSON(w, http.StatusCreated, view)
}

func (s *Server) handleListElectricity(w http.ResponseWriter, r *http.Request) {
	views, err := s.electricity.List(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "List electricity entries failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list entries")
		return
	}
	writeJSON(w, http.StatusOK, views)
}

func (s *Server) handleGetElectricity(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	view, err := s.electricity.Get(r.Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		writeError(w, http.StatusNotFound, "electricity entry not found")
		return
	}
	if err != nil {
		slog.ErrorContext(r.Context(), "Get electricity entry failed", "error", err, "id", id)
		writeError(w, http.StatusInternalServerError, "failed to load entry")
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleDeleteElectricity(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	deleted, err := s.electricity.Delete(r.Context(), id)
	if err != nil {
		slog.ErrorContext(r.Context(), "Delete electricity entry failed", "error", err, "id", id)
		writeError(w, http.StatusInternalServerError, "failed to delete entry")
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, "electricity entry not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleElectricityOverall(w http.ResponseWriter, r *http.Request) {
	overall, err := s.electricity.Overall(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Electricity overall stats failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to compute stats")
		return
	}
	writeJSON(w, http.StatusOK, overall)
}

func (s *Server) handleElectricityYearlySummary(w http.ResponseWriter, r *http.Request) {
	summary, err := s.electricity.YearlySummary(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Electricity yearly summary failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to compute summary")
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (s *Server) handleElectricityPriceTrend(w http.ResponseWriter, r *http.Request) {
	trend, err := s.electricity.PriceTrend(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Electricity price trend failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to compute trend")
		return
	}
	writeJSON(w, http.StatusOK, trend)
}
